package order

import (
	"foodcourt/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a closed
// state machine; the underlying store never sees a status outside this set.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> OutForDelivery ──> Delivered
//	    │            │             │           │              │
//	    └────────────┴─────────────┴───────────┴──────────────┴──> Cancelled
//
// Pending, Confirmed and Preparing are advanced by the seller. Ready is
// reached only through agent assignment. OutForDelivery and Delivered are
// advanced by the assigned delivery agent. Delivered and Cancelled are
// terminal.
type Status int

const (
	// NotSet represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	NotSet Status = iota

	// Pending is the initial status of every created order.
	Pending

	// Confirmed indicates the seller has accepted the order.
	Confirmed

	// Preparing indicates the kitchen is working on the order.
	Preparing

	// Ready indicates the order is packed and a delivery agent is assigned.
	Ready

	// OutForDelivery indicates the assigned agent has picked the order up.
	OutForDelivery

	// Delivered is the successful terminal status.
	Delivered

	// Cancelled is the unsuccessful terminal status, reachable from any
	// non-terminal status.
	Cancelled
)

// getStatusStrings returns the string representation for every Status value,
// including NotSet, to support display of invalid values.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		NotSet:         "not_set",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns only the statuses an order may actually hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // NotSet is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses a status name from external input (requests,
// persistence). Unknown names are rejected rather than stored as free text.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return NotSet, errs.NewValueIsInvalidError("status " + s)
}

// Validate checks that the Status value is a member of the closed set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire name of the status, or "not_set" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "not_set"
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AdvancePreparation transitions the status along the seller-controlled
// preparation path.
//
// Valid transitions:
//   - Pending -> Confirmed
//   - Confirmed -> Preparing
//
// Everything else, including any move out of a terminal status and
// non-adjacent jumps, fails with InvalidTransitionError. Ready is not
// reachable here; it requires an agent assignment (see Assign).
func (s Status) AdvancePreparation(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return NotSet, err
	}

	if (s == Pending && next == Confirmed) || (s == Confirmed && next == Preparing) {
		return next, nil
	}

	return NotSet, errs.NewInvalidTransitionError(s.String(), next.String())
}

// Assign transitions the status to Ready as part of agent assignment.
//
// Valid transitions:
//   - Confirmed -> Ready
//   - Preparing -> Ready
//
// Assigning from Pending is rejected: the seller must accept the order
// before handing it to a delivery agent.
func (s Status) Assign() (Status, error) {
	if s != Confirmed && s != Preparing {
		return NotSet, errs.NewInvalidTransitionError(s.String(), Ready.String())
	}

	return Ready, nil
}

// AdvanceDelivery transitions the status along the agent-controlled path.
//
// Valid transitions:
//   - Ready -> OutForDelivery
//   - OutForDelivery -> Delivered
func (s Status) AdvanceDelivery(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return NotSet, err
	}

	if (s == Ready && next == OutForDelivery) || (s == OutForDelivery && next == Delivered) {
		return next, nil
	}

	return NotSet, errs.NewInvalidTransitionError(s.String(), next.String())
}

// Cancel transitions the status to Cancelled from any valid non-terminal
// status. Cancelling a Delivered or already Cancelled order fails.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return NotSet, err
	}
	if s.IsTerminal() {
		return NotSet, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}

	return Cancelled, nil
}

// ValidateCanHaveAgent validates the consistency between order status and
// agent assignment when restoring from persistence.
//
// Business rules:
//   - Pending, Confirmed and Preparing orders must not have an agent
//   - Ready, OutForDelivery and Delivered orders must have an agent
//   - Cancelled orders may or may not have one (cancellation can happen
//     before or after assignment)
func (s Status) ValidateCanHaveAgent(hasAgent bool) error {
	if s == Cancelled {
		return nil
	}

	requiresAgent := s == Ready || s == OutForDelivery || s == Delivered
	if hasAgent && !requiresAgent {
		return errs.NewValueIsInvalidErrorWithCause("status",
			errs.NewInvalidTransitionError(s.String(), "agent assignment"))
	}
	if !hasAgent && requiresAgent {
		return errs.NewValueIsRequiredError("delivery agent for status " + s.String())
	}

	return nil
}
