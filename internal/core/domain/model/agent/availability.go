package agent

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

// ErrAvailabilityIsNotConstructed is returned when an Availability instance
// was not created through NewAvailability or RestoreAvailability.
var ErrAvailabilityIsNotConstructed = errors.New(
	"Availability must be created via NewAvailability or RestoreAvailability")

// Availability is the registry record of a delivery agent: whether the
// agent can take an order right now, and when the agent was last heard
// from. It is the aggregate root the dispatch service flips when orders
// are assigned and completed.
//
// Heartbeats only refresh lastActive; they never change the availability
// flag, so an agent busy with a delivery stays busy no matter how often
// their device pings.
type Availability struct {
	agentID     kernel.UUID
	isAvailable bool
	lastActive  time.Time

	guard guard.ConstructorGuard
}

// NewAvailability registers an agent as available right now.
func NewAvailability(agentID kernel.UUID) (*Availability, error) {
	return RestoreAvailability(agentID, true, time.Now().UTC())
}

// RestoreAvailability reconstructs a registry record from persistence.
func RestoreAvailability(agentID kernel.UUID, isAvailable bool, lastActive time.Time) (*Availability, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}
	if lastActive.IsZero() {
		return nil, errs.NewValueIsRequiredError("lastActive")
	}

	return &Availability{
		agentID:     agentID,
		isAvailable: isAvailable,
		lastActive:  lastActive,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// AgentID returns the agent's identifier.
func (a *Availability) AgentID() kernel.UUID {
	return a.agentID
}

// IsAvailable reports whether the agent can take a new order.
func (a *Availability) IsAvailable() bool {
	return a.isAvailable
}

// LastActive returns the time of the last heartbeat or explicit update.
func (a *Availability) LastActive() time.Time {
	return a.lastActive
}

// Heartbeat refreshes lastActive without touching the availability flag.
func (a *Availability) Heartbeat(now time.Time) {
	a.lastActive = now.UTC()
}

// SetAvailable sets the flag explicitly, for agents going on or off shift.
func (a *Availability) SetAvailable(isAvailable bool, now time.Time) {
	a.isAvailable = isAvailable
	a.lastActive = now.UTC()
}

// MarkBusy claims the agent for a delivery. Claiming an agent who is not
// available fails with ConflictError so two concurrent assignments cannot
// both win.
func (a *Availability) MarkBusy(now time.Time) error {
	if !a.isAvailable {
		return errs.NewConflictError("agent", a.agentID.String())
	}
	a.isAvailable = false
	a.lastActive = now.UTC()
	return nil
}

// Release returns the agent to the available pool after a delivery ends,
// whether it was completed or cancelled. Releasing an already available
// agent is a no-op.
func (a *Availability) Release(now time.Time) {
	a.isAvailable = true
	a.lastActive = now.UTC()
}

// Validate ensures the record was created through a constructor.
func (a *Availability) Validate() error {
	if a == nil {
		return ErrAvailabilityIsNotConstructed
	}
	return a.guard.Validate(ErrAvailabilityIsNotConstructed)
}
