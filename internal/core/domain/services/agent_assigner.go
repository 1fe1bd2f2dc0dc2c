package services

import (
	"time"

	"foodcourt/internal/core/domain/model/agent"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// AgentAssigner is a domain service responsible for handing an order to a
// delivery agent: the order moves to ready and the agent flips to busy in
// one step, so both aggregates change together or not at all.
//
// Business rules:
//   - Only the order's seller may assign
//   - The agent must currently be available
//   - The agent stays busy until the delivery is completed or cancelled
//
// Callers persist both aggregates inside one transaction; a busy agent
// surfaces as ConflictError before anything is mutated.
type AgentAssigner struct{}

// NewAgentAssigner creates a new AgentAssigner instance.
func NewAgentAssigner() AgentAssigner {
	return AgentAssigner{}
}

// Assign moves the order to ready under the given agent and claims the
// agent's availability. On any error both aggregates are left untouched.
func (a AgentAssigner) Assign(
	sellerID kernel.UUID,
	o *order.Order,
	availability *agent.Availability,
	notes string,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := availability.Validate(); err != nil {
		return err
	}

	// Claim check runs before the order mutates so a busy agent cannot
	// leave a half-assigned order behind.
	if err := availability.MarkBusy(time.Now()); err != nil {
		return err
	}

	if err := o.AssignAgent(sellerID, availability.AgentID(), notes); err != nil {
		availability.Release(time.Now())
		return err
	}

	return nil
}
