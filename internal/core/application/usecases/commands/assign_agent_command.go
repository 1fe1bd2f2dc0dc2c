package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrAssignAgentCommandIsNotConstructed = errors.New(
	"AssignAgentCommand must be created via NewAssignAgentCommand constructor",
)

// AssignAgentCommand represents a seller's request to hand an order to a
// delivery agent. The order moves to ready and the agent becomes busy in
// one transaction.
type AssignAgentCommand struct { //nolint:recvcheck //using for validation
	sellerID kernel.UUID
	orderID  kernel.UUID
	agentID  kernel.UUID
	notes    string

	guard guard.ConstructorGuard
}

// NewAssignAgentCommand creates a command to assign a delivery agent.
func NewAssignAgentCommand(
	sellerID kernel.UUID,
	orderID kernel.UUID,
	agentID kernel.UUID,
	notes string,
) (AssignAgentCommand, error) {
	command := AssignAgentCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setSellerID(sellerID),
		command.setOrderID(orderID),
		command.setAgentID(agentID),
	); err != nil {
		return AssignAgentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAgentCommand) Validate() error {
	return c.guard.Validate(ErrAssignAgentCommandIsNotConstructed)
}

// SellerID returns the acting seller's identifier.
func (c AssignAgentCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// OrderID returns the order to hand over.
func (c AssignAgentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// AgentID returns the delivery agent to claim.
func (c AssignAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Notes returns the tracking note attached to the assignment.
func (c AssignAgentCommand) Notes() string {
	return c.notes
}

func (c *AssignAgentCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}

func (c *AssignAgentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
