package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrSetAgentAvailabilityCommandIsNotConstructed = errors.New(
	"SetAgentAvailabilityCommand must be created via NewSetAgentAvailabilityCommand constructor",
)

// SetAgentAvailabilityCommand represents an agent going on or off shift.
// Unlike a heartbeat, this explicitly sets the availability flag.
type SetAgentAvailabilityCommand struct { //nolint:recvcheck //using for validation
	agentID     kernel.UUID
	isAvailable bool

	guard guard.ConstructorGuard
}

// NewSetAgentAvailabilityCommand creates a command to set an agent's
// availability flag.
func NewSetAgentAvailabilityCommand(agentID kernel.UUID, isAvailable bool) (SetAgentAvailabilityCommand, error) {
	command := SetAgentAvailabilityCommand{
		isAvailable: isAvailable,
		guard:       guard.NewConstructorGuard(),
	}

	if err := command.setAgentID(agentID); err != nil {
		return SetAgentAvailabilityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetAgentAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetAgentAvailabilityCommandIsNotConstructed)
}

// AgentID returns the agent's identifier.
func (c SetAgentAvailabilityCommand) AgentID() kernel.UUID {
	return c.agentID
}

// IsAvailable returns the requested availability flag.
func (c SetAgentAvailabilityCommand) IsAvailable() bool {
	return c.isAvailable
}

func (c *SetAgentAvailabilityCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
