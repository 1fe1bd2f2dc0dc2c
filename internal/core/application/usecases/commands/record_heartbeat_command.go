package commands

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrRecordHeartbeatCommandIsNotConstructed = errors.New(
	"RecordHeartbeatCommand must be created via NewRecordHeartbeatCommand constructor",
)

// RecordHeartbeatCommand represents a delivery agent device ping. The
// first heartbeat registers the agent; later ones only refresh the
// last-active timestamp.
type RecordHeartbeatCommand struct { //nolint:recvcheck //using for validation
	agentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRecordHeartbeatCommand creates a heartbeat command.
func NewRecordHeartbeatCommand(agentID kernel.UUID) (RecordHeartbeatCommand, error) {
	command := RecordHeartbeatCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setAgentID(agentID); err != nil {
		return RecordHeartbeatCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordHeartbeatCommand) Validate() error {
	return c.guard.Validate(ErrRecordHeartbeatCommandIsNotConstructed)
}

// AgentID returns the pinging agent's identifier.
func (c RecordHeartbeatCommand) AgentID() kernel.UUID {
	return c.agentID
}

func (c *RecordHeartbeatCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}

	c.agentID = agentID
	return nil
}
