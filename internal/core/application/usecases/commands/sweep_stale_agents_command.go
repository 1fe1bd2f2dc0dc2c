package commands

import (
	"errors"
	"time"

	"foodcourt/internal/pkg/guard"
)

var (
	ErrSweepStaleAgentsCommandIsNotConstructed = errors.New(
		"SweepStaleAgentsCommand must be created via NewSweepStaleAgentsCommand constructor",
	)
	ErrOfflineAfterIsInvalid = errors.New("offlineAfter must be greater than 0")
)

// SweepStaleAgentsCommand represents a request to flip agents that stopped
// sending heartbeats to unavailable. Issued periodically by the sweep job.
type SweepStaleAgentsCommand struct { //nolint:recvcheck //using for validation
	offlineAfter time.Duration

	guard guard.ConstructorGuard
}

// NewSweepStaleAgentsCommand creates a sweep command. Agents whose last
// activity is older than offlineAfter are considered offline.
func NewSweepStaleAgentsCommand(offlineAfter time.Duration) (SweepStaleAgentsCommand, error) {
	command := SweepStaleAgentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOfflineAfter(offlineAfter); err != nil {
		return SweepStaleAgentsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepStaleAgentsCommand) Validate() error {
	return c.guard.Validate(ErrSweepStaleAgentsCommandIsNotConstructed)
}

// OfflineAfter returns the inactivity window after which an agent counts
// as offline.
func (c SweepStaleAgentsCommand) OfflineAfter() time.Duration {
	return c.offlineAfter
}

func (c *SweepStaleAgentsCommand) setOfflineAfter(offlineAfter time.Duration) error {
	if offlineAfter <= 0 {
		return ErrOfflineAfterIsInvalid
	}

	c.offlineAfter = offlineAfter
	return nil
}
