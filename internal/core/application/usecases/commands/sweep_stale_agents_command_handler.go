package commands

import (
	"context"
	"time"
)

// SweepStaleAgentsCommandHandler flips agents that stopped heartbeating to
// unavailable so the dispatch pool does not offer dead devices to sellers.
type SweepStaleAgentsCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewSweepStaleAgentsCommandHandler creates a handler for the offline
// sweep.
func NewSweepStaleAgentsCommandHandler(uowFactory AgentUoWFactory) SweepStaleAgentsCommandHandler {
	return SweepStaleAgentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and returns how many agents were flipped.
func (h SweepStaleAgentsCommandHandler) Handle(ctx context.Context, command SweepStaleAgentsCommand) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := time.Now().UTC().Add(-command.OfflineAfter())
	swept, err := uow.AgentRepository().MarkStaleUnavailable(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return swept, nil
}
