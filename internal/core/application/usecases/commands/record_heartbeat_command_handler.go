package commands

import (
	"context"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/agent"
	"foodcourt/internal/pkg/errs"
)

// RecordHeartbeatCommandHandler keeps the availability registry's
// last-active timestamps fresh. A heartbeat never changes the availability
// flag: an agent busy with a delivery stays busy however often their
// device pings.
type RecordHeartbeatCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewRecordHeartbeatCommandHandler creates a handler for agent heartbeats.
func NewRecordHeartbeatCommandHandler(uowFactory AgentUoWFactory) RecordHeartbeatCommandHandler {
	return RecordHeartbeatCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the heartbeat. An unknown agent is registered as
// available; a known one only gets its last-active timestamp refreshed.
func (h RecordHeartbeatCommandHandler) Handle(ctx context.Context, command RecordHeartbeatCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	agentRepo := uow.AgentRepository()

	availability, err := agentRepo.Get(ctx, command.AgentID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		availability, err = agent.NewAvailability(command.AgentID())
		if err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		availability.Heartbeat(time.Now())
	}

	if err = agentRepo.Upsert(ctx, availability); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
