package commands

import (
	"context"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/agent"
	"foodcourt/internal/pkg/errs"
)

// SetAgentAvailabilityCommandHandler processes explicit on-shift and
// off-shift changes from agents. Going off shift does not touch orders
// already assigned to the agent.
type SetAgentAvailabilityCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewSetAgentAvailabilityCommandHandler creates a handler for explicit
// availability changes.
func NewSetAgentAvailabilityCommandHandler(uowFactory AgentUoWFactory) SetAgentAvailabilityCommandHandler {
	return SetAgentAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change, registering the agent on
// first contact.
func (h SetAgentAvailabilityCommandHandler) Handle(ctx context.Context, command SetAgentAvailabilityCommand) error {
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
		availability.SetAvailable(command.IsAvailable(), time.Now())
	case err != nil:
		return err
	default:
		availability.SetAvailable(command.IsAvailable(), time.Now())
	}

	if err = agentRepo.Upsert(ctx, availability); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
