package commands

import (
	"context"
	"time"
)

// CancelOrderCommandHandler cancels orders. If an agent was already
// assigned, cancellation returns them to the available pool in the same
// transaction, so a cancelled delivery never strands its agent in the
// busy state.
type CancelOrderCommandHandler struct {
	uowFactory OrderAgentUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderAgentUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation. The aggregate decides whether the
// actor may cancel and whether the current status permits it.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	// Capture before Cancel mutates status; the agent reference itself
	// survives cancellation for audit purposes.
	assignedAgent := aggregate.Agent()

	if err = aggregate.Cancel(command.ActorID(), command.Notes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if assignedAgent != nil {
		agentRepo := uow.AgentRepository()

		availability, agentErr := agentRepo.Get(ctx, *assignedAgent)
		if agentErr != nil {
			return agentErr
		}

		availability.Release(time.Now())
		if agentErr = agentRepo.Upsert(ctx, availability); agentErr != nil {
			return agentErr
		}
	}

	return uow.Commit(ctx)
}
