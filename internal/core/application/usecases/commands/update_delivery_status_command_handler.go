package commands

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/order"
)

// UpdateDeliveryStatusCommandHandler advances orders along the
// agent-driven delivery path. When the order reaches delivered, the agent
// returns to the available pool in the same transaction.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory OrderAgentUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery
// status updates.
func NewUpdateDeliveryStatusCommandHandler(uowFactory OrderAgentUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery update. The aggregate checks that the
// caller is the assigned agent and the step is legal.
func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, command UpdateDeliveryStatusCommand) error {
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

	err = aggregate.AdvanceByAgent(command.AgentID(), command.Next(), command.Notes(), command.Location())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if aggregate.Status() == order.Delivered {
		if err = h.releaseAgent(ctx, uow, command); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h UpdateDeliveryStatusCommandHandler) releaseAgent(
	ctx context.Context,
	uow OrderAgentUoW,
	command UpdateDeliveryStatusCommand,
) error {
	agentRepo := uow.AgentRepository()

	availability, err := agentRepo.Get(ctx, command.AgentID())
	if err != nil {
		return err
	}

	availability.Release(time.Now())
	return agentRepo.Upsert(ctx, availability)
}
