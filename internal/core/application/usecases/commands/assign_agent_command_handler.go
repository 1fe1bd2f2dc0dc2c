package commands

import (
	"context"

	"foodcourt/internal/core/domain/services"
)

// AssignAgentCommandHandler hands orders to delivery agents. The order
// status change and the agent's availability flip are persisted in a
// single transaction; a concurrent assignment of the same agent loses on
// the availability claim and surfaces as ConflictError.
type AssignAgentCommandHandler struct {
	uowFactory OrderAgentUoWFactory
	assigner   services.AgentAssigner
}

// NewAssignAgentCommandHandler creates a handler for agent assignment.
func NewAssignAgentCommandHandler(uowFactory OrderAgentUoWFactory) AssignAgentCommandHandler {
	return AssignAgentCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewAgentAssigner(),
	}
}

// Handle processes the assignment. Loads the order and the agent's
// availability record, runs the assignment through the domain service, and
// persists both aggregates together.
func (h AssignAgentCommandHandler) Handle(ctx context.Context, command AssignAgentCommand) error {
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
	agentRepo := uow.AgentRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	availability, err := agentRepo.Get(ctx, command.AgentID())
	if err != nil {
		return err
	}

	if err = h.assigner.Assign(command.SellerID(), aggregate, availability, command.Notes()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = agentRepo.Upsert(ctx, availability); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
