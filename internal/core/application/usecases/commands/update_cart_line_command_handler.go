package commands

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

// UpdateCartLineCommandHandler changes quantities of existing cart lines.
// Ownership is checked before the cart loads: a line belonging to another
// customer fails with NotAuthorizedError, while a line that never existed
// fails with ObjectNotFoundError.
type UpdateCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewUpdateCartLineCommandHandler creates a handler for cart line updates.
func NewUpdateCartLineCommandHandler(uowFactory CartUoWFactory) UpdateCartLineCommandHandler {
	return UpdateCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart line update. A quantity of zero deletes the
// line; anything positive replaces the stored quantity.
func (h UpdateCartLineCommandHandler) Handle(ctx context.Context, command UpdateCartLineCommand) error {
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

	cartRepo := uow.CartRepository()

	owner, err := cartRepo.GetLineOwner(ctx, command.LineID())
	if err != nil {
		return err
	}
	if !owner.IsEqual(command.CustomerID()) {
		return errs.NewNotAuthorizedError(
			"cart line "+command.LineID().String(), command.CustomerID().String())
	}

	aggregate, err := cartRepo.Get(ctx, command.CustomerID())
	if err != nil {
		return err
	}

	kept, err := aggregate.SetLineQuantity(command.LineID(), command.Quantity())
	if err != nil {
		return err
	}

	if kept {
		err = cartRepo.Save(ctx, aggregate)
	} else {
		err = cartRepo.DeleteLines(ctx, []kernel.UUID{command.LineID()})
	}
	if err != nil {
		return err
	}

	return uow.Commit(ctx)
}
