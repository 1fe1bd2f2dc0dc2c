package commands

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"
)

// ErrFoodItemUnavailable is returned when the catalog item exists but is
// currently not sellable.
var ErrFoodItemUnavailable = errors.New("food item is unavailable")

// AddToCartCommandHandler puts catalog items into customer carts. The
// catalog is consulted first so a cart can never reference a nonexistent
// item; availability is also checked here rather than at checkout so the
// customer learns about it immediately.
type AddToCartCommandHandler struct {
	uowFactory CartUoWFactory
	catalog    ports.CatalogGateway
}

// NewAddToCartCommandHandler creates a handler for add-to-cart operations.
func NewAddToCartCommandHandler(uowFactory CartUoWFactory, catalog ports.CatalogGateway) AddToCartCommandHandler {
	return AddToCartCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the add-to-cart command. Verifies the catalog item
// exists and is available, then merges the quantity into the customer's
// cart within a transaction.
func (h AddToCartCommandHandler) Handle(ctx context.Context, command AddToCartCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	items, err := h.catalog.GetItems(ctx, []kernel.UUID{command.FoodItemID()})
	if err != nil {
		return err
	}
	item, ok := items[command.FoodItemID()]
	if !ok {
		return errs.NewObjectNotFoundError("food item", command.FoodItemID().String())
	}
	if !item.IsAvailable {
		return ErrFoodItemUnavailable
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()

	aggregate, err := cartRepo.Get(ctx, command.CustomerID())
	if err != nil {
		return err
	}

	if _, err = aggregate.Add(command.FoodItemID(), command.Quantity()); err != nil {
		return err
	}

	if err = cartRepo.Save(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
