package commands_test

import (
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func availableCatalogItem(foodItemID kernel.UUID) map[kernel.UUID]ports.CatalogItem {
	return map[kernel.UUID]ports.CatalogItem{
		foodItemID: {
			ID:          foodItemID,
			SellerID:    kernel.NewUUID(),
			Name:        "Pav Bhaji",
			Price:       kernel.NewMoney(9000),
			IsAvailable: true,
		},
	}
}

func TestAddToCartCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	foodItemID := kernel.NewUUID()
	cmd, err := commands.NewAddToCartCommand(customerID, foodItemID, 2)
	require.NoError(t, err)

	catalog := new(MockCatalogGateway)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	emptyCart := newEmptyCart(t, customerID)

	mock.InOrder(
		catalog.On("GetItems", ctx, []kernel.UUID{foodItemID}).
			Return(availableCatalogItem(foodItemID), nil).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, customerID).Return(emptyCart, nil).Once(),
		cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddToCartCommandHandler(factory, catalog)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, emptyCart.Lines(), 1)
	catalog.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddToCartCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAddToCartCommand(kernel.NewUUID(), kernel.NewUUID(), 1)
	require.NoError(t, err)

	catalog := new(MockCatalogGateway)
	catalog.On("GetItems", ctx, mock.Anything).
		Return(map[kernel.UUID]ports.CatalogItem{}, nil).Once()

	factory := new(MockCartUoWFactory)

	handler := commands.NewAddToCartCommandHandler(factory, catalog)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestAddToCartCommandHandler_Handle_UnavailableItem(t *testing.T) {
	ctx := t.Context()
	foodItemID := kernel.NewUUID()
	cmd, err := commands.NewAddToCartCommand(kernel.NewUUID(), foodItemID, 1)
	require.NoError(t, err)

	items := availableCatalogItem(foodItemID)
	item := items[foodItemID]
	item.IsAvailable = false
	items[foodItemID] = item

	catalog := new(MockCatalogGateway)
	catalog.On("GetItems", ctx, mock.Anything).Return(items, nil).Once()

	factory := new(MockCartUoWFactory)

	handler := commands.NewAddToCartCommandHandler(factory, catalog)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrFoodItemUnavailable)
	factory.AssertNotCalled(t, "Create")
}

func TestAddToCartCommand_Constructor(t *testing.T) {
	t.Run("should reject a non-positive quantity", func(t *testing.T) {
		_, err := commands.NewAddToCartCommand(kernel.NewUUID(), kernel.NewUUID(), 0)

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
	})

	t.Run("should reject a not constructed command", func(t *testing.T) {
		cmd := commands.AddToCartCommand{}

		err := cmd.Validate()

		require.ErrorIs(t, err, commands.ErrAddToCartCommandIsNotConstructed)
	})
}
