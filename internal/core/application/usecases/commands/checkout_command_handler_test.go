package commands_test

import (
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	customerID kernel.UUID
	sellerA    kernel.UUID
	sellerB    kernel.UUID
	cart       *cart.Cart
	catalog    map[kernel.UUID]ports.CatalogItem
}

// twoSellerCart builds a cart holding items from two different sellers:
// two lines for seller A, one for seller B.
func twoSellerCart(t *testing.T) checkoutFixture {
	t.Helper()

	f := checkoutFixture{
		customerID: kernel.NewUUID(),
		sellerA:    kernel.NewUUID(),
		sellerB:    kernel.NewUUID(),
		catalog:    make(map[kernel.UUID]ports.CatalogItem),
	}
	f.cart = newEmptyCart(t, f.customerID)

	add := func(sellerID kernel.UUID, name string, pricePaise int64, quantity int) {
		foodItemID := kernel.NewUUID()
		f.catalog[foodItemID] = ports.CatalogItem{
			ID:          foodItemID,
			SellerID:    sellerID,
			Name:        name,
			Price:       kernel.NewMoney(pricePaise),
			IsAvailable: true,
		}
		_, err := f.cart.Add(foodItemID, quantity)
		require.NoError(t, err)
	}

	add(f.sellerA, "Masala Dosa", 9000, 2)
	add(f.sellerA, "Filter Coffee", 6000, 1)
	add(f.sellerB, "Hyderabadi Biryani", 25000, 1)
	return f
}

func newCheckoutCommand(t *testing.T, customerID kernel.UUID) commands.CheckoutCommand {
	t.Helper()

	cmd, err := commands.NewCheckoutCommand(customerID, "14 Residency Road", "upi", "no onions")
	require.NoError(t, err)
	return cmd
}

func TestCheckoutCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := twoSellerCart(t)
	cmd := newCheckoutCommand(t, f.customerID)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	catalog := new(MockCatalogGateway)

	readUoW := new(MockUoW)
	readUoW.On("Begin", ctx).Return(nil).Once()
	readUoW.On("CartRepository").Return(cartRepo).Once()
	readUoW.On("Rollback", ctx).Return(nil).Once()

	cartRepo.On("Get", ctx, f.customerID).Return(f.cart, nil).Once()
	catalog.On("GetItems", ctx, mock.Anything).Return(f.catalog, nil).Once()

	sellerUoWA := new(MockUoW)
	sellerUoWA.On("Begin", ctx).Return(nil).Once()
	sellerUoWA.On("OrderRepository").Return(orderRepo).Once()
	sellerUoWA.On("CartRepository").Return(cartRepo).Once()
	sellerUoWA.On("Commit", ctx).Return(nil).Once()
	sellerUoWA.On("Rollback", ctx).Return(nil).Once()

	sellerUoWB := new(MockUoW)
	sellerUoWB.On("Begin", ctx).Return(nil).Once()
	sellerUoWB.On("OrderRepository").Return(orderRepo).Once()
	sellerUoWB.On("CartRepository").Return(cartRepo).Once()
	sellerUoWB.On("Commit", ctx).Return(nil).Once()
	sellerUoWB.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Twice()
	cartRepo.On("DeleteLines", ctx, mock.Anything).Return(nil).Twice()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(readUoW).Once()
	factory.On("Create").Return(sellerUoWA).Once()
	factory.On("Create").Return(sellerUoWB).Once()

	handler := commands.NewCheckoutCommandHandler(factory, catalog)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, result.Created, 2)
	assert.Empty(t, result.Failures)

	// Seller A: 2*90 + 60 = 240; +30 delivery; +5% tax = 12; final 282.
	assert.True(t, result.Created[0].SellerID.IsEqual(f.sellerA))
	assert.Equal(t, int64(28200), result.Created[0].FinalAmount.Paise())

	// Seller B: 250; +30 delivery; +12.50 tax; final 292.50.
	assert.True(t, result.Created[1].SellerID.IsEqual(f.sellerB))
	assert.Equal(t, int64(29250), result.Created[1].FinalAmount.Paise())

	orderRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd := newCheckoutCommand(t, customerID)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Get", ctx, customerID).Return(newEmptyCart(t, customerID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	catalog := new(MockCatalogGateway)

	handler := commands.NewCheckoutCommandHandler(factory, catalog)
	_, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	catalog.AssertNotCalled(t, "GetItems")
}

func TestCheckoutCommandHandler_Handle_RetriesOnNumberCollision(t *testing.T) {
	ctx := t.Context()
	f := twoSellerCart(t)
	cmd := newCheckoutCommand(t, f.customerID)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	catalog := new(MockCatalogGateway)

	readUoW := new(MockUoW)
	readUoW.On("Begin", ctx).Return(nil).Once()
	readUoW.On("CartRepository").Return(cartRepo).Once()
	readUoW.On("Rollback", ctx).Return(nil).Once()

	cartRepo.On("Get", ctx, f.customerID).Return(f.cart, nil).Once()
	catalog.On("GetItems", ctx, mock.Anything).Return(f.catalog, nil).Once()

	// The first insert for each attempt collides once, then succeeds.
	conflict := errs.NewConflictError("orderNumber", "ORD000000000101")
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(conflict).Once()
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Times(2)
	cartRepo.On("DeleteLines", ctx, mock.Anything).Return(nil).Times(2)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(readUoW).Once()
	for range 3 {
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("CartRepository").Return(cartRepo).Maybe()
		uow.On("Commit", ctx).Return(nil).Maybe()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory.On("Create").Return(uow).Once()
	}

	handler := commands.NewCheckoutCommandHandler(factory, catalog)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Len(t, result.Created, 2)
	assert.Empty(t, result.Failures)
	orderRepo.AssertExpectations(t)
}

func TestCheckoutCommandHandler_Handle_PartialFailure(t *testing.T) {
	ctx := t.Context()
	f := twoSellerCart(t)
	cmd := newCheckoutCommand(t, f.customerID)

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	catalog := new(MockCatalogGateway)

	readUoW := new(MockUoW)
	readUoW.On("Begin", ctx).Return(nil).Once()
	readUoW.On("CartRepository").Return(cartRepo).Once()
	readUoW.On("Rollback", ctx).Return(nil).Once()

	cartRepo.On("Get", ctx, f.customerID).Return(f.cart, nil).Once()
	catalog.On("GetItems", ctx, mock.Anything).Return(f.catalog, nil).Once()

	// Seller A's insert keeps colliding; seller B's succeeds.
	conflict := errs.NewConflictError("orderNumber", "ORD000000000101")
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(conflict).Times(3)
	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	cartRepo.On("DeleteLines", ctx, mock.Anything).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(readUoW).Once()
	for range 4 {
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo).Once()
		uow.On("CartRepository").Return(cartRepo).Maybe()
		uow.On("Commit", ctx).Return(nil).Maybe()
		uow.On("Rollback", ctx).Return(nil).Once()
		factory.On("Create").Return(uow).Once()
	}

	handler := commands.NewCheckoutCommandHandler(factory, catalog)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	require.Len(t, result.Failures, 1)
	assert.True(t, result.Failures[0].SellerID.IsEqual(f.sellerA))
	assert.ErrorIs(t, result.Failures[0].Err, errs.ErrConflict)
	assert.True(t, result.Created[0].SellerID.IsEqual(f.sellerB))
}

func TestCheckoutCommandHandler_Handle_VanishedItemOnlyBlocksItsOwnLine(t *testing.T) {
	ctx := t.Context()
	f := twoSellerCart(t)
	cmd := newCheckoutCommand(t, f.customerID)

	// Seller B's item disappears from the catalog between carting and
	// checkout; seller A's group must still go through.
	var vanishedID kernel.UUID
	for id, item := range f.catalog {
		if item.SellerID.IsEqual(f.sellerB) {
			vanishedID = id
			delete(f.catalog, id)
		}
	}

	cartRepo := new(MockCartRepository)
	orderRepo := new(MockOrderRepository)
	catalog := new(MockCatalogGateway)

	readUoW := new(MockUoW)
	readUoW.On("Begin", ctx).Return(nil).Once()
	readUoW.On("CartRepository").Return(cartRepo).Once()
	readUoW.On("Rollback", ctx).Return(nil).Once()

	cartRepo.On("Get", ctx, f.customerID).Return(f.cart, nil).Once()
	catalog.On("GetItems", ctx, mock.Anything).Return(f.catalog, nil).Once()

	sellerUoWA := new(MockUoW)
	sellerUoWA.On("Begin", ctx).Return(nil).Once()
	sellerUoWA.On("OrderRepository").Return(orderRepo).Once()
	sellerUoWA.On("CartRepository").Return(cartRepo).Once()
	sellerUoWA.On("Commit", ctx).Return(nil).Once()
	sellerUoWA.On("Rollback", ctx).Return(nil).Once()

	orderRepo.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	cartRepo.On("DeleteLines", ctx, mock.Anything).Return(nil).Once()

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(readUoW).Once()
	factory.On("Create").Return(sellerUoWA).Once()

	handler := commands.NewCheckoutCommandHandler(factory, catalog)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, result.Created, 1)
	assert.True(t, result.Created[0].SellerID.IsEqual(f.sellerA))
	assert.Empty(t, result.Failures)
	require.Len(t, result.MissingItems, 1)
	assert.True(t, result.MissingItems[0].IsEqual(vanishedID))
	factory.AssertNumberOfCalls(t, "Create", 2)
}

func TestCheckoutCommand_Constructor(t *testing.T) {
	t.Run("should require address and payment method", func(t *testing.T) {
		_, err := commands.NewCheckoutCommand(kernel.NewUUID(), "", "upi", "")
		require.ErrorIs(t, err, commands.ErrDeliveryAddressIsRequired)

		_, err = commands.NewCheckoutCommand(kernel.NewUUID(), "somewhere", "", "")
		require.ErrorIs(t, err, commands.ErrPaymentMethodIsRequired)
	})

	t.Run("should reject a not constructed command", func(t *testing.T) {
		cmd := commands.CheckoutCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrCheckoutCommandIsNotConstructed)
	})
}
