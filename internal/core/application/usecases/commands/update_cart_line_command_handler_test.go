package commands_test

import (
	"testing"

	"foodcourt/internal/core/application/usecases/commands"
	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartWithLine(t *testing.T, customerID kernel.UUID) (*cart.Cart, cart.Line) {
	t.Helper()

	aggregate, err := cart.NewCart(customerID)
	require.NoError(t, err)
	line, err := aggregate.Add(kernel.NewUUID(), 2)
	require.NoError(t, err)
	return aggregate, line
}

func TestUpdateCartLineCommandHandler_Handle_ChangesQuantity(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate, line := newCartWithLine(t, customerID)

	cmd, err := commands.NewUpdateCartLineCommand(customerID, line.ID(), 5)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetLineOwner", ctx, line.ID()).Return(customerID, nil).Once(),
		cartRepo.On("Get", ctx, customerID).Return(aggregate, nil).Once(),
		cartRepo.On("Save", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartLineCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, aggregate.Lines(), 1)
	assert.Equal(t, 5, aggregate.Lines()[0].Quantity())
	cartRepo.AssertExpectations(t)
}

func TestUpdateCartLineCommandHandler_Handle_ZeroQuantityDeletesLine(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	aggregate, line := newCartWithLine(t, customerID)

	cmd, err := commands.NewUpdateCartLineCommand(customerID, line.ID(), 0)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetLineOwner", ctx, line.ID()).Return(customerID, nil).Once(),
		cartRepo.On("Get", ctx, customerID).Return(aggregate, nil).Once(),
		cartRepo.On("DeleteLines", ctx, []kernel.UUID{line.ID()}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartLineCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, aggregate.IsEmpty())
	cartRepo.AssertExpectations(t)
}

func TestUpdateCartLineCommandHandler_Handle_RejectsForeignLine(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	otherCustomerID := kernel.NewUUID()
	lineID := kernel.NewUUID()

	cmd, err := commands.NewUpdateCartLineCommand(customerID, lineID, 3)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetLineOwner", ctx, lineID).Return(otherCustomerID, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartLineCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	cartRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUpdateCartLineCommandHandler_Handle_UnknownLine(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	lineID := kernel.NewUUID()

	cmd, err := commands.NewUpdateCartLineCommand(customerID, lineID, 3)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetLineOwner", ctx, lineID).
			Return(nil, errs.NewObjectNotFoundError("cart line", lineID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartLineCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
