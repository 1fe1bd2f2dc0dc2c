package commands_test

import (
	"testing"
	"time"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newEmptyCart(t *testing.T, customerID kernel.UUID) *cart.Cart {
	t.Helper()

	aggregate, err := cart.NewCart(customerID)
	require.NoError(t, err)
	return aggregate
}

func newPendingOrder(t *testing.T, customerID, sellerID kernel.UUID) *order.Order {
	t.Helper()

	item, err := order.NewItem(kernel.NewUUID(), "Dal Makhani", 1, kernel.NewMoney(18000), nil)
	require.NoError(t, err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), order.GenerateNumber(time.Now()),
		customerID, sellerID,
		[]order.Item{item}, "14 Residency Road", "upi", "",
	)
	require.NoError(t, err)
	return aggregate
}

func newConfirmedOrder(t *testing.T, customerID, sellerID kernel.UUID) *order.Order {
	t.Helper()

	aggregate := newPendingOrder(t, customerID, sellerID)
	require.NoError(t, aggregate.AdvanceBySeller(sellerID, order.Confirmed, ""))
	return aggregate
}

func newAssignedOrder(t *testing.T, customerID, sellerID, agentID kernel.UUID) *order.Order {
	t.Helper()

	aggregate := newConfirmedOrder(t, customerID, sellerID)
	require.NoError(t, aggregate.AssignAgent(sellerID, agentID, ""))
	return aggregate
}
