package queries

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its item snapshot. Only the
// order's customer, seller, or assigned agent may read it.
type GetOrderQuery struct {
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates an order detail query.
func NewGetOrderQuery(orderID, requesterID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), requesterID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:     orderID,
		requesterID: requesterID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequesterID returns the identifier of the user asking.
func (q GetOrderQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// OrderItemResponse is one snapshotted line of an order detail.
type OrderItemResponse struct {
	FoodItemID         kernel.UUID
	Name               string
	Quantity           int
	PricePaise         int64
	DiscountPricePaise *int64
}

// GetOrderQueryResponse is the full order detail view.
type GetOrderQueryResponse struct {
	OrderID             kernel.UUID
	Number              string
	CustomerID          kernel.UUID
	SellerID            kernel.UUID
	AgentID             *kernel.UUID
	Status              string
	SubtotalPaise       int64
	DeliveryChargePaise int64
	TaxAmountPaise      int64
	FinalAmountPaise    int64
	DeliveryAddress     string
	PaymentMethod       string
	SpecialInstructions string
	Items               []OrderItemResponse
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
