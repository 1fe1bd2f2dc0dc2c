// Package queries contains read-only operations in the CQRS architecture.
// Query handlers bypass the domain layer and read projections straight
// from the database with raw SQL.
package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrGetCartQueryIsNotConstructed = errors.New(
	"GetCartQuery must be created via NewGetCartQuery constructor",
)

// GetCartQuery retrieves a customer's cart with lines grouped by seller,
// the same shape checkout will split it into.
type GetCartQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the customer's cart.
func NewGetCartQuery(customerID kernel.UUID) (GetCartQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// CustomerID returns the cart owner's identifier.
func (q GetCartQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// CartLineResponse is one cart line joined with its catalog data.
type CartLineResponse struct {
	LineID             kernel.UUID
	FoodItemID         kernel.UUID
	Name               string
	Quantity           int
	PricePaise         int64
	DiscountPricePaise *int64
	LineTotalPaise     int64
}

// CartSellerGroupResponse is one seller's slice of the cart with its
// running subtotal.
type CartSellerGroupResponse struct {
	SellerID      kernel.UUID
	Lines         []CartLineResponse
	SubtotalPaise int64
}

// GetCartQueryResponse is the full cart view: seller groups in the order
// sellers first appear, plus the overall total.
type GetCartQueryResponse struct {
	Sellers    []CartSellerGroupResponse
	TotalPaise int64
}
