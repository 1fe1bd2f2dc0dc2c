package queries

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the orders visible to one user in one role:
// customers see orders they placed, sellers see orders placed with them,
// and delivery agents see orders assigned to them. An optional status
// filter narrows the result.
type GetOrdersQuery struct {
	userID       kernel.UUID
	role         kernel.Role
	statusFilter *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query for the given user and
// role. Pass a nil statusFilter for all statuses.
func NewGetOrdersQuery(userID kernel.UUID, role kernel.Role, statusFilter *order.Status) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setUserID(userID),
		query.setRole(role),
		query.setStatusFilter(statusFilter),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// UserID returns the requesting user's identifier.
func (q GetOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Role returns the role determining which orders are visible.
func (q GetOrdersQuery) Role() kernel.Role {
	return q.role
}

// StatusFilter returns the optional status filter, or nil.
func (q GetOrdersQuery) StatusFilter() *order.Status {
	return q.statusFilter
}

func (q *GetOrdersQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}

func (q *GetOrdersQuery) setRole(role kernel.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	q.role = role
	return nil
}

func (q *GetOrdersQuery) setStatusFilter(statusFilter *order.Status) error {
	if statusFilter == nil {
		return nil
	}
	return statusFilter.Validate()
}

// OrderSummaryResponse is one row of an order listing.
type OrderSummaryResponse struct {
	OrderID          kernel.UUID
	Number           string
	CustomerID       kernel.UUID
	SellerID         kernel.UUID
	AgentID          *kernel.UUID
	Status           string
	FinalAmountPaise int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
