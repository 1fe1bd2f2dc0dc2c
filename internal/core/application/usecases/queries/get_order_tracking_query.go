package queries

import (
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

var ErrGetOrderTrackingQueryIsNotConstructed = errors.New(
	"GetOrderTrackingQuery must be created via NewGetOrderTrackingQuery constructor",
)

// SortOrder selects the direction of the tracking timeline.
type SortOrder string

const (
	// SortAscending lists events oldest first.
	SortAscending SortOrder = "asc"

	// SortDescending lists events newest first.
	SortDescending SortOrder = "desc"
)

// GetOrderTrackingQuery retrieves an order's tracking timeline. Only the
// order's customer, seller, or assigned agent may read it.
type GetOrderTrackingQuery struct {
	orderID     kernel.UUID
	requesterID kernel.UUID
	sort        SortOrder

	guard guard.ConstructorGuard
}

// NewGetOrderTrackingQuery creates a tracking timeline query.
func NewGetOrderTrackingQuery(orderID, requesterID kernel.UUID, sort SortOrder) (GetOrderTrackingQuery, error) {
	if err := errors.Join(orderID.Validate(), requesterID.Validate()); err != nil {
		return GetOrderTrackingQuery{}, err
	}
	if sort != SortAscending && sort != SortDescending {
		return GetOrderTrackingQuery{}, errs.NewValueIsInvalidError("sort")
	}

	return GetOrderTrackingQuery{
		orderID:     orderID,
		requesterID: requesterID,
		sort:        sort,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTrackingQueryIsNotConstructed)
}

// OrderID returns the order whose timeline is requested.
func (q GetOrderTrackingQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequesterID returns the identifier of whoever asks.
func (q GetOrderTrackingQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

// Sort returns the timeline direction.
func (q GetOrderTrackingQuery) Sort() SortOrder {
	return q.sort
}

// TrackingEventResponse is one entry of the tracking timeline.
type TrackingEventResponse struct {
	EventID   kernel.UUID
	Status    string
	Notes     string
	Latitude  *float64
	Longitude *float64
	CreatedAt time.Time
}

// GetOrderTrackingQueryResponse is the order header with its timeline.
type GetOrderTrackingQueryResponse struct {
	OrderID kernel.UUID
	Number  string
	Status  string
	Events  []TrackingEventResponse
}
