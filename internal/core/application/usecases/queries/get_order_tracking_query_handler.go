package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderTrackingQueryHandler reads an order's tracking timeline. The
// participant check happens in the header query: a requester who is not
// the order's customer, seller, or assigned agent gets the same not-found
// answer as for an order that does not exist, so order IDs cannot be
// probed.
type GetOrderTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderTrackingQueryHandler creates a handler for tracking queries.
func NewGetOrderTrackingQueryHandler(db *gorm.DB) GetOrderTrackingQueryHandler {
	return GetOrderTrackingQueryHandler{db: db}
}

// Handle executes the tracking query in the requested direction.
func (h GetOrderTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	response, err := h.loadHeader(ctx, query)
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	direction := "ASC"
	if query.Sort() == SortDescending {
		direction = "DESC"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			notes,
			latitude,
			longitude,
			created_at
		FROM order_tracking
		WHERE order_id = ?
		ORDER BY created_at `+direction+`, id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id                  uuid.UUID
			status, notes       string
			latitude, longitude *float64
			createdAt           time.Time
		)

		err = rows.Scan(&id, &status, &notes, &latitude, &longitude, &createdAt)
		if err != nil {
			return GetOrderTrackingQueryResponse{}, err
		}

		eventID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetOrderTrackingQueryResponse{}, idErr
		}

		response.Events = append(response.Events, TrackingEventResponse{
			EventID:   eventID,
			Status:    status,
			Notes:     notes,
			Latitude:  latitude,
			Longitude: longitude,
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderTrackingQueryHandler) loadHeader(
	ctx context.Context,
	query GetOrderTrackingQuery,
) (GetOrderTrackingQueryResponse, error) {
	var (
		id             uuid.UUID
		number, status string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, order_number, status
		FROM orders
		WHERE id = ? AND (customer_id = ? OR seller_id = ? OR agent_id = ?)
	`, query.OrderID().Bytes(), query.RequesterID().Bytes(),
		query.RequesterID().Bytes(), query.RequesterID().Bytes()).Row()

	if err := row.Scan(&id, &number, &status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderTrackingQueryResponse{},
				errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderTrackingQueryResponse{},
			errs.NewObjectNotFoundErrorWithCause("order", query.OrderID().String(), err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderTrackingQueryResponse{}, err
	}

	return GetOrderTrackingQueryResponse{
		OrderID: orderID,
		Number:  number,
		Status:  status,
	}, nil
}
