package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored with its item snapshots and its full tracking log;
// tracking rows are append-only.
type OrderRepository interface {
	// Add persists a new order aggregate with its items and initial
	// tracking event. A duplicate order number surfaces as ConflictError
	// so checkout can regenerate and retry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate: the cached
	// status, the agent assignment, and any tracking events appended
	// since the aggregate was loaded. Item snapshots never change.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including items and the tracking log in creation order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
