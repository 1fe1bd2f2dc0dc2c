// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the catalog gateway, and
// the identity provider. Adapters implement them, enabling dependency
// inversion and testability.
package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Every customer has at most one cart; Get returns an empty cart for
// customers who never added anything.
type CartRepository interface {
	// Get retrieves the customer's cart with all its lines. A customer
	// without stored lines gets a valid empty cart, not an error.
	Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// GetLineOwner returns the customer owning the given cart line.
	// Returns ObjectNotFoundError when the line does not exist, letting
	// handlers distinguish a missing line from someone else's line.
	GetLineOwner(ctx context.Context, lineID kernel.UUID) (kernel.UUID, error)

	// Save persists the cart's current lines, inserting new ones and
	// updating changed quantities.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// DeleteLines removes the given lines from storage. Used when a
	// quantity update drops a line and when checkout consumes a seller's
	// lines.
	DeleteLines(ctx context.Context, lineIDs []kernel.UUID) error
}
