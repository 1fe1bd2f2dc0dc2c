package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
)

// CatalogItem is the read model of a sellable catalog entry as checkout
// needs it: who sells it and what it costs right now.
type CatalogItem struct {
	ID            kernel.UUID
	SellerID      kernel.UUID
	Name          string
	Price         kernel.Money
	DiscountPrice *kernel.Money
	IsAvailable   bool
}

// CatalogGateway provides read access to the food catalog. The catalog is
// owned by another part of the platform; this system only snapshots prices
// into orders at checkout time.
type CatalogGateway interface {
	// GetItems fetches the catalog entries for the given IDs. IDs without
	// a catalog entry are absent from the result rather than an error;
	// callers decide how to treat a missing item.
	GetItems(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]CatalogItem, error)
}
