// Package catalogrepo provides read access to the food catalog. The
// catalog is maintained elsewhere on the platform; this adapter only
// reads the rows checkout needs to snapshot prices into orders.
package catalogrepo

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FoodItemDTO represents a catalog row.
type FoodItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	SellerID      uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	Price         int64
	DiscountPrice *int64
	IsAvailable   bool
}

// TableName specifies the database table name for catalog entries.
func (FoodItemDTO) TableName() string {
	return "food_items"
}

// GormCatalogGateway implements CatalogGateway using GORM. It runs outside
// any unit of work since the catalog is never written here.
type GormCatalogGateway struct {
	db *gorm.DB
}

// NewGormCatalogGateway creates a new GORM catalog gateway.
func NewGormCatalogGateway(db *gorm.DB) *GormCatalogGateway {
	return &GormCatalogGateway{db: db}
}

// GetItems fetches the catalog entries for the given IDs. IDs without a
// row are simply absent from the result; callers decide whether a missing
// item is an error.
func (g *GormCatalogGateway) GetItems(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]ports.CatalogItem, error) {
	if len(ids) == 0 {
		return map[kernel.UUID]ports.CatalogItem{}, nil
	}

	raw := make([]any, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []FoodItemDTO
	if err := g.db.WithContext(ctx).Find(&dtos, "id IN ?", raw).Error; err != nil {
		return nil, err
	}

	items := make(map[kernel.UUID]ports.CatalogItem, len(dtos))
	for _, dto := range dtos {
		item, err := toCatalogItem(dto)
		if err != nil {
			return nil, err
		}
		items[item.ID] = item
	}

	return items, nil
}

func toCatalogItem(dto FoodItemDTO) (ports.CatalogItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.CatalogItem{}, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return ports.CatalogItem{}, err
	}

	var discountPrice *kernel.Money
	if dto.DiscountPrice != nil {
		money := kernel.NewMoney(*dto.DiscountPrice)
		discountPrice = &money
	}

	return ports.CatalogItem{
		ID:            id,
		SellerID:      sellerID,
		Name:          dto.Name,
		Price:         kernel.NewMoney(dto.Price),
		DiscountPrice: discountPrice,
		IsAvailable:   dto.IsAvailable,
	}, nil
}
