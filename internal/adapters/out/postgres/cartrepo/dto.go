// Package cartrepo provides data transfer objects and mapping functions
// for cart persistence. One row is one cart line; the cart aggregate is
// the set of rows sharing a customer_id. A unique index on
// (customer_id, food_item_id) backs the one-line-per-item rule at the
// storage level.
package cartrepo

import (
	"time"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartLineDTO represents one cart line row.
type CartLineDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_carts_customer_item"`
	FoodItemID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_carts_customer_item"`
	Quantity   int
	CreatedAt  time.Time
}

// TableName specifies the database table name for cart lines.
func (CartLineDTO) TableName() string {
	return "carts"
}

// fromDomain converts the cart aggregate to its row set.
func fromDomain(aggregate *cart.Cart) []CartLineDTO {
	dtos := make([]CartLineDTO, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		dtos = append(dtos, CartLineDTO{
			ID:         line.ID().Bytes(),
			CustomerID: aggregate.CustomerID().Bytes(),
			FoodItemID: line.FoodItemID().Bytes(),
			Quantity:   line.Quantity(),
		})
	}
	return dtos
}

// toDomain rebuilds the cart aggregate from its rows.
func toDomain(customerID kernel.UUID, dtos []CartLineDTO) (*cart.Cart, error) {
	lines := make([]cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		foodItemID, err := kernel.UUIDFromBytes(dto.FoodItemID[:])
		if err != nil {
			return nil, err
		}

		line, err := cart.RestoreLine(id, foodItemID, dto.Quantity)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return cart.RestoreCart(customerID, lines)
}
