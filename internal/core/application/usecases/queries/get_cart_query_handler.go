package queries

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads the customer's cart joined with catalog
// prices. Line totals use the discount price when one is set, matching
// what checkout will charge.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query. An empty cart yields a response with no
// seller groups, not an error.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.food_item_id,
			c.quantity,
			f.seller_id,
			f.name,
			f.price,
			f.discount_price
		FROM carts c
		JOIN food_items f ON f.id = c.food_item_id
		WHERE c.customer_id = ?
		ORDER BY c.created_at, c.id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	var response GetCartQueryResponse
	groupIndex := make(map[kernel.UUID]int)

	for rows.Next() {
		var (
			lineID, foodItemID, sellerRaw uuid.UUID
			quantity                      int
			name                          string
			price                         int64
			discountPrice                 *int64
		)

		err = rows.Scan(&lineID, &foodItemID, &quantity, &sellerRaw, &name, &price, &discountPrice)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		id, idErr := kernel.UUIDFromBytes(lineID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		itemID, idErr := kernel.UUIDFromBytes(foodItemID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		sellerID, idErr := kernel.UUIDFromBytes(sellerRaw[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}

		effective := price
		if discountPrice != nil {
			effective = *discountPrice
		}

		line := CartLineResponse{
			LineID:             id,
			FoodItemID:         itemID,
			Name:               name,
			Quantity:           quantity,
			PricePaise:         price,
			DiscountPricePaise: discountPrice,
			LineTotalPaise:     effective * int64(quantity),
		}

		i, seen := groupIndex[sellerID]
		if !seen {
			i = len(response.Sellers)
			groupIndex[sellerID] = i
			response.Sellers = append(response.Sellers, CartSellerGroupResponse{SellerID: sellerID})
		}
		response.Sellers[i].Lines = append(response.Sellers[i].Lines, line)
		response.Sellers[i].SubtotalPaise += line.LineTotalPaise
		response.TotalPaise += line.LineTotalPaise
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
