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

// GetOrderQueryHandler reads one order with its items. The participant
// check mirrors the tracking query: non-participants get the same
// not-found answer as a missing order.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the detail query.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.loadHeader(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			food_item_id,
			name,
			quantity,
			price,
			discount_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			foodItemRaw   uuid.UUID
			name          string
			quantity      int
			price         int64
			discountPrice *int64
		)

		err = rows.Scan(&foodItemRaw, &name, &quantity, &price, &discountPrice)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}

		foodItemID, idErr := kernel.UUIDFromBytes(foodItemRaw[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}

		response.Items = append(response.Items, OrderItemResponse{
			FoodItemID:         foodItemID,
			Name:               name,
			Quantity:           quantity,
			PricePaise:         price,
			DiscountPricePaise: discountPrice,
		})
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadHeader(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	var (
		id, customerRaw, sellerRaw                  uuid.UUID
		agentRaw                                    *uuid.UUID
		number, status                              string
		subtotal, deliveryCharge, tax, finalAmount  int64
		address, paymentMethod, specialInstructions string
		createdAt, updatedAt                        time.Time
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			customer_id,
			seller_id,
			agent_id,
			status,
			subtotal,
			delivery_charge,
			tax_amount,
			final_amount,
			delivery_address,
			payment_method,
			special_instructions,
			created_at,
			updated_at
		FROM orders
		WHERE id = ? AND (customer_id = ? OR seller_id = ? OR agent_id = ?)
	`, query.OrderID().Bytes(), query.RequesterID().Bytes(),
		query.RequesterID().Bytes(), query.RequesterID().Bytes()).Row()

	err := row.Scan(&id, &number, &customerRaw, &sellerRaw, &agentRaw, &status,
		&subtotal, &deliveryCharge, &tax, &finalAmount,
		&address, &paymentMethod, &specialInstructions, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderQueryResponse{},
				errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderQueryResponse{},
			errs.NewObjectNotFoundErrorWithCause("order", query.OrderID().String(), err)
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	customerID, err := kernel.UUIDFromBytes(customerRaw[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	sellerID, err := kernel.UUIDFromBytes(sellerRaw[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	var agentID *kernel.UUID
	if agentRaw != nil {
		converted, agentErr := kernel.UUIDFromBytes(agentRaw[:])
		if agentErr != nil {
			return GetOrderQueryResponse{}, agentErr
		}
		agentID = &converted
	}

	return GetOrderQueryResponse{
		OrderID:             orderID,
		Number:              number,
		CustomerID:          customerID,
		SellerID:            sellerID,
		AgentID:             agentID,
		Status:              status,
		SubtotalPaise:       subtotal,
		DeliveryChargePaise: deliveryCharge,
		TaxAmountPaise:      tax,
		FinalAmountPaise:    finalAmount,
		DeliveryAddress:     address,
		PaymentMethod:       paymentMethod,
		SpecialInstructions: specialInstructions,
		CreatedAt:           createdAt,
		UpdatedAt:           updatedAt,
	}, nil
}
