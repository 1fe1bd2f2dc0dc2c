package queries

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders scoped by the requester's role. The
// scope column is decided here rather than in SQL text interpolation, so
// user input never reaches the query string.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var scopeColumn string
	switch query.Role() {
	case kernel.RoleCustomer:
		scopeColumn = "customer_id"
	case kernel.RoleSeller:
		scopeColumn = "seller_id"
	case kernel.RoleDelivery:
		scopeColumn = "agent_id"
	}

	sql := `
		SELECT
			id,
			order_number,
			customer_id,
			seller_id,
			agent_id,
			status,
			final_amount,
			created_at,
			updated_at
		FROM orders
		WHERE ` + scopeColumn + ` = ?`
	args := []any{query.UserID().Bytes()}

	if filter := query.StatusFilter(); filter != nil {
		sql += ` AND status = ?`
		args = append(args, filter.String())
	}
	sql += ` ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]OrderSummaryResponse, 0)

	for rows.Next() {
		var (
			id, customerRaw, sellerRaw uuid.UUID
			agentRaw                   *uuid.UUID
			number, status             string
			finalAmount                int64
			createdAt, updatedAt       time.Time
		)

		err = rows.Scan(&id, &number, &customerRaw, &sellerRaw, &agentRaw,
			&status, &finalAmount, &createdAt, &updatedAt)
		if err != nil {
			return nil, err
		}

		summary, convErr := buildOrderSummary(
			id, number, customerRaw, sellerRaw, agentRaw, status, finalAmount, createdAt, updatedAt)
		if convErr != nil {
			return nil, convErr
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func buildOrderSummary(
	id uuid.UUID,
	number string,
	customerRaw, sellerRaw uuid.UUID,
	agentRaw *uuid.UUID,
	status string,
	finalAmount int64,
	createdAt, updatedAt time.Time,
) (OrderSummaryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	customerID, err := kernel.UUIDFromBytes(customerRaw[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}
	sellerID, err := kernel.UUIDFromBytes(sellerRaw[:])
	if err != nil {
		return OrderSummaryResponse{}, err
	}

	var agentID *kernel.UUID
	if agentRaw != nil {
		converted, agentErr := kernel.UUIDFromBytes(agentRaw[:])
		if agentErr != nil {
			return OrderSummaryResponse{}, agentErr
		}
		agentID = &converted
	}

	return OrderSummaryResponse{
		OrderID:          orderID,
		Number:           number,
		CustomerID:       customerID,
		SellerID:         sellerID,
		AgentID:          agentID,
		Status:           status,
		FinalAmountPaise: finalAmount,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}, nil
}
