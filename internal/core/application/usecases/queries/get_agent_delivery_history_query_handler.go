package queries

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAgentDeliveryHistoryQueryHandler lists an agent's delivered orders,
// capped at the most recent fifty.
type GetAgentDeliveryHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetAgentDeliveryHistoryQueryHandler creates a handler for delivery
// history queries.
func NewGetAgentDeliveryHistoryQueryHandler(db *gorm.DB) GetAgentDeliveryHistoryQueryHandler {
	return GetAgentDeliveryHistoryQueryHandler{db: db}
}

// Handle executes the history query, newest delivery first.
func (h GetAgentDeliveryHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetAgentDeliveryHistoryQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
		WHERE agent_id = ? AND status = ?
		ORDER BY updated_at DESC
		LIMIT ?
	`, query.AgentID().Bytes(), order.Delivered.String(), historyLimit).Rows()
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
