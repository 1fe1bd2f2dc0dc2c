package queries

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableAgentsQueryHandler lists agents currently in the available
// pool, most recently active first.
type GetAvailableAgentsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableAgentsQueryHandler creates a handler for available agent
// queries.
func NewGetAvailableAgentsQueryHandler(db *gorm.DB) GetAvailableAgentsQueryHandler {
	return GetAvailableAgentsQueryHandler{db: db}
}

// Handle executes the pool query.
func (h GetAvailableAgentsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableAgentsQuery,
) ([]AvailableAgentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT agent_id, last_active
		FROM agent_availability
		WHERE is_available = TRUE
		ORDER BY last_active DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	agents := make([]AvailableAgentResponse, 0)

	for rows.Next() {
		var (
			id         uuid.UUID
			lastActive time.Time
		)

		if err = rows.Scan(&id, &lastActive); err != nil {
			return nil, err
		}

		agentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		agents = append(agents, AvailableAgentResponse{
			AgentID:    agentID,
			LastActive: lastActive,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return agents, nil
}
