package ports

import (
	"context"
	"time"

	"foodcourt/internal/core/domain/model/agent"
	"foodcourt/internal/core/domain/model/kernel"
)

// AgentRepository defines the persistence contract for delivery agent
// availability records.
type AgentRepository interface {
	// Get retrieves an agent's availability record. Returns
	// ObjectNotFoundError for agents that never registered.
	Get(ctx context.Context, agentID kernel.UUID) (*agent.Availability, error)

	// Upsert inserts or replaces the agent's availability record.
	// Heartbeats and explicit availability changes both go through here.
	Upsert(ctx context.Context, aggregate *agent.Availability) error

	// MarkStaleUnavailable flips agents whose last activity is older than
	// the cutoff to unavailable and reports how many rows changed. Used
	// by the offline sweep job.
	MarkStaleUnavailable(ctx context.Context, olderThan time.Time) (int64, error)
}
