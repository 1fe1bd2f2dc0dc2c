package agentrepo

import (
	"context"
	"errors"
	"time"

	"foodcourt/internal/core/domain/model/agent"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAgentRepository implements AgentRepository using GORM.
type GormAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAgentRepository creates a new GORM agent repository.
func NewGormAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentRepository {
	return &GormAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get loads an agent's availability record.
func (r *GormAgentRepository) Get(ctx context.Context, agentID kernel.UUID) (*agent.Availability, error) {
	if err := agentID.Validate(); err != nil {
		return nil, err
	}

	var dto AvailabilityDTO
	if err := r.db.WithContext(ctx).First(&dto, "agent_id = ?", agentID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent", agentID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Upsert inserts or replaces the agent's row. One row per agent, so a
// conflict on the primary key just refreshes the flag and last activity.
func (r *GormAgentRepository) Upsert(ctx context.Context, aggregate *agent.Availability) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "agent_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"is_available", "last_active"}),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.AgentID(), aggregate)
	return nil
}

// MarkStaleUnavailable flips agents silent since the cutoff to unavailable
// and reports how many rows changed.
func (r *GormAgentRepository) MarkStaleUnavailable(ctx context.Context, olderThan time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&AvailabilityDTO{}).
		Where("is_available = ? AND last_active < ?", true, olderThan).
		Update("is_available", false)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
