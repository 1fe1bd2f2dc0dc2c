package orderrepo

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// uniqueViolation is the postgres error code for unique index violations.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a postgres unique index
// violation. The gorm postgres driver connects through pgx, so the
// driver error arrives as *pgconn.PgError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add persists a new order with its items and tracking log. A duplicate
// order number surfaces as ConflictError so the caller can regenerate
// the number and retry.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("order", aggregate.Number().String(), err)
		}
		return err
	}

	if items := itemsFromDomain(aggregate); len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}
	if events := eventsFromDomain(aggregate); len(events) > 0 {
		if err := r.db.WithContext(ctx).Create(&events).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the mutable part of an existing order: the cached
// status, the agent assignment, the updated_at time, and tracking events
// appended since the aggregate was loaded. Events already in the table
// are skipped by primary key, so re-persisting a loaded log is safe.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":     dto.Status,
			"agent_id":   dto.AgentID,
			"updated_at": dto.UpdatedAt,
		}).Error
	if err != nil {
		return err
	}

	if events := eventsFromDomain(aggregate); len(events) > 0 {
		err = r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).Create(&events).Error
		if err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get loads an order with its items and tracking log in creation order.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	var itemDTOs []OrderItemDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&itemDTOs, "order_id = ?", id.Bytes()).Error
	if err != nil {
		return nil, err
	}

	var eventDTOs []TrackingEventDTO
	err = r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&eventDTOs, "order_id = ?", id.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, itemDTOs, eventDTOs)
}
