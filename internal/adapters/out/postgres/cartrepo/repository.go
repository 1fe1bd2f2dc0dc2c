package cartrepo

import (
	"context"
	"errors"

	"foodcourt/internal/core/domain/model/cart"
	"foodcourt/internal/core/domain/model/kernel"
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

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get loads the customer's cart. A customer without rows gets a valid
// empty cart.
func (r *GormCartRepository) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartLineDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	return toDomain(customerID, dtos)
}

// GetLineOwner returns the customer owning the given line.
func (r *GormCartRepository) GetLineOwner(ctx context.Context, lineID kernel.UUID) (kernel.UUID, error) {
	if err := lineID.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	var dto CartLineDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", lineID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.UUID{}, errs.NewObjectNotFoundError("cart line", lineID.String())
		}
		return kernel.UUID{}, err
	}

	return kernel.UUIDFromBytes(dto.CustomerID[:])
}

// Save upserts the cart's lines by primary key, so merged quantities
// update in place and new lines insert. A concurrent insert of the same
// (customer, item) pair surfaces as ConflictError.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dtos := fromDomain(aggregate)
	if len(dtos) == 0 {
		return nil
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity"}),
	}).Create(&dtos).Error
	if err != nil {
		if isUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("cart line", aggregate.CustomerID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.CustomerID(), aggregate)
	return nil
}

// DeleteLines removes the given lines. Missing IDs are not an error.
func (r *GormCartRepository) DeleteLines(ctx context.Context, lineIDs []kernel.UUID) error {
	if len(lineIDs) == 0 {
		return nil
	}

	raw := make([]any, 0, len(lineIDs))
	for _, id := range lineIDs {
		raw = append(raw, id.Bytes())
	}

	return r.db.WithContext(ctx).Delete(&CartLineDTO{}, "id IN ?", raw).Error
}
