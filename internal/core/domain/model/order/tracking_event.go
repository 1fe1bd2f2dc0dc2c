package order

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

// ErrTrackingEventIsNotConstructed is returned when using a zero-value
// TrackingEvent.
var ErrTrackingEventIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingEvent must be created via NewTrackingEvent or RestoreTrackingEvent")

// TrackingEvent is one append-only record of an order status change,
// optionally geotagged when a delivery agent reports position. Events are
// never mutated or deleted; the event with the greatest creation time
// defines the order's current status.
type TrackingEvent struct {
	id        kernel.UUID
	status    Status
	notes     string
	location  *kernel.GeoPoint
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewTrackingEvent creates a fresh event with a generated identifier.
func NewTrackingEvent(status Status, notes string, location *kernel.GeoPoint, createdAt time.Time) (TrackingEvent, error) {
	return RestoreTrackingEvent(kernel.NewUUID(), status, notes, location, createdAt)
}

// RestoreTrackingEvent reconstructs an event from persistence.
func RestoreTrackingEvent(
	id kernel.UUID,
	status Status,
	notes string,
	location *kernel.GeoPoint,
	createdAt time.Time,
) (TrackingEvent, error) {
	if err := id.Validate(); err != nil {
		return TrackingEvent{}, err
	}
	if err := status.Validate(); err != nil {
		return TrackingEvent{}, err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return TrackingEvent{}, err
		}
	}
	if createdAt.IsZero() {
		return TrackingEvent{}, errs.NewValueIsRequiredError("createdAt")
	}

	return TrackingEvent{
		id:        id,
		status:    status,
		notes:     notes,
		location:  location,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// ID returns the event identifier.
func (e TrackingEvent) ID() kernel.UUID {
	return e.id
}

// Status returns the status recorded by the event.
func (e TrackingEvent) Status() Status {
	return e.status
}

// Notes returns the free-form note attached to the event.
func (e TrackingEvent) Notes() string {
	return e.notes
}

// Location returns the optional geotag, or nil.
func (e TrackingEvent) Location() *kernel.GeoPoint {
	return e.location
}

// CreatedAt returns the event creation time.
func (e TrackingEvent) CreatedAt() time.Time {
	return e.createdAt
}

// Validate ensures the event was created via a constructor.
func (e TrackingEvent) Validate() error {
	return e.guard.Validate(ErrTrackingEventIsNotConstructed)
}
