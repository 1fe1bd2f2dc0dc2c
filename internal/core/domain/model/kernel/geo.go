package kernel

import (
	"fmt"

	"foodcourt/internal/pkg/errs"
	"foodcourt/internal/pkg/guard"
)

const (
	// GeoLatitudeMin and GeoLatitudeMax bound valid latitudes in degrees.
	GeoLatitudeMin = -90.0
	GeoLatitudeMax = 90.0
	// GeoLongitudeMin and GeoLongitudeMax bound valid longitudes in degrees.
	GeoLongitudeMin = -180.0
	GeoLongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when using a zero-value GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"GeoPoint must be created via NewGeoPoint constructor")

// GeoPoint is an immutable latitude/longitude pair, attached optionally to
// tracking events when a delivery agent reports position alongside a status
// change. It validates coordinate bounds only; no routing or distance
// semantics live here.
type GeoPoint struct {
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with validated coordinates.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < GeoLatitudeMin || latitude > GeoLatitudeMax {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("latitude",
			fmt.Errorf("%f is out of [%f, %f]", latitude, GeoLatitudeMin, GeoLatitudeMax))
	}
	if longitude < GeoLongitudeMin || longitude > GeoLongitudeMax {
		return GeoPoint{}, errs.NewValueIsInvalidErrorWithCause("longitude",
			fmt.Errorf("%f is out of [%f, %f]", longitude, GeoLongitudeMin, GeoLongitudeMax))
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Latitude returns the latitude in degrees.
func (g GeoPoint) Latitude() float64 {
	return g.latitude
}

// Longitude returns the longitude in degrees.
func (g GeoPoint) Longitude() float64 {
	return g.longitude
}

// Validate ensures the point was created via NewGeoPoint.
func (g GeoPoint) Validate() error {
	return g.guard.Validate(ErrGeoPointIsNotConstructed)
}
