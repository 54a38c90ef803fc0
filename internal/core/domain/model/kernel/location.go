package kernel

import (
	"errors"
	"fmt"

	"gasdelivery/internal/pkg/errs"
	"gasdelivery/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost valid latitude in decimal degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost valid latitude in decimal degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost valid longitude in decimal degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost valid longitude in decimal degrees.
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when attempting to use an improperly
// initialized Location. Locations must be created with NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via the NewLocation constructor")

// Location is an immutable value object describing a delivery destination:
// geographic coordinates plus a free-text street address. The map provider
// produces the tuple and the domain treats it as opaque apart from bounds
// checks on the coordinates. The zero value is invalid.
//
// Example:
//
//	loc, err := kernel.NewLocation(-1.2921, 36.8219, "Moi Avenue, Nairobi")
//	if err != nil {
//	    // coordinates out of bounds
//	}
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	address   string
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location with validated coordinates.
// Latitude must lie in [LatitudeMin..LatitudeMax] and longitude in
// [LongitudeMin..LongitudeMax]. The address may be empty: the coordinates are
// authoritative and the address is display text chosen by the customer.
func NewLocation(latitude, longitude float64, address string) (Location, error) {
	loc := Location{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// Validate checks that the Location was produced by NewLocation.
// The zero value fails with ErrLocationIsNotConstructed.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// Address returns the free-text street address, possibly empty.
func (l Location) Address() string {
	return l.address
}

// IsEqual reports whether two locations have identical coordinates and address.
func (l Location) IsEqual(other Location) bool {
	return l.latitude == other.latitude &&
		l.longitude == other.longitude &&
		l.address == other.address
}

// String implements fmt.Stringer for logging.
func (l Location) String() string {
	return fmt.Sprintf("Location(%.6f,%.6f)", l.latitude, l.longitude)
}

func (l *Location) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	l.longitude = longitude
	return nil
}
