package kernel

import (
	"fmt"
	"math"

	"logistics/internal/pkg/errs"
)

// Distance is a travel distance in meters. Meters are the canonical unit:
// the optimization backend reports kilometers and the persistence backend
// stores meters, so conversion happens once, in the constructor, and never
// again downstream.
type Distance int64

// NewDistanceFromMeters validates a distance already expressed in meters.
func NewDistanceFromMeters(meters int64) (Distance, error) {
	if meters < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"distance is invalid",
			fmt.Errorf("%d meters is negative", meters),
		)
	}
	return Distance(meters), nil
}

// NewDistanceFromKilometers converts a kilometer value to canonical meters,
// rounding half away from zero.
func NewDistanceFromKilometers(km float64) (Distance, error) {
	if km < 0 || math.IsNaN(km) || math.IsInf(km, 0) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"distance is invalid",
			fmt.Errorf("%v km is not a valid distance", km),
		)
	}
	return Distance(math.Round(km * 1000)), nil
}

// Meters returns the distance in meters.
func (d Distance) Meters() int64 {
	return int64(d)
}

// Kilometers returns the distance in kilometers.
func (d Distance) Kilometers() float64 {
	return float64(d) / 1000
}

// String implements fmt.Stringer.
func (d Distance) String() string {
	return fmt.Sprintf("%dm", int64(d))
}
