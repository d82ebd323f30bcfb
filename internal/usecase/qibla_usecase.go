package usecase

import (
	"context"

	"mihrab/internal/domain/geo"
)

// QiblaInput defines a qibla computation request. DeviceHeading is the
// compass heading reported by the client, nil when unavailable.
type QiblaInput struct {
	Coordinate      geo.Coordinate
	DeviceHeading   *float64
	PreviousHeading *float64 // Last smoothed heading, for low-pass filtering.

	// LocationDefaulted marks that no coordinates were supplied and the
	// Kaaba itself was substituted as the location.
	LocationDefaulted bool
}

// QiblaOutput carries the computed direction toward the Kaaba.
type QiblaOutput struct {
	// Bearing is the great-circle initial bearing from the location to the
	// Kaaba, degrees clockwise from true north.
	Bearing float64 `json:"bearing"`

	// DistanceKm is the great-circle distance to the Kaaba.
	DistanceKm float64 `json:"distance_km"`

	// SmoothedHeading is the device heading after low-pass filtering,
	// present when a device heading was supplied.
	SmoothedHeading *float64 `json:"smoothed_heading,omitempty"`

	// RelativeAngle is how far to rotate from the smoothed heading to face
	// the qibla, in [0,360) clockwise. Present with a device heading.
	RelativeAngle *float64 `json:"relative_angle,omitempty"`

	// LocationDefaulted is true when the request carried no coordinates and
	// the Kaaba was used as the location, so clients can tell the response
	// is not tied to the caller's position.
	LocationDefaulted bool `json:"location_defaulted,omitempty"`
}

// QiblaUsecase defines the interface for qibla direction computation.
type QiblaUsecase interface {
	Direction(ctx context.Context, input QiblaInput) (*QiblaOutput, error)

	// SmoothHeadings runs a batch of raw compass readings through the
	// low-pass filter and returns the smoothed trace, one value per input.
	SmoothHeadings(ctx context.Context, headings []float64) ([]float64, error)
}
