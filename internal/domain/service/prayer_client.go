package service

import (
	"context"
	"time"

	"mihrab/internal/domain/geo"
	"mihrab/internal/domain/prayer"
)

// PrayerTimesClient defines the interface for fetching computed prayer
// schedules from an upstream calculation API.
type PrayerTimesClient interface {
	// GetTimings returns the prayer schedule and Hijri date for one day at
	// the given location, using the configured calculation method.
	GetTimings(ctx context.Context, date time.Time, coord geo.Coordinate, method int) (*prayer.Day, error)
}
