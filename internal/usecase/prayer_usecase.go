package usecase

import (
	"context"
	"time"

	"mihrab/internal/domain/geo"
	"mihrab/internal/domain/prayer"
)

// PrayerDayOutput is one day's schedule with the upcoming prayer resolved
// against the request time.
type PrayerDayOutput struct {
	Day  *prayer.Day  `json:"day"`
	Next *prayer.Next `json:"next,omitempty"`
}

// PrayerUsecase defines the interface for prayer schedule operations.
type PrayerUsecase interface {
	// GetDay returns the schedule for one calendar day at the given location.
	GetDay(ctx context.Context, coord geo.Coordinate, date time.Time) (*prayer.Day, error)

	// Today returns today's schedule with the next prayer and countdown
	// computed from now. After Isha the next prayer is tomorrow's Fajr,
	// flagged Tomorrow with no countdown.
	Today(ctx context.Context, coord geo.Coordinate, now time.Time) (*PrayerDayOutput, error)
}
