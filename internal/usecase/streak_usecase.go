package usecase

import (
	"context"

	"github.com/google/uuid"
)

// StreakOutput is the streak state rendered for display.
type StreakOutput struct {
	// CurrentStreak is the display value: 0 when the last read is neither
	// today nor yesterday, even before the stored ledger is updated.
	CurrentStreak int      `json:"current_streak"`
	LongestStreak int      `json:"longest_streak"`
	TotalDaysRead int      `json:"total_days_read"`
	LastReadDate  string   `json:"last_read_date,omitempty"`
	ReadDates     []string `json:"read_dates"`
	RecordedToday bool     `json:"recorded_today"`
}

// StreakUsecase defines the interface for the daily reading streak.
type StreakUsecase interface {
	// RecordReading marks today as read for the user. Idempotent per
	// calendar day.
	RecordReading(ctx context.Context, userID uuid.UUID) (*StreakOutput, error)

	// GetStreak returns the user's streak state without recording anything.
	GetStreak(ctx context.Context, userID uuid.UUID) (*StreakOutput, error)
}
