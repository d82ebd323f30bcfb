package repository

import (
	"context"

	"mihrab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrStreakNotFound is returned when no streak ledger exists for a user yet.
var ErrStreakNotFound = errors.New("reading streak not found")

// StreakRepository defines the interface for the per-user reading streak
// ledger. One row per user; SaveStreak performs an upsert.
type StreakRepository interface {
	// FindStreakByUserID retrieves the ledger for a user.
	FindStreakByUserID(ctx context.Context, userID uuid.UUID) (*entity.ReadingStreak, error)

	// SaveStreak creates or replaces the ledger for the streak's user.
	SaveStreak(ctx context.Context, streak *entity.ReadingStreak) error
}
