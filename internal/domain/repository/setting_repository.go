package repository

import (
	"context"

	"mihrab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSettingNotFound is returned when a setting key has no stored value.
var ErrSettingNotFound = errors.New("setting not found")

// SettingRepository defines the interface for versioned per-user preference
// blobs, keyed by (user, key).
type SettingRepository interface {
	// FindSetting retrieves one setting blob for a user.
	FindSetting(ctx context.Context, userID uuid.UUID, key string) (*entity.Setting, error)

	// SaveSetting creates or replaces the blob for (user, key).
	SaveSetting(ctx context.Context, setting *entity.Setting) error

	// FindSettingsByUser retrieves all stored settings for a user.
	FindSettingsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Setting, error)
}
