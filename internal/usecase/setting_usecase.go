package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"mihrab/internal/domain/entity"
)

// PutSettingInput defines a preference write. Value is an opaque JSON blob
// owned by the client.
type PutSettingInput struct {
	UserID uuid.UUID
	Key    string
	Value  json.RawMessage
}

// SettingUsecase defines the interface for per-user preference blobs.
type SettingUsecase interface {
	// GetSetting returns one stored preference.
	GetSetting(ctx context.Context, userID uuid.UUID, key string) (*entity.Setting, error)

	// PutSetting validates the key and stores the blob, stamping the
	// current schema version.
	PutSetting(ctx context.Context, input PutSettingInput) (*entity.Setting, error)

	// ListSettings returns every stored preference for the user.
	ListSettings(ctx context.Context, userID uuid.UUID) ([]*entity.Setting, error)
}
