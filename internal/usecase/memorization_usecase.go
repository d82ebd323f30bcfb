package usecase

import (
	"context"

	"github.com/google/uuid"

	"mihrab/internal/domain/entity"
)

// CreateMemorizationInput defines the data required to track an ayah range.
type CreateMemorizationInput struct {
	UserID   uuid.UUID
	Surah    int
	AyahFrom int
	AyahTo   int
	Status   entity.MemorizationStatus
}

// UpdateMemorizationInput updates the status of a tracked range. Marking a
// range also stamps its review time.
type UpdateMemorizationInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
	Status  entity.MemorizationStatus
}

// MemorizationUsecase defines the interface for hifz tracking operations.
type MemorizationUsecase interface {
	CreateEntry(ctx context.Context, input CreateMemorizationInput) (*entity.MemorizationEntry, error)
	ListEntries(ctx context.Context, userID uuid.UUID) ([]*entity.MemorizationEntry, error)
	UpdateStatus(ctx context.Context, input UpdateMemorizationInput) (*entity.MemorizationEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error
	Summary(ctx context.Context, userID uuid.UUID) (*entity.MemorizationSummary, error)
}
