package repository

import (
	"context"

	"mihrab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMemorizationNotFound is returned when a memorization entry lookup matches nothing.
var ErrMemorizationNotFound = errors.New("memorization entry not found")

// MemorizationRepository defines the interface for hifz tracking persistence.
type MemorizationRepository interface {
	// CreateEntry persists a new memorization entry.
	CreateEntry(ctx context.Context, entry *entity.MemorizationEntry) error

	// FindEntryByID retrieves an entry by its unique ID.
	FindEntryByID(ctx context.Context, id uuid.UUID) (*entity.MemorizationEntry, error)

	// FindEntriesByUser retrieves all entries for a user ordered by surah and ayah range.
	FindEntriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MemorizationEntry, error)

	// UpdateEntry updates a previously persisted entry.
	UpdateEntry(ctx context.Context, entry *entity.MemorizationEntry) error

	// DeleteEntry removes an entry by its ID.
	DeleteEntry(ctx context.Context, id uuid.UUID) error

	// SummarizeByUser aggregates a user's entries per status.
	SummarizeByUser(ctx context.Context, userID uuid.UUID) (*entity.MemorizationSummary, error)
}
