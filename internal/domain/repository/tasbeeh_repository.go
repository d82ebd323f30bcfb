package repository

import (
	"context"

	"mihrab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCounterNotFound is returned when a tasbeeh counter lookup matches nothing.
var ErrCounterNotFound = errors.New("tasbeeh counter not found")

// TasbeehRepository defines the interface for dhikr counter persistence.
type TasbeehRepository interface {
	// CreateCounter persists a new counter.
	CreateCounter(ctx context.Context, counter *entity.TasbeehCounter) error

	// FindCounterByID retrieves a counter by its unique ID.
	FindCounterByID(ctx context.Context, id uuid.UUID) (*entity.TasbeehCounter, error)

	// FindCountersByUser retrieves all counters for a user.
	FindCountersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TasbeehCounter, error)

	// UpdateCounter updates a previously persisted counter.
	UpdateCounter(ctx context.Context, counter *entity.TasbeehCounter) error

	// DeleteCounter removes a counter by its ID.
	DeleteCounter(ctx context.Context, id uuid.UUID) error
}
