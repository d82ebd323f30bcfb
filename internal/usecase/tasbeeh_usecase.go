package usecase

import (
	"context"

	"github.com/google/uuid"

	"mihrab/internal/domain/entity"
)

// CreateCounterInput defines the data required to create a dhikr counter.
type CreateCounterInput struct {
	UserID uuid.UUID
	Phrase string
	Target int
}

// CounterOutput is a counter with its target state resolved.
type CounterOutput struct {
	Counter       *entity.TasbeehCounter `json:"counter"`
	TargetReached bool                   `json:"target_reached"`
}

// TasbeehUsecase defines the interface for dhikr counter operations.
type TasbeehUsecase interface {
	CreateCounter(ctx context.Context, input CreateCounterInput) (*entity.TasbeehCounter, error)
	ListCounters(ctx context.Context, userID uuid.UUID) ([]*entity.TasbeehCounter, error)

	// Increment adds n taps to a counter; n defaults to 1 when non-positive
	// input reaches the domain it is ignored.
	Increment(ctx context.Context, userID, counterID uuid.UUID, n int) (*CounterOutput, error)

	// Reset zeroes a counter, keeping phrase and target.
	Reset(ctx context.Context, userID, counterID uuid.UUID) (*entity.TasbeehCounter, error)

	DeleteCounter(ctx context.Context, userID, counterID uuid.UUID) error
}
