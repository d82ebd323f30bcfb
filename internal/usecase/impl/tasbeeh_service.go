package impl

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/usecase"
)

// tasbeehService implements the TasbeehUsecase interface.
type tasbeehService struct {
	tasbeehRepo repository.TasbeehRepository

	now func() time.Time
}

// NewTasbeehService creates a new tasbeeh service instance.
func NewTasbeehService(tasbeehRepo repository.TasbeehRepository) usecase.TasbeehUsecase {
	return &tasbeehService{
		tasbeehRepo: tasbeehRepo,
		now:         time.Now,
	}
}

func (srv *tasbeehService) CreateCounter(ctx context.Context, input usecase.CreateCounterInput) (*entity.TasbeehCounter, error) {
	phrase := strings.TrimSpace(input.Phrase)
	if phrase == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("phrase must not be empty")
	}
	if input.Target < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("target must not be negative")
	}

	counter := &entity.TasbeehCounter{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Phrase:    phrase,
		Target:    input.Target,
		UpdatedAt: srv.now(),
	}

	if err := srv.tasbeehRepo.CreateCounter(ctx, counter); err != nil {
		return nil, errors.Wrap(err, "failed to create counter")
	}

	return counter, nil
}

func (srv *tasbeehService) ListCounters(ctx context.Context, userID uuid.UUID) ([]*entity.TasbeehCounter, error) {
	counters, err := srv.tasbeehRepo.FindCountersByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list counters")
	}

	return counters, nil
}

func (srv *tasbeehService) Increment(ctx context.Context, userID, counterID uuid.UUID, n int) (*usecase.CounterOutput, error) {
	if n <= 0 {
		n = 1
	}

	counter, err := srv.ownedCounter(ctx, userID, counterID)
	if err != nil {
		return nil, err
	}

	counter.Increment(n, srv.now())
	if err := srv.tasbeehRepo.UpdateCounter(ctx, counter); err != nil {
		return nil, errors.Wrap(err, "failed to update counter")
	}

	return &usecase.CounterOutput{
		Counter:       counter,
		TargetReached: counter.TargetReached(),
	}, nil
}

func (srv *tasbeehService) Reset(ctx context.Context, userID, counterID uuid.UUID) (*entity.TasbeehCounter, error) {
	counter, err := srv.ownedCounter(ctx, userID, counterID)
	if err != nil {
		return nil, err
	}

	counter.Reset(srv.now())
	if err := srv.tasbeehRepo.UpdateCounter(ctx, counter); err != nil {
		return nil, errors.Wrap(err, "failed to reset counter")
	}

	return counter, nil
}

func (srv *tasbeehService) DeleteCounter(ctx context.Context, userID, counterID uuid.UUID) error {
	if _, err := srv.ownedCounter(ctx, userID, counterID); err != nil {
		return err
	}

	if err := srv.tasbeehRepo.DeleteCounter(ctx, counterID); err != nil {
		return errors.Wrap(err, "failed to delete counter")
	}

	return nil
}

// ownedCounter loads a counter and enforces ownership. A counter belonging
// to another user reads as not found so IDs cannot be probed.
func (srv *tasbeehService) ownedCounter(ctx context.Context, userID, counterID uuid.UUID) (*entity.TasbeehCounter, error) {
	counter, err := srv.tasbeehRepo.FindCounterByID(ctx, counterID)
	if err != nil {
		if errors.Is(err, repository.ErrCounterNotFound) {
			return nil, domainerrors.ErrCounterNotFound
		}

		return nil, errors.Wrap(err, "failed to load counter")
	}

	if counter.UserID != userID {
		return nil, domainerrors.ErrCounterNotFound
	}

	return counter, nil
}
