package impl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/usecase"
)

// memorizationService implements the MemorizationUsecase interface.
type memorizationService struct {
	memorizationRepo repository.MemorizationRepository

	now func() time.Time
}

// NewMemorizationService creates a new memorization service instance.
func NewMemorizationService(memorizationRepo repository.MemorizationRepository) usecase.MemorizationUsecase {
	return &memorizationService{
		memorizationRepo: memorizationRepo,
		now:              time.Now,
	}
}

func (srv *memorizationService) CreateEntry(ctx context.Context, input usecase.CreateMemorizationInput) (*entity.MemorizationEntry, error) {
	if input.Surah < 1 || input.Surah > surahCount {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("surah must be between 1 and %d", surahCount))
	}
	if input.AyahFrom < 1 || input.AyahTo < input.AyahFrom {
		return nil, domainerrors.ErrValidationFailed.WithDetails("ayah range must satisfy 1 <= from <= to")
	}

	status := input.Status
	if status == "" {
		status = entity.StatusLearning
	}
	if !status.Valid() {
		return nil, domainerrors.ErrInvalidMemorizationStatus.WithDetails(string(status))
	}

	now := srv.now()
	entry := &entity.MemorizationEntry{
		ID:        uuid.New(),
		UserID:    input.UserID,
		Surah:     input.Surah,
		AyahFrom:  input.AyahFrom,
		AyahTo:    input.AyahTo,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.memorizationRepo.CreateEntry(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to create memorization entry")
	}

	return entry, nil
}

func (srv *memorizationService) ListEntries(ctx context.Context, userID uuid.UUID) ([]*entity.MemorizationEntry, error) {
	entries, err := srv.memorizationRepo.FindEntriesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list memorization entries")
	}

	return entries, nil
}

// UpdateStatus moves an entry to a new status and stamps the review time.
// Any status change counts as a review, including re-marking the same status.
func (srv *memorizationService) UpdateStatus(ctx context.Context, input usecase.UpdateMemorizationInput) (*entity.MemorizationEntry, error) {
	if !input.Status.Valid() {
		return nil, domainerrors.ErrInvalidMemorizationStatus.WithDetails(string(input.Status))
	}

	entry, err := srv.ownedEntry(ctx, input.UserID, input.EntryID)
	if err != nil {
		return nil, err
	}

	now := srv.now()
	entry.Status = input.Status
	entry.LastReviewedAt = now
	entry.UpdatedAt = now

	if err := srv.memorizationRepo.UpdateEntry(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to update memorization entry")
	}

	return entry, nil
}

func (srv *memorizationService) DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error {
	if _, err := srv.ownedEntry(ctx, userID, entryID); err != nil {
		return err
	}

	if err := srv.memorizationRepo.DeleteEntry(ctx, entryID); err != nil {
		return errors.Wrap(err, "failed to delete memorization entry")
	}

	return nil
}

func (srv *memorizationService) Summary(ctx context.Context, userID uuid.UUID) (*entity.MemorizationSummary, error) {
	summary, err := srv.memorizationRepo.SummarizeByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize memorization entries")
	}

	return summary, nil
}

func (srv *memorizationService) ownedEntry(ctx context.Context, userID, entryID uuid.UUID) (*entity.MemorizationEntry, error) {
	entry, err := srv.memorizationRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrMemorizationNotFound) {
			return nil, domainerrors.ErrMemorizationNotFound
		}

		return nil, errors.Wrap(err, "failed to load memorization entry")
	}

	if entry.UserID != userID {
		return nil, domainerrors.ErrMemorizationNotFound
	}

	return entry, nil
}
