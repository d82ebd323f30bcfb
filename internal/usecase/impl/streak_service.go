package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	deliverycontext "mihrab/internal/delivery/context"
	"mihrab/internal/domain/entity"
	"mihrab/internal/domain/repository"
	"mihrab/internal/usecase"
)

// streakService implements the StreakUsecase interface.
type streakService struct {
	txManager  repository.TransactionManager
	streakRepo repository.StreakRepository
	logger     *slog.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewStreakService creates a new streak service instance.
func NewStreakService(txManager repository.TransactionManager, streakRepo repository.StreakRepository, logger *slog.Logger) usecase.StreakUsecase {
	return &streakService{
		txManager:  txManager,
		streakRepo: streakRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (srv *streakService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordReading marks today as read for the user. The read-modify-write runs
// inside a transaction so two concurrent reads of the same day cannot double
// count.
func (srv *streakService) RecordReading(ctx context.Context, userID uuid.UUID) (*usecase.StreakOutput, error) {
	today := srv.now()

	var streak *entity.ReadingStreak
	var recorded bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		streakRepo := repoFactory.NewStreakRepository()

		found, err := streakRepo.FindStreakByUserID(ctx, userID)
		if err != nil {
			if !errors.Is(err, repository.ErrStreakNotFound) {
				return errors.Wrap(err, "failed to load streak")
			}
			found = &entity.ReadingStreak{UserID: userID}
		}

		recorded = found.RecordReading(today)
		streak = found

		if !recorded {
			// Same-day repeat; nothing to persist.
			return nil
		}

		return streakRepo.SaveStreak(ctx, found)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to record reading", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	return toStreakOutput(streak, today, true), nil
}

// GetStreak returns the user's streak state without recording anything.
// A user with no ledger yet reads as all zeroes.
func (srv *streakService) GetStreak(ctx context.Context, userID uuid.UUID) (*usecase.StreakOutput, error) {
	today := srv.now()

	streak, err := srv.streakRepo.FindStreakByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrStreakNotFound) {
			return &usecase.StreakOutput{ReadDates: []string{}}, nil
		}

		return nil, errors.Wrap(err, "failed to load streak")
	}

	return toStreakOutput(streak, today, false), nil
}

func toStreakOutput(streak *entity.ReadingStreak, today time.Time, justRecorded bool) *usecase.StreakOutput {
	dates := streak.ReadDates
	if dates == nil {
		dates = []string{}
	}

	return &usecase.StreakOutput{
		CurrentStreak: streak.DisplayStreak(today),
		LongestStreak: streak.LongestStreak,
		TotalDaysRead: streak.TotalDaysRead,
		LastReadDate:  streak.LastReadDate,
		ReadDates:     dates,
		RecordedToday: justRecorded || streak.LastReadDate == today.Format(entity.DateLayout),
	}
}
