// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/infra/persistence/model"
)

// streakRepository implements the domain.StreakRepository interface using GORM.
type streakRepository struct {
	db *gorm.DB
}

// NewStreakRepository is the constructor for streakRepository.
func NewStreakRepository(db *gorm.DB) repository.StreakRepository {
	return &streakRepository{db: db}
}

// FindStreakByUserID retrieves the reading streak ledger for a user.
func (repo *streakRepository) FindStreakByUserID(ctx context.Context, userID uuid.UUID) (*entity.ReadingStreak, error) {
	var streakM model.ReadingStreakModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&streakM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStreakNotFound
		}

		return nil, errors.Wrap(err, "failed to find reading streak")
	}

	return toStreakDomain(&streakM), nil
}

// SaveStreak creates or replaces the ledger for the streak's user.
func (repo *streakRepository) SaveStreak(ctx context.Context, streak *entity.ReadingStreak) error {
	streakM := fromStreakDomain(streak)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(streakM).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save reading streak")
	}

	return nil
}

func toStreakDomain(data *model.ReadingStreakModel) *entity.ReadingStreak {
	return &entity.ReadingStreak{
		UserID:        data.UserID,
		CurrentStreak: data.CurrentStreak,
		LongestStreak: data.LongestStreak,
		LastReadDate:  data.LastReadDate,
		TotalDaysRead: data.TotalDaysRead,
		ReadDates:     data.ReadDates,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromStreakDomain(streak *entity.ReadingStreak) *model.ReadingStreakModel {
	return &model.ReadingStreakModel{
		UserID:        streak.UserID,
		CurrentStreak: streak.CurrentStreak,
		LongestStreak: streak.LongestStreak,
		LastReadDate:  streak.LastReadDate,
		TotalDaysRead: streak.TotalDaysRead,
		ReadDates:     streak.ReadDates,
		UpdatedAt:     streak.UpdatedAt,
	}
}
