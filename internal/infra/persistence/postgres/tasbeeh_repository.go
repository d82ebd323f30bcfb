// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/infra/persistence/model"
)

// tasbeehRepository implements the domain.TasbeehRepository interface using GORM.
type tasbeehRepository struct {
	db *gorm.DB
}

// NewTasbeehRepository is the constructor for tasbeehRepository.
func NewTasbeehRepository(db *gorm.DB) repository.TasbeehRepository {
	return &tasbeehRepository{db: db}
}

// CreateCounter persists a new counter.
func (repo *tasbeehRepository) CreateCounter(ctx context.Context, counter *entity.TasbeehCounter) error {
	counterM := fromTasbeehDomain(counter)

	if err := repo.db.WithContext(ctx).Create(counterM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create tasbeeh counter")
	}

	counter.ID = counterM.ID
	counter.UpdatedAt = counterM.UpdatedAt

	return nil
}

// FindCounterByID retrieves a counter by its unique ID.
func (repo *tasbeehRepository) FindCounterByID(ctx context.Context, id uuid.UUID) (*entity.TasbeehCounter, error) {
	var counterM model.TasbeehCounterModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&counterM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCounterNotFound
		}

		return nil, errors.Wrap(err, "failed to find tasbeeh counter")
	}

	return toTasbeehDomain(&counterM), nil
}

// FindCountersByUser retrieves all counters for a user.
func (repo *tasbeehRepository) FindCountersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.TasbeehCounter, error) {
	var models []model.TasbeehCounterModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&models).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasbeeh counters")
	}

	counters := make([]*entity.TasbeehCounter, 0, len(models))
	for i := range models {
		counters = append(counters, toTasbeehDomain(&models[i]))
	}

	return counters, nil
}

// UpdateCounter updates a previously persisted counter.
func (repo *tasbeehRepository) UpdateCounter(ctx context.Context, counter *entity.TasbeehCounter) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TasbeehCounterModel{}).
		Where("id = ?", counter.ID).
		Updates(map[string]any{
			"phrase":     counter.Phrase,
			"count":      counter.Count,
			"target":     counter.Target,
			"updated_at": counter.UpdatedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update tasbeeh counter")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCounterNotFound
	}

	return nil
}

// DeleteCounter removes a counter by its ID.
func (repo *tasbeehRepository) DeleteCounter(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TasbeehCounterModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tasbeeh counter")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCounterNotFound
	}

	return nil
}

func toTasbeehDomain(data *model.TasbeehCounterModel) *entity.TasbeehCounter {
	return &entity.TasbeehCounter{
		ID:        data.ID,
		UserID:    data.UserID,
		Phrase:    data.Phrase,
		Count:     data.Count,
		Target:    data.Target,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTasbeehDomain(counter *entity.TasbeehCounter) *model.TasbeehCounterModel {
	return &model.TasbeehCounterModel{
		ID:        counter.ID,
		UserID:    counter.UserID,
		Phrase:    counter.Phrase,
		Count:     counter.Count,
		Target:    counter.Target,
		UpdatedAt: counter.UpdatedAt,
	}
}
