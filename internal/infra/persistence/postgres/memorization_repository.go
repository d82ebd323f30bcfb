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

// memorizationRepository implements the domain.MemorizationRepository interface using GORM.
type memorizationRepository struct {
	db *gorm.DB
}

// NewMemorizationRepository is the constructor for memorizationRepository.
func NewMemorizationRepository(db *gorm.DB) repository.MemorizationRepository {
	return &memorizationRepository{db: db}
}

// CreateEntry persists a new memorization entry.
func (repo *memorizationRepository) CreateEntry(ctx context.Context, entry *entity.MemorizationEntry) error {
	entryM := fromMemorizationDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create memorization entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt
	entry.UpdatedAt = entryM.UpdatedAt

	return nil
}

// FindEntryByID retrieves an entry by its unique ID.
func (repo *memorizationRepository) FindEntryByID(ctx context.Context, id uuid.UUID) (*entity.MemorizationEntry, error) {
	var entryM model.MemorizationEntryModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entryM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemorizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find memorization entry")
	}

	return toMemorizationDomain(&entryM), nil
}

// FindEntriesByUser retrieves all entries for a user ordered by surah and ayah range.
func (repo *memorizationRepository) FindEntriesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.MemorizationEntry, error) {
	var models []model.MemorizationEntryModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("surah ASC, ayah_from ASC").
		Find(&models).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list memorization entries")
	}

	entries := make([]*entity.MemorizationEntry, 0, len(models))
	for i := range models {
		entries = append(entries, toMemorizationDomain(&models[i]))
	}

	return entries, nil
}

// UpdateEntry updates a previously persisted entry.
func (repo *memorizationRepository) UpdateEntry(ctx context.Context, entry *entity.MemorizationEntry) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MemorizationEntryModel{}).
		Where("id = ?", entry.ID).
		Updates(map[string]any{
			"surah":            entry.Surah,
			"ayah_from":        entry.AyahFrom,
			"ayah_to":          entry.AyahTo,
			"status":           string(entry.Status),
			"last_reviewed_at": entry.LastReviewedAt,
			"updated_at":       entry.UpdatedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update memorization entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemorizationNotFound
	}

	return nil
}

// DeleteEntry removes an entry by its ID.
func (repo *memorizationRepository) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MemorizationEntryModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete memorization entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemorizationNotFound
	}

	return nil
}

// SummarizeByUser aggregates a user's entries per status with a single grouped query.
func (repo *memorizationRepository) SummarizeByUser(ctx context.Context, userID uuid.UUID) (*entity.MemorizationSummary, error) {
	var rows []struct {
		Status string
		Count  int
	}

	err := repo.db.WithContext(ctx).
		Model(&model.MemorizationEntryModel{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize memorization entries")
	}

	summary := &entity.MemorizationSummary{}
	for _, row := range rows {
		switch entity.MemorizationStatus(row.Status) {
		case entity.StatusLearning:
			summary.Learning = row.Count
		case entity.StatusReviewing:
			summary.Reviewing = row.Count
		case entity.StatusMastered:
			summary.Mastered = row.Count
		}
		summary.Total += row.Count
	}

	return summary, nil
}

func toMemorizationDomain(data *model.MemorizationEntryModel) *entity.MemorizationEntry {
	return &entity.MemorizationEntry{
		ID:             data.ID,
		UserID:         data.UserID,
		Surah:          data.Surah,
		AyahFrom:       data.AyahFrom,
		AyahTo:         data.AyahTo,
		Status:         entity.MemorizationStatus(data.Status),
		LastReviewedAt: data.LastReviewedAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromMemorizationDomain(entry *entity.MemorizationEntry) *model.MemorizationEntryModel {
	return &model.MemorizationEntryModel{
		ID:             entry.ID,
		UserID:         entry.UserID,
		Surah:          entry.Surah,
		AyahFrom:       entry.AyahFrom,
		AyahTo:         entry.AyahTo,
		Status:         string(entry.Status),
		LastReviewedAt: entry.LastReviewedAt,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
}
