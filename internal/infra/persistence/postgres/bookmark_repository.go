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

// bookmarkRepository implements the domain.BookmarkRepository interface using GORM.
type bookmarkRepository struct {
	db *gorm.DB
}

// NewBookmarkRepository is the constructor for bookmarkRepository.
func NewBookmarkRepository(db *gorm.DB) repository.BookmarkRepository {
	return &bookmarkRepository{db: db}
}

// CreateBookmark persists a new bookmark.
func (repo *bookmarkRepository) CreateBookmark(ctx context.Context, bookmark *entity.Bookmark) error {
	bookmarkM := fromBookmarkDomain(bookmark)

	if err := repo.db.WithContext(ctx).Create(bookmarkM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create bookmark")
	}

	bookmark.ID = bookmarkM.ID
	bookmark.CreatedAt = bookmarkM.CreatedAt

	return nil
}

// FindBookmarksByUser retrieves all bookmarks for a user, newest first.
func (repo *bookmarkRepository) FindBookmarksByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Bookmark, error) {
	var models []model.BookmarkModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	bookmarks := make([]*entity.Bookmark, 0, len(models))
	for i := range models {
		bookmarks = append(bookmarks, toBookmarkDomain(&models[i]))
	}

	return bookmarks, nil
}

// FindBookmarkByID retrieves a bookmark by its unique ID.
func (repo *bookmarkRepository) FindBookmarkByID(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error) {
	var bookmarkM model.BookmarkModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&bookmarkM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookmarkNotFound
		}

		return nil, errors.Wrap(err, "failed to find bookmark")
	}

	return toBookmarkDomain(&bookmarkM), nil
}

// DeleteBookmark removes a bookmark by its ID.
func (repo *bookmarkRepository) DeleteBookmark(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BookmarkModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete bookmark")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookmarkNotFound
	}

	return nil
}

// FindProgressByUserID retrieves the user's last reading position.
func (repo *bookmarkRepository) FindProgressByUserID(ctx context.Context, userID uuid.UUID) (*entity.ReadingProgress, error) {
	var progressM model.ReadingProgressModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&progressM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProgressNotFound
		}

		return nil, errors.Wrap(err, "failed to find reading progress")
	}

	return &entity.ReadingProgress{
		UserID:    progressM.UserID,
		Surah:     progressM.Surah,
		Ayah:      progressM.Ayah,
		UpdatedAt: progressM.UpdatedAt,
	}, nil
}

// SaveProgress creates or replaces the user's reading position.
func (repo *bookmarkRepository) SaveProgress(ctx context.Context, progress *entity.ReadingProgress) error {
	progressM := &model.ReadingProgressModel{
		UserID:    progress.UserID,
		Surah:     progress.Surah,
		Ayah:      progress.Ayah,
		UpdatedAt: progress.UpdatedAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(progressM).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save reading progress")
	}

	return nil
}

func toBookmarkDomain(data *model.BookmarkModel) *entity.Bookmark {
	return &entity.Bookmark{
		ID:        data.ID,
		UserID:    data.UserID,
		Surah:     data.Surah,
		Ayah:      data.Ayah,
		Label:     data.Label,
		CreatedAt: data.CreatedAt,
	}
}

func fromBookmarkDomain(bookmark *entity.Bookmark) *model.BookmarkModel {
	return &model.BookmarkModel{
		ID:        bookmark.ID,
		UserID:    bookmark.UserID,
		Surah:     bookmark.Surah,
		Ayah:      bookmark.Ayah,
		Label:     bookmark.Label,
		CreatedAt: bookmark.CreatedAt,
	}
}
