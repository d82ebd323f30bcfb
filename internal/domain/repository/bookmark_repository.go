package repository

import (
	"context"

	"mihrab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for bookmark persistence.
var (
	// ErrBookmarkNotFound is returned when a bookmark lookup matches nothing.
	ErrBookmarkNotFound = errors.New("bookmark not found")
	// ErrProgressNotFound is returned when a user has no reading position yet.
	ErrProgressNotFound = errors.New("reading progress not found")
)

// BookmarkRepository defines the interface for ayah bookmarks and the
// user's last reading position.
type BookmarkRepository interface {
	// CreateBookmark persists a new bookmark.
	CreateBookmark(ctx context.Context, bookmark *entity.Bookmark) error

	// FindBookmarksByUser retrieves all bookmarks for a user, newest first.
	FindBookmarksByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Bookmark, error)

	// FindBookmarkByID retrieves a bookmark by its unique ID.
	FindBookmarkByID(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error)

	// DeleteBookmark removes a bookmark by its ID.
	DeleteBookmark(ctx context.Context, id uuid.UUID) error

	// FindProgressByUserID retrieves the user's last reading position.
	FindProgressByUserID(ctx context.Context, userID uuid.UUID) (*entity.ReadingProgress, error)

	// SaveProgress creates or replaces the user's reading position.
	SaveProgress(ctx context.Context, progress *entity.ReadingProgress) error
}
