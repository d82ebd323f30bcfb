package usecase

import (
	"context"

	"mihrab/internal/domain/entity"
)

// HadithUsecase defines the interface for hadith browsing operations.
type HadithUsecase interface {
	// ListBooks returns the available collections.
	ListBooks(ctx context.Context) ([]entity.HadithBook, error)

	// GetBookPage returns one page of a collection. Page numbers start at 1;
	// a non-positive pageSize selects the default.
	GetBookPage(ctx context.Context, book string, page, pageSize int) (*entity.HadithPage, error)

	// GetHadith returns one narration from a collection by number.
	GetHadith(ctx context.Context, book string, number int) (*entity.Hadith, error)
}
