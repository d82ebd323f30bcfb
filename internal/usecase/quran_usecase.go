package usecase

import (
	"context"

	"github.com/google/uuid"

	"mihrab/internal/domain/entity"
)

// AddBookmarkInput defines the data required to bookmark an ayah.
type AddBookmarkInput struct {
	UserID uuid.UUID
	Surah  int
	Ayah   int
	Label  string
}

// SaveProgressInput defines the data required to record a reading position.
type SaveProgressInput struct {
	UserID uuid.UUID
	Surah  int
	Ayah   int
}

// AyahPairOutput is a single ayah with Arabic text and translation, plus
// its share link.
type AyahPairOutput struct {
	Surah     int              `json:"surah"`
	Verse     entity.VersePair `json:"verse"`
	ShareLink string           `json:"share_link"`
}

// QuranUsecase defines the interface for Quran reading operations.
type QuranUsecase interface {
	// ListSurahs returns metadata for all 114 chapters.
	ListSurahs(ctx context.Context) ([]entity.Surah, error)

	// GetSurah returns a chapter with Arabic text and the requested
	// translation paired verse by verse. An empty edition selects the
	// configured default.
	GetSurah(ctx context.Context, number int, translationEdition string) (*entity.SurahWithTranslation, error)

	// GetAyah returns one verse with Arabic text, translation and share link.
	GetAyah(ctx context.Context, surah, ayah int, translationEdition string) (*AyahPairOutput, error)

	// Search runs a full-text search over the translation edition.
	Search(ctx context.Context, query string, surah int) ([]entity.SearchMatch, error)

	// Bookmarks.
	AddBookmark(ctx context.Context, input AddBookmarkInput) (*entity.Bookmark, error)
	ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*entity.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, bookmarkID uuid.UUID) error

	// Reading position.
	GetProgress(ctx context.Context, userID uuid.UUID) (*entity.ReadingProgress, error)
	SaveProgress(ctx context.Context, input SaveProgressInput) (*entity.ReadingProgress, error)
}
