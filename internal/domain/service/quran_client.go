package service

import (
	"context"

	"mihrab/internal/domain/entity"
)

// QuranClient defines the interface for fetching Quran text and metadata
// from an upstream content API.
type QuranClient interface {
	// ListSurahs returns metadata for all 114 chapters.
	ListSurahs(ctx context.Context) ([]entity.Surah, error)

	// GetSurah fetches one chapter in the given edition
	// (e.g. "quran-uthmani" for Arabic, "en.sahih" for a translation).
	GetSurah(ctx context.Context, number int, edition string) (*entity.SurahText, error)

	// GetAyah fetches a single verse by "surah:ayah" reference in the given edition.
	GetAyah(ctx context.Context, surah, ayah int, edition string) (*entity.Ayah, error)

	// Search runs a full-text search over one edition. Surah 0 searches all chapters.
	Search(ctx context.Context, query string, surah int, edition string) ([]entity.SearchMatch, error)
}
