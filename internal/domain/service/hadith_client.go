package service

import (
	"context"

	"mihrab/internal/domain/entity"
)

// HadithClient defines the interface for fetching hadith collections from
// an upstream content CDN.
type HadithClient interface {
	// ListBooks returns the collections available in English.
	ListBooks(ctx context.Context) ([]entity.HadithBook, error)

	// GetBook fetches a full collection with English text, and Arabic where
	// the CDN carries a matching Arabic edition.
	GetBook(ctx context.Context, book string) ([]entity.Hadith, error)

	// GetHadith fetches one narration from a collection by number.
	GetHadith(ctx context.Context, book string, number int) (*entity.Hadith, error)
}
