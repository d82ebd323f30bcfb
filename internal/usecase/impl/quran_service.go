package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"mihrab/config"
	deliverycontext "mihrab/internal/delivery/context"
	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/domain/service"
	"mihrab/internal/infra/client/alquran"
	"mihrab/internal/usecase"
)

const (
	surahCount = 114

	defaultQuranCacheTTL = 24 * time.Hour
)

// quranService implements the QuranUsecase interface.
type quranService struct {
	client             service.QuranClient
	cache              service.Cache
	bookmarkRepo       repository.BookmarkRepository
	qrService          service.QRCodeService
	translationEdition string
	cacheTTL           time.Duration
	logger             *slog.Logger
}

// QuranServiceParams holds dependencies for quranService, injected by Fx.
type QuranServiceParams struct {
	fx.In

	Client       service.QuranClient
	Cache        service.Cache
	BookmarkRepo repository.BookmarkRepository
	QRService    service.QRCodeService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewQuranService is the constructor for quranService.
func NewQuranService(params QuranServiceParams) usecase.QuranUsecase {
	edition := "en.asad"
	cacheTTL := defaultQuranCacheTTL
	if params.Config.Quran != nil {
		if params.Config.Quran.TranslationEdition != "" {
			edition = params.Config.Quran.TranslationEdition
		}
		if params.Config.Quran.CacheTTL > 0 {
			cacheTTL = params.Config.Quran.CacheTTL
		}
	}

	return &quranService{
		client:             params.Client,
		cache:              params.Cache,
		bookmarkRepo:       params.BookmarkRepo,
		qrService:          params.QRService,
		translationEdition: edition,
		cacheTTL:           cacheTTL,
		logger:             params.Logger,
	}
}

func (srv *quranService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListSurahs returns metadata for all chapters, cached generously since the
// list never changes.
func (srv *quranService) ListSurahs(ctx context.Context) ([]entity.Surah, error) {
	const cacheKey = "quran:surahs"

	if raw, ok := srv.cache.Get(ctx, cacheKey); ok {
		var surahs []entity.Surah
		if err := json.Unmarshal(raw, &surahs); err == nil {
			return surahs, nil
		}
	}

	surahs, err := srv.client.ListSurahs(ctx)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(err, "quran")
	}

	srv.cacheJSON(ctx, cacheKey, surahs)

	return surahs, nil
}

// GetSurah fetches the Arabic text and the translation concurrently and
// pairs them verse by verse.
func (srv *quranService) GetSurah(ctx context.Context, number int, translationEdition string) (*entity.SurahWithTranslation, error) {
	if number < 1 || number > surahCount {
		return nil, domainerrors.ErrSurahNotFound
	}
	edition := srv.resolveEdition(translationEdition)

	cacheKey := fmt.Sprintf("quran:surah:%d:%s", number, edition)
	if raw, ok := srv.cache.Get(ctx, cacheKey); ok {
		var cached entity.SurahWithTranslation
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	type fetchResult struct {
		text *entity.SurahText
		err  error
	}

	arabicCh := make(chan fetchResult, 1)
	translationCh := make(chan fetchResult, 1)

	go func() {
		text, err := srv.client.GetSurah(ctx, number, alquran.ArabicEdition)
		arabicCh <- fetchResult{text: text, err: err}
	}()
	go func() {
		text, err := srv.client.GetSurah(ctx, number, edition)
		translationCh <- fetchResult{text: text, err: err}
	}()

	arabic := <-arabicCh
	translation := <-translationCh

	if arabic.err != nil {
		return nil, domainerrors.NewUpstreamError(arabic.err, "quran")
	}
	if translation.err != nil {
		return nil, domainerrors.NewUpstreamError(translation.err, "quran")
	}

	result := pairEditions(arabic.text, translation.text, edition)

	srv.cacheJSON(ctx, cacheKey, result)

	return result, nil
}

// GetAyah returns one verse with Arabic text, translation and share link.
func (srv *quranService) GetAyah(ctx context.Context, surah, ayah int, translationEdition string) (*usecase.AyahPairOutput, error) {
	if surah < 1 || surah > surahCount {
		return nil, domainerrors.ErrSurahNotFound
	}
	if ayah < 1 {
		return nil, domainerrors.ErrAyahNotFound
	}
	edition := srv.resolveEdition(translationEdition)

	arabicAyah, err := srv.client.GetAyah(ctx, surah, ayah, alquran.ArabicEdition)
	if err != nil {
		return nil, domainerrors.ErrAyahNotFound.WithDetails(err.Error())
	}

	translated, err := srv.client.GetAyah(ctx, surah, ayah, edition)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(err, "quran")
	}

	return &usecase.AyahPairOutput{
		Surah: surah,
		Verse: entity.VersePair{
			NumberInSurah: arabicAyah.NumberInSurah,
			Arabic:        arabicAyah.Text,
			Translation:   translated.Text,
		},
		ShareLink: srv.qrService.AyahShareLink(surah, ayah),
	}, nil
}

// Search runs a full-text search over the translation edition.
func (srv *quranService) Search(ctx context.Context, query string, surah int) ([]entity.SearchMatch, error) {
	if surah < 0 || surah > surahCount {
		return nil, domainerrors.ErrSurahNotFound
	}

	matches, err := srv.client.Search(ctx, query, surah, srv.translationEdition)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(err, "quran")
	}

	return matches, nil
}

// AddBookmark validates the reference and persists a bookmark.
func (srv *quranService) AddBookmark(ctx context.Context, input usecase.AddBookmarkInput) (*entity.Bookmark, error) {
	if input.Surah < 1 || input.Surah > surahCount {
		return nil, domainerrors.ErrSurahNotFound
	}
	if input.Ayah < 1 {
		return nil, domainerrors.ErrAyahNotFound
	}

	bookmark := &entity.Bookmark{
		UserID: input.UserID,
		Surah:  input.Surah,
		Ayah:   input.Ayah,
		Label:  input.Label,
	}
	if err := srv.bookmarkRepo.CreateBookmark(ctx, bookmark); err != nil {
		return nil, errors.Wrap(err, "failed to create bookmark")
	}

	return bookmark, nil
}

// ListBookmarks returns the user's bookmarks, newest first.
func (srv *quranService) ListBookmarks(ctx context.Context, userID uuid.UUID) ([]*entity.Bookmark, error) {
	bookmarks, err := srv.bookmarkRepo.FindBookmarksByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookmarks")
	}

	return bookmarks, nil
}

// DeleteBookmark removes a bookmark after verifying ownership.
func (srv *quranService) DeleteBookmark(ctx context.Context, userID, bookmarkID uuid.UUID) error {
	bookmark, err := srv.bookmarkRepo.FindBookmarkByID(ctx, bookmarkID)
	if err != nil {
		if errors.Is(err, repository.ErrBookmarkNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to find bookmark")
	}
	if bookmark.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := srv.bookmarkRepo.DeleteBookmark(ctx, bookmarkID); err != nil {
		return errors.Wrap(err, "failed to delete bookmark")
	}

	return nil
}

// GetProgress retrieves the user's last reading position.
func (srv *quranService) GetProgress(ctx context.Context, userID uuid.UUID) (*entity.ReadingProgress, error) {
	progress, err := srv.bookmarkRepo.FindProgressByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProgressNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find reading progress")
	}

	return progress, nil
}

// SaveProgress validates and records the user's reading position.
func (srv *quranService) SaveProgress(ctx context.Context, input usecase.SaveProgressInput) (*entity.ReadingProgress, error) {
	if input.Surah < 1 || input.Surah > surahCount {
		return nil, domainerrors.ErrSurahNotFound
	}
	if input.Ayah < 1 {
		return nil, domainerrors.ErrAyahNotFound
	}

	progress := &entity.ReadingProgress{
		UserID:    input.UserID,
		Surah:     input.Surah,
		Ayah:      input.Ayah,
		UpdatedAt: time.Now(),
	}
	if err := srv.bookmarkRepo.SaveProgress(ctx, progress); err != nil {
		return nil, errors.Wrap(err, "failed to save reading progress")
	}

	return progress, nil
}

func (srv *quranService) resolveEdition(edition string) string {
	if edition == "" {
		return srv.translationEdition
	}

	return edition
}

func (srv *quranService) cacheJSON(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		srv.log(ctx).Warn("Failed to marshal cache value", slog.String("key", key), slog.Any("error", err))

		return
	}
	srv.cache.Set(ctx, key, raw, srv.cacheTTL)
}

// pairEditions zips two fetches of the same chapter by verse position.
// The Arabic side is authoritative for metadata and verse count; a shorter
// translation leaves the trailing verses untranslated.
func pairEditions(arabic, translation *entity.SurahText, edition string) *entity.SurahWithTranslation {
	result := &entity.SurahWithTranslation{
		Surah:              arabic.Surah,
		TranslationEdition: edition,
		Verses:             make([]entity.VersePair, 0, len(arabic.Ayahs)),
	}

	for i, a := range arabic.Ayahs {
		pair := entity.VersePair{
			NumberInSurah: a.NumberInSurah,
			Arabic:        a.Text,
		}
		if i < len(translation.Ayahs) {
			pair.Translation = translation.Ayahs[i].Text
		}
		result.Verses = append(result.Verses, pair)
	}

	return result
}
