package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"mihrab/config"
	deliverycontext "mihrab/internal/delivery/context"
	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/service"
	"mihrab/internal/usecase"
)

const (
	defaultHadithPageSize = 20
	maxHadithPageSize     = 100

	defaultHadithCacheTTL = 24 * time.Hour
)

// hadithService implements the HadithUsecase interface. Whole collections
// are fetched from the CDN and cached; paging happens locally.
type hadithService struct {
	client   service.HadithClient
	cache    service.Cache
	cacheTTL time.Duration
	logger   *slog.Logger
}

// HadithServiceParams holds dependencies for hadithService, injected by Fx.
type HadithServiceParams struct {
	fx.In

	Client service.HadithClient
	Cache  service.Cache
	Config *config.Config
	Logger *slog.Logger
}

// NewHadithService is the constructor for hadithService.
func NewHadithService(params HadithServiceParams) usecase.HadithUsecase {
	cacheTTL := defaultHadithCacheTTL
	if params.Config.Hadith != nil && params.Config.Hadith.CacheTTL > 0 {
		cacheTTL = params.Config.Hadith.CacheTTL
	}

	return &hadithService{
		client:   params.Client,
		cache:    params.Cache,
		cacheTTL: cacheTTL,
		logger:   params.Logger,
	}
}

func (srv *hadithService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListBooks returns the available collections.
func (srv *hadithService) ListBooks(ctx context.Context) ([]entity.HadithBook, error) {
	const cacheKey = "hadith:books"

	if raw, ok := srv.cache.Get(ctx, cacheKey); ok {
		var books []entity.HadithBook
		if err := json.Unmarshal(raw, &books); err == nil {
			return books, nil
		}
	}

	books, err := srv.client.ListBooks(ctx)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(err, "hadith")
	}

	if raw, err := json.Marshal(books); err == nil {
		srv.cache.Set(ctx, cacheKey, raw, srv.cacheTTL)
	}

	return books, nil
}

// GetBookPage returns one page of a collection.
func (srv *hadithService) GetBookPage(ctx context.Context, book string, page, pageSize int) (*entity.HadithPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = defaultHadithPageSize
	}
	if pageSize > maxHadithPageSize {
		pageSize = maxHadithPageSize
	}

	hadiths, err := srv.getBook(ctx, book)
	if err != nil {
		return nil, err
	}

	total := len(hadiths)
	start := (page - 1) * pageSize
	if start >= total {
		hadiths = nil
	} else {
		end := min(start+pageSize, total)
		hadiths = hadiths[start:end]
	}

	return &entity.HadithPage{
		Book:     book,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Hadiths:  hadiths,
	}, nil
}

// GetHadith returns one narration from a collection by number.
func (srv *hadithService) GetHadith(ctx context.Context, book string, number int) (*entity.Hadith, error) {
	if number < 1 {
		return nil, domainerrors.ErrHadithNotFound
	}

	hadith, err := srv.client.GetHadith(ctx, book, number)
	if err != nil {
		return nil, domainerrors.ErrHadithNotFound.WithDetails(err.Error())
	}

	return hadith, nil
}

func (srv *hadithService) getBook(ctx context.Context, book string) ([]entity.Hadith, error) {
	cacheKey := "hadith:book:" + book

	if raw, ok := srv.cache.Get(ctx, cacheKey); ok {
		var hadiths []entity.Hadith
		if err := json.Unmarshal(raw, &hadiths); err == nil {
			return hadiths, nil
		}
	}

	hadiths, err := srv.client.GetBook(ctx, book)
	if err != nil {
		return nil, domainerrors.ErrHadithBookNotFound.WithDetails(err.Error())
	}

	if raw, err := json.Marshal(hadiths); err == nil {
		srv.cache.Set(ctx, cacheKey, raw, srv.cacheTTL)
	} else {
		srv.log(ctx).Warn("Failed to marshal hadith cache value", slog.String("book", book), slog.Any("error", err))
	}

	return hadiths, nil
}
