package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"mihrab/config"
	deliverycontext "mihrab/internal/delivery/context"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/geo"
	"mihrab/internal/domain/prayer"
	"mihrab/internal/domain/service"
	"mihrab/internal/usecase"
)

const (
	defaultCalculationMethod = 2 // ISNA
	defaultPrayerCacheTTL    = 6 * time.Hour
)

// prayerService implements the PrayerUsecase interface.
type prayerService struct {
	client   service.PrayerTimesClient
	cache    service.Cache
	method   int
	cacheTTL time.Duration
	logger   *slog.Logger
}

// PrayerServiceParams holds dependencies for prayerService, injected by Fx.
type PrayerServiceParams struct {
	fx.In

	Client service.PrayerTimesClient
	Cache  service.Cache
	Config *config.Config
	Logger *slog.Logger
}

// NewPrayerService is the constructor for prayerService.
func NewPrayerService(params PrayerServiceParams) usecase.PrayerUsecase {
	method := defaultCalculationMethod
	cacheTTL := defaultPrayerCacheTTL
	if params.Config.Aladhan != nil {
		if params.Config.Aladhan.Method > 0 {
			method = params.Config.Aladhan.Method
		}
		if params.Config.Aladhan.CacheTTL > 0 {
			cacheTTL = params.Config.Aladhan.CacheTTL
		}
	}

	return &prayerService{
		client:   params.Client,
		cache:    params.Cache,
		method:   method,
		cacheTTL: cacheTTL,
		logger:   params.Logger,
	}
}

func (srv *prayerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetDay returns the schedule for one calendar day at the given location,
// cached per (day, rounded coordinate, method).
func (srv *prayerService) GetDay(ctx context.Context, coord geo.Coordinate, date time.Time) (*prayer.Day, error) {
	if !coord.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	cacheKey := dayCacheKey(coord, date, srv.method)
	if raw, ok := srv.cache.Get(ctx, cacheKey); ok {
		var cached prayer.Day
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	}

	day, err := srv.client.GetTimings(ctx, date, coord, srv.method)
	if err != nil {
		srv.log(ctx).Warn("Prayer times fetch failed", slog.Any("error", err))

		return nil, domainerrors.NewUpstreamError(err, "prayer times")
	}

	if raw, err := json.Marshal(day); err == nil {
		srv.cache.Set(ctx, cacheKey, raw, srv.cacheTTL)
	}

	return day, nil
}

// Today returns today's schedule with the next prayer resolved against now.
func (srv *prayerService) Today(ctx context.Context, coord geo.Coordinate, now time.Time) (*usecase.PrayerDayOutput, error) {
	day, err := srv.GetDay(ctx, coord, now)
	if err != nil {
		return nil, err
	}

	next, err := prayer.NextAt(now, day.Timings)
	if err != nil {
		// A malformed timing string from upstream; serve the schedule anyway.
		srv.log(ctx).Warn("Failed to resolve next prayer", slog.Any("error", err))

		return &usecase.PrayerDayOutput{Day: day}, nil
	}

	return &usecase.PrayerDayOutput{Day: day, Next: &next}, nil
}

// dayCacheKey rounds coordinates to two decimals (~1km) so nearby requests
// share a cache entry.
func dayCacheKey(coord geo.Coordinate, date time.Time, method int) string {
	return fmt.Sprintf("prayer:%s:%.2f:%.2f:%d",
		date.Format("2006-01-02"), coord.Latitude, coord.Longitude, method)
}
