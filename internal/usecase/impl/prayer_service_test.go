package impl

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"mihrab/config"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/geo"
	"mihrab/internal/domain/prayer"
	mockSvc "mihrab/internal/mocks/service"
	"mihrab/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var londonTimings = prayer.TimeSet{
	Fajr:    "05:12",
	Sunrise: "06:45",
	Dhuhr:   "12:30",
	Asr:     "15:45",
	Maghrib: "18:10",
	Isha:    "19:40",
}

func createTestPrayerService(t *testing.T) (usecase.PrayerUsecase, *mockSvc.MockPrayerTimesClient, *mockSvc.MockCache) {
	client := mockSvc.NewMockPrayerTimesClient(t)
	cache := mockSvc.NewMockCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPrayerService(PrayerServiceParams{
		Client: client,
		Cache:  cache,
		Config: &config.Config{},
		Logger: logger,
	})

	return service, client, cache
}

func TestPrayerService_GetDay_CacheMissFetchesAndStores(t *testing.T) {
	service, client, cache := createTestPrayerService(t)

	ctx := context.Background()
	coord := geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	date := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	day := &prayer.Day{Date: "28-02-2026", Timings: londonTimings}

	cache.EXPECT().Get(ctx, "prayer:2026-02-28:51.51:-0.13:2").Return(nil, false)
	client.EXPECT().GetTimings(ctx, date, coord, defaultCalculationMethod).Return(day, nil)
	cache.EXPECT().Set(ctx, "prayer:2026-02-28:51.51:-0.13:2", mock.Anything, defaultPrayerCacheTTL).Return()

	got, err := service.GetDay(ctx, coord, date)

	require.NoError(t, err)
	assert.Equal(t, day, got)
}

func TestPrayerService_GetDay_CacheHitSkipsUpstream(t *testing.T) {
	service, _, cache := createTestPrayerService(t)

	ctx := context.Background()
	coord := geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	date := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	cached, err := json.Marshal(&prayer.Day{Date: "28-02-2026", Timings: londonTimings})
	require.NoError(t, err)
	cache.EXPECT().Get(ctx, "prayer:2026-02-28:51.51:-0.13:2").Return(cached, true)

	got, err := service.GetDay(ctx, coord, date)

	require.NoError(t, err)
	assert.Equal(t, "28-02-2026", got.Date)
	assert.Equal(t, "05:12", got.Timings.Fajr)
}

func TestPrayerService_GetDay_RejectsBadCoordinate(t *testing.T) {
	service, _, _ := createTestPrayerService(t)

	got, err := service.GetDay(context.Background(), geo.Coordinate{Latitude: 91}, time.Now())

	require.Error(t, err)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestPrayerService_GetDay_UpstreamFailure(t *testing.T) {
	service, client, cache := createTestPrayerService(t)

	ctx := context.Background()
	coord := geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	date := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	cache.EXPECT().Get(ctx, mock.Anything).Return(nil, false)
	client.EXPECT().GetTimings(ctx, date, coord, defaultCalculationMethod).
		Return(nil, errors.New("gateway timeout"))

	got, err := service.GetDay(ctx, coord, date)

	require.Error(t, err)
	assert.Nil(t, got)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.HTTPCode())
}

func TestPrayerService_Today_ResolvesNextPrayer(t *testing.T) {
	service, client, cache := createTestPrayerService(t)

	ctx := context.Background()
	coord := geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	now := time.Date(2026, 2, 28, 13, 0, 0, 0, time.UTC)
	day := &prayer.Day{Date: "28-02-2026", Timings: londonTimings}

	cache.EXPECT().Get(ctx, mock.Anything).Return(nil, false)
	client.EXPECT().GetTimings(ctx, now, coord, defaultCalculationMethod).Return(day, nil)
	cache.EXPECT().Set(ctx, mock.Anything, mock.Anything, mock.Anything).Return()

	output, err := service.Today(ctx, coord, now)

	require.NoError(t, err)
	require.NotNil(t, output.Next)
	assert.Equal(t, prayer.Asr, output.Next.Name)
	assert.Equal(t, "15:45", output.Next.Time)
	assert.Equal(t, "2h 45m", output.Next.Countdown)
	assert.False(t, output.Next.Tomorrow)
}

func TestPrayerService_Today_AfterIshaRollsToTomorrowFajr(t *testing.T) {
	service, client, cache := createTestPrayerService(t)

	ctx := context.Background()
	coord := geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	now := time.Date(2026, 2, 28, 23, 30, 0, 0, time.UTC)
	day := &prayer.Day{Date: "28-02-2026", Timings: londonTimings}

	cache.EXPECT().Get(ctx, mock.Anything).Return(nil, false)
	client.EXPECT().GetTimings(ctx, now, coord, defaultCalculationMethod).Return(day, nil)
	cache.EXPECT().Set(ctx, mock.Anything, mock.Anything, mock.Anything).Return()

	output, err := service.Today(ctx, coord, now)

	require.NoError(t, err)
	require.NotNil(t, output.Next)
	assert.Equal(t, prayer.Fajr, output.Next.Name)
	assert.True(t, output.Next.Tomorrow)
	assert.Empty(t, output.Next.Countdown, "no numeric countdown across midnight")
}

func TestPrayerService_Today_MalformedTimingServesScheduleOnly(t *testing.T) {
	service, client, cache := createTestPrayerService(t)

	ctx := context.Background()
	coord := geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	now := time.Date(2026, 2, 28, 13, 0, 0, 0, time.UTC)
	day := &prayer.Day{
		Date:    "28-02-2026",
		Timings: prayer.TimeSet{Fajr: "05:12", Asr: "not-a-time"},
	}

	cache.EXPECT().Get(ctx, mock.Anything).Return(nil, false)
	client.EXPECT().GetTimings(ctx, now, coord, defaultCalculationMethod).Return(day, nil)
	cache.EXPECT().Set(ctx, mock.Anything, mock.Anything, mock.Anything).Return()

	output, err := service.Today(ctx, coord, now)

	require.NoError(t, err)
	assert.Equal(t, day, output.Day)
	assert.Nil(t, output.Next)
}
