package worker

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	"mihrab/internal/domain/geo"
	"mihrab/internal/domain/prayer"
	"mihrab/internal/usecase"
	mockrepository "mihrab/internal/mocks/repository"
	mockservice "mihrab/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fixedPrayerUsecase serves one precomputed next prayer for every device.
type fixedPrayerUsecase struct {
	next *prayer.Next
	err  error
}

func (f *fixedPrayerUsecase) GetDay(ctx context.Context, coord geo.Coordinate, date time.Time) (*prayer.Day, error) {
	return nil, f.err
}

func (f *fixedPrayerUsecase) Today(ctx context.Context, coord geo.Coordinate, now time.Time) (*usecase.PrayerDayOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	return &usecase.PrayerDayOutput{Day: &prayer.Day{}, Next: f.next}, nil
}

type schedulerFixtures struct {
	deviceRepo *mockrepository.MockDeviceRepository
	notifier   *mockservice.MockNotificationService
}

func createTestScheduler(t *testing.T, next *prayer.Next, lead time.Duration) (*scheduler, *schedulerFixtures) {
	t.Helper()

	fixtures := &schedulerFixtures{
		deviceRepo: mockrepository.NewMockDeviceRepository(t),
		notifier:   mockservice.NewMockNotificationService(t),
	}

	cfg := &config.Config{
		Reminder: &config.ReminderConfig{
			Enabled:      true,
			Lead:         lead,
			PollInterval: time.Minute,
		},
	}

	s := &scheduler{
		cfg:        cfg,
		logger:     slog.Default(),
		deviceRepo: fixtures.deviceRepo,
		prayerUC:   &fixedPrayerUsecase{next: next},
		notifier:   fixtures.notifier,
		sent:       make(map[string]struct{}),
	}

	return s, fixtures
}

func activeDevice(token string) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		FCMToken:  token,
		DeviceID:  "device-" + token,
		Platform:  "android",
		Latitude:  51.5074,
		Longitude: -0.1278,
		IsActive:  true,
	}
}

func TestScheduler_RunOnce_SendsReminderInsideLeadWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 28, 15, 35, 0, 0, time.UTC)
	next := &prayer.Next{Name: "Asr", Time: "15:45"}
	s, fixtures := createTestScheduler(t, next, 15*time.Minute)
	ctx := context.Background()

	devices := []*entity.UserDevice{activeDevice("token-a"), activeDevice("token-b")}
	fixtures.deviceRepo.EXPECT().FindActiveDevices(ctx).Return(devices, nil)
	fixtures.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"token-a", "token-b"}, "Asr is approaching", "Asr prayer begins at 15:45", map[string]string{"prayer": "Asr", "time": "15:45"}).
		Return(2, 0, nil, nil)

	s.runOnce(ctx, now)
}

func TestScheduler_RunOnce_DeactivatesInvalidTokens(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 28, 15, 35, 0, 0, time.UTC)
	next := &prayer.Next{Name: "Asr", Time: "15:45"}
	s, fixtures := createTestScheduler(t, next, 15*time.Minute)
	ctx := context.Background()

	fixtures.deviceRepo.EXPECT().FindActiveDevices(ctx).Return([]*entity.UserDevice{activeDevice("stale")}, nil)
	fixtures.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"stale"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 1, []string{"stale"}, nil)
	fixtures.deviceRepo.EXPECT().DeactivateDeviceByToken(ctx, "stale").Return(nil)

	s.runOnce(ctx, now)
}

func TestScheduler_RunOnce_SendsAtMostOncePerPrayer(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 28, 15, 35, 0, 0, time.UTC)
	next := &prayer.Next{Name: "Asr", Time: "15:45"}
	s, fixtures := createTestScheduler(t, next, 15*time.Minute)
	ctx := context.Background()

	fixtures.deviceRepo.EXPECT().FindActiveDevices(ctx).Return([]*entity.UserDevice{activeDevice("token-a")}, nil).Twice()
	fixtures.notifier.EXPECT().
		SendBatchNotification(ctx, []string{"token-a"}, mock.Anything, mock.Anything, mock.Anything).
		Return(1, 0, nil, nil).
		Once()

	s.runOnce(ctx, now)
	// The second poll inside the same window must not push again.
	s.runOnce(ctx, now.Add(time.Minute))
}

func TestScheduler_RunOnce_SkipsTomorrowFajr(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 28, 23, 30, 0, 0, time.UTC)
	next := &prayer.Next{Name: "Fajr", Time: "05:12", Tomorrow: true}
	s, fixtures := createTestScheduler(t, next, 15*time.Minute)
	ctx := context.Background()

	fixtures.deviceRepo.EXPECT().FindActiveDevices(ctx).Return([]*entity.UserDevice{activeDevice("token-a")}, nil)

	// No notification expectation: sending would fail the mock.
	s.runOnce(ctx, now)
}

func TestScheduler_RunOnce_OutsideLeadWindowDoesNothing(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 28, 13, 0, 0, 0, time.UTC)
	next := &prayer.Next{Name: "Asr", Time: "15:45"}
	s, fixtures := createTestScheduler(t, next, 15*time.Minute)
	ctx := context.Background()

	fixtures.deviceRepo.EXPECT().FindActiveDevices(ctx).Return([]*entity.UserDevice{activeDevice("token-a")}, nil)

	s.runOnce(ctx, now)
}

func TestWithinLead(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 28, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		at      string
		lead    time.Duration
		want    bool
		wantErr bool
	}{
		{name: "inside window", at: "15:40", lead: 15 * time.Minute, want: true},
		{name: "exactly at lead boundary", at: "15:45", lead: 15 * time.Minute, want: true},
		{name: "beyond window", at: "16:00", lead: 15 * time.Minute, want: false},
		{name: "already passed", at: "15:00", lead: 15 * time.Minute, want: false},
		{name: "current minute", at: "15:30", lead: 15 * time.Minute, want: false},
		{name: "timezone suffix tolerated", at: "15:40 (BST)", lead: 15 * time.Minute, want: true},
		{name: "malformed", at: "soon", lead: 15 * time.Minute, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := withinLead(now, tt.at, tt.lead)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
