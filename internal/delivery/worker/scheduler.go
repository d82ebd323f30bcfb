// Package worker hosts the background prayer reminder scheduler.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"mihrab/config"
	"mihrab/internal/delivery"
	"mihrab/internal/domain/geo"
	"mihrab/internal/domain/repository"
	"mihrab/internal/domain/service"
	"mihrab/internal/usecase"

	"go.uber.org/fx"
)

const defaultPollInterval = time.Minute

// SchedulerParams holds dependencies for the reminder scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	DeviceRepo repository.DeviceRepository
	PrayerUC   usecase.PrayerUsecase
	Notifier   service.NotificationService
}

// scheduler periodically checks every active device's local prayer times
// and pushes a reminder shortly before the next prayer.
type scheduler struct {
	cfg        *config.Config
	logger     *slog.Logger
	deviceRepo repository.DeviceRepository
	prayerUC   usecase.PrayerUsecase
	notifier   service.NotificationService

	// sent remembers which (token, prayer, date) reminders already went
	// out, so a device gets at most one push per prayer.
	sent map[string]struct{}

	cancel context.CancelFunc
}

// NewScheduler is the constructor for the reminder scheduler.
func NewScheduler(params SchedulerParams) delivery.Delivery {
	s := &scheduler{
		cfg:        params.Cfg,
		logger:     params.Logger,
		deviceRepo: params.DeviceRepo,
		prayerUC:   params.PrayerUC,
		notifier:   params.Notifier,
		sent:       make(map[string]struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// Serve runs the polling loop until the context is cancelled.
func (s *scheduler) Serve(ctx context.Context) error {
	if s.cfg.Reminder == nil || !s.cfg.Reminder.Enabled || s.notifier == nil {
		s.logger.Info("Prayer reminder scheduler disabled")

		return nil
	}

	ctx, s.cancel = context.WithCancel(ctx)

	interval := s.cfg.Reminder.PollInterval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	s.logger.Info("Starting prayer reminder scheduler",
		slog.Duration("poll_interval", interval),
		slog.Duration("lead", s.cfg.Reminder.Lead),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.runOnce(ctx, time.Now())
		}
	}
}

func (s *scheduler) stop(ctx context.Context) error {
	s.logger.Info("Shutting down prayer reminder scheduler")
	if s.cancel != nil {
		s.cancel()
	}

	return nil
}

// runOnce evaluates every active device and sends reminders for prayers
// starting within the configured lead window.
func (s *scheduler) runOnce(ctx context.Context, now time.Time) {
	devices, err := s.deviceRepo.FindActiveDevices(ctx)
	if err != nil {
		s.logger.Error("Failed to load active devices", slog.Any("error", err))

		return
	}

	// Devices due for the same prayer at the same time share one batch push.
	type reminder struct {
		name string
		at   string
	}
	batches := make(map[reminder][]string)

	for _, device := range devices {
		output, err := s.prayerUC.Today(ctx, geo.Coordinate{
			Latitude:  device.Latitude,
			Longitude: device.Longitude,
		}, now)
		if err != nil {
			s.logger.Warn("Failed to resolve prayer times for device",
				slog.String("device_id", device.DeviceID),
				slog.Any("error", err),
			)

			continue
		}

		next := output.Next
		if next == nil || next.Tomorrow {
			continue
		}

		due, err := withinLead(now, next.Time, s.cfg.Reminder.Lead)
		if err != nil || !due {
			continue
		}

		sentKey := device.FCMToken + "|" + next.Name + "|" + now.Format("2006-01-02")
		if _, done := s.sent[sentKey]; done {
			continue
		}
		s.sent[sentKey] = struct{}{}

		key := reminder{name: next.Name, at: next.Time}
		batches[key] = append(batches[key], device.FCMToken)
	}

	for key, tokens := range batches {
		title := fmt.Sprintf("%s is approaching", key.name)
		body := fmt.Sprintf("%s prayer begins at %s", key.name, key.at)
		data := map[string]string{"prayer": key.name, "time": key.at}

		successCount, failureCount, invalidTokens, err := s.notifier.SendBatchNotification(ctx, tokens, title, body, data)
		if err != nil {
			s.logger.Error("Failed to send reminder batch",
				slog.String("prayer", key.name),
				slog.Any("error", err),
			)

			continue
		}

		s.logger.Info("Sent prayer reminders",
			slog.String("prayer", key.name),
			slog.Int("success", successCount),
			slog.Int("failure", failureCount),
		)

		for _, token := range invalidTokens {
			if err := s.deviceRepo.DeactivateDeviceByToken(ctx, token); err != nil {
				s.logger.Warn("Failed to deactivate stale device token", slog.Any("error", err))
			}
		}
	}

	s.pruneSent(now)
}

// pruneSent drops markers from previous days so the map stays bounded.
func (s *scheduler) pruneSent(now time.Time) {
	today := now.Format("2006-01-02")
	for key := range s.sent {
		if !strings.HasSuffix(key, today) {
			delete(s.sent, key)
		}
	}
}

// withinLead reports whether an HH:MM prayer time falls inside the window
// (now, now+lead] on the current day.
func withinLead(now time.Time, at string, lead time.Duration) (bool, error) {
	parts := strings.SplitN(at, ":", 2)
	if len(parts) != 2 {
		return false, fmt.Errorf("malformed prayer time %q", at)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return false, err
	}

	// Upstream times may carry a timezone suffix like "05:12 (BST)".
	minuteFields := strings.Fields(parts[1])
	if len(minuteFields) == 0 {
		return false, fmt.Errorf("malformed prayer time %q", at)
	}

	minute, err := strconv.Atoi(minuteFields[0])
	if err != nil {
		return false, err
	}

	prayerMinutes := hour*60 + minute
	nowMinutes := now.Hour()*60 + now.Minute()
	delta := prayerMinutes - nowMinutes

	return delta > 0 && time.Duration(delta)*time.Minute <= lead, nil
}
