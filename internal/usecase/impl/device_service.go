package impl

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/geo"
	"mihrab/internal/domain/repository"
	"mihrab/internal/usecase"
)

var knownPlatforms = map[string]bool{
	"ios":     true,
	"android": true,
	"web":     true,
}

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository

	now func() time.Time
}

// NewDeviceService creates a new device service instance.
func NewDeviceService(deviceRepo repository.DeviceRepository) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		now:        time.Now,
	}
}

// RegisterDevice creates or refreshes a registration keyed by (user, device
// ID). Re-registering reactivates a device that was deactivated for a stale
// push token.
func (srv *deviceService) RegisterDevice(ctx context.Context, input usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	if strings.TrimSpace(input.FCMToken) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("fcm_token must not be empty")
	}
	if strings.TrimSpace(input.DeviceID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("device_id must not be empty")
	}
	if !knownPlatforms[input.Platform] {
		return nil, domainerrors.ErrValidationFailed.WithDetails("platform must be one of ios, android, web")
	}
	coord := geo.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if !coord.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	now := srv.now()
	device := &entity.UserDevice{
		ID:        uuid.New(),
		UserID:    input.UserID,
		FCMToken:  input.FCMToken,
		DeviceID:  input.DeviceID,
		Platform:  input.Platform,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.deviceRepo.UpsertDevice(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to register device")
	}

	return device, nil
}

func (srv *deviceService) ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return devices, nil
}

func (srv *deviceService) RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error {
	devices, err := srv.deviceRepo.FindDevicesByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to load devices")
	}

	for _, device := range devices {
		if device.ID == deviceID {
			if err := srv.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
				return errors.Wrap(err, "failed to remove device")
			}

			return nil
		}
	}

	return domainerrors.ErrDeviceNotFound
}
