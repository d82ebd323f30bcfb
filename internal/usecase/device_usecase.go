package usecase

import (
	"context"

	"github.com/google/uuid"

	"mihrab/internal/domain/entity"
)

// RegisterDeviceInput defines the data required to register a device for
// prayer reminder pushes. The coordinates drive per-device reminder timing.
type RegisterDeviceInput struct {
	UserID    uuid.UUID
	FCMToken  string
	DeviceID  string
	Platform  string
	Latitude  float64
	Longitude float64
}

// DeviceUsecase defines the interface for reminder device registrations.
type DeviceUsecase interface {
	RegisterDevice(ctx context.Context, input RegisterDeviceInput) (*entity.UserDevice, error)
	ListDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	RemoveDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
