package repository

import (
	"context"

	"mihrab/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device lookup matches nothing.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the interface for push notification device
// registrations.
type DeviceRepository interface {
	// UpsertDevice creates or refreshes a registration keyed by (user, device ID).
	UpsertDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDevicesByUser retrieves all registrations for a user.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// FindActiveDevices retrieves every active registration; the reminder
	// scheduler iterates these.
	FindActiveDevices(ctx context.Context) ([]*entity.UserDevice, error)

	// DeactivateDeviceByToken marks a registration inactive by its FCM token.
	// Used when the push service reports the token invalid.
	DeactivateDeviceByToken(ctx context.Context, fcmToken string) error

	// DeleteDevice removes a registration by its ID.
	DeleteDevice(ctx context.Context, id uuid.UUID) error
}
