// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/infra/persistence/model"
)

// deviceRepository implements the domain.DeviceRepository interface using GORM.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{db: db}
}

// UpsertDevice creates or refreshes a registration keyed by (user, device ID).
// Re-registering reactivates a previously deactivated device.
func (repo *deviceRepository) UpsertDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"fcm_token", "platform", "latitude", "longitude", "is_active", "updated_at",
			}),
		}).
		Create(deviceM).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDevicesByUser retrieves all registrations for a user.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	var models []model.UserDeviceModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&models).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	return toDeviceDomainList(models), nil
}

// FindActiveDevices retrieves every active registration; the reminder
// scheduler iterates these.
func (repo *deviceRepository) FindActiveDevices(ctx context.Context) ([]*entity.UserDevice, error) {
	var models []model.UserDeviceModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&models).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list active devices")
	}

	return toDeviceDomainList(models), nil
}

// DeactivateDeviceByToken marks a registration inactive by its FCM token.
func (repo *deviceRepository) DeactivateDeviceByToken(ctx context.Context, fcmToken string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token = ?", fcmToken).
		Update("is_active", false)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice removes a registration by its ID.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserDeviceModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

func toDeviceDomainList(models []model.UserDeviceModel) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, len(models))
	for i := range models {
		devices = append(devices, toDeviceDomain(&models[i]))
	}

	return devices
}

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(device *entity.UserDevice) *model.UserDeviceModel {
	return &model.UserDeviceModel{
		ID:        device.ID,
		UserID:    device.UserID,
		FCMToken:  device.FCMToken,
		DeviceID:  device.DeviceID,
		Platform:  device.Platform,
		Latitude:  device.Latitude,
		Longitude: device.Longitude,
		IsActive:  device.IsActive,
		CreatedAt: device.CreatedAt,
		UpdatedAt: device.UpdatedAt,
	}
}
