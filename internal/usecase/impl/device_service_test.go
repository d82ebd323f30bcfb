package impl

import (
	"context"
	"testing"
	"time"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	mockRepo "mihrab/internal/mocks/repository"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceService(t *testing.T) (*deviceService, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo).(*deviceService)
	service.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	return service, deviceRepo
}

func TestDeviceService_RegisterDevice_Success(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().
		UpsertDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := service.RegisterDevice(ctx, usecase.RegisterDeviceInput{
		UserID:    userID,
		FCMToken:  "fcm-token-1",
		DeviceID:  "device-abc",
		Platform:  "android",
		Latitude:  51.5074,
		Longitude: -0.1278,
	})

	require.NoError(t, err)
	assert.Equal(t, userID, device.UserID)
	assert.True(t, device.IsActive, "a fresh registration must be active")
	assert.Equal(t, "android", device.Platform)
}

func TestDeviceService_RegisterDevice_RejectsEmptyToken(t *testing.T) {
	service, _ := createTestDeviceService(t)

	device, err := service.RegisterDevice(context.Background(), usecase.RegisterDeviceInput{
		UserID:   uuid.New(),
		FCMToken: " ",
		DeviceID: "device-abc",
		Platform: "ios",
	})

	require.Error(t, err)
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_RejectsUnknownPlatform(t *testing.T) {
	service, _ := createTestDeviceService(t)

	device, err := service.RegisterDevice(context.Background(), usecase.RegisterDeviceInput{
		UserID:   uuid.New(),
		FCMToken: "fcm-token-1",
		DeviceID: "device-abc",
		Platform: "windows",
	})

	require.Error(t, err)
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestDeviceService_RegisterDevice_RejectsBadCoordinate(t *testing.T) {
	service, _ := createTestDeviceService(t)

	device, err := service.RegisterDevice(context.Background(), usecase.RegisterDeviceInput{
		UserID:    uuid.New(),
		FCMToken:  "fcm-token-1",
		DeviceID:  "device-abc",
		Platform:  "ios",
		Latitude:  95.0,
		Longitude: 0,
	})

	require.Error(t, err)
	assert.Nil(t, device)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestDeviceService_RemoveDevice_Success(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()

	deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{
		{ID: deviceID, UserID: userID},
	}, nil)
	deviceRepo.EXPECT().DeleteDevice(ctx, deviceID).Return(nil)

	err := service.RemoveDevice(ctx, userID, deviceID)

	require.NoError(t, err)
}

func TestDeviceService_RemoveDevice_NotOwned(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()

	deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{
		{ID: uuid.New(), UserID: userID},
	}, nil)

	err := service.RemoveDevice(ctx, userID, uuid.New())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDeviceNotFound)
}
