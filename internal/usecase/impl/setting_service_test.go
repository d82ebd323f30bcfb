package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	mockRepo "mihrab/internal/mocks/repository"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestSettingService(t *testing.T) (*settingService, *mockRepo.MockSettingRepository) {
	settingRepo := mockRepo.NewMockSettingRepository(t)
	service := NewSettingService(settingRepo).(*settingService)
	service.now = func() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

	return service, settingRepo
}

func TestSettingService_PutSetting_StampsSchemaVersion(t *testing.T) {
	service, settingRepo := createTestSettingService(t)

	ctx := context.Background()
	userID := uuid.New()

	settingRepo.EXPECT().
		SaveSetting(ctx, mock.AnythingOfType("*entity.Setting")).
		Run(func(ctx context.Context, setting *entity.Setting) {
			assert.Equal(t, entity.SettingSchemaVersion, setting.Version)
			assert.Equal(t, entity.SettingTheme, setting.Key)
		}).
		Return(nil)

	setting, err := service.PutSetting(ctx, usecase.PutSettingInput{
		UserID: userID,
		Key:    entity.SettingTheme,
		Value:  json.RawMessage(`{"mode":"dark"}`),
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SettingSchemaVersion, setting.Version)
	assert.JSONEq(t, `{"mode":"dark"}`, string(setting.Value))
}

func TestSettingService_PutSetting_RejectsUnknownKey(t *testing.T) {
	service, _ := createTestSettingService(t)

	setting, err := service.PutSetting(context.Background(), usecase.PutSettingInput{
		UserID: uuid.New(),
		Key:    "wallpaper",
		Value:  json.RawMessage(`{}`),
	})

	require.Error(t, err)
	assert.Nil(t, setting)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownSettingKey)
}

func TestSettingService_PutSetting_RejectsInvalidJSON(t *testing.T) {
	service, _ := createTestSettingService(t)

	setting, err := service.PutSetting(context.Background(), usecase.PutSettingInput{
		UserID: uuid.New(),
		Key:    entity.SettingNotifications,
		Value:  json.RawMessage(`{"broken"`),
	})

	require.Error(t, err)
	assert.Nil(t, setting)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSettingService_GetSetting_NotStored(t *testing.T) {
	service, settingRepo := createTestSettingService(t)

	ctx := context.Background()
	userID := uuid.New()

	settingRepo.EXPECT().
		FindSetting(ctx, userID, entity.SettingTranslation).
		Return(nil, repository.ErrSettingNotFound)

	setting, err := service.GetSetting(ctx, userID, entity.SettingTranslation)

	require.Error(t, err)
	assert.Nil(t, setting)
	assert.ErrorIs(t, err, domainerrors.ErrSettingNotFound)
}

func TestSettingService_GetSetting_RejectsUnknownKey(t *testing.T) {
	service, _ := createTestSettingService(t)

	setting, err := service.GetSetting(context.Background(), uuid.New(), "favorites")

	require.Error(t, err)
	assert.Nil(t, setting)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownSettingKey)
}

func TestSettingService_ListSettings_ReturnsAll(t *testing.T) {
	service, settingRepo := createTestSettingService(t)

	ctx := context.Background()
	userID := uuid.New()

	stored := []*entity.Setting{
		{UserID: userID, Key: entity.SettingTheme, Version: 1},
		{UserID: userID, Key: entity.SettingCalculation, Version: 1},
	}
	settingRepo.EXPECT().FindSettingsByUser(ctx, userID).Return(stored, nil)

	settings, err := service.ListSettings(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, settings, 2)
}
