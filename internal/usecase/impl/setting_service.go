package impl

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/usecase"
)

// knownSettingKeys is the accepted preference namespace. Writes outside it
// are rejected so clients cannot grow unbounded key sets.
var knownSettingKeys = map[string]bool{
	entity.SettingTheme:         true,
	entity.SettingNotifications: true,
	entity.SettingTranslation:   true,
	entity.SettingCalculation:   true,
}

// settingService implements the SettingUsecase interface.
type settingService struct {
	settingRepo repository.SettingRepository

	now func() time.Time
}

// NewSettingService creates a new setting service instance.
func NewSettingService(settingRepo repository.SettingRepository) usecase.SettingUsecase {
	return &settingService{
		settingRepo: settingRepo,
		now:         time.Now,
	}
}

func (srv *settingService) GetSetting(ctx context.Context, userID uuid.UUID, key string) (*entity.Setting, error) {
	if !knownSettingKeys[key] {
		return nil, domainerrors.ErrUnknownSettingKey.WithDetails(key)
	}

	setting, err := srv.settingRepo.FindSetting(ctx, userID, key)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return nil, domainerrors.ErrSettingNotFound.WithDetails(key)
		}

		return nil, errors.Wrap(err, "failed to load setting")
	}

	return setting, nil
}

func (srv *settingService) PutSetting(ctx context.Context, input usecase.PutSettingInput) (*entity.Setting, error) {
	if !knownSettingKeys[input.Key] {
		return nil, domainerrors.ErrUnknownSettingKey.WithDetails(input.Key)
	}
	if len(input.Value) == 0 || !json.Valid(input.Value) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("value must be a valid JSON document")
	}

	setting := &entity.Setting{
		UserID:    input.UserID,
		Key:       input.Key,
		Version:   entity.SettingSchemaVersion,
		Value:     input.Value,
		UpdatedAt: srv.now(),
	}

	if err := srv.settingRepo.SaveSetting(ctx, setting); err != nil {
		return nil, errors.Wrap(err, "failed to save setting")
	}

	return setting, nil
}

func (srv *settingService) ListSettings(ctx context.Context, userID uuid.UUID) ([]*entity.Setting, error) {
	settings, err := srv.settingRepo.FindSettingsByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list settings")
	}

	return settings, nil
}
