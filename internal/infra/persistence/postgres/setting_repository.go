// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/repository"
	"mihrab/internal/infra/persistence/model"
)

// settingRepository implements the domain.SettingRepository interface using GORM.
type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository is the constructor for settingRepository.
func NewSettingRepository(db *gorm.DB) repository.SettingRepository {
	return &settingRepository{db: db}
}

// FindSetting retrieves one setting blob for a user.
func (repo *settingRepository) FindSetting(ctx context.Context, userID uuid.UUID, key string) (*entity.Setting, error) {
	var settingM model.SettingModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND key = ?", userID, key).
		First(&settingM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingNotFound
		}

		return nil, errors.Wrap(err, "failed to find setting")
	}

	return toSettingDomain(&settingM), nil
}

// SaveSetting creates or replaces the blob for (user, key).
func (repo *settingRepository) SaveSetting(ctx context.Context, setting *entity.Setting) error {
	settingM := fromSettingDomain(setting)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "key"}},
			UpdateAll: true,
		}).
		Create(settingM).Error

	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to save setting")
	}

	return nil
}

// FindSettingsByUser retrieves all stored settings for a user.
func (repo *settingRepository) FindSettingsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Setting, error) {
	var models []model.SettingModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("key ASC").
		Find(&models).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list settings")
	}

	settings := make([]*entity.Setting, 0, len(models))
	for i := range models {
		settings = append(settings, toSettingDomain(&models[i]))
	}

	return settings, nil
}

func toSettingDomain(data *model.SettingModel) *entity.Setting {
	return &entity.Setting{
		UserID:    data.UserID,
		Key:       data.Key,
		Version:   data.Version,
		Value:     json.RawMessage(data.Value),
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSettingDomain(setting *entity.Setting) *model.SettingModel {
	return &model.SettingModel{
		UserID:    setting.UserID,
		Key:       setting.Key,
		Version:   setting.Version,
		Value:     []byte(setting.Value),
		UpdatedAt: setting.UpdatedAt,
	}
}
