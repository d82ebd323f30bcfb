package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingModel mirrors the 'user_settings' table, keyed by (user, key).
// The value is an opaque JSONB blob owned by the client.
type SettingModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Key       string    `gorm:"type:varchar(50);primary_key"`
	Version   int       `gorm:"not null;default:1"`
	Value     []byte    `gorm:"type:jsonb"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SettingModel) TableName() string {
	return "user_settings"
}
