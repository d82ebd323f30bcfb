package model

import (
	"time"

	"github.com/google/uuid"
)

// TasbeehCounterModel mirrors the 'tasbeeh_counters' table.
type TasbeehCounterModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Phrase    string    `gorm:"type:varchar(255);not null"`
	Count     int       `gorm:"not null;default:0"`
	Target    int       `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (TasbeehCounterModel) TableName() string {
	return "tasbeeh_counters"
}
