package model

import (
	"time"

	"github.com/google/uuid"
)

// MemorizationEntryModel mirrors the 'memorization_entries' table.
type MemorizationEntryModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Surah          int       `gorm:"not null"`
	AyahFrom       int       `gorm:"not null"`
	AyahTo         int       `gorm:"not null"`
	Status         string    `gorm:"type:varchar(20);not null"`
	LastReviewedAt time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemorizationEntryModel) TableName() string {
	return "memorization_entries"
}
