package model

import (
	"time"

	"github.com/google/uuid"
)

// ReadingStreakModel mirrors the 'reading_streaks' table, one row per user.
// The retained read dates are stored as a JSONB array, oldest first.
type ReadingStreakModel struct {
	UserID        uuid.UUID `gorm:"type:uuid;primary_key"`
	CurrentStreak int       `gorm:"not null;default:0"`
	LongestStreak int       `gorm:"not null;default:0"`
	LastReadDate  string    `gorm:"type:varchar(10)"`
	TotalDaysRead int       `gorm:"not null;default:0"`
	ReadDates     []string  `gorm:"type:jsonb;serializer:json"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReadingStreakModel) TableName() string {
	return "reading_streaks"
}
