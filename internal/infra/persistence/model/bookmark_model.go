package model

import (
	"time"

	"github.com/google/uuid"
)

// BookmarkModel mirrors the 'bookmarks' table.
type BookmarkModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Surah     int       `gorm:"not null"`
	Ayah      int       `gorm:"not null"`
	Label     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BookmarkModel) TableName() string {
	return "bookmarks"
}

// ReadingProgressModel mirrors the 'reading_progress' table, one row per user.
type ReadingProgressModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Surah     int       `gorm:"not null"`
	Ayah      int       `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReadingProgressModel) TableName() string {
	return "reading_progress"
}
