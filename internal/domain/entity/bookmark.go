package entity

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark marks a single ayah a user wants to return to.
type Bookmark struct {
	ID        uuid.UUID // The unique ID for this bookmark.
	UserID    uuid.UUID // The user who created the bookmark.
	Surah     int       // Surah number, 1..114.
	Ayah      int       // Ayah number within the surah.
	Label     string    // Optional user-supplied note.
	CreatedAt time.Time
}

// ReadingProgress is the user's last reading position, one row per user.
type ReadingProgress struct {
	UserID    uuid.UUID
	Surah     int
	Ayah      int
	UpdatedAt time.Time
}
