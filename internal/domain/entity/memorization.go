package entity

import (
	"time"

	"github.com/google/uuid"
)

// MemorizationStatus tracks how far along a passage is in the user's hifz.
type MemorizationStatus string

const (
	StatusLearning  MemorizationStatus = "learning"
	StatusReviewing MemorizationStatus = "reviewing"
	StatusMastered  MemorizationStatus = "mastered"
)

// Valid reports whether the status is one of the known values.
func (s MemorizationStatus) Valid() bool {
	switch s {
	case StatusLearning, StatusReviewing, StatusMastered:
		return true
	}

	return false
}

// MemorizationEntry is one memorized (or in-progress) ayah range.
type MemorizationEntry struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Surah          int // Surah number, 1..114.
	AyahFrom       int // First ayah of the range, inclusive.
	AyahTo         int // Last ayah of the range, inclusive.
	Status         MemorizationStatus
	LastReviewedAt time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// MemorizationSummary aggregates a user's entries per status.
type MemorizationSummary struct {
	Learning  int `json:"learning"`
	Reviewing int `json:"reviewing"`
	Mastered  int `json:"mastered"`
	Total     int `json:"total"`
}
