package entity

import (
	"time"

	"github.com/google/uuid"
)

// TasbeehCounter is a named dhikr counter. Counts only move through
// Increment and Reset so the invariants stay in one place.
type TasbeehCounter struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Phrase    string // The dhikr phrase being counted, e.g. "SubhanAllah".
	Count     int
	Target    int // Optional goal; 0 means no target.
	UpdatedAt time.Time
}

// Increment adds n to the counter. Non-positive n is ignored.
func (c *TasbeehCounter) Increment(n int, now time.Time) {
	if n <= 0 {
		return
	}
	c.Count += n
	c.UpdatedAt = now
}

// Reset zeroes the counter, keeping the phrase and target.
func (c *TasbeehCounter) Reset(now time.Time) {
	c.Count = 0
	c.UpdatedAt = now
}

// TargetReached reports whether a target is set and met.
func (c *TasbeehCounter) TargetReached() bool {
	return c.Target > 0 && c.Count >= c.Target
}
