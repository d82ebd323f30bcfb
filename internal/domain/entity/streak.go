package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date string format used wherever the domain
// compares days. Dates are compared as plain strings in the reader's local
// zone; clock changes and DST shifts carry no correctness guarantee.
const DateLayout = "2006-01-02"

// ReadDatesLimit bounds the retained reading history.
const ReadDatesLimit = 30

// ReadingStreak is the per-user append-only ledger of "read" calendar days
// with the derived current and longest streaks. The sole mutation point is
// RecordReading.
type ReadingStreak struct {
	UserID        uuid.UUID
	CurrentStreak int    // Consecutive days up to LastReadDate. Never exceeds LongestStreak.
	LongestStreak int    // Best streak ever reached.
	LastReadDate  string // Calendar date of the most recent recorded read, empty if none.
	TotalDaysRead int    // Count of distinct days ever recorded.
	ReadDates     []string // Most recent ReadDatesLimit dates, oldest first.
	UpdatedAt     time.Time
}

// RecordReading records a reading event for the given day. It is idempotent
// per calendar day: repeat calls on the same date leave state unchanged and
// return false. A read on the day after LastReadDate (or the first read
// ever) extends the streak; any gap resets it to 1.
func (s *ReadingStreak) RecordReading(today time.Time) bool {
	day := today.Format(DateLayout)
	if s.LastReadDate == day {
		return false
	}

	yesterday := today.AddDate(0, 0, -1).Format(DateLayout)
	if s.LastReadDate == yesterday || s.LastReadDate == "" {
		s.CurrentStreak++
	} else {
		s.CurrentStreak = 1
	}

	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}

	s.LastReadDate = day
	s.TotalDaysRead++
	s.ReadDates = append(s.ReadDates, day)
	if len(s.ReadDates) > ReadDatesLimit {
		s.ReadDates = s.ReadDates[len(s.ReadDates)-ReadDatesLimit:]
	}
	s.UpdatedAt = today

	return true
}

// DisplayStreak returns the streak value to show for the given day. The
// reset on staleness is lazy: when the last read is neither today nor
// yesterday the displayed streak is 0, while the persisted CurrentStreak
// stays untouched until the next RecordReading call.
func (s *ReadingStreak) DisplayStreak(today time.Time) int {
	if s.LastReadDate == "" {
		return 0
	}

	day := today.Format(DateLayout)
	yesterday := today.AddDate(0, 0, -1).Format(DateLayout)
	if s.LastReadDate != day && s.LastReadDate != yesterday {
		return 0
	}

	return s.CurrentStreak
}
