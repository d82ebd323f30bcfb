package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(offset int) time.Time {
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	return base.AddDate(0, 0, offset)
}

func TestReadingStreak_FirstEverRead(t *testing.T) {
	t.Parallel()

	var s ReadingStreak
	changed := s.RecordReading(day(0))

	assert.True(t, changed)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
	assert.Equal(t, 1, s.TotalDaysRead)
	assert.Equal(t, "2026-08-01", s.LastReadDate)
	assert.Equal(t, []string{"2026-08-01"}, s.ReadDates)
}

func TestReadingStreak_ConsecutiveDaysExtend(t *testing.T) {
	t.Parallel()

	var s ReadingStreak
	for i := 0; i < 5; i++ {
		s.RecordReading(day(i))
	}

	assert.Equal(t, 5, s.CurrentStreak)
	assert.Equal(t, 5, s.LongestStreak)
	assert.Equal(t, 5, s.TotalDaysRead)
}

func TestReadingStreak_GapResetsToOne(t *testing.T) {
	t.Parallel()

	var s ReadingStreak
	s.RecordReading(day(0))
	s.RecordReading(day(1))
	s.RecordReading(day(3)) // day 2 skipped

	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 2, s.LongestStreak, "longest streak survives the gap")
	assert.Equal(t, 3, s.TotalDaysRead)
}

func TestReadingStreak_SameDayIsIdempotent(t *testing.T) {
	t.Parallel()

	var s ReadingStreak
	s.RecordReading(day(0))
	before := s

	changed := s.RecordReading(day(0).Add(6 * time.Hour))
	assert.False(t, changed)
	assert.Equal(t, before, s)
}

func TestReadingStreak_CurrentNeverExceedsLongest(t *testing.T) {
	t.Parallel()

	var s ReadingStreak
	for i := 0; i < 4; i++ {
		s.RecordReading(day(i))
	}
	s.RecordReading(day(6))
	s.RecordReading(day(7))

	assert.LessOrEqual(t, s.CurrentStreak, s.LongestStreak)
	assert.Equal(t, 4, s.LongestStreak)
	assert.Equal(t, 2, s.CurrentStreak)
}

func TestReadingStreak_ReadDatesTruncated(t *testing.T) {
	t.Parallel()

	var s ReadingStreak
	for i := 0; i < ReadDatesLimit+5; i++ {
		s.RecordReading(day(i))
	}

	assert.Len(t, s.ReadDates, ReadDatesLimit)
	// Oldest entries fall off; the most recent date is retained last.
	assert.Equal(t, s.LastReadDate, s.ReadDates[len(s.ReadDates)-1])
	assert.Equal(t, ReadDatesLimit+5, s.TotalDaysRead)
}

func TestReadingStreak_DisplayStreakLazyReset(t *testing.T) {
	t.Parallel()

	var s ReadingStreak
	s.RecordReading(day(0))
	s.RecordReading(day(1))

	// Same day and next day still show the streak.
	assert.Equal(t, 2, s.DisplayStreak(day(1)))
	assert.Equal(t, 2, s.DisplayStreak(day(2)))

	// Two days later the display goes stale, but the stored value is only
	// reset by the next RecordReading.
	assert.Equal(t, 0, s.DisplayStreak(day(3)))
	assert.Equal(t, 2, s.CurrentStreak)
}

func TestReadingStreak_DisplayStreakEmptyLedger(t *testing.T) {
	t.Parallel()

	var s ReadingStreak
	assert.Equal(t, 0, s.DisplayStreak(day(0)))
}
