package prayer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullDay() TimeSet {
	return TimeSet{
		Fajr:    "05:00",
		Sunrise: "06:30",
		Dhuhr:   "12:00",
		Asr:     "15:30",
		Maghrib: "18:45",
		Isha:    "20:15",
	}
}

func clock(hhmm string) time.Time {
	parsed, err := time.Parse("15:04", hhmm)
	if err != nil {
		panic(err)
	}

	return time.Date(2026, 3, 14, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
}

func TestNextAt_BetweenPrayers(t *testing.T) {
	t.Parallel()

	ts := TimeSet{Fajr: "05:00", Dhuhr: "12:00"}
	next, err := NextAt(clock("06:00"), ts)
	require.NoError(t, err)

	assert.Equal(t, Dhuhr, next.Name)
	assert.Equal(t, "12:00", next.Time)
	assert.Equal(t, "6h 0m", next.Countdown)
	assert.False(t, next.Tomorrow)
}

func TestNextAt_UnderAnHour(t *testing.T) {
	t.Parallel()

	next, err := NextAt(clock("18:00"), fullDay())
	require.NoError(t, err)

	assert.Equal(t, Maghrib, next.Name)
	assert.Equal(t, "45m", next.Countdown)
}

func TestNextAt_BeforeFajr(t *testing.T) {
	t.Parallel()

	next, err := NextAt(clock("03:30"), fullDay())
	require.NoError(t, err)

	assert.Equal(t, Fajr, next.Name)
	assert.Equal(t, "1h 30m", next.Countdown)
	assert.False(t, next.Tomorrow)
}

// After Isha the next prayer is tomorrow's Fajr. The chosen rollover policy
// labels it "tomorrow" without a numeric countdown; it deliberately does not
// count down across midnight.
func TestNextAt_AfterIshaRollsOverToTomorrow(t *testing.T) {
	t.Parallel()

	next, err := NextAt(clock("22:00"), fullDay())
	require.NoError(t, err)

	assert.Equal(t, Fajr, next.Name)
	assert.True(t, next.Tomorrow)
	assert.Empty(t, next.Countdown)
	assert.Equal(t, "05:00", next.Time)
}

func TestNextAt_ExactPrayerMinuteIsNotUpcoming(t *testing.T) {
	t.Parallel()

	// Strictly later than now: at 12:00 sharp, Dhuhr has started and Asr
	// is next.
	next, err := NextAt(clock("12:00"), fullDay())
	require.NoError(t, err)

	assert.Equal(t, Asr, next.Name)
}

func TestNextAt_StripsTimezoneSuffix(t *testing.T) {
	t.Parallel()

	ts := TimeSet{Fajr: "05:00 (BST)", Dhuhr: "12:00 (BST)"}
	next, err := NextAt(clock("06:00"), ts)
	require.NoError(t, err)

	assert.Equal(t, Dhuhr, next.Name)
}

func TestNextAt_MalformedTime(t *testing.T) {
	t.Parallel()

	ts := TimeSet{Fajr: "5 o'clock"}
	_, err := NextAt(clock("03:00"), ts)
	assert.Error(t, err)
}

func TestFormatCountdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{name: "zero", minutes: 0, want: "0m"},
		{name: "under an hour", minutes: 45, want: "45m"},
		{name: "exactly one hour", minutes: 60, want: "1h 0m"},
		{name: "hours and minutes", minutes: 367, want: "6h 7m"},
		{name: "negative clamps", minutes: -5, want: "0m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FormatCountdown(tt.minutes))
		})
	}
}
