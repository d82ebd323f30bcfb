// Package prayer contains the prayer time-of-day model and the pure
// next-prayer countdown computation.
package prayer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Canonical day order of the tracked prayer and event labels.
const (
	Fajr    = "Fajr"
	Sunrise = "Sunrise"
	Dhuhr   = "Dhuhr"
	Asr     = "Asr"
	Maghrib = "Maghrib"
	Isha    = "Isha"
)

// Order lists the labels in canonical day order.
var Order = []string{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

// TimeSet maps the day's labels to wall-clock times as HH:MM strings,
// implicitly local to the observer. Built once per calendar day from the
// upstream response and treated as immutable within that day.
type TimeSet struct {
	Fajr    string `json:"fajr"`
	Sunrise string `json:"sunrise"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

// timeFor returns the HH:MM value for a canonical label.
func (ts TimeSet) timeFor(name string) string {
	switch name {
	case Fajr:
		return ts.Fajr
	case Sunrise:
		return ts.Sunrise
	case Dhuhr:
		return ts.Dhuhr
	case Asr:
		return ts.Asr
	case Maghrib:
		return ts.Maghrib
	case Isha:
		return ts.Isha
	}

	return ""
}

// Next is the derived upcoming prayer. When every time of the day has
// passed, Name is Fajr, Tomorrow is true and Countdown is empty: the
// display labels it "Tomorrow" without a numeric countdown.
type Next struct {
	Name      string `json:"name"`
	Time      string `json:"time"`
	Tomorrow  bool   `json:"tomorrow"`
	Countdown string `json:"countdown,omitempty"`
}

// NextAt returns the earliest prayer strictly later than now, with the
// remaining duration formatted for display. Callers should re-evaluate at
// least once per minute while the result is shown.
func NextAt(now time.Time, ts TimeSet) (Next, error) {
	nowMinutes := now.Hour()*60 + now.Minute()

	for _, name := range Order {
		raw := ts.timeFor(name)
		if raw == "" {
			continue
		}

		minutes, err := minutesOfDay(raw)
		if err != nil {
			return Next{}, errors.Wrapf(err, "invalid %s time", name)
		}

		if minutes > nowMinutes {
			return Next{
				Name:      name,
				Time:      raw,
				Countdown: FormatCountdown(minutes - nowMinutes),
			}, nil
		}
	}

	// Everything today has passed; roll over to tomorrow's Fajr.
	return Next{Name: Fajr, Time: ts.Fajr, Tomorrow: true}, nil
}

// FormatCountdown renders remaining whole minutes as "{h}h {m}m", or just
// "{m}m" under an hour.
func FormatCountdown(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// minutesOfDay converts an "HH:MM" string to minutes since midnight.
// Upstream responses may carry a timezone suffix like "05:12 (BST)", which
// is ignored.
func minutesOfDay(hhmm string) (int, error) {
	if idx := strings.IndexByte(hhmm, ' '); idx > 0 {
		hhmm = hhmm[:idx]
	}

	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, errors.Errorf("malformed clock time %q", hhmm)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, errors.Wrapf(err, "malformed hour in %q", hhmm)
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, errors.Wrapf(err, "malformed minute in %q", hhmm)
	}

	if hours < 0 || hours > 23 || mins < 0 || mins > 59 {
		return 0, errors.Errorf("clock time %q out of range", hhmm)
	}

	return hours*60 + mins, nil
}
