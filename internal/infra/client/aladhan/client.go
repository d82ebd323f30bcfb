// Package aladhan implements the prayer times client against the
// Al Adhan REST API.
package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"mihrab/config"
	"mihrab/internal/domain/geo"
	"mihrab/internal/domain/prayer"
	"mihrab/internal/domain/service"
	"mihrab/internal/errors"
)

const (
	defaultBaseURL = "https://api.aladhan.com/v1"

	// dateLayout is the dd-mm-yyyy path segment the API expects.
	dateLayout = "02-01-2006"
)

type response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   data   `json:"data"`
}

type data struct {
	Timings timings  `json:"timings"`
	Date    dateInfo `json:"date"`
	Meta    meta     `json:"meta"`
}

// timings holds prayer and event times as HH:MM strings. The API may append
// a timezone suffix like " (BST)" which the domain parser strips.
type timings struct {
	Fajr    string `json:"Fajr"`
	Sunrise string `json:"Sunrise"`
	Dhuhr   string `json:"Dhuhr"`
	Asr     string `json:"Asr"`
	Maghrib string `json:"Maghrib"`
	Isha    string `json:"Isha"`
}

type dateInfo struct {
	Readable  string    `json:"readable"`
	Hijri     hijriDate `json:"hijri"`
	Gregorian struct {
		Date string `json:"date"`
	} `json:"gregorian"`
}

type hijriDate struct {
	Day   string `json:"day"`
	Month struct {
		Number int    `json:"number"`
		En     string `json:"en"`
	} `json:"month"`
	Year string `json:"year"`
}

type meta struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	Method    struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"method"`
}

// Client talks to the Al Adhan API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a prayer times client from configuration.
func NewClient(cfg *config.Config) service.PrayerTimesClient {
	baseURL := defaultBaseURL
	timeout := config.DefaultUpstreamTimeout
	if cfg.Aladhan != nil {
		if cfg.Aladhan.BaseURL != "" {
			baseURL = cfg.Aladhan.BaseURL
		}
		if cfg.Aladhan.Timeout > 0 {
			timeout = cfg.Aladhan.Timeout
		}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// GetTimings returns the prayer schedule and Hijri date for one day.
func (c *Client) GetTimings(ctx context.Context, date time.Time, coord geo.Coordinate, method int) (*prayer.Day, error) {
	day := date.Format(dateLayout)

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(coord.Latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(coord.Longitude, 'f', -1, 64))
	params.Set("method", strconv.Itoa(method))

	endpoint := fmt.Sprintf("%s/timings/%s?%s", c.baseURL, day, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build aladhan request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "aladhan request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("aladhan: unexpected status %d", resp.StatusCode)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode aladhan response")
	}
	if payload.Code != http.StatusOK {
		return nil, errors.Errorf("aladhan: upstream code %d (%s)", payload.Code, payload.Status)
	}

	return &prayer.Day{
		Date: day,
		Timings: prayer.TimeSet{
			Fajr:    payload.Data.Timings.Fajr,
			Sunrise: payload.Data.Timings.Sunrise,
			Dhuhr:   payload.Data.Timings.Dhuhr,
			Asr:     payload.Data.Timings.Asr,
			Maghrib: payload.Data.Timings.Maghrib,
			Isha:    payload.Data.Timings.Isha,
		},
		Hijri:  payload.Data.Date.Hijri.toDomain(),
		Method: payload.Data.Meta.Method.ID,
	}, nil
}

func (h hijriDate) toDomain() prayer.HijriDate {
	day, _ := strconv.Atoi(h.Day)
	year, _ := strconv.Atoi(h.Year)

	return prayer.HijriDate{
		Day:       day,
		Month:     h.Month.Number,
		MonthName: h.Month.En,
		Year:      year,
	}
}
