package aladhan

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mihrab/config"
	"mihrab/internal/domain/geo"
)

const timingsFixture = `{
	"code": 200,
	"status": "OK",
	"data": {
		"timings": {
			"Fajr": "05:32",
			"Sunrise": "07:01",
			"Dhuhr": "12:14",
			"Asr": "14:58",
			"Maghrib": "17:20",
			"Isha": "18:49"
		},
		"date": {
			"readable": "28 Feb 2026",
			"hijri": {
				"day": "10",
				"month": {"number": 8, "en": "Shaʿbān"},
				"year": "1447"
			},
			"gregorian": {"date": "28-02-2026"}
		},
		"meta": {
			"latitude": 51.5074,
			"longitude": -0.1278,
			"timezone": "Europe/London",
			"method": {"id": 2, "name": "ISNA"}
		}
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Aladhan = &config.AladhanConfig{
		BaseURL: server.URL,
		Method:  2,
		Timeout: 2 * time.Second,
	}

	client, ok := NewClient(cfg).(*Client)
	require.True(t, ok)

	return client
}

func TestGetTimings(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(timingsFixture))
	})

	date := time.Date(2026, 2, 28, 9, 0, 0, 0, time.UTC)
	london := geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}

	day, err := client.GetTimings(context.Background(), date, london, 2)
	require.NoError(t, err)

	assert.Equal(t, "/timings/28-02-2026", gotPath)
	assert.Equal(t, []string{"2"}, gotQuery["method"])
	assert.Equal(t, []string{"51.5074"}, gotQuery["latitude"])

	assert.Equal(t, "05:32", day.Timings.Fajr)
	assert.Equal(t, "18:49", day.Timings.Isha)
	assert.Equal(t, 2, day.Method)

	assert.Equal(t, 10, day.Hijri.Day)
	assert.Equal(t, 8, day.Hijri.Month)
	assert.Equal(t, "Shaʿbān", day.Hijri.MonthName)
	assert.Equal(t, 1447, day.Hijri.Year)
	assert.Equal(t, "10 Shaʿbān 1447 AH", day.Hijri.String())
}

func TestGetTimingsUpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetTimings(context.Background(), time.Now(), geo.Kaaba, 2)
	assert.Error(t, err)
}

func TestGetTimingsBadPayloadCode(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 400, "status": "Bad Request", "data": {}}`))
	})

	_, err := client.GetTimings(context.Background(), time.Now(), geo.Kaaba, 2)
	assert.Error(t, err)
}
