package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mihrab/config"
	"mihrab/internal/delivery/http/validator"
	"mihrab/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestQiblaHandler(t *testing.T) *QiblaHandler {
	t.Helper()

	cfg := &config.Config{Compass: &config.CompassConfig{SmoothingAlpha: 0.3}}

	return NewQiblaHandler(QiblaHandlerParams{
		QiblaUC: impl.NewQiblaService(cfg),
		Logger:  slog.Default(),
	})
}

func invokeQibla(t *testing.T, method, target, body string, fn echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, fn(e.NewContext(req, rec)))

	return rec
}

func TestQiblaHandler_SmoothHeadings_ReturnsTrace(t *testing.T) {
	h := createTestQiblaHandler(t)

	rec := invokeQibla(t, http.MethodPost, "/api/v1/qibla/smooth",
		`{"headings": [100, 110, 120]}`, h.SmoothHeadings)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			Smoothed []float64 `json:"smoothed"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Smoothed, 3)
	assert.InDelta(t, 100.0, envelope.Data.Smoothed[0], 0.001)
	assert.InDelta(t, 103.0, envelope.Data.Smoothed[1], 0.001)
	assert.InDelta(t, 108.1, envelope.Data.Smoothed[2], 0.001)
}

func TestQiblaHandler_SmoothHeadings_RejectsEmptyBatch(t *testing.T) {
	h := createTestQiblaHandler(t)

	rec := invokeQibla(t, http.MethodPost, "/api/v1/qibla/smooth",
		`{"headings": []}`, h.SmoothHeadings)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQiblaHandler_Direction_FlagsDefaultedLocation(t *testing.T) {
	h := createTestQiblaHandler(t)

	rec := invokeQibla(t, http.MethodGet, "/api/v1/qibla", "", h.Direction)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			LocationDefaulted bool    `json:"location_defaulted"`
			DistanceKm        float64 `json:"distance_km"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.LocationDefaulted)
	assert.InDelta(t, 0.0, envelope.Data.DistanceKm, 0.001)
}

func TestQiblaHandler_Direction_ExplicitCoordinatesNotFlagged(t *testing.T) {
	h := createTestQiblaHandler(t)

	rec := invokeQibla(t, http.MethodGet, "/api/v1/qibla?lat=51.5074&lng=-0.1278", "", h.Direction)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			LocationDefaulted bool `json:"location_defaulted"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.False(t, envelope.Data.LocationDefaulted)
}
