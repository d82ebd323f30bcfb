package handler

import (
	"log/slog"
	"net/http"
	"time"

	"mihrab/internal/delivery/http/response"
	"mihrab/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PrayerHandlerParams holds dependencies for PrayerHandler, injected by Fx.
type PrayerHandlerParams struct {
	fx.In

	PrayerUC usecase.PrayerUsecase
	Logger   *slog.Logger
}

// PrayerHandler holds dependencies for prayer schedule handlers.
type PrayerHandler struct {
	prayerUC usecase.PrayerUsecase
	logger   *slog.Logger
}

// NewPrayerHandler is the constructor for PrayerHandler.
func NewPrayerHandler(params PrayerHandlerParams) *PrayerHandler {
	return &PrayerHandler{
		prayerUC: params.PrayerUC,
		logger:   params.Logger,
	}
}

// GetDay returns the prayer schedule for one calendar day. The date query
// is YYYY-MM-DD; absent means today.
func (h *PrayerHandler) GetDay(c echo.Context) error {
	coord, _, err := coordinateFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	date := time.Now()
	if raw := c.QueryParam("date"); raw != "" {
		date, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "date must be YYYY-MM-DD")
		}
	}

	day, err := h.prayerUC.GetDay(c.Request().Context(), coord, date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, day)
}

// Today returns today's schedule with the next prayer and countdown.
func (h *PrayerHandler) Today(c echo.Context) error {
	coord, _, err := coordinateFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	output, err := h.prayerUC.Today(c.Request().Context(), coord, time.Now())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
