package handler

import (
	"log/slog"
	"net/http"

	"mihrab/internal/delivery/http/middleware"
	"mihrab/internal/delivery/http/response"
	"mihrab/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StreakHandlerParams holds dependencies for StreakHandler, injected by Fx.
type StreakHandlerParams struct {
	fx.In

	StreakUC usecase.StreakUsecase
	Logger   *slog.Logger
}

// StreakHandler holds dependencies for reading streak handlers.
type StreakHandler struct {
	streakUC usecase.StreakUsecase
	logger   *slog.Logger
}

// NewStreakHandler is the constructor for StreakHandler.
func NewStreakHandler(params StreakHandlerParams) *StreakHandler {
	return &StreakHandler{
		streakUC: params.StreakUC,
		logger:   params.Logger,
	}
}

// RecordReading marks today as read. Repeat calls on the same day are
// no-ops that return the current state.
func (h *StreakHandler) RecordReading(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.streakUC.RecordReading(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// GetStreak returns the authenticated user's streak state.
func (h *StreakHandler) GetStreak(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	output, err := h.streakUC.GetStreak(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}
