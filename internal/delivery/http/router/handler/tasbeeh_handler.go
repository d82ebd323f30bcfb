package handler

import (
	"log/slog"
	"net/http"

	"mihrab/internal/delivery/http/middleware"
	"mihrab/internal/delivery/http/response"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TasbeehHandlerParams holds dependencies for TasbeehHandler, injected by Fx.
type TasbeehHandlerParams struct {
	fx.In

	TasbeehUC usecase.TasbeehUsecase
	Logger    *slog.Logger
}

// TasbeehHandler holds dependencies for dhikr counter handlers.
type TasbeehHandler struct {
	tasbeehUC usecase.TasbeehUsecase
	logger    *slog.Logger
}

// NewTasbeehHandler is the constructor for TasbeehHandler.
func NewTasbeehHandler(params TasbeehHandlerParams) *TasbeehHandler {
	return &TasbeehHandler{
		tasbeehUC: params.TasbeehUC,
		logger:    params.Logger,
	}
}

// CreateCounterRequest represents the request body for a new dhikr counter.
type CreateCounterRequest struct {
	Phrase string `json:"phrase" validate:"required"`
	Target int    `json:"target" validate:"min=0"`
}

// IncrementRequest represents the request body for counter taps. Count
// defaults to 1 when omitted.
type IncrementRequest struct {
	Count int `json:"count"`
}

// CreateCounter creates a dhikr counter for the authenticated user.
func (h *TasbeehHandler) CreateCounter(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateCounterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid counter input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	counter, err := h.tasbeehUC.CreateCounter(c.Request().Context(), usecase.CreateCounterInput{
		UserID: userID,
		Phrase: req.Phrase,
		Target: req.Target,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, counter)
}

// ListCounters returns the authenticated user's counters.
func (h *TasbeehHandler) ListCounters(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	counters, err := h.tasbeehUC.ListCounters(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, counters)
}

// Increment adds taps to a counter and reports target completion.
func (h *TasbeehHandler) Increment(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	counterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid counter ID")
	}

	var req IncrementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid increment input")
	}

	output, err := h.tasbeehUC.Increment(c.Request().Context(), userID, counterID, req.Count)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// Reset zeroes a counter, keeping its phrase and target.
func (h *TasbeehHandler) Reset(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	counterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid counter ID")
	}

	counter, err := h.tasbeehUC.Reset(c.Request().Context(), userID, counterID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, counter)
}

// DeleteCounter removes one of the authenticated user's counters.
func (h *TasbeehHandler) DeleteCounter(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	counterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid counter ID")
	}

	if err := h.tasbeehUC.DeleteCounter(c.Request().Context(), userID, counterID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Counter deleted"})
}
