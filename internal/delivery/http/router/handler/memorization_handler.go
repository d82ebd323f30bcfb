package handler

import (
	"log/slog"
	"net/http"

	"mihrab/internal/delivery/http/middleware"
	"mihrab/internal/delivery/http/response"
	"mihrab/internal/domain/entity"
	"mihrab/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MemorizationHandlerParams holds dependencies for MemorizationHandler,
// injected by Fx.
type MemorizationHandlerParams struct {
	fx.In

	MemorizationUC usecase.MemorizationUsecase
	Logger         *slog.Logger
}

// MemorizationHandler holds dependencies for hifz tracking handlers.
type MemorizationHandler struct {
	memorizationUC usecase.MemorizationUsecase
	logger         *slog.Logger
}

// NewMemorizationHandler is the constructor for MemorizationHandler.
func NewMemorizationHandler(params MemorizationHandlerParams) *MemorizationHandler {
	return &MemorizationHandler{
		memorizationUC: params.MemorizationUC,
		logger:         params.Logger,
	}
}

// CreateEntryRequest represents the request body for tracking an ayah range.
type CreateEntryRequest struct {
	Surah    int    `json:"surah" validate:"required,min=1,max=114"`
	AyahFrom int    `json:"ayah_from" validate:"required,min=1"`
	AyahTo   int    `json:"ayah_to" validate:"required,min=1"`
	Status   string `json:"status"`
}

// UpdateEntryRequest represents the request body for a status change.
type UpdateEntryRequest struct {
	Status string `json:"status" validate:"required"`
}

// CreateEntry starts tracking an ayah range for the authenticated user.
func (h *MemorizationHandler) CreateEntry(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid entry input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.memorizationUC.CreateEntry(c.Request().Context(), usecase.CreateMemorizationInput{
		UserID:   userID,
		Surah:    req.Surah,
		AyahFrom: req.AyahFrom,
		AyahTo:   req.AyahTo,
		Status:   entity.MemorizationStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry)
}

// ListEntries returns the authenticated user's tracked ranges.
func (h *MemorizationHandler) ListEntries(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entries, err := h.memorizationUC.ListEntries(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entries)
}

// UpdateStatus changes the status of a tracked range and stamps its
// review time.
func (h *MemorizationHandler) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entry ID")
	}

	var req UpdateEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entry, err := h.memorizationUC.UpdateStatus(c.Request().Context(), usecase.UpdateMemorizationInput{
		UserID:  userID,
		EntryID: entryID,
		Status:  entity.MemorizationStatus(req.Status),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, entry)
}

// DeleteEntry removes one of the authenticated user's tracked ranges.
func (h *MemorizationHandler) DeleteEntry(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entry ID")
	}

	if err := h.memorizationUC.DeleteEntry(c.Request().Context(), userID, entryID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Entry deleted"})
}

// Summary returns per-status counts across the user's tracked ranges.
func (h *MemorizationHandler) Summary(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	summary, err := h.memorizationUC.Summary(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}
