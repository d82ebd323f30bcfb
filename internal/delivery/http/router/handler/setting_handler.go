package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"mihrab/internal/delivery/http/middleware"
	"mihrab/internal/delivery/http/response"
	"mihrab/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SettingHandlerParams holds dependencies for SettingHandler, injected by Fx.
type SettingHandlerParams struct {
	fx.In

	SettingUC usecase.SettingUsecase
	Logger    *slog.Logger
}

// SettingHandler holds dependencies for user preference handlers.
type SettingHandler struct {
	settingUC usecase.SettingUsecase
	logger    *slog.Logger
}

// NewSettingHandler is the constructor for SettingHandler.
func NewSettingHandler(params SettingHandlerParams) *SettingHandler {
	return &SettingHandler{
		settingUC: params.SettingUC,
		logger:    params.Logger,
	}
}

// PutSettingRequest carries the preference blob. The value is stored
// opaquely; only well-formed JSON is accepted.
type PutSettingRequest struct {
	Value json.RawMessage `json:"value" validate:"required"`
}

// ListSettings returns every stored preference for the authenticated user.
func (h *SettingHandler) ListSettings(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	settings, err := h.settingUC.ListSettings(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

// GetSetting returns one stored preference by key.
func (h *SettingHandler) GetSetting(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	setting, err := h.settingUC.GetSetting(c.Request().Context(), userID, c.Param("key"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}

// PutSetting stores a preference blob under a known key.
func (h *SettingHandler) PutSetting(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PutSettingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid setting input")
	}

	setting, err := h.settingUC.PutSetting(c.Request().Context(), usecase.PutSettingInput{
		UserID: userID,
		Key:    c.Param("key"),
		Value:  req.Value,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, setting)
}
