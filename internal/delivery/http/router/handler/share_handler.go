package handler

import (
	"log/slog"
	"net/http"

	"mihrab/internal/delivery/http/response"
	"mihrab/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShareHandlerParams holds dependencies for ShareHandler, injected by Fx.
type ShareHandlerParams struct {
	fx.In

	ShareUC usecase.ShareUsecase
	Logger  *slog.Logger
}

// ShareHandler holds dependencies for content sharing handlers.
type ShareHandler struct {
	shareUC usecase.ShareUsecase
	logger  *slog.Logger
}

// NewShareHandler is the constructor for ShareHandler.
func NewShareHandler(params ShareHandlerParams) *ShareHandler {
	return &ShareHandler{
		shareUC: params.ShareUC,
		logger:  params.Logger,
	}
}

// AyahQR renders a QR code for sharing an ayah. The default response is
// the PNG image; format=json returns the link and base64 image instead.
func (h *ShareHandler) AyahQR(c echo.Context) error {
	surah, err := intParam(c, "surah")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	ayah, err := intParam(c, "ayah")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	output, err := h.shareUC.AyahQR(c.Request().Context(), surah, ayah)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("format") == "json" {
		return response.Success(c, http.StatusOK, map[string]any{
			"link": output.Link,
			"png":  output.PNG, // Base64-encoded by the JSON marshaller.
		})
	}

	return c.Blob(http.StatusOK, "image/png", output.PNG)
}
