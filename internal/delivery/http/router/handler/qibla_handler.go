package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"mihrab/internal/delivery/http/response"
	"mihrab/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QiblaHandlerParams holds dependencies for QiblaHandler, injected by Fx.
type QiblaHandlerParams struct {
	fx.In

	QiblaUC usecase.QiblaUsecase
	Logger  *slog.Logger
}

// QiblaHandler holds dependencies for qibla direction handlers.
type QiblaHandler struct {
	qiblaUC usecase.QiblaUsecase
	logger  *slog.Logger
}

// NewQiblaHandler is the constructor for QiblaHandler.
func NewQiblaHandler(params QiblaHandlerParams) *QiblaHandler {
	return &QiblaHandler{
		qiblaUC: params.QiblaUC,
		logger:  params.Logger,
	}
}

// smoothHeadingsRequest carries a batch of raw compass readings.
type smoothHeadingsRequest struct {
	Headings []float64 `json:"headings" validate:"required,min=1"`
}

// smoothHeadingsResponse returns the filtered trace, one value per reading.
type smoothHeadingsResponse struct {
	Smoothed []float64 `json:"smoothed"`
}

// Direction computes the bearing and distance to the Kaaba. The optional
// heading and previous queries drive compass smoothing.
func (h *QiblaHandler) Direction(c echo.Context) error {
	coord, defaulted, err := coordinateFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	input := usecase.QiblaInput{Coordinate: coord, LocationDefaulted: defaulted}

	if raw := c.QueryParam("heading"); raw != "" {
		heading, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "heading must be a number")
		}
		input.DeviceHeading = &heading
	}

	if raw := c.QueryParam("previous"); raw != "" {
		previous, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "previous must be a number")
		}
		input.PreviousHeading = &previous
	}

	output, err := h.qiblaUC.Direction(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output)
}

// SmoothHeadings filters a posted sequence of raw compass readings and
// returns the smoothed trace.
func (h *QiblaHandler) SmoothHeadings(c echo.Context) error {
	var req smoothHeadingsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid headings input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	trace, err := h.qiblaUC.SmoothHeadings(c.Request().Context(), req.Headings)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, smoothHeadingsResponse{Smoothed: trace})
}
