package handler

import (
	"log/slog"
	"net/http"

	"mihrab/internal/delivery/http/response"
	"mihrab/internal/domain/entity"
	"mihrab/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlacesHandlerParams holds dependencies for PlacesHandler, injected by Fx.
type PlacesHandlerParams struct {
	fx.In

	PlacesUC usecase.PlacesUsecase
	Logger   *slog.Logger
}

// PlacesHandler holds dependencies for nearby place handlers.
type PlacesHandler struct {
	placesUC usecase.PlacesUsecase
	logger   *slog.Logger
}

// NewPlacesHandler is the constructor for PlacesHandler.
func NewPlacesHandler(params PlacesHandlerParams) *PlacesHandler {
	return &PlacesHandler{
		placesUC: params.PlacesUC,
		logger:   params.Logger,
	}
}

// FindNearby returns mosques or halal restaurants around a coordinate,
// sorted by ascending distance.
func (h *PlacesHandler) FindNearby(c echo.Context) error {
	coord, _, err := coordinateFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	radius, err := intQuery(c, "radius", 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	places, err := h.placesUC.FindNearby(c.Request().Context(), usecase.NearbyInput{
		Coordinate:   coord,
		RadiusMeters: radius,
		Category:     entity.PlaceCategory(c.QueryParam("category")),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, places)
}
