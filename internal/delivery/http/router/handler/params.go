package handler

import (
	"strconv"

	"mihrab/internal/domain/geo"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// coordinateFromQuery reads lat/lng query parameters. When both are absent
// the Kaaba coordinates serve as the default location and the second return
// value reports the substitution. Range checking is left to the usecases,
// which reject out-of-range coordinates.
func coordinateFromQuery(c echo.Context) (geo.Coordinate, bool, error) {
	rawLat, rawLng := c.QueryParam("lat"), c.QueryParam("lng")
	if rawLat == "" && rawLng == "" {
		return geo.Kaaba, true, nil
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return geo.Coordinate{}, false, errors.New("lat must be a number")
	}

	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return geo.Coordinate{}, false, errors.New("lng must be a number")
	}

	return geo.Coordinate{Latitude: lat, Longitude: lng}, false, nil
}

// intParam parses a numeric path parameter.
func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, errors.Errorf("%s must be a number", name)
	}

	return v, nil
}

// intQuery parses an optional numeric query parameter, returning the
// fallback when absent.
func intQuery(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Errorf("%s must be a number", name)
	}

	return v, nil
}
