package impl

import (
	"context"

	"mihrab/config"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/geo"
	"mihrab/internal/usecase"
)

// qiblaService implements the QiblaUsecase interface. The computation is
// pure; no upstream is involved.
type qiblaService struct {
	alpha float64
}

// NewQiblaService creates a new qibla service instance.
func NewQiblaService(cfg *config.Config) usecase.QiblaUsecase {
	alpha := geo.DefaultSmoothingAlpha
	if cfg.Compass != nil && cfg.Compass.SmoothingAlpha > 0 && cfg.Compass.SmoothingAlpha <= 1 {
		alpha = cfg.Compass.SmoothingAlpha
	}

	return &qiblaService{alpha: alpha}
}

// Direction computes the great-circle bearing and distance to the Kaaba.
// With a device heading it also low-pass filters the heading against the
// previous smoothed value and derives the rotation still needed.
func (srv *qiblaService) Direction(_ context.Context, input usecase.QiblaInput) (*usecase.QiblaOutput, error) {
	if !input.Coordinate.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	out := &usecase.QiblaOutput{
		Bearing:           geo.QiblaBearing(input.Coordinate),
		DistanceKm:        geo.HaversineKm(input.Coordinate, geo.Kaaba),
		LocationDefaulted: input.LocationDefaulted,
	}

	if input.DeviceHeading == nil {
		return out, nil
	}

	smoother := geo.NewHeadingSmoother(srv.alpha)
	if input.PreviousHeading != nil {
		smoother.Smooth(*input.PreviousHeading)
	}
	smoothed := smoother.Smooth(*input.DeviceHeading)
	relative := geo.NormalizeHeading(out.Bearing - smoothed)

	out.SmoothedHeading = &smoothed
	out.RelativeAngle = &relative

	return out, nil
}

// SmoothHeadings folds one filter over the whole sequence, so each output
// value carries the history of the readings before it.
func (srv *qiblaService) SmoothHeadings(_ context.Context, headings []float64) ([]float64, error) {
	if len(headings) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("headings must not be empty")
	}

	smoother := geo.NewHeadingSmoother(srv.alpha)
	trace := make([]float64, len(headings))
	for i, heading := range headings {
		trace[i] = smoother.Smooth(heading)
	}

	return trace, nil
}
