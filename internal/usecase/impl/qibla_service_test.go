package impl

import (
	"context"
	"testing"

	"mihrab/config"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/geo"
	"mihrab/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQiblaService_Direction_BearingAndDistanceOnly(t *testing.T) {
	service := NewQiblaService(&config.Config{})

	// London
	output, err := service.Direction(context.Background(), usecase.QiblaInput{
		Coordinate: geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278},
	})

	require.NoError(t, err)
	assert.InDelta(t, 118.98, output.Bearing, 1.0)
	assert.InDelta(t, 4770, output.DistanceKm, 100)
	assert.Nil(t, output.SmoothedHeading)
	assert.Nil(t, output.RelativeAngle)
}

func TestQiblaService_Direction_RejectsBadCoordinate(t *testing.T) {
	service := NewQiblaService(&config.Config{})

	output, err := service.Direction(context.Background(), usecase.QiblaInput{
		Coordinate: geo.Coordinate{Latitude: 0, Longitude: 181},
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestQiblaService_Direction_SmoothsDeviceHeading(t *testing.T) {
	service := NewQiblaService(&config.Config{
		Compass: &config.CompassConfig{SmoothingAlpha: 0.3},
	})

	previous := 100.0
	heading := 110.0

	output, err := service.Direction(context.Background(), usecase.QiblaInput{
		Coordinate:      geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278},
		DeviceHeading:   &heading,
		PreviousHeading: &previous,
	})

	require.NoError(t, err)
	require.NotNil(t, output.SmoothedHeading)
	// alpha 0.3: 100 + 0.3*(110-100) = 103
	assert.InDelta(t, 103.0, *output.SmoothedHeading, 0.001)

	require.NotNil(t, output.RelativeAngle)
	expected := geo.NormalizeHeading(output.Bearing - *output.SmoothedHeading)
	assert.InDelta(t, expected, *output.RelativeAngle, 0.001)
	assert.GreaterOrEqual(t, *output.RelativeAngle, 0.0)
	assert.Less(t, *output.RelativeAngle, 360.0)
}

func TestQiblaService_Direction_FirstSamplePassesThrough(t *testing.T) {
	service := NewQiblaService(&config.Config{})

	heading := 250.0

	output, err := service.Direction(context.Background(), usecase.QiblaInput{
		Coordinate:    geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278},
		DeviceHeading: &heading,
	})

	require.NoError(t, err)
	require.NotNil(t, output.SmoothedHeading)
	assert.InDelta(t, 250.0, *output.SmoothedHeading, 0.001)
}

func TestQiblaService_Direction_AtKaabaDistanceIsZero(t *testing.T) {
	service := NewQiblaService(&config.Config{})

	output, err := service.Direction(context.Background(), usecase.QiblaInput{
		Coordinate: geo.Kaaba,
	})

	require.NoError(t, err)
	assert.InDelta(t, 0.0, output.DistanceKm, 0.001)
}

func TestQiblaService_Direction_ReportsDefaultedLocation(t *testing.T) {
	service := NewQiblaService(&config.Config{})

	output, err := service.Direction(context.Background(), usecase.QiblaInput{
		Coordinate:        geo.Kaaba,
		LocationDefaulted: true,
	})

	require.NoError(t, err)
	assert.True(t, output.LocationDefaulted)
	assert.InDelta(t, 0.0, output.DistanceKm, 0.001)
}

func TestQiblaService_SmoothHeadings_FoldsFilterOverSequence(t *testing.T) {
	service := NewQiblaService(&config.Config{
		Compass: &config.CompassConfig{SmoothingAlpha: 0.3},
	})

	trace, err := service.SmoothHeadings(context.Background(), []float64{100, 110, 120})

	require.NoError(t, err)
	require.Len(t, trace, 3)
	// First reading passes through, then 100 + 0.3*10 = 103, 103 + 0.3*17 = 108.1.
	assert.InDelta(t, 100.0, trace[0], 0.001)
	assert.InDelta(t, 103.0, trace[1], 0.001)
	assert.InDelta(t, 108.1, trace[2], 0.001)
}

func TestQiblaService_SmoothHeadings_WrapsAroundNorth(t *testing.T) {
	service := NewQiblaService(&config.Config{
		Compass: &config.CompassConfig{SmoothingAlpha: 0.3},
	})

	trace, err := service.SmoothHeadings(context.Background(), []float64{350, 10})

	require.NoError(t, err)
	require.Len(t, trace, 2)
	// The short way from 350 to 10 is +20 degrees, not -340.
	assert.InDelta(t, 356.0, trace[1], 0.001)
}

func TestQiblaService_SmoothHeadings_RejectsEmptySequence(t *testing.T) {
	service := NewQiblaService(&config.Config{})

	trace, err := service.SmoothHeadings(context.Background(), nil)

	require.Error(t, err)
	assert.Nil(t, trace)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
