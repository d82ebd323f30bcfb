package impl

import (
	"context"
	"testing"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/geo"
	mockSvc "mihrab/internal/mocks/service"
	"mihrab/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlacesService_FindNearby_SortsByDistance(t *testing.T) {
	client := mockSvc.NewMockPlacesClient(t)
	service := NewPlacesService(client, &config.Config{})

	ctx := context.Background()
	center := geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}

	far := &entity.Place{Name: "Far Mosque", Coordinate: geo.Coordinate{Latitude: 51.55, Longitude: -0.2}}
	near := &entity.Place{Name: "Near Mosque", Coordinate: geo.Coordinate{Latitude: 51.508, Longitude: -0.128}}

	client.EXPECT().
		FindNearby(ctx, center, defaultPlacesRadius, entity.CategoryMosque).
		Return([]*entity.Place{far, near}, nil)

	places, err := service.FindNearby(ctx, usecase.NearbyInput{
		Coordinate: center,
		Category:   entity.CategoryMosque,
	})

	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Near Mosque", places[0].Name)
	assert.Equal(t, "Far Mosque", places[1].Name)
	assert.Less(t, places[0].DistanceKm, places[1].DistanceKm)
	assert.Greater(t, places[0].DistanceKm, 0.0)
}

func TestPlacesService_FindNearby_RejectsBadCategory(t *testing.T) {
	client := mockSvc.NewMockPlacesClient(t)
	service := NewPlacesService(client, &config.Config{})

	places, err := service.FindNearby(context.Background(), usecase.NearbyInput{
		Coordinate: geo.Coordinate{Latitude: 51.5, Longitude: -0.1},
		Category:   "cafe",
	})

	require.Error(t, err)
	assert.Nil(t, places)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPlaceCategory)
}

func TestPlacesService_FindNearby_RejectsBadCoordinate(t *testing.T) {
	client := mockSvc.NewMockPlacesClient(t)
	service := NewPlacesService(client, &config.Config{})

	places, err := service.FindNearby(context.Background(), usecase.NearbyInput{
		Coordinate: geo.Coordinate{Latitude: -91, Longitude: 0},
		Category:   entity.CategoryMosque,
	})

	require.Error(t, err)
	assert.Nil(t, places)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCoordinate)
}

func TestPlacesService_FindNearby_RadiusAboveMax(t *testing.T) {
	client := mockSvc.NewMockPlacesClient(t)
	service := NewPlacesService(client, &config.Config{})

	places, err := service.FindNearby(context.Background(), usecase.NearbyInput{
		Coordinate:   geo.Coordinate{Latitude: 51.5, Longitude: -0.1},
		RadiusMeters: defaultPlacesMax + 1,
		Category:     entity.CategoryRestaurant,
	})

	require.Error(t, err)
	assert.Nil(t, places)
	assert.ErrorIs(t, err, domainerrors.ErrRadiusOutOfRange)
}

func TestPlacesService_FindNearby_TruncatesToMaxResults(t *testing.T) {
	client := mockSvc.NewMockPlacesClient(t)
	service := NewPlacesService(client, &config.Config{
		Places: &config.PlacesConfig{MaxResults: 2},
	})

	ctx := context.Background()
	center := geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}

	results := []*entity.Place{
		{Name: "A", Coordinate: geo.Coordinate{Latitude: 51.52, Longitude: -0.13}},
		{Name: "B", Coordinate: geo.Coordinate{Latitude: 51.508, Longitude: -0.128}},
		{Name: "C", Coordinate: geo.Coordinate{Latitude: 51.51, Longitude: -0.129}},
	}
	client.EXPECT().
		FindNearby(ctx, center, defaultPlacesRadius, entity.CategoryRestaurant).
		Return(results, nil)

	places, err := service.FindNearby(ctx, usecase.NearbyInput{
		Coordinate: center,
		Category:   entity.CategoryRestaurant,
	})

	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "B", places[0].Name)
	assert.Equal(t, "C", places[1].Name)
}

func TestPlacesService_FindNearby_UpstreamFailure(t *testing.T) {
	client := mockSvc.NewMockPlacesClient(t)
	service := NewPlacesService(client, &config.Config{})

	ctx := context.Background()
	center := geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}

	client.EXPECT().
		FindNearby(ctx, center, defaultPlacesRadius, entity.CategoryMosque).
		Return(nil, errors.New("overpass timeout"))

	places, err := service.FindNearby(ctx, usecase.NearbyInput{
		Coordinate: center,
		Category:   entity.CategoryMosque,
	})

	require.Error(t, err)
	assert.Nil(t, places)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.HTTPCode())
}

func TestPlacesService_FindNearby_EqualDistanceKeepsUpstreamOrder(t *testing.T) {
	client := mockSvc.NewMockPlacesClient(t)
	service := NewPlacesService(client, &config.Config{})

	ctx := context.Background()
	center := geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	shared := geo.Coordinate{Latitude: 51.51, Longitude: -0.13}

	first := &entity.Place{Name: "East London Mosque", Coordinate: shared}
	second := &entity.Place{Name: "Regent's Park Mosque", Coordinate: shared}

	client.EXPECT().
		FindNearby(ctx, center, defaultPlacesRadius, entity.CategoryMosque).
		Return([]*entity.Place{first, second}, nil)

	places, err := service.FindNearby(ctx, usecase.NearbyInput{
		Coordinate: center,
		Category:   entity.CategoryMosque,
	})

	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, places[0].DistanceKm, places[1].DistanceKm)
	assert.Equal(t, "East London Mosque", places[0].Name)
	assert.Equal(t, "Regent's Park Mosque", places[1].Name)
}
