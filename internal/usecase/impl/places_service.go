package impl

import (
	"context"
	"sort"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	domainerrors "mihrab/internal/domain/errors"
	"mihrab/internal/domain/geo"
	"mihrab/internal/domain/service"
	"mihrab/internal/usecase"
)

const (
	defaultPlacesRadius  = 2000
	defaultPlacesMax     = 5000
	defaultPlacesResults = 50
)

// placesService implements the PlacesUsecase interface.
type placesService struct {
	client        service.PlacesClient
	defaultRadius int
	maxRadius     int
	maxResults    int
}

// NewPlacesService creates a new places service instance.
func NewPlacesService(client service.PlacesClient, cfg *config.Config) usecase.PlacesUsecase {
	defaultRadius := defaultPlacesRadius
	maxRadius := defaultPlacesMax
	maxResults := defaultPlacesResults
	if cfg.Places != nil {
		if cfg.Places.DefaultRadius > 0 {
			defaultRadius = int(cfg.Places.DefaultRadius)
		}
		if cfg.Places.MaxRadius > 0 {
			maxRadius = int(cfg.Places.MaxRadius)
		}
		if cfg.Places.MaxResults > 0 {
			maxResults = cfg.Places.MaxResults
		}
	}

	return &placesService{
		client:        client,
		defaultRadius: defaultRadius,
		maxRadius:     maxRadius,
		maxResults:    maxResults,
	}
}

// FindNearby queries the upstream, computes the distance from the query
// point for every hit and sorts ascending. Equal distances keep upstream
// order so results are stable across retries.
func (srv *placesService) FindNearby(ctx context.Context, input usecase.NearbyInput) ([]*entity.Place, error) {
	if !input.Coordinate.Valid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}
	if !input.Category.Valid() {
		return nil, domainerrors.ErrInvalidPlaceCategory
	}

	radius := input.RadiusMeters
	if radius <= 0 {
		radius = srv.defaultRadius
	}
	if radius > srv.maxRadius {
		return nil, domainerrors.ErrRadiusOutOfRange
	}

	places, err := srv.client.FindNearby(ctx, input.Coordinate, radius, input.Category)
	if err != nil {
		return nil, domainerrors.NewUpstreamError(err, "places")
	}

	for _, place := range places {
		place.DistanceKm = geo.HaversineKm(input.Coordinate, place.Coordinate)
	}

	sort.SliceStable(places, func(i, j int) bool {
		return places[i].DistanceKm < places[j].DistanceKm
	})

	if len(places) > srv.maxResults {
		places = places[:srv.maxResults]
	}

	return places, nil
}
