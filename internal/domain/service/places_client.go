package service

import (
	"context"

	"mihrab/internal/domain/entity"
	"mihrab/internal/domain/geo"
)

// PlacesClient defines the interface for querying nearby points of interest
// from an upstream map data service. Results carry no distance; callers
// compute and sort by distance from the query point.
type PlacesClient interface {
	// FindNearby returns places of the given category within radiusMeters
	// of center.
	FindNearby(ctx context.Context, center geo.Coordinate, radiusMeters int, category entity.PlaceCategory) ([]*entity.Place, error)
}
