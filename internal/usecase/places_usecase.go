package usecase

import (
	"context"

	"mihrab/internal/domain/entity"
	"mihrab/internal/domain/geo"
)

// NearbyInput defines a nearby places query. RadiusMeters 0 selects the
// configured default.
type NearbyInput struct {
	Coordinate   geo.Coordinate
	RadiusMeters int
	Category     entity.PlaceCategory
}

// PlacesUsecase defines the interface for nearby place queries.
type PlacesUsecase interface {
	// FindNearby returns places of the requested category around the
	// coordinate, sorted by ascending distance. Ties keep upstream order.
	FindNearby(ctx context.Context, input NearbyInput) ([]*entity.Place, error)
}
