package entity

import "mihrab/internal/domain/geo"

// PlaceCategory names a kind of nearby point of interest.
type PlaceCategory string

const (
	CategoryMosque     PlaceCategory = "mosque"
	CategoryRestaurant PlaceCategory = "restaurant"
)

// Valid reports whether the category is one of the known values.
func (c PlaceCategory) Valid() bool {
	return c == CategoryMosque || c == CategoryRestaurant
}

// Place is a nearby point of interest fetched per query, never persisted.
// Result lists are ordered by ascending DistanceKm; ties keep fetch order.
type Place struct {
	ID         int64          `json:"id"` // Upstream OSM element ID.
	Name       string         `json:"name"`
	Address    string         `json:"address,omitempty"`
	Coordinate geo.Coordinate `json:"coordinate"`
	DistanceKm float64        `json:"distance_km"`
	Phone      string         `json:"phone,omitempty"`
	Website    string         `json:"website,omitempty"`
	Cuisine    string         `json:"cuisine,omitempty"`
	Category   PlaceCategory  `json:"category"`
}
