// Package geo contains pure geographic computation helpers: great-circle
// bearing and distance, plus compass heading smoothing.
package geo

import "math"

const earthRadiusKm = 6371.0

// Kaaba is the fixed qibla destination in Mecca.
var Kaaba = Coordinate{Latitude: 21.4225, Longitude: 39.8262}

// Mecca is the fallback observer position used when the caller has no
// device location.
var Mecca = Kaaba

// Coordinate is a point on the Earth's surface in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether the coordinate lies within the WGS84 value ranges.
func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// Bearing returns the initial great-circle bearing from one coordinate to
// another, in degrees clockwise from true north, normalized into [0,360).
// When from and to coincide the formula degenerates; atan2(0,0) is 0, which
// is returned as-is.
func Bearing(from, to Coordinate) float64 {
	phi1 := degreesToRadians(from.Latitude)
	phi2 := degreesToRadians(to.Latitude)
	deltaLon := degreesToRadians(to.Longitude - from.Longitude)

	y := math.Sin(deltaLon) * math.Cos(phi2)
	x := math.Cos(phi1)*math.Sin(phi2) - math.Sin(phi1)*math.Cos(phi2)*math.Cos(deltaLon)

	theta := math.Atan2(y, x)

	return NormalizeHeading(theta * 180 / math.Pi)
}

// QiblaBearing returns the bearing from the observer to the Kaaba.
func QiblaBearing(from Coordinate) float64 {
	return Bearing(from, Kaaba)
}

// HaversineKm returns the great-circle distance in kilometres between two
// coordinates.
func HaversineKm(a, b Coordinate) float64 {
	dLat := degreesToRadians(b.Latitude - a.Latitude)
	dLng := degreesToRadians(b.Longitude - a.Longitude)

	rLat1 := degreesToRadians(a.Latitude)
	rLat2 := degreesToRadians(b.Latitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// NormalizeHeading folds a heading into [0,360).
func NormalizeHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}

	return h
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
