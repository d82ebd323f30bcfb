// Package overpass implements the nearby places client against the
// OpenStreetMap Overpass API.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/paulmach/orb"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	"mihrab/internal/domain/geo"
	"mihrab/internal/domain/service"
	"mihrab/internal/errors"
)

const defaultBaseURL = "https://overpass-api.de/api/interpreter"

type response struct {
	Elements []element `json:"elements"`
}

type element struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *center           `json:"center,omitempty"`
	Tags   map[string]string `json:"tags"`
}

type center struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// point returns the element's position. Ways carry their location in the
// "center" field produced by "out center".
func (e element) point() (orb.Point, bool) {
	if e.Type == "node" {
		return orb.Point{e.Lon, e.Lat}, true
	}
	if e.Center != nil {
		return orb.Point{e.Center.Lon, e.Center.Lat}, true
	}

	return orb.Point{}, false
}

// Client talks to an Overpass API endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a places client from configuration.
func NewClient(cfg *config.Config) service.PlacesClient {
	baseURL := defaultBaseURL
	timeout := config.DefaultUpstreamTimeout
	if cfg.Overpass != nil {
		if cfg.Overpass.BaseURL != "" {
			baseURL = cfg.Overpass.BaseURL
		}
		if cfg.Overpass.Timeout > 0 {
			timeout = cfg.Overpass.Timeout
		}
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FindNearby queries nodes and ways of the given category around center.
func (c *Client) FindNearby(ctx context.Context, at geo.Coordinate, radiusMeters int, category entity.PlaceCategory) ([]*entity.Place, error) {
	filter, err := categoryFilter(category)
	if err != nil {
		return nil, err
	}

	query := buildQuery(filter, at, radiusMeters)

	form := url.Values{}
	form.Set("data", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, "build overpass request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "overpass request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("overpass: unexpected status %d", resp.StatusCode)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "decode overpass response")
	}

	places := make([]*entity.Place, 0, len(payload.Elements))
	for _, el := range payload.Elements {
		pt, ok := el.point()
		if !ok {
			continue
		}

		places = append(places, &entity.Place{
			ID:         el.ID,
			Name:       el.Tags["name"],
			Address:    buildAddress(el.Tags),
			Coordinate: geo.Coordinate{Latitude: pt.Lat(), Longitude: pt.Lon()},
			Phone:      el.Tags["phone"],
			Website:    el.Tags["website"],
			Cuisine:    el.Tags["cuisine"],
			Category:   category,
		})
	}

	return places, nil
}

func categoryFilter(category entity.PlaceCategory) (string, error) {
	switch category {
	case entity.CategoryMosque:
		return `["amenity"="place_of_worship"]["religion"="muslim"]`, nil
	case entity.CategoryRestaurant:
		return `["amenity"="restaurant"]["diet:halal"~"yes|only"]`, nil
	default:
		return "", errors.Errorf("overpass: unknown place category %q", category)
	}
}

func buildQuery(filter string, at geo.Coordinate, radiusMeters int) string {
	around := fmt.Sprintf("(around:%d,%f,%f)", radiusMeters, at.Latitude, at.Longitude)

	var b strings.Builder
	b.WriteString("[out:json][timeout:25];(")
	b.WriteString("node" + filter + around + ";")
	b.WriteString("way" + filter + around + ";")
	b.WriteString(");out center tags;")

	return b.String()
}

func buildAddress(tags map[string]string) string {
	parts := make([]string, 0, 3)
	if street := tags["addr:street"]; street != "" {
		if number := tags["addr:housenumber"]; number != "" {
			parts = append(parts, number+" "+street)
		} else {
			parts = append(parts, street)
		}
	}
	if city := tags["addr:city"]; city != "" {
		parts = append(parts, city)
	}
	if postcode := tags["addr:postcode"]; postcode != "" {
		parts = append(parts, postcode)
	}

	return strings.Join(parts, ", ")
}
