package overpass

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mihrab/config"
	"mihrab/internal/domain/entity"
	"mihrab/internal/domain/geo"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Overpass = &config.OverpassConfig{
		BaseURL: server.URL,
		Timeout: 2 * time.Second,
	}

	client, ok := NewClient(cfg).(*Client)
	require.True(t, ok)

	return client
}

func TestFindNearbyMosques(t *testing.T) {
	var gotQuery string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		form, err := url.ParseQuery(string(body))
		require.NoError(t, err)
		gotQuery = form.Get("data")

		w.Write([]byte(`{
			"elements": [
				{
					"type": "node", "id": 101, "lat": 51.51, "lon": -0.12,
					"tags": {"name": "East London Mosque", "addr:street": "Whitechapel Road", "addr:housenumber": "82", "addr:city": "London", "phone": "+44 20 7650 3000"}
				},
				{
					"type": "way", "id": 202, "center": {"lat": 51.52, "lon": -0.13},
					"tags": {"name": "Regents Park Mosque"}
				},
				{
					"type": "way", "id": 303,
					"tags": {"name": "No Center Way"}
				}
			]
		}`))
	})

	center := geo.Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	places, err := client.FindNearby(context.Background(), center, 3000, entity.CategoryMosque)
	require.NoError(t, err)

	assert.Contains(t, gotQuery, `["amenity"="place_of_worship"]["religion"="muslim"]`)
	assert.Contains(t, gotQuery, "around:3000")
	assert.Contains(t, gotQuery, "out center tags")

	// The way without a center is dropped.
	require.Len(t, places, 2)

	assert.Equal(t, int64(101), places[0].ID)
	assert.Equal(t, "East London Mosque", places[0].Name)
	assert.Equal(t, "82 Whitechapel Road, London", places[0].Address)
	assert.Equal(t, "+44 20 7650 3000", places[0].Phone)
	assert.InDelta(t, 51.51, places[0].Coordinate.Latitude, 1e-9)
	assert.Equal(t, entity.CategoryMosque, places[0].Category)

	assert.InDelta(t, 51.52, places[1].Coordinate.Latitude, 1e-9)
}

func TestFindNearbyHalalRestaurantsFilter(t *testing.T) {
	var gotQuery string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(body))
		gotQuery = form.Get("data")
		w.Write([]byte(`{"elements": []}`))
	})

	_, err := client.FindNearby(context.Background(), geo.Kaaba, 1000, entity.CategoryRestaurant)
	require.NoError(t, err)
	assert.Contains(t, gotQuery, `["amenity"="restaurant"]["diet:halal"~"yes|only"]`)
}

func TestFindNearbyUnknownCategory(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for an invalid category")
	})

	_, err := client.FindNearby(context.Background(), geo.Kaaba, 1000, entity.PlaceCategory("park"))
	assert.Error(t, err)
}

func TestFindNearbyUpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.FindNearby(context.Background(), geo.Kaaba, 1000, entity.CategoryMosque)
	assert.Error(t, err)
}
