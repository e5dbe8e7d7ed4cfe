package nominatim

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, zerolog.Nop())
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresAddress(t *testing.T) {
	_, err := NewClient("", zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address is required")
}

func TestGetAddress(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse/", r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "52.5", query.Get("lat"))
		assert.Equal(t, "13.25", query.Get("lon"))
		assert.Equal(t, "18", query.Get("zoom"))
		assert.Equal(t, "geocodejson", query.Get("format"))

		fmt.Fprint(w, `{"features":[{"properties":{"geocoding":{
			"housenumber":"12","street":"Unter den Linden","postcode":"10117","city":"Berlin"
		}}}]}`)
	})

	addr, err := client.GetAddress(context.Background(), 52.5, 13.25)
	require.NoError(t, err)
	assert.Equal(t, Address{
		Street:      "Unter den Linden",
		HouseNumber: "12",
		Postcode:    "10117",
		City:        "Berlin",
	}, addr)
}

func TestGetAddressMissingFieldsDefaultEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"features":[{"properties":{"geocoding":{"city":"Berlin"}}}]}`)
	})

	addr, err := client.GetAddress(context.Background(), 52.5, 13.4)
	require.NoError(t, err)
	assert.Equal(t, Address{City: "Berlin"}, addr)
}

func TestGetAddressGeocodeFailure(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "error field", body: `{"error":"Unable to geocode"}`},
		{name: "no features array", body: `{"type":"FeatureCollection"}`},
		{name: "empty features array", body: `{"features":[]}`},
		{name: "not json", body: `<html>oops</html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tt.body)
			})

			_, err := client.GetAddress(context.Background(), 52.5, 13.4)
			assert.ErrorIs(t, err, ErrGeocodeFailed)
		})
	}
}

func TestGetAddressForbidden(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.GetAddress(context.Background(), 52.5, 13.4)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCoordinateFormatting(t *testing.T) {
	// Coordinates must be positional, without exponent or trailing zeros.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "0.00001", query.Get("lat"))
		assert.Equal(t, "-73.98", query.Get("lon"))
		fmt.Fprint(w, `{"features":[{"properties":{"geocoding":{}}}]}`)
	})

	_, err := client.GetAddress(context.Background(), 0.00001, -73.98)
	require.NoError(t, err)
}
