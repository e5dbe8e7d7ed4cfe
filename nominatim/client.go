// Package nominatim provides a client for the reverse-geocoding service
// used to resolve building coordinates into street addresses. It is
// independent of the building-stock client and needs no authentication.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client wraps the Nominatim reverse-geocoding API
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new geocoding client against the given service address
// (scheme://host:port).
func NewClient(address string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if address == "" {
		return nil, fmt.Errorf("nominatim address is required")
	}

	client := &Client{
		baseURL:    strings.TrimRight(address, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// geocodeResponse is the subset of the geocodejson format the client reads.
type geocodeResponse struct {
	Error    json.RawMessage `json:"error"`
	Features []struct {
		Properties struct {
			Geocoding struct {
				HouseNumber string `json:"housenumber"`
				Street      string `json:"street"`
				Postcode    string `json:"postcode"`
				City        string `json:"city"`
			} `json:"geocoding"`
		} `json:"properties"`
	} `json:"features"`
}

// GetAddress reverse geocodes a latitude/longitude pair into a street
// address. Address fields the geocoder cannot resolve are returned empty; a
// response without any feature yields ErrGeocodeFailed.
func (c *Client) GetAddress(ctx context.Context, lat, lon float64) (Address, error) {
	params := url.Values{}
	// Positional notation without trailing zeros; the service rejects
	// exponent-formatted coordinates.
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("zoom", "18")
	params.Set("format", "geocodejson")

	requestURL := c.baseURL + "/reverse/?" + params.Encode()
	c.logger.Debug().Str("url", requestURL).Msg("Making reverse geocoding request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return Address{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Address{}, fmt.Errorf("unexpected error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Address{}, fmt.Errorf("unexpected error: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if resp.StatusCode == http.StatusForbidden {
			return Address{}, ErrUnauthorized
		}
		return Address{}, fmt.Errorf("unexpected error: status %d", resp.StatusCode)
	}

	var payload geocodeResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrGeocodeFailed, err)
	}
	if payload.Error != nil || len(payload.Features) == 0 {
		return Address{}, ErrGeocodeFailed
	}

	geocoding := payload.Features[0].Properties.Geocoding
	return Address{
		Street:      geocoding.Street,
		HouseNumber: geocoding.HouseNumber,
		Postcode:    geocoding.Postcode,
		City:        geocoding.City,
	}, nil
}
