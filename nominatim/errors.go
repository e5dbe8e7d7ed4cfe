package nominatim

import "errors"

// Common errors returned by the geocoding client.
var (
	// ErrGeocodeFailed indicates the geocoder returned no result or a
	// malformed response for the given location.
	ErrGeocodeFailed = errors.New("could not reverse geocode the given location")

	// ErrUnauthorized indicates the geocoding service rejected the request.
	ErrUnauthorized = errors.New("not authorized to perform this operation")
)
