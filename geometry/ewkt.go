// Package geometry converts between orb geometries and the extended
// well-known-text convention ("SRID=<n>;<WKT>") used by the building-stock
// data service for geometry columns and query parameters.
package geometry

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// DefaultSRID is the spatial reference the data service stores geometries in.
const DefaultSRID = 4326

// Encode serializes a geometry as extended well-known text with the given
// spatial reference identifier.
func Encode(srid int, geom orb.Geometry) string {
	return fmt.Sprintf("SRID=%d;%s", srid, wkt.MarshalString(geom))
}

// Decode parses an extended well-known-text string. The SRID prefix up to the
// first semicolon is discarded and only the WKT portion is parsed. Malformed
// input yields a nil geometry, not an error; geometry columns in the service
// are nullable and callers treat unparseable values as absent.
func Decode(s string) orb.Geometry {
	_, wktStr, found := strings.Cut(s, ";")
	if !found {
		return nil
	}
	geom, err := wkt.Unmarshal(wktStr)
	if err != nil {
		return nil
	}
	return geom
}
