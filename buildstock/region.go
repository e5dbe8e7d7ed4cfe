package buildstock

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// NUTS codes are a two-letter country prefix followed by uppercase letters
// or digits; anything else is treated as a LAU code.
var nutsPattern = regexp.MustCompile(`^[A-Z]{2}[A-Z0-9]*$`)

// RegionParam determines the query parameter name for a NUTS or LAU region
// code. Codes matching the NUTS pattern map to nuts0 through nuts3 by
// length; all other codes are passed as lau. Purely string-shape based, no
// lookup against the service.
func RegionParam(code string) (string, error) {
	if nutsPattern.MatchString(code) {
		switch len(code) {
		case 2:
			return "nuts0", nil
		case 3:
			return "nuts1", nil
		case 4:
			return "nuts2", nil
		case 5:
			return "nuts3", nil
		}
		return "", fmt.Errorf("%w: NUTS region code too long", ErrInvalidArgument)
	}
	return "lau", nil
}

// NutsLevel is a convenience for filling Scope.NutsLevel inline.
func NutsLevel(level int) *int {
	return &level
}

// Scope narrows a statistics query to an administrative region or to a
// custom geometry. The zero value selects the full dataset.
//
// NutsLevel and NutsCode are mutually exclusive, and Geom excludes all
// region fields: a query targets either regions or a custom polygon, never
// both.
type Scope struct {
	Country   string
	NutsLevel *int
	NutsCode  string
	Geom      orb.Geometry
}

// resolve validates the scope and renders its query parameters. It reports
// whether the geometry-scoped variant of the endpoint must be targeted,
// which is a distinct URL rather than an extra parameter.
func (s Scope) resolve() (url.Values, bool, error) {
	if s.NutsLevel != nil && s.NutsCode != "" {
		return nil, false, fmt.Errorf("%w: either nuts_level or nuts_code can be specified, not both", ErrInvalidArgument)
	}
	if s.Geom != nil && (s.NutsLevel != nil || s.NutsCode != "" || s.Country != "") {
		return nil, false, fmt.Errorf("%w: query either by region or by custom geometry, not both", ErrInvalidArgument)
	}

	params := url.Values{}
	if s.Geom != nil {
		params.Set("geom", wkt.MarshalString(s.Geom))
		return params, true, nil
	}

	params.Set("country", s.Country)
	if s.NutsLevel != nil {
		params.Set("nuts_level", strconv.Itoa(*s.NutsLevel))
	} else if s.NutsCode != "" {
		params.Set("nuts_code", s.NutsCode)
	}
	return params, false, nil
}

// TypeFilter selects buildings by type with three states: any type, only
// buildings whose type is unset, or one specific type. The zero value
// matches any type.
type TypeFilter struct {
	value  string
	isNull bool
	exact  bool
}

// AnyType matches buildings regardless of their type.
func AnyType() TypeFilter {
	return TypeFilter{}
}

// UntypedOnly matches only buildings whose type is unset.
func UntypedOnly() TypeFilter {
	return TypeFilter{isNull: true}
}

// Type matches only buildings of the given type.
func Type(value string) TypeFilter {
	return TypeFilter{value: value, exact: true}
}

// apply emits the type / type__isnull query parameter pair. The service
// needs both to tell "no filter" apart from "type is null" and from an
// exact match; a single parameter cannot express the three states.
func (f TypeFilter) apply(params url.Values) {
	switch {
	case f.isNull:
		params.Set("type", "")
		params.Set("type__isnull", "True")
	case f.exact:
		params.Set("type", f.value)
		params.Set("type__isnull", "False")
	default:
		params.Set("type", "")
		params.Set("type__isnull", "")
	}
}
