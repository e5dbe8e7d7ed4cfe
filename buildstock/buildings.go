package buildstock

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
)

// Endpoint paths relative to the API base path.
const (
	buildingsPath         = "buildings"
	buildingsGeometryPath = "buildings/geometry"
	viewRefreshPath       = "buildings/refresh"
	buildingStockPath     = "building-stock"
)

// pagedBuildings is the paginated envelope of the buildings listing.
type pagedBuildings struct {
	Results []Building `json:"results"`
	Next    string     `json:"next"`
}

// GetBuildings lists all buildings within the given NUTS or LAU region that
// match the type and heating commodity filters. Empty filters match
// everything. The listing is paginated server-side; all pages are fetched.
func (c *Client) GetBuildings(ctx context.Context, regionCode string, typeFilter TypeFilter, heatingCommodity string) ([]Building, error) {
	regionParam, err := RegionParam(regionCode)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set(regionParam, regionCode)
	typeFilter.apply(params)
	params.Set("heating_commodity", heatingCommodity)

	var buildings []Building
	for {
		var page pagedBuildings
		if err := c.getJSON(ctx, buildingsPath, params, false, &page); err != nil {
			return nil, err
		}
		buildings = append(buildings, page.Results...)

		if page.Next == "" {
			break
		}
		nextURL, err := url.Parse(page.Next)
		if err != nil {
			return nil, &DecodeError{Err: fmt.Errorf("invalid next page link %q: %w", page.Next, err)}
		}
		params = nextURL.Query()
	}

	// A duplicated ID across pages means the underlying view is
	// inconsistent; surface it instead of returning bad data.
	seen := make(map[string]struct{}, len(buildings))
	for _, b := range buildings {
		if _, ok := seen[b.ID]; ok {
			return nil, &ServerError{Err: fmt.Errorf("multiple buildings with ID %s returned", b.ID)}
		}
		seen[b.ID] = struct{}{}
	}

	return buildings, nil
}

// buildingGeometryDTO is the inner, JSON-string-encoded record of the
// geometry listing.
type buildingGeometryDTO struct {
	ID        string            `json:"id"`
	Footprint *geojson.Geometry `json:"footprint"`
	Centroid  *geojson.Geometry `json:"centroid"`
	Type      string            `json:"type"`
}

// GetBuildingsGeometry lists building footprints and centroids within the
// given region, optionally restricted to a custom geometry.
//
// The endpoint double-encodes its payload: the body is a JSON array of
// JSON-encoded record strings, so every element needs a second decode pass.
func (c *Client) GetBuildingsGeometry(ctx context.Context, regionCode string, typeFilter TypeFilter, geom orb.Geometry) ([]BuildingGeometry, error) {
	regionParam, err := RegionParam(regionCode)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set(regionParam, regionCode)
	typeFilter.apply(params)
	if geom != nil {
		params.Set("geom", wkt.MarshalString(geom))
	}

	body, err := c.getRaw(ctx, buildingsGeometryPath, params, false)
	if err != nil {
		return nil, err
	}

	var encoded []string
	if err := json.Unmarshal(body, &encoded); err != nil {
		return nil, &DecodeError{Err: err}
	}

	buildings := make([]BuildingGeometry, 0, len(encoded))
	for _, raw := range encoded {
		var dto buildingGeometryDTO
		if err := json.Unmarshal([]byte(raw), &dto); err != nil {
			return nil, &DecodeError{Err: err}
		}
		b := BuildingGeometry{ID: dto.ID, Type: dto.Type}
		if dto.Footprint != nil {
			b.Footprint = dto.Footprint.Geometry()
		}
		if dto.Centroid != nil {
			b.Centroid = dto.Centroid.Geometry()
		}
		buildings = append(buildings, b)
	}

	return buildings, nil
}

// GetBuildingStock returns the raw building stock entries within the given
// geometry and/or region. Requires authentication.
func (c *Client) GetBuildingStock(ctx context.Context, geom orb.Geometry, regionCode string) ([]BuildingStockEntry, error) {
	params := url.Values{}
	if geom != nil {
		params.Set("geom", wkt.MarshalString(geom))
	}
	if regionCode != "" {
		regionParam, err := RegionParam(regionCode)
		if err != nil {
			return nil, err
		}
		params.Set(regionParam, regionCode)
	}

	var envelope struct {
		Results []BuildingStockEntry `json:"results"`
	}
	if err := c.getJSON(ctx, buildingStockPath, params, true, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// RefreshBuildings rebuilds the materialized buildings view after data has
// been submitted. Requires authentication.
func (c *Client) RefreshBuildings(ctx context.Context) error {
	return c.postJSON(ctx, viewRefreshPath, nil)
}
