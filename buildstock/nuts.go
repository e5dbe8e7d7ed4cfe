package buildstock

import (
	"context"
	"net/url"

	"github.com/datapio/buildstock/geometry"
)

const (
	nutsPath      = "nuts"
	nutsCodesPath = "nuts-codes"
)

// nutsRegionDTO is the wire shape of a NUTS region; the geometry column
// travels as extended well-known text.
type nutsRegionDTO struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Parent   string `json:"parent"`
	Geometry string `json:"geometry"`
}

// GetNutsRegion fetches a single NUTS region by code.
func (c *Client) GetNutsRegion(ctx context.Context, nutsCode string) (NutsRegion, error) {
	var dto nutsRegionDTO
	if err := c.getJSON(ctx, nutsPath+"/"+url.PathEscape(nutsCode), nil, false, &dto); err != nil {
		return NutsRegion{}, err
	}

	return NutsRegion{
		Code:     dto.Code,
		Name:     dto.Name,
		Level:    dto.Level,
		Parent:   dto.Parent,
		Geometry: geometry.Decode(dto.Geometry),
	}, nil
}

// GetChildrenNutsCodes returns the codes of the direct children of the given
// region in the NUTS hierarchy. An empty parent returns the NUTS-0 codes.
func (c *Client) GetChildrenNutsCodes(ctx context.Context, parentCode string) ([]string, error) {
	params := url.Values{}
	params.Set("parent", parentCode)

	var codes []string
	if err := c.getJSON(ctx, nutsCodesPath, params, false, &codes); err != nil {
		return nil, err
	}
	return codes, nil
}
