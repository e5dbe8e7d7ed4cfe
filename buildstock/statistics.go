package buildstock

import (
	"context"
	"fmt"
	"net/url"
)

// Statistics endpoint paths. Geometry-scoped variants are distinct URLs, not
// an extra parameter on the region-scoped ones.
const (
	buildingStatisticsPath  = "statistics/buildings"
	energyStatisticsPath    = "statistics/energy-consumption"
	commodityStatisticsPath = "statistics/building-commodities"
	typeStatisticsPath      = "statistics/building-type"
	typeStatisticsGeomPath  = "statistics/building-type/geom"
)

// statisticsQuery resolves a scope into the endpoint path and query values.
// Statistics without a geometry-scoped variant pass an empty geomPath and
// reject geometry scopes before any request is built.
func statisticsQuery(scope Scope, regionPath, geomPath string) (string, url.Values, error) {
	params, geomScoped, err := scope.resolve()
	if err != nil {
		return "", nil, err
	}
	if geomScoped {
		if geomPath == "" {
			return "", nil, fmt.Errorf("%w: this statistic cannot be queried by custom geometry", ErrInvalidArgument)
		}
		return geomPath, params, nil
	}
	return regionPath, params, nil
}

// GetBuildingStatistics returns building counts per NUTS region, narrowed to
// one NUTS level or one NUTS code via the scope.
func (c *Client) GetBuildingStatistics(ctx context.Context, scope Scope) ([]BuildingStatistics, error) {
	path, params, err := statisticsQuery(scope, buildingStatisticsPath, "")
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []BuildingStatistics `json:"results"`
	}
	if err := c.getJSON(ctx, path, params, false, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// GetEnergyConsumptionStatistics returns the energy consumption per NUTS
// region, narrowed to one NUTS level or one NUTS code via the scope.
func (c *Client) GetEnergyConsumptionStatistics(ctx context.Context, scope Scope) ([]EnergyConsumptionStatistics, error) {
	path, params, err := statisticsQuery(scope, energyStatisticsPath, "")
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []EnergyConsumptionStatistics `json:"results"`
	}
	if err := c.getJSON(ctx, path, params, false, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// GetBuildingCommodityStatistics returns commodity usage counts per NUTS
// region. An empty commodity aggregates over all commodities.
func (c *Client) GetBuildingCommodityStatistics(ctx context.Context, scope Scope, commodity string) ([]BuildingCommodityStatistics, error) {
	path, params, err := statisticsQuery(scope, commodityStatisticsPath, "")
	if err != nil {
		return nil, err
	}
	if commodity != "" {
		params.Set("commodity", commodity)
	}

	var envelope struct {
		Results []BuildingCommodityStatistics `json:"results"`
	}
	if err := c.getJSON(ctx, path, params, false, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// GetBuildingTypeStatistics returns building counts by type, either per NUTS
// region or for one custom geometry. This endpoint responds with a bare JSON
// array instead of the usual results envelope.
func (c *Client) GetBuildingTypeStatistics(ctx context.Context, scope Scope) ([]BuildingTypeStatistics, error) {
	path, params, err := statisticsQuery(scope, typeStatisticsPath, typeStatisticsGeomPath)
	if err != nil {
		return nil, err
	}

	var statistics []BuildingTypeStatistics
	if err := c.getJSON(ctx, path, params, false, &statistics); err != nil {
		return nil, err
	}
	return statistics, nil
}
