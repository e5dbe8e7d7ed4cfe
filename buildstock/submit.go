package buildstock

import "context"

// Write-side endpoint paths. All of them require authentication.
const (
	nutsSubmitPath            = "nuts"
	typeInfoPath              = "type"
	householdCountPath        = "household-count"
	heatingCommodityPath      = "heating-commodity"
	coolingCommodityPath      = "cooling-commodity"
	waterHeatingCommodityPath = "water-heating-commodity"
	cookingCommodityPath      = "cooking-commodity"
	energyConsumptionPath     = "energy-consumption"
	timingLogPath             = "admin/timing-log"
)

// PostBuildingStock submits raw building stock entries.
func (c *Client) PostBuildingStock(ctx context.Context, entries []BuildingStockEntry) error {
	return c.postJSON(ctx, buildingStockPath, entries)
}

// PostNutsRegions submits NUTS hierarchy regions.
func (c *Client) PostNutsRegions(ctx context.Context, regions []NutsRegionEntry) error {
	return c.postJSON(ctx, nutsSubmitPath, regions)
}

// PostTypeInfo submits building type classifications.
func (c *Client) PostTypeInfo(ctx context.Context, infos []TypeInfo) error {
	return c.postJSON(ctx, typeInfoPath, infos)
}

// PostHouseholdCount submits per-building household counts.
func (c *Client) PostHouseholdCount(ctx context.Context, infos []HouseholdCountInfo) error {
	return c.postJSON(ctx, householdCountPath, infos)
}

// PostHeatingCommodity submits per-building heating commodities.
func (c *Client) PostHeatingCommodity(ctx context.Context, infos []HeatingCommodityInfo) error {
	return c.postJSON(ctx, heatingCommodityPath, infos)
}

// PostCoolingCommodity submits per-building cooling commodities.
func (c *Client) PostCoolingCommodity(ctx context.Context, infos []CoolingCommodityInfo) error {
	return c.postJSON(ctx, coolingCommodityPath, infos)
}

// PostWaterHeatingCommodity submits per-building water heating commodities.
func (c *Client) PostWaterHeatingCommodity(ctx context.Context, infos []WaterHeatingCommodityInfo) error {
	return c.postJSON(ctx, waterHeatingCommodityPath, infos)
}

// PostCookingCommodity submits per-building cooking commodities.
func (c *Client) PostCookingCommodity(ctx context.Context, infos []CookingCommodityInfo) error {
	return c.postJSON(ctx, cookingCommodityPath, infos)
}

// PostEnergyConsumption submits per-building energy consumption records.
func (c *Client) PostEnergyConsumption(ctx context.Context, infos []EnergyConsumptionInfo) error {
	return c.postJSON(ctx, energyConsumptionPath, infos)
}

// PostTimingLog reports the measured runtime of a pipeline function.
func (c *Client) PostTimingLog(ctx context.Context, functionName string, measuredTime float64) error {
	entry := TimingLogEntry{FunctionName: functionName, MeasuredTime: measuredTime}
	return c.postJSON(ctx, timingLogPath, entry)
}
