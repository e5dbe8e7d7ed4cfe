package buildstock

import "github.com/paulmach/orb"

// Building is the standard record returned by the buildings listing.
type Building struct {
	ID                    string  `json:"id"`
	Area                  float64 `json:"area"`
	Height                float64 `json:"height"`
	Type                  string  `json:"type"`
	HouseholdCount        int     `json:"household_count"`
	HeatingCommodity      string  `json:"heating_commodity"`
	CoolingCommodity      string  `json:"cooling_commodity"`
	WaterHeatingCommodity string  `json:"water_heating_commodity"`
	CookingCommodity      string  `json:"cooking_commodity"`
}

// BuildingGeometry is the reduced record returned by the geometry listing.
type BuildingGeometry struct {
	ID        string
	Footprint orb.Geometry
	Centroid  orb.Geometry
	Type      string
}

// BuildingStatistics aggregates building counts per NUTS region.
type BuildingStatistics struct {
	NutsCode                    string `json:"nuts_code"`
	BuildingCountTotal          int    `json:"building_count_total"`
	BuildingCountResidential    int    `json:"building_count_residential"`
	BuildingCountNonResidential int    `json:"building_count_non_residential"`
	BuildingCountIrrelevant     int    `json:"building_count_irrelevant"`
}

// BuildingTypeStatistics aggregates building counts by type per NUTS region
// or custom geometry.
type BuildingTypeStatistics struct {
	NutsCode                    string `json:"nuts_code"`
	BuildingCountTotal          int    `json:"building_count_total"`
	BuildingCountResidential    int    `json:"building_count_residential"`
	BuildingCountNonResidential int    `json:"building_count_non_residential"`
	BuildingCountMixed          int    `json:"building_count_mixed"`
}

// SectorEnergyConsumption holds the energy consumption of one building
// sector, broken down by commodity.
type SectorEnergyConsumption struct {
	EnergyConsumptionKWh float64            `json:"energy_consumption_kWh"`
	Commodities          map[string]float64 `json:"commodities"`
}

// EnergyConsumptionStatistics aggregates energy consumption per NUTS region.
type EnergyConsumptionStatistics struct {
	NutsCode             string                  `json:"nuts_code"`
	EnergyConsumptionKWh float64                 `json:"energy_consumption_kWh"`
	Residential          SectorEnergyConsumption `json:"residential"`
}

// CommodityCount holds per-use counts of buildings using one commodity.
type CommodityCount struct {
	HeatingCommodityCount      int `json:"heating_commodity_count"`
	CoolingCommodityCount      int `json:"cooling_commodity_count"`
	WaterHeatingCommodityCount int `json:"water_heating_commodity_count"`
	CookingCommodityCount      int `json:"cooking_commodity_count"`
}

// BuildingCommodityStatistics aggregates commodity usage per NUTS region.
type BuildingCommodityStatistics struct {
	NutsCode       string         `json:"nuts_code"`
	Commodity      string         `json:"commodity"`
	CommodityCount CommodityCount `json:"commodity_count"`
}

// NutsRegion describes one region of the NUTS hierarchy.
type NutsRegion struct {
	Code     string
	Name     string
	Level    int
	Parent   string
	Geometry orb.Geometry
}

// BuildingStockEntry is one row of the raw building stock. Footprint and
// centroid travel as extended well-known text.
type BuildingStockEntry struct {
	BuildingID    string  `json:"building_id"`
	Footprint     string  `json:"footprint"`
	Centroid      string  `json:"centroid"`
	FootprintArea float64 `json:"footprint_area"`
	Nuts3         string  `json:"nuts3"`
	Nuts2         string  `json:"nuts2"`
	Nuts1         string  `json:"nuts1"`
	Nuts0         string  `json:"nuts0"`
	Lau           string  `json:"lau"`
}

// NutsRegionEntry is the write-side shape of a NUTS region. Geometry travels
// as extended well-known text.
type NutsRegionEntry struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Level    int    `json:"level"`
	Parent   string `json:"parent"`
	Geometry string `json:"geometry"`
}

// Info carries the provenance fields shared by all per-building attribute
// records submitted to the service.
type Info struct {
	BuildingID string `json:"building_id"`
	Source     string `json:"source"`
	Lineage    string `json:"lineage"`
}

// TypeInfo assigns a type category to a building.
type TypeInfo struct {
	Info
	Value    string `json:"value"`
	Priority int    `json:"priority"`
}

// HouseholdCountInfo records the number of households in a building.
type HouseholdCountInfo struct {
	Info
	Value int `json:"value"`
}

// HeatingCommodityInfo records the heating commodity of a building.
type HeatingCommodityInfo struct {
	Info
	Value    string `json:"value"`
	Priority int    `json:"priority"`
}

// CoolingCommodityInfo records the cooling commodity of a building.
type CoolingCommodityInfo struct {
	Info
	Value    string `json:"value"`
	Priority int    `json:"priority"`
}

// WaterHeatingCommodityInfo records the water heating commodity of a building.
type WaterHeatingCommodityInfo struct {
	Info
	Value    string `json:"value"`
	Priority int    `json:"priority"`
}

// CookingCommodityInfo records the cooking commodity of a building.
type CookingCommodityInfo struct {
	Info
	Value    string `json:"value"`
	Priority int    `json:"priority"`
}

// EnergyConsumptionInfo records the consumption of one commodity in a building.
type EnergyConsumptionInfo struct {
	Info
	Type      string `json:"type"`
	Commodity string `json:"commodity"`
	Value     string `json:"value"`
	Priority  int    `json:"priority"`
}

// TimingLogEntry reports the measured runtime of a data-pipeline function.
type TimingLogEntry struct {
	FunctionName string  `json:"function_name"`
	MeasuredTime float64 `json:"measured_time"`
}
