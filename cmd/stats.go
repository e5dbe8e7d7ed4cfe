package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datapio/buildstock/buildstock"
)

var (
	statsCountry   string
	statsNutsLevel int
	statsNutsCode  string
	statsCommodity string
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Query aggregated statistics",
	Long: `Query aggregated statistics per NUTS region. Narrow the scope with
either --nuts-level or --nuts-code (not both), optionally restricted to one
--country.`,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.PersistentFlags().StringVar(&statsCountry, "country", "", "NUTS-0 country code, e.g. DE")
	statsCmd.PersistentFlags().IntVar(&statsNutsLevel, "nuts-level", -1, "NUTS level (0-3)")
	statsCmd.PersistentFlags().StringVar(&statsNutsCode, "nuts-code", "", "NUTS region code, e.g. DE80N")

	statsCmd.AddCommand(statsBuildingsCmd)
	statsCmd.AddCommand(statsEnergyCmd)
	statsCmd.AddCommand(statsCommoditiesCmd)

	statsCommoditiesCmd.Flags().StringVar(&statsCommodity, "commodity", "", "restrict to one commodity")
}

// statsScope builds the query scope from the shared flags. Invalid
// combinations are rejected by the client before any request is made.
func statsScope(cmd *cobra.Command) buildstock.Scope {
	scope := buildstock.Scope{
		Country:  statsCountry,
		NutsCode: statsNutsCode,
	}
	if cmd.Flags().Changed("nuts-level") {
		scope.NutsLevel = buildstock.NutsLevel(statsNutsLevel)
	}
	return scope
}

var statsBuildingsCmd = &cobra.Command{
	Use:   "buildings",
	Short: "Building counts per region",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := client.GetBuildingStatistics(context.Background(), statsScope(cmd))
		if err != nil {
			return err
		}
		for _, s := range stats {
			fmt.Printf("%-6s total=%-8d residential=%-8d non-residential=%-8d irrelevant=%d\n",
				s.NutsCode, s.BuildingCountTotal, s.BuildingCountResidential,
				s.BuildingCountNonResidential, s.BuildingCountIrrelevant)
		}
		return nil
	},
}

var statsEnergyCmd = &cobra.Command{
	Use:   "energy",
	Short: "Energy consumption per region",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := client.GetEnergyConsumptionStatistics(context.Background(), statsScope(cmd))
		if err != nil {
			return err
		}
		for _, s := range stats {
			fmt.Printf("%-6s total=%.1f kWh residential=%.1f kWh\n",
				s.NutsCode, s.EnergyConsumptionKWh, s.Residential.EnergyConsumptionKWh)
			for commodity, kwh := range s.Residential.Commodities {
				fmt.Printf("       %-20s %.1f kWh\n", commodity, kwh)
			}
		}
		return nil
	},
}

var statsCommoditiesCmd = &cobra.Command{
	Use:   "commodities",
	Short: "Commodity usage counts per region",
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := client.GetBuildingCommodityStatistics(context.Background(), statsScope(cmd), statsCommodity)
		if err != nil {
			return err
		}
		for _, s := range stats {
			fmt.Printf("%-6s %-20s heating=%-6d cooling=%-6d water=%-6d cooking=%d\n",
				s.NutsCode, s.Commodity,
				s.CommodityCount.HeatingCommodityCount,
				s.CommodityCount.CoolingCommodityCount,
				s.CommodityCount.WaterHeatingCommodityCount,
				s.CommodityCount.CookingCommodityCount)
		}
		return nil
	},
}
