package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datapio/buildstock/buildstock"
	"github.com/datapio/buildstock/filter"
)

var (
	regionCode       string
	buildingType     string
	untypedOnly      bool
	heatingCommodity string
	filterExpr       string
)

// buildingsCmd represents the buildings command
var buildingsCmd = &cobra.Command{
	Use:   "buildings",
	Short: "List buildings in a NUTS or LAU region",
	Long: `List buildings in a region. The region code is classified by its shape:
codes matching the NUTS pattern (e.g. DE, DE80N) query the matching NUTS
level, anything else (e.g. 01058007) queries by LAU code.`,
	RunE: runBuildings,
}

func init() {
	rootCmd.AddCommand(buildingsCmd)

	buildingsCmd.Flags().StringVarP(&regionCode, "region", "r", "", "NUTS or LAU region code")
	buildingsCmd.Flags().StringVarP(&buildingType, "type", "t", "", "building type (residential, non-residential, mixed)")
	buildingsCmd.Flags().BoolVar(&untypedOnly, "untyped-only", false, "only buildings without a type")
	buildingsCmd.Flags().StringVar(&heatingCommodity, "heating", "", "heating commodity filter")
	buildingsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "client-side filter expression")
}

func runBuildings(cmd *cobra.Command, args []string) error {
	typeFilter := buildstock.AnyType()
	switch {
	case untypedOnly && buildingType != "":
		return fmt.Errorf("--type and --untyped-only are mutually exclusive")
	case untypedOnly:
		typeFilter = buildstock.UntypedOnly()
	case buildingType != "":
		typeFilter = buildstock.Type(buildingType)
	}

	ctx := context.Background()
	buildings, err := client.GetBuildings(ctx, regionCode, typeFilter, heatingCommodity)
	if err != nil {
		return err
	}

	if filterExpr != "" {
		f, err := filter.Compile(filterExpr)
		if err != nil {
			return err
		}
		buildings, err = f.Apply(buildings)
		if err != nil {
			return err
		}
		logger.Debug().Str("filter", f.Expression()).Int("matched", len(buildings)).Msg("Applied client-side filter")
	}

	if len(buildings) == 0 {
		fmt.Println("No buildings found.")
		return nil
	}

	for _, b := range buildings {
		fmt.Printf("%s  type=%-16s area=%8.1f m2  height=%5.1f m  households=%d  heating=%s\n",
			b.ID, b.Type, b.Area, b.Height, b.HouseholdCount, b.HeatingCommodity)
	}
	fmt.Printf("\n%d building(s)\n", len(buildings))

	return nil
}
