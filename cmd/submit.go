package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var refreshAfterSubmit bool

// submitCmd represents the submit command
var submitCmd = &cobra.Command{
	Use:   "submit KIND FILE",
	Short: "Submit records from a JSON file to a privileged endpoint",
	Long: `Submit records to the data service. KIND selects the endpoint:

  building-stock, nuts, type, household-count, heating, cooling,
  water-heating, cooking, energy-consumption

FILE must contain a JSON array of the matching record type. Requires
username and password in the config.`,
	Args: cobra.ExactArgs(2),
	RunE: runSubmit,
}

// refreshCmd represents the refresh command
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the materialized buildings view",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := client.RefreshBuildings(context.Background()); err != nil {
			return err
		}
		logger.Info().Msg("Buildings view refreshed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
	rootCmd.AddCommand(refreshCmd)

	submitCmd.Flags().BoolVar(&refreshAfterSubmit, "refresh", false, "rebuild the buildings view after submitting")
}

// submitFile decodes a JSON array of records and posts it in one request.
func submitFile[T any](ctx context.Context, path string, post func(context.Context, []T) error) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := post(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}

func runSubmit(cmd *cobra.Command, args []string) error {
	kind, file := args[0], args[1]
	ctx := context.Background()

	var (
		count int
		err   error
	)
	switch kind {
	case "building-stock":
		count, err = submitFile(ctx, file, client.PostBuildingStock)
	case "nuts":
		count, err = submitFile(ctx, file, client.PostNutsRegions)
	case "type":
		count, err = submitFile(ctx, file, client.PostTypeInfo)
	case "household-count":
		count, err = submitFile(ctx, file, client.PostHouseholdCount)
	case "heating":
		count, err = submitFile(ctx, file, client.PostHeatingCommodity)
	case "cooling":
		count, err = submitFile(ctx, file, client.PostCoolingCommodity)
	case "water-heating":
		count, err = submitFile(ctx, file, client.PostWaterHeatingCommodity)
	case "cooking":
		count, err = submitFile(ctx, file, client.PostCookingCommodity)
	case "energy-consumption":
		count, err = submitFile(ctx, file, client.PostEnergyConsumption)
	default:
		return fmt.Errorf("unknown record kind: %s", kind)
	}
	if err != nil {
		return err
	}

	logger.Info().Str("kind", kind).Int("count", count).Msg("Records submitted")

	if refreshAfterSubmit {
		if err := client.RefreshBuildings(ctx); err != nil {
			return err
		}
		logger.Info().Msg("Buildings view refreshed")
	}

	return nil
}
