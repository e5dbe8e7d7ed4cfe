package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// regionsCmd represents the regions command
var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Browse the NUTS region hierarchy",
}

var regionsShowCmd = &cobra.Command{
	Use:   "show CODE",
	Short: "Show one NUTS region",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := client.GetNutsRegion(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s  %s (level %d", region.Code, region.Name, region.Level)
		if region.Parent != "" {
			fmt.Printf(", parent %s", region.Parent)
		}
		fmt.Println(")")
		return nil
	},
}

var regionsChildrenCmd = &cobra.Command{
	Use:   "children [PARENT]",
	Short: "List the child codes of a NUTS region",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parent := ""
		if len(args) == 1 {
			parent = args[0]
		}
		codes, err := client.GetChildrenNutsCodes(context.Background(), parent)
		if err != nil {
			return err
		}
		for _, code := range codes {
			fmt.Println(code)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
	regionsCmd.AddCommand(regionsShowCmd)
	regionsCmd.AddCommand(regionsChildrenCmd)
}
