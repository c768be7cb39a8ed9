package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primovera12/load-planner/app"
	"github.com/primovera12/load-planner/config"
)

var splitFlags struct {
	cargoPath string
	trailerID string
}

var splitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split a cargo set across multiple trailers of one type",
	RunE:  runSplit,
}

func init() {
	splitCmd.Flags().StringVar(&splitFlags.cargoPath, "cargo", "", "cargo manifest file (yaml or json)")
	splitCmd.Flags().StringVarP(&splitFlags.trailerID, "trailer", "t", "flatbed-48", "catalog trailer id")
	_ = splitCmd.MarkFlagRequired("cargo")
	rootCmd.AddCommand(splitCmd)
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	items, err := config.LoadCargo(splitFlags.cargoPath)
	if err != nil {
		return fmt.Errorf("load cargo: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)

	loads, estimate, warnings, err := svc.Split(items, splitFlags.trailerID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "estimated %d trailer(s) (by weight %d, by space %d); split opened %d\n",
		estimate.Count, estimate.ByWeight, estimate.BySpace, len(loads))
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
	for i, l := range loads {
		fmt.Fprintf(out, "trailer %d: %d unit(s), %.0f lb, %.0f sq ft\n",
			i+1, len(l.Items), l.TotalWeight, l.TotalFootprint)
		for _, u := range l.Items {
			fmt.Fprintf(out, "  - %s (%.0f lb)\n", u.UnitID, u.Weight)
		}
	}
	return nil
}
