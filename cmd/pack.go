package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/primovera12/load-planner/app"
	"github.com/primovera12/load-planner/config"
	"github.com/primovera12/load-planner/core/axle"
)

var packFlags struct {
	cargoPath string
	trailerID string
}

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Pack a cargo manifest onto a trailer deck",
	RunE:  runPack,
}

func init() {
	packCmd.Flags().StringVar(&packFlags.cargoPath, "cargo", "", "cargo manifest file (yaml or json)")
	packCmd.Flags().StringVarP(&packFlags.trailerID, "trailer", "t", "flatbed-48", "catalog trailer id")
	_ = packCmd.MarkFlagRequired("cargo")
	rootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	items, err := config.LoadCargo(packFlags.cargoPath)
	if err != nil {
		return fmt.Errorf("load cargo: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)

	result, dist, err := svc.Pack(items, packFlags.trailerID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "placed %d of %d units (%.1f%% weight, %.1f%% deck)\n",
		result.Stats.ItemsPlaced, result.Stats.ItemsRequested,
		result.Stats.WeightUtilizationPct, result.Stats.SpaceUtilizationPct)
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}

	steps, err := svc.Instructions(result, packFlags.trailerID)
	if err != nil {
		return err
	}
	if len(steps) > 0 {
		fmt.Fprintln(out, "\nloading sequence:")
		for _, s := range steps {
			fmt.Fprintln(out, s)
		}
	}

	fmt.Fprintln(out, "\naxle distribution:")
	printAxle(cmd, dist.Steer)
	printAxle(cmd, dist.Drive)
	printAxle(cmd, dist.Trailer)
	fmt.Fprintf(out, "  gross   %8.0f / %.0f lb (%.1f%%, %s)  balance %.2f\n",
		dist.GrossWeight, dist.GrossLimit, dist.GrossPercent, dist.GrossStatus, dist.BalanceRatio)
	return nil
}

func printAxle(cmd *cobra.Command, aw axle.AxleWeight) {
	fmt.Fprintf(cmd.OutOrStdout(), "  %-7s %8.0f / %.0f lb (%.1f%%, %s)\n",
		aw.Name, aw.Weight, aw.Limit, aw.Percent, aw.Status)
}
