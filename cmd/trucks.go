package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/primovera12/load-planner/app"
	"github.com/primovera12/load-planner/core/model"
)

var trucksFlags struct {
	length float64
	width  float64
	height float64
	weight float64
	desc   string
}

var trucksCmd = &cobra.Command{
	Use:   "trucks",
	Short: "Rank catalog trailers for a cargo envelope",
	RunE:  runTrucks,
}

func init() {
	trucksCmd.Flags().Float64VarP(&trucksFlags.length, "length", "l", 0, "cargo length in feet")
	trucksCmd.Flags().Float64VarP(&trucksFlags.width, "width", "w", 0, "cargo width in feet")
	trucksCmd.Flags().Float64VarP(&trucksFlags.height, "height", "H", 0, "cargo height in feet")
	trucksCmd.Flags().Float64VarP(&trucksFlags.weight, "weight", "W", 0, "cargo weight in pounds")
	trucksCmd.Flags().StringVarP(&trucksFlags.desc, "desc", "d", "", "cargo description")
	rootCmd.AddCommand(trucksCmd)
}

func runTrucks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer closeService(cmd, svc)

	cargo := model.CargoEnvelope{
		Description: trucksFlags.desc,
		Length:      trucksFlags.length,
		Width:       trucksFlags.width,
		Height:      trucksFlags.height,
		Weight:      trucksFlags.weight,
	}

	out := cmd.OutOrStdout()
	for _, rec := range svc.Recommend(cargo) {
		marker := " "
		if rec.IsBestChoice {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-16s score %3d  %s\n", marker, rec.Trailer.ID, rec.Score, rec.Reason)
		for _, p := range rec.Permits {
			fmt.Fprintf(out, "    permit %s (~$%.0f): %s\n", p.Type, p.EstimatedCost, p.Reason)
		}
		if len(rec.Warnings) > 0 {
			fmt.Fprintf(out, "    warnings: %s\n", strings.Join(rec.Warnings, "; "))
		}
	}
	return nil
}

func closeService(cmd *cobra.Command, svc *app.Service) {
	if err := svc.Close(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "service close: %v\n", err)
	}
}
