package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/primovera12/load-planner/config"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "loadplanner",
	Short: "Load planning and trailer optimization",
	Long: `loadplanner ranks trailers against cargo, packs cargo onto a trailer
deck, splits over-capacity cargo sets across trailers, and reports the
resulting axle weight distribution.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadConfig reads the configured file, or the defaults when none is given.
func loadConfig() (*config.Config, error) {
	if cfgPath == "" {
		return config.Default(), nil
	}
	if _, err := os.Stat(cfgPath); err != nil {
		return nil, err
	}
	return config.Load(cfgPath)
}
