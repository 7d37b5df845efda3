package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/deepecho/config"
	"github.com/lixenwraith/deepecho/gridmap"
	"github.com/lixenwraith/deepecho/maze"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "deepecho",
		Short: "Deep echo - navigate an unseen seafloor by sonar",
		Long: `deepecho simulates a ship moving through a tile-grid world that cannot
be seen. Geometry is perceived only through sonar pings that return
directional echoes, and a two-tone drone steers along the route.`,
		SilenceUsage:  true,
		Version:       version,
	}

	rootCmd.PersistentFlags().String("config", "", "Config file (toml, yaml or json)")

	rootCmd.AddCommand(
		newPlayCmd(),
		newMapgenCmd(),
		newProbeCmd(),
	)
	return rootCmd
}

// loadConfig resolves the --config flag into a Config, flags bound by the caller win
func loadConfig(cmd *cobra.Command, v *viper.Viper) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(v, path)
}

// mazeFlags registers the generator flags shared by play and mapgen
func mazeFlags(cmd *cobra.Command) {
	def := maze.DefaultConfig()
	cmd.Flags().Int("width", def.Width, "Maze width in tiles")
	cmd.Flags().Int("height", def.Height, "Maze height in tiles")
	cmd.Flags().Int64("seed", 0, "Generator seed (0 = random)")
	cmd.Flags().Float64("braiding", def.Braiding, "Chance a dead end becomes a loop (0-1)")
	cmd.Flags().Float64("interference", def.Interference, "Chance a dead end hides interference (0-1)")
	cmd.Flags().Int("scale", def.Scale, "Grid cells per maze tile side")
}

// generateMap builds a map from the maze flags
func generateMap(cmd *cobra.Command) (*gridmap.GridMap, error) {
	cfg := maze.DefaultConfig()
	cfg.Width, _ = cmd.Flags().GetInt("width")
	cfg.Height, _ = cmd.Flags().GetInt("height")
	cfg.Seed, _ = cmd.Flags().GetInt64("seed")
	cfg.Braiding, _ = cmd.Flags().GetFloat64("braiding")
	cfg.Interference, _ = cmd.Flags().GetFloat64("interference")
	cfg.Scale, _ = cmd.Flags().GetInt("scale")
	return maze.Build(cfg)
}
