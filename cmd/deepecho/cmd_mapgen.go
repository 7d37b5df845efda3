package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/deepecho/gridmap"
)

func newMapgenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapgen",
		Short: "Generate a maze map file",
		Long: `Generate a maze map file.

Walls become terrain, the far corner becomes the finish and the
solution path becomes the route. The format follows the extension.

Examples:
  deepecho mapgen --out level.json
  deepecho mapgen --width 31 --height 21 --seed 7 --braiding 0.3 --out level.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")

			m, err := generateMap(cmd)
			if err != nil {
				return err
			}
			if err := gridmap.SaveFile(out, m); err != nil {
				return fmt.Errorf("failed to write map: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %dx%d, %d waypoints, fingerprint %016x\n",
				out, m.Width, m.Height, len(m.Routes[0]), m.Fingerprint())
			return nil
		},
	}

	cmd.Flags().String("out", "", "Output file (.json, .yaml or .yml)")
	_ = cmd.MarkFlagRequired("out")
	mazeFlags(cmd)
	return cmd
}
