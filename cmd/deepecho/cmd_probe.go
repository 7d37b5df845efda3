package main

import (
	"encoding/json"
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/deepecho/gridmap"
	"github.com/lixenwraith/deepecho/ship"
)

// probePong is the JSON shape of one echo
type probePong struct {
	Bearing     float64    `json:"bearingDeg"`
	Delay       float64    `json:"delayMs"`
	Attenuation float64    `json:"attenuationDb"`
	HitPoint    [2]float64 `json:"hitPoint"`
}

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Print one sonar ping from the map start",
		Long: `Print one sonar ping from the map start pose.

Useful when authoring maps: every ray's relative bearing, echo delay,
attenuation and hit point.

Examples:
  deepecho probe --map level.json
  deepecho probe --map level.yaml --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("map")
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd, viper.New())
			if err != nil {
				return err
			}
			m, err := gridmap.LoadFile(path)
			if err != nil {
				return err
			}

			s := ship.New(m, cfg.Ship)
			s.SetSonar(cfg.Sonar)
			pongs := s.Ping()

			out := make([]probePong, len(pongs))
			for i, p := range pongs {
				out[i] = probePong{
					Bearing:     p.RelativeBearing * 180 / math.Pi,
					Delay:       p.Delay * 1000,
					Attenuation: p.Attenuation,
					HitPoint:    [2]float64{p.HitPoint.X, p.HitPoint.Y},
				}
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "RAY\tBEARING\tDELAY\tATTEN\tHIT")
			for i, p := range out {
				fmt.Fprintf(w, "%d\t%.1f°\t%.1fms\t%.1fdB\t(%.2f, %.2f)\n",
					i, p.Bearing, p.Delay, p.Attenuation, p.HitPoint[0], p.HitPoint[1])
			}
			return w.Flush()
		},
	}

	cmd.Flags().String("map", "", "Map file (json or yaml)")
	cmd.Flags().Bool("json", false, "Output as JSON")
	_ = cmd.MarkFlagRequired("map")
	return cmd
}
