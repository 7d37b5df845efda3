package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/deepecho/audio"
	"github.com/lixenwraith/deepecho/gridmap"
	"github.com/lixenwraith/deepecho/input"
	"github.com/lixenwraith/deepecho/logging"
	"github.com/lixenwraith/deepecho/navigation"
	"github.com/lixenwraith/deepecho/session"
	"github.com/lixenwraith/deepecho/ship"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a map in the terminal",
		Long: `Play a map in the terminal.

Keys:
  w / Up      thrust          s / Down    reverse
  a / Left    rotate left     d / Right   rotate right
  Space       ping            f           toggle steering drone
  c           cycle route     q / Esc     quit

Examples:
  deepecho play --map level.json
  deepecho play --generate --width 41 --height 21 --seed 7
  deepecho play --map level.yaml --debug --mute`,
		RunE: runPlay,
	}

	cmd.Flags().String("map", "", "Map file (json or yaml)")
	cmd.Flags().Bool("generate", false, "Play a generated maze instead of a map file")
	cmd.Flags().Bool("debug", false, "Write logs to logs/deepecho.log")
	cmd.Flags().Bool("mute", false, "Disable audio")
	cmd.Flags().Bool("no-render", false, "Run without the terminal view (audio only)")
	mazeFlags(cmd)
	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := v.BindPFlag("log.debug", cmd.Flags().Lookup("debug")); err != nil {
		return err
	}
	if mute, _ := cmd.Flags().GetBool("mute"); mute {
		v.Set("audio.enabled", false)
	}

	cfg, err := loadConfig(cmd, v)
	if err != nil {
		return err
	}

	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	m, err := resolveMap(cmd)
	if err != nil {
		logger.Error().Err(err).Msg("map load failed")
		return err
	}
	if len(m.Routes) == 0 {
		if route, ok := navigation.PlanRoute(m); ok {
			m.Routes = append(m.Routes, route)
			logger.Info().Int("waypoints", len(route)).Msg("planned route to finish")
		}
	}
	logger.Info().
		Int("width", m.Width).
		Int("height", m.Height).
		Int("routes", len(m.Routes)).
		Str("fingerprint", fmt.Sprintf("%016x", m.Fingerprint())).
		Msg("map loaded")

	s := ship.New(m, cfg.Ship)
	s.SetSonar(cfg.Sonar)

	ctl, err := input.NewController(cfg.Input)
	if err != nil {
		return err
	}

	// Audio failure is not fatal, the game continues muted
	sound := audio.NewSoundManager(&cfg.Audio)
	if err := sound.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing without sound")
	} else {
		defer sound.Cleanup()
	}

	opts := session.Options{Sound: sound, Logger: logger}

	noRender, _ := cmd.Flags().GetBool("no-render")
	if !noRender {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		// Restore the terminal even if the loop panics
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				panic(r)
			}
			screen.Fini()
		}()
		opts.Screen = screen
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = session.New(s, ctl, cfg.Ship, opts).Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// resolveMap loads --map or generates from the maze flags
func resolveMap(cmd *cobra.Command) (*gridmap.GridMap, error) {
	if generate, _ := cmd.Flags().GetBool("generate"); generate {
		return generateMap(cmd)
	}
	path, _ := cmd.Flags().GetString("map")
	if path == "" {
		return nil, errors.New("either --map or --generate is required")
	}
	return gridmap.LoadFile(path)
}
