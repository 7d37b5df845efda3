// Package config loads runtime settings from defaults, an optional file and the environment
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/lixenwraith/deepecho/audio"
	"github.com/lixenwraith/deepecho/input"
	"github.com/lixenwraith/deepecho/logging"
	"github.com/lixenwraith/deepecho/ship"
	"github.com/lixenwraith/deepecho/sonar"
)

// EnvPrefix namespaces environment overrides, e.g. DEEPECHO_SHIP_DRAG
const EnvPrefix = "DEEPECHO"

// ErrInvalid is returned when a loaded value cannot drive the simulation
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration
type Config struct {
	Ship  ship.Tuning    `mapstructure:"ship"`
	Sonar sonar.Params   `mapstructure:"sonar"`
	Audio audio.Config   `mapstructure:"audio"`
	Input input.Config   `mapstructure:"input"`
	Log   logging.Config `mapstructure:"log"`
}

// SetDefaults registers every key with its default so env overrides and unmarshal see it
func SetDefaults(v *viper.Viper) {
	t := ship.DefaultTuning()
	v.SetDefault("ship.tick_time", t.TickTime)
	v.SetDefault("ship.rotation_rate", t.RotationRate)
	v.SetDefault("ship.acceleration", t.Acceleration)
	v.SetDefault("ship.drag", t.Drag)
	v.SetDefault("ship.restitution", t.Restitution)
	v.SetDefault("ship.rebound_acceleration", t.ReboundAcceleration)

	s := sonar.DefaultParams()
	v.SetDefault("sonar.ray_count", s.RayCount)
	v.SetDefault("sonar.speed_of_sound", s.SpeedOfSound)
	v.SetDefault("sonar.attenuation_per_cell", s.AttenuationPerCell)

	a := audio.DefaultConfig()
	v.SetDefault("audio.enabled", a.Enabled)
	v.SetDefault("audio.sample_rate", a.SampleRate)
	v.SetDefault("audio.master_volume", a.MasterVolume)

	in := input.DefaultConfig()
	v.SetDefault("input.hold_ticks", in.HoldTicks)

	l := logging.DefaultConfig()
	v.SetDefault("log.debug", l.Debug)
	v.SetDefault("log.dir", l.Dir)
	v.SetDefault("log.level", l.Level)
	v.SetDefault("log.max_size", l.MaxSize)
}

// Load resolves configuration into v and decodes it.
// path may be empty; otherwise its extension (toml, yaml, json) selects the parser
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Audio.Normalize()
	return &cfg, nil
}

// Default returns the configuration with no file and no environment
func Default() *Config {
	return &Config{
		Ship:  ship.DefaultTuning(),
		Sonar: sonar.DefaultParams(),
		Audio: *audio.DefaultConfig(),
		Input: input.DefaultConfig(),
		Log:   logging.DefaultConfig(),
	}
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Ship.TickTime <= 0:
		return fmt.Errorf("%w: ship.tick_time must be positive, got %g", ErrInvalid, c.Ship.TickTime)
	case c.Ship.Drag < 0:
		return fmt.Errorf("%w: ship.drag must not be negative, got %g", ErrInvalid, c.Ship.Drag)
	case c.Sonar.RayCount <= 0:
		return fmt.Errorf("%w: sonar.ray_count must be positive, got %d", ErrInvalid, c.Sonar.RayCount)
	case c.Sonar.SpeedOfSound <= 0:
		return fmt.Errorf("%w: sonar.speed_of_sound must be positive, got %g", ErrInvalid, c.Sonar.SpeedOfSound)
	case c.Sonar.AttenuationPerCell < 0:
		return fmt.Errorf("%w: sonar.attenuation_per_cell must not be negative, got %g", ErrInvalid, c.Sonar.AttenuationPerCell)
	}
	return nil
}
