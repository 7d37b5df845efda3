package audio

import (
	"github.com/lixenwraith/deepecho/parameter"
)

// Config holds audio output settings
type Config struct {
	Enabled      bool    `mapstructure:"enabled"`
	SampleRate   int     `mapstructure:"sample_rate"`
	MasterVolume float64 `mapstructure:"master_volume"` // 0.0 to 1.0
}

// DefaultConfig returns audio on at the parameter sample rate and full volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		SampleRate:   parameter.AudioSampleRate,
		MasterVolume: 1.0,
	}
}

// Normalize clamps out-of-range values back to usable settings
func (c *Config) Normalize() {
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
	if c.SampleRate <= 0 {
		c.SampleRate = parameter.AudioSampleRate
	}
}
