package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/deepecho/parameter"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, parameter.TickTime, cfg.Ship.TickTime)
	assert.Equal(t, parameter.SonarRayCount, cfg.Sonar.RayCount)
	assert.Equal(t, parameter.InputHoldTicks, cfg.Input.HoldTicks)
	assert.False(t, cfg.Log.Debug)
}

func TestLoad_TOMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deepecho.toml")
	data := `
[ship]
drag = 0.5

[sonar]
ray_count = 16

[audio]
master_volume = 4.0

[input.bindings]
k = "thrust"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Ship.Drag)
	assert.Equal(t, parameter.ShipAcceleration, cfg.Ship.Acceleration)
	assert.Equal(t, 16, cfg.Sonar.RayCount)
	assert.Equal(t, 1.0, cfg.Audio.MasterVolume, "volume is clamped")
	assert.Equal(t, "thrust", cfg.Input.Bindings["k"])
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deepecho.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  debug: true\n  level: warn\n"), 0o644))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DEEPECHO_SHIP_DRAG", "0")
	t.Setenv("DEEPECHO_AUDIO_ENABLED", "false")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Ship.Drag)
	assert.False(t, cfg.Audio.Enabled)
}

func TestLoad_FlagOverride(t *testing.T) {
	v := viper.New()
	v.Set("log.debug", true)

	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.True(t, cfg.Log.Debug)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(viper.New(), "/nonexistent/deepecho.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"tick":  "[ship]\ntick_time = 0\n",
		"drag":  "[ship]\ndrag = -1\n",
		"rays":  "[sonar]\nray_count = 0\n",
		"sound": "[sonar]\nspeed_of_sound = -5\n",
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.toml")
			require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

			_, err := Load(viper.New(), path)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}
