package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1920, cfg.Window.Width)
	assert.Equal(t, 1080, cfg.Window.Height)
	assert.Equal(t, 5.0, cfg.Grid.PixelSize)
	assert.Equal(t, 0.25, cfg.Grid.LogicalStep)
	assert.Equal(t, 20.0, cfg.Grid.Scale())
	assert.Equal(t, 0.25, cfg.Zoom.Min)
	assert.Equal(t, 7.5, cfg.Zoom.Max)
	assert.Equal(t, 0.025, cfg.Zoom.Step)
	assert.Equal(t, 500.0, cfg.Fit.Margin)
	assert.Equal(t, 1000.0, cfg.Fit.GenerateMargin)
	assert.Equal(t, 1.1, cfg.Fit.Padding)
	assert.Equal(t, 5.0, cfg.Track.Width)
	assert.Equal(t, 1000.0, cfg.Contour.MinArea)
	assert.Equal(t, 0.005, cfg.Contour.Epsilon)
	assert.Equal(t, 4.0, cfg.Contour.Shrink)
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trackbuilder.yaml")
	content := `
logLevel: debug
window:
  width: 800
  height: 600
track:
  width: 3.5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 3.5, cfg.Track.Width)
	// untouched keys keep their defaults
	assert.Equal(t, 7.5, cfg.Zoom.Max)
}

func TestLoad_Invalid(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("zoom.min", 2.0)
	v.Set("zoom.max", 1.0)
	v.Set("grid.logicalStep", 0.0)

	_, err := Load(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid zoom range")
	assert.Contains(t, err.Error(), "grid.pixelSize")
}

func TestLoad_NegativeMargin(t *testing.T) {
	for _, key := range []string{"fit.margin", "fit.generateMargin"} {
		t.Run(key, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(key, -10.0)

			_, err := Load(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "must not be negative")
		})
	}

	v := viper.New()
	SetDefaults(v)
	v.Set("fit.margin", 0.0)
	_, err := Load(v)
	assert.NoError(t, err)
}
