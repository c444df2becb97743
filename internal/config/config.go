// Package config holds the track builder settings backed by viper.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// WindowConfig is the editor window size in pixels.
type WindowConfig struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// GridConfig describes the background grid.
// PixelSize is the base grid cell in logical units, LogicalStep the snap step.
type GridConfig struct {
	PixelSize   float64 `mapstructure:"pixelSize"`
	LogicalStep float64 `mapstructure:"logicalStep"`
}

// Scale returns the logical-units-per-meter factor used when persisting a track.
func (g GridConfig) Scale() float64 {
	return g.PixelSize / g.LogicalStep
}

// ZoomConfig bounds the view zoom factor.
type ZoomConfig struct {
	Min  float64 `mapstructure:"min"`
	Max  float64 `mapstructure:"max"`
	Step float64 `mapstructure:"step"`
}

// FitConfig controls fit-to-bounds framing.
type FitConfig struct {
	Margin         float64 `mapstructure:"margin"`
	GenerateMargin float64 `mapstructure:"generateMargin"`
	Padding        float64 `mapstructure:"padding"`
}

// TrackConfig holds defaults for generated tracks.
type TrackConfig struct {
	Width float64 `mapstructure:"width"` // meters
}

// ContourConfig tunes the image contour extractor.
type ContourConfig struct {
	MinArea float64 `mapstructure:"minArea"`
	Epsilon float64 `mapstructure:"epsilon"`
	Shrink  float64 `mapstructure:"shrink"`
}

// Config is the resolved application configuration.
type Config struct {
	LogLevel string        `mapstructure:"logLevel"`
	Window   WindowConfig  `mapstructure:"window"`
	Grid     GridConfig    `mapstructure:"grid"`
	Zoom     ZoomConfig    `mapstructure:"zoom"`
	Fit      FitConfig     `mapstructure:"fit"`
	Track    TrackConfig   `mapstructure:"track"`
	Contour  ContourConfig `mapstructure:"contour"`
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("window.width", 1920)
	v.SetDefault("window.height", 1080)

	v.SetDefault("grid.pixelSize", 5.0)
	v.SetDefault("grid.logicalStep", 0.25)

	v.SetDefault("zoom.min", 0.25)
	v.SetDefault("zoom.max", 7.5)
	v.SetDefault("zoom.step", 0.025)

	v.SetDefault("fit.margin", 500.0)
	v.SetDefault("fit.generateMargin", 1000.0)
	v.SetDefault("fit.padding", 1.1)

	v.SetDefault("track.width", 5.0)

	v.SetDefault("contour.minArea", 1000.0)
	v.SetDefault("contour.epsilon", 0.005)
	v.SetDefault("contour.shrink", 4.0)
}

// Default returns the configuration built from defaults only.
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	cfg, _ := Load(v)
	return cfg
}

// Load resolves the configuration from v and validates it.
// Defaults must already be registered.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that the geometry code divides by.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Grid.PixelSize <= 0 || c.Grid.LogicalStep <= 0 {
		errs = append(errs, errors.New("grid.pixelSize and grid.logicalStep must be positive"))
	}
	if c.Zoom.Min <= 0 || c.Zoom.Max < c.Zoom.Min {
		errs = append(errs, fmt.Errorf("invalid zoom range [%g, %g]", c.Zoom.Min, c.Zoom.Max))
	}
	if c.Zoom.Step <= 0 {
		errs = append(errs, errors.New("zoom.step must be positive"))
	}
	if c.Fit.Margin < 0 || c.Fit.GenerateMargin < 0 {
		errs = append(errs, errors.New("fit.margin and fit.generateMargin must not be negative"))
	}
	if c.Fit.Padding < 1 {
		errs = append(errs, errors.New("fit.padding must be at least 1"))
	}
	if c.Track.Width <= 0 {
		errs = append(errs, errors.New("track.width must be positive"))
	}
	if c.Contour.Shrink <= 0 {
		errs = append(errs, errors.New("contour.shrink must be positive"))
	}
	return errors.Join(errs...)
}
