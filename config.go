package drawlib

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Config holds file-based settings for a drawing session. It is usually
// loaded from a TOML file:
//
//	[curve]
//	a = 0.2
//	b = 0.05
//
//	[text]
//	default_font = "Sans"
//	[text.fonts]
//	Display = "~/fonts/display.ttf"
//
//	[resources]
//	base_dir = "~/maps/tiles"
//
//	[raster]
//	width = 800
//	height = 600
//	background = "#ffffff"
type Config struct {
	Curve     CurveConfig     `toml:"curve"`
	Text      TextConfig      `toml:"text"`
	Resources ResourcesConfig `toml:"resources"`
	Raster    RasterConfig    `toml:"raster"`
}

// CurveConfig holds the curve fitter constants.
type CurveConfig struct {
	A float64 `toml:"a"`
	B float64 `toml:"b"`
}

// Fitter returns the curve fitter described by the configuration.
func (c CurveConfig) Fitter() CurveFitter {
	return CurveFitter{A: c.A, B: c.B}
}

// TextConfig holds font settings. Fonts maps family names to TrueType or
// OpenType files that are registered in addition to the built-in families.
type TextConfig struct {
	DefaultFont string            `toml:"default_font"`
	Fonts       map[string]string `toml:"fonts"`
}

// ResourcesConfig holds image resource settings. Relative resource paths
// are resolved against BaseDir.
type ResourcesConfig struct {
	BaseDir string `toml:"base_dir"`
}

// RasterConfig holds the software backend surface settings.
type RasterConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Curve:  CurveConfig{A: DefaultCurveFitter.A, B: DefaultCurveFitter.B},
		Text:   TextConfig{DefaultFont: "Sans"},
		Raster: RasterConfig{Width: 512, Height: 512},
	}
}

// ErrInvalidConfig is returned by Validate and LoadConfig for out of range
// settings.
var ErrInvalidConfig = errors.New("drawlib: invalid config")

// LoadConfig reads a TOML configuration file. Fields missing from the file
// keep their DefaultConfig values; unknown keys are rejected. A leading "~"
// in path and in the file paths it contains is expanded to the home
// directory.
func LoadConfig(path string) (Config, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("config: read file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes TOML configuration data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.expandPaths(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Curve.A <= 0 || c.Curve.A >= 0.5 {
		return fmt.Errorf("%w: curve.a = %g, want 0 < a < 0.5", ErrInvalidConfig, c.Curve.A)
	}
	if c.Curve.B < 0 || c.Curve.B >= c.Curve.A {
		return fmt.Errorf("%w: curve.b = %g, want 0 <= b < a", ErrInvalidConfig, c.Curve.B)
	}
	if c.Raster.Width <= 0 || c.Raster.Height <= 0 {
		return fmt.Errorf("%w: raster size %dx%d", ErrInvalidConfig, c.Raster.Width, c.Raster.Height)
	}
	return nil
}

func (c *Config) expandPaths() error {
	var err error
	if c.Resources.BaseDir, err = homedir.Expand(c.Resources.BaseDir); err != nil {
		return fmt.Errorf("config: resources.base_dir: %w", err)
	}
	for name, p := range c.Text.Fonts {
		if c.Text.Fonts[name], err = homedir.Expand(p); err != nil {
			return fmt.Errorf("config: text.fonts.%s: %w", name, err)
		}
	}
	return nil
}
