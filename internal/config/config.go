// Package config handles generator configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/cavemesh/internal/engine/marching"
)

// ErrInvalidConfiguration is returned by Validate.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Config holds all generator settings.
type Config struct {
	Map     MapConfig     `yaml:"map"`
	Mesh    MeshConfig    `yaml:"mesh"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// MapConfig holds cave grid settings.
type MapConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	FillPercent   int    `yaml:"fill_percent"` // Nominally 0-100, not clamped
	Seed          string `yaml:"seed"`
	UseRandomSeed bool   `yaml:"use_random_seed"`
}

// MeshConfig holds mesh extraction settings.
type MeshConfig struct {
	SquareSize float32 `yaml:"square_size"`
	WallHeight float32 `yaml:"wall_height"`
}

// OutputConfig holds export settings.
type OutputConfig struct {
	Dir           string `yaml:"dir"`
	Name          string `yaml:"name"`
	WriteMap      bool   `yaml:"write_map"`
	WriteManifest bool   `yaml:"write_manifest"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Map: MapConfig{
			Width:         80,
			Height:        60,
			FillPercent:   47,
			Seed:          "cave",
			UseRandomSeed: false,
		},
		Mesh: MeshConfig{
			SquareSize: 1,
			WallHeight: marching.DefaultWallHeight,
		},
		Output: OutputConfig{
			Dir:           "out",
			Name:          "cave",
			WriteMap:      true,
			WriteManifest: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate rejects settings the generator cannot run with.
func (c *Config) Validate() error {
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		return fmt.Errorf("%w: map size %dx%d must be positive", ErrInvalidConfiguration, c.Map.Width, c.Map.Height)
	}
	if c.Mesh.SquareSize <= 0 {
		return fmt.Errorf("%w: square size %g must be positive", ErrInvalidConfiguration, c.Mesh.SquareSize)
	}
	if c.Mesh.WallHeight < 0 {
		return fmt.Errorf("%w: wall height %g must not be negative", ErrInvalidConfiguration, c.Mesh.WallHeight)
	}
	return nil
}
