// Package config provides the game's tunable settings.
// Settings are loaded from a YAML file layered over built-in defaults, so a
// config file only needs the keys it wants to change.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/slidey/internal/audio"
	"chosenoffset.com/slidey/internal/movement"
	"chosenoffset.com/slidey/internal/world/tilemap"
)

// Config holds all game settings
type Config struct {
	Window WindowConfig `yaml:"window"`
	Grid   GridConfig   `yaml:"grid"`

	// Player speed in tiles per second
	PlayerSpeed float64 `yaml:"player_speed"`

	Timers TimerConfig `yaml:"timers"`
	Audio  AudioConfig `yaml:"audio"`

	// Directory of level*.txt files; empty uses the built-in levels
	LevelsDir string `yaml:"levels_dir"`

	LogLevel string `yaml:"log_level"` // zerolog level name
}

// WindowConfig defines the window and tick rate
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // Simulation steps per second
}

// GridConfig defines level dimensions
type GridConfig struct {
	Width    int     `yaml:"width"`     // Cells per row
	Height   int     `yaml:"height"`    // Rows per level
	TileSize float64 `yaml:"tile_size"` // World units per cell
	Scale    float64 `yaml:"scale"`     // Screen pixels per world unit
}

// TimerConfig defines screen durations
type TimerConfig struct {
	SplashSeconds    float64 `yaml:"splash_seconds"`
	LevelCardSeconds float64 `yaml:"level_card_seconds"`
}

// AudioConfig defines sound settings
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Base-2 exponent, 0 is unchanged
}

// DefaultConfig returns the standard game settings
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "Slidey",
			TPS:    60,
		},
		Grid: GridConfig{
			Width:    tilemap.DefaultWidth,
			Height:   tilemap.DefaultHeight,
			TileSize: 16,
			Scale:    3,
		},
		PlayerSpeed: 10,
		Timers: TimerConfig{
			SplashSeconds:    3,
			LevelCardSeconds: 2,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  -1.5,
		},
		LogLevel: "info",
	}
}

// LoadConfig loads settings from a YAML file. A missing file yields defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size: %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps: %d", c.Window.TPS)
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("invalid grid dimensions: %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %v", c.Grid.TileSize)
	}
	if c.Grid.Scale <= 0 {
		return fmt.Errorf("invalid scale: %v", c.Grid.Scale)
	}
	if c.PlayerSpeed <= 0 {
		return fmt.Errorf("invalid player speed: %v", c.PlayerSpeed)
	}
	if c.Timers.SplashSeconds < 0 || c.Timers.LevelCardSeconds < 0 {
		return fmt.Errorf("timer durations must not be negative")
	}
	return nil
}

// Movement converts the settings into movement engine tuning
func (c *Config) Movement() movement.Config {
	return movement.Config{
		TileSize:    c.Grid.TileSize,
		PlayerSpeed: c.PlayerSpeed * c.Grid.TileSize,
	}
}

// StepSeconds returns the duration of one simulation step
func (c *Config) StepSeconds() float64 {
	return 1.0 / float64(c.Window.TPS)
}

// AudioSettings converts the settings into audio engine options
func (c *Config) AudioSettings() audio.Config {
	return audio.Config{
		Enabled: c.Audio.Enabled,
		Volume:  c.Audio.Volume,
	}
}
