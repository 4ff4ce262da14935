package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config is invalid: %v", err)
	}

	mv := cfg.Movement()
	if mv.TileSize != 16 || mv.PlayerSpeed != 160 {
		t.Errorf("Expected 16 unit tiles at 160 units/s, got %+v", mv)
	}
	if cfg.StepSeconds() != 1.0/60.0 {
		t.Errorf("Expected 1/60s steps, got %v", cfg.StepSeconds())
	}

	au := cfg.AudioSettings()
	if !au.Enabled || au.Volume != -1.5 {
		t.Errorf("Expected enabled audio at -1.5, got %+v", au)
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Window.Title != "Slidey" {
		t.Errorf("Expected default title, got %q", cfg.Window.Title)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slidey.yaml")
	data := `
player_speed: 12
timers:
  splash_seconds: 0.5
audio:
  enabled: false
log_level: debug
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.PlayerSpeed != 12 {
		t.Errorf("Expected player_speed 12, got %v", cfg.PlayerSpeed)
	}
	if cfg.Timers.SplashSeconds != 0.5 {
		t.Errorf("Expected splash 0.5s, got %v", cfg.Timers.SplashSeconds)
	}
	if cfg.Timers.LevelCardSeconds != 2 {
		t.Errorf("Expected untouched level card default, got %v", cfg.Timers.LevelCardSeconds)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Grid.Width != 12 || cfg.Grid.Height != 9 {
		t.Errorf("Expected default 12x9 grid, got %dx%d", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("Expected debug log level, got %q", cfg.LogLevel)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "window: [1, 2"},
		{"zero speed", "player_speed: 0"},
		{"negative grid", "grid:\n  width: -1"},
		{"zero tps", "window:\n  tps: 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
