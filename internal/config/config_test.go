package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}

	if cfg.Screen.Width != 800 || cfg.Screen.Height != 600 {
		t.Errorf("Expected 800x600 screen, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Timing.MaxDT != 0.1 {
		t.Errorf("Expected max_dt 0.1, got %v", cfg.Timing.MaxDT)
	}
	if cfg.Player.MaxSpeed != 7 || cfg.Player.Acceleration != 35 || cfg.Player.Friction != 90 {
		t.Errorf("Expected player physics 7/35/90, got %+v", cfg.Player)
	}
	if cfg.Fog.Period != 10 {
		t.Errorf("Expected fog period 10, got %v", cfg.Fog.Period)
	}
	if len(cfg.Pickups) != 2 || cfg.Pickups[0].Item != "berries" {
		t.Errorf("Expected two default berry pickups, got %+v", cfg.Pickups)
	}
	if cfg.World.LevelsDir != "levels" {
		t.Errorf("Expected levels dir 'levels', got %q", cfg.World.LevelsDir)
	}
	if len(cfg.Enemies) != 1 {
		t.Fatalf("Expected one default enemy, got %d", len(cfg.Enemies))
	}
	if cfg.Derived.TileSize != 32 {
		t.Errorf("Expected derived tile size 32, got %v", cfg.Derived.TileSize)
	}
	if cfg.Derived.LogLevel != slog.LevelInfo {
		t.Errorf("Expected info log level, got %v", cfg.Derived.LogLevel)
	}
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frontier.yaml")
	data := []byte(`
world:
  seed: 99
  tile_size: 16
player:
  max_speed: 3.5
enemies: []
debug:
  log_level: debug
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load overlay: %v", err)
	}
	if cfg.World.Seed != 99 || cfg.World.TileSize != 16 {
		t.Errorf("Expected seed 99 and tile size 16, got %d and %d", cfg.World.Seed, cfg.World.TileSize)
	}
	if cfg.Player.MaxSpeed != 3.5 {
		t.Errorf("Expected max_speed 3.5, got %v", cfg.Player.MaxSpeed)
	}
	// Untouched keys keep their defaults.
	if cfg.Player.Acceleration != 35 || cfg.World.Width != 64 {
		t.Errorf("Expected defaults preserved, got accel %v width %d", cfg.Player.Acceleration, cfg.World.Width)
	}
	if len(cfg.Enemies) != 0 {
		t.Errorf("Expected enemies cleared, got %d", len(cfg.Enemies))
	}
	if cfg.Derived.TileSize != 16 || cfg.Derived.LogLevel != slog.LevelDebug {
		t.Errorf("Expected derived values recomputed, got %+v", cfg.Derived)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tile size", func(c *Config) { c.World.TileSize = 0 }},
		{"negative max_dt", func(c *Config) { c.Timing.MaxDT = -1 }},
		{"zero max speed", func(c *Config) { c.Player.MaxSpeed = 0 }},
		{"fog alpha above one", func(c *Config) { c.Fog.NightAlpha = 1.5 }},
		{"empty inventory", func(c *Config) { c.Inventory.Cols = 0 }},
		{"dead enemy", func(c *Config) { c.Enemies = []EnemyConfig{{Health: 0}} }},
		{"nameless pickup", func(c *Config) { c.Pickups = []PickupConfig{{X: 1, Y: 1, Count: 2}} }},
		{"unknown log level", func(c *Config) { c.Debug.LogLevel = "chatty" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.World.Seed = 1234
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if back.World.Seed != 1234 {
		t.Errorf("Expected seed 1234 after reload, got %d", back.World.Seed)
	}
}

func TestRefreshAfterOverride(t *testing.T) {
	cfg := Default()
	cfg.World.TileSize = 16
	cfg.Debug.LogLevel = "debug"
	if err := cfg.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if cfg.Derived.TileSize != 16 {
		t.Errorf("Expected derived tile size 16, got %v", cfg.Derived.TileSize)
	}
	if cfg.Derived.LogLevel != slog.LevelDebug {
		t.Errorf("Expected debug level, got %v", cfg.Derived.LogLevel)
	}

	cfg.Timing.MaxDT = 0
	if err := cfg.Refresh(); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
	if cfg.Assets.SpriteDir != "" {
		t.Errorf("Expected generated art by default, got %q", cfg.Assets.SpriteDir)
	}
}
