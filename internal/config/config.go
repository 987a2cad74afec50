// Package config provides configuration loading for the game.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all game configuration.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Timing    TimingConfig    `yaml:"timing"`
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Enemies   []EnemyConfig   `yaml:"enemies"`
	Pickups   []PickupConfig  `yaml:"pickups"`
	Swipe     SwipeConfig     `yaml:"swipe"`
	Fog       FogConfig       `yaml:"fog"`
	Inventory InventoryConfig `yaml:"inventory"`
	Debug     DebugConfig     `yaml:"debug"`
	Save      SaveConfig      `yaml:"save"`
	Assets    AssetsConfig    `yaml:"assets"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

// TimingConfig holds frame timing limits.
type TimingConfig struct {
	MaxDT float64 `yaml:"max_dt"` // Frame delta clamp in seconds
}

// WorldConfig holds map generation and scenery settings.
type WorldConfig struct {
	Seed         int64   `yaml:"seed"`
	Width        int     `yaml:"width"`     // Generated map width in tiles
	Height       int     `yaml:"height"`    // Generated map height in tiles
	TileSize     int     `yaml:"tile_size"` // Pixels per tile
	NoiseScale   float64 `yaml:"noise_scale"`
	Level        string  `yaml:"level"`      // JSON level file; empty = generate
	LevelsDir    string  `yaml:"levels_dir"` // Levels offered in the options menu
	Statues      int     `yaml:"statues"`
	StatueSpread int     `yaml:"statue_spread"` // Statues land on integer tiles in [0, spread]
}

// PlayerConfig holds player spawn and movement tuning (tiles/s, tiles/s²).
type PlayerConfig struct {
	SpawnX       float64 `yaml:"spawn_x"`
	SpawnY       float64 `yaml:"spawn_y"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"`
}

// EnemyConfig places one chasing enemy.
type EnemyConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Health int     `yaml:"health"`
	Speed  float64 `yaml:"speed"`
	Sight  float64 `yaml:"sight"`
}

// PickupConfig places an item pickup on a generated map.
type PickupConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Item  string  `yaml:"item"`
	Count int     `yaml:"count"`
}

// SwipeConfig tunes the player's spinning blade.
type SwipeConfig struct {
	Enabled  bool    `yaml:"enabled"`
	SpinRate float64 `yaml:"spin_rate"` // Degrees per second
	Damage   int     `yaml:"damage"`
	Cooldown float64 `yaml:"cooldown"` // Seconds between hits on one target
	Width    float64 `yaml:"width"`    // Tiles
	Length   float64 `yaml:"length"`   // Tiles
}

// FogConfig holds the day/night cycle.
type FogConfig struct {
	Period     float64 `yaml:"period"`      // Seconds between day and night
	NightAlpha float64 `yaml:"night_alpha"` // Overlay opacity at night
	StartDay   bool    `yaml:"start_day"`
}

// InventoryConfig sizes the inventory grid.
type InventoryConfig struct {
	Rows     int         `yaml:"rows"`
	Cols     int         `yaml:"cols"`
	MaxStack int         `yaml:"max_stack"`
	Starting []ItemCount `yaml:"starting"`
}

// ItemCount is an item name and quantity.
type ItemCount struct {
	Item  string `yaml:"item"`
	Count int    `yaml:"count"`
}

// DebugConfig holds diagnostics switches.
type DebugConfig struct {
	Hitbox   bool   `yaml:"hitbox"`
	LogLevel string `yaml:"log_level"`
}

// SaveConfig holds save file settings.
type SaveConfig struct {
	Path string `yaml:"path"`
}

// AssetsConfig points at optional art on disk.
type AssetsConfig struct {
	SpriteDir string `yaml:"sprite_dir"` // PNGs named as cmd/gensprites writes them; empty = generated art
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TileSize float64    // World.TileSize as float64
	LogLevel slog.Level // Parsed Debug.LogLevel
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := Merge(cfg, data); err != nil {
			return nil, err
		}
	}

	if err := cfg.Refresh(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Refresh validates the config and recomputes derived values. Call it after
// changing fields in code, such as command-line overrides.
func (c *Config) Refresh() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.computeDerived()
	return nil
}

// Merge overlays YAML data onto cfg. Only fields present in data change.
func Merge(cfg *Config, data []byte) error {
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// Validate rejects configurations the game cannot run with.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Screen.TPS > 0, "screen.tps %d", c.Screen.TPS)
	check(c.Timing.MaxDT > 0, "timing.max_dt %v must be positive", c.Timing.MaxDT)
	check(c.World.TileSize > 0, "world.tile_size %d must be positive", c.World.TileSize)
	check(c.World.Width > 0 && c.World.Height > 0, "world size %dx%d", c.World.Width, c.World.Height)
	check(c.World.Statues >= 0, "world.statues %d", c.World.Statues)
	check(c.Player.MaxSpeed > 0, "player.max_speed %v must be positive", c.Player.MaxSpeed)
	check(c.Player.Acceleration >= 0, "player.acceleration %v", c.Player.Acceleration)
	check(c.Player.Friction >= 0, "player.friction %v", c.Player.Friction)
	check(c.Fog.Period > 0, "fog.period %v must be positive", c.Fog.Period)
	check(c.Fog.NightAlpha >= 0 && c.Fog.NightAlpha <= 1, "fog.night_alpha %v outside [0, 1]", c.Fog.NightAlpha)
	check(c.Inventory.Rows > 0 && c.Inventory.Cols > 0, "inventory grid %dx%d", c.Inventory.Rows, c.Inventory.Cols)
	for i, e := range c.Enemies {
		check(e.Health > 0, "enemies[%d].health %d must be positive", i, e.Health)
	}
	for i, p := range c.Pickups {
		check(p.Item != "", "pickups[%d] has no item", i)
		check(p.Count >= 0, "pickups[%d].count %d", i, p.Count)
	}
	if _, err := parseLevel(c.Debug.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalid, err))
	}

	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TileSize = float64(c.World.TileSize)
	// Validate already rejected unknown levels.
	c.Derived.LogLevel, _ = parseLevel(c.Debug.LogLevel)
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("debug.log_level %q: %w", s, err)
	}
	return lvl, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
