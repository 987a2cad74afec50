// Package maploader provides the ground tile map: procedurally generated
// from a seed, or loaded from a JSON level file.
package maploader

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
)

//go:embed level.schema.json
var levelSchemaJSON string

var levelSchema = jsonschema.MustCompileString("level.schema.json", levelSchemaJSON)

// ErrOutOfBounds is returned for tile lookups outside the map.
var ErrOutOfBounds = errors.New("coordinates out of bounds")

// SpawnPoint defines a player or entity spawn location in tiles
type SpawnPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EnemySpawn places an enemy. Zero stats fall back to the configured defaults.
type EnemySpawn struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Health int     `json:"health,omitempty"`
	Speed  float64 `json:"speed,omitempty"`
	Sight  float64 `json:"sight,omitempty"`
}

// ItemSpawn places an item pickup. Count defaults to 1.
type ItemSpawn struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Item  string  `json:"item"`
	Count int     `json:"count,omitempty"`
}

// MapData represents the loaded map configuration
type MapData struct {
	Name        string           `json:"name"`
	Width       int              `json:"width"`
	Height      int              `json:"height"`
	TileSize    int              `json:"tile_size"` // Pixels per tile
	PlayerSpawn SpawnPoint       `json:"player_spawn"`
	Tiles       [][]string       `json:"tiles"` // 2D array of tile names [y][x]
	TileDefs    []TileDefinition `json:"tile_defs,omitempty"`
	Statues     []SpawnPoint     `json:"statues,omitempty"`
	Enemies     []EnemySpawn     `json:"enemies,omitempty"`
	Items       []ItemSpawn      `json:"items,omitempty"`

	// Seed is set for generated maps.
	Seed int64 `json:"-"`
}

// Map represents a loaded map with its tileset
type Map struct {
	Data  *MapData
	Tiles map[string]*TileDefinition
}

// LoadMap loads a map from a JSON file.
func LoadMap(mapPath string) (*Map, error) {
	data, err := os.ReadFile(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read map file %s: %w", mapPath, err)
	}
	m, err := ParseMap(data)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", mapPath, err)
	}
	return m, nil
}

// ParseMap validates raw level JSON against the level schema and builds the map.
func ParseMap(data []byte) (*Map, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	if err := levelSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}

	var mapData MapData
	if err := json.Unmarshal(data, &mapData); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}

	tiles := DefaultTiles()
	for i := range mapData.TileDefs {
		def := mapData.TileDefs[i]
		tiles[def.Name] = &def
	}

	if err := validateMapData(&mapData, tiles); err != nil {
		return nil, fmt.Errorf("invalid map data: %w", err)
	}
	return &Map{Data: &mapData, Tiles: tiles}, nil
}

// validateMapData checks what the schema cannot: the grid matches the
// declared size and every tile is defined.
func validateMapData(data *MapData, tiles map[string]*TileDefinition) error {
	if data.Width <= 0 || data.Height <= 0 {
		return fmt.Errorf("invalid map dimensions: %dx%d", data.Width, data.Height)
	}

	if data.TileSize <= 0 {
		return fmt.Errorf("invalid tile size: %d", data.TileSize)
	}

	if len(data.Tiles) != data.Height {
		return fmt.Errorf("tiles array height mismatch: expected %d, got %d", data.Height, len(data.Tiles))
	}

	var unknown []string
	seen := make(map[string]bool)
	for y, row := range data.Tiles {
		if len(row) != data.Width {
			return fmt.Errorf("tiles array width mismatch at row %d: expected %d, got %d", y, data.Width, len(row))
		}
		for _, name := range row {
			if _, ok := tiles[name]; !ok && !seen[name] {
				seen[name] = true
				unknown = append(unknown, name)
			}
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("undefined tiles: %s", strings.Join(unknown, ", "))
	}

	return nil
}

// GetTileAt returns the tile name at the given grid coordinates
func (m *Map) GetTileAt(x, y int) (string, error) {
	if x < 0 || x >= m.Data.Width || y < 0 || y >= m.Data.Height {
		return "", fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	return m.Data.Tiles[y][x], nil
}

// GetTileDefAt returns the tile definition at the given grid coordinates
func (m *Map) GetTileDefAt(x, y int) (*TileDefinition, error) {
	name, err := m.GetTileAt(x, y)
	if err != nil {
		return nil, err
	}
	def, ok := m.Tiles[name]
	if !ok {
		return nil, fmt.Errorf("tile not defined: %s", name)
	}
	return def, nil
}

// GetTileType returns the type of tile at the given coordinates
func (m *Map) GetTileType(x, y int) string {
	def, err := m.GetTileDefAt(x, y)
	if err != nil {
		return "unknown"
	}
	return def.GetTilePropertyString("type", "unknown")
}

// TileSize returns the pixels-per-tile factor.
func (m *Map) TileSize() float64 { return float64(m.Data.TileSize) }

// Bounds returns the map extent in tile units.
func (m *Map) Bounds() geom.Box {
	return geom.NewBox(0, 0, float64(m.Data.Width), float64(m.Data.Height))
}

// PixelSize returns the map's size in pixels.
func (m *Map) PixelSize() (w, h int) {
	return m.Data.Width * m.Data.TileSize, m.Data.Height * m.Data.TileSize
}

// TileNames returns the distinct tile names used by the map.
func (m *Map) TileNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, row := range m.Data.Tiles {
		for _, name := range row {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}
