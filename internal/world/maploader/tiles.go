package maploader

// Tile names used by generated maps.
const (
	TileWater = "water"
	TileSand  = "sand"
	TileGrass = "grass"
	TileStone = "stone"
)

// TileDefinition describes one kind of ground tile.
type TileDefinition struct {
	Name       string         `json:"name"`
	Properties map[string]any `json:"properties"` // Custom properties (type, speed, etc.)
}

// DefaultTiles is the built-in tileset. Levels may add to it.
func DefaultTiles() map[string]*TileDefinition {
	return map[string]*TileDefinition{
		TileWater: {Name: TileWater, Properties: map[string]any{"type": "liquid"}},
		TileSand:  {Name: TileSand, Properties: map[string]any{"type": "ground"}},
		TileGrass: {Name: TileGrass, Properties: map[string]any{"type": "ground"}},
		TileStone: {Name: TileStone, Properties: map[string]any{"type": "rock"}},
	}
}

// GetTileProperty retrieves a property from a tile definition
func (td *TileDefinition) GetTileProperty(key string) (any, bool) {
	if td.Properties == nil {
		return nil, false
	}
	val, ok := td.Properties[key]
	return val, ok
}

// GetTilePropertyBool retrieves a boolean property
func (td *TileDefinition) GetTilePropertyBool(key string, defaultVal bool) bool {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	if boolVal, ok := val.(bool); ok {
		return boolVal
	}
	return defaultVal
}

// GetTilePropertyString retrieves a string property
func (td *TileDefinition) GetTilePropertyString(key string, defaultVal string) string {
	val, ok := td.GetTileProperty(key)
	if !ok {
		return defaultVal
	}
	if strVal, ok := val.(string); ok {
		return strVal
	}
	return defaultVal
}
