package maploader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleLevel = `{
	"name": "meadow",
	"width": 3,
	"height": 2,
	"tile_size": 32,
	"player_spawn": {"x": 1, "y": 1},
	"tiles": [
		["grass", "grass", "sand"],
		["water", "mud", "stone"]
	],
	"tile_defs": [
		{"name": "mud", "properties": {"type": "ground"}}
	],
	"statues": [{"x": 2, "y": 0}],
	"enemies": [{"x": 0, "y": 1, "health": 4}],
	"items": [{"x": 1, "y": 0, "item": "berries", "count": 2}]
}`

func TestParseMap(t *testing.T) {
	m, err := ParseMap([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("Failed to parse level: %v", err)
	}

	if m.Data.Name != "meadow" {
		t.Errorf("Expected name 'meadow', got '%s'", m.Data.Name)
	}
	if m.TileSize() != 32 {
		t.Errorf("Expected tile size 32, got %v", m.TileSize())
	}
	if m.Data.PlayerSpawn.X != 1 || m.Data.PlayerSpawn.Y != 1 {
		t.Errorf("Expected spawn (1, 1), got %+v", m.Data.PlayerSpawn)
	}
	if len(m.Data.Statues) != 1 || len(m.Data.Enemies) != 1 || m.Data.Enemies[0].Health != 4 {
		t.Errorf("Expected one statue and one enemy, got %+v / %+v", m.Data.Statues, m.Data.Enemies)
	}

	if len(m.Data.Items) != 1 || m.Data.Items[0].Item != "berries" || m.Data.Items[0].Count != 2 {
		t.Errorf("Expected one berries pickup, got %+v", m.Data.Items)
	}

	name, err := m.GetTileAt(2, 0)
	if err != nil || name != "sand" {
		t.Errorf("Expected sand at (2, 0), got %q (%v)", name, err)
	}
	if got := m.GetTileType(1, 1); got != "ground" {
		t.Errorf("Expected custom tile type 'ground', got '%s'", got)
	}
	if got := m.GetTileType(0, 1); got != "liquid" {
		t.Errorf("Expected water to be 'liquid', got '%s'", got)
	}

	b := m.Bounds()
	if b.MaxX != 3 || b.MaxY != 2 || b.MinX != 0 || b.MinY != 0 {
		t.Errorf("Expected bounds 3x2, got %+v", b)
	}
	if w, h := m.PixelSize(); w != 96 || h != 64 {
		t.Errorf("Expected 96x64 pixels, got %dx%d", w, h)
	}
}

func TestGetTileAtOutOfBounds(t *testing.T) {
	m, err := ParseMap([]byte(sampleLevel))
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, 2}} {
		if _, err := m.GetTileAt(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Expected ErrOutOfBounds at %v, got %v", p, err)
		}
	}
	if got := m.GetTileType(9, 9); got != "unknown" {
		t.Errorf("Expected 'unknown' outside the map, got '%s'", got)
	}
}

func TestParseMapRejects(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr string
	}{
		{"not json", `{`, "parse"},
		{"missing tiles", `{"name": "x", "width": 1, "height": 1, "tile_size": 32}`, "schema"},
		{"zero tile size", `{"name": "x", "width": 1, "height": 1, "tile_size": 0, "tiles": [["grass"]]}`, "schema"},
		{"string width", `{"name": "x", "width": "1", "height": 1, "tile_size": 32, "tiles": [["grass"]]}`, "schema"},
		{"row count", `{"name": "x", "width": 1, "height": 2, "tile_size": 32, "tiles": [["grass"]]}`, "height mismatch"},
		{"row width", `{"name": "x", "width": 2, "height": 1, "tile_size": 32, "tiles": [["grass"]]}`, "width mismatch"},
		{"item without name", `{"name": "x", "width": 1, "height": 1, "tile_size": 32, "tiles": [["grass"]], "items": [{"x": 0, "y": 0}]}`, "schema"},
		{"unknown tile", `{"name": "x", "width": 1, "height": 1, "tile_size": 32, "tiles": [["lava"]]}`, "undefined tiles: lava"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseMap([]byte(tc.level))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadMapFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meadow.json")
	if err := os.WriteFile(path, []byte(sampleLevel), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadMap(path)
	if err != nil {
		t.Fatalf("LoadMap: %v", err)
	}
	if m.Data.Width != 3 {
		t.Errorf("Expected width 3, got %d", m.Data.Width)
	}

	if _, err := LoadMap(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, err := Generate(10, 24, 16, 32, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(10, 24, 16, 32, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	c, err := Generate(11, 24, 16, 32, 0.1)
	if err != nil {
		t.Fatal(err)
	}

	same, differ := true, false
	for y := 0; y < 16; y++ {
		for x := 0; x < 24; x++ {
			if a.Data.Tiles[y][x] != b.Data.Tiles[y][x] {
				same = false
			}
			if a.Data.Tiles[y][x] != c.Data.Tiles[y][x] {
				differ = true
			}
			if _, ok := a.Tiles[a.Data.Tiles[y][x]]; !ok {
				t.Fatalf("Generated undefined tile %q", a.Data.Tiles[y][x])
			}
		}
	}
	if !same {
		t.Error("Expected identical maps for the same seed")
	}
	if !differ {
		t.Error("Expected a different seed to change the map")
	}
	if a.Data.Seed != 10 {
		t.Errorf("Expected seed recorded, got %d", a.Data.Seed)
	}
}

func TestGenerateRejectsBadSize(t *testing.T) {
	if _, err := Generate(1, 0, 5, 32, 0.1); err == nil {
		t.Error("Expected error for zero width")
	}
	if _, err := Generate(1, 5, 5, 0, 0.1); err == nil {
		t.Error("Expected error for zero tile size")
	}
}

func TestTileFor(t *testing.T) {
	tests := []struct {
		e    float64
		want string
	}{
		{0, TileWater},
		{0.35, TileSand},
		{0.5, TileGrass},
		{0.9, TileStone},
	}
	for _, tc := range tests {
		if got := tileFor(tc.e); got != tc.want {
			t.Errorf("tileFor(%v) = %s, want %s", tc.e, got, tc.want)
		}
	}
}
