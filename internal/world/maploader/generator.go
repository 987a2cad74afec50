package maploader

import (
	"fmt"

	"github.com/ojrac/opensimplex-go"
)

// Elevation thresholds on normalized noise.
const (
	waterLevel = 0.32
	sandLevel  = 0.40
	stoneLevel = 0.75
)

// Generate builds a width×height map from seeded simplex noise. The same
// seed and size always give the same tiles. scale is the noise frequency
// per tile; smaller values give larger features.
func Generate(seed int64, width, height, tileSize int, scale float64) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid map dimensions: %dx%d", width, height)
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("invalid tile size: %d", tileSize)
	}
	if scale <= 0 {
		scale = 0.08
	}

	elevation := opensimplex.NewNormalized(seed)
	// A second octave from a derived seed breaks up the blobs.
	detail := opensimplex.NewNormalized(seed ^ 0x5eed)

	tiles := make([][]string, height)
	for y := 0; y < height; y++ {
		row := make([]string, width)
		for x := 0; x < width; x++ {
			fx, fy := float64(x)*scale, float64(y)*scale
			e := 0.75*elevation.Eval2(fx, fy) + 0.25*detail.Eval2(fx*3, fy*3)
			row[x] = tileFor(e)
		}
		tiles[y] = row
	}

	data := &MapData{
		Name:     fmt.Sprintf("generated-%d", seed),
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Tiles:    tiles,
		Seed:     seed,
	}
	return &Map{Data: data, Tiles: DefaultTiles()}, nil
}

func tileFor(e float64) string {
	switch {
	case e < waterLevel:
		return TileWater
	case e < sandLevel:
		return TileSand
	case e < stoneLevel:
		return TileGrass
	default:
		return TileStone
	}
}
