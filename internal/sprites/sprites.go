// Package sprites generates the game's placeholder art procedurally, so the
// game runs without an asset directory.
package sprites

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sort"
)

// TileSize is the pixel size of tiles and 1x1 objects.
const TileSize = 32

// Sword dimensions. The hilt is at the bottom centre.
const (
	SwordWidth  = 8
	SwordHeight = 32
)

// SwordOrigin is the hilt pixel within the sword sprite.
var SwordOrigin = image.Pt(SwordWidth/2, SwordHeight)

// Palette defines colors for tiles, actors and items.
var Palette = struct {
	Water  color.RGBA
	Sand   color.RGBA
	Grass  color.RGBA
	Stone  color.RGBA
	Player color.RGBA
	Enemy  color.RGBA
	Statue color.RGBA
	Blade  color.RGBA
	Hilt   color.RGBA
	Torch  color.RGBA
	Berry  color.RGBA
	Item   color.RGBA
	Border color.RGBA
}{
	Water:  color.RGBA{40, 90, 170, 255},
	Sand:   color.RGBA{210, 190, 130, 255},
	Grass:  color.RGBA{70, 140, 60, 255},
	Stone:  color.RGBA{120, 120, 115, 255},
	Player: color.RGBA{0, 255, 100, 255},  // Bright green
	Enemy:  color.RGBA{255, 50, 50, 255},  // Bright red
	Statue: color.RGBA{170, 165, 155, 255}, // Weathered stone
	Blade:  color.RGBA{210, 220, 230, 255},
	Hilt:   color.RGBA{120, 80, 40, 255},
	Torch:  color.RGBA{220, 140, 50, 255},
	Berry:  color.RGBA{150, 30, 90, 255},
	Item:   color.RGBA{255, 215, 0, 255}, // Gold
	Border: color.RGBA{200, 200, 200, 255},
}

// SolidTile creates a simple solid-colored tile.
func SolidTile(col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// PatternedTile creates a tile with a simple pattern.
func PatternedTile(baseColor, patternColor color.RGBA, pattern string) *image.RGBA {
	img := SolidTile(baseColor)

	switch pattern {
	case "waves":
		for y := 6; y < TileSize; y += 10 {
			for x := 0; x < TileSize; x++ {
				if (x/4)%2 == 0 {
					img.Set(x, y, patternColor)
				} else {
					img.Set(x, y+1, patternColor)
				}
			}
		}
	case "dots":
		quarter := TileSize / 4
		threeQuarter := 3 * TileSize / 4
		dots := []image.Point{{quarter, quarter}, {threeQuarter, quarter}, {quarter, threeQuarter}, {threeQuarter, threeQuarter}}
		for _, p := range dots {
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					img.Set(p.X+dx, p.Y+dy, patternColor)
				}
			}
		}
	case "blades":
		for i := 3; i < TileSize; i += 7 {
			for h := 0; h < 4; h++ {
				img.Set(i, (i*5)%TileSize+h, patternColor)
			}
		}
	case "cracks":
		for i := 0; i < TileSize; i++ {
			img.Set(i, i, patternColor)
			img.Set(i, TileSize-1-i, patternColor)
		}
	}

	return img
}

// Circle creates a circular sprite for actors.
func Circle(fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))

	center := TileSize / 2
	radius := TileSize/2 - 2

	for y := 0; y < TileSize; y++ {
		for x := 0; x < TileSize; x++ {
			dx := x - center
			dy := y - center
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// Statue is a plinth with a figure on it.
func Statue() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
	base := Darken(Palette.Statue, 0.7)
	draw.Draw(img, image.Rect(4, 24, TileSize-4, TileSize), &image.Uniform{base}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(11, 10, TileSize-11, 24), &image.Uniform{Palette.Statue}, image.Point{}, draw.Src)
	for y := 2; y < 10; y++ {
		for x := 12; x < TileSize-12; x++ {
			img.Set(x, y, Lighten(Palette.Statue, 0.2))
		}
	}
	return img
}

// Sword is the player's swipe blade, pointing up, hilt at the bottom.
func Sword() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, SwordWidth, SwordHeight))
	draw.Draw(img, image.Rect(2, 0, SwordWidth-2, SwordHeight-8), &image.Uniform{Palette.Blade}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(0, SwordHeight-8, SwordWidth, SwordHeight-6), &image.Uniform{Darken(Palette.Hilt, 0.8)}, image.Point{}, draw.Src)
	draw.Draw(img, image.Rect(2, SwordHeight-6, SwordWidth-2, SwordHeight), &image.Uniform{Palette.Hilt}, image.Point{}, draw.Src)
	return img
}

// Item returns an inventory icon for the named item.
func Item(name string) *image.RGBA {
	switch name {
	case "torch":
		img := image.NewRGBA(image.Rect(0, 0, TileSize, TileSize))
		draw.Draw(img, image.Rect(14, 12, 18, 28), &image.Uniform{Palette.Hilt}, image.Point{}, draw.Src)
		draw.Draw(img, image.Rect(12, 4, 20, 12), &image.Uniform{Palette.Torch}, image.Point{}, draw.Src)
		return img
	case "berries":
		return Circle(Palette.Berry, Darken(Palette.Berry, 0.6))
	default:
		return Circle(Palette.Item, Darken(Palette.Item, 0.6))
	}
}

// Tile returns the ground tile for a map tile name. Unknown names get a
// magenta tile so they stand out.
func Tile(name string) *image.RGBA {
	switch name {
	case "water":
		return PatternedTile(Palette.Water, Lighten(Palette.Water, 0.3), "waves")
	case "sand":
		return PatternedTile(Palette.Sand, Darken(Palette.Sand, 0.85), "dots")
	case "grass":
		return PatternedTile(Palette.Grass, Darken(Palette.Grass, 0.75), "blades")
	case "stone":
		return PatternedTile(Palette.Stone, Darken(Palette.Stone, 0.8), "cracks")
	default:
		return SolidTile(color.RGBA{255, 0, 255, 255})
	}
}

// All returns every generated sprite by file stem.
func All() map[string]*image.RGBA {
	out := map[string]*image.RGBA{
		"player": Circle(Palette.Player, Darken(Palette.Player, 0.6)),
		"enemy":  Circle(Palette.Enemy, Darken(Palette.Enemy, 0.6)),
		"statue": Statue(),
		"sword":  Sword(),
	}
	for _, t := range []string{"water", "sand", "grass", "stone"} {
		out["tile_"+t] = Tile(t)
	}
	for _, it := range []string{"torch", "berries"} {
		out["item_"+it] = Item(it)
	}
	return out
}

// SaveAll writes every sprite in All to dir as PNG files and returns the
// written paths in name order.
func SaveAll(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	all := All()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		p := filepath.Join(dir, name+".png")
		if err := SavePNG(all[name], p); err != nil {
			return paths, fmt.Errorf("saving %s: %w", name, err)
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// SavePNG saves an image to a PNG file.
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color.
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color.
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
