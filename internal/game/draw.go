package game

import (
	"image"
	"image/color"
	"math"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/entity"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/interaction"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/render"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/sprites"
)

var (
	backgroundColor = color.RGBA{10, 10, 20, 255}
	hitboxColor     = color.RGBA{255, 60, 60, 255}
	pivotColor      = color.RGBA{255, 230, 0, 255}
	aabbColor       = color.RGBA{0, 200, 255, 255}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	g.drawMap(screen)

	// Collection order, with the player and its blade on top.
	for _, a := range g.World.Actors() {
		body := a.Body()
		if body == g.Player.Object || (g.Swipe != nil && body == g.Swipe.Object) {
			continue
		}
		if e, ok := a.(*entity.Enemy); ok {
			if !e.Alive() {
				continue
			}
			alpha := float32(0)
			if e.HitFlash > 0 {
				alpha = 0.4
			}
			g.drawObject(screen, body, alpha)
			continue
		}
		if p, ok := a.(*interaction.Pickup); ok && p.Taken() {
			continue
		}
		g.drawObject(screen, body, 0)
	}
	g.drawObject(screen, g.Player.Object, 0)
	if g.Swipe != nil {
		g.drawObject(screen, g.Swipe.Object, 0)
	}

	g.Fog.Draw(g.Renderer, screen)

	g.drawHitboxes(screen)

	g.GameHUD.Draw(screen, g.Status())
	if g.Inventory.IsOpen() {
		g.GameHUD.DrawInventory(screen, g.Inventory)
	}
}

// drawMap draws the cached ground layer, building it on first use.
func (g *Game) drawMap(screen render.Image) {
	if g.mapImage == nil {
		g.mapImage = g.buildMapImage()
	}
	geoM := render.NewGeoM()
	geoM.Translate(-g.Camera.X*g.TileSize, -g.Camera.Y*g.TileSize)
	screen.DrawImage(g.mapImage, &render.DrawImageOptions{GeoM: geoM})
}

func (g *Game) buildMapImage() render.Image {
	w, h := g.GameMap.PixelSize()
	img := g.Renderer.NewImage(w, h)
	scale := g.TileSize / sprites.TileSize

	for y := 0; y < g.GameMap.Data.Height; y++ {
		for x := 0; x < g.GameMap.Data.Width; x++ {
			name, err := g.GameMap.GetTileAt(x, y)
			if err != nil || name == "" {
				continue
			}
			tile := g.sprite("tile_"+name, func() image.Image { return sprites.Tile(name) })
			geoM := render.NewGeoM()
			geoM.Scale(scale, scale)
			geoM.Translate(float64(x)*g.TileSize, float64(y)*g.TileSize)
			img.DrawImage(tile, &render.DrawImageOptions{GeoM: geoM})
		}
	}
	return img
}

// drawObject draws a sprite so its anchor pixel lands on the object's
// position, rotated about that anchor. Sprites are drawn at one pixel per
// pixel; the object model measures them against the tile size.
func (g *Game) drawObject(screen render.Image, o *entity.Object, alpha float32) {
	if o.Sprite == nil {
		return
	}
	origin := o.Origin.Offset()
	geoM := render.NewGeoM()
	geoM.Translate(-origin.X, -origin.Y)
	if a := o.Angle(); a != 0 {
		geoM.Rotate(-a * math.Pi / 180)
	}
	geoM.Translate((o.Pos.X-g.Camera.X)*g.TileSize, (o.Pos.Y-g.Camera.Y)*g.TileSize)
	screen.DrawImage(o.Sprite, &render.DrawImageOptions{GeoM: geoM, Alpha: alpha})
}

// drawHitboxes draws every live object's collision overlay. Objects with
// DebugHitbox set are drawn even when the global overlay is off.
func (g *Game) drawHitboxes(screen render.Image) {
	for _, a := range g.World.Actors() {
		body := a.Body()
		if !g.DebugHitbox && !body.DebugHitbox {
			continue
		}
		if d, ok := a.(entity.Damageable); ok && !d.Alive() {
			continue
		}
		if p, ok := a.(*interaction.Pickup); ok && p.Taken() {
			continue
		}
		g.drawHitbox(screen, body)
	}
}

func (g *Game) drawHitbox(screen render.Image, o *entity.Object) {
	ov, ok := o.Hitbox(g.Camera.Pos(), g.TileSize)
	if !ok {
		return
	}
	for _, s := range ov.Box {
		g.Renderer.StrokeLine(screen, float32(s.A.X), float32(s.A.Y), float32(s.B.X), float32(s.B.Y), 1, hitboxColor)
	}
	if ov.HasPivot {
		g.Renderer.StrokeLine(screen, float32(ov.Pivot.A.X), float32(ov.Pivot.A.Y), float32(ov.Pivot.B.X), float32(ov.Pivot.B.Y), 1, pivotColor)
	}
	g.Renderer.StrokeCircle(screen, float32(ov.Marker.X), float32(ov.Marker.Y), 3, 1, pivotColor)
	if ov.HasAABB {
		b := ov.AABB
		g.Renderer.StrokeRect(screen, float32(b.MinX), float32(b.MinY), float32(b.Width()), float32(b.Height()), 1, aabbColor)
	}
}
