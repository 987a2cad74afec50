package game

import (
	"errors"
	"log/slog"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/config"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/entity"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/interaction"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/inventory"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/render"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/render/fog"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/save"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/telemetry"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/ui/hud"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/world/maploader"
)

// torchItem lights the area around the player at night while carried.
const torchItem = "torch"

// Game holds all game state and logic for one level.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Config       *config.Config

	GameMap  *maploader.Map
	TileSize float64
	World    *entity.World
	Player   *entity.Player
	Swipe    *entity.Swipe
	Enemies  []*entity.Enemy
	Statues  []*entity.Object
	Pickups  []*interaction.Pickup

	Camera    Camera
	Clock     *Clock
	Fog       *fog.Manager
	Inventory *inventory.Inventory
	GameHUD   *hud.HUD

	Renderer render.Renderer
	InputMgr render.InputManager
	Loader   render.ResourceLoader
	Trace    *telemetry.Trace

	DebugHitbox bool
	SavePath    string

	FrameCount int64

	// Drawing caches
	mapImage render.Image
	images   map[string]render.Image
}

// Update runs one frame: clock, hotkeys, actors, camera and fog.
func (g *Game) Update() error {
	dt := g.Clock.Tick()

	g.handleHotkeys()

	aliveBefore := g.EnemiesAlive()
	dayBefore := g.Fog.IsDay()

	frame := &entity.Frame{
		DT:       dt,
		TileSize: g.TileSize,
		Input:    g.readDirections(),
		Player:   g.Player,
	}
	g.World.Update(frame)

	if killed := aliveBefore - g.EnemiesAlive(); killed > 0 {
		g.GameHUD.Push("Enemy defeated (%d left)", g.EnemiesAlive())
		slog.Info("enemy defeated", "frame", g.FrameCount, "remaining", g.EnemiesAlive())
	}

	g.UpdateCamera()

	g.Fog.Update(dt)
	if g.Fog.IsDay() != dayBefore {
		if g.Fog.IsDay() {
			g.GameHUD.Push("Day breaks")
		} else {
			g.GameHUD.Push("Night falls")
		}
	}
	centre := geom.Sub(g.Player.Bounds(g.TileSize).Center(), g.Camera.Pos())
	g.Fog.SetPlayerLight(centre.X*g.TileSize, centre.Y*g.TileSize, 4*g.TileSize)

	g.GameHUD.Update(dt)
	g.recordFrame(dt)
	g.FrameCount++
	return nil
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}

// Resize updates the view size after a window change.
func (g *Game) Resize(width, height int) {
	g.ScreenWidth = width
	g.ScreenHeight = height
	g.GameHUD.SetScreenSize(width, height)
	g.UpdateCamera()
}

func (g *Game) readDirections() entity.Directions {
	in := g.InputMgr
	return entity.Directions{
		Up:    in.IsKeyPressed(render.KeyW) || in.IsKeyPressed(render.KeyUp),
		Down:  in.IsKeyPressed(render.KeyS) || in.IsKeyPressed(render.KeyDown),
		Left:  in.IsKeyPressed(render.KeyA) || in.IsKeyPressed(render.KeyLeft),
		Right: in.IsKeyPressed(render.KeyD) || in.IsKeyPressed(render.KeyRight),
	}
}

func (g *Game) handleHotkeys() {
	in := g.InputMgr
	if in.IsKeyJustPressed(render.KeyF3) {
		g.SetDebugHitbox(!g.DebugHitbox)
		if g.DebugHitbox {
			g.GameHUD.Push("Hitboxes on")
		} else {
			g.GameHUD.Push("Hitboxes off")
		}
	}
	if in.IsKeyJustPressed(render.KeyI) {
		g.Inventory.Toggle()
	}
	if in.IsKeyJustPressed(render.KeyF5) {
		if err := g.SaveTo(g.SavePath); err != nil {
			slog.Error("quick save failed", "path", g.SavePath, "err", err)
			g.GameHUD.Push("Save failed")
		} else {
			g.GameHUD.Push("Game saved")
		}
	}
	if in.IsKeyJustPressed(render.KeyF9) {
		switch err := g.LoadFrom(g.SavePath); {
		case errors.Is(err, save.ErrNoSave):
			g.GameHUD.Push("No save to load")
		case err != nil:
			slog.Error("quick load failed", "path", g.SavePath, "err", err)
			g.GameHUD.Push("Load failed")
		default:
			g.GameHUD.Push("Game loaded")
		}
	}
}

// SetDebugHitbox turns the collision overlay on or off.
func (g *Game) SetDebugHitbox(on bool) {
	g.DebugHitbox = on
}

// UpdateCamera centres the view on the player, clamped to the map.
func (g *Game) UpdateCamera() {
	if g.GameMap == nil || g.TileSize <= 0 {
		return
	}
	viewW := float64(g.ScreenWidth) / g.TileSize
	viewH := float64(g.ScreenHeight) / g.TileSize
	g.Camera.Follow(g.Player.Bounds(g.TileSize).Center(), viewW, viewH, g.GameMap.Bounds())
}

// EnemiesAlive counts enemies with health left.
func (g *Game) EnemiesAlive() int {
	n := 0
	for _, e := range g.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}

// Status returns what the HUD shows this frame.
func (g *Game) Status() hud.Status {
	pct := 0.0
	if p := g.Config.Fog.Period; p > 0 {
		pct = g.Fog.Elapsed() / p
	}
	return hud.Status{
		Position:     g.Player.Pos,
		Speed:        geom.Length(g.Player.Velocity),
		Day:          g.Fog.IsDay(),
		CyclePercent: pct,
		EnemiesAlive: g.EnemiesAlive(),
		EnemiesTotal: len(g.Enemies),
		DebugHitbox:  g.DebugHitbox,
	}
}

// updateTorch keeps the night light in step with the inventory.
func (g *Game) updateTorch() {
	g.Fog.EnablePlayerLight(g.Inventory.HasItem(torchItem))
}

func (g *Game) recordFrame(dt float64) {
	if g.Trace == nil {
		return
	}
	rec := telemetry.FrameRecord{
		Frame:   g.FrameCount,
		DT:      dt,
		PlayerX: g.Player.Pos.X,
		PlayerY: g.Player.Pos.Y,
		VelX:    g.Player.Velocity.X,
		VelY:    g.Player.Velocity.Y,
		Speed:   geom.Length(g.Player.Velocity),
		Moved:   g.Player.Moved,
		Day:     g.Fog.IsDay(),
		Enemies: g.EnemiesAlive(),
	}
	if err := g.Trace.Write(rec); err != nil {
		slog.Error("trace write failed, disabling trace", "err", err)
		g.Trace = nil
	}
}
