package game

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/save"
)

// Snapshot captures the parts of the level a quick-save restores.
func (g *Game) Snapshot() save.State {
	st := save.State{
		Seed:  g.Config.World.Seed,
		Level: g.Config.World.Level,
		Player: save.Body{
			X:  g.Player.Pos.X,
			Y:  g.Player.Pos.Y,
			VX: g.Player.Velocity.X,
			VY: g.Player.Velocity.Y,
		},
		Inventory: g.Inventory.Snapshot(),
		Day:       g.Fog.IsDay(),
		CycleTime: g.Fog.Elapsed(),
	}
	for _, e := range g.Enemies {
		st.Enemies = append(st.Enemies, save.EnemyState{
			Body:   save.Body{X: e.Pos.X, Y: e.Pos.Y},
			Health: e.Health,
		})
	}
	if g.Swipe != nil {
		st.Swipe = &save.Body{X: g.Swipe.Pos.X, Y: g.Swipe.Pos.Y, Angle: g.Swipe.Angle()}
	}
	for _, p := range g.Pickups {
		st.Pickups = append(st.Pickups, p.Count)
	}
	return st
}

// Restore applies a snapshot taken from the same level.
func (g *Game) Restore(st save.State) error {
	if st.Seed != g.Config.World.Seed || st.Level != g.Config.World.Level {
		return fmt.Errorf("save is for seed %d level %q, playing seed %d level %q: %w",
			st.Seed, st.Level, g.Config.World.Seed, g.Config.World.Level, save.ErrIncompatible)
	}
	if len(st.Enemies) != len(g.Enemies) {
		return fmt.Errorf("save has %d enemies, level has %d: %w", len(st.Enemies), len(g.Enemies), save.ErrIncompatible)
	}
	if len(st.Pickups) != len(g.Pickups) {
		return fmt.Errorf("save has %d pickups, level has %d: %w", len(st.Pickups), len(g.Pickups), save.ErrIncompatible)
	}
	pos := geom.V(st.Player.X, st.Player.Y)
	if !geom.IsFinite(pos) {
		return fmt.Errorf("save has player at %v: %w", pos, save.ErrIncompatible)
	}
	if st.Swipe != nil && (math.IsNaN(st.Swipe.Angle) || math.IsInf(st.Swipe.Angle, 0)) {
		return fmt.Errorf("save has swipe angle %v: %w", st.Swipe.Angle, save.ErrIncompatible)
	}
	if err := g.Inventory.Restore(st.Inventory); err != nil {
		return err
	}

	g.Player.Pos = pos
	g.Player.Velocity = geom.V(st.Player.VX, st.Player.VY)
	for i, es := range st.Enemies {
		e := g.Enemies[i]
		e.Pos = geom.V(es.X, es.Y)
		e.Health = es.Health
		if e.Collision != nil {
			e.Collision.Solid = e.Alive()
		}
	}
	for i, n := range st.Pickups {
		g.Pickups[i].Count = n
	}
	if st.Swipe != nil && g.Swipe != nil {
		g.Swipe.Pos = geom.V(st.Swipe.X, st.Swipe.Y)
		if err := g.Swipe.SetAngle(st.Swipe.Angle); err != nil {
			return err
		}
	}
	g.Fog.Restore(st.Day, st.CycleTime)
	g.Clock.Reset()
	g.UpdateCamera()
	return nil
}

// SaveTo writes a quick-save to path.
func (g *Game) SaveTo(path string) error {
	if err := save.Write(path, g.Snapshot()); err != nil {
		return err
	}
	slog.Info("game saved", "path", path, "frame", g.FrameCount)
	return nil
}

// LoadFrom restores a quick-save from path.
func (g *Game) LoadFrom(path string) error {
	st, hdr, err := save.Read(path)
	if err != nil {
		return err
	}
	if err := g.Restore(st); err != nil {
		return err
	}
	slog.Info("game loaded from save", "path", path, "saved_at", hdr.SavedAt)
	return nil
}
