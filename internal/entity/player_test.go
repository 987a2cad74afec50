package entity

import (
	"testing"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
)

func newTestPlayer(t *testing.T, x, y float64) *Player {
	t.Helper()
	p, err := NewPlayer(x, y, DefaultPhysics)
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}
	return p
}

func TestDirectionsVector(t *testing.T) {
	tests := []struct {
		name   string
		in     Directions
		wx, wy float64
	}{
		{"none", Directions{}, 0, 0},
		{"up", Directions{Up: true}, 0, -1},
		{"down right", Directions{Down: true, Right: true}, 1, 1},
		{"opposites cancel", Directions{Left: true, Right: true}, 0, 0},
		{"all", Directions{Up: true, Down: true, Left: true, Right: true}, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := tc.in.Vector()
			if x != tc.wx || y != tc.wy {
				t.Errorf("Expected (%v, %v), got (%v, %v)", tc.wx, tc.wy, x, y)
			}
		})
	}
}

func TestAccelerationNormalizesInput(t *testing.T) {
	ph := Physics{MaxSpeed: 100, Acceleration: 10, Friction: 50}

	straight := ph.Step(geom.Zero, Directions{Right: true}, 0.1)
	if !approxEqual(straight.X, 1) || straight.Y != 0 {
		t.Errorf("Expected (1, 0), got %v", straight)
	}

	diagonal := ph.Step(geom.Zero, Directions{Right: true, Down: true}, 0.1)
	if !approxEqual(geom.Length(diagonal), 1) {
		t.Errorf("Expected diagonal acceleration of length 1, got %v", geom.Length(diagonal))
	}
}

func TestSpeedClamp(t *testing.T) {
	ph := DefaultPhysics
	vel := geom.Zero
	in := Directions{Up: true, Left: true}

	for i := 0; i < 200; i++ {
		vel = ph.Step(vel, in, 0.1)
		if speed := geom.Length(vel); speed > ph.MaxSpeed+1e-9 {
			t.Fatalf("frame %d: speed %v exceeds max %v", i, speed, ph.MaxSpeed)
		}
	}
	if !approxEqual(geom.Length(vel), ph.MaxSpeed) {
		t.Errorf("Expected to reach max speed %v, got %v", ph.MaxSpeed, geom.Length(vel))
	}
}

func TestFrictionReachesExactZero(t *testing.T) {
	ph := DefaultPhysics
	dt := 0.1

	// 0.5 tiles/sec is well under friction*dt = 9.
	vel := ph.Step(geom.V(0.3, -0.4), Directions{}, dt)
	if vel.X != 0 || vel.Y != 0 {
		t.Errorf("Expected exact zero velocity, got %v", vel)
	}

	// Larger speeds lose exactly friction*dt and keep their direction.
	vel = ph.Step(geom.V(12, 0), Directions{}, dt)
	if !approxEqual(vel.X, 3) || vel.Y != 0 {
		t.Errorf("Expected (3, 0), got %v", vel)
	}

	// Repeated friction never oscillates past zero.
	vel = geom.V(-6, 6)
	for i := 0; i < 10; i++ {
		next := ph.Step(vel, Directions{}, 0.01)
		if next.X*vel.X < 0 || next.Y*vel.Y < 0 {
			t.Fatalf("frame %d: velocity flipped from %v to %v", i, vel, next)
		}
		vel = next
	}
	if !geom.IsZero(vel) {
		t.Errorf("Expected to come to rest, got %v", vel)
	}
}

func TestPlayerMoves(t *testing.T) {
	p := newTestPlayer(t, 0, 0)
	w := NewWorld()
	w.Add(p)

	f := &Frame{DT: 0.1, TileSize: testTileSize, Input: Directions{Right: true}, Player: p}
	w.Update(f)

	if !p.Moved {
		t.Fatal("Expected player to move in open space")
	}
	// v = 3.5 after one frame, so the player moves 0.35 tiles.
	if !approxEqual(p.Pos.X, 0.35) || p.Pos.Y != 0 {
		t.Errorf("Expected (0.35, 0), got %v", p.Pos)
	}
}

func TestPlayerCollisionCancelsVelocity(t *testing.T) {
	p := newTestPlayer(t, 0, 0)
	p.Velocity = geom.V(5, 0)
	statue, err := NewStatue(1, 0)
	if err != nil {
		t.Fatal(err)
	}

	w := NewWorld()
	w.Add(p)
	w.Add(statue)

	w.Update(&Frame{DT: 0.1, TileSize: testTileSize, Input: Directions{Right: true}, Player: p})

	if p.Moved {
		t.Error("Expected player to be blocked by statue")
	}
	if !geom.IsZero(p.Velocity) {
		t.Errorf("Expected velocity cleared on collision, got %v", p.Velocity)
	}
	if p.Pos != geom.V(0, 0) {
		t.Errorf("Expected player to stay at (0, 0), got %v", p.Pos)
	}
}

func TestPlayerCoastsToStop(t *testing.T) {
	p := newTestPlayer(t, 0, 0)
	p.Velocity = geom.V(0, 7)
	w := NewWorld()
	w.Add(p)

	for i := 0; i < 20; i++ {
		w.Update(&Frame{DT: 1.0 / 60, TileSize: testTileSize, Player: p})
	}
	if !geom.IsZero(p.Velocity) {
		t.Errorf("Expected player at rest, got %v", p.Velocity)
	}
	if p.Pos.Y <= 0 {
		t.Errorf("Expected player to have coasted forward, got %v", p.Pos)
	}
}
