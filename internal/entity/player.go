package entity

import (
	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
)

// Physics holds the player's movement tuning, in tiles per second and tiles
// per second squared.
type Physics struct {
	MaxSpeed     float64
	Acceleration float64
	Friction     float64
}

// DefaultPhysics is the original tuning: brisk acceleration, quick stop.
var DefaultPhysics = Physics{
	MaxSpeed:     7.0,
	Acceleration: 35.0,
	Friction:     90.0,
}

// Player is the controllable character.
type Player struct {
	*Object

	Physics  Physics
	Velocity geom.Vec

	// Moved is false when the last update's move was blocked.
	Moved bool
}

// NewPlayer returns a player at (x, y) with a solid 1x1 box.
func NewPlayer(x, y float64, physics Physics) (*Player, error) {
	obj, err := NewObject("player", x, y)
	if err != nil {
		return nil, err
	}
	return &Player{Object: obj, Physics: physics, Moved: true}, nil
}

// Update integrates input into velocity and moves the player.
func (p *Player) Update(f *Frame) {
	p.Velocity = p.Physics.Step(p.Velocity, f.Input, f.DT)

	p.Moved = p.Move(geom.Scale(p.Velocity, f.DT), f.Objects, f.TileSize)
	if !p.Moved {
		// Collisions cancel momentum outright.
		p.Velocity = geom.Zero
	}
}

// Step returns the velocity after one frame of input. With input it
// accelerates along the normalized input direction and caps the speed at
// MaxSpeed; without input it decelerates at Friction and stops exactly at
// zero instead of overshooting.
func (ph Physics) Step(vel geom.Vec, in Directions, dt float64) geom.Vec {
	x, y := in.Vector()
	dir := geom.V(x, y)

	if !geom.IsZero(dir) {
		dir = geom.Scale(dir, 1/geom.Length(dir))
		vel = geom.Add(vel, geom.Scale(dir, ph.Acceleration*dt))

		if speed := geom.Length(vel); speed > ph.MaxSpeed {
			vel = geom.Scale(vel, ph.MaxSpeed/speed)
		}
		return vel
	}

	speed := geom.Length(vel)
	decel := ph.Friction * dt
	if speed <= decel {
		return geom.Zero
	}
	return geom.Scale(vel, (speed-decel)/speed)
}
