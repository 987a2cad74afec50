package entity

import (
	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
)

// EnemyConfig tunes a chasing enemy.
type EnemyConfig struct {
	Health int
	// Speed is the chase speed in tiles per second.
	Speed float64
	// Sight is how close, in tiles, the player must be to be chased.
	Sight float64
}

// Enemy walks straight at the player while the player is within sight.
// Its moves go through Move like everything else, so statues block it.
type Enemy struct {
	*Object

	Config EnemyConfig
	Health int

	// HitFlash counts down after taking damage, for drawing.
	HitFlash float64
}

// NewEnemy returns a solid 1x1 enemy at (x, y).
func NewEnemy(x, y float64, cfg EnemyConfig) (*Enemy, error) {
	obj, err := NewObject("enemy", x, y)
	if err != nil {
		return nil, err
	}
	return &Enemy{Object: obj, Config: cfg, Health: cfg.Health}, nil
}

// Alive reports whether the enemy still has health.
func (e *Enemy) Alive() bool { return e.Health > 0 }

// TakeDamage subtracts health. At zero the enemy becomes a ghost so it no
// longer blocks anything; it stays in the world.
func (e *Enemy) TakeDamage(amount int) {
	if !e.Alive() || amount <= 0 {
		return
	}
	e.Health -= amount
	e.HitFlash = 0.2
	if e.Health <= 0 {
		e.Health = 0
		if e.Collision != nil {
			e.Collision.Solid = false
		}
	}
}

// Update chases the player.
func (e *Enemy) Update(f *Frame) {
	if e.HitFlash > 0 {
		e.HitFlash -= f.DT
	}
	if !e.Alive() || f.Player == nil {
		return
	}

	to := geom.Sub(f.Player.Pos, e.Pos)
	dist := geom.Length(to)
	if dist == 0 || dist > e.Config.Sight {
		return
	}

	step := e.Config.Speed * f.DT
	if step > dist {
		step = dist
	}
	e.Move(geom.Scale(to, step/dist), f.Objects, f.TileSize)
}

// NewStatue returns a static solid 1x1 object, the level's scenery.
func NewStatue(x, y float64) (*Object, error) {
	return NewObject("statue", x, y)
}
