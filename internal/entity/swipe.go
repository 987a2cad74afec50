package entity

import (
	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
)

// SwipeConfig tunes the player's spinning blade.
type SwipeConfig struct {
	// SpinRate is degrees per second.
	SpinRate float64
	Damage   int
	// Cooldown is the minimum time between hits on the same target, in seconds.
	Cooldown float64
	// Width and Length are the blade's collision size in tiles.
	Width, Length float64
	// Origin is the hilt pixel within the blade sprite.
	Origin geom.Vec
}

// Swipe is a ghost object pinned to the centre of an owner that spins about
// its hilt and hurts whatever its bounds touch.
type Swipe struct {
	*Object

	Config SwipeConfig
	Owner  *Object

	cooldowns map[*Object]float64
}

// NewSwipe returns a swipe attached to owner. The blade's box runs from the
// sprite's top-left corner, so with the origin at the hilt the blade points
// "up" in the local frame.
func NewSwipe(owner *Object, cfg SwipeConfig) (*Swipe, error) {
	obj, err := NewObject("swipe", owner.Pos.X, owner.Pos.Y)
	if err != nil {
		return nil, err
	}
	obj.Collision = NewCollisionBox(0, 0, cfg.Width, cfg.Length, false)
	obj.Origin = OriginAt(cfg.Origin.X, cfg.Origin.Y)

	return &Swipe{
		Object:    obj,
		Config:    cfg,
		Owner:     owner,
		cooldowns: make(map[*Object]float64),
	}, nil
}

// Update follows the owner, spins, and damages overlapping targets.
func (s *Swipe) Update(f *Frame) {
	if s.Owner != nil {
		ownerBox := s.Owner.Bounds(f.TileSize)
		if s.Owner.Collision != nil {
			s.Pos = ownerBox.Center()
		} else {
			s.Pos = s.Owner.Pos
		}
	}
	s.turn(s.Config.SpinRate * f.DT)

	for target, left := range s.cooldowns {
		if left -= f.DT; left <= 0 {
			delete(s.cooldowns, target)
		} else {
			s.cooldowns[target] = left
		}
	}

	blade := s.Bounds(f.TileSize)
	for _, a := range f.Actors {
		target, ok := a.(Damageable)
		if !ok || !target.Alive() {
			continue
		}
		body := target.Body()
		if body == s.Owner || body.Collision == nil {
			continue
		}
		if _, cooling := s.cooldowns[body]; cooling {
			continue
		}
		if geom.Overlaps(blade, body.Bounds(f.TileSize)) {
			target.TakeDamage(s.Config.Damage)
			s.cooldowns[body] = s.Config.Cooldown
		}
	}
}
