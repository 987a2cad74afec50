package game

import (
	"time"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
)

// State is which screen the manager is showing.
type State int

const (
	StateMainMenu State = iota
	StatePlaying
)

func (s State) String() string {
	switch s {
	case StateMainMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// Camera tracks the viewport for scrolling large levels.
type Camera struct {
	X, Y float64 // Top-left corner of the viewport in tiles
}

// Pos returns the camera position as a vector.
func (c Camera) Pos() geom.Vec { return geom.V(c.X, c.Y) }

// Follow centres the view on target and clamps it to bounds. On an axis
// where the map is smaller than the view, the map is centred instead.
func (c *Camera) Follow(target geom.Vec, viewW, viewH float64, bounds geom.Box) {
	c.X = clampView(target.X-viewW/2, viewW, bounds.MinX, bounds.MaxX)
	c.Y = clampView(target.Y-viewH/2, viewH, bounds.MinY, bounds.MaxY)
}

func clampView(pos, view, lo, hi float64) float64 {
	if hi-lo <= view {
		return lo - (view-(hi-lo))/2
	}
	if pos < lo {
		return lo
	}
	if pos > hi-view {
		return hi - view
	}
	return pos
}

// Clock turns wall time into per-frame deltas.
type Clock struct {
	// Now is the time source. Tests replace it.
	Now func() time.Time
	// MaxDT caps a single delta, in seconds.
	MaxDT float64

	last    time.Time
	started bool
}

// NewClock returns a wall clock capped at maxDT seconds per frame.
func NewClock(maxDT float64) *Clock {
	return &Clock{Now: time.Now, MaxDT: maxDT}
}

// Tick returns the seconds since the previous tick, clamped to
// [0, MaxDT]. The first tick after creation or Reset returns 0.
func (c *Clock) Tick() float64 {
	now := c.Now()
	if !c.started {
		c.last = now
		c.started = true
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now

	if dt < 0 {
		return 0
	}
	if c.MaxDT > 0 && dt > c.MaxDT {
		return c.MaxDT
	}
	return dt
}

// Reset makes the next tick return 0, so time spent paused is not replayed.
func (c *Clock) Reset() { c.started = false }
