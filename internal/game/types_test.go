package game

import (
	"math"
	"testing"
	"time"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
)

// stepClock advances by a fixed step on every read.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (s *stepClock) now() time.Time {
	s.t = s.t.Add(s.step)
	return s.t
}

func TestClockFirstTickIsZero(t *testing.T) {
	sc := &stepClock{t: time.Unix(0, 0), step: 50 * time.Millisecond}
	c := NewClock(0.1)
	c.Now = sc.now

	if dt := c.Tick(); dt != 0 {
		t.Errorf("Expected first tick 0, got %v", dt)
	}
	if dt := c.Tick(); math.Abs(dt-0.05) > 1e-9 {
		t.Errorf("Expected 0.05, got %v", dt)
	}

	c.Reset()
	if dt := c.Tick(); dt != 0 {
		t.Errorf("Expected 0 after reset, got %v", dt)
	}
}

func TestClockClamps(t *testing.T) {
	tests := []struct {
		name string
		step time.Duration
		want float64
	}{
		{"long frame capped", 2 * time.Second, 0.1},
		{"exact cap", 100 * time.Millisecond, 0.1},
		{"backwards time", -time.Second, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sc := &stepClock{t: time.Unix(100, 0), step: tc.step}
			c := NewClock(0.1)
			c.Now = sc.now
			c.Tick()
			if dt := c.Tick(); math.Abs(dt-tc.want) > 1e-9 {
				t.Errorf("Expected %v, got %v", tc.want, dt)
			}
		})
	}
}

func TestCameraFollow(t *testing.T) {
	big := geom.NewBox(0, 0, 64, 64)
	tests := []struct {
		name   string
		target geom.Vec
		bounds geom.Box
		wx, wy float64
	}{
		{"clamped at top-left", geom.V(0.5, 0.5), big, 0, 0},
		{"centred", geom.V(32, 32), big, 19.5, 22.625},
		{"clamped at bottom-right", geom.V(63.5, 63.5), big, 39, 45.25},
		{"small map centred", geom.V(5, 5), geom.NewBox(0, 0, 10, 10), -7.5, -4.375},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var c Camera
			c.Follow(tc.target, 25, 18.75, tc.bounds)
			if math.Abs(c.X-tc.wx) > 1e-9 || math.Abs(c.Y-tc.wy) > 1e-9 {
				t.Errorf("Expected camera (%v, %v), got (%v, %v)", tc.wx, tc.wy, c.X, c.Y)
			}
		})
	}
}

func TestStateString(t *testing.T) {
	if StateMainMenu.String() != "menu" || StatePlaying.String() != "playing" {
		t.Errorf("Unexpected state names %q, %q", StateMainMenu, StatePlaying)
	}
}
