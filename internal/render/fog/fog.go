// Package fog implements the day/night cycle: a flag that flips on a fixed
// period and, at night, a dark overlay with an optional light around the
// player.
package fog

import (
	"image"
	"image/color"
	"math"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/render"
)

// LightSource is a circle of visibility at night.
type LightSource struct {
	X, Y   float64 // Screen position in pixels
	Radius float64 // Pixels
}

// Manager tracks the cycle and draws the overlay.
type Manager struct {
	period     float64
	nightAlpha float64
	elapsed    float64
	day        bool
	toggles    int

	playerLight   LightSource
	playerLightOn bool

	// Cached light mask, rebuilt when the radius or screen size changes.
	mask       render.Image
	maskRadius float64
	maskW      int
	maskH      int
}

// NewManager returns a cycle that flips every period seconds, starting in
// day or night.
func NewManager(period, nightAlpha float64, startDay bool) *Manager {
	return &Manager{
		period:     period,
		nightAlpha: nightAlpha,
		day:        startDay,
	}
}

// Update advances the cycle by dt seconds. Long frames can flip the flag
// more than once.
func (m *Manager) Update(dt float64) {
	if m.period <= 0 || dt <= 0 {
		return
	}
	m.elapsed += dt
	for m.elapsed >= m.period {
		m.elapsed -= m.period
		m.day = !m.day
		m.toggles++
	}
}

// IsDay reports whether it is currently day.
func (m *Manager) IsDay() bool { return m.day }

// Toggles returns how many times the cycle has flipped.
func (m *Manager) Toggles() int { return m.toggles }

// Elapsed returns the time since the last flip.
func (m *Manager) Elapsed() float64 { return m.elapsed }

// Restore sets the cycle state, for loading saves.
func (m *Manager) Restore(day bool, elapsed float64) {
	m.day = day
	m.elapsed = math.Max(0, math.Mod(elapsed, m.period))
}

// SetPlayerLight places the player's light at screen pixel (x, y).
func (m *Manager) SetPlayerLight(x, y, radius float64) {
	m.playerLight = LightSource{X: x, Y: y, Radius: radius}
}

// EnablePlayerLight turns the player's light on or off.
func (m *Manager) EnablePlayerLight(enabled bool) {
	m.playerLightOn = enabled
}

// IsPlayerLightOn returns whether the player's light is currently on.
func (m *Manager) IsPlayerLightOn() bool { return m.playerLightOn }

// Draw darkens screen at night. With the player light on, the overlay is a
// mask twice the screen size with a soft hole in the middle, drawn centred
// on the light.
func (m *Manager) Draw(r render.Renderer, screen render.Image) {
	if m.day {
		return
	}
	w, h := screen.Size()
	shade := color.NRGBA{A: uint8(math.Round(m.nightAlpha * 255))}

	if !m.playerLightOn || m.playerLight.Radius <= 0 {
		r.FillRect(screen, 0, 0, float32(w), float32(h), shade)
		return
	}

	if m.mask == nil || m.maskRadius != m.playerLight.Radius || m.maskW != w || m.maskH != h {
		if m.mask != nil {
			m.mask.Dispose()
		}
		m.mask = r.NewImageFromImage(lightMask(2*w, 2*h, m.playerLight.Radius, shade.A))
		m.maskRadius, m.maskW, m.maskH = m.playerLight.Radius, w, h
	}

	geoM := render.NewGeoM()
	geoM.Translate(m.playerLight.X-float64(w), m.playerLight.Y-float64(h))
	screen.DrawImage(m.mask, &render.DrawImageOptions{GeoM: geoM})
}

// lightMask builds a w×h shade image with a transparent disc of the given
// radius at its centre that fades into the full shade over its outer third.
func lightMask(w, h int, radius float64, alpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	cx, cy := float64(w)/2, float64(h)/2
	inner := radius * 2 / 3
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			a := float64(alpha)
			switch {
			case d <= inner:
				a = 0
			case d < radius:
				a *= (d - inner) / (radius - inner)
			}
			img.SetNRGBA(x, y, color.NRGBA{A: uint8(a)})
		}
	}
	return img
}
