// Package hud draws the in-game overlay: a status panel, timed messages and
// the inventory grid.
package hud

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/inventory"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/render"
)

// Config defines what to display in the HUD
type Config struct {
	ShowPosition bool    // Show tile position
	ShowSpeed    bool    // Show player speed
	Position     string  // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity      float64 // Background opacity (0-1)
	MessageTTL   float64 // Seconds a message stays up
	MaxMessages  int
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() *Config {
	return &Config{
		ShowPosition: true,
		ShowSpeed:    true,
		Position:     "top-left",
		Opacity:      0.7,
		MessageTTL:   3,
		MaxMessages:  4,
	}
}

// Status is the game state shown in the panel each frame.
type Status struct {
	Position     geom.Vec
	Speed        float64
	Day          bool
	CyclePercent float64 // Progress through the current day or night, 0-1
	EnemiesAlive int
	EnemiesTotal int
	DebugHitbox  bool
}

type message struct {
	text string
	ttl  float64
}

// HUD manages the heads-up display
type HUD struct {
	renderer     render.Renderer
	config       *Config
	screenWidth  int
	screenHeight int

	messages []message

	// Icons holds inventory item images by item name.
	Icons map[string]render.Image

	// Cached layout
	panelWidth  int
	panelHeight int
}

// New creates a new HUD with the given configuration
func New(r render.Renderer, config *Config, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		renderer:     r,
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		panelWidth:   180,
		Icons:        make(map[string]render.Image),
	}
}

// SetScreenSize updates the screen dimensions
func (h *HUD) SetScreenSize(width, height int) {
	h.screenWidth = width
	h.screenHeight = height
}

// Push shows a message for the configured time. The oldest message is
// dropped once MaxMessages are showing.
func (h *HUD) Push(format string, args ...any) {
	h.messages = append(h.messages, message{text: fmt.Sprintf(format, args...), ttl: h.config.MessageTTL})
	if n := h.config.MaxMessages; n > 0 && len(h.messages) > n {
		h.messages = h.messages[len(h.messages)-n:]
	}
}

// Messages returns the texts currently showing, oldest first.
func (h *HUD) Messages() []string {
	out := make([]string, len(h.messages))
	for i, m := range h.messages {
		out[i] = m.text
	}
	return out
}

// Update ages messages by dt seconds.
func (h *HUD) Update(dt float64) {
	kept := h.messages[:0]
	for _, m := range h.messages {
		m.ttl -= dt
		if m.ttl > 0 {
			kept = append(kept, m)
		}
	}
	h.messages = kept
}

// Draw renders the status panel and messages.
func (h *HUD) Draw(screen render.Image, st Status) {
	h.panelHeight = h.calculatePanelHeight()
	x, y := h.calculatePosition()

	h.drawPanel(screen, x, y, h.panelWidth, h.panelHeight)
	currentY := y + 8

	phase := "Night"
	if st.Day {
		phase = "Day"
	}
	h.drawText(screen, phase, x+8, currentY, color.RGBA{255, 255, 200, 255})
	currentY += 16
	currentY = h.drawBar(screen, x+8, currentY, h.panelWidth-16, st.CyclePercent, phaseColor(st.Day))
	currentY += 4

	h.drawDivider(screen, x+4, currentY, h.panelWidth-8)
	currentY += 8

	if h.config.ShowPosition {
		h.drawText(screen, fmt.Sprintf("Pos: %.1f, %.1f", st.Position.X, st.Position.Y), x+8, currentY, color.RGBA{180, 180, 180, 255})
		currentY += 16
	}
	if h.config.ShowSpeed {
		h.drawText(screen, fmt.Sprintf("Speed: %.1f", st.Speed), x+8, currentY, color.RGBA{180, 180, 180, 255})
		currentY += 16
	}
	h.drawText(screen, fmt.Sprintf("Enemies: %d/%d", st.EnemiesAlive, st.EnemiesTotal), x+8, currentY, color.RGBA{255, 150, 100, 255})
	currentY += 16
	if st.DebugHitbox {
		h.drawText(screen, "Hitboxes", x+8, currentY, color.RGBA{100, 255, 100, 255})
	}

	h.drawMessages(screen)
}

// calculatePosition returns the top-left corner of the HUD panel
func (h *HUD) calculatePosition() (int, int) {
	padding := 10

	switch h.config.Position {
	case "top-right":
		return h.screenWidth - h.panelWidth - padding, padding
	case "bottom-left":
		return padding, h.screenHeight - h.panelHeight - padding
	case "bottom-right":
		return h.screenWidth - h.panelWidth - padding, h.screenHeight - h.panelHeight - padding
	default: // "top-left"
		return padding, padding
	}
}

// calculatePanelHeight calculates the height needed for all HUD elements
func (h *HUD) calculatePanelHeight() int {
	height := 8 + 16 + 12 + 4 + 8 // Padding, phase, bar, divider
	if h.config.ShowPosition {
		height += 16
	}
	if h.config.ShowSpeed {
		height += 16
	}
	height += 16 + 16 // Enemies, debug flag
	return height + 8
}

func phaseColor(day bool) color.RGBA {
	if day {
		return color.RGBA{230, 200, 80, 255}
	}
	return color.RGBA{90, 110, 200, 255}
}

// drawPanel draws the semi-transparent background panel with a border
func (h *HUD) drawPanel(screen render.Image, x, y, w, ht int) {
	alpha := uint8(h.config.Opacity * 255)
	h.renderer.FillRect(screen, float32(x), float32(y), float32(w), float32(ht), color.RGBA{20, 20, 30, alpha})
	h.renderer.StrokeRect(screen, float32(x), float32(y), float32(w), float32(ht), 1, color.RGBA{60, 60, 80, alpha})
}

// drawBar draws a progress bar filled to pct and returns the next y.
func (h *HUD) drawBar(screen render.Image, x, y, width int, pct float64, fill color.RGBA) int {
	barHeight := 12
	h.renderer.FillRect(screen, float32(x), float32(y), float32(width), float32(barHeight), color.RGBA{40, 40, 50, 255})
	pct = max(0, min(1, pct))
	if pct > 0 {
		fillWidth := max(1, int(float64(width-2)*pct))
		h.renderer.FillRect(screen, float32(x+1), float32(y+1), float32(fillWidth), float32(barHeight-2), fill)
	}
	return y + barHeight + 4
}

// drawDivider draws a horizontal line
func (h *HUD) drawDivider(screen render.Image, x, y, width int) {
	h.renderer.StrokeLine(screen, float32(x), float32(y), float32(x+width), float32(y), 1, color.RGBA{80, 80, 100, 200})
}

// drawText draws text with a shadow for readability
func (h *HUD) drawText(screen render.Image, text string, x, y int, clr color.RGBA) {
	h.renderer.DrawText(screen, text, x+1, y+1, color.RGBA{0, 0, 0, 200}, 1.0)
	h.renderer.DrawText(screen, text, x, y, clr, 1.0)
}

func (h *HUD) drawMessages(screen render.Image) {
	y := h.screenHeight - 24*len(h.messages) - 10
	for _, m := range h.messages {
		h.drawText(screen, m.text, 12, y, color.RGBA{255, 255, 255, 255})
		y += 24
	}
}

// Inventory panel layout.
const (
	slotSize    = 40
	slotPadding = 6
)

// DrawInventory draws the inventory grid centred on screen when it is open.
func (h *HUD) DrawInventory(screen render.Image, inv *inventory.Inventory) {
	if inv == nil || !inv.IsOpen() {
		return
	}
	rows, cols := inv.Rows(), inv.Cols()
	gridW := cols*slotSize + (cols+1)*slotPadding
	gridH := rows*slotSize + (rows+1)*slotPadding
	headerH := 24
	x := (h.screenWidth - gridW) / 2
	y := (h.screenHeight - gridH - headerH) / 2

	h.drawPanel(screen, x, y, gridW, gridH+headerH)
	h.drawText(screen, "Inventory", x+slotPadding, y+4, color.RGBA{255, 255, 200, 255})

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sx := x + slotPadding + c*(slotSize+slotPadding)
			sy := y + headerH + slotPadding + r*(slotSize+slotPadding)
			h.renderer.FillRect(screen, float32(sx), float32(sy), slotSize, slotSize, color.RGBA{45, 45, 60, 255})
			h.renderer.StrokeRect(screen, float32(sx), float32(sy), slotSize, slotSize, 1, color.RGBA{90, 90, 110, 255})

			slot, _ := inv.SlotAt(r, c)
			if slot.Empty() {
				continue
			}
			if icon, ok := h.Icons[slot.Item]; ok {
				iw, ih := icon.Size()
				geoM := render.NewGeoM()
				geoM.Translate(float64(sx+(slotSize-iw)/2), float64(sy+(slotSize-ih)/2))
				screen.DrawImage(icon, &render.DrawImageOptions{GeoM: geoM})
			} else {
				name := inv.DisplayName(slot.Item)
				if len(name) > 4 {
					name = name[:4]
				}
				h.drawText(screen, name, sx+3, sy+3, color.RGBA{220, 220, 220, 255})
			}
			if slot.Count > 1 {
				n := strconv.Itoa(slot.Count)
				tw, th := h.renderer.MeasureText(n, 1.0)
				h.drawText(screen, n, sx+slotSize-tw-2, sy+slotSize-th, color.RGBA{255, 255, 255, 255})
			}
		}
	}
}
