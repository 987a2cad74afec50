// Package rendertest provides in-memory fakes of the render interfaces that
// record draw calls, so drawing code can be tested without a window.
package rendertest

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/render"
)

// Call is one recorded drawing operation.
type Call struct {
	Op    string // "circle", "stroke-circle", "rect", "stroke-rect", "line", "text", "image", "fill"
	Dst   *Image
	X, Y  float64
	W, H  float64 // Rect size, or line end point for "line"
	Text  string
	Src   *Image
	Color color.Color
	Alpha float32
	GeoM  *GeoM
}

// Renderer records every call made through it.
type Renderer struct {
	Calls []Call
}

// New returns an empty recording renderer. It also installs the fake GeoM
// as render.NewGeoM.
func New() *Renderer {
	render.NewGeoM = func() render.GeoM { return &GeoM{} }
	return &Renderer{}
}

// Count returns how many calls of op were recorded.
func (r *Renderer) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Texts returns every string drawn, in order.
func (r *Renderer) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == "text" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset forgets recorded calls.
func (r *Renderer) Reset() { r.Calls = nil }

func (r *Renderer) record(c Call) { r.Calls = append(r.Calls, c) }

func asImage(i render.Image) *Image {
	img, ok := i.(*Image)
	if !ok {
		panic(fmt.Sprintf("rendertest: foreign image %T", i))
	}
	return img
}

// NewImage implements render.Renderer.
func (r *Renderer) NewImage(width, height int) render.Image {
	return &Image{r: r, W: width, H: height}
}

// NewImageFromImage implements render.Renderer.
func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	return &Image{r: r, W: b.Dx(), H: b.Dy(), Source: src}
}

// FillCircle implements render.Renderer.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	r.record(Call{Op: "circle", Dst: asImage(dst), X: float64(x), Y: float64(y), W: float64(radius), Color: clr})
}

// StrokeCircle implements render.Renderer.
func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius, _ float32, clr color.Color) {
	r.record(Call{Op: "stroke-circle", Dst: asImage(dst), X: float64(x), Y: float64(y), W: float64(radius), Color: clr})
}

// FillRect implements render.Renderer.
func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	r.record(Call{Op: "rect", Dst: asImage(dst), X: float64(x), Y: float64(y), W: float64(width), H: float64(height), Color: clr})
}

// StrokeRect implements render.Renderer.
func (r *Renderer) StrokeRect(dst render.Image, x, y, width, height, _ float32, clr color.Color) {
	r.record(Call{Op: "stroke-rect", Dst: asImage(dst), X: float64(x), Y: float64(y), W: float64(width), H: float64(height), Color: clr})
}

// StrokeLine implements render.Renderer.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1, _ float32, clr color.Color) {
	r.record(Call{Op: "line", Dst: asImage(dst), X: float64(x0), Y: float64(y0), W: float64(x1), H: float64(y1), Color: clr})
}

// DrawText implements render.Renderer.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, _ float64) {
	r.record(Call{Op: "text", Dst: asImage(dst), X: float64(x), Y: float64(y), Text: text, Color: clr})
}

// MeasureText implements render.Renderer with a fixed 8x16 cell per rune.
func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	if scale <= 0 {
		scale = 1
	}
	return int(float64(len([]rune(text))) * 8 * scale), int(16 * scale)
}

// Image is a fake render.Image.
type Image struct {
	r      *Renderer
	W, H   int
	Source image.Image
	Filled color.Color
	Freed  bool
}

// NewScreen returns an image of the given size bound to r, for use as the
// draw target.
func (r *Renderer) NewScreen(width, height int) *Image {
	return &Image{r: r, W: width, H: height}
}

// Bounds implements render.Image.
func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }

// Size implements render.Image.
func (i *Image) Size() (int, int) { return i.W, i.H }

// Fill implements render.Image.
func (i *Image) Fill(clr color.Color) {
	i.Filled = clr
	i.r.record(Call{Op: "fill", Dst: i, Color: clr})
}

// Clear implements render.Image.
func (i *Image) Clear() { i.Filled = nil }

// DrawImage implements render.Image.
func (i *Image) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	c := Call{Op: "image", Dst: i, Src: asImage(src)}
	if opts != nil {
		c.Alpha = opts.Alpha
		if g, ok := opts.GeoM.(*GeoM); ok {
			c.GeoM = g
			c.X, c.Y = g.Apply(0, 0)
		}
	}
	i.r.record(c)
}

// Dispose implements render.Image.
func (i *Image) Dispose() { i.Freed = true }

// GeoM is a 2D affine matrix matching Ebiten's conventions.
type GeoM struct {
	a, b, c, d, tx, ty float64 // x' = a*x + b*y + tx; y' = c*x + d*y + ty
	set                bool
}

func (g *GeoM) init() {
	if !g.set {
		g.a, g.d, g.set = 1, 1, true
	}
}

// Translate implements render.GeoM.
func (g *GeoM) Translate(tx, ty float64) {
	g.init()
	g.tx += tx
	g.ty += ty
}

// Scale implements render.GeoM.
func (g *GeoM) Scale(sx, sy float64) {
	g.init()
	g.a, g.b, g.tx = g.a*sx, g.b*sx, g.tx*sx
	g.c, g.d, g.ty = g.c*sy, g.d*sy, g.ty*sy
}

// Rotate implements render.GeoM.
func (g *GeoM) Rotate(theta float64) {
	g.init()
	sin, cos := math.Sincos(theta)
	a, b, c, d, tx, ty := g.a, g.b, g.c, g.d, g.tx, g.ty
	g.a, g.b, g.tx = cos*a-sin*c, cos*b-sin*d, cos*tx-sin*ty
	g.c, g.d, g.ty = sin*a+cos*c, sin*b+cos*d, sin*tx+cos*ty
}

// Reset implements render.GeoM.
func (g *GeoM) Reset() { *g = GeoM{} }

// Apply transforms (x, y).
func (g *GeoM) Apply(x, y float64) (float64, float64) {
	g.init()
	return g.a*x + g.b*y + g.tx, g.c*x + g.d*y + g.ty
}

// Input is a scriptable render.InputManager. Keys in Pressed are held;
// keys in Just were pressed this frame.
type Input struct {
	Pressed map[render.Key]bool
	Just    map[render.Key]bool
	Mouse   map[render.MouseButton]bool
	CursorX int
	CursorY int
}

// NewInput returns an input with nothing pressed.
func NewInput() *Input {
	return &Input{
		Pressed: make(map[render.Key]bool),
		Just:    make(map[render.Key]bool),
		Mouse:   make(map[render.MouseButton]bool),
	}
}

// Tap marks key as just pressed for the next frame.
func (in *Input) Tap(key render.Key) { in.Just[key] = true }

// EndFrame clears just-pressed keys.
func (in *Input) EndFrame() { in.Just = make(map[render.Key]bool) }

// IsKeyPressed implements render.InputManager.
func (in *Input) IsKeyPressed(key render.Key) bool { return in.Pressed[key] || in.Just[key] }

// IsKeyJustPressed implements render.InputManager.
func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.Just[key] }

// GetCursorPosition implements render.InputManager.
func (in *Input) GetCursorPosition() (int, int) { return in.CursorX, in.CursorY }

// IsMouseButtonPressed implements render.InputManager.
func (in *Input) IsMouseButtonPressed(b render.MouseButton) bool { return in.Mouse[b] }
