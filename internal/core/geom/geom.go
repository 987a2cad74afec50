// Package geom holds the small amount of 2D geometry the game needs: vectors
// (gonum's r2.Vec) and axis-aligned boxes in tile space.
package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a 2D vector. Arithmetic goes through the r2 package functions.
type Vec = r2.Vec

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Zero is the zero vector.
var Zero = Vec{}

// Add returns a+b.
func Add(a, b Vec) Vec { return r2.Add(a, b) }

// Sub returns a-b.
func Sub(a, b Vec) Vec { return r2.Sub(a, b) }

// Scale returns v*f.
func Scale(v Vec, f float64) Vec { return r2.Scale(f, v) }

// Length returns the Euclidean length of v.
func Length(v Vec) float64 { return r2.Norm(v) }

// Distance returns the Euclidean distance between a and b, in the units of
// the inputs (tile units for game objects).
func Distance(a, b Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}

// IsZero reports whether both components are exactly zero.
func IsZero(v Vec) bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite.
func IsFinite(v Vec) bool {
	return finite(v.X) && finite(v.Y)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Box is an axis-aligned rectangle given by its extrema.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewBox returns the box with the given extrema.
func NewBox(minX, minY, maxX, maxY float64) Box {
	return Box{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// BoxAround returns the smallest box containing every point in pts.
// It returns the zero Box when pts is empty.
func BoxAround(pts ...Vec) Box {
	if len(pts) == 0 {
		return Box{}
	}
	b := Box{MinX: pts[0].X, MinY: pts[0].Y, MaxX: pts[0].X, MaxY: pts[0].Y}
	for _, p := range pts[1:] {
		b.MinX = math.Min(b.MinX, p.X)
		b.MinY = math.Min(b.MinY, p.Y)
		b.MaxX = math.Max(b.MaxX, p.X)
		b.MaxY = math.Max(b.MaxY, p.Y)
	}
	return b
}

// Width returns MaxX-MinX.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b Box) Height() float64 { return b.MaxY - b.MinY }

// Min returns the top-left corner.
func (b Box) Min() Vec { return Vec{X: b.MinX, Y: b.MinY} }

// Center returns the midpoint of the box.
func (b Box) Center() Vec {
	return Vec{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Overlaps reports whether a and b share interior area. Boxes that only touch
// along an edge or at a corner do not overlap. The test is symmetric.
func Overlaps(a, b Box) bool {
	return !(a.MinX >= b.MaxX || a.MaxX <= b.MinX ||
		a.MinY >= b.MaxY || a.MaxY <= b.MinY)
}
