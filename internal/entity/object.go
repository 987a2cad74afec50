// Package entity implements the game's spatial object model: positions and
// rotations in tile space, sprite pivots, conservative axis-aligned collision
// boxes and atomic movement resolution, plus the actors built on top of it
// (player, enemies, statues and the player's swipe).
package entity

import (
	"errors"
	"fmt"
	"math"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/render"
)

// ErrNonFinite is returned when an object would be created with a NaN or
// infinite position or angle.
var ErrNonFinite = errors.New("entity: non-finite position or angle")

// Origin is an optional pixel offset within a sprite. When set it is the
// rotation pivot and the point anchored to the object's tile position; when
// unset the sprite's top-left corner is the anchor.
type Origin struct {
	offset geom.Vec
	set    bool
}

// NoOrigin returns an unset origin.
func NoOrigin() Origin { return Origin{} }

// OriginAt returns an origin at pixel (x, y) of the sprite.
func OriginAt(x, y float64) Origin {
	return Origin{offset: geom.V(x, y), set: true}
}

// Get returns the pixel offset and whether the origin is set.
func (o Origin) Get() (geom.Vec, bool) { return o.offset, o.set }

// Offset returns the pixel offset, or (0, 0) when unset.
func (o Origin) Offset() geom.Vec {
	if !o.set {
		return geom.Zero
	}
	return o.offset
}

// IsSet reports whether the origin is set.
func (o Origin) IsSet() bool { return o.set }

// Object is anything placed in the level: it has a position, a rotation, an
// optional sprite pivot and an optional collision box.
type Object struct {
	Name string

	// Pos is the anchor position in tile units.
	Pos geom.Vec

	// Collision is nil for objects that never collide.
	Collision *CollisionBox

	Origin Origin
	Sprite render.Image

	// DebugHitbox draws the collision overlay for this object.
	DebugHitbox bool

	angle float64
}

// NewObject returns an object at (x, y) with a solid 1x1 collision box.
func NewObject(name string, x, y float64) (*Object, error) {
	pos := geom.V(x, y)
	if !geom.IsFinite(pos) {
		return nil, fmt.Errorf("creating %s at (%v, %v): %w", name, x, y, ErrNonFinite)
	}
	return &Object{
		Name:      name,
		Pos:       pos,
		Collision: NewCollisionBox(0, 0, 1, 1, true),
	}, nil
}

// Angle returns the rotation in degrees, always within [0, 360).
func (o *Object) Angle() float64 { return o.angle }

// SetAngle sets the rotation in degrees. The value is normalized into
// [0, 360) here so every reader sees the same angle.
func (o *Object) SetAngle(deg float64) error {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return fmt.Errorf("setting angle of %s: %w", o.Name, ErrNonFinite)
	}
	o.angle = NormalizeAngle(deg)
	return nil
}

// Rotate adds delta degrees to the rotation.
func (o *Object) Rotate(delta float64) error {
	return o.SetAngle(o.angle + delta)
}

// turn adds delta degrees for callers whose inputs are already finite.
func (o *Object) turn(delta float64) {
	o.angle = NormalizeAngle(o.angle + delta)
}

// NormalizeAngle wraps deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	// math.Mod of a tiny negative can round up to exactly 360
	if a >= 360 {
		a = 0
	}
	return a
}

// Right returns the object's local "right" axis in world space.
// At angle 0 it is (1, 0).
func (o *Object) Right() geom.Vec {
	return rightAt(o.angle)
}

// Down returns the object's local "down" axis in world space.
// At angle 0 it is (0, 1).
func (o *Object) Down() geom.Vec {
	return downAt(o.angle)
}

func rightAt(deg float64) geom.Vec {
	rad := deg * math.Pi / 180
	return geom.V(math.Cos(rad), -math.Sin(rad))
}

func downAt(deg float64) geom.Vec {
	rad := deg * math.Pi / 180
	return geom.V(math.Sin(rad), math.Cos(rad))
}

// PosAtPixel converts a point in sprite pixels to its tile-space position,
// following the object's rotation and origin.
func (o *Object) PosAtPixel(px geom.Vec, tileSize float64) geom.Vec {
	rel := geom.Sub(px, o.Origin.Offset())
	if o.angle == 0 {
		return geom.Add(o.Pos, geom.Scale(rel, 1/tileSize))
	}
	p := geom.Add(o.Pos, geom.Scale(o.Right(), rel.X/tileSize))
	return geom.Add(p, geom.Scale(o.Down(), rel.Y/tileSize))
}

// Bounds returns the object's collision AABB at its current position. It
// returns the zero box when the object has no collision box.
func (o *Object) Bounds(tileSize float64) geom.Box {
	if o.Collision == nil {
		return geom.Box{}
	}
	return o.Collision.Bounds(o.angle, o.Origin, o.Pos, tileSize)
}

// IsSolid reports whether the object takes part in collision resolution.
func (o *Object) IsSolid() bool {
	return o.Collision != nil && o.Collision.Solid
}

// SpriteSize returns the sprite dimensions in pixels, or zeros without a sprite.
func (o *Object) SpriteSize() (w, h int) {
	if o.Sprite == nil {
		return 0, 0
	}
	return o.Sprite.Size()
}

// Body implements Actor.
func (o *Object) Body() *Object { return o }

// Update implements Actor. Plain objects are static.
func (o *Object) Update(*Frame) {}
