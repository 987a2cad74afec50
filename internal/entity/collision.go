package entity

import (
	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
)

// CollisionBox is a rectangle in an object's unrotated local frame, in tile
// units, measured from the sprite's top-left corner.
type CollisionBox struct {
	Offset geom.Vec
	Size   geom.Vec
	// Solid boxes block movement. A non-solid box is a ghost: it is never
	// tested, as mover or as obstacle.
	Solid bool
}

// NewCollisionBox returns a box at local offset (x, y) with the given size.
func NewCollisionBox(x, y, width, height float64, solid bool) *CollisionBox {
	return &CollisionBox{
		Offset: geom.V(x, y),
		Size:   geom.V(width, height),
		Solid:  solid,
	}
}

// Corners returns the four corners of the box in world tile space for an
// object at pos with the given rotation and origin: top-left, top-right,
// bottom-left, bottom-right in the local frame.
func (c *CollisionBox) Corners(angle float64, origin Origin, pos geom.Vec, tileSize float64) [4]geom.Vec {
	// Shift so the box anchors at the same point as the sprite.
	base := geom.Sub(c.Offset, geom.Scale(origin.Offset(), 1/tileSize))
	local := [4]geom.Vec{
		base,
		geom.V(base.X+c.Size.X, base.Y),
		geom.V(base.X, base.Y+c.Size.Y),
		geom.V(base.X+c.Size.X, base.Y+c.Size.Y),
	}

	if angle == 0 {
		for i, p := range local {
			local[i] = geom.Add(pos, p)
		}
		return local
	}

	right, down := rightAt(angle), downAt(angle)
	for i, p := range local {
		w := geom.Add(pos, geom.Scale(right, p.X))
		local[i] = geom.Add(w, geom.Scale(down, p.Y))
	}
	return local
}

// Bounds returns the world-space AABB enclosing the rotated box. This is a
// conservative fit: rotated boxes get a larger axis-aligned envelope.
func (c *CollisionBox) Bounds(angle float64, origin Origin, pos geom.Vec, tileSize float64) geom.Box {
	corners := c.Corners(angle, origin, pos, tileSize)
	return geom.BoxAround(corners[:]...)
}

// Move tries to displace the object by delta tiles. Ghost objects always
// move. Solid objects move only if their box at the destination overlaps no
// other solid object's box at its current position; otherwise the position
// is left untouched and Move returns false. There is no sliding: a blocked
// diagonal move stops on both axes.
func (o *Object) Move(delta geom.Vec, objects []*Object, tileSize float64) bool {
	desired := geom.Add(o.Pos, delta)

	if !o.IsSolid() {
		o.Pos = desired
		return true
	}

	self := o.Collision.Bounds(o.angle, o.Origin, desired, tileSize)
	for _, other := range objects {
		if other == o || !other.IsSolid() {
			continue
		}
		if geom.Overlaps(self, other.Bounds(tileSize)) {
			return false
		}
	}

	o.Pos = desired
	return true
}
