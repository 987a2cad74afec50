package entity

import (
	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
)

// Segment is a line in screen pixels.
type Segment struct {
	A, B geom.Vec
}

// HitboxOverlay describes the debug drawing for one object, in screen pixels.
type HitboxOverlay struct {
	// Box holds the rotated collision rectangle: left, bottom, right, top.
	Box [4]Segment
	// Pivot runs through the horizontal centre of the sprite, top to bottom.
	// It is only set when the object has a sprite.
	Pivot    Segment
	HasPivot bool
	// Marker is the rotation pivot, or the box's first corner without an origin.
	Marker geom.Vec
	// AABB is the conservative collision envelope. Only set when rotated.
	AABB    geom.Box
	HasAABB bool
}

// Hitbox returns the debug overlay for o, or false if it has no collision
// box. camera is the top-left of the view in tile units.
func (o *Object) Hitbox(camera geom.Vec, tileSize float64) (HitboxOverlay, bool) {
	if o.Collision == nil {
		return HitboxOverlay{}, false
	}
	toScreen := func(p geom.Vec) geom.Vec {
		return geom.Scale(geom.Sub(p, camera), tileSize)
	}

	c := o.Collision.Corners(o.angle, o.Origin, o.Pos, tileSize)
	tl, tr, bl, br := toScreen(c[0]), toScreen(c[1]), toScreen(c[2]), toScreen(c[3])

	ov := HitboxOverlay{
		Box: [4]Segment{
			{A: tl, B: bl},
			{A: bl, B: br},
			{A: br, B: tr},
			{A: tr, B: tl},
		},
		Marker: tl,
	}
	if o.Origin.IsSet() {
		ov.Marker = toScreen(o.Pos)
	}

	if w, h := o.SpriteSize(); w > 0 && h > 0 {
		top := o.PosAtPixel(geom.V(float64(w)/2, 0), tileSize)
		bottom := o.PosAtPixel(geom.V(float64(w)/2, float64(h)), tileSize)
		ov.Pivot = Segment{A: toScreen(top), B: toScreen(bottom)}
		ov.HasPivot = true
	}

	if o.angle != 0 {
		b := o.Bounds(tileSize)
		lo := toScreen(geom.V(b.MinX, b.MinY))
		hi := toScreen(geom.V(b.MaxX, b.MaxY))
		ov.AABB = geom.NewBox(lo.X, lo.Y, hi.X, hi.Y)
		ov.HasAABB = true
	}
	return ov, true
}
