// Package interaction handles things the player touches in the level. A
// pickup holds a stack of items that moves into a Receiver when the player
// walks over it.
package interaction

import (
	"fmt"
	"log/slog"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/entity"
)

// TriggerType defines what initiates an interaction
type TriggerType string

const (
	TriggerEnter TriggerType = "enter" // Player overlaps the object
)

// Receiver takes items. It returns how many it accepted.
type Receiver interface {
	Add(name string, count int) (int, error)
}

// Pickup is a ghost object carrying Count of Item. Once emptied it stays in
// the world but no longer triggers or draws.
type Pickup struct {
	*entity.Object

	Trigger  TriggerType
	Item     string
	Count    int
	Receiver Receiver

	// OnPickup is called with how many items were taken.
	OnPickup func(item string, n int)
}

// NewPickup returns a pickup with a half-tile box centred in its tile.
func NewPickup(x, y float64, item string, count int, to Receiver) (*Pickup, error) {
	if item == "" {
		return nil, fmt.Errorf("pickup at (%v, %v) has no item", x, y)
	}
	if count <= 0 {
		count = 1
	}
	obj, err := entity.NewObject("pickup:"+item, x, y)
	if err != nil {
		return nil, err
	}
	obj.Collision = entity.NewCollisionBox(0.25, 0.25, 0.5, 0.5, false)
	return &Pickup{
		Object:   obj,
		Trigger:  TriggerEnter,
		Item:     item,
		Count:    count,
		Receiver: to,
	}, nil
}

// Taken reports whether the pickup is empty.
func (p *Pickup) Taken() bool { return p.Count <= 0 }

// Update hands the items over while the player overlaps the pickup. A full
// receiver leaves the rest for a later frame.
func (p *Pickup) Update(f *entity.Frame) {
	if p.Taken() || f.Player == nil || p.Receiver == nil {
		return
	}
	if !geom.Overlaps(p.Bounds(f.TileSize), f.Player.Bounds(f.TileSize)) {
		return
	}

	added, err := p.Receiver.Add(p.Item, p.Count)
	p.Count -= added
	if added > 0 && p.OnPickup != nil {
		p.OnPickup(p.Item, added)
	}
	if err != nil && added > 0 {
		slog.Debug("pickup partly taken", "item", p.Item, "added", added, "left", p.Count, "err", err)
	}
}
