package interaction

import (
	"errors"
	"testing"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/entity"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/inventory"
)

const testTileSize = 32.0

// capped accepts at most room items in total.
type capped struct {
	room int
	got  map[string]int
}

func (c *capped) Add(name string, n int) (int, error) {
	take := min(n, c.room)
	c.room -= take
	c.got[name] += take
	if take < n {
		return take, errors.New("full")
	}
	return take, nil
}

func newWorld(t *testing.T, p *Pickup, px, py float64) (*entity.World, *entity.Player) {
	t.Helper()
	player, err := entity.NewPlayer(px, py, entity.DefaultPhysics)
	if err != nil {
		t.Fatal(err)
	}
	w := entity.NewWorld()
	w.Add(player)
	w.Add(p)
	return w, player
}

func TestPickupGivesItems(t *testing.T) {
	inv := inventory.New(2, 2, 10)
	p, err := NewPickup(0, 0, "berries", 3, inv)
	if err != nil {
		t.Fatal(err)
	}
	var taken int
	p.OnPickup = func(item string, n int) { taken += n }

	w, player := newWorld(t, p, 0.5, 0)
	w.Update(&entity.Frame{DT: 0.1, TileSize: testTileSize, Player: player})

	if inv.Count("berries") != 3 || taken != 3 {
		t.Errorf("Expected 3 berries taken, got %d (callback %d)", inv.Count("berries"), taken)
	}
	if !p.Taken() {
		t.Error("Expected pickup emptied")
	}

	w.Update(&entity.Frame{DT: 0.1, TileSize: testTileSize, Player: player})
	if inv.Count("berries") != 3 {
		t.Errorf("Expected an empty pickup to give nothing, got %d", inv.Count("berries"))
	}
}

func TestPickupIsAGhost(t *testing.T) {
	p, err := NewPickup(1, 0, "torch", 1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.IsSolid() {
		t.Fatal("Expected pickup not to block")
	}
	_, player := newWorld(t, p, 0, 0)
	if !player.Move(player.Right(), []*entity.Object{player.Object, p.Object}, testTileSize) {
		t.Error("Expected the player to walk onto the pickup")
	}
}

func TestPickupNeedsOverlap(t *testing.T) {
	rx := &capped{room: 10, got: map[string]int{}}
	p, err := NewPickup(2, 0, "berries", 1, rx)
	if err != nil {
		t.Fatal(err)
	}
	// The box is inset a quarter tile, so a touching player is well clear.
	w, player := newWorld(t, p, 1, 0)
	w.Update(&entity.Frame{DT: 0, TileSize: testTileSize, Player: player})
	if rx.got["berries"] != 0 {
		t.Errorf("Expected nothing taken without overlap, got %d", rx.got["berries"])
	}
}

func TestPickupPartialWhenFull(t *testing.T) {
	rx := &capped{room: 2, got: map[string]int{}}
	p, err := NewPickup(0, 0, "berries", 5, rx)
	if err != nil {
		t.Fatal(err)
	}
	w, player := newWorld(t, p, 0, 0)
	w.Update(&entity.Frame{DT: 0, TileSize: testTileSize, Player: player})

	if rx.got["berries"] != 2 || p.Count != 3 || p.Taken() {
		t.Errorf("Expected 2 taken and 3 left, got %d taken, %d left", rx.got["berries"], p.Count)
	}

	rx.room = 10
	w.Update(&entity.Frame{DT: 0, TileSize: testTileSize, Player: player})
	if !p.Taken() || rx.got["berries"] != 5 {
		t.Errorf("Expected the rest taken once there is room, got %d left", p.Count)
	}
}

func TestNewPickupDefaults(t *testing.T) {
	if _, err := NewPickup(0, 0, "", 1, nil); err == nil {
		t.Error("Expected error for a pickup without an item")
	}
	p, err := NewPickup(0, 0, "torch", 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Count != 1 || p.Trigger != TriggerEnter {
		t.Errorf("Expected one torch triggered on enter, got %d %q", p.Count, p.Trigger)
	}
}
