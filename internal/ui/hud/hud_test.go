package hud

import (
	"image"
	"strings"
	"testing"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/inventory"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/render/rendertest"
)

func TestMessagesExpire(t *testing.T) {
	h := New(rendertest.New(), nil, 800, 600)
	h.Push("saved to %s", "frontier.sav")
	h.Update(1)
	h.Push("second")

	if got := h.Messages(); len(got) != 2 || got[0] != "saved to frontier.sav" {
		t.Fatalf("Expected two messages, got %v", got)
	}
	h.Update(2.5)
	if got := h.Messages(); len(got) != 1 || got[0] != "second" {
		t.Errorf("Expected only the newer message left, got %v", got)
	}
}

func TestMessagesCapped(t *testing.T) {
	h := New(rendertest.New(), nil, 800, 600)
	for i := 0; i < 6; i++ {
		h.Push("m%d", i)
	}
	got := h.Messages()
	if len(got) != 4 || got[0] != "m2" {
		t.Errorf("Expected the newest 4 messages, got %v", got)
	}
}

func TestDrawStatus(t *testing.T) {
	r := rendertest.New()
	screen := r.NewScreen(800, 600)
	h := New(r, nil, 800, 600)

	h.Draw(screen, Status{
		Position:     geom.V(1.5, 2),
		Speed:        3.5,
		Day:          false,
		CyclePercent: 0.5,
		EnemiesAlive: 1,
		EnemiesTotal: 2,
	})

	joined := strings.Join(r.Texts(), "|")
	for _, want := range []string{"Night", "Pos: 1.5, 2.0", "Speed: 3.5", "Enemies: 1/2"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Expected %q in %s", want, joined)
		}
	}
	if strings.Contains(joined, "Hitboxes") {
		t.Error("Expected no debug marker while hitboxes are off")
	}
}

func TestDrawInventory(t *testing.T) {
	r := rendertest.New()
	screen := r.NewScreen(800, 600)
	h := New(r, nil, 800, 600)
	h.Icons["torch"] = r.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 32, 32)))

	inv := inventory.New(2, 3, 99)
	inv.Add("torch", 1)
	inv.Add("berries", 5)

	h.DrawInventory(screen, inv)
	if len(r.Calls) != 0 {
		t.Fatalf("Expected closed inventory not drawn, got %d calls", len(r.Calls))
	}

	inv.SetOpen(true)
	h.DrawInventory(screen, inv)
	if got := r.Count("stroke-rect"); got != 1+6 {
		t.Errorf("Expected panel plus 6 slot outlines, got %d", got)
	}
	if r.Count("image") != 1 {
		t.Errorf("Expected one icon drawn, got %d", r.Count("image"))
	}
	joined := strings.Join(r.Texts(), "|")
	if !strings.Contains(joined, "Berr") || !strings.Contains(joined, "5") {
		t.Errorf("Expected berries label and count, got %s", joined)
	}
}
