package menu

import (
	"errors"
	"testing"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/render"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/render/rendertest"
)

func newTestMenu(t *testing.T) (*UI, *rendertest.Renderer, *rendertest.Input) {
	t.Helper()
	r := rendertest.New()
	in := rendertest.NewInput()
	return NewMainMenu(r, in, "Frontier"), r, in
}

func TestMainMenuLayout(t *testing.T) {
	u, _, _ := newTestMenu(t)

	m := u.Current()
	if m == nil || m.Name != MainMenuName {
		t.Fatalf("Expected main menu current, got %v", m)
	}
	labels := []string{"Start Game", "Options", "Quit"}
	if len(m.Buttons) != len(labels) {
		t.Fatalf("Expected %d buttons, got %d", len(labels), len(m.Buttons))
	}
	for i, want := range labels {
		b := m.Buttons[i]
		if b.Label != want {
			t.Errorf("Button %d: expected %q, got %q", i, want, b.Label)
		}
		if b.Type.Width != 450 || b.Type.Height != 50 {
			t.Errorf("Button %q: expected default 450x50, got %dx%d", want, b.Type.Width, b.Type.Height)
		}
	}
	if m.Buttons[2].Y != 450 {
		t.Errorf("Expected Quit at y=450, got %d", m.Buttons[2].Y)
	}
}

func TestClickDispatchesBoundAction(t *testing.T) {
	u, _, in := newTestMenu(t)
	started := 0
	u.Bind(ActionStart, func() error { started++; return nil })

	in.CursorX, in.CursorY = 200, 270
	in.Mouse[render.MouseButtonLeft] = true
	if err := u.Update(); err != nil {
		t.Fatal(err)
	}
	// Holding the button does not click again.
	if err := u.Update(); err != nil {
		t.Fatal(err)
	}
	if started != 1 {
		t.Errorf("Expected one start, got %d", started)
	}

	// Clicking outside every button does nothing.
	in.Mouse[render.MouseButtonLeft] = false
	u.Update()
	in.CursorX, in.CursorY = 10, 10
	in.Mouse[render.MouseButtonLeft] = true
	u.Update()
	if started != 1 {
		t.Errorf("Expected click outside buttons ignored, got %d starts", started)
	}
}

func TestQuitReturnsActionError(t *testing.T) {
	u, _, _ := newTestMenu(t)
	u.Bind(ActionQuit, func() error { return render.ErrQuit })

	if err := u.Press("Quit"); !errors.Is(err, render.ErrQuit) {
		t.Errorf("Expected ErrQuit, got %v", err)
	}
}

func TestOptionsAndBack(t *testing.T) {
	u, _, in := newTestMenu(t)

	if err := u.Press("Options"); err != nil {
		t.Fatal(err)
	}
	if u.Current().Name != OptionsMenuName {
		t.Fatalf("Expected Options menu, got %s", u.Current().Name)
	}
	back := u.Current().Buttons[1]
	if back.Type.Width != 200 || back.X != 75 || back.Y != 500 {
		t.Errorf("Expected 200-wide back button at (75, 500), got %+v", back)
	}

	if err := u.Press("Back"); err != nil {
		t.Fatal(err)
	}
	if u.Current().Name != MainMenuName {
		t.Errorf("Expected back at main menu, got %s", u.Current().Name)
	}

	// Escape also goes back.
	u.Press("Options")
	in.Tap(render.KeyEscape)
	u.Update()
	if u.Current().Name != MainMenuName {
		t.Errorf("Expected escape to return to main menu, got %s", u.Current().Name)
	}
	if u.Back() {
		t.Error("Expected no menu before the main menu")
	}
}

func TestKeyboardSelection(t *testing.T) {
	u, _, in := newTestMenu(t)
	var got string
	u.Bind(ActionQuit, func() error { got = "quit"; return nil })

	// Up from the first button wraps to the last.
	in.Tap(render.KeyUp)
	u.Update()
	in.EndFrame()
	if sel := u.Current().Selected(); sel.Label != "Quit" {
		t.Fatalf("Expected Quit selected, got %s", sel.Label)
	}

	in.Tap(render.KeyEnter)
	u.Update()
	if got != "quit" {
		t.Error("Expected enter to activate the selected button")
	}
}

func TestAddButtonErrors(t *testing.T) {
	u := NewUI(rendertest.New(), rendertest.NewInput())
	u.AddButtonType("default", 10, 10)
	if _, err := u.AddButton("Nowhere", "default", "x", 0, 0, ""); err == nil {
		t.Error("Expected error for unknown menu")
	}
	u.AddMenu("Main")
	if _, err := u.AddButton("Main", "huge", "x", 0, 0, ""); err == nil {
		t.Error("Expected error for unknown button type")
	}
	if err := u.SetCurrentMenu("Nowhere"); err == nil {
		t.Error("Expected error for unknown menu")
	}
}

func TestDrawHighlightsSelection(t *testing.T) {
	u, r, _ := newTestMenu(t)
	screen := r.NewScreen(800, 600)
	u.SetButtonLabel(OptionsMenuName, ActionToggleDebug, "Debug Hitboxes: On")

	u.Draw(screen)
	if r.Count("rect") != 3 || r.Count("stroke-rect") != 3 {
		t.Fatalf("Expected 3 filled and outlined buttons, got %d/%d", r.Count("rect"), r.Count("stroke-rect"))
	}
	texts := r.Texts()
	if texts[0] != "Frontier" {
		t.Errorf("Expected title first, got %q", texts[0])
	}
	var fills []any
	for _, c := range r.Calls {
		if c.Op == "rect" {
			fills = append(fills, c.Color)
		}
	}
	if fills[0] == fills[1] {
		t.Error("Expected the selected button drawn in its hover color")
	}

	u.Press("Options")
	r.Reset()
	u.Draw(screen)
	found := false
	for _, s := range r.Texts() {
		if s == "Debug Hitboxes: On" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected relabelled toggle, got %v", r.Texts())
	}
}

func TestAddLevelMenu(t *testing.T) {
	u, _, _ := newTestMenu(t)
	var levels []LevelChoice
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		levels = append(levels, LevelChoice{Label: name, Path: "levels/" + name + ".json"})
	}

	actions, err := u.AddLevelMenu(levels)
	if err != nil {
		t.Fatalf("AddLevelMenu: %v", err)
	}
	if len(actions) != 6 {
		t.Fatalf("Expected generated world plus 5 levels, got %d", len(actions))
	}
	if actions[0] != ActionLevelPrefix || actions[1] != ActionLevelPrefix+"levels/a.json" {
		t.Errorf("Unexpected actions %v", actions)
	}

	m, ok := u.Menu(LevelsMenuName)
	if !ok {
		t.Fatal("Expected a levels menu")
	}
	if len(m.Buttons) != 7 || m.Buttons[6].Action != ActionBack {
		t.Errorf("Expected 6 level buttons and Back, got %d", len(m.Buttons))
	}
	last := m.Buttons[5]
	if last.Y+last.Type.Height > m.Buttons[6].Y {
		t.Errorf("Expected the last level button above Back, got y=%d", last.Y)
	}

	u.Press("Options")
	if err := u.Press("Choose Level"); err != nil {
		t.Fatal(err)
	}
	if u.Current().Name != LevelsMenuName {
		t.Errorf("Expected the levels menu, got %q", u.Current().Name)
	}
}
