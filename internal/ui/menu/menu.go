// Package menu implements named menus of typed buttons. A button type fixes
// a button's size; a button's action is a name bound to a function at
// runtime, so menus can be declared before the game that handles them.
package menu

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/render"
)

// Built-in actions.
const (
	// ActionBack returns to the previous menu.
	ActionBack = "back"
	// ActionOpenPrefix opens the named menu: "open:Options".
	ActionOpenPrefix = "open:"
)

// ButtonType defines the size and colors shared by a group of buttons.
type ButtonType struct {
	Name          string
	Width, Height int
	Fill          color.RGBA
	Hover         color.RGBA
	Border        color.RGBA
}

// Button is a clickable label in a menu.
type Button struct {
	Label  string
	Type   *ButtonType
	X, Y   int
	Action string
}

// Contains reports whether screen point (x, y) is on the button.
func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Type.Width && y >= b.Y && y < b.Y+b.Type.Height
}

// Menu is a named screen of buttons.
type Menu struct {
	Name     string
	Title    string
	Buttons  []*Button
	selected int
}

// Selected returns the keyboard-selected button, or nil for an empty menu.
func (m *Menu) Selected() *Button {
	if len(m.Buttons) == 0 {
		return nil
	}
	return m.Buttons[m.selected]
}

// UI holds every menu and the current one.
type UI struct {
	renderer render.Renderer
	input    render.InputManager

	types   map[string]*ButtonType
	menus   map[string]*Menu
	actions map[string]func() error
	current string
	history []string

	Background color.RGBA
	TextColor  color.RGBA

	lastMouseClick bool
	hovered        *Button
}

// NewUI creates an empty menu system.
func NewUI(r render.Renderer, input render.InputManager) *UI {
	return &UI{
		renderer:   r,
		input:      input,
		types:      make(map[string]*ButtonType),
		menus:      make(map[string]*Menu),
		actions:    make(map[string]func() error),
		Background: color.RGBA{20, 20, 30, 255},
		TextColor:  color.RGBA{255, 255, 255, 255},
	}
}

// AddButtonType registers a button size under name.
func (u *UI) AddButtonType(name string, width, height int) *ButtonType {
	bt := &ButtonType{
		Name:   name,
		Width:  width,
		Height: height,
		Fill:   color.RGBA{50, 60, 80, 255},
		Hover:  color.RGBA{80, 110, 150, 255},
		Border: color.RGBA{200, 200, 200, 255},
	}
	u.types[name] = bt
	return bt
}

// AddMenu creates an empty menu. Its title defaults to its name.
func (u *UI) AddMenu(name string) *Menu {
	m := &Menu{Name: name, Title: name}
	u.menus[name] = m
	return m
}

// AddButton adds a button of a registered type to a menu.
func (u *UI) AddButton(menuName, typeName, label string, x, y int, action string) (*Button, error) {
	m, ok := u.menus[menuName]
	if !ok {
		return nil, fmt.Errorf("adding button %q: no menu %q", label, menuName)
	}
	bt, ok := u.types[typeName]
	if !ok {
		return nil, fmt.Errorf("adding button %q: no button type %q", label, typeName)
	}
	b := &Button{Label: label, Type: bt, X: x, Y: y, Action: action}
	m.Buttons = append(m.Buttons, b)
	return b, nil
}

// SetButtonLabel relabels every button in menuName bound to action.
func (u *UI) SetButtonLabel(menuName, action, label string) {
	m, ok := u.menus[menuName]
	if !ok {
		return
	}
	for _, b := range m.Buttons {
		if b.Action == action {
			b.Label = label
		}
	}
}

// Bind attaches fn to an action name, replacing any earlier binding.
func (u *UI) Bind(action string, fn func() error) {
	u.actions[action] = fn
}

// SetCurrentMenu switches to the named menu, remembering the previous one
// for ActionBack.
func (u *UI) SetCurrentMenu(name string) error {
	m, ok := u.menus[name]
	if !ok {
		return fmt.Errorf("no menu %q", name)
	}
	if u.current != "" && u.current != name {
		u.history = append(u.history, u.current)
	}
	u.current = name
	m.selected = 0
	return nil
}

// Back returns to the previous menu. It reports false at the root.
func (u *UI) Back() bool {
	if len(u.history) == 0 {
		return false
	}
	u.current = u.history[len(u.history)-1]
	u.history = u.history[:len(u.history)-1]
	return true
}

// Current returns the current menu, or nil before one is set.
func (u *UI) Current() *Menu {
	return u.menus[u.current]
}

// Menu returns a menu by name.
func (u *UI) Menu(name string) (*Menu, bool) {
	m, ok := u.menus[name]
	return m, ok
}

// Update handles one frame of mouse and keyboard input. Errors from bound
// actions are returned unchanged, so render.ErrQuit passes through.
func (u *UI) Update() error {
	m := u.Current()
	if m == nil {
		return nil
	}

	mouseX, mouseY := u.input.GetCursorPosition()
	mousePressed := u.input.IsMouseButtonPressed(render.MouseButtonLeft)

	// Detect mouse click (button pressed this frame but not last frame)
	mouseClicked := mousePressed && !u.lastMouseClick
	u.lastMouseClick = mousePressed

	u.hovered = nil
	for i, b := range m.Buttons {
		if b.Contains(mouseX, mouseY) {
			u.hovered = b
			if mouseClicked {
				m.selected = i
				return u.activate(b)
			}
		}
	}

	n := len(m.Buttons)
	if n == 0 {
		return nil
	}
	if u.input.IsKeyJustPressed(render.KeyUp) {
		m.selected = (m.selected + n - 1) % n
	}
	if u.input.IsKeyJustPressed(render.KeyDown) {
		m.selected = (m.selected + 1) % n
	}
	if u.input.IsKeyJustPressed(render.KeySpace) || u.input.IsKeyJustPressed(render.KeyEnter) {
		return u.activate(m.Selected())
	}
	if u.input.IsKeyJustPressed(render.KeyEscape) {
		u.Back()
	}
	return nil
}

// Press activates the first button in the current menu with the given
// label, as if it were clicked.
func (u *UI) Press(label string) error {
	m := u.Current()
	if m == nil {
		return fmt.Errorf("no current menu")
	}
	for _, b := range m.Buttons {
		if b.Label == label {
			return u.activate(b)
		}
	}
	return fmt.Errorf("no button %q in menu %q", label, m.Name)
}

func (u *UI) activate(b *Button) error {
	if fn, ok := u.actions[b.Action]; ok {
		return fn()
	}
	switch {
	case b.Action == ActionBack:
		u.Back()
		return nil
	case strings.HasPrefix(b.Action, ActionOpenPrefix):
		return u.SetCurrentMenu(strings.TrimPrefix(b.Action, ActionOpenPrefix))
	}
	slog.Warn("menu button has no action", "menu", u.current, "button", b.Label, "action", b.Action)
	return nil
}

// Draw renders the current menu.
func (u *UI) Draw(screen render.Image) {
	screen.Fill(u.Background)
	m := u.Current()
	if m == nil {
		return
	}

	w, _ := screen.Size()
	tw, _ := u.renderer.MeasureText(m.Title, 3.0)
	u.renderer.DrawText(screen, m.Title, (w-tw)/2, 80, u.TextColor, 3.0)

	for i, b := range m.Buttons {
		fill := b.Type.Fill
		if b == u.hovered || i == m.selected {
			fill = b.Type.Hover
		}
		x, y := float32(b.X), float32(b.Y)
		bw, bh := float32(b.Type.Width), float32(b.Type.Height)
		u.renderer.FillRect(screen, x, y, bw, bh, fill)
		u.renderer.StrokeRect(screen, x, y, bw, bh, 2, b.Type.Border)

		lw, lh := u.renderer.MeasureText(b.Label, 1.5)
		u.renderer.DrawText(screen, b.Label, b.X+(b.Type.Width-lw)/2, b.Y+(b.Type.Height-lh)/2, u.TextColor, 1.5)
	}
}

// Menu and action names used by the game.
const (
	MainMenuName    = "Main Menu"
	OptionsMenuName = "Options"
	LevelsMenuName  = "Levels"

	ActionStart       = "start"
	ActionQuit        = "quit"
	ActionToggleDebug = "toggle_debug"
	// ActionLevelPrefix plays a level file: "level:levels/clearing.json".
	// An empty path plays a generated world.
	ActionLevelPrefix = "level:"
)

// LevelChoice is one entry in the level select menu.
type LevelChoice struct {
	Label string
	Path  string
}

// maxLevelButtons is how many level buttons fit above Back.
const maxLevelButtons = 5

// AddLevelMenu adds a level select menu listing a generated world and up to
// five level files, and links it from the options menu. It returns the
// actions to bind, one per button, in display order.
func (u *UI) AddLevelMenu(levels []LevelChoice) ([]string, error) {
	if _, ok := u.menus[OptionsMenuName]; !ok {
		return nil, fmt.Errorf("adding level menu: no menu %q", OptionsMenuName)
	}
	if len(levels) > maxLevelButtons {
		slog.Warn("too many levels for the menu", "found", len(levels), "shown", maxLevelButtons)
		levels = levels[:maxLevelButtons]
	}
	choices := append([]LevelChoice{{Label: "Generated World"}}, levels...)

	u.AddMenu(LevelsMenuName).Title = "Choose Level"
	actions := make([]string, 0, len(choices))
	for i, c := range choices {
		action := ActionLevelPrefix + c.Path
		if _, err := u.AddButton(LevelsMenuName, "default", c.Label, 150, 100+i*65, action); err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	if _, err := u.AddButton(LevelsMenuName, "back", "Back", 75, 500, ActionBack); err != nil {
		return nil, err
	}
	if _, err := u.AddButton(OptionsMenuName, "default", "Choose Level", 150, 350, ActionOpenPrefix+LevelsMenuName); err != nil {
		return nil, err
	}
	return actions, nil
}

// NewMainMenu builds the game's menus: a main menu with Start Game,
// Options and Quit, and an options menu with a debug toggle and Back.
func NewMainMenu(r render.Renderer, input render.InputManager, title string) *UI {
	u := NewUI(r, input)
	u.AddButtonType("default", 450, 50)
	u.AddButtonType("back", 200, 50)

	mainMenu := u.AddMenu(MainMenuName)
	mainMenu.Title = title
	// Declared buttons always reference the types and menus above.
	must := func(_ *Button, err error) {
		if err != nil {
			panic(err)
		}
	}
	must(u.AddButton(MainMenuName, "default", "Start Game", 150, 250, ActionStart))
	must(u.AddButton(MainMenuName, "default", "Options", 150, 350, ActionOpenPrefix+OptionsMenuName))
	must(u.AddButton(MainMenuName, "default", "Quit", 150, 450, ActionQuit))

	u.AddMenu(OptionsMenuName)
	must(u.AddButton(OptionsMenuName, "default", "Debug Hitboxes: Off", 150, 250, ActionToggleDebug))
	must(u.AddButton(OptionsMenuName, "back", "Back", 75, 500, ActionBack))

	_ = u.SetCurrentMenu(MainMenuName)
	return u
}
