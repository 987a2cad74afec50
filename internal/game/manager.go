package game

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/config"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/gamescanner"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/render"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/telemetry"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/ui/menu"
)

// Manager handles the overall game state, including menu and gameplay.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int
	State        State
	Menu         *menu.UI
	Game         *Game
	Config       *config.Config
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Loader       render.ResourceLoader
	Trace        *telemetry.Trace

	debugHitbox bool
}

// NewManager creates a game manager showing the main menu. loader and trace
// may be nil.
func NewManager(cfg *config.Config, r render.Renderer, input render.InputManager, loader render.ResourceLoader, trace *telemetry.Trace) *Manager {
	m := &Manager{
		ScreenWidth:  cfg.Screen.Width,
		ScreenHeight: cfg.Screen.Height,
		State:        StateMainMenu,
		Config:       cfg,
		Renderer:     r,
		InputMgr:     input,
		Loader:       loader,
		Trace:        trace,
		debugHitbox:  cfg.Debug.Hitbox,
	}

	m.Menu = menu.NewMainMenu(r, input, cfg.Screen.Title)
	m.Menu.Bind(menu.ActionStart, m.start)
	m.Menu.Bind(menu.ActionQuit, func() error {
		slog.Info("quit selected")
		return render.ErrQuit
	})
	m.Menu.Bind(menu.ActionToggleDebug, func() error {
		m.SetDebugHitbox(!m.debugHitbox)
		return nil
	})
	m.SetDebugHitbox(m.debugHitbox)
	m.addLevelSelect()
	return m
}

// addLevelSelect offers the levels found in the configured directory. With
// none, the options menu keeps only the debug toggle.
func (m *Manager) addLevelSelect() {
	dir := m.Config.World.LevelsDir
	if dir == "" {
		return
	}
	levels, err := gamescanner.ScanLevels(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no levels directory", "dir", dir)
		} else {
			slog.Warn("scanning levels", "dir", dir, "err", err)
		}
		return
	}
	if len(levels) == 0 {
		return
	}

	choices := make([]menu.LevelChoice, len(levels))
	for i, l := range levels {
		choices[i] = menu.LevelChoice{Label: l.Name, Path: l.Path}
	}
	actions, err := m.Menu.AddLevelMenu(choices)
	if err != nil {
		slog.Warn("building level menu", "err", err)
		return
	}
	for _, action := range actions {
		path := strings.TrimPrefix(action, menu.ActionLevelPrefix)
		m.Menu.Bind(action, func() error { return m.PlayLevel(path) })
	}
	slog.Info("levels found", "dir", dir, "count", len(levels))
}

// PlayLevel replaces any running game with the level at path, or with a
// generated world when path is empty.
func (m *Manager) PlayLevel(path string) error {
	prev := m.Config.World.Level
	m.Config.World.Level = path
	m.Game = nil
	if err := m.start(); err != nil {
		m.Config.World.Level = prev
		return err
	}
	slog.Info("level selected", "level", path)
	return nil
}

// start loads a level on first use and resumes it afterwards.
func (m *Manager) start() error {
	if m.Game == nil {
		if err := m.LoadGame(); err != nil {
			return err
		}
		m.Menu.SetButtonLabel(menu.MainMenuName, menu.ActionStart, "Resume Game")
	}
	m.Game.Clock.Reset()
	m.State = StatePlaying
	return nil
}

// LoadGame builds a fresh level from the manager's config.
func (m *Manager) LoadGame() error {
	g, err := NewGame(m.Config, m.Renderer, m.InputMgr, m.Loader, m.Trace)
	if err != nil {
		return err
	}
	g.Resize(m.ScreenWidth, m.ScreenHeight)
	g.SetDebugHitbox(m.debugHitbox)
	m.Game = g
	return nil
}

// SetDebugHitbox sets the collision overlay for the menu and any running game.
func (m *Manager) SetDebugHitbox(on bool) {
	m.debugHitbox = on
	label := "Debug Hitboxes: Off"
	if on {
		label = "Debug Hitboxes: On"
	}
	m.Menu.SetButtonLabel(menu.OptionsMenuName, menu.ActionToggleDebug, label)
	if m.Game != nil {
		m.Game.SetDebugHitbox(on)
	}
}

// Update updates the game state.
func (m *Manager) Update() error {
	switch m.State {
	case StateMainMenu:
		return m.Menu.Update()
	case StatePlaying:
		if m.Game == nil {
			m.State = StateMainMenu
			return nil
		}
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			m.State = StateMainMenu
			_ = m.Menu.SetCurrentMenu(menu.MainMenuName)
			return nil
		}
		err := m.Game.Update()
		// F3 in game flips the overlay; keep the options label in step.
		if m.Game.DebugHitbox != m.debugHitbox {
			m.SetDebugHitbox(m.Game.DebugHitbox)
		}
		return err
	}
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	switch m.State {
	case StateMainMenu:
		m.Menu.Draw(screen)
	case StatePlaying:
		if m.Game != nil {
			m.Game.Draw(screen)
		}
	}
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != m.ScreenWidth || outsideHeight != m.ScreenHeight {
		m.ScreenWidth = outsideWidth
		m.ScreenHeight = outsideHeight
		if m.Game != nil {
			m.Game.Resize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}
