package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/config"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/game"
	ebitenrender "github.com/Falmouth-Games-Academy/comp150-game/internal/render/ebiten"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "World seed (0 = use config)")
	level := flag.String("level", "", "JSON level file (empty = use config)")
	debugHitbox := flag.Bool("debug-hitbox", false, "Start with collision overlays on")
	tracePath := flag.String("trace", "", "Write a per-frame CSV trace to this file")
	levelsDir := flag.String("levels", "", "Directory of JSON levels for the level menu (empty = use config)")
	spriteDir := flag.String("sprites", "", "Directory of PNG sprites (empty = use config)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (empty = use config)")
	logJSON := flag.Bool("log-json", false, "Log as JSON instead of text")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Flags override the file
	if *seed != 0 {
		cfg.World.Seed = *seed
	}
	if *level != "" {
		cfg.World.Level = *level
	}
	if *debugHitbox {
		cfg.Debug.Hitbox = true
	}
	if *levelsDir != "" {
		cfg.World.LevelsDir = *levelsDir
	}
	if *spriteDir != "" {
		cfg.Assets.SpriteDir = *spriteDir
	}
	if *logLevel != "" {
		cfg.Debug.LogLevel = *logLevel
	}
	if err := cfg.Refresh(); err != nil {
		slog.Error("invalid settings", "error", err)
		os.Exit(1)
	}

	opts := &slog.HandlerOptions{Level: cfg.Derived.LogLevel}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if *logJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))

	trace, err := telemetry.NewTrace(*tracePath)
	if err != nil {
		slog.Error("failed to open trace", "path", *tracePath, "error", err)
		os.Exit(1)
	}
	defer trace.Close()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	manager := game.NewManager(cfg, renderer, inputMgr, loader, trace)

	engine.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	engine.SetWindowTitle(cfg.Screen.Title)
	engine.SetWindowResizable(true)
	engine.SetTPS(cfg.Screen.TPS)

	slog.Info("starting game",
		"seed", cfg.World.Seed,
		"level", cfg.World.Level,
		"trace", *tracePath,
	)
	if err := engine.RunGame(manager); err != nil {
		slog.Error("game exited with error", "error", err)
		trace.Close()
		os.Exit(1)
	}
	slog.Info("game closed")
}
