package game

import (
	"fmt"
	"image"
	"log/slog"
	"math/rand"
	"path/filepath"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/config"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/core/geom"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/entity"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/interaction"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/inventory"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/render"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/render/fog"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/sprites"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/telemetry"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/ui/hud"
	"github.com/Falmouth-Games-Academy/comp150-game/internal/world/maploader"
)

// NewGame builds a level from cfg: the map, the player, pickups, statues,
// enemies, the swipe and the starting inventory. loader and trace may be nil.
func NewGame(cfg *config.Config, r render.Renderer, input render.InputManager, loader render.ResourceLoader, trace *telemetry.Trace) (*Game, error) {
	gameMap, err := loadMap(cfg.World)
	if err != nil {
		return nil, err
	}
	tileSize := gameMap.TileSize()
	slog.Info("map ready", "name", gameMap.Data.Name, "width", gameMap.Data.Width, "height", gameMap.Data.Height, "tile_size", tileSize)

	g := &Game{
		ScreenWidth:  cfg.Screen.Width,
		ScreenHeight: cfg.Screen.Height,
		Config:       cfg,
		GameMap:      gameMap,
		TileSize:     tileSize,
		World:        entity.NewWorld(),
		Clock:        NewClock(cfg.Timing.MaxDT),
		Fog:          fog.NewManager(cfg.Fog.Period, cfg.Fog.NightAlpha, cfg.Fog.StartDay),
		Renderer:     r,
		InputMgr:     input,
		Loader:       loader,
		Trace:        trace,
		DebugHitbox:  cfg.Debug.Hitbox,
		SavePath:     cfg.Save.Path,
		images:       make(map[string]render.Image),
	}

	spawn := geom.V(cfg.Player.SpawnX, cfg.Player.SpawnY)
	if cfg.World.Level != "" {
		spawn = geom.V(gameMap.Data.PlayerSpawn.X, gameMap.Data.PlayerSpawn.Y)
	}
	physics := entity.Physics{
		MaxSpeed:     cfg.Player.MaxSpeed,
		Acceleration: cfg.Player.Acceleration,
		Friction:     cfg.Player.Friction,
	}
	g.Player, err = entity.NewPlayer(spawn.X, spawn.Y, physics)
	if err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}
	g.Player.Sprite = g.sprite("player", func() image.Image {
		return sprites.Circle(sprites.Palette.Player, sprites.Darken(sprites.Palette.Player, 0.6))
	})
	g.World.Add(g.Player)

	g.setupInventory(cfg.Inventory)

	if err := g.spawnEnemies(cfg, gameMap); err != nil {
		return nil, err
	}
	if err := g.spawnPickups(cfg, gameMap); err != nil {
		return nil, err
	}
	if err := g.placeStatues(cfg.World, gameMap); err != nil {
		return nil, err
	}
	// Enemies go after statues so they update against the full scenery.
	for _, e := range g.Enemies {
		g.World.Add(e)
	}

	if cfg.Swipe.Enabled {
		g.Swipe, err = entity.NewSwipe(g.Player.Object, entity.SwipeConfig{
			SpinRate: cfg.Swipe.SpinRate,
			Damage:   cfg.Swipe.Damage,
			Cooldown: cfg.Swipe.Cooldown,
			Width:    cfg.Swipe.Width,
			Length:   cfg.Swipe.Length,
			Origin:   geom.V(float64(sprites.SwordOrigin.X), float64(sprites.SwordOrigin.Y)),
		})
		if err != nil {
			return nil, fmt.Errorf("creating swipe: %w", err)
		}
		g.Swipe.Sprite = g.sprite("sword", func() image.Image { return sprites.Sword() })
		g.World.Add(g.Swipe)
	}

	g.GameHUD = hud.New(r, hud.DefaultConfig(), g.ScreenWidth, g.ScreenHeight)
	for _, item := range inventory.DefaultItems() {
		name := item.Name
		g.GameHUD.Icons[name] = g.sprite("item_"+name, func() image.Image { return sprites.Item(name) })
	}

	g.UpdateCamera()
	slog.Info("game loaded", "objects", g.World.Len(), "statues", len(g.Statues), "enemies", len(g.Enemies), "pickups", len(g.Pickups))
	return g, nil
}

func loadMap(wc config.WorldConfig) (*maploader.Map, error) {
	if wc.Level != "" {
		m, err := maploader.LoadMap(wc.Level)
		if err != nil {
			return nil, fmt.Errorf("loading level: %w", err)
		}
		return m, nil
	}
	m, err := maploader.Generate(wc.Seed, wc.Width, wc.Height, wc.TileSize, wc.NoiseScale)
	if err != nil {
		return nil, fmt.Errorf("generating map: %w", err)
	}
	return m, nil
}

// spawnEnemies creates the level's enemies, or the configured ones on a
// generated map. Zero stats in a level fall back to the first configured
// enemy.
func (g *Game) spawnEnemies(cfg *config.Config, gameMap *maploader.Map) error {
	var defaults config.EnemyConfig
	if len(cfg.Enemies) > 0 {
		defaults = cfg.Enemies[0]
	}

	spawns := cfg.Enemies
	if cfg.World.Level != "" {
		spawns = make([]config.EnemyConfig, 0, len(gameMap.Data.Enemies))
		for _, s := range gameMap.Data.Enemies {
			ec := config.EnemyConfig{X: s.X, Y: s.Y, Health: s.Health, Speed: s.Speed, Sight: s.Sight}
			if ec.Health == 0 {
				ec.Health = defaults.Health
			}
			if ec.Speed == 0 {
				ec.Speed = defaults.Speed
			}
			if ec.Sight == 0 {
				ec.Sight = defaults.Sight
			}
			spawns = append(spawns, ec)
		}
	}

	sprite := g.sprite("enemy", func() image.Image {
		return sprites.Circle(sprites.Palette.Enemy, sprites.Darken(sprites.Palette.Enemy, 0.6))
	})
	for i, s := range spawns {
		e, err := entity.NewEnemy(s.X, s.Y, entity.EnemyConfig{Health: s.Health, Speed: s.Speed, Sight: s.Sight})
		if err != nil {
			return fmt.Errorf("creating enemy %d: %w", i, err)
		}
		e.Sprite = sprite
		g.Enemies = append(g.Enemies, e)
	}
	return nil
}

// placeStatues uses the level's statues when playing a level. On a
// generated map it scatters wc.Statues statues on integer tiles in [0, StatueSpread], seeded
// by the world seed, never on top of another spawned object.
func (g *Game) placeStatues(wc config.WorldConfig, gameMap *maploader.Map) error {
	sprite := g.sprite("statue", func() image.Image { return sprites.Statue() })
	add := func(x, y float64) error {
		s, err := entity.NewStatue(x, y)
		if err != nil {
			return fmt.Errorf("creating statue: %w", err)
		}
		s.Sprite = sprite
		g.Statues = append(g.Statues, s)
		g.World.Add(s)
		return nil
	}

	if wc.Level != "" {
		for _, p := range gameMap.Data.Statues {
			if err := add(p.X, p.Y); err != nil {
				return err
			}
		}
		return nil
	}

	occupied := []geom.Box{g.Player.Bounds(g.TileSize)}
	for _, e := range g.Enemies {
		occupied = append(occupied, e.Bounds(g.TileSize))
	}
	for _, p := range g.Pickups {
		occupied = append(occupied, p.Bounds(g.TileSize))
	}
	free := func(b geom.Box) bool {
		for _, o := range occupied {
			if geom.Overlaps(b, o) {
				return false
			}
		}
		return true
	}

	rng := rand.New(rand.NewSource(wc.Seed))
	placed := 0
	for attempts := 0; placed < wc.Statues && attempts < wc.Statues*20; attempts++ {
		x := float64(rng.Intn(wc.StatueSpread + 1))
		y := float64(rng.Intn(wc.StatueSpread + 1))
		box := geom.NewBox(x, y, x+1, y+1)
		if !free(box) {
			continue
		}
		if err := add(x, y); err != nil {
			return err
		}
		occupied = append(occupied, box)
		placed++
	}
	if placed < wc.Statues {
		slog.Warn("not enough free tiles for statues", "wanted", wc.Statues, "placed", placed, "spread", wc.StatueSpread)
	}
	return nil
}

// spawnPickups places the level's items, or the configured pickups on a
// generated map. Taking one moves its items into the inventory.
func (g *Game) spawnPickups(cfg *config.Config, gameMap *maploader.Map) error {
	spawns := cfg.Pickups
	if cfg.World.Level != "" {
		spawns = make([]config.PickupConfig, 0, len(gameMap.Data.Items))
		for _, it := range gameMap.Data.Items {
			spawns = append(spawns, config.PickupConfig{X: it.X, Y: it.Y, Item: it.Item, Count: it.Count})
		}
	}

	for i, s := range spawns {
		p, err := interaction.NewPickup(s.X, s.Y, s.Item, s.Count, g.Inventory)
		if err != nil {
			return fmt.Errorf("creating pickup %d: %w", i, err)
		}
		name := s.Item
		p.Sprite = g.sprite("item_"+name, func() image.Image { return sprites.Item(name) })
		p.OnPickup = func(item string, n int) {
			if g.GameHUD != nil {
				g.GameHUD.Push("Picked up %d %s", n, g.Inventory.DisplayName(item))
			}
		}
		g.Pickups = append(g.Pickups, p)
		g.World.Add(p)
	}
	return nil
}

func (g *Game) setupInventory(ic config.InventoryConfig) {
	g.Inventory = inventory.New(ic.Rows, ic.Cols, ic.MaxStack)
	for _, item := range inventory.DefaultItems() {
		g.Inventory.RegisterItem(item)
	}
	g.Inventory.OnChange = g.updateTorch

	for _, start := range ic.Starting {
		if added, err := g.Inventory.Add(start.Item, start.Count); err != nil {
			slog.Warn("starting item did not fit", "item", start.Item, "added", added, "err", err)
		}
	}
	g.updateTorch()
}

// sprite returns the named image, loaded from the configured sprite
// directory when there is one and generated otherwise. Images are cached by
// name.
func (g *Game) sprite(name string, generate func() image.Image) render.Image {
	if img, ok := g.images[name]; ok {
		return img
	}
	var img render.Image
	if dir := g.Config.Assets.SpriteDir; dir != "" && g.Loader != nil {
		path := filepath.Join(dir, name+".png")
		loaded, err := g.Loader.LoadImage(path)
		if err != nil {
			slog.Warn("sprite not loaded, using generated art", "path", path, "err", err)
		} else {
			img = loaded
		}
	}
	if img == nil {
		img = g.Renderer.NewImageFromImage(generate())
	}
	g.images[name] = img
	return img
}
