package gamescanner

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/world/maploader"
)

// LevelEntry represents a playable level found in the levels directory
type LevelEntry struct {
	Name   string // Display name from the level file
	Path   string // File path, usable as world.level
	Width  int
	Height int
}

// ScanLevels finds every valid JSON level directly inside levelsPath,
// sorted by name. Files that fail to load are logged and skipped.
func ScanLevels(levelsPath string) ([]LevelEntry, error) {
	entries, err := os.ReadDir(levelsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read levels directory: %w", err)
	}

	var levels []LevelEntry

	for _, entry := range entries {
		// Skip directories and hidden files
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !strings.HasSuffix(strings.ToLower(name), ".json") {
			continue
		}

		path := filepath.Join(levelsPath, name)
		m, err := maploader.LoadMap(path)
		if err != nil {
			slog.Warn("skipping level", "path", path, "err", err)
			continue
		}
		levels = append(levels, LevelEntry{
			Name:   m.Data.Name,
			Path:   path,
			Width:  m.Data.Width,
			Height: m.Data.Height,
		})
	}

	sort.Slice(levels, func(i, j int) bool {
		if levels[i].Name != levels[j].Name {
			return levels[i].Name < levels[j].Name
		}
		return levels[i].Path < levels[j].Path
	})
	return levels, nil
}
