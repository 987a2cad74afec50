package gamescanner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeLevel(t *testing.T, dir, file, name string) {
	t.Helper()
	level := `{"name": "` + name + `", "width": 2, "height": 1, "tile_size": 32, "tiles": [["grass", "sand"]]}`
	if err := os.WriteFile(filepath.Join(dir, file), []byte(level), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanLevels(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b.json", "ruins")
	writeLevel(t, dir, "a.JSON", "meadow")
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"name": "x"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a level"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	levels, err := ScanLevels(dir)
	if err != nil {
		t.Fatalf("ScanLevels: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("Expected 2 levels, got %d: %+v", len(levels), levels)
	}
	if levels[0].Name != "meadow" || levels[1].Name != "ruins" {
		t.Errorf("Expected levels sorted by name, got %q, %q", levels[0].Name, levels[1].Name)
	}
	if levels[0].Path != filepath.Join(dir, "a.JSON") || levels[0].Width != 2 || levels[0].Height != 1 {
		t.Errorf("Unexpected entry %+v", levels[0])
	}
}

func TestScanLevelsMissingDir(t *testing.T) {
	_, err := ScanLevels(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected a not-exist error, got %v", err)
	}
}
