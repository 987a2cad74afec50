// Package save reads and writes quick-save files: a JSON header line and a
// JSON game state, zstd-compressed.
package save

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/Falmouth-Games-Academy/comp150-game/internal/inventory"
)

// Format identifies save files.
const (
	Format  = "frontier-save"
	Version = 1
)

// ErrNoSave is returned when there is no save file to load.
var ErrNoSave = errors.New("no save file")

// ErrIncompatible is returned for files of another format or version.
var ErrIncompatible = errors.New("incompatible save file")

// Header is the first line of a save file.
type Header struct {
	Format  string    `json:"format"`
	Version int       `json:"version"`
	SavedAt time.Time `json:"saved_at"`
}

// Body is a saved actor position and motion, in tiles.
type Body struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	VX    float64 `json:"vx,omitempty"`
	VY    float64 `json:"vy,omitempty"`
	Angle float64 `json:"angle,omitempty"`
}

// EnemyState is a saved enemy.
type EnemyState struct {
	Body
	Health int `json:"health"`
}

// State is everything a quick-save restores. Statues and the map are
// rebuilt from the seed or level, so they are not stored.
type State struct {
	Seed      int64            `json:"seed"`
	Level     string           `json:"level,omitempty"`
	Player    Body             `json:"player"`
	Enemies   []EnemyState     `json:"enemies"`
	Swipe     *Body            `json:"swipe,omitempty"`
	Pickups   []int            `json:"pickups,omitempty"` // Items left on each pickup
	Inventory []inventory.Slot `json:"inventory"`
	Day       bool             `json:"day"`
	CycleTime float64          `json:"cycle_time"`
}

// Write saves st to path, replacing any existing file.
func Write(path string, st State) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(enc)
	je := json.NewEncoder(bw)
	if err := je.Encode(Header{Format: Format, Version: Version, SavedAt: time.Now().UTC()}); err != nil {
		enc.Close()
		return fmt.Errorf("encoding header: %w", err)
	}
	if err := je.Encode(st); err != nil {
		enc.Close()
		return fmt.Errorf("encoding state: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("compressing save: %w", err)
	}
	return f.Sync()
}

// Read loads a save file.
func Read(path string) (State, Header, error) {
	var st State
	var hdr Header
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return st, hdr, fmt.Errorf("%s: %w", path, ErrNoSave)
	}
	if err != nil {
		return st, hdr, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return st, hdr, err
	}
	defer dec.Close()

	jd := json.NewDecoder(bufio.NewReader(dec))
	if err := jd.Decode(&hdr); err != nil {
		return st, hdr, fmt.Errorf("decoding header: %w", err)
	}
	if hdr.Format != Format || hdr.Version != Version {
		return st, hdr, fmt.Errorf("%s is %s v%d: %w", path, hdr.Format, hdr.Version, ErrIncompatible)
	}
	if err := jd.Decode(&st); err != nil {
		return st, hdr, fmt.Errorf("decoding state: %w", err)
	}
	return st, hdr, nil
}
