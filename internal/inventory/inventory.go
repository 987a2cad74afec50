// Package inventory provides the player's item grid: a fixed number of
// slots, each holding a stack of one item type.
package inventory

import (
	"errors"
	"fmt"
	"sync"
)

// ErrFull is returned when items do not fit in the grid.
var ErrFull = errors.New("inventory full")

// Item describes an item type.
type Item struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Description string `json:"description,omitempty"`
	MaxStack    int    `json:"max_stack,omitempty"` // 0 = inventory default
}

// DefaultItems returns the built-in item definitions.
func DefaultItems() []*Item {
	return []*Item{
		{Name: "torch", DisplayName: "Torch", Description: "Lights the way at night", MaxStack: 1},
		{Name: "berries", DisplayName: "Berries", Description: "A handful of wild berries"},
	}
}

// Slot is one grid cell. An empty slot has Count 0 and no Item.
type Slot struct {
	Item  string `json:"item,omitempty"`
	Count int    `json:"count,omitempty"`
}

// Empty reports whether the slot holds nothing.
func (s Slot) Empty() bool { return s.Count <= 0 }

// Inventory is a rows×cols grid of slots. Slots fill in row-major order.
type Inventory struct {
	mu sync.RWMutex

	rows, cols int
	maxStack   int
	slots      []Slot
	defs       map[string]*Item
	open       bool

	// OnChange is called after every change to the slots.
	OnChange func()
}

// New creates an empty grid. maxStack <= 0 means unlimited stacks.
func New(rows, cols, maxStack int) *Inventory {
	inv := &Inventory{
		rows:     rows,
		cols:     cols,
		maxStack: maxStack,
		slots:    make([]Slot, rows*cols),
		defs:     make(map[string]*Item),
	}
	for _, it := range DefaultItems() {
		inv.defs[it.Name] = it
	}
	return inv
}

// Rows returns the grid height.
func (inv *Inventory) Rows() int { return inv.rows }

// Cols returns the grid width.
func (inv *Inventory) Cols() int { return inv.cols }

// RegisterItem adds or replaces an item definition.
func (inv *Inventory) RegisterItem(item *Item) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.defs[item.Name] = item
}

// GetItemDefinition returns the definition for an item, or nil if not defined.
func (inv *Inventory) GetItemDefinition(name string) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.defs[name]
}

// DisplayName returns the item's display name, or its name if it has none.
func (inv *Inventory) DisplayName(name string) string {
	if def := inv.GetItemDefinition(name); def != nil && def.DisplayName != "" {
		return def.DisplayName
	}
	return name
}

func (inv *Inventory) stackLimit(name string) int {
	if def, ok := inv.defs[name]; ok && def.MaxStack > 0 {
		return def.MaxStack
	}
	return inv.maxStack
}

// Add puts count of an item into the grid, topping up existing stacks
// before opening empty slots. It returns how many were added; if not all
// fit, the error wraps ErrFull and the rest are dropped.
func (inv *Inventory) Add(name string, count int) (int, error) {
	if count <= 0 {
		return 0, nil
	}
	if name == "" {
		return 0, fmt.Errorf("adding unnamed item")
	}

	inv.mu.Lock()
	limit := inv.stackLimit(name)
	room := func(s Slot) int {
		if limit <= 0 {
			return count
		}
		return limit - s.Count
	}

	left := count
	for i := range inv.slots {
		if left == 0 {
			break
		}
		s := &inv.slots[i]
		if s.Empty() || s.Item != name {
			continue
		}
		n := min(left, room(*s))
		if n > 0 {
			s.Count += n
			left -= n
		}
	}
	for i := range inv.slots {
		if left == 0 {
			break
		}
		s := &inv.slots[i]
		if !s.Empty() {
			continue
		}
		n := min(left, room(Slot{}))
		*s = Slot{Item: name, Count: n}
		left -= n
	}
	added := count - left
	inv.mu.Unlock()

	if added > 0 {
		inv.notifyChange()
	}
	if left > 0 {
		return added, fmt.Errorf("adding %d %s: %d did not fit: %w", count, name, left, ErrFull)
	}
	return added, nil
}

// Remove takes count of an item out of the grid, emptying later stacks
// first. It returns false and changes nothing if there are not enough.
func (inv *Inventory) Remove(name string, count int) bool {
	if count <= 0 {
		return true
	}

	inv.mu.Lock()
	if inv.count(name) < count {
		inv.mu.Unlock()
		return false
	}
	left := count
	for i := len(inv.slots) - 1; i >= 0 && left > 0; i-- {
		s := &inv.slots[i]
		if s.Empty() || s.Item != name {
			continue
		}
		n := min(left, s.Count)
		s.Count -= n
		left -= n
		if s.Count == 0 {
			*s = Slot{}
		}
	}
	inv.mu.Unlock()

	inv.notifyChange()
	return true
}

// Swap exchanges two slots by index.
func (inv *Inventory) Swap(i, j int) error {
	inv.mu.Lock()
	if i < 0 || j < 0 || i >= len(inv.slots) || j >= len(inv.slots) {
		inv.mu.Unlock()
		return fmt.Errorf("swapping slots %d and %d: out of range", i, j)
	}
	inv.slots[i], inv.slots[j] = inv.slots[j], inv.slots[i]
	inv.mu.Unlock()

	inv.notifyChange()
	return nil
}

func (inv *Inventory) count(name string) int {
	total := 0
	for _, s := range inv.slots {
		if !s.Empty() && s.Item == name {
			total += s.Count
		}
	}
	return total
}

// Count returns the quantity of an item across all slots.
func (inv *Inventory) Count(name string) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.count(name)
}

// HasItem checks if the inventory contains at least one of the named item.
func (inv *Inventory) HasItem(name string) bool {
	return inv.Count(name) > 0
}

// SlotAt returns the slot at grid cell (row, col).
func (inv *Inventory) SlotAt(row, col int) (Slot, bool) {
	if row < 0 || col < 0 || row >= inv.rows || col >= inv.cols {
		return Slot{}, false
	}
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.slots[row*inv.cols+col], true
}

// Snapshot returns a copy of every slot in row-major order.
func (inv *Inventory) Snapshot() []Slot {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]Slot, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Restore replaces the slots with a snapshot. A shorter snapshot leaves the
// remaining slots empty; a longer one is rejected.
func (inv *Inventory) Restore(slots []Slot) error {
	inv.mu.Lock()
	if len(slots) > len(inv.slots) {
		inv.mu.Unlock()
		return fmt.Errorf("restoring %d slots into a %dx%d grid: %w", len(slots), inv.rows, inv.cols, ErrFull)
	}
	for i := range inv.slots {
		inv.slots[i] = Slot{}
		if i < len(slots) && !slots[i].Empty() {
			inv.slots[i] = slots[i]
		}
	}
	inv.mu.Unlock()

	inv.notifyChange()
	return nil
}

// Clear removes all items from the inventory.
func (inv *Inventory) Clear() {
	inv.mu.Lock()
	for i := range inv.slots {
		inv.slots[i] = Slot{}
	}
	inv.mu.Unlock()
	inv.notifyChange()
}

// TotalItems returns the total count of all items.
func (inv *Inventory) TotalItems() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	total := 0
	for _, s := range inv.slots {
		total += max(s.Count, 0)
	}
	return total
}

// IsEmpty returns true if the inventory has no items.
func (inv *Inventory) IsEmpty() bool {
	return inv.TotalItems() == 0
}

// IsFull returns true if no slot is empty.
func (inv *Inventory) IsFull() bool {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	for _, s := range inv.slots {
		if s.Empty() {
			return false
		}
	}
	return true
}

// Toggle opens or closes the inventory panel.
func (inv *Inventory) Toggle() { inv.SetOpen(!inv.IsOpen()) }

// SetOpen sets whether the inventory panel is shown.
func (inv *Inventory) SetOpen(open bool) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.open = open
}

// IsOpen reports whether the inventory panel is shown.
func (inv *Inventory) IsOpen() bool {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.open
}

// notifyChange calls the OnChange callback if set. Never called with the
// lock held, so callbacks may read the inventory.
func (inv *Inventory) notifyChange() {
	if inv.OnChange != nil {
		inv.OnChange()
	}
}

// Debug returns a string representation of the inventory.
func (inv *Inventory) Debug() string {
	return fmt.Sprintf("Inventory{%dx%d, %d total}", inv.rows, inv.cols, inv.TotalItems())
}
