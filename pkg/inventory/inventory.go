// Package inventory manipulates item stacks in fixed-size containers.
package inventory

import (
	"sync"

	"github.com/mosbergapi/modkit/pkg/id"
)

// DefaultStackSize is the per-slot limit used when no limit function is
// installed.
const DefaultStackSize = 64

// Stack is a quantity of one item. The zero Stack is empty.
type Stack struct {
	Item  id.ID
	Count int
}

// Empty is a convenience value for an empty slot.
var Empty = Stack{}

// IsEmpty returns true if the stack holds nothing.
func (s Stack) IsEmpty() bool {
	return s.Item.IsZero() || s.Count <= 0
}

// Inventory is a fixed-size container of stacks. Unlike the registration
// facades, inventories are runtime state touched from gameplay paths, so all
// access is lock-guarded.
type Inventory struct {
	mu    sync.RWMutex
	slots []Stack
	limit func(id.ID) int
}

// New creates an empty inventory with size slots and the default stack
// limit for every item.
func New(size int) *Inventory {
	return NewWithLimit(size, nil)
}

// NewWithLimit creates an empty inventory whose per-item stack limit comes
// from limit. A nil limit, or a non-positive result, falls back to
// DefaultStackSize.
func NewWithLimit(size int, limit func(id.ID) int) *Inventory {
	return &Inventory{
		slots: make([]Stack, size),
		limit: limit,
	}
}

// Len returns the number of slots.
func (inv *Inventory) Len() int {
	return len(inv.slots)
}

// Slot returns the stack at index.
func (inv *Inventory) Slot(index int) Stack {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.slots[index]
}

// SetSlot replaces the stack at index.
func (inv *Inventory) SetSlot(index int, s Stack) {
	inv.mu.Lock()
	defer inv.mu.Unlock()
	inv.slots[index] = s
}

// Stacks returns a copy of all slots in order.
func (inv *Inventory) Stacks() []Stack {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	out := make([]Stack, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Insert tries to absorb s by merging into existing stacks of the same item
// first, then placing into empty slots, scanning front to back. It returns
// the leftover that did not fit, or Empty if fully absorbed.
func (inv *Inventory) Insert(s Stack) Stack {
	if s.IsEmpty() {
		return Empty
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	limit := inv.limitFor(s.Item)
	remaining := s.Count

	// First pass: merge into existing stacks.
	for i, cur := range inv.slots {
		if cur.IsEmpty() || cur.Item != s.Item {
			continue
		}
		space := limit - cur.Count
		if space <= 0 {
			continue
		}
		transfer := remaining
		if transfer > space {
			transfer = space
		}
		inv.slots[i].Count += transfer
		remaining -= transfer
		if remaining == 0 {
			return Empty
		}
	}

	// Second pass: place in empty slots.
	for i, cur := range inv.slots {
		if !cur.IsEmpty() {
			continue
		}
		place := remaining
		if place > limit {
			place = limit
		}
		inv.slots[i] = Stack{Item: s.Item, Count: place}
		remaining -= place
		if remaining == 0 {
			return Empty
		}
	}

	return Stack{Item: s.Item, Count: remaining}
}

// RemoveOne takes a single item off the stack at index and returns it as a
// count-1 stack. An empty slot yields Empty; a slot emptied by the removal
// is reset to Empty.
func (inv *Inventory) RemoveOne(index int) Stack {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	s := inv.slots[index]
	if s.IsEmpty() {
		return Empty
	}

	s.Count--
	if s.Count <= 0 {
		inv.slots[index] = Empty
	} else {
		inv.slots[index] = s
	}
	return Stack{Item: s.Item, Count: 1}
}

// Count returns the total number of item across all slots.
func (inv *Inventory) Count(item id.ID) int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	total := 0
	for _, s := range inv.slots {
		if !s.IsEmpty() && s.Item == item {
			total += s.Count
		}
	}
	return total
}

// FirstEmpty returns the index of the first empty slot, or -1 if the
// inventory is full.
func (inv *Inventory) FirstEmpty() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	for i, s := range inv.slots {
		if s.IsEmpty() {
			return i
		}
	}
	return -1
}

func (inv *Inventory) limitFor(item id.ID) int {
	if inv.limit == nil {
		return DefaultStackSize
	}
	if n := inv.limit(item); n > 0 {
		return n
	}
	return DefaultStackSize
}
