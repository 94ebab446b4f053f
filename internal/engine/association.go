package engine

import (
	"fmt"
	"slices"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// Board is the association engine. Every item is either in the available
// pool or on exactly one target; Place and Unplace keep it that way.
type Board struct {
	items   []quiz.DraggableItem
	targets []quiz.DropTarget

	available  []string          // unplaced item ids, authored order
	placements map[string]string // target id -> item id
}

// NewBoard creates a board with every item available.
func NewBoard(items []quiz.DraggableItem, targets []quiz.DropTarget) *Board {
	b := &Board{
		items:      items,
		targets:    targets,
		placements: make(map[string]string),
	}
	b.Reset()
	return b
}

// Items returns the draggable items in authored order.
func (b *Board) Items() []quiz.DraggableItem { return b.items }

// Targets returns the drop targets in authored order.
func (b *Board) Targets() []quiz.DropTarget { return b.targets }

// Place puts itemID on targetID. The item leaves wherever it was; a
// previous occupant of the target goes back to the available pool.
func (b *Board) Place(itemID, targetID string) error {
	if !b.hasItem(itemID) {
		return fmt.Errorf("%w %q", ErrUnknownItem, itemID)
	}
	if !b.hasTarget(targetID) {
		return fmt.Errorf("%w %q", ErrUnknownTarget, targetID)
	}
	if b.placements[targetID] == itemID {
		return nil
	}

	if from, ok := b.TargetOf(itemID); ok {
		delete(b.placements, from)
	} else {
		b.available = slices.DeleteFunc(b.available, func(id string) bool { return id == itemID })
	}

	if prev, ok := b.placements[targetID]; ok {
		b.release(prev)
	}
	b.placements[targetID] = itemID
	return nil
}

// Unplace moves the occupant of targetID back to the available pool. It is
// a no-op on an empty target.
func (b *Board) Unplace(targetID string) error {
	if !b.hasTarget(targetID) {
		return fmt.Errorf("%w %q", ErrUnknownTarget, targetID)
	}
	if item, ok := b.placements[targetID]; ok {
		delete(b.placements, targetID)
		b.release(item)
	}
	return nil
}

// Reset clears every placement.
func (b *Board) Reset() {
	clear(b.placements)
	b.available = make([]string, 0, len(b.items))
	for _, it := range b.items {
		b.available = append(b.available, it.ID)
	}
}

// Available returns the unplaced item ids in authored order.
func (b *Board) Available() []string {
	return slices.Clone(b.available)
}

// Occupant returns the item placed on targetID.
func (b *Board) Occupant(targetID string) (string, bool) {
	id, ok := b.placements[targetID]
	return id, ok
}

// TargetOf returns the target itemID is placed on.
func (b *Board) TargetOf(itemID string) (string, bool) {
	for target, item := range b.placements {
		if item == itemID {
			return target, true
		}
	}
	return "", false
}

// TargetCorrect reports whether targetID holds its expected item.
func (b *Board) TargetCorrect(targetID string) bool {
	for _, t := range b.targets {
		if t.ID == targetID {
			item, ok := b.placements[targetID]
			return ok && item == t.ExpectedItemID
		}
	}
	return false
}

// Value returns the placements as an item -> target mapping.
func (b *Board) Value() quiz.MappingValue {
	m := make(map[string]string, len(b.placements))
	for target, item := range b.placements {
		m[item] = target
	}
	return quiz.MappingValue{Placements: m}
}

// Restore resets the board and replays a recorded mapping. Entries naming
// unknown items or targets are dropped; when two items claim the same
// target the later one in item order wins.
func (b *Board) Restore(v quiz.MappingValue) {
	b.Reset()
	for _, it := range b.items {
		if target, ok := v.Placements[it.ID]; ok {
			_ = b.Place(it.ID, target)
		}
	}
}

// release returns itemID to the available pool, keeping authored order.
func (b *Board) release(itemID string) {
	pos := b.indexOfItem(itemID)
	at := len(b.available)
	for i, id := range b.available {
		if b.indexOfItem(id) > pos {
			at = i
			break
		}
	}
	b.available = slices.Insert(b.available, at, itemID)
}

func (b *Board) indexOfItem(id string) int {
	return slices.IndexFunc(b.items, func(it quiz.DraggableItem) bool { return it.ID == id })
}

func (b *Board) hasItem(id string) bool {
	return b.indexOfItem(id) >= 0
}

func (b *Board) hasTarget(id string) bool {
	return slices.ContainsFunc(b.targets, func(t quiz.DropTarget) bool { return t.ID == id })
}
