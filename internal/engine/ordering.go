package engine

import (
	"slices"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// Sequence is the ordering engine: a permutation of item ids that only
// changes through adjacent swaps.
type Sequence struct {
	items   map[string]quiz.OrderableItem
	initial []string
	current []string
}

// NewSequence starts a sequence in the authored order of items.
func NewSequence(items []quiz.OrderableItem) *Sequence {
	s := &Sequence{items: make(map[string]quiz.OrderableItem, len(items))}
	for _, it := range items {
		s.items[it.ID] = it
		s.initial = append(s.initial, it.ID)
	}
	s.Reset()
	return s
}

// Len returns the number of items.
func (s *Sequence) Len() int { return len(s.current) }

// MoveUp swaps the item at index with the one above it. It returns false
// and does nothing at the top or for an out-of-range index.
func (s *Sequence) MoveUp(index int) bool {
	if index <= 0 || index >= len(s.current) {
		return false
	}
	s.current[index-1], s.current[index] = s.current[index], s.current[index-1]
	return true
}

// MoveDown swaps the item at index with the one below it. It returns false
// and does nothing at the bottom or for an out-of-range index.
func (s *Sequence) MoveDown(index int) bool {
	if index < 0 || index >= len(s.current)-1 {
		return false
	}
	s.current[index], s.current[index+1] = s.current[index+1], s.current[index]
	return true
}

// Reset restores the initial order.
func (s *Sequence) Reset() {
	s.current = slices.Clone(s.initial)
}

// IDs returns the current order.
func (s *Sequence) IDs() []string {
	return slices.Clone(s.current)
}

// Item returns the item at index.
func (s *Sequence) Item(index int) quiz.OrderableItem {
	return s.items[s.current[index]]
}

// Value returns the current order as a response value.
func (s *Sequence) Value() quiz.SequenceValue {
	return quiz.SequenceValue{IDs: s.IDs()}
}

// Restore adopts a recorded order if it is a permutation of the items and
// reports whether it did.
func (s *Sequence) Restore(v quiz.SequenceValue) bool {
	if !IsPermutation(s.initial, v.IDs) {
		return false
	}
	s.current = slices.Clone(v.IDs)
	return true
}

// IsPermutation reports whether got holds exactly the ids of want, each
// once, in any order.
func IsPermutation(want, got []string) bool {
	if len(want) != len(got) {
		return false
	}
	a := slices.Clone(want)
	b := slices.Clone(got)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}
