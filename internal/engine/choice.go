package engine

import (
	"fmt"

	"github.com/abhisek/quizdeck/internal/quiz"
)

// ChoiceSet tracks the selection state of a choice question. A single
// choice set (single-choice, true/false) holds at most one id; Select
// replaces it. A multi choice set toggles membership.
type ChoiceSet struct {
	options  []quiz.Option
	multi    bool
	selected map[string]bool
}

// NewChoiceSet creates an empty selection over options.
func NewChoiceSet(options []quiz.Option, multi bool) *ChoiceSet {
	return &ChoiceSet{
		options:  options,
		multi:    multi,
		selected: make(map[string]bool),
	}
}

// Multi reports whether more than one option may be selected.
func (c *ChoiceSet) Multi() bool { return c.multi }

// Options returns the options in authored order.
func (c *ChoiceSet) Options() []quiz.Option { return c.options }

// Select picks id. In a multi set it toggles id instead.
func (c *ChoiceSet) Select(id string) error {
	if !c.has(id) {
		return fmt.Errorf("%w %q", ErrUnknownOption, id)
	}
	if c.multi {
		if c.selected[id] {
			delete(c.selected, id)
		} else {
			c.selected[id] = true
		}
		return nil
	}
	clear(c.selected)
	c.selected[id] = true
	return nil
}

// IsSelected reports whether id is currently selected.
func (c *ChoiceSet) IsSelected(id string) bool {
	return c.selected[id]
}

// Clear drops the whole selection.
func (c *ChoiceSet) Clear() {
	clear(c.selected)
}

// Selected returns the selected ids in authored order.
func (c *ChoiceSet) Selected() []string {
	var ids []string
	for _, o := range c.options {
		if c.selected[o.ID] {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// Value returns the selection as a response value. A single set with no
// selection returns an empty SingleValue.
func (c *ChoiceSet) Value() quiz.Value {
	ids := c.Selected()
	if c.multi {
		return quiz.SetValue{IDs: ids}
	}
	if len(ids) == 0 {
		return quiz.SingleValue{}
	}
	return quiz.SingleValue{ID: ids[0]}
}

// Restore loads a previously recorded value. Ids that are not part of the
// set are ignored.
func (c *ChoiceSet) Restore(v quiz.Value) {
	clear(c.selected)
	switch v := v.(type) {
	case quiz.SingleValue:
		if !c.multi && c.has(v.ID) {
			c.selected[v.ID] = true
		}
	case quiz.SetValue:
		if !c.multi {
			return
		}
		for _, id := range v.IDs {
			if c.has(id) {
				c.selected[id] = true
			}
		}
	}
}

func (c *ChoiceSet) has(id string) bool {
	for _, o := range c.options {
		if o.ID == id {
			return true
		}
	}
	return false
}
