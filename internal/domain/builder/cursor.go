package builder

import (
	"errors"

	"cabinet_kiosk/internal/domain/entities"
)

var ErrNoActiveEdit = errors.New("no active edit")

// Direction is a keyboard navigation action over editable cells.
type Direction string

const (
	NavUp          Direction = "up"
	NavDown        Direction = "down"
	NavTabForward  Direction = "tab_forward"
	NavTabBackward Direction = "tab_backward"
)

// tabOrder is the fixed cyclic order tab navigation walks. Only these three
// categories participate, matching the source's spreadsheet layout.
var tabOrder = []entities.Category{
	entities.CategoryCabinet,
	entities.CategoryFlooring,
	entities.CategoryCountertop,
}

// editCursor identifies the at-most-one line item open for inline editing.
type editCursor struct {
	active   bool
	category entities.Category
	index    int
	pending  string
}

// Cursor is the exported snapshot of the edit cursor.
type Cursor struct {
	Active   bool              `json:"active"`
	Category entities.Category `json:"category,omitempty"`
	Index    int               `json:"index"`
	Pending  string            `json:"pending,omitempty"`
}

func (s *EstimateState) Cursor() Cursor {
	return Cursor{
		Active:   s.cursor.active,
		Category: s.cursor.category,
		Index:    s.cursor.index,
		Pending:  s.cursor.pending,
	}
}

// StartEdit opens the item at (c, index) for editing, seeding the pending
// value from the current field. If another edit is active it is implicitly
// committed first; a validation failure on that path is discarded silently
// and the old item keeps its original value ("blur saves" semantics).
func (s *EstimateState) StartEdit(c entities.Category, index int) error {
	if s.cursor.active {
		_ = s.Update(s.cursor.category, s.cursor.index, s.cursor.pending)
		s.cursor = editCursor{}
	}

	seed, err := s.measurementAt(c, index)
	if err != nil {
		return err
	}
	s.cursor = editCursor{active: true, category: c, index: index, pending: seed}
	return nil
}

// TypeValue replaces the pending value only; the store is untouched until
// commit.
func (s *EstimateState) TypeValue(v string) error {
	if !s.cursor.active {
		return ErrNoActiveEdit
	}
	s.cursor.pending = v
	return nil
}

// CommitEdit applies the pending value (Enter key). On validation failure the
// error is surfaced and the edit stays open — unlike the implicit commit on
// switch, which discards silently. Both behaviors are intentional.
func (s *EstimateState) CommitEdit() error {
	if !s.cursor.active {
		return ErrNoActiveEdit
	}
	if err := s.Update(s.cursor.category, s.cursor.index, s.cursor.pending); err != nil {
		return err
	}
	s.cursor = editCursor{}
	return nil
}

// CancelEdit discards the pending value (Escape key) without mutating the
// store.
func (s *EstimateState) CancelEdit() {
	s.cursor = editCursor{}
}

// Navigate moves the edit cursor. Up/down stay strictly within the current
// category. Tab walks the fixed cabinet → flooring → countertop cycle,
// committing the current edit first; at a category boundary it skips to the
// first/last item of the next non-empty category, or stays put when no other
// category has items.
func (s *EstimateState) Navigate(d Direction) error {
	if !s.cursor.active {
		return ErrNoActiveEdit
	}
	cur := s.cursor

	switch d {
	case NavUp:
		if cur.index == 0 {
			return nil
		}
		return s.StartEdit(cur.category, cur.index-1)

	case NavDown:
		if cur.index+1 >= s.items.Len(cur.category) {
			return nil
		}
		return s.StartEdit(cur.category, cur.index+1)

	case NavTabForward:
		pos := tabPosition(cur.category)
		if pos < 0 {
			return nil
		}
		if cur.index+1 < s.items.Len(cur.category) {
			return s.StartEdit(cur.category, cur.index+1)
		}
		for i := 1; i < len(tabOrder); i++ {
			next := tabOrder[(pos+i)%len(tabOrder)]
			if s.items.Len(next) > 0 {
				return s.StartEdit(next, 0)
			}
		}
		return nil

	case NavTabBackward:
		pos := tabPosition(cur.category)
		if pos < 0 {
			return nil
		}
		if cur.index > 0 {
			return s.StartEdit(cur.category, cur.index-1)
		}
		for i := 1; i < len(tabOrder); i++ {
			prev := tabOrder[(pos-i+len(tabOrder))%len(tabOrder)]
			if s.items.Len(prev) > 0 {
				return s.StartEdit(prev, s.items.Len(prev)-1)
			}
		}
		return nil
	}
	return nil
}

func tabPosition(c entities.Category) int {
	for i, tc := range tabOrder {
		if tc == c {
			return i
		}
	}
	return -1
}
