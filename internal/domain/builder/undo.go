package builder

import "cabinet_kiosk/internal/domain/entities"

type undoKind int

const (
	undoNone undoKind = iota
	undoRemove
	undoClear
)

// undoEntry is the single-slot undo buffer: a tagged snapshot of the last
// destructive operation. A new remove/clear overwrites any prior entry; the
// lost recoverability is accepted behavior.
type undoEntry struct {
	kind     undoKind
	category entities.Category
	snapshot entities.ItemSet
}

func (s *EstimateState) captureRemove(c entities.Category, snapshot entities.ItemSet) {
	s.undo = undoEntry{kind: undoRemove, category: c, snapshot: snapshot}
}

func (s *EstimateState) captureClear(c entities.Category, snapshot entities.ItemSet) {
	s.undo = undoEntry{kind: undoClear, category: c, snapshot: snapshot}
}

// CanUndo reports whether the buffer holds an entry. The UI disables the undo
// action when it does not.
func (s *EstimateState) CanUndo() bool {
	return s.undo.kind != undoNone
}

// Undo restores the last destructive operation and consumes the buffer.
// Removed items are re-appended to the end of their category, not reinserted
// at their old index; a cleared category is restored to its exact prior
// sequence. With an empty buffer it is a benign no-op returning false.
func (s *EstimateState) Undo() bool {
	entry := s.undo
	s.undo = undoEntry{}

	switch entry.kind {
	case undoRemove:
		s.appendCategory(entry.category, entry.snapshot)
		return true
	case undoClear:
		s.replaceCategory(entry.category, entry.snapshot)
		return true
	default:
		return false
	}
}

func (s *EstimateState) appendCategory(c entities.Category, snap entities.ItemSet) {
	switch c {
	case entities.CategoryCabinet:
		s.items.Cabinets = append(s.items.Cabinets, snap.Cabinets...)
	case entities.CategoryDoor:
		s.items.Doors = append(s.items.Doors, snap.Doors...)
	case entities.CategoryFlooring:
		s.items.Flooring = append(s.items.Flooring, snap.Flooring...)
	case entities.CategoryCountertop:
		s.items.Countertops = append(s.items.Countertops, snap.Countertops...)
	case entities.CategoryHardware:
		s.items.Hardware = append(s.items.Hardware, snap.Hardware...)
	case entities.CategoryVanity:
		s.items.Vanities = append(s.items.Vanities, snap.Vanities...)
	case entities.CategoryKitchen:
		s.items.Kitchens = append(s.items.Kitchens, snap.Kitchens...)
	}
}

func (s *EstimateState) replaceCategory(c entities.Category, snap entities.ItemSet) {
	switch c {
	case entities.CategoryCabinet:
		s.items.Cabinets = snap.Cabinets
	case entities.CategoryDoor:
		s.items.Doors = snap.Doors
	case entities.CategoryFlooring:
		s.items.Flooring = snap.Flooring
	case entities.CategoryCountertop:
		s.items.Countertops = snap.Countertops
	case entities.CategoryHardware:
		s.items.Hardware = snap.Hardware
	case entities.CategoryVanity:
		s.items.Vanities = snap.Vanities
	case entities.CategoryKitchen:
		s.items.Kitchens = snap.Kitchens
	}
}
