package builder

import (
	"errors"
	"testing"

	"cabinet_kiosk/internal/domain/entities"
)

func seededState(t *testing.T) *EstimateState {
	t.Helper()
	s := NewEstimateState()
	if _, err := s.AddCabinet("Base Cabinet 24in", "4", 245); err != nil {
		t.Fatalf("seed cabinet: %v", err)
	}
	if _, err := s.AddCabinet("Wall Cabinet 30in", "2", 200); err != nil {
		t.Fatalf("seed cabinet: %v", err)
	}
	if _, err := s.AddFlooring("Laminate", "120", 3.15); err != nil {
		t.Fatalf("seed flooring: %v", err)
	}
	return s
}

func TestEditCursor_StartSeedsPendingValue(t *testing.T) {
	s := seededState(t)
	if err := s.StartEdit(entities.CategoryCabinet, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cur := s.Cursor()
	if !cur.Active || cur.Category != entities.CategoryCabinet || cur.Index != 0 {
		t.Fatalf("unexpected cursor: %+v", cur)
	}
	if cur.Pending != "4" {
		t.Fatalf("expected pending seeded with current value, got %q", cur.Pending)
	}
}

func TestEditCursor_TypeDoesNotTouchStore(t *testing.T) {
	s := seededState(t)
	s.StartEdit(entities.CategoryCabinet, 0)
	if err := s.TypeValue("9"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Items().Cabinets[0].Quantity; got != 4 {
		t.Fatalf("store mutated before commit: %d", got)
	}
	if s.Cursor().Pending != "9" {
		t.Fatalf("pending not updated")
	}
}

func TestEditCursor_CommitAppliesAndCloses(t *testing.T) {
	s := seededState(t)
	s.StartEdit(entities.CategoryCabinet, 0)
	s.TypeValue("9")
	if err := s.CommitEdit(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Items().Cabinets[0].Quantity; got != 9 {
		t.Fatalf("expected committed quantity 9, got %d", got)
	}
	if s.Cursor().Active {
		t.Fatalf("expected cursor closed after commit")
	}
}

func TestEditCursor_RejectedCommitStaysOpen(t *testing.T) {
	s := seededState(t)
	s.StartEdit(entities.CategoryCabinet, 0)
	s.TypeValue("0")

	err := s.CommitEdit()
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	cur := s.Cursor()
	if !cur.Active || cur.Pending != "0" {
		t.Fatalf("expected edit to stay open with pending intact, got %+v", cur)
	}
	if got := s.Items().Cabinets[0].Quantity; got != 4 {
		t.Fatalf("store mutated by rejected commit: %d", got)
	}
}

func TestEditCursor_ImplicitCommitDiscardsInvalidSilently(t *testing.T) {
	s := seededState(t)
	s.StartEdit(entities.CategoryCabinet, 0)
	s.TypeValue("not a number")

	// Starting another edit implicitly commits; the invalid pending value is
	// discarded and the old item keeps its original quantity.
	if err := s.StartEdit(entities.CategoryFlooring, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Items().Cabinets[0].Quantity; got != 4 {
		t.Fatalf("expected original quantity after discarded commit, got %d", got)
	}
	cur := s.Cursor()
	if cur.Category != entities.CategoryFlooring || cur.Pending != "120" {
		t.Fatalf("unexpected cursor after switch: %+v", cur)
	}
}

func TestEditCursor_ImplicitCommitAppliesValid(t *testing.T) {
	s := seededState(t)
	s.StartEdit(entities.CategoryCabinet, 0)
	s.TypeValue("7")
	if err := s.StartEdit(entities.CategoryCabinet, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Items().Cabinets[0].Quantity; got != 7 {
		t.Fatalf("expected implicit commit to apply, got %d", got)
	}
}

func TestEditCursor_CancelDiscards(t *testing.T) {
	s := seededState(t)
	s.StartEdit(entities.CategoryCabinet, 0)
	s.TypeValue("999")
	s.CancelEdit()

	if s.Cursor().Active {
		t.Fatalf("expected cursor closed")
	}
	if got := s.Items().Cabinets[0].Quantity; got != 4 {
		t.Fatalf("cancel mutated the store: %d", got)
	}
}

func TestEditCursor_NoActiveEdit(t *testing.T) {
	s := seededState(t)
	if err := s.TypeValue("1"); !errors.Is(err, ErrNoActiveEdit) {
		t.Fatalf("expected ErrNoActiveEdit, got %v", err)
	}
	if err := s.CommitEdit(); !errors.Is(err, ErrNoActiveEdit) {
		t.Fatalf("expected ErrNoActiveEdit, got %v", err)
	}
	if err := s.Navigate(NavDown); !errors.Is(err, ErrNoActiveEdit) {
		t.Fatalf("expected ErrNoActiveEdit, got %v", err)
	}
}

func TestEditCursor_NavigateUpDownClampsWithinCategory(t *testing.T) {
	s := seededState(t)
	s.StartEdit(entities.CategoryCabinet, 0)

	// Up at the first row stays put.
	if err := s.Navigate(NavUp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cur := s.Cursor(); cur.Index != 0 {
		t.Fatalf("expected index clamped at 0, got %d", cur.Index)
	}

	if err := s.Navigate(NavDown); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cur := s.Cursor(); cur.Index != 1 {
		t.Fatalf("expected index 1, got %d", cur.Index)
	}

	// Down at the last row stays put; it never crosses into flooring.
	if err := s.Navigate(NavDown); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cur := s.Cursor(); cur.Category != entities.CategoryCabinet || cur.Index != 1 {
		t.Fatalf("expected to stay on last cabinet row, got %+v", cur)
	}
}

func TestEditCursor_TabCyclesSkippingEmptyCategories(t *testing.T) {
	s := seededState(t) // cabinets + flooring; countertops empty
	s.StartEdit(entities.CategoryCabinet, 1)

	// Forward from the last cabinet lands on flooring, skipping the empty
	// countertop category on wrap.
	if err := s.Navigate(NavTabForward); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cur := s.Cursor(); cur.Category != entities.CategoryFlooring || cur.Index != 0 {
		t.Fatalf("expected flooring[0], got %+v", cur)
	}

	// Forward again wraps past countertops back to cabinets.
	if err := s.Navigate(NavTabForward); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cur := s.Cursor(); cur.Category != entities.CategoryCabinet || cur.Index != 0 {
		t.Fatalf("expected cabinets[0], got %+v", cur)
	}
}

func TestEditCursor_TabBackwardLandsOnLastItem(t *testing.T) {
	s := seededState(t)
	s.StartEdit(entities.CategoryFlooring, 0)

	if err := s.Navigate(NavTabBackward); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cur := s.Cursor(); cur.Category != entities.CategoryCabinet || cur.Index != 1 {
		t.Fatalf("expected last cabinet row, got %+v", cur)
	}
}

func TestEditCursor_TabStaysWhenNoOtherCategoryHasItems(t *testing.T) {
	s := NewEstimateState()
	s.AddCabinet("Only", "1", 100)
	s.StartEdit(entities.CategoryCabinet, 0)

	if err := s.Navigate(NavTabForward); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cur := s.Cursor(); cur.Category != entities.CategoryCabinet || cur.Index != 0 {
		t.Fatalf("expected cursor to stay put, got %+v", cur)
	}
}

func TestEditCursor_RemoveInCategoryCancelsEdit(t *testing.T) {
	s := seededState(t)
	s.StartEdit(entities.CategoryCabinet, 1)
	if err := s.Remove(entities.CategoryCabinet, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Cursor().Active {
		t.Fatalf("expected edit canceled by removal in the same category")
	}

	// Removal in another category leaves the edit alone.
	s.StartEdit(entities.CategoryFlooring, 0)
	if err := s.Remove(entities.CategoryCabinet, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Cursor().Active {
		t.Fatalf("expected edit in another category to survive")
	}
}
