package usecase

import (
	"context"
	"strings"
	"testing"

	"cabinet_kiosk/internal/domain/entities"
	mock_interfaces "cabinet_kiosk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var importCatalog = []entities.CatalogItem{
	{Name: "Base Cabinet 24in", UnitPrice: 245},
	{Name: "Wall Cabinet 30in", UnitPrice: 200},
	{Name: "Corner Base Cabinet", UnitPrice: 340},
}

func importFixture(t *testing.T) (*ImportUseCase, IBuilderUseCase, string) {
	t.Helper()
	ctrl := gomock.NewController(t)
	catalog := mock_interfaces.NewMockICatalogService(ctrl)
	catalog.EXPECT().ListCategory(gomock.Any(), entities.CategoryCabinet).Return(importCatalog, nil).AnyTimes()

	b := NewBuilderUseCase(catalog)
	sessionID := b.StartSession()
	return NewImportUseCase(catalog, b), b, sessionID
}

func TestImportUseCase_ImportCabinets_CSV(t *testing.T) {
	uc, b, sessionID := importFixture(t)

	csvBody := strings.Join([]string{
		"Name,Quantity",
		"base cabinet 24in,3",            // exact (case-insensitive)
		"Wall Cabinet,2",                 // uploaded name contained in catalog name
		"Special Corner Base Cabinet,1",  // catalog name contained in uploaded name
		"Farmhouse Sink Base,4",          // no match
		"Base Cabinet 24in,0",            // quantity out of bounds
		"Base Cabinet 24in,two",          // quantity not a number
		",",                              // blank row, skipped entirely
	}, "\n")

	result, err := uc.ImportCabinets(context.Background(), sessionID, "cabinets.csv", strings.NewReader(csvBody))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.TotalRows != 6 {
		t.Fatalf("expected 6 counted rows, got %d", result.TotalRows)
	}
	if result.Matched != 3 {
		t.Fatalf("expected 3 matched rows, got %d", result.Matched)
	}
	if len(result.Unmatched) != 3 {
		t.Fatalf("expected 3 unmatched rows, got %+v", result.Unmatched)
	}

	// Matched names resolve to the catalog spelling with the catalog price.
	if result.Loaded[0].Type != "Base Cabinet 24in" || result.Loaded[0].UnitPrice != 245 {
		t.Fatalf("unexpected first loaded item: %+v", result.Loaded[0])
	}
	if result.Loaded[1].Type != "Wall Cabinet 30in" {
		t.Fatalf("expected bidirectional substring match, got %+v", result.Loaded[1])
	}

	// Unmatched entries carry the row number and a reason.
	if result.Unmatched[0].Row != 5 || result.Unmatched[0].Reason == "" {
		t.Fatalf("unexpected unmatched report: %+v", result.Unmatched[0])
	}

	// The session's cabinet collection was replaced with the matches.
	items, err := b.Items(sessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items.Cabinets) != 3 {
		t.Fatalf("expected 3 cabinets loaded into the session, got %d", len(items.Cabinets))
	}
}

func TestImportUseCase_ImportCabinets_ReplacesPriorCollection(t *testing.T) {
	uc, b, sessionID := importFixture(t)
	b.ReplaceCabinets(sessionID, []entities.CabinetLineItem{{Type: "Old", Quantity: 1, UnitPrice: 1}})

	csvBody := "name,qty\nBase Cabinet 24in,2\n"
	if _, err := uc.ImportCabinets(context.Background(), sessionID, "upload.CSV", strings.NewReader(csvBody)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, _ := b.Items(sessionID)
	if len(items.Cabinets) != 1 || items.Cabinets[0].Type != "Base Cabinet 24in" {
		t.Fatalf("expected wholesale replacement, got %+v", items.Cabinets)
	}
}

func TestImportUseCase_ImportCabinets_Failures(t *testing.T) {
	uc, _, sessionID := importFixture(t)

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := uc.ImportCabinets(context.Background(), sessionID, "cabinets.pdf", strings.NewReader("x"))
		if err != ErrUnsupportedImportFormat {
			t.Fatalf("expected ErrUnsupportedImportFormat, got %v", err)
		}
	})

	t.Run("missing columns", func(t *testing.T) {
		_, err := uc.ImportCabinets(context.Background(), sessionID, "cabinets.csv", strings.NewReader("foo,bar\na,1\n"))
		if err != ErrMissingImportColumns {
			t.Fatalf("expected ErrMissingImportColumns, got %v", err)
		}
	})

	t.Run("header only", func(t *testing.T) {
		_, err := uc.ImportCabinets(context.Background(), sessionID, "cabinets.csv", strings.NewReader("name,quantity\n"))
		if err == nil {
			t.Fatalf("expected error for header-only file")
		}
	})
}
