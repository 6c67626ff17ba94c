package usecase

import (
	"context"
	"errors"
	"testing"

	"cabinet_kiosk/internal/domain/builder"
	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase/interfaces"
	mock_interfaces "cabinet_kiosk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBuilderUseCase_Sessions(t *testing.T) {
	t.Run("empty session id", func(t *testing.T) {
		uc := NewBuilderUseCase(nil)
		_, err := uc.Items(" ")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("unknown session id", func(t *testing.T) {
		uc := NewBuilderUseCase(nil)
		_, err := uc.Items("nope")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("start session yields usable id", func(t *testing.T) {
		uc := NewBuilderUseCase(nil)
		id := uc.StartSession()
		items, err := uc.Items(id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !items.Empty() {
			t.Fatalf("expected empty collections, got %+v", items)
		}
	})

	t.Run("session from items preloads collections", func(t *testing.T) {
		uc := NewBuilderUseCase(nil)
		id := uc.NewSessionFromItems(entities.ItemSet{
			Hardware: []entities.HardwareLineItem{{Type: "Knob Round Oil Bronze", Quantity: 12, UnitPrice: 4.95}},
		})
		items, err := uc.Items(id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items.Hardware) != 1 {
			t.Fatalf("expected preloaded hardware, got %+v", items)
		}
	})
}

func TestBuilderUseCase_AddItem(t *testing.T) {
	t.Run("catalog category snapshots the looked-up price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogService(ctrl)
		catalog.EXPECT().UnitPrice(gomock.Any(), entities.CategoryCabinet, "Base Cabinet 24in").Return(245.0, nil)

		uc := NewBuilderUseCase(catalog)
		id := uc.StartSession()

		items, err := uc.AddItem(context.Background(), id, AddItemInput{
			Category: entities.CategoryCabinet,
			Name:     "Base Cabinet 24in",
			Value:    "3",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items.Cabinets) != 1 || items.Cabinets[0].UnitPrice != 245 {
			t.Fatalf("unexpected collection: %+v", items.Cabinets)
		}
	})

	t.Run("catalog miss refuses the add", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogService(ctrl)
		catalog.EXPECT().UnitPrice(gomock.Any(), entities.CategoryDoor, "Discontinued Door").Return(0.0, interfaces.ErrPriceNotFound)

		uc := NewBuilderUseCase(catalog)
		id := uc.StartSession()

		_, err := uc.AddItem(context.Background(), id, AddItemInput{
			Category: entities.CategoryDoor,
			Name:     "Discontinued Door",
			Value:    "2",
		})
		if !errors.Is(err, ErrCatalogLookupMiss) {
			t.Fatalf("expected ErrCatalogLookupMiss, got %v", err)
		}

		items, _ := uc.Items(id)
		if len(items.Doors) != 0 {
			t.Fatalf("refused add mutated the store")
		}
	})

	t.Run("missing name", func(t *testing.T) {
		uc := NewBuilderUseCase(nil)
		id := uc.StartSession()
		_, err := uc.AddItem(context.Background(), id, AddItemInput{Category: entities.CategoryHardware, Value: "1"})
		if !errors.Is(err, ErrInvalidSelection) {
			t.Fatalf("expected ErrInvalidSelection, got %v", err)
		}
	})

	t.Run("vanity uses the tier table, not the catalog", func(t *testing.T) {
		uc := NewBuilderUseCase(nil) // no catalog needed for tier categories
		id := uc.StartSession()

		items, err := uc.AddItem(context.Background(), id, AddItemInput{
			Category:       entities.CategoryVanity,
			Value:          "1",
			Tier:           entities.TierBest,
			SingleToDouble: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items.Vanities) != 1 || items.Vanities[0].BasePrice != 1899 {
			t.Fatalf("unexpected vanity: %+v", items.Vanities)
		}
	})

	t.Run("invalid tier", func(t *testing.T) {
		uc := NewBuilderUseCase(nil)
		id := uc.StartSession()
		_, err := uc.AddItem(context.Background(), id, AddItemInput{
			Category: entities.CategoryKitchen,
			Value:    "1",
			Tier:     entities.Tier("platinum"),
		})
		if !errors.Is(err, ErrInvalidTier) {
			t.Fatalf("expected ErrInvalidTier, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := NewBuilderUseCase(nil)
		id := uc.StartSession()
		_, err := uc.AddItem(context.Background(), id, AddItemInput{Category: entities.Category("appliance"), Value: "1"})
		if !errors.Is(err, ErrInvalidCategory) {
			t.Fatalf("expected ErrInvalidCategory, got %v", err)
		}
	})

	t.Run("catalog not configured", func(t *testing.T) {
		uc := NewBuilderUseCase(nil)
		id := uc.StartSession()
		_, err := uc.AddItem(context.Background(), id, AddItemInput{
			Category: entities.CategoryCabinet,
			Name:     "Base Cabinet 24in",
			Value:    "1",
		})
		if !errors.Is(err, ErrCatalogUnavailable) {
			t.Fatalf("expected ErrCatalogUnavailable, got %v", err)
		}
	})
}

func TestBuilderUseCase_RemoveClearUndo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockICatalogService(ctrl)
	catalog.EXPECT().UnitPrice(gomock.Any(), entities.CategoryCabinet, gomock.Any()).Return(185.0, nil).AnyTimes()

	uc := NewBuilderUseCase(catalog)
	id := uc.StartSession()
	ctx := context.Background()

	uc.AddItem(ctx, id, AddItemInput{Category: entities.CategoryCabinet, Name: "A", Value: "1"})
	uc.AddItem(ctx, id, AddItemInput{Category: entities.CategoryCabinet, Name: "B", Value: "2"})

	items, err := uc.RemoveItem(id, entities.CategoryCabinet, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items.Cabinets) != 1 {
		t.Fatalf("expected one cabinet left, got %d", len(items.Cabinets))
	}

	res, err := uc.Undo(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Restored || len(res.Items.Cabinets) != 2 {
		t.Fatalf("expected restore, got %+v", res)
	}

	// Second undo with a consumed buffer is a benign no-op.
	res, err = uc.Undo(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Restored {
		t.Fatalf("expected no-op undo")
	}

	if _, err := uc.ClearCategory(id, entities.CategoryCabinet); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items, _ = uc.Items(id)
	if len(items.Cabinets) != 0 {
		t.Fatalf("expected cleared category")
	}
}

func TestBuilderUseCase_Edit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockICatalogService(ctrl)
	catalog.EXPECT().UnitPrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(100.0, nil).AnyTimes()

	uc := NewBuilderUseCase(catalog)
	id := uc.StartSession()
	ctx := context.Background()
	uc.AddItem(ctx, id, AddItemInput{Category: entities.CategoryCabinet, Name: "A", Value: "4"})

	cur, err := uc.Edit(id, EditAction{Action: EditActionStart, Category: entities.CategoryCabinet, Index: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cur.Active || cur.Pending != "4" {
		t.Fatalf("unexpected cursor: %+v", cur)
	}

	if _, err := uc.Edit(id, EditAction{Action: EditActionType, Value: "8"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.Edit(id, EditAction{Action: EditActionCommit}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items, _ := uc.Items(id)
	if items.Cabinets[0].Quantity != 8 {
		t.Fatalf("expected committed quantity 8, got %d", items.Cabinets[0].Quantity)
	}

	t.Run("rejected commit keeps the edit open", func(t *testing.T) {
		uc.Edit(id, EditAction{Action: EditActionStart, Category: entities.CategoryCabinet, Index: 0})
		uc.Edit(id, EditAction{Action: EditActionType, Value: "0"})

		cur, err := uc.Edit(id, EditAction{Action: EditActionCommit})
		var vErr *builder.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if !cur.Active {
			t.Fatalf("expected cursor still active, got %+v", cur)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		if _, err := uc.Edit(id, EditAction{Action: "paste"}); !errors.Is(err, ErrInvalidEditAction) {
			t.Fatalf("expected ErrInvalidEditAction, got %v", err)
		}
	})
}

func TestBuilderUseCase_Totals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	catalog := mock_interfaces.NewMockICatalogService(ctrl)
	catalog.EXPECT().UnitPrice(gomock.Any(), gomock.Any(), gomock.Any()).Return(100.0, nil).AnyTimes()

	uc := NewBuilderUseCase(catalog)
	id := uc.StartSession()
	uc.AddItem(context.Background(), id, AddItemInput{Category: entities.CategoryCabinet, Name: "A", Value: "5"})

	totals, err := uc.Totals(id, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Subtotal != 500 || totals.InstallationCost != 75 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if totals.MarkupRate != 0.45 {
		t.Fatalf("expected small order markup, got %v", totals.MarkupRate)
	}
}
