package pricing

import (
	"errors"
	"testing"

	"cabinet_kiosk/internal/domain/entities"
)

func TestResolveVanity(t *testing.T) {
	t.Run("freezes tier costs onto the item", func(t *testing.T) {
		item, err := ResolveVanity(entities.TierBetter, 2, true, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.BasePrice != 1299 || item.ConversionCost != 450 || item.PlumbingCost != 500 {
			t.Fatalf("unexpected frozen pricing: %+v", item)
		}
		if !item.SingleToDouble || item.PlumbingWallChange {
			t.Fatalf("unexpected option flags: %+v", item)
		}
		// Plumbing cost is frozen but not charged when the flag is off.
		if item.LineTotal() != 2*(1299+450) {
			t.Fatalf("expected line total %v, got %v", 2*(1299+450), item.LineTotal())
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		if _, err := ResolveVanity(entities.Tier("premium"), 1, false, false); !errors.Is(err, ErrUnknownTier) {
			t.Fatalf("expected ErrUnknownTier, got %v", err)
		}
	})
}

func TestResolveKitchen(t *testing.T) {
	t.Run("freezes tier costs onto the item", func(t *testing.T) {
		item, err := ResolveKitchen(entities.TierGood, 1, false, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.BasePrice != 4999 || item.CabinetCost != 1500 || item.CountertopCost != 1200 {
			t.Fatalf("unexpected frozen pricing: %+v", item)
		}
		if item.LineTotal() != 4999+1200 {
			t.Fatalf("expected line total %v, got %v", 4999+1200, item.LineTotal())
		}
	})

	t.Run("unknown tier", func(t *testing.T) {
		if _, err := ResolveKitchen(entities.Tier(""), 1, false, false); !errors.Is(err, ErrUnknownTier) {
			t.Fatalf("expected ErrUnknownTier, got %v", err)
		}
	})
}

func TestTierPricingLookups(t *testing.T) {
	for _, tier := range []entities.Tier{entities.TierGood, entities.TierBetter, entities.TierBest} {
		if _, err := VanityTierPricing(tier); err != nil {
			t.Fatalf("vanity pricing for %s: %v", tier, err)
		}
		if _, err := KitchenTierPricing(tier); err != nil {
			t.Fatalf("kitchen pricing for %s: %v", tier, err)
		}
	}
	if _, err := VanityTierPricing("deluxe"); !errors.Is(err, ErrUnknownTier) {
		t.Fatalf("expected ErrUnknownTier, got %v", err)
	}
}
