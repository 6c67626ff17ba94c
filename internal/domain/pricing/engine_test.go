package pricing

import (
	"math"
	"testing"

	"cabinet_kiosk/internal/domain/entities"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMarkupForQuantity_Brackets(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		rate     float64
		label    string
	}{
		{"below ten gets small order markup", 9, 0.45, "Small Order Markup (45%)"},
		{"one unit gets small order markup", 1, 0.45, "Small Order Markup (45%)"},
		{"ten falls through every bracket", 10, 0, ""},
		{"eleven falls through every bracket", 11, 0, ""},
		{"twelve gets medium order markup", 12, 0.35, "Medium Order Markup (35%)"},
		{"fifteen gets medium order markup", 15, 0.35, "Medium Order Markup (35%)"},
		{"sixteen falls through every bracket", 16, 0, ""},
		{"seventeen falls through every bracket", 17, 0, ""},
		{"eighteen gets bulk order markup", 18, 0.30, "Bulk Order Markup (30%)"},
		{"twenty five gets bulk order markup", 25, 0.30, "Bulk Order Markup (30%)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tier := MarkupForQuantity(tc.quantity)
			if tier.Rate != tc.rate {
				t.Fatalf("expected rate %v, got %v", tc.rate, tier.Rate)
			}
			if tier.Label != tc.label {
				t.Fatalf("expected label %q, got %q", tc.label, tier.Label)
			}
		})
	}
}

func TestComputeTotals_EmptyCollections(t *testing.T) {
	got := ComputeTotals(entities.ItemSet{}, false)
	if got.Subtotal != 0 {
		t.Fatalf("expected zero subtotal, got %v", got.Subtotal)
	}
	// An empty estimate still matches the <10 bracket; the amount is zero.
	if got.MarkupRate != 0.45 {
		t.Fatalf("expected small order rate on empty set, got %v", got.MarkupRate)
	}
	if got.MarkupAmount != 0 || got.GrandTotal != 0 {
		t.Fatalf("expected zero totals, got markup=%v grand=%v", got.MarkupAmount, got.GrandTotal)
	}
}

func TestComputeTotals_MarkupUsesCombinedCabinetAndDoorQuantity(t *testing.T) {
	items := entities.ItemSet{
		Cabinets: []entities.CabinetLineItem{{Type: "Base Cabinet 24in", Quantity: 3, UnitPrice: 100}},
		Doors:    []entities.DoorLineItem{{Type: "Shaker Door White", Quantity: 9, UnitPrice: 50}},
	}

	got := ComputeTotals(items, false)
	// 3 + 9 = 12 lands in the medium bracket.
	if got.MarkupRate != 0.35 {
		t.Fatalf("expected medium rate for combined quantity 12, got %v", got.MarkupRate)
	}
	if !almostEqual(got.Subtotal, 750) {
		t.Fatalf("expected subtotal 750, got %v", got.Subtotal)
	}
	if !almostEqual(got.MarkupAmount, 750*0.35) {
		t.Fatalf("expected markup 262.5, got %v", got.MarkupAmount)
	}

	// One more door (13 total) stays in the medium bracket.
	items.Doors[0].Quantity = 10
	if got := ComputeTotals(items, false); got.MarkupRate != 0.35 {
		t.Fatalf("expected medium rate for combined quantity 13, got %v", got.MarkupRate)
	}

	// Dropping two (11 total) falls into the bracket gap.
	items.Doors[0].Quantity = 8
	if got := ComputeTotals(items, false); got.MarkupRate != 0 {
		t.Fatalf("expected zero rate for combined quantity 11, got %v", got.MarkupRate)
	}
}

func TestComputeTotals_InstallationChargedOnPreMarkupSubtotal(t *testing.T) {
	items := entities.ItemSet{
		Cabinets: []entities.CabinetLineItem{{Type: "Base Cabinet 24in", Quantity: 4, UnitPrice: 250}},
	}

	got := ComputeTotals(items, true)
	if !almostEqual(got.Subtotal, 1000) {
		t.Fatalf("expected subtotal 1000, got %v", got.Subtotal)
	}
	// Installation is 15% of the materials subtotal, not of the marked-up sum.
	if !almostEqual(got.InstallationCost, 150) {
		t.Fatalf("expected installation 150, got %v", got.InstallationCost)
	}
	if !almostEqual(got.MarkupAmount, 450) {
		t.Fatalf("expected markup 450, got %v", got.MarkupAmount)
	}
	if !almostEqual(got.GrandTotal, 1600) {
		t.Fatalf("expected grand total 1600, got %v", got.GrandTotal)
	}
}

func TestComputeTotals_InstallationNotRequested(t *testing.T) {
	items := entities.ItemSet{
		Flooring: []entities.FlooringLineItem{{Type: "Laminate", SquareFeet: 200, UnitPricePerSqFt: 3}},
	}

	got := ComputeTotals(items, false)
	if got.InstallationCost != 0 {
		t.Fatalf("expected no installation cost, got %v", got.InstallationCost)
	}
	if !almostEqual(got.FlooringTotal, 600) {
		t.Fatalf("expected flooring total 600, got %v", got.FlooringTotal)
	}
}

func TestComputeTotals_GrandTotalIdentity(t *testing.T) {
	items := entities.ItemSet{
		Cabinets:    []entities.CabinetLineItem{{Quantity: 5, UnitPrice: 185}, {Quantity: 2, UnitPrice: 305}},
		Doors:       []entities.DoorLineItem{{Quantity: 6, UnitPrice: 45}},
		Flooring:    []entities.FlooringLineItem{{SquareFeet: 120.5, UnitPricePerSqFt: 4.25}},
		Countertops: []entities.CountertopLineItem{{LinearFeet: 18, UnitPricePerLinearFt: 68}},
		Hardware:    []entities.HardwareLineItem{{Quantity: 24, UnitPrice: 6.5}},
		Vanities: []entities.VanityLineItem{
			{Tier: entities.TierBetter, Quantity: 1, BasePrice: 1299, SingleToDouble: true, ConversionCost: 450, PlumbingCost: 500},
		},
		Kitchens: []entities.KitchenLineItem{
			{Tier: entities.TierGood, Quantity: 1, BasePrice: 4999, CountertopUpgrade: true, CabinetCost: 1500, CountertopCost: 1200},
		},
	}

	got := ComputeTotals(items, true)

	sum := got.CabinetTotal + got.DoorTotal + got.FlooringTotal + got.CountertopTotal +
		got.HardwareTotal + got.VanityTotal + got.KitchenTotal
	if !almostEqual(got.Subtotal, sum) {
		t.Fatalf("subtotal %v does not equal category sum %v", got.Subtotal, sum)
	}
	if !almostEqual(got.GrandTotal, got.Subtotal+got.MarkupAmount+got.InstallationCost) {
		t.Fatalf("grand total identity broken: %v != %v + %v + %v",
			got.GrandTotal, got.Subtotal, got.MarkupAmount, got.InstallationCost)
	}
}

func TestComputeTotals_VanityAndKitchenOptionCosts(t *testing.T) {
	vanity := entities.VanityLineItem{
		Tier: entities.TierGood, Quantity: 2, BasePrice: 899,
		SingleToDouble: true, PlumbingWallChange: true,
		ConversionCost: 350, PlumbingCost: 450,
	}
	if !almostEqual(vanity.LineTotal(), 2*(899+350+450)) {
		t.Fatalf("expected vanity line total %v, got %v", 2*(899+350+450), vanity.LineTotal())
	}

	kitchen := entities.KitchenLineItem{
		Tier: entities.TierBest, Quantity: 1, BasePrice: 12999,
		CabinetUpgrade: true, CabinetCost: 3000, CountertopCost: 2500,
	}
	// Countertop upgrade not selected; its cost must not apply.
	if !almostEqual(kitchen.LineTotal(), 12999+3000) {
		t.Fatalf("expected kitchen line total %v, got %v", 12999+3000, kitchen.LineTotal())
	}
}
