package pricing

import (
	"errors"

	"cabinet_kiosk/internal/domain/entities"
)

var ErrUnknownTier = errors.New("unknown tier")

// TierPricing is the fixed price data for one good/better/best tier.
// Min/Max bound the accepted quantity for tier-priced packages.
type TierPricing struct {
	Base float64
	Min  int
	Max  int
}

// vanityPricing and kitchenPricing are the fixed tier tables. They are read
// once at add time and the resolved figures are frozen onto the line item, so
// editing these tables never rewrites an existing estimate.

type vanityTier struct {
	Base               float64
	SingleToDoubleCost float64
	PlumbingWallCost   float64
}

var vanityPricing = map[entities.Tier]vanityTier{
	entities.TierGood:   {Base: 899, SingleToDoubleCost: 350, PlumbingWallCost: 450},
	entities.TierBetter: {Base: 1299, SingleToDoubleCost: 450, PlumbingWallCost: 500},
	entities.TierBest:   {Base: 1899, SingleToDoubleCost: 600, PlumbingWallCost: 575},
}

type kitchenTier struct {
	Base              float64
	CabinetUpgrade    float64
	CountertopUpgrade float64
}

var kitchenPricing = map[entities.Tier]kitchenTier{
	entities.TierGood:   {Base: 4999, CabinetUpgrade: 1500, CountertopUpgrade: 1200},
	entities.TierBetter: {Base: 7999, CabinetUpgrade: 2000, CountertopUpgrade: 1800},
	entities.TierBest:   {Base: 12999, CabinetUpgrade: 3000, CountertopUpgrade: 2500},
}

// VanityTierPricing exposes the tier table for UI/price-list consumers.
func VanityTierPricing(tier entities.Tier) (TierPricing, error) {
	t, ok := vanityPricing[tier]
	if !ok {
		return TierPricing{}, ErrUnknownTier
	}
	return TierPricing{Base: t.Base, Min: 1, Max: 1000}, nil
}

// KitchenTierPricing exposes the tier table for UI/price-list consumers.
func KitchenTierPricing(tier entities.Tier) (TierPricing, error) {
	t, ok := kitchenPricing[tier]
	if !ok {
		return TierPricing{}, ErrUnknownTier
	}
	return TierPricing{Base: t.Base, Min: 1, Max: 1000}, nil
}

// ResolveVanity builds a vanity line item with every tier-dependent cost
// frozen onto the record.
func ResolveVanity(tier entities.Tier, quantity int, singleToDouble, plumbingWallChange bool) (entities.VanityLineItem, error) {
	t, ok := vanityPricing[tier]
	if !ok {
		return entities.VanityLineItem{}, ErrUnknownTier
	}
	return entities.VanityLineItem{
		Tier:               tier,
		Quantity:           quantity,
		BasePrice:          t.Base,
		SingleToDouble:     singleToDouble,
		PlumbingWallChange: plumbingWallChange,
		ConversionCost:     t.SingleToDoubleCost,
		PlumbingCost:       t.PlumbingWallCost,
	}, nil
}

// ResolveKitchen builds a kitchen line item with every tier-dependent cost
// frozen onto the record.
func ResolveKitchen(tier entities.Tier, quantity int, cabinetUpgrade, countertopUpgrade bool) (entities.KitchenLineItem, error) {
	t, ok := kitchenPricing[tier]
	if !ok {
		return entities.KitchenLineItem{}, ErrUnknownTier
	}
	return entities.KitchenLineItem{
		Tier:              tier,
		Quantity:          quantity,
		BasePrice:         t.Base,
		CabinetUpgrade:    cabinetUpgrade,
		CountertopUpgrade: countertopUpgrade,
		CabinetCost:       t.CabinetUpgrade,
		CountertopCost:    t.CountertopUpgrade,
	}, nil
}
