package entities

// Category identifies one of the estimator's seven line-item collections.
//
// Domain notes:
//   - Each category holds an ordered sequence; insertion order is user-visible
//     and must survive persistence and export.
//   - Cabinets and replacement doors are separate collections with disjoint
//     catalog subsets, but they share the markup-tier quantity count.

type Category string

const (
	CategoryCabinet    Category = "cabinet"
	CategoryDoor       Category = "door"
	CategoryFlooring   Category = "flooring"
	CategoryCountertop Category = "countertop"
	CategoryHardware   Category = "hardware"
	CategoryVanity     Category = "vanity"
	CategoryKitchen    Category = "kitchen"
)

// Categories is the fixed display/export order.
var Categories = []Category{
	CategoryCabinet,
	CategoryDoor,
	CategoryFlooring,
	CategoryCountertop,
	CategoryHardware,
	CategoryVanity,
	CategoryKitchen,
}

// Tier is the quality/price level for vanity and kitchen packages.
type Tier string

const (
	TierGood   Tier = "good"
	TierBetter Tier = "better"
	TierBest   Tier = "best"
)

// ValidTier reports whether t is one of the three known tiers.
func ValidTier(t Tier) bool {
	switch t {
	case TierGood, TierBetter, TierBest:
		return true
	}
	return false
}

// All line items are value objects: price fields are snapshots frozen at add
// time and never recomputed from the catalog. Only the quantity/measurement
// field mutates, and only through the edit flow.

type CabinetLineItem struct {
	Type      string  `json:"type"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (i CabinetLineItem) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

type DoorLineItem struct {
	Type      string  `json:"type"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

func (i DoorLineItem) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

type FlooringLineItem struct {
	Type             string  `json:"type"`
	SquareFeet       float64 `json:"square_feet"`
	UnitPricePerSqFt float64 `json:"unit_price_per_sq_ft"`
}

func (i FlooringLineItem) LineTotal() float64 {
	return i.SquareFeet * i.UnitPricePerSqFt
}

type CountertopLineItem struct {
	Type                 string  `json:"type"`
	LinearFeet           float64 `json:"linear_feet"`
	UnitPricePerLinearFt float64 `json:"unit_price_per_linear_ft"`
}

func (i CountertopLineItem) LineTotal() float64 {
	return i.LinearFeet * i.UnitPricePerLinearFt
}

type HardwareLineItem struct {
	Type      string  `json:"type"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	ImageRef  string  `json:"image_ref,omitempty"`
}

func (i HardwareLineItem) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// VanityLineItem freezes the tier base price plus the flag-dependent add-on
// costs at add time, so a later tier-table edit never rewrites an estimate.
type VanityLineItem struct {
	Tier               Tier    `json:"tier"`
	Quantity           int     `json:"quantity"`
	BasePrice          float64 `json:"base_price"`
	SingleToDouble     bool    `json:"single_to_double"`
	PlumbingWallChange bool    `json:"plumbing_wall_change"`
	ConversionCost     float64 `json:"conversion_cost"`
	PlumbingCost       float64 `json:"plumbing_cost"`
}

func (i VanityLineItem) LineTotal() float64 {
	unit := i.BasePrice
	if i.SingleToDouble {
		unit += i.ConversionCost
	}
	if i.PlumbingWallChange {
		unit += i.PlumbingCost
	}
	return float64(i.Quantity) * unit
}

// KitchenLineItem follows the same tier-resolution pattern as VanityLineItem.
type KitchenLineItem struct {
	Tier              Tier    `json:"tier"`
	Quantity          int     `json:"quantity"`
	BasePrice         float64 `json:"base_price"`
	CabinetUpgrade    bool    `json:"cabinet_upgrade"`
	CountertopUpgrade bool    `json:"countertop_upgrade"`
	CabinetCost       float64 `json:"cabinet_cost"`
	CountertopCost    float64 `json:"countertop_cost"`
}

func (i KitchenLineItem) LineTotal() float64 {
	unit := i.BasePrice
	if i.CabinetUpgrade {
		unit += i.CabinetCost
	}
	if i.CountertopUpgrade {
		unit += i.CountertopCost
	}
	return float64(i.Quantity) * unit
}

// CatalogItem is a read-only price-list entry supplied by the catalog
// reference at add time.
type CatalogItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}
