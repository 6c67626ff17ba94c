package entities

// TotalsBreakdown is the pricing engine output. It is derived state: the
// engine recomputes it from the collections on every change, and the exporter
// and UI summary consume it verbatim.
type TotalsBreakdown struct {
	CabinetTotal    float64 `json:"cabinet_total"`
	DoorTotal       float64 `json:"door_total"`
	FlooringTotal   float64 `json:"flooring_total"`
	CountertopTotal float64 `json:"countertop_total"`
	HardwareTotal   float64 `json:"hardware_total"`
	VanityTotal     float64 `json:"vanity_total"`
	KitchenTotal    float64 `json:"kitchen_total"`

	Subtotal float64 `json:"subtotal"`

	// MarkupLabel is empty when no markup bracket applies.
	MarkupLabel  string  `json:"markup_label,omitempty"`
	MarkupRate   float64 `json:"markup_rate"`
	MarkupAmount float64 `json:"markup_amount"`

	InstallationRequested bool    `json:"installation_requested"`
	InstallationCost      float64 `json:"installation_cost"`

	GrandTotal float64 `json:"grand_total"`
}

// CategoryTotal returns the subtotal for one category.
func (t TotalsBreakdown) CategoryTotal(c Category) float64 {
	switch c {
	case CategoryCabinet:
		return t.CabinetTotal
	case CategoryDoor:
		return t.DoorTotal
	case CategoryFlooring:
		return t.FlooringTotal
	case CategoryCountertop:
		return t.CountertopTotal
	case CategoryHardware:
		return t.HardwareTotal
	case CategoryVanity:
		return t.VanityTotal
	case CategoryKitchen:
		return t.KitchenTotal
	}
	return 0
}
