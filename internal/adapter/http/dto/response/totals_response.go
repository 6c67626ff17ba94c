package response

import "cabinet_kiosk/internal/domain/entities"

// TotalsResponse mirrors the pricing engine breakdown for the kiosk summary
// panel and the export footer.
type TotalsResponse struct {
	CabinetTotal    float64 `json:"cabinet_total"`
	DoorTotal       float64 `json:"door_total"`
	FlooringTotal   float64 `json:"flooring_total"`
	CountertopTotal float64 `json:"countertop_total"`
	HardwareTotal   float64 `json:"hardware_total"`
	VanityTotal     float64 `json:"vanity_total"`
	KitchenTotal    float64 `json:"kitchen_total"`

	Subtotal float64 `json:"subtotal"`

	MarkupLabel  string  `json:"markup_label,omitempty"`
	MarkupRate   float64 `json:"markup_rate"`
	MarkupAmount float64 `json:"markup_amount"`

	InstallationRequested bool    `json:"installation_requested"`
	InstallationCost      float64 `json:"installation_cost"`

	GrandTotal float64 `json:"grand_total"`
}

func FromTotals(t entities.TotalsBreakdown) TotalsResponse {
	return TotalsResponse{
		CabinetTotal:          t.CabinetTotal,
		DoorTotal:             t.DoorTotal,
		FlooringTotal:         t.FlooringTotal,
		CountertopTotal:       t.CountertopTotal,
		HardwareTotal:         t.HardwareTotal,
		VanityTotal:           t.VanityTotal,
		KitchenTotal:          t.KitchenTotal,
		Subtotal:              t.Subtotal,
		MarkupLabel:           t.MarkupLabel,
		MarkupRate:            t.MarkupRate,
		MarkupAmount:          t.MarkupAmount,
		InstallationRequested: t.InstallationRequested,
		InstallationCost:      t.InstallationCost,
		GrandTotal:            t.GrandTotal,
	}
}
