package pricing

import "cabinet_kiosk/internal/domain/entities"

// InstallationRate is charged on the materials subtotal only, before markup.
const InstallationRate = 0.15

// ComputeTotals is the pricing engine: a pure function from the seven
// collections plus the installation flag to a totals breakdown. It never
// stores anything; callers recompute after every store mutation.
func ComputeTotals(items entities.ItemSet, installationRequested bool) entities.TotalsBreakdown {
	t := entities.TotalsBreakdown{InstallationRequested: installationRequested}

	totalCabinetQuantity := 0
	for _, i := range items.Cabinets {
		t.CabinetTotal += i.LineTotal()
		totalCabinetQuantity += i.Quantity
	}
	for _, i := range items.Doors {
		t.DoorTotal += i.LineTotal()
		totalCabinetQuantity += i.Quantity
	}
	for _, i := range items.Flooring {
		t.FlooringTotal += i.LineTotal()
	}
	for _, i := range items.Countertops {
		t.CountertopTotal += i.LineTotal()
	}
	for _, i := range items.Hardware {
		t.HardwareTotal += i.LineTotal()
	}
	for _, i := range items.Vanities {
		t.VanityTotal += i.LineTotal()
	}
	for _, i := range items.Kitchens {
		t.KitchenTotal += i.LineTotal()
	}

	t.Subtotal = t.CabinetTotal + t.DoorTotal + t.FlooringTotal +
		t.CountertopTotal + t.HardwareTotal + t.VanityTotal + t.KitchenTotal

	tier := MarkupForQuantity(totalCabinetQuantity)
	t.MarkupLabel = tier.Label
	t.MarkupRate = tier.Rate
	t.MarkupAmount = t.Subtotal * tier.Rate

	if installationRequested {
		t.InstallationCost = t.Subtotal * InstallationRate
	}

	t.GrandTotal = t.Subtotal + t.MarkupAmount + t.InstallationCost
	return t
}
