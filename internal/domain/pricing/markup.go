package pricing

import "fmt"

// MarkupTier is the quantity-dependent markup applied to the materials
// subtotal.
type MarkupTier struct {
	Rate  float64
	Label string
}

const (
	smallOrderRate  = 0.45
	mediumOrderRate = 0.35
	bulkOrderRate   = 0.30
)

// MarkupForQuantity selects the markup tier from the combined cabinet +
// replacement-door unit count, evaluated in this exact bracket order.
//
// Quantities 10, 11, 16 and 17 fall through every bracket and get 0% markup.
// That gap is a literal reproduction of the observed production brackets;
// do not close it without confirmed product intent.
func MarkupForQuantity(totalCabinetQuantity int) MarkupTier {
	switch {
	case totalCabinetQuantity < 10:
		return MarkupTier{Rate: smallOrderRate, Label: fmt.Sprintf("Small Order Markup (%.0f%%)", smallOrderRate*100)}
	case totalCabinetQuantity >= 12 && totalCabinetQuantity <= 15:
		return MarkupTier{Rate: mediumOrderRate, Label: fmt.Sprintf("Medium Order Markup (%.0f%%)", mediumOrderRate*100)}
	case totalCabinetQuantity >= 18:
		return MarkupTier{Rate: bulkOrderRate, Label: fmt.Sprintf("Bulk Order Markup (%.0f%%)", bulkOrderRate*100)}
	default:
		return MarkupTier{}
	}
}
