package interfaces

import (
	"context"

	"cabinet_kiosk/internal/domain/entities"
)

// IDocumentExporter renders a saved estimate for the customer: a row-grouped
// table per non-empty category plus the summary block (subtotal, markup line
// only when a bracket applied, installation line only when requested, grand
// total).
type IDocumentExporter interface {
	RenderPDF(e entities.Estimate) ([]byte, error)
	RenderXLSX(e entities.Estimate) ([]byte, error)
	EmailEstimate(ctx context.Context, e entities.Estimate, recipient string) error
}
