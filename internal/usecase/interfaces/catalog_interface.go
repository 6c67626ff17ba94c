package interfaces

import (
	"context"
	"errors"

	"cabinet_kiosk/internal/domain/entities"
)

// ErrPriceNotFound is returned when a selection references a name no longer
// in the catalog. Adds must refuse rather than insert a zero-priced item.
var ErrPriceNotFound = errors.New("price not found")

// ICatalogService is the read-only price list consulted at add time. The
// resolved price is snapshotted onto the line item, so later catalog changes
// never retroactively alter existing estimates.
type ICatalogService interface {
	UnitPrice(ctx context.Context, category entities.Category, name string) (float64, error)
	ListCategory(ctx context.Context, category entities.Category) ([]entities.CatalogItem, error)
}
