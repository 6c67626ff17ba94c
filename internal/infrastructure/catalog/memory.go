package catalog

import (
	"context"
	"sort"
	"strings"

	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase/interfaces"
)

// MemoryCatalog is the seeded in-process price list, used for local runs and
// showroom kiosks without a catalog table (CATALOG_MODE=memory). Prices here
// are only ever read at add time; line items keep their own snapshots.
type MemoryCatalog struct {
	prices map[entities.Category]map[string]float64
}

var _ interfaces.ICatalogService = (*MemoryCatalog)(nil)

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{prices: map[entities.Category]map[string]float64{
		entities.CategoryCabinet: {
			"Base Cabinet 12in":        185,
			"Base Cabinet 18in":        215,
			"Base Cabinet 24in":        245,
			"Base Cabinet 30in":        275,
			"Base Cabinet 36in":        305,
			"Wall Cabinet 12in":        125,
			"Wall Cabinet 18in":        150,
			"Wall Cabinet 24in":        175,
			"Wall Cabinet 30in":        200,
			"Wall Cabinet 36in":        225,
			"Tall Pantry Cabinet 84in": 520,
			"Corner Base Cabinet":      340,
			"Sink Base Cabinet 36in":   290,
		},
		entities.CategoryDoor: {
			"Shaker Door White":    45,
			"Shaker Door Gray":     48,
			"Raised Panel Oak":     62,
			"Raised Panel Cherry":  74,
			"Flat Panel Maple":     52,
			"Glass Insert Door":    88,
			"Beadboard Door White": 58,
		},
		entities.CategoryFlooring: {
			"Luxury Vinyl Plank":  4.25,
			"Engineered Hardwood": 6.75,
			"Solid Oak Hardwood":  8.50,
			"Ceramic Tile":        5.40,
			"Porcelain Tile":      6.10,
			"Laminate":            3.15,
		},
		entities.CategoryCountertop: {
			"Granite":       68,
			"Quartz":        75,
			"Butcher Block": 42,
			"Solid Surface": 55,
			"Laminate":      28,
			"Marble":        95,
		},
		entities.CategoryHardware: {
			"Bar Pull 5in Brushed Nickel": 6.50,
			"Bar Pull 5in Matte Black":    7.25,
			"Knob Round Brushed Nickel":   4.25,
			"Knob Round Oil Bronze":       4.95,
			"Cup Pull Antique Brass":      8.40,
			"Soft Close Hinge Pair":       11.00,
		},
	}}
}

func (c *MemoryCatalog) UnitPrice(_ context.Context, category entities.Category, name string) (float64, error) {
	byName, ok := c.prices[category]
	if !ok {
		return 0, interfaces.ErrPriceNotFound
	}
	// Kiosk selections come from our own lists, but tolerate case drift.
	if price, ok := byName[name]; ok {
		return price, nil
	}
	for n, price := range byName {
		if strings.EqualFold(n, name) {
			return price, nil
		}
	}
	return 0, interfaces.ErrPriceNotFound
}

func (c *MemoryCatalog) ListCategory(_ context.Context, category entities.Category) ([]entities.CatalogItem, error) {
	byName, ok := c.prices[category]
	if !ok {
		return nil, nil
	}
	items := make([]entities.CatalogItem, 0, len(byName))
	for name, price := range byName {
		items = append(items, entities.CatalogItem{Name: name, UnitPrice: price})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}
