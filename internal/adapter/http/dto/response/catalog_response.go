package response

import "cabinet_kiosk/internal/domain/entities"

type CatalogItemResponse struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

type CatalogCategoryResponse struct {
	Category string                `json:"category"`
	Items    []CatalogItemResponse `json:"items"`
}

func FromCatalogItems(category entities.Category, items []entities.CatalogItem) CatalogCategoryResponse {
	out := CatalogCategoryResponse{Category: string(category), Items: make([]CatalogItemResponse, 0, len(items))}
	for _, i := range items {
		out.Items = append(out.Items, CatalogItemResponse{Name: i.Name, UnitPrice: i.UnitPrice})
	}
	return out
}
