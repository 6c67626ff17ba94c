package response

import (
	"time"

	"cabinet_kiosk/internal/domain/entities"
)

type EstimateResponse struct {
	EstimateID    string           `json:"estimate_id"`
	ID            string           `json:"id"`
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	Items         entities.ItemSet `json:"items"`
	Totals        TotalsResponse   `json:"totals"`
	Status        string           `json:"status"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		EstimateID:    e.ID,
		ID:            e.ID,
		CustomerName:  e.CustomerName,
		CustomerEmail: e.CustomerEmail,
		Items:         e.ItemSet,
		Totals:        FromTotals(e.TotalsBreakdown),
		Status:        string(e.Status),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
