package request

import "cabinet_kiosk/internal/usecase"

// SaveEstimateRequest carries the customer details captured when the session
// is frozen into a persisted estimate.
type SaveEstimateRequest struct {
	CustomerName          string `json:"customer_name"`
	CustomerEmail         string `json:"customer_email"`
	InstallationRequested bool   `json:"installation_requested"`
}

func (r SaveEstimateRequest) ToInput() usecase.SaveEstimateInput {
	return usecase.SaveEstimateInput{
		CustomerName:          r.CustomerName,
		CustomerEmail:         r.CustomerEmail,
		InstallationRequested: r.InstallationRequested,
	}
}
