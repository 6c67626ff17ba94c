package entities

import "time"

// EstimateStatus represents the lifecycle of a saved estimate.
//
// Domain notes:
//   - The kiosk service is the source of truth for estimate/payment state.
//   - A deposit payment is only accepted against an approved estimate.

type EstimateStatus string

const (
	EstimateStatusPending  EstimateStatus = "pending"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
	EstimateStatusCanceled EstimateStatus = "canceled"
)

// Estimate is the persisted estimate record: the seven raw collections plus
// the totals breakdown frozen at save time.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Totals are float64, mirroring the in-memory engine. Line items keep
//     their snapshotted unit prices so a catalog change never rewrites a
//     saved estimate.

type Estimate struct {
	ID            string `json:"id"`
	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`

	ItemSet
	TotalsBreakdown

	Status    EstimateStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
