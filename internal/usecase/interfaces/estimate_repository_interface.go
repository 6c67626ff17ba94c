package interfaces

import (
	"context"

	"cabinet_kiosk/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The kiosk service must be able to:
//   - persist a finished builder session as an estimate record
//   - load an estimate back for edit or export
//   - update estimate status (approve/reject/cancel)

type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	UpdateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error)
}
