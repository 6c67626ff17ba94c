package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEstimateNotFound      = errors.New("estimate not found")
	ErrInvalidEstimateID     = errors.New("invalid estimate id")
	ErrEmptyEstimate         = errors.New("estimate has no line items")
	ErrExporterNotConfigured = errors.New("document exporter not configured")
	ErrMissingRecipient      = errors.New("missing email recipient")
)

// SaveEstimateInput carries the customer details captured at save time.
type SaveEstimateInput struct {
	CustomerName          string
	CustomerEmail         string
	InstallationRequested bool
}

// IEstimateUseCase covers the estimate lifecycle around the builder: saving a
// session, status transitions, load-for-edit and document export.

type IEstimateUseCase interface {
	Save(ctx context.Context, sessionID string, in SaveEstimateInput) (entities.Estimate, error)
	GetByID(ctx context.Context, id string) (entities.Estimate, error)
	ApproveByID(ctx context.Context, id string) (entities.Estimate, error)
	RejectByID(ctx context.Context, id string) (entities.Estimate, error)
	CancelByID(ctx context.Context, id string) (entities.Estimate, error)
	LoadForEdit(ctx context.Context, id string) (string, error)
	ExportPDF(ctx context.Context, id string) ([]byte, error)
	ExportXLSX(ctx context.Context, id string) ([]byte, error)
	Email(ctx context.Context, id string, recipient string) error
}

type EstimateUseCase struct {
	repo     interfaces.IEstimateRepository
	builder  IBuilderUseCase
	exporter interfaces.IDocumentExporter
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(repo interfaces.IEstimateRepository, builder IBuilderUseCase, exporter interfaces.IDocumentExporter) *EstimateUseCase {
	return &EstimateUseCase{repo: repo, builder: builder, exporter: exporter}
}

// Save freezes the session's collections and totals into a persisted
// estimate record. The session stays usable: persistence failures leave the
// in-memory state valid and the user may retry without re-entering data.
func (u *EstimateUseCase) Save(ctx context.Context, sessionID string, in SaveEstimateInput) (entities.Estimate, error) {
	items, err := u.builder.Items(sessionID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if items.Empty() {
		return entities.Estimate{}, ErrEmptyEstimate
	}
	totals, err := u.builder.Totals(sessionID, in.InstallationRequested)
	if err != nil {
		return entities.Estimate{}, err
	}

	now := time.Now().UTC()
	e := entities.Estimate{
		ID:              uuid.NewString(),
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerEmail:   strings.TrimSpace(in.CustomerEmail),
		ItemSet:         items,
		TotalsBreakdown: totals,
		Status:          entities.EstimateStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return u.repo.Create(ctx, e)
}

func (u *EstimateUseCase) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Estimate{}, err
	}
	if e.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return e, nil
}

func (u *EstimateUseCase) ApproveByID(ctx context.Context, id string) (entities.Estimate, error) {
	return u.updateStatusByID(ctx, id, entities.EstimateStatusApproved)
}

func (u *EstimateUseCase) RejectByID(ctx context.Context, id string) (entities.Estimate, error) {
	return u.updateStatusByID(ctx, id, entities.EstimateStatusRejected)
}

func (u *EstimateUseCase) CancelByID(ctx context.Context, id string) (entities.Estimate, error) {
	return u.updateStatusByID(ctx, id, entities.EstimateStatusCanceled)
}

func (u *EstimateUseCase) updateStatusByID(ctx context.Context, id string, status entities.EstimateStatus) (entities.Estimate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Estimate{}, ErrInvalidEstimateID
	}

	updated, err := u.repo.UpdateStatusByID(ctx, id, status)
	if err != nil {
		return entities.Estimate{}, err
	}
	if updated.ID == "" {
		return entities.Estimate{}, ErrEstimateNotFound
	}
	return updated, nil
}

// LoadForEdit opens a fresh builder session pre-loaded with the saved
// collections (atomic replace, bypassing undo) and returns its id.
func (u *EstimateUseCase) LoadForEdit(ctx context.Context, id string) (string, error) {
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.builder.NewSessionFromItems(e.ItemSet), nil
}

func (u *EstimateUseCase) ExportPDF(ctx context.Context, id string) ([]byte, error) {
	if u.exporter == nil {
		return nil, ErrExporterNotConfigured
	}
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.exporter.RenderPDF(e)
}

func (u *EstimateUseCase) ExportXLSX(ctx context.Context, id string) ([]byte, error) {
	if u.exporter == nil {
		return nil, ErrExporterNotConfigured
	}
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.exporter.RenderXLSX(e)
}

// Email sends the estimate to the given recipient, defaulting to the
// customer email captured at save time.
func (u *EstimateUseCase) Email(ctx context.Context, id string, recipient string) error {
	if u.exporter == nil {
		return ErrExporterNotConfigured
	}
	e, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		recipient = e.CustomerEmail
	}
	if recipient == "" {
		return ErrMissingRecipient
	}
	return u.exporter.EmailEstimate(ctx, e, recipient)
}
