package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase/interfaces"
)

var (
	ErrDepositPaymentNotFound     = errors.New("deposit payment not found")
	ErrInvalidPaymentEstimateID   = errors.New("invalid estimate_id")
	ErrInvalidMPPayload           = errors.New("invalid mercado pago payload")
	ErrEstimateNotApproved        = errors.New("estimate not approved")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IDepositPaymentUseCase creates and records the deposit collected against an
// approved estimate. The charged amount is always the estimate's grand total
// from the database, never the caller's payload.

type IDepositPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, estimateID string, mpPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo         interfaces.IDepositPaymentRepository
	estimateRepo interfaces.IEstimateRepository
	gateway      interfaces.IPaymentGateway
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(repo interfaces.IDepositPaymentRepository, estimateRepo interfaces.IEstimateRepository, gateway interfaces.IPaymentGateway) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{repo: repo, estimateRepo: estimateRepo, gateway: gateway}
}

func (u *DepositPaymentUseCase) CreateAndApprove(ctx context.Context, estimateID string, mpPayload json.RawMessage) (entities.DepositPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_estimate_id=%q payload_len=%d", estimateID, len(mpPayload))
	mockMode := isPaymentMockEnabled()
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return entities.DepositPayment{}, ErrInvalidPaymentEstimateID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Printf("[payment][usecase] invalid payload estimate_id=%s", estimateID)
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if !mockMode && u.gateway == nil {
		return entities.DepositPayment{}, errors.New("payment gateway not configured")
	}
	if u.estimateRepo == nil {
		return entities.DepositPayment{}, errors.New("estimate repository not configured")
	}

	est, err := u.estimateRepo.GetByID(ctx, estimateID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading estimate estimate_id=%s err=%v", estimateID, err)
		return entities.DepositPayment{}, err
	}
	if est.ID == "" {
		return entities.DepositPayment{}, ErrEstimateNotFound
	}
	if !mockMode && est.Status != entities.EstimateStatusApproved {
		log.Printf("[payment][usecase] estimate not approved estimate_id=%s status=%s", estimateID, est.Status)
		return entities.DepositPayment{}, ErrEstimateNotApproved
	}
	log.Printf("[payment][usecase] estimate loaded estimate_id=%s status=%s grand_total=%.2f", estimateID, est.Status, est.GrandTotal)

	// Mercado Pago uses external_reference to reconcile events; the amount is
	// always taken from the persisted estimate.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = estimateID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Estimate %s deposit", estimateID)
		}
		reqMap["transaction_amount"] = est.GrandTotal
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
		}
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)

	if mockMode {
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		_ = json.Unmarshal(mpPayload, &mockResp)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.DepositPayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed estimate_id=%s err=%v", estimateID, err)
			if isGatewayUnauthorized(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.DepositPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.DepositPayment{}, err
		}
	}
	log.Printf("[payment][usecase] gateway success estimate_id=%s provider_payment_id=%s provider_status=%s", estimateID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed estimate_id=%s err=%v", estimateID, err)
	}

	p := entities.DepositPayment{
		ID:           providerPaymentID,
		EstimateID:   estimateID,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusApproved,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed estimate_id=%s payment_id=%s err=%v", estimateID, p.ID, err)
		return entities.DepositPayment{}, err
	}
	return created, nil
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByEstimateID(ctx context.Context, estimateID string) ([]entities.DepositPayment, error) {
	estimateID = strings.TrimSpace(estimateID)
	if estimateID == "" {
		return nil, ErrInvalidPaymentEstimateID
	}
	return u.repo.ListByEstimateID(ctx, estimateID)
}

func isPaymentMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unauthorized") || strings.Contains(msg, "status 401")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "bad request") || strings.Contains(msg, "status 400")
}
