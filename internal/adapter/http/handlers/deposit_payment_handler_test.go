package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cabinet_kiosk/internal/adapter/http/handlers/mocks"
	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDepositPaymentHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)

		h := NewDepositPaymentHandler(uc)
		r := gin.New()
		r.POST("/v1/payments/:estimate_id", h.CreatePaymentByEstimateID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/est-1", bytes.NewBufferString(`{`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid body falls back to empty payload in mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", json.RawMessage("{}")).
			Return(entities.DepositPayment{ID: "pay-1", EstimateID: "est-1", Status: entities.PaymentStatusApproved}, nil)

		h := NewDepositPaymentHandler(uc)
		r := gin.New()
		r.POST("/v1/payments/:estimate_id", h.CreatePaymentByEstimateID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/est-1", bytes.NewBufferString(`{`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("mp_payload envelope is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, payload json.RawMessage) (entities.DepositPayment, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if req["payment_method_id"] != "pix" {
					t.Fatalf("expected unwrapped payload, got %s", payload)
				}
				return entities.DepositPayment{ID: "pay-1", Status: entities.PaymentStatusApproved}, nil
			})

		h := NewDepositPaymentHandler(uc)
		r := gin.New()
		r.POST("/v1/payments/:estimate_id", h.CreatePaymentByEstimateID)

		body := `{"mp_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/payments/est-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("estimate not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", gomock.Any()).
			Return(entities.DepositPayment{}, usecase.ErrEstimateNotApproved)

		h := NewDepositPaymentHandler(uc)
		r := gin.New()
		r.POST("/v1/payments/:estimate_id", h.CreatePaymentByEstimateID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/est-1",
			bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("estimate not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "missing", gomock.Any()).
			Return(entities.DepositPayment{}, usecase.ErrEstimateNotFound)

		h := NewDepositPaymentHandler(uc)
		r := gin.New()
		r.POST("/v1/payments/:estimate_id", h.CreatePaymentByEstimateID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/missing",
			bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		uc.EXPECT().CreateAndApprove(gomock.Any(), "est-1", gomock.Any()).
			Return(entities.DepositPayment{}, usecase.ErrPaymentGatewayUnauthorized)

		h := NewDepositPaymentHandler(uc)
		r := gin.New()
		r.POST("/v1/payments/:estimate_id", h.CreatePaymentByEstimateID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/est-1",
			bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestDepositPaymentHandler_GetByEstimateID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no payments answers 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		uc.EXPECT().ListByEstimateID(gomock.Any(), "est-1").Return(nil, nil)

		h := NewDepositPaymentHandler(uc)
		r := gin.New()
		r.GET("/v1/payments/:estimate_id", h.GetPaymentByEstimateID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns the latest payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		older := entities.DepositPayment{ID: "pay-1", EstimateID: "est-1", Date: time.Now().Add(-time.Hour)}
		newer := entities.DepositPayment{ID: "pay-2", EstimateID: "est-1", Date: time.Now()}
		uc.EXPECT().ListByEstimateID(gomock.Any(), "est-1").
			Return([]entities.DepositPayment{older, newer}, nil)

		h := NewDepositPaymentHandler(uc)
		r := gin.New()
		r.GET("/v1/payments/:estimate_id", h.GetPaymentByEstimateID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/est-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			PaymentID string `json:"payment_id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.PaymentID != "pay-2" {
			t.Fatalf("expected latest payment pay-2, got %s", w.Body.String())
		}
	})

	t.Run("invalid estimate id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDepositPaymentUseCase(ctrl)
		uc.EXPECT().ListByEstimateID(gomock.Any(), " ").
			Return(nil, usecase.ErrInvalidPaymentEstimateID)

		h := NewDepositPaymentHandler(uc)
		r := gin.New()
		r.GET("/v1/payments/:estimate_id", h.GetPaymentByEstimateID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/%20", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
