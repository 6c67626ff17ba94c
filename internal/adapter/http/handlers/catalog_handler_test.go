package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cabinet_kiosk/internal/domain/entities"
	mock_interfaces "cabinet_kiosk/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListCategory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogService(ctrl)

		h := NewCatalogHandler(catalog)
		r := gin.New()
		r.GET("/v1/catalog/:category", h.ListCategory)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/appliance", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("lists the category price list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_interfaces.NewMockICatalogService(ctrl)
		catalog.EXPECT().ListCategory(gomock.Any(), entities.CategoryCabinet).Return([]entities.CatalogItem{
			{Name: "Base Cabinet 24in", UnitPrice: 245},
			{Name: "Wall Cabinet 30in", UnitPrice: 200},
		}, nil)

		h := NewCatalogHandler(catalog)
		r := gin.New()
		r.GET("/v1/catalog/:category", h.ListCategory)

		req := httptest.NewRequest(http.MethodGet, "/v1/catalog/cabinet", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Category string `json:"category"`
			Items    []struct {
				Name      string  `json:"name"`
				UnitPrice float64 `json:"unit_price"`
			} `json:"items"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Category != "cabinet" || len(body.Items) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
