package handlers

import (
	"net/http"

	response "cabinet_kiosk/internal/adapter/http/dto/response"
	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase/interfaces"
	"cabinet_kiosk/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the selectable price lists the kiosk renders per
// category.

type CatalogHandler struct {
	catalog interfaces.ICatalogService
}

func NewCatalogHandler(catalog interfaces.ICatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListCategory(c *gin.Context) {
	category := entities.Category(c.Param("category"))

	valid := false
	for _, known := range entities.Categories {
		if category == known {
			valid = true
			break
		}
	}
	if !valid {
		appErr := pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Unknown category", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	items, err := h.catalog.ListCategory(c.Request.Context(), category)
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalogItems(category, items))
}
