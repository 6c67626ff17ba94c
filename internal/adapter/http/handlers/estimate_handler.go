package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	request "cabinet_kiosk/internal/adapter/http/dto/request"
	response "cabinet_kiosk/internal/adapter/http/dto/response"
	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase"
	"cabinet_kiosk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles HTTP requests for the estimate lifecycle: saving a
// builder session, status transitions, load-for-edit and document export.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// SaveEstimate freezes a builder session into a persisted estimate record.
func (h *EstimateHandler) SaveEstimate(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.SaveEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	estimate, err := h.usecase.Save(c.Request.Context(), sessionID, payload.ToInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[estimate][handler] saved estimate_id=%s grand_total=%.2f", estimate.ID, estimate.GrandTotal)

	c.JSON(http.StatusCreated, response.FromEstimate(estimate))
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.usecase.GetByID(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

func (h *EstimateHandler) ApproveEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.ApproveByID)
}

func (h *EstimateHandler) RejectEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.RejectByID)
}

func (h *EstimateHandler) CancelEstimate(c *gin.Context) {
	h.patchEstimateStatus(c, h.usecase.CancelByID)
}

func (h *EstimateHandler) patchEstimateStatus(
	c *gin.Context,
	updater func(ctx context.Context, id string) (entities.Estimate, error),
) {
	estimate, err := updater(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimate(estimate))
}

// LoadForEdit opens a new builder session pre-loaded with the saved
// collections and returns its id.
func (h *EstimateHandler) LoadForEdit(c *gin.Context) {
	sessionID, err := h.usecase.LoadForEdit(c.Request.Context(), c.Param("estimate_id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSessionID(sessionID))
}

// ExportPDF streams the estimate sheet as application/pdf.
func (h *EstimateHandler) ExportPDF(c *gin.Context) {
	estimateID := c.Param("estimate_id")

	data, err := h.usecase.ExportPDF(c.Request.Context(), estimateID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=estimate-%s.pdf", estimateID))
	c.Data(http.StatusOK, "application/pdf", data)
}

// ExportXLSX streams the estimate workbook.
func (h *EstimateHandler) ExportXLSX(c *gin.Context) {
	estimateID := c.Param("estimate_id")

	data, err := h.usecase.ExportXLSX(c.Request.Context(), estimateID)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=estimate-%s.xlsx", estimateID))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

// EmailEstimate mails the rendered PDF. The body may override the recipient;
// otherwise the saved customer email is used.
func (h *EstimateHandler) EmailEstimate(c *gin.Context) {
	estimateID := c.Param("estimate_id")

	var payload request.EmailEstimateRequest
	_ = c.ShouldBindJSON(&payload) // empty body means default recipient

	if err := h.usecase.Email(c.Request.Context(), estimateID, payload.Recipient); err != nil {
		log.Printf("[estimate][handler] email failed estimate_id=%s err=%v", estimateID, err)
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[estimate][handler] email sent estimate_id=%s", estimateID)

	c.JSON(http.StatusOK, gin.H{"sent": true})
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Builder session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmptyEstimate):
		return pkg.NewDomainErrorSimple("EMPTY_ESTIMATE", "Estimate has no line items", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrMissingRecipient):
		return pkg.NewDomainErrorSimple("MISSING_RECIPIENT", "No recipient email available", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrExporterNotConfigured):
		return pkg.NewDomainErrorSimple("EXPORTER_NOT_CONFIGURED", "Document export not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
