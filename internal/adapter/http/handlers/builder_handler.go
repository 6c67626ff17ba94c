package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "cabinet_kiosk/internal/adapter/http/dto/request"
	response "cabinet_kiosk/internal/adapter/http/dto/response"
	"cabinet_kiosk/internal/domain/builder"
	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase"
	"cabinet_kiosk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBuilderPayload = pkg.NewDomainErrorSimple("INVALID_BUILDER_INPUT", "Invalid builder payload", http.StatusBadRequest)
)

// BuilderHandler handles HTTP requests for estimate-builder sessions: the
// line-item store, the edit cursor and undo.

type BuilderHandler struct {
	usecase  usecase.IBuilderUseCase
	importer usecase.IImportUseCase
}

func NewBuilderHandler(uc usecase.IBuilderUseCase, importer usecase.IImportUseCase) *BuilderHandler {
	return &BuilderHandler{usecase: uc, importer: importer}
}

// StartSession opens a fresh empty builder session.
func (h *BuilderHandler) StartSession(c *gin.Context) {
	id := h.usecase.StartSession()
	log.Printf("[builder][handler] session started session_id=%s", id)
	c.JSON(http.StatusCreated, response.FromSessionID(id))
}

// AddItem appends one line item to the session's category collection.
func (h *BuilderHandler) AddItem(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.AddItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	items, err := h.usecase.AddItem(c.Request.Context(), sessionID, payload.ToInput())
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromItems(sessionID, items))
}

// RemoveItem deletes one line by category and index, arming undo.
func (h *BuilderHandler) RemoveItem(c *gin.Context) {
	sessionID := c.Param("session_id")
	category := entities.Category(c.Param("category"))

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	items, err := h.usecase.RemoveItem(sessionID, category, index)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItems(sessionID, items))
}

// ClearCategory empties one category collection, arming undo.
func (h *BuilderHandler) ClearCategory(c *gin.Context) {
	sessionID := c.Param("session_id")
	category := entities.Category(c.Param("category"))

	items, err := h.usecase.ClearCategory(sessionID, category)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItems(sessionID, items))
}

// UpdateItem replaces the measurement value of one existing line.
func (h *BuilderHandler) UpdateItem(c *gin.Context) {
	sessionID := c.Param("session_id")
	category := entities.Category(c.Param("category"))

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	var payload struct {
		Value string `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	items, err := h.usecase.UpdateItem(sessionID, category, index, payload.Value)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItems(sessionID, items))
}

// Undo restores the last removed line or cleared category. An empty undo
// buffer answers 200 with restored=false.
func (h *BuilderHandler) Undo(c *gin.Context) {
	sessionID := c.Param("session_id")

	result, err := h.usecase.Undo(sessionID)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUndo(sessionID, result.Restored, result.Items))
}

// Edit applies one editing event (start/type/commit/cancel/navigate) and
// returns the cursor state. Rejected commits answer 422 so the front-end
// keeps the cell active.
func (h *BuilderHandler) Edit(c *gin.Context) {
	sessionID := c.Param("session_id")

	var payload request.EditActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBuilderPayload.HTTPStatus, errInvalidBuilderPayload.ToHTTPError())
		return
	}

	cursor, err := h.usecase.Edit(sessionID, payload.ToAction())
	if err != nil {
		var vErr *builder.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"code":    "VALIDATION_FAILED",
				"message": vErr.Error(),
				"cursor":  response.FromCursor(sessionID, cursor),
			})
			return
		}
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCursor(sessionID, cursor))
}

// GetItems returns the session's current collections.
func (h *BuilderHandler) GetItems(c *gin.Context) {
	sessionID := c.Param("session_id")

	items, err := h.usecase.Items(sessionID)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromItems(sessionID, items))
}

// GetTotals computes the full pricing breakdown. ?installation=true includes
// the installation charge.
func (h *BuilderHandler) GetTotals(c *gin.Context) {
	sessionID := c.Param("session_id")
	installation := c.Query("installation") == "true"

	totals, err := h.usecase.Totals(sessionID, installation)
	if err != nil {
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTotals(totals))
}

// ImportCabinets bulk-loads the session's cabinet collection from an
// uploaded CSV or XLSX file (multipart field "file").
func (h *BuilderHandler) ImportCabinets(c *gin.Context) {
	sessionID := c.Param("session_id")
	log.Printf("[builder][handler] import start session_id=%s", sessionID)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("MISSING_IMPORT_FILE", "Multipart field 'file' is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("IMPORT_READ_FAILED", "Could not read uploaded file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer f.Close()

	result, err := h.importer.ImportCabinets(c.Request.Context(), sessionID, fileHeader.Filename, f)
	if err != nil {
		log.Printf("[builder][handler] import failed session_id=%s err=%v", sessionID, err)
		appErr := mapBuilderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[builder][handler] import success session_id=%s rows=%d matched=%d", sessionID, result.TotalRows, result.Matched)

	c.JSON(http.StatusOK, response.FromImportResult(sessionID, result))
}

func mapBuilderError(err error) *pkg.AppError {
	var vErr *builder.ValidationError
	switch {
	case errors.As(err, &vErr):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", vErr.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidCategory),
		errors.Is(err, usecase.ErrInvalidTier), errors.Is(err, usecase.ErrInvalidSelection),
		errors.Is(err, usecase.ErrInvalidEditAction), errors.Is(err, builder.ErrUnknownCategory):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Builder session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCatalogLookupMiss):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Catalog item not found", http.StatusNotFound)
	case errors.Is(err, builder.ErrIndexOutOfRange):
		return pkg.NewDomainErrorSimple("INDEX_OUT_OF_RANGE", "Line item index out of range", http.StatusNotFound)
	case errors.Is(err, builder.ErrNoActiveEdit):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_EDIT", "No active edit", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnsupportedImportFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_IMPORT_FORMAT", "File must be .csv or .xlsx", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingImportColumns):
		return pkg.NewDomainErrorSimple("MISSING_IMPORT_COLUMNS", "File must have name and quantity columns", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCatalogUnavailable):
		return pkg.NewDomainErrorSimple("CATALOG_UNAVAILABLE", "Catalog service not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
