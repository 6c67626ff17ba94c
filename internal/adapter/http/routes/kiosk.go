package routes

import (
	"cabinet_kiosk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSessions  = "/sessions"
	PathEstimates = "/estimates"
	PathPayments  = "/payments"
	PathCatalog   = "/catalog"
)

func addKioskRoutes(
	rg *gin.RouterGroup,
	builderHandler *handlers.BuilderHandler,
	estimateHandler *handlers.EstimateHandler,
	paymentHandler *handlers.DepositPaymentHandler,
	catalogHandler *handlers.CatalogHandler,
) {
	sessions := rg.Group(PathSessions)
	{
		sessions.POST("", builderHandler.StartSession)
		sessions.GET("/:session_id/items", builderHandler.GetItems)
		sessions.GET("/:session_id/totals", builderHandler.GetTotals)
		sessions.POST("/:session_id/items", builderHandler.AddItem)
		sessions.PUT("/:session_id/items/:category/:index", builderHandler.UpdateItem)
		sessions.DELETE("/:session_id/items/:category/:index", builderHandler.RemoveItem)
		sessions.DELETE("/:session_id/items/:category", builderHandler.ClearCategory)
		sessions.POST("/:session_id/undo", builderHandler.Undo)
		sessions.POST("/:session_id/edit", builderHandler.Edit)
		sessions.POST("/:session_id/import", builderHandler.ImportCabinets)
		sessions.POST("/:session_id/save", estimateHandler.SaveEstimate)
	}

	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("/:estimate_id", estimateHandler.GetEstimate)
		estimates.PATCH("/:estimate_id/approve", estimateHandler.ApproveEstimate)
		estimates.PATCH("/:estimate_id/reject", estimateHandler.RejectEstimate)
		estimates.PATCH("/:estimate_id/cancel", estimateHandler.CancelEstimate)
		estimates.POST("/:estimate_id/edit-session", estimateHandler.LoadForEdit)
		estimates.GET("/:estimate_id/export/pdf", estimateHandler.ExportPDF)
		estimates.GET("/:estimate_id/export/xlsx", estimateHandler.ExportXLSX)
		estimates.POST("/:estimate_id/email", estimateHandler.EmailEstimate)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:estimate_id", paymentHandler.CreatePaymentByEstimateID)
		payments.GET("/:estimate_id", paymentHandler.GetPaymentByEstimateID)
	}

	rg.GET(PathCatalog+"/:category", catalogHandler.ListCategory)
}
