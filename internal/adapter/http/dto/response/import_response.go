package response

import (
	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase"
)

// ImportResponse reports an upload's outcome row by row: what loaded into
// the session and what could not be matched against the catalog.
type ImportResponse struct {
	SessionID string                     `json:"session_id"`
	TotalRows int                        `json:"total_rows"`
	Matched   int                        `json:"matched"`
	Loaded    []entities.CabinetLineItem `json:"loaded"`
	Unmatched []usecase.ImportRow        `json:"unmatched"`
}

func FromImportResult(sessionID string, r usecase.ImportResult) ImportResponse {
	return ImportResponse{
		SessionID: sessionID,
		TotalRows: r.TotalRows,
		Matched:   r.Matched,
		Loaded:    r.Loaded,
		Unmatched: r.Unmatched,
	}
}
