package request

import (
	"cabinet_kiosk/internal/domain/builder"
	"cabinet_kiosk/internal/domain/entities"
	"cabinet_kiosk/internal/usecase"
)

// EditActionRequest forwards one spreadsheet-style editing event from the
// kiosk front-end: start, type, commit, cancel or navigate.
type EditActionRequest struct {
	Action    string `json:"action" binding:"required"`
	Category  string `json:"category"`
	Index     int    `json:"index"`
	Value     string `json:"value"`
	Direction string `json:"direction"`
}

func (r EditActionRequest) ToAction() usecase.EditAction {
	return usecase.EditAction{
		Action:    r.Action,
		Category:  entities.Category(r.Category),
		Index:     r.Index,
		Value:     r.Value,
		Direction: builder.Direction(r.Direction),
	}
}
