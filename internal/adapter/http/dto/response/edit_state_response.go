package response

import "cabinet_kiosk/internal/domain/builder"

// EditStateResponse is the cursor snapshot after an editing event: which
// cell is active and the uncommitted keystrokes, if any.
type EditStateResponse struct {
	SessionID string `json:"session_id"`
	Active    bool   `json:"active"`
	Category  string `json:"category,omitempty"`
	Index     int    `json:"index"`
	Pending   string `json:"pending,omitempty"`
}

func FromCursor(sessionID string, c builder.Cursor) EditStateResponse {
	return EditStateResponse{
		SessionID: sessionID,
		Active:    c.Active,
		Category:  string(c.Category),
		Index:     c.Index,
		Pending:   c.Pending,
	}
}
