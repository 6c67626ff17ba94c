package response

import "cabinet_kiosk/internal/domain/entities"

type SessionResponse struct {
	SessionID string `json:"session_id"`
}

func FromSessionID(id string) SessionResponse {
	return SessionResponse{SessionID: id}
}

// ItemsResponse returns a session's full line-item collections after a
// mutation, so the kiosk can re-render without a second round trip.
type ItemsResponse struct {
	SessionID string           `json:"session_id"`
	Items     entities.ItemSet `json:"items"`
}

func FromItems(sessionID string, items entities.ItemSet) ItemsResponse {
	return ItemsResponse{SessionID: sessionID, Items: items}
}

type UndoResponse struct {
	SessionID string           `json:"session_id"`
	Restored  bool             `json:"restored"`
	Items     entities.ItemSet `json:"items"`
}

func FromUndo(sessionID string, restored bool, items entities.ItemSet) UndoResponse {
	return UndoResponse{SessionID: sessionID, Restored: restored, Items: items}
}
