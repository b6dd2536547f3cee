package models

// StoreEvent is emitted to the telemetry publisher after a state mutation.
type StoreEvent struct {
	Event   string `json:"event"`
	GroupID string `json:"group_id,omitempty"`
	UserID  string `json:"user_id,omitempty"`
	Payload any    `json:"payload,omitempty"`
}
