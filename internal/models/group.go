package models

import "time"

// Group represents a chat group. AdminID is always one of Members and a
// group keeps at least one member for its whole session lifetime.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	AdminID   string    `json:"admin_id"`
	Members   []string  `json:"members"`
}

// LastMessage is the preview snapshot shown in the group list.
type LastMessage struct {
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
}

// GroupSummary is the derived per-group view for the group list: unread
// counter plus the most recent message snapshot.
type GroupSummary struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	UnreadCount int          `json:"unread_count"`
	LastMessage *LastMessage `json:"last_message,omitempty"`
}
