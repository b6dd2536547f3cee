package models

import "time"

// Message represents a message in a group log. The log is append-only:
// deletion sets the tombstone flag and per-viewer deletion adds the viewer
// to HiddenFor, the entry itself is never removed.
type Message struct {
	ID          string       `json:"id"`
	Content     string       `json:"content"`
	CreatedAt   time.Time    `json:"created_at"`
	SenderID    string       `json:"sender_id"`
	Deleted     bool         `json:"deleted,omitempty"`
	HiddenFor   []string     `json:"hidden_for,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Reactions   []Reaction   `json:"reactions,omitempty"`
}

// HiddenForViewer reports whether the message is hidden for the given viewer.
func (m Message) HiddenForViewer(viewerID string) bool {
	for _, id := range m.HiddenFor {
		if id == viewerID {
			return true
		}
	}
	return false
}

// Attachment is an immutable file reference attached to a message. URL is
// a fabricated fragment-style placeholder, real storage is supplied by an
// external collaborator.
type Attachment struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MIMEType     string `json:"mime_type"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// Reaction is an emoji reaction and the users who placed it.
type Reaction struct {
	Emoji   string   `json:"emoji"`
	UserIDs []string `json:"user_ids"`
}
