package store

import (
	"strings"

	"chat-sim/internal/models"
	"chat-sim/internal/observability"
)

// Deletion scopes accepted by DeleteMessage.
const (
	DeleteForEveryone = "for_everyone"
	DeleteForMe       = "for_me"
)

// SendMessage appends a message authored by the local viewer to the
// active group. Sends with empty trimmed text and no attachments are
// refused. The sender's own group is by definition the active one, so
// only the preview snapshot changes, never the counter.
func (s *Store) SendMessage(text string, attachments []models.Attachment) (models.Message, bool) {
	if strings.TrimSpace(text) == "" && len(attachments) == 0 {
		return models.Message{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users.Current()
	if !ok || s.activeGroupID == "" {
		return models.Message{}, false
	}

	msg := models.Message{
		ID:          s.newID(),
		Content:     text,
		CreatedAt:   s.now(),
		SenderID:    current.ID,
		Attachments: attachments,
	}
	if !s.groups.Append(s.activeGroupID, msg) {
		return models.Message{}, false
	}
	s.unread.SetLastMessage(s.activeGroupID, models.LastMessage{
		Content:   msg.Content,
		Timestamp: msg.CreatedAt,
		Sender:    current.Name,
	})

	observability.IncMessage("user")
	s.emit(models.StoreEvent{Event: "message_sent", GroupID: s.activeGroupID, UserID: current.ID})
	return msg, true
}

// ReceiveMessage applies a delayed ingress delivery: append to the group
// log, stop the sender's typing indicator and route the unread update.
// Whether the group counts as selected is decided here, at delivery
// time, inside the critical section. The viewer may have switched groups
// while the delivery was pending and capturing the selection at schedule
// time would misroute the unread increment.
func (s *Store) ReceiveMessage(groupID, senderID, content string) (models.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sender, ok := s.users.Get(senderID)
	if !ok {
		return models.Message{}, false
	}
	if _, ok := s.groups.Get(groupID); !ok {
		return models.Message{}, false
	}

	msg := models.Message{
		ID:        s.newID(),
		Content:   content,
		CreatedAt: s.now(),
		SenderID:  senderID,
	}
	s.groups.Append(groupID, msg)

	isSelected := groupID == s.activeGroupID
	if isSelected {
		s.typing.End(senderID)
		observability.SetTypingUsers(s.typing.Len())
	}
	s.unread.OnMessageAppended(groupID, msg, sender.Name, isSelected)

	observability.IncMessage("simulated")
	s.emit(models.StoreEvent{Event: "message_received", GroupID: groupID, UserID: senderID})
	return msg, true
}

// BeginTyping shows a typing indicator for the user. Indicators are only
// rendered for the active group, calls for any other group are valid but
// have no visible effect.
func (s *Store) BeginTyping(groupID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if groupID != s.activeGroupID {
		return
	}
	s.typing.Begin(userID)
	observability.SetTypingUsers(s.typing.Len())
}

// EndTyping removes the user's typing indicator for the group.
func (s *Store) EndTyping(groupID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if groupID != s.activeGroupID {
		return
	}
	s.typing.End(userID)
	observability.SetTypingUsers(s.typing.Len())
}

// TypingUsers resolves the active typing set to profiles.
func (s *Store) TypingUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.typing.List()
	users := make([]models.User, 0, len(ids))
	for _, id := range ids {
		if user, ok := s.users.Get(id); ok {
			users = append(users, user)
		}
	}
	return users
}

// DeleteMessage deletes a message in the active group, either for
// everyone (tombstone) or for the local viewer only. Both variants are
// idempotent.
func (s *Store) DeleteMessage(messageID, scope string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeGroupID == "" {
		return false
	}

	switch scope {
	case DeleteForEveryone:
		if !s.groups.SetDeleted(s.activeGroupID, messageID) {
			return false
		}
	case DeleteForMe:
		current, ok := s.users.Current()
		if !ok {
			return false
		}
		if !s.groups.HideForViewer(s.activeGroupID, messageID, current.ID) {
			return false
		}
	default:
		return false
	}

	observability.IncMessageDeleted(scope)
	s.emit(models.StoreEvent{Event: "message_deleted", GroupID: s.activeGroupID, Payload: scope})
	return true
}

// ToggleReaction toggles the local viewer's emoji reaction on a message
// in the active group.
func (s *Store) ToggleReaction(messageID, emoji string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users.Current()
	if !ok || s.activeGroupID == "" {
		return false
	}
	if !s.groups.ToggleReaction(s.activeGroupID, messageID, emoji, current.ID) {
		return false
	}
	s.emit(models.StoreEvent{Event: "reaction_toggled", GroupID: s.activeGroupID, UserID: current.ID})
	return true
}

// ActiveMessages returns the active group's log rendered for the local
// viewer: per-viewer hidden entries are dropped and tombstoned entries
// keep their flag but lose content and attachments.
func (s *Store) ActiveMessages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := s.users.Current()
	return renderForViewer(s.groups.Messages(s.activeGroupID), current.ID)
}

// MessagesFor returns a group's log rendered for one viewer.
func (s *Store) MessagesFor(groupID, viewerID string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups.Get(groupID); !ok {
		return nil, ErrGroupNotFound
	}
	return renderForViewer(s.groups.Messages(groupID), viewerID), nil
}

// renderForViewer applies per-viewer hiding and tombstone redaction. The
// underlying log keeps every entry intact.
func renderForViewer(msgs []models.Message, viewerID string) []models.Message {
	out := make([]models.Message, 0, len(msgs))
	for _, msg := range msgs {
		if msg.HiddenForViewer(viewerID) {
			continue
		}
		if msg.Deleted {
			msg.Content = ""
			msg.Attachments = nil
			msg.Reactions = nil
		}
		msg.HiddenFor = nil
		out = append(out, msg)
	}
	return out
}
