package store

import (
	"time"

	"chat-sim/internal/models"
)

// GroupRegistry maps group id to group metadata and its append-only
// message log. It does no locking of its own, the owning Store serializes
// access.
type GroupRegistry struct {
	groups map[string]*groupEntry
	order  []string
}

type groupEntry struct {
	info     models.Group
	messages []models.Message
}

// NewGroupRegistry creates an empty registry.
func NewGroupRegistry() *GroupRegistry {
	return &GroupRegistry{groups: make(map[string]*groupEntry)}
}

// Load hydrates a group and its messages, used at session bootstrap.
func (r *GroupRegistry) Load(info models.Group, messages []models.Message) {
	r.groups[info.ID] = &groupEntry{info: info, messages: messages}
	r.order = append(r.order, info.ID)
}

// Create initializes a group with the creator as sole member and admin
// and an empty message log.
func (r *GroupRegistry) Create(id, name, creatorID string, at time.Time) models.Group {
	info := models.Group{
		ID:        id,
		Name:      name,
		CreatedAt: at,
		AdminID:   creatorID,
		Members:   []string{creatorID},
	}
	r.groups[id] = &groupEntry{info: info}
	r.order = append(r.order, id)
	return info
}

// Get returns group metadata.
func (r *GroupRegistry) Get(id string) (models.Group, bool) {
	entry, ok := r.groups[id]
	if !ok {
		return models.Group{}, false
	}
	return entry.info, true
}

// IDs returns group ids in creation order.
func (r *GroupRegistry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Rename replaces the group name. Empty names are refused upstream.
func (r *GroupRegistry) Rename(id, name string) bool {
	entry, ok := r.groups[id]
	if !ok {
		return false
	}
	entry.info.Name = name
	return true
}

// AddMember appends the user to the member list, idempotent on duplicates.
func (r *GroupRegistry) AddMember(groupID, userID string) bool {
	entry, ok := r.groups[groupID]
	if !ok {
		return false
	}
	for _, id := range entry.info.Members {
		if id == userID {
			return true
		}
	}
	entry.info.Members = append(entry.info.Members, userID)
	return true
}

// RemoveMember removes the user from the member list.
func (r *GroupRegistry) RemoveMember(groupID, userID string) bool {
	entry, ok := r.groups[groupID]
	if !ok {
		return false
	}
	for i, id := range entry.info.Members {
		if id == userID {
			entry.info.Members = append(entry.info.Members[:i], entry.info.Members[i+1:]...)
			return true
		}
	}
	return false
}

// Append adds a message to the end of the group log. The log is never
// reordered and timestamps are not inspected.
func (r *GroupRegistry) Append(groupID string, msg models.Message) bool {
	entry, ok := r.groups[groupID]
	if !ok {
		return false
	}
	entry.messages = append(entry.messages, msg)
	return true
}

// Messages returns a copy of the full group log, deleted and hidden
// entries included.
func (r *GroupRegistry) Messages(groupID string) []models.Message {
	entry, ok := r.groups[groupID]
	if !ok {
		return nil
	}
	msgs := make([]models.Message, len(entry.messages))
	copy(msgs, entry.messages)
	return msgs
}

// SetDeleted sets the global tombstone flag, idempotent.
func (r *GroupRegistry) SetDeleted(groupID, messageID string) bool {
	msg := r.find(groupID, messageID)
	if msg == nil {
		return false
	}
	msg.Deleted = true
	return true
}

// HideForViewer adds the viewer to the message's hidden set, idempotent.
func (r *GroupRegistry) HideForViewer(groupID, messageID, viewerID string) bool {
	msg := r.find(groupID, messageID)
	if msg == nil {
		return false
	}
	if msg.HiddenForViewer(viewerID) {
		return true
	}
	msg.HiddenFor = append(msg.HiddenFor, viewerID)
	return true
}

// ToggleReaction adds the user to the emoji's reaction set, or removes
// them if already present. Empty reactions are dropped.
func (r *GroupRegistry) ToggleReaction(groupID, messageID, emoji, userID string) bool {
	msg := r.find(groupID, messageID)
	if msg == nil {
		return false
	}
	for i := range msg.Reactions {
		if msg.Reactions[i].Emoji != emoji {
			continue
		}
		for j, id := range msg.Reactions[i].UserIDs {
			if id == userID {
				msg.Reactions[i].UserIDs = append(msg.Reactions[i].UserIDs[:j], msg.Reactions[i].UserIDs[j+1:]...)
				if len(msg.Reactions[i].UserIDs) == 0 {
					msg.Reactions = append(msg.Reactions[:i], msg.Reactions[i+1:]...)
				}
				return true
			}
		}
		msg.Reactions[i].UserIDs = append(msg.Reactions[i].UserIDs, userID)
		return true
	}
	msg.Reactions = append(msg.Reactions, models.Reaction{Emoji: emoji, UserIDs: []string{userID}})
	return true
}

func (r *GroupRegistry) find(groupID, messageID string) *models.Message {
	entry, ok := r.groups[groupID]
	if !ok {
		return nil
	}
	for i := range entry.messages {
		if entry.messages[i].ID == messageID {
			return &entry.messages[i]
		}
	}
	return nil
}
