package store

import "chat-sim/internal/models"

// UnreadTracker keeps the per-group unread counters and last-message
// previews backing the group list view. This is a materialized cache
// updated in the same critical section as the message log, not a
// derivation recomputed on demand.
type UnreadTracker struct {
	summaries map[string]*models.GroupSummary
	order     []string
}

// NewUnreadTracker creates an empty tracker.
func NewUnreadTracker() *UnreadTracker {
	return &UnreadTracker{summaries: make(map[string]*models.GroupSummary)}
}

// Load hydrates a summary at session bootstrap.
func (t *UnreadTracker) Load(summary models.GroupSummary) {
	s := summary
	if _, ok := t.summaries[s.ID]; !ok {
		t.order = append(t.order, s.ID)
	}
	t.summaries[s.ID] = &s
}

// Track registers a freshly created group with a zero counter.
func (t *UnreadTracker) Track(groupID, name string, last *models.LastMessage) {
	t.Load(models.GroupSummary{ID: groupID, Name: name, LastMessage: last})
}

// OnMessageAppended routes one appended message into the cache. Messages
// for the selected group leave the counter at zero; everything else
// increments by exactly one and overwrites the preview snapshot.
func (t *UnreadTracker) OnMessageAppended(groupID string, msg models.Message, senderName string, isSelected bool) {
	summary, ok := t.summaries[groupID]
	if !ok {
		return
	}
	if isSelected {
		return
	}
	summary.UnreadCount++
	summary.LastMessage = &models.LastMessage{
		Content:   msg.Content,
		Timestamp: msg.CreatedAt,
		Sender:    senderName,
	}
}

// OnGroupSelected zeroes the counter unconditionally.
func (t *UnreadTracker) OnGroupSelected(groupID string) {
	if summary, ok := t.summaries[groupID]; ok {
		summary.UnreadCount = 0
	}
}

// SetLastMessage overwrites the preview snapshot without touching the
// counter, used when the viewer sends into the active group.
func (t *UnreadTracker) SetLastMessage(groupID string, last models.LastMessage) {
	if summary, ok := t.summaries[groupID]; ok {
		summary.LastMessage = &last
	}
}

// Rename keeps the cached group name in sync with the registry.
func (t *UnreadTracker) Rename(groupID, name string) {
	if summary, ok := t.summaries[groupID]; ok {
		summary.Name = name
	}
}

// Count returns the unread counter for a group.
func (t *UnreadTracker) Count(groupID string) int {
	if summary, ok := t.summaries[groupID]; ok {
		return summary.UnreadCount
	}
	return 0
}

// Snapshot returns summaries in stable group order.
func (t *UnreadTracker) Snapshot() []models.GroupSummary {
	out := make([]models.GroupSummary, 0, len(t.order))
	for _, id := range t.order {
		summary := *t.summaries[id]
		if summary.LastMessage != nil {
			last := *summary.LastMessage
			summary.LastMessage = &last
		}
		out = append(out, summary)
	}
	return out
}
