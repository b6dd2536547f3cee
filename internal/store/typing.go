package store

// TypingTracker is the transient set of users shown as typing in the
// currently selected group. It never survives a group switch.
type TypingTracker struct {
	ids []string
}

// NewTypingTracker creates an empty tracker.
func NewTypingTracker() *TypingTracker {
	return &TypingTracker{}
}

// Begin adds the user, idempotent.
func (t *TypingTracker) Begin(userID string) {
	for _, id := range t.ids {
		if id == userID {
			return
		}
	}
	t.ids = append(t.ids, userID)
}

// End removes the user, called when their pending message lands.
func (t *TypingTracker) End(userID string) {
	for i, id := range t.ids {
		if id == userID {
			t.ids = append(t.ids[:i], t.ids[i+1:]...)
			return
		}
	}
}

// Clear drops every entry, called on group switch.
func (t *TypingTracker) Clear() {
	t.ids = nil
}

// List returns user ids in the order they started typing.
func (t *TypingTracker) List() []string {
	ids := make([]string, len(t.ids))
	copy(ids, t.ids)
	return ids
}

// Len returns the number of typing users.
func (t *TypingTracker) Len() int {
	return len(t.ids)
}
