package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"chat-sim/internal/models"
	"chat-sim/internal/observability"
)

// Emitter receives a StoreEvent after each applied mutation. A nil
// emitter disables event egress.
type Emitter interface {
	Emit(event models.StoreEvent)
}

// Store owns all mutable chat state: users, groups and their message
// logs, the unread cache, the typing set and the active-group pointer.
// Every mutation is a single atomic transition under the store mutex, so
// the ingress goroutine and direct callers only ever observe committed
// state. Presentation code holds no state of its own and goes through
// the operation set below.
type Store struct {
	mu sync.Mutex

	users  *UserRegistry
	groups *GroupRegistry
	unread *UnreadTracker
	typing *TypingTracker

	activeGroupID string
	notifications models.NotificationSettings
	privacy       models.PrivacySettings

	emitter Emitter
	now     func() time.Time
	newID   func() string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the id source.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// New creates an empty store.
func New(emitter Emitter, opts ...Option) *Store {
	s := &Store{
		users:         NewUserRegistry(),
		groups:        NewGroupRegistry(),
		unread:        NewUnreadTracker(),
		typing:        NewTypingTracker(),
		notifications: models.DefaultNotificationSettings(),
		privacy:       models.DefaultPrivacySettings(),
		emitter:       emitter,
		now:           time.Now,
		newID:         uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BootstrapGroup is a group plus its seed message log.
type BootstrapGroup struct {
	Info     models.Group
	Messages []models.Message
}

// Bootstrap hydrates the store with a session fixture and selects the
// given group.
func (s *Store) Bootstrap(users []models.User, groups []BootstrapGroup, summaries []models.GroupSummary, activeGroupID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range users {
		s.users.Load(user)
	}
	for _, group := range groups {
		s.groups.Load(group.Info, group.Messages)
	}
	for _, summary := range summaries {
		s.unread.Load(summary)
	}
	if _, ok := s.groups.Get(activeGroupID); ok {
		s.activeGroupID = activeGroupID
		s.unread.OnGroupSelected(activeGroupID)
	}
}

// SelectGroup sets the active group pointer and zeroes its unread
// counter. Selecting the already-active group is a safe no-op beyond
// re-zeroing. Unknown ids are refused.
func (s *Store) SelectGroup(groupID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups.Get(groupID); !ok {
		return false
	}
	if s.activeGroupID != groupID {
		s.typing.Clear()
		observability.SetTypingUsers(0)
	}
	s.activeGroupID = groupID
	s.unread.OnGroupSelected(groupID)
	observability.IncUnreadReset()
	s.emit(models.StoreEvent{Event: "group_selected", GroupID: groupID})
	return true
}

// CreateGroup allocates a new group with the creator as sole member and
// admin, registers a zero-unread summary and selects the group.
func (s *Store) CreateGroup(name, creatorID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creator, ok := s.users.Get(creatorID)
	if !ok {
		return "", false
	}

	id := s.newID()
	now := s.now()
	s.groups.Create(id, name, creatorID, now)
	s.unread.Track(id, name, &models.LastMessage{
		Content:   "Group created",
		Timestamp: now,
		Sender:    creator.Name,
	})

	s.typing.Clear()
	observability.SetTypingUsers(0)
	s.activeGroupID = id

	observability.IncGroupCreated()
	s.emit(models.StoreEvent{Event: "group_created", GroupID: id, UserID: creatorID})
	return id, true
}

// RenameGroup replaces the group name, refusing names that trim to
// empty. Admin gating stays a presentation concern, matching the
// reference behavior.
func (s *Store) RenameGroup(groupID, newName string) bool {
	if strings.TrimSpace(newName) == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.groups.Rename(groupID, newName) {
		return false
	}
	s.unread.Rename(groupID, newName)
	s.emit(models.StoreEvent{Event: "group_renamed", GroupID: groupID})
	return true
}

// AddMember appends an existing user to the group, idempotent on
// duplicates.
func (s *Store) AddMember(groupID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users.Get(userID); !ok {
		return false
	}
	if !s.groups.AddMember(groupID, userID) {
		return false
	}
	s.emit(models.StoreEvent{Event: "member_added", GroupID: groupID, UserID: userID})
	return true
}

// AddContact creates a user from an invitation contact and adds them to
// the group.
func (s *Store) AddContact(groupID, email, phone string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups.Get(groupID); !ok {
		return models.User{}, false
	}
	user, ok := s.users.AddContact(s.newID(), email, phone)
	if !ok {
		return models.User{}, false
	}
	s.groups.AddMember(groupID, user.ID)
	s.emit(models.StoreEvent{Event: "member_added", GroupID: groupID, UserID: user.ID})
	return user, true
}

// RemoveMember removes a user from the group and from the user registry.
// Removing the local viewer is always refused.
func (s *Store) RemoveMember(groupID, userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.users.Current(); ok && current.ID == userID {
		return false
	}
	if !s.groups.RemoveMember(groupID, userID) {
		return false
	}
	s.users.Remove(userID)
	s.typing.End(userID)
	s.emit(models.StoreEvent{Event: "member_removed", GroupID: groupID, UserID: userID})
	return true
}

// UpdateProfile applies a partial edit to the local viewer's profile.
func (s *Store) UpdateProfile(update models.ProfileUpdate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.users.Current()
	if !ok {
		return false
	}
	if !s.users.Update(current.ID, update) {
		return false
	}
	s.emit(models.StoreEvent{Event: "profile_updated", UserID: current.ID})
	return true
}

// UpdateNotificationSettings merges a partial notification settings edit.
func (s *Store) UpdateNotificationSettings(update models.NotificationSettingsUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.GroupNotifications != nil {
		s.notifications.GroupNotifications = *update.GroupNotifications
	}
	if update.MessagePreview != nil {
		s.notifications.MessagePreview = *update.MessagePreview
	}
	if update.Sound != nil {
		s.notifications.Sound = *update.Sound
	}
	if update.Vibration != nil {
		s.notifications.Vibration = *update.Vibration
	}
	s.emit(models.StoreEvent{Event: "settings_updated", Payload: "notifications"})
}

// UpdatePrivacySettings merges a partial privacy settings edit.
func (s *Store) UpdatePrivacySettings(update models.PrivacySettingsUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.LastSeen != nil {
		s.privacy.LastSeen = *update.LastSeen
	}
	if update.ProfilePhoto != nil {
		s.privacy.ProfilePhoto = *update.ProfilePhoto
	}
	if update.Status != nil {
		s.privacy.Status = *update.Status
	}
	if update.ReadReceipts != nil {
		s.privacy.ReadReceipts = *update.ReadReceipts
	}
	s.emit(models.StoreEvent{Event: "settings_updated", Payload: "privacy"})
}

// CurrentUser returns the local viewer.
func (s *Store) CurrentUser() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := s.users.Current()
	return current
}

// User returns a user profile.
func (s *Store) User(id string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users.Get(id)
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// Group returns group metadata.
func (s *Store) Group(id string) (models.Group, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups.Get(id)
	if !ok {
		return models.Group{}, ErrGroupNotFound
	}
	return group, nil
}

// GroupIDs returns all group ids in creation order.
func (s *Store) GroupIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.groups.IDs()
}

// ActiveGroupID returns the id of the currently selected group.
func (s *Store) ActiveGroupID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeGroupID
}

// GroupList returns the unread-augmented group summaries in stable
// order, the backing view for the sidebar group list.
func (s *Store) GroupList() []models.GroupSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread.Snapshot()
}

// UnreadCount returns the unread counter for a group.
func (s *Store) UnreadCount(groupID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unread.Count(groupID)
}

// Members resolves the group's member ids to profiles, keeping member
// order.
func (s *Store) Members(groupID string) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, ok := s.groups.Get(groupID)
	if !ok {
		return nil
	}
	members := make([]models.User, 0, len(group.Members))
	for _, id := range group.Members {
		if user, ok := s.users.Get(id); ok {
			members = append(members, user)
		}
	}
	return members
}

// NotificationSettings returns the viewer's notification preferences.
func (s *Store) NotificationSettings() models.NotificationSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notifications
}

// PrivacySettings returns the viewer's privacy preferences.
func (s *Store) PrivacySettings() models.PrivacySettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.privacy
}

func (s *Store) emit(event models.StoreEvent) {
	if s.emitter == nil {
		return
	}
	s.emitter.Emit(event)
}
