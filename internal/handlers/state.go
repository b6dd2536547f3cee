package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"

	"chat-sim/internal/models"
	"chat-sim/internal/store"
)

// StateHandler exposes read-only snapshots of the chat state store for
// local inspection. It never mutates the store beyond what a viewer
// looking at the UI would trigger.
type StateHandler struct {
	store *store.Store
	now   func() time.Time
}

// NewStateHandler constructs a StateHandler.
func NewStateHandler(st *store.Store) *StateHandler {
	return &StateHandler{store: st, now: time.Now}
}

// messageView is a rendered message with display formatting applied.
type messageView struct {
	models.Message
	Sender        string `json:"sender"`
	FormattedTime string `json:"formatted_time"`
}

// daySection groups rendered messages under a calendar-date divider.
type daySection struct {
	Label    string        `json:"label"`
	Messages []messageView `json:"messages"`
}

// Health handles GET /healthz.
func (h *StateHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListGroups handles GET /state/groups.
func (h *StateHandler) ListGroups(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"groups": h.store.GroupList()})
}

// GroupMembers handles GET /state/groups/:group_id/members.
func (h *StateHandler) GroupMembers(c *gin.Context) {
	groupID := c.Param("group_id")
	if _, err := h.store.Group(groupID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": h.store.Members(groupID)})
}

// GroupMessages handles GET /state/groups/:group_id/messages. The
// optional viewer_id query renders the log from another member's
// perspective, the local viewer is the default.
func (h *StateHandler) GroupMessages(c *gin.Context) {
	_, span := otel.Tracer("chat-sim/handlers").Start(context.Background(), "state.group_messages")
	defer span.End()

	groupID := c.Param("group_id")
	viewerID := c.Query("viewer_id")
	if viewerID == "" {
		viewerID = h.store.CurrentUser().ID
	}

	msgs, err := h.store.MessagesFor(groupID, viewerID)
	if err != nil {
		if errors.Is(err, store.ErrGroupNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "group not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"days": h.sections(msgs)})
}

// ActiveState handles GET /state/active: the selected group, its
// rendered message log and the typing set in one snapshot.
func (h *StateHandler) ActiveState(c *gin.Context) {
	groupID := h.store.ActiveGroupID()
	group, err := h.store.Group(groupID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"active": nil})
		return
	}

	typing := make([]string, 0)
	for _, user := range h.store.TypingUsers() {
		typing = append(typing, user.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"active": gin.H{
			"group":  group,
			"days":   h.sections(h.store.ActiveMessages()),
			"typing": typing,
		},
	})
}

// TypingUsers handles GET /state/typing.
func (h *StateHandler) TypingUsers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"typing": h.store.TypingUsers()})
}

func (h *StateHandler) sections(msgs []models.Message) []daySection {
	now := h.now()
	sections := make([]daySection, 0)
	for _, msg := range msgs {
		sender := ""
		if user, err := h.store.User(msg.SenderID); err == nil {
			sender = user.Name
		}
		view := messageView{
			Message:       msg,
			Sender:        sender,
			FormattedTime: FormatMessageTime(msg.CreatedAt, now),
		}

		label := DayLabel(msg.CreatedAt, now)
		if n := len(sections); n > 0 && sections[n-1].Label == label {
			sections[n-1].Messages = append(sections[n-1].Messages, view)
			continue
		}
		sections = append(sections, daySection{Label: label, Messages: []messageView{view}})
	}
	return sections
}
