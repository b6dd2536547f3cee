package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chat-sim/internal/models"
)

func TestGroupRegistryCreate(t *testing.T) {
	reg := NewGroupRegistry()
	at := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	info := reg.Create("g1", "Test", "user-1", at)
	require.Equal(t, []string{"user-1"}, info.Members)
	require.Equal(t, "user-1", info.AdminID)
	require.Equal(t, at, info.CreatedAt)
	require.Empty(t, reg.Messages("g1"))
	require.Equal(t, []string{"g1"}, reg.IDs())
}

func TestGroupRegistryAppendOrder(t *testing.T) {
	reg := NewGroupRegistry()
	reg.Create("g1", "Test", "user-1", time.Now())

	// Appends keep arrival order even when timestamps go backwards.
	reg.Append("g1", models.Message{ID: "m1", CreatedAt: time.Unix(200, 0)})
	reg.Append("g1", models.Message{ID: "m2", CreatedAt: time.Unix(100, 0)})

	msgs := reg.Messages("g1")
	require.Equal(t, "m1", msgs[0].ID)
	require.Equal(t, "m2", msgs[1].ID)
}

func TestGroupRegistryTombstoneIdempotent(t *testing.T) {
	reg := NewGroupRegistry()
	reg.Create("g1", "Test", "user-1", time.Now())
	reg.Append("g1", models.Message{ID: "m1", Content: "hi"})

	require.True(t, reg.SetDeleted("g1", "m1"))
	require.True(t, reg.SetDeleted("g1", "m1"))

	msgs := reg.Messages("g1")
	require.True(t, msgs[0].Deleted)
	// The log keeps the entry, deletion is a flag.
	require.Equal(t, "hi", msgs[0].Content)

	require.False(t, reg.SetDeleted("g1", "missing"))
	require.False(t, reg.SetDeleted("missing", "m1"))
}

func TestGroupRegistryHideForViewerIdempotent(t *testing.T) {
	reg := NewGroupRegistry()
	reg.Create("g1", "Test", "user-1", time.Now())
	reg.Append("g1", models.Message{ID: "m1"})

	require.True(t, reg.HideForViewer("g1", "m1", "user-2"))
	require.True(t, reg.HideForViewer("g1", "m1", "user-2"))

	msgs := reg.Messages("g1")
	require.Equal(t, []string{"user-2"}, msgs[0].HiddenFor)
}

func TestGroupRegistryMessagesIsCopy(t *testing.T) {
	reg := NewGroupRegistry()
	reg.Create("g1", "Test", "user-1", time.Now())
	reg.Append("g1", models.Message{ID: "m1", Content: "original"})

	msgs := reg.Messages("g1")
	msgs[0].Content = "mutated"

	require.Equal(t, "original", reg.Messages("g1")[0].Content)
}

func TestGroupRegistryToggleReactionMultipleUsers(t *testing.T) {
	reg := NewGroupRegistry()
	reg.Create("g1", "Test", "user-1", time.Now())
	reg.Append("g1", models.Message{ID: "m1"})

	require.True(t, reg.ToggleReaction("g1", "m1", "🎉", "user-1"))
	require.True(t, reg.ToggleReaction("g1", "m1", "🎉", "user-2"))
	require.True(t, reg.ToggleReaction("g1", "m1", "👍", "user-1"))

	reactions := reg.Messages("g1")[0].Reactions
	require.Len(t, reactions, 2)
	require.Equal(t, []string{"user-1", "user-2"}, reactions[0].UserIDs)

	// user-1 withdraws from 🎉, user-2 stays.
	require.True(t, reg.ToggleReaction("g1", "m1", "🎉", "user-1"))
	reactions = reg.Messages("g1")[0].Reactions
	require.Equal(t, []string{"user-2"}, reactions[0].UserIDs)
}

func TestUserRegistryCurrent(t *testing.T) {
	reg := NewUserRegistry()
	reg.Load(models.User{ID: "u1", Name: "Alex"})
	reg.Load(models.User{ID: "u2", Name: "You", IsCurrentUser: true})

	current, ok := reg.Current()
	require.True(t, ok)
	require.Equal(t, "u2", current.ID)

	reg.Remove("u2")
	_, ok = reg.Current()
	require.False(t, ok)
}

func TestUserRegistryListOrder(t *testing.T) {
	reg := NewUserRegistry()
	reg.Load(models.User{ID: "u2", Name: "B"})
	reg.Load(models.User{ID: "u1", Name: "A"})

	users := reg.List()
	require.Equal(t, "u2", users[0].ID)
	require.Equal(t, "u1", users[1].ID)

	// Re-loading an existing id updates in place without reordering.
	reg.Load(models.User{ID: "u2", Name: "B2"})
	users = reg.List()
	require.Len(t, users, 2)
	require.Equal(t, "B2", users[0].Name)
}
