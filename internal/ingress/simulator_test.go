package ingress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"chat-sim/internal/models"
	"chat-sim/internal/store"
)

func newSimStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(nil)
	s.Bootstrap([]models.User{
		{ID: "user-1", Name: "You", IsCurrentUser: true},
		{ID: "user-2", Name: "Alex"},
	}, []store.BootstrapGroup{
		{Info: models.Group{ID: "a", Name: "Alpha", AdminID: "user-1", Members: []string{"user-1", "user-2"}}},
	}, []models.GroupSummary{
		{ID: "a", Name: "Alpha"},
	}, "a")
	return s
}

// captureSchedule swaps the delivery timer for a captured closure so
// tests decide when the delayed delivery lands.
func captureSchedule(sim *Simulator) *[]func() {
	var pending []func()
	sim.schedule = func(delay time.Duration, deliver func()) {
		pending = append(pending, deliver)
	}
	return &pending
}

func TestTickSchedulesTypingAndDelivery(t *testing.T) {
	s := newSimStore(t)
	sim := New(s, Config{Probability: 1, Seed: 7})
	pending := captureSchedule(sim)

	sim.tick()
	require.Len(t, *pending, 1)

	// The chosen group is the active one, the sender shows as typing.
	typing := s.TypingUsers()
	require.Len(t, typing, 1)
	require.Equal(t, "Alex", typing[0].Name)

	(*pending)[0]()

	// Delivery appends, stops typing and leaves unread at zero since the
	// group is still active.
	require.Empty(t, s.TypingUsers())
	require.Len(t, s.ActiveMessages(), 1)
	require.Zero(t, s.UnreadCount("a"))
}

func TestDeliveryAfterGroupSwitchCountsUnread(t *testing.T) {
	s := newSimStore(t)
	s.Bootstrap(nil, []store.BootstrapGroup{
		{Info: models.Group{ID: "b", Name: "Beta", AdminID: "user-1", Members: []string{"user-1"}}},
	}, []models.GroupSummary{{ID: "b", Name: "Beta"}}, "a")

	sim := New(s, Config{Probability: 1, Seed: 7})
	pending := captureSchedule(sim)

	// Force the tick while a is active, then switch away before the
	// delivery lands.
	for len(*pending) == 0 {
		sim.tick()
	}
	require.True(t, s.SelectGroup("b"))

	(*pending)[0]()
	require.Equal(t, 1, s.UnreadCount("a"))
	require.Empty(t, s.TypingUsers())
}

func TestDeliveryAfterSwitchToTargetStaysRead(t *testing.T) {
	s := newSimStore(t)
	s.Bootstrap(nil, []store.BootstrapGroup{
		{Info: models.Group{ID: "b", Name: "Beta", AdminID: "user-1", Members: []string{"user-1", "user-2"}}},
	}, []models.GroupSummary{{ID: "b", Name: "Beta"}}, "a")

	sim := New(s, Config{Probability: 1, Seed: 11})
	pending := captureSchedule(sim)

	// Keep ticking until the simulator targets the non-active group b,
	// then switch to b before the delivery lands. The delivered message
	// must append to b without counting as unread.
	var delivered bool
	for i := 0; i < 100 && !delivered; i++ {
		*pending = (*pending)[:0]
		sim.tick()
		if len(*pending) == 0 {
			continue
		}
		if len(s.TypingUsers()) > 0 {
			// Tick targeted the active group, drain it and retry.
			(*pending)[0]()
			continue
		}

		before, err := s.MessagesFor("b", "user-1")
		require.NoError(t, err)

		require.True(t, s.SelectGroup("b"))
		(*pending)[0]()

		after, err := s.MessagesFor("b", "user-1")
		require.NoError(t, err)
		require.Len(t, after, len(before)+1)
		require.Zero(t, s.UnreadCount("b"))
		delivered = true
	}
	require.True(t, delivered)
}

func TestTickSkipsWhenNoEligibleSender(t *testing.T) {
	s := store.New(nil)
	s.Bootstrap([]models.User{
		{ID: "user-1", Name: "You", IsCurrentUser: true},
	}, []store.BootstrapGroup{
		{Info: models.Group{ID: "solo", Name: "Solo", AdminID: "user-1", Members: []string{"user-1"}}},
	}, []models.GroupSummary{{ID: "solo", Name: "Solo"}}, "solo")

	sim := New(s, Config{Probability: 1, Seed: 3})
	pending := captureSchedule(sim)

	for i := 0; i < 10; i++ {
		sim.tick()
	}
	require.Empty(t, *pending)
	require.Empty(t, s.TypingUsers())
}

func TestTickSkipsWithoutGroups(t *testing.T) {
	s := store.New(nil)
	sim := New(s, Config{Probability: 1, Seed: 3})
	pending := captureSchedule(sim)

	sim.tick()
	require.Empty(t, *pending)
}

func TestConfigDefaults(t *testing.T) {
	sim := New(store.New(nil), Config{})
	require.Equal(t, 10*time.Second, sim.interval)
	require.InDelta(t, 0.3, sim.probability, 1e-9)
	require.Equal(t, time.Second, sim.minDelay)
	require.Equal(t, 3*time.Second, sim.maxDelay)
}

func TestStartStop(t *testing.T) {
	s := newSimStore(t)
	sim := New(s, Config{Interval: time.Hour, Probability: 1, Seed: 1})

	done := make(chan struct{})
	go func() {
		sim.Start()
		close(done)
	}()

	sim.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("simulator did not stop")
	}
}

func TestDeliverDroppedForUnknownSender(t *testing.T) {
	s := newSimStore(t)
	sim := New(s, Config{Probability: 1, Seed: 1})

	// A sender removed between schedule and delivery is silently dropped.
	sim.deliver("a", "ghost", "late message")
	require.Empty(t, s.ActiveMessages())
}

func TestRandomPhrasePool(t *testing.T) {
	sim := New(store.New(nil), Config{Seed: 42})
	seen := map[string]struct{}{}
	for i := 0; i < 200; i++ {
		seen[randomPhrase(sim.rng)] = struct{}{}
	}
	require.Greater(t, len(seen), 1)
	for phrase := range seen {
		require.Contains(t, samplePhrases, phrase)
	}
}
