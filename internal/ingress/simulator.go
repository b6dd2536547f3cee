package ingress

import (
	"context"
	"log"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"

	"chat-sim/internal/models"
	"chat-sim/internal/observability"
	"chat-sim/internal/store"
)

// Tick outcomes recorded in metrics.
const (
	outcomeIdle      = "idle"
	outcomeEmptyPool = "empty_pool"
	outcomeScheduled = "scheduled"
)

// Config holds the simulator tuning knobs. Zero values fall back to the
// reference demo behavior: a tick every 10s, a 0.3 chance per tick and a
// delivery delay drawn uniformly from [1s, 3s).
type Config struct {
	Interval    time.Duration
	Probability float64
	MinDelay    time.Duration
	MaxDelay    time.Duration
	Seed        int64
}

// Simulator stands in for a server push channel. On each tick it may
// pick a group and a member and, after a short delay, deliver a
// placeholder message through the store. Stop cancels the ticker only:
// deliveries already in flight still apply, routing is re-checked by the
// store at delivery time.
type Simulator struct {
	store       *store.Store
	interval    time.Duration
	probability float64
	minDelay    time.Duration
	maxDelay    time.Duration
	rng         *rand.Rand
	stopChan    chan struct{}

	// schedule is swapped out in tests for deterministic delivery.
	schedule func(delay time.Duration, deliver func())
}

// New creates a simulator bound to the store.
func New(st *store.Store, cfg Config) *Simulator {
	if cfg.Interval <= 0 {
		cfg.Interval = 10 * time.Second
	}
	if cfg.Probability <= 0 {
		cfg.Probability = 0.3
	}
	if cfg.MinDelay <= 0 {
		cfg.MinDelay = time.Second
	}
	if cfg.MaxDelay <= cfg.MinDelay {
		cfg.MaxDelay = 3 * time.Second
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Simulator{
		store:       st,
		interval:    cfg.Interval,
		probability: cfg.Probability,
		minDelay:    cfg.MinDelay,
		maxDelay:    cfg.MaxDelay,
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		stopChan:    make(chan struct{}),
		schedule: func(delay time.Duration, deliver func()) {
			time.AfterFunc(delay, deliver)
		},
	}
}

// Start runs the tick loop until Stop is called. Call with 'go'.
func (s *Simulator) Start() {
	log.Printf("ingress simulator started (interval: %v, probability: %.2f)", s.interval, s.probability)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-s.stopChan:
			log.Printf("ingress simulator stopped")
			return
		}
	}
}

// Stop cancels the tick loop. In-flight deliveries are not cancelled.
func (s *Simulator) Stop() {
	close(s.stopChan)
}

// tick runs one ingress round. It can never fail observably, a tick with
// nothing to do is simply skipped.
func (s *Simulator) tick() {
	if s.rng.Float64() >= s.probability {
		observability.IncIngressTick(outcomeIdle)
		return
	}

	groupIDs := s.store.GroupIDs()
	if len(groupIDs) == 0 {
		observability.IncIngressTick(outcomeEmptyPool)
		return
	}
	groupID := groupIDs[s.rng.Intn(len(groupIDs))]

	sender, ok := s.pickSender(groupID)
	if !ok {
		observability.IncIngressTick(outcomeEmptyPool)
		return
	}

	// Visible only when the group is active, the store enforces that.
	s.store.BeginTyping(groupID, sender.ID)

	content := randomPhrase(s.rng)
	delay := s.minDelay + time.Duration(s.rng.Int63n(int64(s.maxDelay-s.minDelay)))
	s.schedule(delay, func() {
		s.deliver(groupID, sender.ID, content)
	})
	observability.IncIngressTick(outcomeScheduled)
}

// pickSender draws a uniform random member of the group, excluding the
// local viewer.
func (s *Simulator) pickSender(groupID string) (models.User, bool) {
	members := s.store.Members(groupID)
	pool := members[:0:0]
	for _, member := range members {
		if !member.IsCurrentUser {
			pool = append(pool, member)
		}
	}
	if len(pool) == 0 {
		return models.User{}, false
	}
	return pool[s.rng.Intn(len(pool))], true
}

func (s *Simulator) deliver(groupID, senderID, content string) {
	_, span := otel.Tracer("chat-sim/ingress").Start(context.Background(), "ingress.deliver")
	defer span.End()

	if _, ok := s.store.ReceiveMessage(groupID, senderID, content); !ok {
		log.Printf("ingress delivery dropped group=%s sender=%s", groupID, senderID)
	}
}
