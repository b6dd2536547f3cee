package telemetry

import (
	"context"
	"log"
	"time"

	"chat-sim/internal/models"
)

type Publisher interface {
	Publish(ctx context.Context, routingKey string, event any) error
	Close() error
}

// Emitter wraps store events in a versioned envelope and hands them to a
// publisher. A nil emitter or nil publisher silently drops events, the
// store never depends on egress being configured.
type Emitter struct {
	publisher   Publisher
	routingKey  string
	service     string
	environment string
}

type Envelope struct {
	SchemaVersion int               `json:"schema_version"`
	EventType     string            `json:"event_type"`
	OccurredAt    string            `json:"occurred_at"`
	Service       string            `json:"service"`
	Environment   string            `json:"environment"`
	Event         models.StoreEvent `json:"event"`
}

func NewEmitter(publisher Publisher, routingKey, service, environment string) *Emitter {
	return &Emitter{
		publisher:   publisher,
		routingKey:  routingKey,
		service:     service,
		environment: environment,
	}
}

func (e *Emitter) Emit(event models.StoreEvent) {
	if e == nil || e.publisher == nil {
		return
	}

	envelope := Envelope{
		SchemaVersion: 1,
		EventType:     "chat_event",
		OccurredAt:    time.Now().UTC().Format(time.RFC3339Nano),
		Service:       e.service,
		Environment:   e.environment,
		Event:         event,
	}

	if err := e.publisher.Publish(context.Background(), e.routingKey, envelope); err != nil {
		log.Printf("event publish failed: %v", err)
	}
}
