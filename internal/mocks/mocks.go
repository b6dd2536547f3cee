package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"chat-sim/internal/models"
)

type PublisherMock struct {
	mock.Mock
}

func (m *PublisherMock) Publish(ctx context.Context, routingKey string, event any) error {
	args := m.Called(ctx, routingKey, event)
	return args.Error(0)
}

func (m *PublisherMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

// EmitterRecorder captures store events for assertions.
type EmitterRecorder struct {
	Events []models.StoreEvent
}

func (r *EmitterRecorder) Emit(event models.StoreEvent) {
	r.Events = append(r.Events, event)
}
