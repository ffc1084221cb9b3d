package helpers

import (
	"context"
	"sync"

	"github.com/andrescamacho/bakery-go/internal/application/production/services"
)

// MockStatusSink records every status update it receives
type MockStatusSink struct {
	mu      sync.Mutex
	updates []services.StatusUpdate

	// OnPublish, if set, runs after each update is recorded
	OnPublish func(update services.StatusUpdate)
}

// NewMockStatusSink creates a new recording sink
func NewMockStatusSink() *MockStatusSink {
	return &MockStatusSink{updates: make([]services.StatusUpdate, 0)}
}

// Publish implements services.StatusSink
func (m *MockStatusSink) Publish(ctx context.Context, update services.StatusUpdate) {
	m.mu.Lock()
	m.updates = append(m.updates, update)
	hook := m.OnPublish
	m.mu.Unlock()

	if hook != nil {
		hook(update)
	}
}

// Updates returns a copy of all recorded updates
func (m *MockStatusSink) Updates() []services.StatusUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]services.StatusUpdate, len(m.updates))
	copy(out, m.updates)
	return out
}

// Last returns the most recent update and whether there was one
func (m *MockStatusSink) Last() (services.StatusUpdate, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.updates) == 0 {
		return services.StatusUpdate{}, false
	}
	return m.updates[len(m.updates)-1], true
}
