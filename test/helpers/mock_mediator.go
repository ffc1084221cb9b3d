package helpers

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/andrescamacho/bakery-go/internal/application/common"
	"github.com/andrescamacho/bakery-go/internal/application/production/commands"
	"github.com/andrescamacho/bakery-go/internal/domain/production"
)

// MockMediator is a test double for the Mediator interface.
// By default it starts a run that stays running and fails every batch,
// which lets runner tests reach their error paths without a tracker.
type MockMediator struct {
	mu       sync.Mutex
	sendFunc func(ctx context.Context, request common.Request) (common.Response, error)
	callLog  []string // Track which requests were sent
}

// NewMockMediator creates a new MockMediator
func NewMockMediator() *MockMediator {
	return &MockMediator{
		callLog: []string{},
	}
}

// Send implements the Mediator interface
func (m *MockMediator) Send(ctx context.Context, request common.Request) (common.Response, error) {
	m.mu.Lock()
	m.callLog = append(m.callLog, reflect.TypeOf(request).Elem().Name())
	fn := m.sendFunc
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, request)
	}

	switch req := request.(type) {
	case *commands.StartProductionCommand:
		statuses := make([]production.Status, 0, len(req.Plan))
		for _, item := range req.Plan {
			statuses = append(statuses, production.Status{
				Flavor:         item.Flavor(),
				TargetQuantity: item.TargetQuantity(),
			})
		}
		return &commands.StartProductionResponse{
			RunID:    "produce-mock0001",
			Statuses: statuses,
			Running:  len(statuses) > 0,
		}, nil

	case *commands.ProduceBatchCommand:
		return nil, fmt.Errorf("oven offline")

	default:
		return nil, fmt.Errorf("unsupported request type: %T", request)
	}
}

// SetSendFunc sets a custom function for Send calls
func (m *MockMediator) SetSendFunc(fn func(ctx context.Context, request common.Request) (common.Response, error)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendFunc = fn
}

// GetCallLog returns the request type names in the order they were sent
func (m *MockMediator) GetCallLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string{}, m.callLog...)
}

// Register implements the Mediator interface (no-op for tests)
func (m *MockMediator) Register(requestType reflect.Type, handler common.RequestHandler) error {
	return nil
}

// Use implements the Mediator interface (no-op for tests)
func (m *MockMediator) Use(middleware common.Middleware) {}

// Ensure MockMediator implements the common.Mediator interface
var _ common.Mediator = (*MockMediator)(nil)
