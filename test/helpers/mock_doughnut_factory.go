package helpers

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/bakery-go/internal/domain/production"
)

// FixedProductionTime is the timestamp stamped on every doughnut made by MockDoughnutFactory
var FixedProductionTime = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

// MockDoughnutFactory is a deterministic production.Factory: fixed timestamp,
// unit price of one, and a per-flavor record of Create calls
type MockDoughnutFactory struct {
	mu    sync.Mutex
	Price decimal.Decimal
	calls map[production.Flavor]int
}

// NewMockDoughnutFactory creates a factory pricing every doughnut at 1
func NewMockDoughnutFactory() *MockDoughnutFactory {
	return &MockDoughnutFactory{
		Price: decimal.NewFromInt(1),
		calls: make(map[production.Flavor]int),
	}
}

// Create implements production.Factory
func (m *MockDoughnutFactory) Create(flavor production.Flavor) production.Doughnut {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[flavor]++
	return production.NewDoughnut(flavor, m.Price, FixedProductionTime)
}

// CallsFor returns how many doughnuts were created for a flavor
func (m *MockDoughnutFactory) CallsFor(flavor production.Flavor) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[flavor]
}

// TotalCalls returns how many doughnuts were created across all flavors
func (m *MockDoughnutFactory) TotalCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, n := range m.calls {
		total += n
	}
	return total
}
