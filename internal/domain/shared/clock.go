package shared

import (
	"context"
	"sync"
	"time"
)

// Clock abstracts time so production runs can be driven deterministically in tests
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx ends, whichever comes first
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock reads the system wall clock
type RealClock struct{}

// Now returns the current system time in UTC
func (r *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// Sleep waits on a timer that is stopped as soon as ctx ends
func (r *RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NewRealClock creates a RealClock instance
func NewRealClock() Clock {
	return &RealClock{}
}

// MockClock is a manually driven clock. Sleep advances time instead of blocking.
type MockClock struct {
	mu          sync.Mutex
	CurrentTime time.Time
	slept       []time.Duration
}

// NewMockClock creates a MockClock starting at the given time
// If zero time is provided, starts at current time
func NewMockClock(startTime time.Time) *MockClock {
	if startTime.IsZero() {
		startTime = time.Now()
	}
	return &MockClock{CurrentTime: startTime}
}

// Now returns the mock's current time
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CurrentTime
}

// Sleep records the duration and moves the clock forward without blocking.
// A finished ctx is reported and nothing is recorded.
func (m *MockClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.slept = append(m.slept, d)
	m.CurrentTime = m.CurrentTime.Add(d)
	return nil
}

// Advance moves the mock clock forward by the given duration
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CurrentTime = m.CurrentTime.Add(d)
}

// Sleeps returns every duration passed to Sleep, in call order
func (m *MockClock) Sleeps() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Duration, len(m.slept))
	copy(out, m.slept)
	return out
}
