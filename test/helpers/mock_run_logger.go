package helpers

import "sync"

// LogEntry is one captured log call
type LogEntry struct {
	Level    string
	Message  string
	Metadata map[string]interface{}
}

// MockRunLogger captures log calls for assertions
type MockRunLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewMockRunLogger creates a new capturing logger
func NewMockRunLogger() *MockRunLogger {
	return &MockRunLogger{}
}

// Log implements common.RunLogger
func (m *MockRunLogger) Log(level, message string, metadata map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, LogEntry{Level: level, Message: message, Metadata: metadata})
}

// Messages returns the captured messages in call order
func (m *MockRunLogger) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e.Message)
	}
	return out
}

// Entries returns a copy of all captured entries
func (m *MockRunLogger) Entries() []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]LogEntry, len(m.entries))
	copy(out, m.entries)
	return out
}
