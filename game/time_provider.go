package game

import (
	"sync"
	"time"
)

// TimeProvider supplies the current time to the loop
type TimeProvider interface {
	Now() time.Time
}

// RealTime reads the wall clock
type RealTime struct{}

func (RealTime) Now() time.Time {
	return time.Now()
}

// MockTimeProvider is a manually advanced clock for deterministic tests
type MockTimeProvider struct {
	mu      sync.Mutex
	current time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	m.current = m.current.Add(d)
	m.mu.Unlock()
}
