package engine

import "time"

// MockTimeProvider provides controllable time for deterministic tests
type MockTimeProvider struct {
	current time.Time
}

// NewMockTimeProvider creates a provider starting at the given instant
func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{current: start}
}

// Now returns the mock current time
func (p *MockTimeProvider) Now() time.Time {
	return p.current
}

// Advance moves the mock clock forward
func (p *MockTimeProvider) Advance(d time.Duration) {
	p.current = p.current.Add(d)
}

// Set jumps the mock clock to an absolute instant
func (p *MockTimeProvider) Set(t time.Time) {
	p.current = t
}
