package engine

import "time"

// TimeProvider abstracts the wall clock for the session loop
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider provides the system time with monotonic clock readings
type RealTimeProvider struct{}

// NewTimeProvider creates a monotonic time provider
func NewTimeProvider() *RealTimeProvider {
	return &RealTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
