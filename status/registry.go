package status

import "sync/atomic"

// Registry holds the sortie's counters, one typed map per value kind
// Systems write through cached pointers; the diagnostics dump reads
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Reset wipes every counter for a fresh sortie
// Cached pointers go stale; systems re-fetch them in Init
func (r *Registry) Reset() {
	r.Bools.Reset()
	r.Ints.Reset()
	r.Floats.Reset()
	r.Strings.Reset()
}

// TotalCount returns the number of registered counters across all kinds
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
