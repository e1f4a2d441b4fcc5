// Package status is the in-process metric store read by the debug overlay
package status

import (
	"fmt"
	"sync/atomic"
)

// Registry is the central metrics facade
// Callers cache pointers once; updates are lock-free atomic writes
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// Lines renders every metric as "key: value", ints first, then bools, then strings, each sorted
func (r *Registry) Lines() []string {
	lines := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s: %d", key, v.Load()))
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		lines = append(lines, fmt.Sprintf("%s: %t", key, v.Load()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		lines = append(lines, fmt.Sprintf("%s: %s", key, v.Load()))
	})
	return lines
}
