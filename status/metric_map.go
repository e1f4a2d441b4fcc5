package status

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"
	"unicode/utf8"
)

// MetricMap is a keyed set of metric cells of type T
// Cells are created once under the lock and then updated through their own atomics
type MetricMap[T any] struct {
	mu    sync.RWMutex
	cells map[string]*T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{cells: make(map[string]*T)}
}

// Get returns the cell for key, registering it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if cell, ok := m.Lookup(key); ok {
		return cell
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	cell, ok := m.cells[key]
	if !ok {
		cell = new(T)
		m.cells[key] = cell
	}
	return cell
}

// Lookup returns the cell for key without registering it
func (m *MetricMap[T]) Lookup(key string) (*T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cell, ok := m.cells[key]
	return cell, ok
}

// Range visits cells in key order
func (m *MetricMap[T]) Range(fn func(key string, cell *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, k := range slices.Sorted(maps.Keys(m.cells)) {
		fn(k, m.cells[k])
	}
}

// Count returns the number of registered cells
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.cells)
}

// MaxStringLen bounds AtomicString values in runes so overlay lines stay short
const MaxStringLen = 32

// AtomicString is a string cell; the zero value holds ""
type AtomicString struct {
	v atomic.Pointer[string]
}

// Store sets the value, cutting it to MaxStringLen runes
func (s *AtomicString) Store(val string) {
	if utf8.RuneCountInString(val) > MaxStringLen {
		val = string([]rune(val)[:MaxStringLen])
	}
	s.v.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.v.Load(); p != nil {
		return *p
	}
	return ""
}
