// Package effect tracks named, time-boxed visual effect windows
package effect

import (
	"sort"
	"time"

	"github.com/lixenwraith/yes-or-no/engine"
)

// Sink receives window activity transitions
type Sink interface {
	ShowEffectWindow(name string, active bool)
}

// Window is an open effect window
type Window struct {
	Name     string
	Start    time.Time
	Duration time.Duration
}

// End returns the scheduled close time
func (w Window) End() time.Time {
	return w.Start.Add(w.Duration)
}

type entry struct {
	window Window
	closer *engine.Timer
}

// Registry holds independent effect windows; any number may be open at once
type Registry struct {
	sched   *engine.Scheduler
	sink    Sink
	windows map[string]*entry
}

// NewRegistry creates a registry scheduling closes on s; sink may be nil
func NewRegistry(s *engine.Scheduler, sink Sink) *Registry {
	return &Registry{
		sched:   s,
		sink:    sink,
		windows: make(map[string]*entry),
	}
}

// Open activates name now and closes it after d
// Reopening an open window replaces its close deadline (last writer wins), the sink
// only observes the first activation and the final close
func (r *Registry) Open(name string, d time.Duration) {
	if d <= 0 {
		r.close(name)
		return
	}

	e, open := r.windows[name]
	if open {
		e.closer.Stop()
	} else {
		e = &entry{}
		r.windows[name] = e
	}

	e.window = Window{Name: name, Start: r.sched.Now(), Duration: d}
	e.closer = r.sched.After(d, func() { r.close(name) })

	if !open && r.sink != nil {
		r.sink.ShowEffectWindow(name, true)
	}
}

// Active reports whether name is currently open
func (r *Registry) Active(name string) bool {
	_, ok := r.windows[name]
	return ok
}

// Window returns the open window for name
func (r *Registry) Window(name string) (Window, bool) {
	e, ok := r.windows[name]
	if !ok {
		return Window{}, false
	}
	return e.window, true
}

// ActiveNames returns open window names, sorted
func (r *Registry) ActiveNames() []string {
	names := make([]string, 0, len(r.windows))
	for name := range r.windows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) close(name string) {
	e, ok := r.windows[name]
	if !ok {
		return
	}
	e.closer.Stop()
	delete(r.windows, name)
	if r.sink != nil {
		r.sink.ShowEffectWindow(name, false)
	}
}
