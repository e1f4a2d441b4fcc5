package engine

import (
	"container/heap"
	"time"
)

// Timer is a cancellable handle to a scheduled task
type Timer struct {
	deadline time.Time
	seq      uint64
	fn       func()
	index    int // heap slot, -1 once fired or stopped
}

// Stop cancels the task, returns false if it already ran or was stopped
func (t *Timer) Stop() bool {
	if t == nil || t.fn == nil {
		return false
	}
	t.fn = nil
	return true
}

// Active reports whether the task is still waiting to run
func (t *Timer) Active() bool {
	return t != nil && t.fn != nil
}

// Deadline returns the virtual time the task is due
func (t *Timer) Deadline() time.Time {
	return t.deadline
}

// Scheduler is a single-owner task queue driven by a virtual clock
// Tasks never run concurrently: Advance executes due tasks one at a time on the caller's goroutine
type Scheduler struct {
	now   time.Time
	seq   uint64
	queue timerHeap
}

// NewScheduler creates a scheduler whose virtual clock starts at start
func NewScheduler(start time.Time) *Scheduler {
	return &Scheduler{now: start}
}

// Now returns the current virtual time
func (s *Scheduler) Now() time.Time {
	return s.now
}

// After schedules fn to run d after the current virtual time
// Non-positive delays run on the next Advance, after tasks already due
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{
		deadline: s.now.Add(d),
		seq:      s.seq,
		fn:       fn,
	}
	heap.Push(&s.queue, t)
	return t
}

// Advance moves the virtual clock to `to` and runs every task due at or before it
// Tasks run in deadline order, ties in scheduling order; tasks scheduled by a running
// task are picked up in the same call when they are already due
// Returns the number of tasks executed
func (s *Scheduler) Advance(to time.Time) int {
	ran := 0
	for s.queue.Len() > 0 {
		next := s.queue[0]
		if next.deadline.After(to) {
			break
		}
		heap.Pop(&s.queue)

		fn := next.fn
		if fn == nil {
			continue // stopped
		}
		next.fn = nil

		if next.deadline.After(s.now) {
			s.now = next.deadline
		}
		fn()
		ran++
	}
	if to.After(s.now) {
		s.now = to
	}
	return ran
}

// Pending returns the number of tasks still waiting, stopped tasks excluded
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.queue {
		if t.fn != nil {
			n++
		}
	}
	return n
}

// Reset cancels every pending task, the clock keeps its current time
func (s *Scheduler) Reset() {
	for _, t := range s.queue {
		t.fn = nil
		t.index = -1
	}
	s.queue = s.queue[:0]
}

// timerHeap orders timers by deadline then sequence
type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].deadline.Equal(h[j].deadline) {
		return h[i].seq < h[j].seq
	}
	return h[i].deadline.Before(h[j].deadline)
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
