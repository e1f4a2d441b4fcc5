package engine

import "time"

// PausableClock derives game time from a TimeProvider, frozen while paused
// Owned by the main loop, not safe for concurrent use
type PausableClock struct {
	source TimeProvider

	startTime       time.Time     // Real time at creation
	pauseStartTime  time.Time     // Real time the current pause began, zero when running
	totalPausedTime time.Duration // Cumulative completed pause duration
}

// NewPausableClock creates a running clock on top of source
func NewPausableClock(source TimeProvider) *PausableClock {
	if source == nil {
		source = NewMonotonicTimeProvider()
	}
	return &PausableClock{
		source:    source,
		startTime: source.Now(),
	}
}

// Now returns game time: real elapsed minus paused time, anchored at creation
func (pc *PausableClock) Now() time.Time {
	wall := pc.source.Now()
	if pc.IsPaused() {
		wall = pc.pauseStartTime
	}
	return pc.startTime.Add(wall.Sub(pc.startTime) - pc.totalPausedTime)
}

// Pause freezes game time, no-op when already paused
func (pc *PausableClock) Pause() {
	if pc.IsPaused() {
		return
	}
	pc.pauseStartTime = pc.source.Now()
}

// Resume continues game time, no-op when running
func (pc *PausableClock) Resume() {
	if !pc.IsPaused() {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
}

// Toggle flips pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
	} else {
		pc.Pause()
	}
	return pc.IsPaused()
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return !pc.pauseStartTime.IsZero()
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.IsPaused() {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
