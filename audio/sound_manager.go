package audio

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/yes-or-no/constants"
	"github.com/lixenwraith/yes-or-no/game"
)

// Sentinel errors
var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownTrack   = errors.New("unknown track")
)

// SoundManager plays the game's tracks through a single beep mixer
// Loops are kept by track so they can be stopped; each track has at most one one-shot voice
type SoundManager struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	mixer       *beep.Mixer
	loops       map[game.Track]*beep.Ctrl
	oneShots    map[game.Track]*beep.Ctrl
	paused      bool
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		rate:  beep.SampleRate(constants.SampleRate),
		mixer: &beep.Mixer{},
		loops:    make(map[game.Track]*beep.Ctrl),
		oneShots: make(map[game.Track]*beep.Ctrl),
	}
}

// Initialize sets up the speaker; failure leaves the manager usable and silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and clears the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	for t, ctrl := range sm.loops {
		ctrl.Streamer = nil
		delete(sm.loops, t)
	}
	for t, ctrl := range sm.oneShots {
		ctrl.Streamer = nil
		delete(sm.oneShots, t)
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// beep keeps the device open for the process lifetime; an empty mixer is silent
	sm.initialized = false
}

// PlayLoop starts t looping; a loop already playing is left alone
func (sm *SoundManager) PlayLoop(t game.Track, volume float64) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}
	if _, playing := sm.loops[t]; playing {
		return nil
	}

	s, err := trackStreamer(t, sm.rate, volume)
	if err != nil {
		return fmt.Errorf("loop %s: %w", t, err)
	}
	ctrl := &beep.Ctrl{Streamer: s, Paused: sm.paused}

	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()

	sm.loops[t] = ctrl
	return nil
}

// PlayOnce plays t to completion, restarting it if it is already sounding
func (sm *SoundManager) PlayOnce(t game.Track, volume float64) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	s, err := trackStreamer(t, sm.rate, volume)
	if err != nil {
		return fmt.Errorf("play %s: %w", t, err)
	}

	ctrl := &beep.Ctrl{Streamer: s, Paused: sm.paused}

	speaker.Lock()
	if prev, ok := sm.oneShots[t]; ok {
		// Drained by the mixer on its next pass
		prev.Streamer = nil
	}
	sm.mixer.Add(ctrl)
	speaker.Unlock()

	sm.oneShots[t] = ctrl
	return nil
}

// Stop ends the loop for t; stopping a track that is not looping is a no-op
func (sm *SoundManager) Stop(t game.Track) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	ctrl, ok := sm.loops[t]
	if !ok {
		return nil
	}

	// A Ctrl with a nil streamer drains and the mixer drops it
	speaker.Lock()
	ctrl.Streamer = nil
	speaker.Unlock()

	delete(sm.loops, t)
	return nil
}

// SetPaused pauses or resumes every active loop and one-shot
func (sm *SoundManager) SetPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.paused = paused
	if !sm.initialized {
		return
	}

	speaker.Lock()
	for _, ctrl := range sm.loops {
		ctrl.Paused = paused
	}
	for _, ctrl := range sm.oneShots {
		ctrl.Paused = paused
	}
	speaker.Unlock()
}

// Looping reports whether t has an active loop
func (sm *SoundManager) Looping(t game.Track) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	_, ok := sm.loops[t]
	return ok
}

var _ game.Audio = (*SoundManager)(nil)
