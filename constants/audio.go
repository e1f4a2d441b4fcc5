package constants

import "time"

// Playback
const (
	// SampleRate is the speaker sample rate in Hz
	SampleRate = 44100

	// SpeakerBuffer is the speaker buffer length
	SpeakerBuffer = 100 * time.Millisecond
)

// Track Volumes (0.0 - 1.0)
const (
	HeartbeatVolume = 0.12
	SadVolume       = 0.7
	HappyVolume     = 0.6
)

// Heartbeat Loop
const (
	HeartbeatPeriod   = 900 * time.Millisecond
	HeartbeatLubAt    = 0 * time.Millisecond
	HeartbeatDubAt    = 220 * time.Millisecond
	HeartbeatThump    = 90 * time.Millisecond
	HeartbeatLubFreq  = 55.0
	HeartbeatDubFreq  = 70.0
	HeartbeatDubLevel = 0.7
)

// Sad Sound (descending minor third slide)
const (
	SadSoundDuration = 700 * time.Millisecond
	SadSoundAttack   = 20 * time.Millisecond
	SadSoundRelease  = 400 * time.Millisecond
	SadStartFreq     = 392.00 // G4
	SadEndFreq       = 311.13 // Eb4
)

// Happy Sound (major arpeggio)
const (
	HappyNoteDuration = 140 * time.Millisecond
	HappyNoteAttack   = 5 * time.Millisecond
	HappyNoteRelease  = 110 * time.Millisecond
	HappyTailDuration = 600 * time.Millisecond
	HappyTailRelease  = 550 * time.Millisecond
)

// HappyNotes is the C major arpeggio played on accept
var HappyNotes = []float64{523.25, 659.25, 783.99, 1046.50}
