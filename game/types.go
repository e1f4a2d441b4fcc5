package game

import (
	"github.com/lixenwraith/yes-or-no/evade"
	"github.com/lixenwraith/yes-or-no/particle"
	"github.com/lixenwraith/yes-or-no/vmath"
)

// EvasionState tracks the decline control's lifecycle
type EvasionState uint8

const (
	EvasionIdle      EvasionState = iota // Never declined
	EvasionEvading                       // Relocates on every decline
	EvasionDestroyed                     // Removed, declines are ignored
)

func (s EvasionState) String() string {
	switch s {
	case EvasionIdle:
		return "idle"
	case EvasionEvading:
		return "evading"
	case EvasionDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// Outcome is the session result
type Outcome uint8

const (
	OutcomeInProgress Outcome = iota
	OutcomeAccepted
	OutcomeExhausted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in-progress"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// ControlState is the decline control's visual state
type ControlState uint8

const (
	ControlNormal ControlState = iota
	ControlEvading
	ControlDisintegrating
	ControlRemoved
)

func (s ControlState) String() string {
	switch s {
	case ControlNormal:
		return "normal"
	case ControlEvading:
		return "evading"
	case ControlDisintegrating:
		return "disintegrating"
	case ControlRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// ControlID names a layout element
type ControlID uint8

const (
	ControlAccept ControlID = iota
	ControlDecline
	ControlScreen
)

// Track names an audio track
type Track uint8

const (
	TrackHeartbeat Track = iota // Ambient loop
	TrackSad                    // Decline feedback
	TrackHappy                  // Accept fanfare
)

func (t Track) String() string {
	switch t {
	case TrackHeartbeat:
		return "heartbeat"
	case TrackSad:
		return "sad"
	case TrackHappy:
		return "happy"
	default:
		return "unknown"
	}
}

// Renderer draws controller state; positions are relative to the bounded region
type Renderer interface {
	particle.Target
	SetControlPosition(p vmath.Point)
	SetControlVisualState(s ControlState)
	ShowEffectWindow(name string, active bool)
	SetAttemptCount(n int)
	TransitionToFinalScreen()
}

// Audio plays tracks; errors are reported, never fatal
type Audio interface {
	PlayLoop(t Track, volume float64) error
	PlayOnce(t Track, volume float64) error
	Stop(t Track) error
}

// Layout answers geometry queries against the current screen, ok is false when unknown
type Layout interface {
	BoundedRegion() (evade.Region, bool)
	Rect(id ControlID) (vmath.Rect, bool)
	Size(id ControlID) (vmath.Size, bool)
}

// Reporter is the observability sink for non-fatal collaborator failures
type Reporter interface {
	Report(op string, err error)
}
