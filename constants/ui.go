package constants

import "time"

// Text
const (
	DefaultTitle    = "Will you go out with me?"
	DefaultSubtitle = "Choose wisely."
	DefaultFinal    = "I knew you'd say yes!"
	AcceptLabel     = "[ YES ]"
	DeclineLabel    = "[ NO ]"
	CounterLabel    = "No count: "
	FinalHint       = "r: restart  q: quit"
)

// Layout (cells)
const (
	// ControlHeight is the rendered height of both controls
	ControlHeight = 3

	// ContainerMinWidth and ContainerMinHeight bound the buttons container on small terminals
	ContainerMinWidth  = 30
	ContainerMinHeight = 9

	// ContainerWidthFraction is the share of the screen width given to the buttons container
	ContainerWidthFraction = 0.8

	// ParticleAspectY compensates for cells being roughly twice as tall as wide
	ParticleAspectY = 0.5

	// NarrowScreenWidth selects the smaller ambient heart count
	NarrowScreenWidth = 96
)

// Ambient Floating Hearts
const (
	FloatHeartsNarrow      = 8
	FloatHeartsWide        = 12
	FloatHeartMinDuration  = 18 * time.Second
	FloatHeartDurationSpan = 15 * time.Second
	FloatHeartMaxDelay     = 20 * time.Second
)

// Glyphs
const (
	GlyphAsh      = '·'
	GlyphBroken   = '♡'
	GlyphHeart    = '♥'
	GlyphSparkle  = '❣'
	GlyphFloat    = '♥'
	GlyphDamage   = '▓'
	GlyphDebris   = '░'
	GlyphFinalBig = '♥'
)
