package constants

import "time"

// Loop Timing
const (
	// FrameUpdateInterval is the render/tick interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventBufferSize is the capacity of the terminal event channel
	EventBufferSize = 100
)

// Escalation
const (
	// MaxAttempts is the decline count that destroys the decline control
	MaxAttempts = 3

	// DestroyDelay lets the final relocation settle before disintegration starts
	DestroyDelay = 400 * time.Millisecond

	// RemovalDelay is the disintegration visual duration before the control is removed
	RemovalDelay = 1700 * time.Millisecond

	// AcceptSettle is the pause between accept and the final screen
	AcceptSettle = 2200 * time.Millisecond
)

// Effect Windows
const (
	WindowDamage = "damage"
	WindowShake  = "shake"
	WindowReveal = "reveal"

	DamageDuration = 1300 * time.Millisecond
	ShakeDuration  = 900 * time.Millisecond
)

// Position Solver
const (
	// RegionPadding keeps the evading control off the container edge
	RegionPadding = 2.0

	// CandidateWidthFraction biases candidates toward the left of the usable area
	CandidateWidthFraction = 0.7

	// CandidateHeightFraction biases candidates toward the top of the usable area
	CandidateHeightFraction = 0.6

	// ExclusionFactor is the half-size of the square zone around the accept control, in mover widths
	ExclusionFactor = 1.6

	// EscapeFactor is the escape offset from the accept control center, in mover widths
	EscapeFactor = 1.8

	// EscapeJitter is the upper bound of the random escape offset, in cells
	EscapeJitter = 3.0
)

// Disintegration Burst (decline exhausted)
const (
	AshCount       = 18
	AshBroken      = 6
	AshStagger     = 55 * time.Millisecond
	AshMinDistance = 6.0
	AshMaxDistance = 20.0
	AshMinDuration = 1300 * time.Millisecond
	AshMaxDuration = 1900 * time.Millisecond
	AshLift        = -3.0
	AshOvershoot   = 1.6
	AshFall        = 7.0
)

// Light Ash Burst (decline below threshold)
const (
	LightAshCount  = 10
	LightAshBroken = 3
)

// Explosion Burst (accept)
const (
	ExplosionCount         = 100
	ExplosionStagger       = 40 * time.Millisecond
	ExplosionMinDistance   = 8.0
	ExplosionMaxDistance   = 36.0
	ExplosionMinDuration   = 1400 * time.Millisecond
	ExplosionMaxDuration   = 2300 * time.Millisecond
	ExplosionOvershoot     = 1.5
	ExplosionHeartChance   = 0.6
	ExplosionMinScale      = 18.0
	ExplosionMaxScale      = 48.0
	ParticlePeakAt         = 0.4
	ParticleStartScale     = 0.2
	ParticleBoldScaleLimit = 30.0
)
