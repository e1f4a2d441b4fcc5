// Package particle emits bursts of short-lived animated particles
package particle

import (
	"time"

	"github.com/lixenwraith/yes-or-no/vmath"
)

// Variant selects a particle's look
type Variant uint8

const (
	VariantAsh     Variant = iota // Grey ash flake
	VariantBroken                 // Broken heart
	VariantHeart                  // Red heart
	VariantSparkle                // Sparkling heart
)

func (v Variant) String() string {
	switch v {
	case VariantAsh:
		return "ash"
	case VariantBroken:
		return "broken"
	case VariantHeart:
		return "heart"
	case VariantSparkle:
		return "sparkle"
	default:
		return "unknown"
	}
}

// Handle is the renderer's id for a spawned particle
type Handle uint64

// Particle is an immutable spawn description; the renderer animates it from Born
// through Peak (at PeakAt of its duration) to End while fading out
type Particle struct {
	Origin   vmath.Point   // Absolute spawn position
	Peak     vmath.Point   // Displacement at the opaque keyframe
	End      vmath.Point   // Displacement at fade-out, overshoot plus fall
	PeakAt   float64       // Fraction of Duration at which Peak is reached
	Born     time.Time     // Virtual time the particle was spawned
	Delay    time.Duration // Stagger offset from burst start
	Duration time.Duration // Lifetime after Born
	Variant  Variant
	Scale    float64
}

// Progress returns the normalized age at now, negative before Born and > 1 after expiry
func (p Particle) Progress(now time.Time) float64 {
	if p.Duration <= 0 {
		return 1
	}
	return float64(now.Sub(p.Born)) / float64(p.Duration)
}

// Offset returns the eased displacement from Origin and the opacity at progress t
func (p Particle) Offset(t float64) (vmath.Point, float64) {
	peakAt := p.PeakAt
	if peakAt <= 0 || peakAt >= 1 {
		peakAt = 0.4
	}
	switch {
	case t <= 0:
		return vmath.Point{}, 0
	case t < peakAt:
		k := vmath.EaseOutCubic(t / peakAt)
		return vmath.LerpPoint(vmath.Point{}, p.Peak, k), 0.9 * k
	case t < 1:
		k := vmath.EaseOutCubic((t - peakAt) / (1 - peakAt))
		return vmath.LerpPoint(p.Peak, p.End, k), 0.9 * (1 - k)
	default:
		return p.End, 0
	}
}

// Position returns the absolute eased position and opacity at now
func (p Particle) Position(now time.Time) (vmath.Point, float64) {
	off, alpha := p.Offset(p.Progress(now))
	return p.Origin.Add(off), alpha
}

// Target hosts spawned particles
type Target interface {
	SpawnParticle(p Particle) Handle
	RemoveParticle(h Handle)
}
