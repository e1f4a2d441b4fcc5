// Package evade places the evading control inside its container, away from the fixed control
package evade

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/yes-or-no/constants"
	"github.com/lixenwraith/yes-or-no/vmath"
)

// Region is the container the mover is confined to, in absolute coordinates
type Region struct {
	Bounds  vmath.Rect
	Padding float64
}

// Usable returns the space left for the mover's top-left corner after padding on both sides
func (r Region) Usable(mover vmath.Size) (w, h float64) {
	return r.Bounds.W - mover.W - 2*r.Padding, r.Bounds.H - mover.H - 2*r.Padding
}

// Options tunes candidate sampling and escape
type Options struct {
	WidthFraction   float64 // share of usable width sampled for candidates
	HeightFraction  float64 // share of usable height sampled for candidates
	ExclusionFactor float64 // exclusion half-size in mover widths
	EscapeFactor    float64 // escape offset from avoid center in mover widths
	Jitter          float64 // escape jitter upper bound, cells
}

// DefaultOptions returns the stock solver tuning
func DefaultOptions() Options {
	return Options{
		WidthFraction:   constants.CandidateWidthFraction,
		HeightFraction:  constants.CandidateHeightFraction,
		ExclusionFactor: constants.ExclusionFactor,
		EscapeFactor:    constants.EscapeFactor,
		Jitter:          constants.EscapeJitter,
	}
}

// InExclusionZone reports whether p (region-relative) falls inside the square zone around center
func InExclusionZone(p, center vmath.Point, mover vmath.Size, factor float64) bool {
	limit := mover.W * factor
	return math.Abs(p.X-center.X) < limit && math.Abs(p.Y-center.Y) < limit
}

// ComputePosition returns a region-relative top-left corner for the mover
// The result is always inside [p, p+usableW] x [p, p+usableH]; rng is the only randomness
func ComputePosition(region Region, avoid vmath.Rect, mover vmath.Size, rng *rand.Rand, opts Options) vmath.Point {
	pad := region.Padding
	uw, uh := region.Usable(mover)

	x := pad + rng.Float64()*math.Max(uw*opts.WidthFraction, 0)
	y := pad + rng.Float64()*math.Max(uh*opts.HeightFraction, 0)

	center := avoid.Center()
	center.X -= region.Bounds.X
	center.Y -= region.Bounds.Y

	if InExclusionZone(vmath.Point{X: x, Y: y}, center, mover, opts.ExclusionFactor) {
		x = center.X + mover.W*opts.EscapeFactor + rng.Float64()*opts.Jitter
		if x > uw {
			x = uw - mover.W
		}
	}

	return vmath.Point{
		X: vmath.Clamp(x, pad, pad+uw),
		Y: vmath.Clamp(y, pad, pad+uh),
	}
}
