package particle

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/yes-or-no/engine"
	"github.com/lixenwraith/yes-or-no/vmath"
)

// Trajectory bounds the per-particle sampling of a burst
type Trajectory struct {
	MinDistance, MaxDistance float64
	MinDuration, MaxDuration time.Duration
	MinScale, MaxScale       float64

	Lift      float64 // Vertical offset added at the peak keyframe, negative is up
	Overshoot float64 // End displacement as a multiple of the peak displacement
	Fall      float64 // Extra vertical drop added at the end keyframe
	PeakAt    float64 // Fraction of the lifetime spent reaching the peak
}

// Burst describes one emission
type Burst struct {
	Origin     vmath.Point
	Count      int
	Variants   VariantPolicy
	Trajectory Trajectory
	Stagger    time.Duration
}

// Emitter schedules particle spawns and removals; it keeps no per-burst state
type Emitter struct {
	sched *engine.Scheduler
	rng   *rand.Rand
}

// NewEmitter creates an emitter on the given scheduler and randomness source
func NewEmitter(s *engine.Scheduler, rng *rand.Rand) *Emitter {
	return &Emitter{sched: s, rng: rng}
}

// Emit schedules b.Count particles, particle i spawning i*Stagger from now and removing itself
// after its sampled duration; returns the number scheduled
func (e *Emitter) Emit(target Target, b Burst) int {
	if target == nil || b.Count <= 0 {
		return 0
	}
	policy := b.Variants
	if policy == nil {
		policy = FixedPolicy(VariantAsh)
	}

	for i := 0; i < b.Count; i++ {
		p := e.sample(b, policy, i)
		if p.Delay == 0 {
			e.spawn(target, p)
			continue
		}
		e.sched.After(p.Delay, func() { e.spawn(target, p) })
	}
	return b.Count
}

// sample draws particle i of b without scheduling it
func (e *Emitter) sample(b Burst, policy VariantPolicy, i int) Particle {
	tr := b.Trajectory

	angle := e.rng.Float64() * 2 * math.Pi
	distance := uniform(e.rng, tr.MinDistance, tr.MaxDistance)
	duration := time.Duration(uniform(e.rng, float64(tr.MinDuration), float64(tr.MaxDuration)))
	scale := uniform(e.rng, tr.MinScale, tr.MaxScale)

	peak := vmath.Point{
		X: math.Cos(angle) * distance,
		Y: math.Sin(angle)*distance + tr.Lift,
	}
	overshoot := tr.Overshoot
	if overshoot == 0 {
		overshoot = 1
	}
	end := peak.Scale(overshoot).Add(vmath.Point{Y: tr.Fall})

	return Particle{
		Origin:   b.Origin,
		Peak:     peak,
		End:      end,
		PeakAt:   tr.PeakAt,
		Delay:    time.Duration(i) * b.Stagger,
		Duration: duration,
		Variant:  policy.Variant(i, b.Count, e.rng),
		Scale:    scale,
	}
}

func (e *Emitter) spawn(target Target, p Particle) {
	p.Born = e.sched.Now()
	h := target.SpawnParticle(p)
	e.sched.After(p.Duration, func() { target.RemoveParticle(h) })
}

// uniform samples [lo, hi), returning lo for an empty range
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
