// Package game holds the escalation controller: the accept/decline state machine and the
// ordering of its timed effects
package game

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/lixenwraith/yes-or-no/constants"
	"github.com/lixenwraith/yes-or-no/effect"
	"github.com/lixenwraith/yes-or-no/engine"
	"github.com/lixenwraith/yes-or-no/evade"
	"github.com/lixenwraith/yes-or-no/particle"
	"github.com/lixenwraith/yes-or-no/status"
	"github.com/lixenwraith/yes-or-no/vmath"
)

const tracerName = "github.com/lixenwraith/yes-or-no/game"

// Sentinel errors reported when a collaborator cannot serve an effect
var (
	ErrNoLayout   = errors.New("layout unavailable")
	ErrNoRenderer = errors.New("renderer unavailable")
)

// Deps are the controller's collaborators; every field except Scheduler may be nil
type Deps struct {
	Scheduler *engine.Scheduler
	Renderer  Renderer
	Audio     Audio
	Layout    Layout
	Reporter  Reporter
	Rand      *rand.Rand
	Metrics   *status.Registry
}

// Controller is the escalation state machine
// All methods must be called from the goroutine that advances the scheduler
type Controller struct {
	cfg Config

	sched    *engine.Scheduler
	effects  *effect.Registry
	emitter  *particle.Emitter
	rng      *rand.Rand
	render   Renderer
	audio    Audio
	layout   Layout
	reporter Reporter
	tracer   trace.Tracer

	attempts   int
	evasion    EvasionState
	outcome    Outcome
	accepting  bool // accept committed, final transition pending or done
	position   vmath.Point
	positioned bool

	statAttempts *atomic.Int64
	statEvasion  *status.AtomicString
	statOutcome  *status.AtomicString
}

// NewController wires a controller; call Start before delivering activations
func NewController(cfg Config, deps Deps) *Controller {
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	var sink effect.Sink
	if deps.Renderer != nil {
		sink = deps.Renderer
	}

	metrics := deps.Metrics
	if metrics == nil {
		metrics = status.NewRegistry()
	}

	return &Controller{
		cfg:          cfg,
		sched:        deps.Scheduler,
		effects:      effect.NewRegistry(deps.Scheduler, sink),
		emitter:      particle.NewEmitter(deps.Scheduler, rng),
		rng:          rng,
		render:       deps.Renderer,
		audio:        deps.Audio,
		layout:       deps.Layout,
		reporter:     deps.Reporter,
		tracer:       otel.Tracer(tracerName),
		statAttempts: metrics.Ints.Get("game.attempts"),
		statEvasion:  metrics.Strings.Get("game.evasion"),
		statOutcome:  metrics.Strings.Get("game.outcome"),
	}
}

// Start puts the decline control in its initial state and starts the ambient loop
func (c *Controller) Start() {
	ctx, span := c.tracer.Start(context.Background(), "start")
	defer span.End()

	c.setVisual(ControlNormal)
	if c.render != nil {
		c.render.SetAttemptCount(0)
	}
	c.publish()

	if c.audio != nil {
		if err := c.audio.PlayLoop(TrackHeartbeat, c.cfg.Volumes.Heartbeat); err != nil {
			c.report(ctx, "audio.loop", err)
		}
	}
}

// Decline handles one decline activation
func (c *Controller) Decline() {
	if c.evasion == EvasionDestroyed || c.accepting {
		return
	}

	c.attempts++
	ctx, span := c.tracer.Start(context.Background(), "decline",
		trace.WithAttributes(attribute.Int("attempt", c.attempts)))
	defer span.End()

	if c.render != nil {
		c.render.SetAttemptCount(c.attempts)
	}
	c.effects.Open(constants.WindowDamage, c.cfg.DamageDuration)
	c.effects.Open(constants.WindowShake, c.cfg.ShakeDuration)

	if c.attempts == 1 {
		c.evasion = EvasionEvading
		c.setVisual(ControlEvading)
		c.relocate(ctx)
	}

	if c.attempts <= c.cfg.MaxAttempts {
		c.relocate(ctx)

		if c.attempts == c.cfg.MaxAttempts {
			span.AddEvent("destruction scheduled")
			c.sched.After(c.cfg.DestroyDelay, c.disintegrate)
		} else {
			c.playOnce(ctx, TrackSad, c.cfg.Volumes.Sad)
			c.burstFromControl(ctx, c.cfg.LightAsh)
		}
	}

	c.publish()
}

// Accept handles an accept activation; only the first one has any effect
func (c *Controller) Accept() {
	if c.accepting {
		return
	}
	c.accepting = true

	ctx, span := c.tracer.Start(context.Background(), "accept",
		trace.WithAttributes(attribute.Int("attempt", c.attempts)))
	defer span.End()

	c.effects.Open(constants.WindowReveal, c.cfg.AcceptSettle)
	c.playOnce(ctx, TrackHappy, c.cfg.Volumes.Happy)

	if origin, ok := c.rectCenter(ControlScreen); ok {
		c.burst(c.cfg.Explosion, origin)
	} else {
		c.report(ctx, "explosion", ErrNoLayout)
	}

	c.sched.After(c.cfg.AcceptSettle, c.finish)
}

// Attempts returns the number of counted declines
func (c *Controller) Attempts() int {
	return c.attempts
}

// Evasion returns the decline control's lifecycle state
func (c *Controller) Evasion() EvasionState {
	return c.evasion
}

// Outcome returns the session result
func (c *Controller) Outcome() Outcome {
	return c.outcome
}

// ControlPosition returns the last solved decline position, region-relative
func (c *Controller) ControlPosition() (vmath.Point, bool) {
	return c.position, c.positioned
}

// EffectActive reports whether the named effect window is open
func (c *Controller) EffectActive(name string) bool {
	return c.effects.Active(name)
}

// disintegrate runs the destruction sequence once the last relocation has settled
func (c *Controller) disintegrate() {
	ctx := context.Background()

	c.setVisual(ControlDisintegrating)
	c.playOnce(ctx, TrackSad, c.cfg.Volumes.Sad)
	c.burstFromControl(ctx, c.cfg.Disintegration)

	c.sched.After(c.cfg.RemovalDelay, c.remove)
}

func (c *Controller) remove() {
	c.evasion = EvasionDestroyed
	c.setVisual(ControlRemoved)
	// A committed accept owns the outcome
	if c.outcome == OutcomeInProgress && !c.accepting {
		c.outcome = OutcomeExhausted
	}
	c.publish()
}

// finish is the single terminal screen transition
func (c *Controller) finish() {
	ctx, span := c.tracer.Start(context.Background(), "finish")
	defer span.End()

	if c.audio != nil {
		if err := c.audio.Stop(TrackHeartbeat); err != nil {
			c.report(ctx, "audio.stop", err)
		}
	}

	c.outcome = OutcomeAccepted
	c.publish()

	if c.render != nil {
		c.render.TransitionToFinalScreen()
	} else {
		c.report(ctx, "final", ErrNoRenderer)
	}
}

func (c *Controller) relocate(ctx context.Context) {
	if c.layout == nil {
		c.report(ctx, "relocate", ErrNoLayout)
		return
	}
	region, ok := c.layout.BoundedRegion()
	if !ok {
		c.report(ctx, "relocate", ErrNoLayout)
		return
	}
	avoid, ok := c.layout.Rect(ControlAccept)
	if !ok {
		// Nothing to keep away from: any point of the region will do
		avoid = vmath.Rect{X: -1e6, Y: -1e6}
	}
	mover, ok := c.layout.Size(ControlDecline)
	if !ok {
		c.report(ctx, "relocate", ErrNoLayout)
		return
	}

	c.position = evade.ComputePosition(region, avoid, mover, c.rng, c.cfg.Solver)
	c.positioned = true
	if c.render != nil {
		c.render.SetControlPosition(c.position)
	}
}

func (c *Controller) burstFromControl(ctx context.Context, b particle.Burst) {
	origin, ok := c.rectCenter(ControlDecline)
	if !ok {
		c.report(ctx, "ash", ErrNoLayout)
		return
	}
	c.burst(b, origin)
}

func (c *Controller) burst(b particle.Burst, origin vmath.Point) {
	if c.render == nil {
		return
	}
	b.Origin = origin
	c.emitter.Emit(c.render, b)
}

func (c *Controller) rectCenter(id ControlID) (vmath.Point, bool) {
	if c.layout == nil {
		return vmath.Point{}, false
	}
	r, ok := c.layout.Rect(id)
	if !ok {
		return vmath.Point{}, false
	}
	return r.Center(), true
}

func (c *Controller) playOnce(ctx context.Context, t Track, volume float64) {
	if c.audio == nil {
		return
	}
	if err := c.audio.PlayOnce(t, volume); err != nil {
		c.report(ctx, "audio.once", err)
	}
}

func (c *Controller) setVisual(s ControlState) {
	if c.render != nil {
		c.render.SetControlVisualState(s)
	}
}

func (c *Controller) report(ctx context.Context, op string, err error) {
	trace.SpanFromContext(ctx).RecordError(err, trace.WithAttributes(attribute.String("op", op)))
	if c.reporter != nil {
		c.reporter.Report(op, err)
	}
}

func (c *Controller) publish() {
	c.statAttempts.Store(int64(c.attempts))
	c.statEvasion.Store(c.evasion.String())
	c.statOutcome.Store(c.outcome.String())
}
