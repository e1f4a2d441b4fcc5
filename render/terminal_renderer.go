// Package render draws the game on a tcell screen and answers the controller's layout queries
package render

import (
	"math"
	"math/rand/v2"
	"strconv"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/yes-or-no/constants"
	"github.com/lixenwraith/yes-or-no/evade"
	"github.com/lixenwraith/yes-or-no/game"
	"github.com/lixenwraith/yes-or-no/particle"
	"github.com/lixenwraith/yes-or-no/status"
	"github.com/lixenwraith/yes-or-no/vmath"
)

const (
	shakePeriodMs  = 60
	damagePulseMs  = 260
	revealStrength = 0.85
)

// finalHeart is drawn centered on the final screen
var finalHeart = []string{
	"  ♥♥♥♥     ♥♥♥♥  ",
	" ♥♥♥♥♥♥   ♥♥♥♥♥♥ ",
	"♥♥♥♥♥♥♥♥ ♥♥♥♥♥♥♥♥",
	" ♥♥♥♥♥♥♥♥♥♥♥♥♥♥♥ ",
	"   ♥♥♥♥♥♥♥♥♥♥♥   ",
	"     ♥♥♥♥♥♥♥     ",
	"       ♥♥♥       ",
	"        ♥        ",
}

// Options configures texts and the debug overlay
type Options struct {
	Title    string
	Subtitle string
	Final    string
	Debug    bool
	Metrics  *status.Registry
	Rand     *rand.Rand
}

// floatHeart is one ambient heart rising from the bottom edge
type floatHeart struct {
	column   int
	delay    time.Duration
	duration time.Duration
}

// TerminalRenderer handles all terminal rendering
// Not safe for concurrent use; owned by the main loop
type TerminalRenderer struct {
	screen tcell.Screen
	opts   Options
	rng    *rand.Rand
	layout Layout

	declinePos   vmath.Point
	declineState game.ControlState
	attempts     int
	windows      map[string]bool
	particles    map[particle.Handle]particle.Particle
	nextHandle   particle.Handle
	final        bool

	hearts      []floatHeart
	heartsEpoch time.Time

	statParticles *atomic.Int64
	statEffects   *atomic.Int64
	statFrames    *atomic.Int64
}

// NewTerminalRenderer creates a renderer sized to the screen
func NewTerminalRenderer(screen tcell.Screen, opts Options) *TerminalRenderer {
	if opts.Title == "" {
		opts.Title = constants.DefaultTitle
	}
	if opts.Subtitle == "" {
		opts.Subtitle = constants.DefaultSubtitle
	}
	if opts.Final == "" {
		opts.Final = constants.DefaultFinal
	}
	if opts.Metrics == nil {
		opts.Metrics = status.NewRegistry()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	r := &TerminalRenderer{
		screen:        screen,
		opts:          opts,
		rng:           rng,
		statParticles: opts.Metrics.Ints.Get("particles.live"),
		statEffects:   opts.Metrics.Ints.Get("effects.open"),
		statFrames:    opts.Metrics.Ints.Get("render.frames"),
	}
	r.Reset(time.Time{})
	return r
}

// Reset clears all session state and reseeds the ambient hearts starting at now
func (r *TerminalRenderer) Reset(now time.Time) {
	w, h := r.screen.Size()
	r.layout = ComputeLayout(w, h)
	r.declinePos = r.layout.DeclineHome
	r.declineState = game.ControlNormal
	r.attempts = 0
	r.windows = make(map[string]bool)
	r.particles = make(map[particle.Handle]particle.Particle)
	r.final = false
	r.heartsEpoch = now
	r.seedHearts(w)

	r.statParticles.Store(0)
	r.statEffects.Store(0)
}

// Resize recomputes the layout, keeping the decline control inside the new container
func (r *TerminalRenderer) Resize() {
	w, h := r.screen.Size()
	moved := r.declinePos != r.layout.DeclineHome
	r.layout = ComputeLayout(w, h)
	if moved {
		r.declinePos = r.layout.ClampDecline(r.declinePos)
	} else {
		r.declinePos = r.layout.DeclineHome
	}
}

func (r *TerminalRenderer) seedHearts(width int) {
	count := constants.FloatHeartsWide
	if width < constants.NarrowScreenWidth {
		count = constants.FloatHeartsNarrow
	}
	r.hearts = r.hearts[:0]
	for i := 0; i < count; i++ {
		r.hearts = append(r.hearts, floatHeart{
			column:   r.rng.IntN(max(width, 1)),
			delay:    time.Duration(r.rng.Int64N(int64(constants.FloatHeartMaxDelay))),
			duration: constants.FloatHeartMinDuration + time.Duration(r.rng.Int64N(int64(constants.FloatHeartDurationSpan))),
		})
	}
}

// Final reports whether the final screen is showing
func (r *TerminalRenderer) Final() bool {
	return r.final
}

// HitTest maps a screen cell to the control under it
func (r *TerminalRenderer) HitTest(x, y int) (game.ControlID, bool) {
	if r.final {
		return 0, false
	}
	if cellContains(r.layout.Accept, x, y) {
		return game.ControlAccept, true
	}
	if r.declineState != game.ControlRemoved && cellContains(r.layout.DeclineRect(r.declinePos), x, y) {
		return game.ControlDecline, true
	}
	return 0, false
}

// --- game.Layout ---

// BoundedRegion returns the container the decline control evades inside
func (r *TerminalRenderer) BoundedRegion() (evade.Region, bool) {
	if r.layout.Container.Empty() {
		return evade.Region{}, false
	}
	return r.layout.Region(), true
}

// Rect returns a control's absolute rect; a removed decline control has none
func (r *TerminalRenderer) Rect(id game.ControlID) (vmath.Rect, bool) {
	switch id {
	case game.ControlAccept:
		return r.layout.Accept, true
	case game.ControlDecline:
		if r.declineState == game.ControlRemoved {
			return vmath.Rect{}, false
		}
		return r.layout.DeclineRect(r.declinePos), true
	case game.ControlScreen:
		return r.layout.Screen, !r.layout.Screen.Empty()
	}
	return vmath.Rect{}, false
}

// Size returns a control's footprint
func (r *TerminalRenderer) Size(id game.ControlID) (vmath.Size, bool) {
	if id == game.ControlDecline {
		return r.layout.DeclineSize, true
	}
	rect, ok := r.Rect(id)
	return rect.Size(), ok
}

// --- game.Renderer ---

func (r *TerminalRenderer) SetControlPosition(p vmath.Point) {
	r.declinePos = p
}

func (r *TerminalRenderer) SetControlVisualState(s game.ControlState) {
	r.declineState = s
}

func (r *TerminalRenderer) ShowEffectWindow(name string, active bool) {
	if active {
		r.windows[name] = true
	} else {
		delete(r.windows, name)
	}
	r.statEffects.Store(int64(len(r.windows)))
}

func (r *TerminalRenderer) SetAttemptCount(n int) {
	r.attempts = n
}

func (r *TerminalRenderer) TransitionToFinalScreen() {
	r.final = true
}

func (r *TerminalRenderer) SpawnParticle(p particle.Particle) particle.Handle {
	r.nextHandle++
	r.particles[r.nextHandle] = p
	r.statParticles.Store(int64(len(r.particles)))
	return r.nextHandle
}

func (r *TerminalRenderer) RemoveParticle(h particle.Handle) {
	delete(r.particles, h)
	r.statParticles.Store(int64(len(r.particles)))
}

// --- Drawing ---

// Draw renders one frame at virtual time now
func (r *TerminalRenderer) Draw(now time.Time) {
	r.statFrames.Add(1)

	bg := RgbBackground
	if r.windows[constants.WindowReveal] {
		bg = Blend(bg, RgbReveal, revealStrength)
	}
	base := tcell.StyleDefault.Background(bg.Color())
	r.screen.Fill(' ', base)

	dx := 0
	if r.windows[constants.WindowShake] {
		dx = int(math.Round(math.Sin(float64(now.UnixMilli()) / shakePeriodMs * math.Pi)))
	}

	if r.final {
		// Explosion particles outlive the transition; the final text stays on top
		r.drawParticles(now, bg, 0)
		r.drawFinal(base)
	} else {
		r.drawFloatingHearts(now, bg)
		r.drawCentered(r.layout.TitleY, r.opts.Title, base.Foreground(RgbTitle.Color()).Bold(true), dx)
		r.drawCentered(r.layout.SubtitleY, r.opts.Subtitle, base.Foreground(RgbSubtitle.Color()), dx)
		r.drawContainer(now, base, dx)
		r.drawButton(r.layout.Accept, constants.AcceptLabel,
			base.Foreground(RgbAcceptFg.Color()).Background(RgbAcceptBg.Color()).Bold(true), dx)
		r.drawDecline(now, base, dx)
		if r.attempts > 0 {
			r.drawCentered(r.layout.CounterY, constants.CounterLabel+strconv.Itoa(r.attempts), base.Foreground(RgbCounter.Color()), dx)
		}
		r.drawParticles(now, bg, dx)
	}

	if r.opts.Debug {
		r.drawDebug()
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawFloatingHearts(now time.Time, bg RGB) {
	_, h := r.screen.Size()
	if r.heartsEpoch.IsZero() {
		r.heartsEpoch = now
	}
	style := tcell.StyleDefault.Background(bg.Color()).Foreground(Blend(bg, RgbFloatHeart, 0.8).Color())

	for _, fh := range r.hearts {
		age := now.Sub(r.heartsEpoch) - fh.delay
		if age < 0 || fh.duration <= 0 {
			continue
		}
		t := float64(age%fh.duration) / float64(fh.duration)
		y := h - 1 - int(t*float64(h+1))
		x := fh.column + int(math.Round(math.Sin(t*2*math.Pi)*2))
		r.setCell(x, y, constants.GlyphFloat, style)
	}
}

func (r *TerminalRenderer) drawContainer(now time.Time, base tcell.Style, dx int) {
	style := base.Foreground(RgbContainer.Color())
	if r.windows[constants.WindowDamage] {
		phase := 0.5 + 0.5*math.Sin(float64(now.UnixMilli())/damagePulseMs*2*math.Pi)
		style = base.Foreground(GetDamageColor(phase).Color()).Bold(true)
	}
	x, y, w, h := cellRect(r.layout.Container)
	r.drawBox(x+dx, y, w, h, style)
}

func (r *TerminalRenderer) drawDecline(now time.Time, base tcell.Style, dx int) {
	rect := r.layout.DeclineRect(r.declinePos)
	switch r.declineState {
	case game.ControlRemoved:
		return
	case game.ControlDisintegrating:
		// Crumbling: a shrinking set of debris cells, sampled per frame
		style := base.Foreground(RgbDeclineBurnt.Color())
		x, y, w, h := cellRect(rect)
		for cy := 0; cy < h; cy++ {
			for cx := 0; cx < w; cx++ {
				if (cx+cy+int(now.UnixMilli()/80))%3 == 0 {
					r.setCell(x+cx+dx, y+cy, constants.GlyphDebris, style)
				}
			}
		}
	default:
		style := base.Foreground(RgbDeclineFg.Color()).Background(RgbDeclineBg.Color())
		if r.windows[constants.WindowDamage] {
			style = style.Background(Blend(RgbDeclineBg, RgbDamage, 0.4).Color())
		}
		r.drawButton(rect, constants.DeclineLabel, style, dx)
	}
}

func (r *TerminalRenderer) drawButton(rect vmath.Rect, label string, style tcell.Style, dx int) {
	x, y, w, h := cellRect(rect)
	x += dx
	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			r.setCell(x+cx, y+cy, ' ', style)
		}
	}
	r.drawBox(x, y, w, h, style)
	lx := x + (w-utf8.RuneCountInString(label))/2
	r.drawText(lx, y+h/2, label, style)
}

func (r *TerminalRenderer) drawParticles(now time.Time, bg RGB, dx int) {
	for _, p := range r.particles {
		off, alpha := p.Offset(p.Progress(now))
		if alpha <= 0 {
			continue
		}
		pos := vmath.Point{X: p.Origin.X + off.X + float64(dx), Y: p.Origin.Y + off.Y*constants.ParticleAspectY}
		x, y := pos.Round()

		style := tcell.StyleDefault.
			Background(bg.Color()).
			Foreground(Blend(bg, variantColor(p.Variant), alpha/0.9).Color()).
			Bold(p.Scale >= constants.ParticleBoldScaleLimit)
		r.setCell(x, y, glyphFor(p.Variant), style)
	}
}

func (r *TerminalRenderer) drawFinal(base tcell.Style) {
	_, h := r.screen.Size()
	heartStyle := base.Foreground(RgbHeart.Color()).Bold(true)

	top := (h - len(finalHeart) - 4) / 2
	for i, line := range finalHeart {
		r.drawCentered(top+i, line, heartStyle, 0)
	}
	r.drawCentered(top+len(finalHeart)+1, r.opts.Final, base.Foreground(RgbFinal.Color()).Bold(true), 0)
	r.drawCentered(top+len(finalHeart)+3, constants.FinalHint, base.Foreground(RgbCounter.Color()), 0)
}

func (r *TerminalRenderer) drawDebug() {
	style := tcell.StyleDefault.Foreground(RgbDebugFg.Color()).Background(RgbDebugBg.Color())
	for i, line := range r.opts.Metrics.Lines() {
		r.drawText(0, i, line, style)
	}
}

func (r *TerminalRenderer) drawBox(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for cx := x + 1; cx < x+w-1; cx++ {
		r.setCell(cx, y, tcell.RuneHLine, style)
		r.setCell(cx, y+h-1, tcell.RuneHLine, style)
	}
	for cy := y + 1; cy < y+h-1; cy++ {
		r.setCell(x, cy, tcell.RuneVLine, style)
		r.setCell(x+w-1, cy, tcell.RuneVLine, style)
	}
	r.setCell(x, y, tcell.RuneULCorner, style)
	r.setCell(x+w-1, y, tcell.RuneURCorner, style)
	r.setCell(x, y+h-1, tcell.RuneLLCorner, style)
	r.setCell(x+w-1, y+h-1, tcell.RuneLRCorner, style)
}

func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style, dx int) {
	w, _ := r.screen.Size()
	r.drawText((w-utf8.RuneCountInString(text))/2+dx, y, text, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	i := 0
	for _, ch := range text {
		r.setCell(x+i, y, ch, style)
		i++
	}
}

// setCell writes one cell, clipping to the screen
func (r *TerminalRenderer) setCell(x, y int, ch rune, style tcell.Style) {
	w, h := r.screen.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func glyphFor(v particle.Variant) rune {
	switch v {
	case particle.VariantAsh:
		return constants.GlyphAsh
	case particle.VariantBroken:
		return constants.GlyphBroken
	case particle.VariantHeart:
		return constants.GlyphHeart
	case particle.VariantSparkle:
		return constants.GlyphSparkle
	default:
		return '*'
	}
}

var (
	_ game.Renderer = (*TerminalRenderer)(nil)
	_ game.Layout   = (*TerminalRenderer)(nil)
)
