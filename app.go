package main

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/yes-or-no/audio"
	"github.com/lixenwraith/yes-or-no/config"
	"github.com/lixenwraith/yes-or-no/constants"
	"github.com/lixenwraith/yes-or-no/engine"
	"github.com/lixenwraith/yes-or-no/game"
	"github.com/lixenwraith/yes-or-no/render"
	"github.com/lixenwraith/yes-or-no/status"
	"github.com/lixenwraith/yes-or-no/telemetry"
)

// App owns every piece of game state; all methods run on the main loop goroutine
type App struct {
	screen   tcell.Screen
	cfg      *config.Config
	cfgPath  string
	debug    bool
	clock    *engine.PausableClock
	sched    *engine.Scheduler
	render   *render.TerminalRenderer
	sound    *audio.SoundManager
	metrics  *status.Registry
	reporter *telemetry.Reporter
	rng      *rand.Rand
	ctrl     *game.Controller

	mouseDown bool
	restarts  int
}

// AppDeps are the App's injected resources; Sound may be nil to run silent
type AppDeps struct {
	Screen     tcell.Screen
	Config     *config.Config
	ConfigPath string
	Debug      bool
	Time       engine.TimeProvider
	Sound      *audio.SoundManager
	Rand       *rand.Rand
}

// NewApp wires the game and starts the first session
func NewApp(deps AppDeps) *App {
	tp := deps.Time
	if tp == nil {
		tp = engine.NewMonotonicTimeProvider()
	}
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = config.Default()
	}

	clock := engine.NewPausableClock(tp)
	metrics := status.NewRegistry()

	a := &App{
		screen:   deps.Screen,
		cfg:      cfg,
		cfgPath:  deps.ConfigPath,
		debug:    deps.Debug || cfg.Debug,
		clock:    clock,
		sched:    engine.NewScheduler(clock.Now()),
		sound:    deps.Sound,
		metrics:  metrics,
		reporter: telemetry.NewReporter(metrics),
		rng:      rng,
	}
	a.render = render.NewTerminalRenderer(a.screen, a.rendererOptions())
	a.restart()
	return a
}

func (a *App) rendererOptions() render.Options {
	return render.Options{
		Title:    a.cfg.Text.Title,
		Subtitle: a.cfg.Text.Subtitle,
		Final:    a.cfg.Text.Final,
		Debug:    a.debug,
		Metrics:  a.metrics,
		Rand:     a.rng,
	}
}

// restart cancels pending effects and rebuilds the session from the current config
func (a *App) restart() {
	a.sched.Reset()
	if a.sound != nil {
		if err := a.sound.Stop(game.TrackHeartbeat); err != nil {
			a.reporter.Report("audio.stop", err)
		}
	}

	a.render.Reset(a.sched.Now())

	var sound game.Audio
	if a.sound != nil {
		sound = a.sound
	}
	a.ctrl = game.NewController(a.cfg.ControllerConfig(), game.Deps{
		Scheduler: a.sched,
		Renderer:  a.render,
		Audio:     sound,
		Layout:    a.render,
		Reporter:  a.reporter,
		Rand:      a.rng,
		Metrics:   a.metrics,
	})
	a.ctrl.Start()

	a.restarts++
	a.metrics.Ints.Get("app.restarts").Store(int64(a.restarts))
	log.Printf("session started (restart #%d)", a.restarts-1)
}

// reload re-reads the config file and restarts; a bad file keeps the running config
func (a *App) reload() {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		log.Printf("config reload failed, keeping current config: %v", err)
		a.reporter.Report("config.reload", err)
		return
	}
	a.cfg = cfg
	a.debug = a.debug || cfg.Debug
	a.render = render.NewTerminalRenderer(a.screen, a.rendererOptions())
	a.restart()
}

// tick advances game time and draws one frame
func (a *App) tick() {
	a.sched.Advance(a.clock.Now())
	a.render.Draw(a.sched.Now())
}

// togglePause freezes game time and audio loops together
func (a *App) togglePause() {
	paused := a.clock.Toggle()
	if a.sound != nil {
		a.sound.SetPaused(paused)
	}
	a.metrics.Bools.Get("app.paused").Store(paused)
}

// handleEvent applies one terminal event, returns false to quit
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !a.mouseDown {
			x, y := ev.Position()
			a.click(x, y)
		}
		a.mouseDown = pressed

	case *tcell.EventResize:
		a.screen.Sync()
		a.render.Resize()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.activate(game.ControlAccept)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q', 'Q':
		return false
	case 'y', 'Y':
		a.activate(game.ControlAccept)
	case 'n', 'N':
		a.activate(game.ControlDecline)
	case 'r', 'R':
		a.restart()
	case 'p', 'P':
		a.togglePause()
	}
	return true
}

func (a *App) click(x, y int) {
	if id, ok := a.render.HitTest(x, y); ok {
		a.activate(id)
	}
}

// activate delivers an activation; input is ignored while paused or on the final screen
func (a *App) activate(id game.ControlID) {
	if a.clock.IsPaused() || a.render.Final() {
		return
	}
	switch id {
	case game.ControlAccept:
		a.ctrl.Accept()
	case game.ControlDecline:
		a.ctrl.Decline()
	}
}

// run is the main loop: input, config reloads and frame ticks are serialized here
func (a *App) run(events <-chan tcell.Event, reloads <-chan string, watchErrs <-chan error) {
	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	a.tick()
	for {
		select {
		case ev := <-events:
			if !a.handleEvent(ev) {
				return
			}

		case path, ok := <-reloads:
			if !ok {
				reloads = nil
				continue
			}
			log.Printf("config changed: %s", path)
			a.reload()

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			a.reporter.Report("config.watch", err)

		case <-ticker.C:
			a.tick()
		}
	}
}
