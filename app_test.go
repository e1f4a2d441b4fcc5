package main

import (
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/yes-or-no/config"
	"github.com/lixenwraith/yes-or-no/constants"
	"github.com/lixenwraith/yes-or-no/engine"
	"github.com/lixenwraith/yes-or-no/game"
)

var epoch = time.Date(2025, 2, 14, 20, 0, 0, 0, time.UTC)

type testApp struct {
	*App
	screen tcell.SimulationScreen
	time   *engine.MockTimeProvider
}

func newTestApp(t *testing.T, cfg *config.Config, cfgPath string) *testApp {
	t.Helper()
	log.SetOutput(io.Discard)

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	tp := engine.NewMockTimeProvider(epoch)
	app := NewApp(AppDeps{
		Screen:     screen,
		Config:     cfg,
		ConfigPath: cfgPath,
		Time:       tp,
		Rand:       rand.New(rand.NewPCG(5, 6)),
	})
	return &testApp{App: app, screen: screen, time: tp}
}

// step moves wall time forward and runs one frame
func (ta *testApp) step(d time.Duration) {
	ta.time.Advance(d)
	ta.tick()
}

func (ta *testApp) key(r rune) bool {
	return ta.handleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func (ta *testApp) contains(text string) bool {
	cells, w, h := ta.screen.GetContents()
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			if c := cells[y*w+x]; len(c.Runes) > 0 {
				sb.WriteRune(c.Runes[0])
			} else {
				sb.WriteRune(' ')
			}
		}
		if strings.Contains(sb.String(), text) {
			return true
		}
	}
	return false
}

func TestKeyboardDecline(t *testing.T) {
	ta := newTestApp(t, nil, "")

	ta.key('n')
	if ta.ctrl.Attempts() != 1 {
		t.Errorf("Attempts = %d, want 1", ta.ctrl.Attempts())
	}
	ta.key('N')
	if ta.ctrl.Attempts() != 2 {
		t.Errorf("Attempts = %d, want 2", ta.ctrl.Attempts())
	}

	// Let the ash settle so nothing covers the counter
	ta.step(5 * time.Second)
	if !ta.contains(constants.CounterLabel + "2") {
		t.Error("Counter should be drawn")
	}
}

func TestKeyboardAcceptReachesFinalScreen(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"y", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone)},
		{"Enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, nil, "")
			ta.handleEvent(tt.ev)

			ta.step(constants.AcceptSettle - time.Millisecond)
			if ta.render.Final() {
				t.Fatal("Final screen before settle delay")
			}
			ta.step(time.Millisecond)
			if !ta.render.Final() || ta.ctrl.Outcome() != game.OutcomeAccepted {
				t.Errorf("Expected final screen, outcome=%v", ta.ctrl.Outcome())
			}
			if !ta.contains(constants.DefaultFinal) {
				t.Error("Final message not drawn")
			}

			// Controls are gone, further input is ignored
			ta.key('n')
			if ta.ctrl.Attempts() != 0 {
				t.Error("Decline on the final screen should be ignored")
			}
		})
	}
}

func TestMouseClickActivatesOnPress(t *testing.T) {
	ta := newTestApp(t, nil, "")

	rect, _ := ta.render.Rect(game.ControlDecline)
	x, y := rect.Center().Round()

	ta.handleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	// Held button repeats motion events without new clicks
	ta.handleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	ta.handleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))

	if ta.ctrl.Attempts() != 1 {
		t.Errorf("Attempts = %d, want exactly one click", ta.ctrl.Attempts())
	}

	// Click on empty space does nothing
	ta.handleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	ta.handleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	if ta.ctrl.Attempts() != 1 {
		t.Errorf("Attempts = %d after empty click", ta.ctrl.Attempts())
	}

	accept, _ := ta.render.Rect(game.ControlAccept)
	ax, ay := accept.Center().Round()
	ta.handleEvent(tcell.NewEventMouse(ax, ay, tcell.Button1, tcell.ModNone))
	ta.step(constants.AcceptSettle)
	if ta.ctrl.Outcome() != game.OutcomeAccepted {
		t.Errorf("Outcome = %v after accept click", ta.ctrl.Outcome())
	}
}

func TestPauseFreezesGameTime(t *testing.T) {
	ta := newTestApp(t, nil, "")

	ta.key('n')
	ta.key('p')
	if !ta.clock.IsPaused() {
		t.Fatal("Expected paused clock")
	}

	ta.step(10 * time.Second)
	if !ta.ctrl.EffectActive(constants.WindowDamage) {
		t.Error("Damage window should not expire while paused")
	}

	ta.key('n')
	if ta.ctrl.Attempts() != 1 {
		t.Error("Input should be ignored while paused")
	}

	ta.key('p')
	ta.step(constants.DamageDuration)
	if ta.ctrl.EffectActive(constants.WindowDamage) {
		t.Error("Damage window should close once time resumes")
	}
}

func TestRestartResetsSession(t *testing.T) {
	ta := newTestApp(t, nil, "")

	for i := 0; i < constants.MaxAttempts; i++ {
		ta.key('n')
	}
	ta.step(10 * time.Second)
	if ta.ctrl.Evasion() != game.EvasionDestroyed {
		t.Fatalf("Setup: evasion = %v", ta.ctrl.Evasion())
	}

	ta.key('r')
	if ta.ctrl.Attempts() != 0 || ta.ctrl.Evasion() != game.EvasionIdle {
		t.Errorf("Restart should start a fresh session, got %d/%v", ta.ctrl.Attempts(), ta.ctrl.Evasion())
	}
	if ta.sched.Pending() != 0 {
		t.Errorf("Restart should cancel pending effects, %d left", ta.sched.Pending())
	}
	if got := ta.metrics.Ints.Get("app.restarts").Load(); got != 2 {
		t.Errorf("app.restarts = %d, want 2", got)
	}

	ta.step(time.Second)
	if !ta.contains(constants.DeclineLabel) {
		t.Error("Decline control should be back after restart")
	}
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
	}{
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)},
		{"Escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)},
		{"Ctrl-C", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, nil, "")
			if ta.handleEvent(tt.ev) {
				t.Error("Expected quit")
			}
		})
	}

	ta := newTestApp(t, nil, "")
	if !ta.key('x') {
		t.Error("Unbound keys should not quit")
	}
}

func TestResizeKeepsControlsOnScreen(t *testing.T) {
	ta := newTestApp(t, nil, "")

	ta.screen.SetSize(120, 40)
	ta.handleEvent(tcell.NewEventResize(120, 40))
	ta.step(time.Millisecond)

	screenRect, _ := ta.render.Rect(game.ControlScreen)
	if screenRect.W != 120 || screenRect.H != 40 {
		t.Errorf("Screen rect = %v after resize", screenRect)
	}
	if !ta.contains(constants.AcceptLabel) || !ta.contains(constants.DeclineLabel) {
		t.Error("Controls should be drawn after resize")
	}
}

func TestReloadAppliesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("max_attempts: 1\ntext:\n  title: \"Coffee?\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ta := newTestApp(t, config.Default(), path)

	ta.key('n')
	ta.reload()

	if ta.ctrl.Attempts() != 0 {
		t.Error("Reload should restart the session")
	}
	ta.step(time.Millisecond)
	if !ta.contains("Coffee?") {
		t.Error("Reloaded title should be drawn")
	}

	ta.key('n')
	ta.step(10 * time.Second)
	if ta.ctrl.Evasion() != game.EvasionDestroyed {
		t.Errorf("max_attempts: 1 should destroy on the first decline, got %v", ta.ctrl.Evasion())
	}

	// A broken file keeps the running config
	if err := os.WriteFile(path, []byte("max_attempts: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ta.reload()
	if ta.cfg.MaxAttempts != 1 {
		t.Errorf("MaxAttempts = %d, invalid reload should be ignored", ta.cfg.MaxAttempts)
	}
	if got := ta.metrics.Ints.Get("errors.config.reload").Load(); got != 1 {
		t.Errorf("errors.config.reload = %d, want 1", got)
	}
}
