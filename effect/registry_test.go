package effect

import (
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/yes-or-no/engine"
)

var epoch = time.Date(2025, 2, 14, 20, 0, 0, 0, time.UTC)

type transition struct {
	name   string
	active bool
}

type recordingSink struct {
	log []transition
}

func (s *recordingSink) ShowEffectWindow(name string, active bool) {
	s.log = append(s.log, transition{name, active})
}

func TestOpenAndAutoClose(t *testing.T) {
	sched := engine.NewScheduler(epoch)
	sink := &recordingSink{}
	reg := NewRegistry(sched, sink)

	reg.Open("damage", 1300*time.Millisecond)

	if !reg.Active("damage") {
		t.Fatal("Window should be active immediately")
	}
	w, ok := reg.Window("damage")
	if !ok || !w.Start.Equal(epoch) || w.Duration != 1300*time.Millisecond {
		t.Fatalf("Unexpected window %+v", w)
	}

	sched.Advance(epoch.Add(1299 * time.Millisecond))
	if !reg.Active("damage") {
		t.Fatal("Window closed early")
	}

	sched.Advance(epoch.Add(1300 * time.Millisecond))
	if reg.Active("damage") {
		t.Error("Window should close at its deadline")
	}

	want := []transition{{"damage", true}, {"damage", false}}
	if !reflect.DeepEqual(sink.log, want) {
		t.Errorf("Sink transitions = %v, want %v", sink.log, want)
	}
}

// TestReopenLastWriterWins verifies two rapid opens produce one active-then-inactive transition
// with the close governed by the second call
func TestReopenLastWriterWins(t *testing.T) {
	sched := engine.NewScheduler(epoch)
	sink := &recordingSink{}
	reg := NewRegistry(sched, sink)

	reg.Open("damage", time.Second)
	sched.Advance(epoch.Add(600 * time.Millisecond))
	reg.Open("damage", time.Second)

	// First deadline passes without closing
	sched.Advance(epoch.Add(1200 * time.Millisecond))
	if !reg.Active("damage") {
		t.Fatal("First deadline should have been superseded")
	}

	sched.Advance(epoch.Add(1600 * time.Millisecond))
	if reg.Active("damage") {
		t.Error("Window should close at the last writer's deadline")
	}

	want := []transition{{"damage", true}, {"damage", false}}
	if !reflect.DeepEqual(sink.log, want) {
		t.Errorf("Sink transitions = %v, want %v", sink.log, want)
	}
}

func TestReopenShorterDuration(t *testing.T) {
	sched := engine.NewScheduler(epoch)
	reg := NewRegistry(sched, nil)

	reg.Open("shake", 2*time.Second)
	reg.Open("shake", 100*time.Millisecond)

	sched.Advance(epoch.Add(150 * time.Millisecond))
	if reg.Active("shake") {
		t.Error("Later, shorter window should govern the close")
	}
}

func TestIndependentWindows(t *testing.T) {
	sched := engine.NewScheduler(epoch)
	reg := NewRegistry(sched, nil)

	reg.Open("damage", 1300*time.Millisecond)
	reg.Open("shake", 900*time.Millisecond)

	if got := reg.ActiveNames(); !reflect.DeepEqual(got, []string{"damage", "shake"}) {
		t.Fatalf("ActiveNames = %v", got)
	}

	sched.Advance(epoch.Add(time.Second))
	if reg.Active("shake") || !reg.Active("damage") {
		t.Errorf("Expected only damage open, got %v", reg.ActiveNames())
	}
}

func TestOpenNonPositiveDurationCloses(t *testing.T) {
	sched := engine.NewScheduler(epoch)
	sink := &recordingSink{}
	reg := NewRegistry(sched, sink)

	reg.Open("reveal", 0)
	if reg.Active("reveal") || len(sink.log) != 0 {
		t.Fatalf("Zero-length open on a closed window should do nothing, log=%v", sink.log)
	}

	reg.Open("reveal", time.Second)
	reg.Open("reveal", 0)
	if reg.Active("reveal") {
		t.Error("Zero-length reopen should close the window")
	}
	if sched.Pending() != 0 {
		t.Errorf("Close timer should be cancelled, %d pending", sched.Pending())
	}
}
