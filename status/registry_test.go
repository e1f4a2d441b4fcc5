package status

import (
	"reflect"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get("errors.audio")
	b := r.Ints.Get("errors.audio")
	if a != b {
		t.Fatal("Get should return the cached pointer for an existing key")
	}

	a.Add(2)
	if got, ok := r.Ints.Lookup("errors.audio"); !ok || got.Load() != 2 {
		t.Errorf("Lookup returned %v/%v", got, ok)
	}
	if _, ok := r.Ints.Lookup("missing"); ok {
		t.Error("Lookup should not create metrics")
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get("particles.live").Add(1)
		}()
	}
	wg.Wait()

	if got := r.Ints.Get("particles.live").Load(); got != 50 {
		t.Errorf("Expected 50 increments, got %d", got)
	}
	if r.TotalCount() != 1 {
		t.Errorf("Expected a single metric, got %d", r.TotalCount())
	}
}

func TestRegistryLines(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get("game.attempts").Store(2)
	r.Ints.Get("effects.open").Store(1)
	r.Bools.Get("audio.ready").Store(true)
	r.Strings.Get("game.evasion").Store("evading")

	want := []string{
		"effects.open: 1",
		"game.attempts: 2",
		"audio.ready: true",
		"game.evasion: evading",
	}
	if got := r.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %v, want %v", got, want)
	}
}

func TestAtomicStringTruncates(t *testing.T) {
	var s AtomicString
	if s.Load() != "" {
		t.Error("Zero value should load empty")
	}
	long := "0123456789012345678901234567890123456789"
	s.Store(long)
	if got := s.Load(); got != long[:MaxStringLen] {
		t.Errorf("Expected truncation to %d chars, got %q", MaxStringLen, got)
	}
}

func TestAtomicStringTruncatesRunes(t *testing.T) {
	var s AtomicString
	s.Store(strings.Repeat("♥", MaxStringLen+5))
	if got := s.Load(); utf8.RuneCountInString(got) != MaxStringLen || !utf8.ValidString(got) {
		t.Errorf("Expected %d whole runes, got %q", MaxStringLen, got)
	}
}
