package evade

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/yes-or-no/vmath"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestComputePositionWithinBounds(t *testing.T) {
	mover := vmath.Size{W: 8, H: 3}

	regions := []struct {
		name   string
		region Region
		avoid  vmath.Rect
	}{
		{"typical", Region{Bounds: vmath.Rect{X: 10, Y: 6, W: 60, H: 14}, Padding: 2}, vmath.Rect{X: 20, Y: 11, W: 9, H: 3}},
		{"very wide", Region{Bounds: vmath.Rect{X: 0, Y: 0, W: 400, H: 6}, Padding: 1}, vmath.Rect{X: 380, Y: 1, W: 9, H: 3}},
		{"very tall", Region{Bounds: vmath.Rect{X: 0, Y: 0, W: 14, H: 200}, Padding: 2}, vmath.Rect{X: 2, Y: 90, W: 9, H: 3}},
		{"avoid outside region", Region{Bounds: vmath.Rect{X: 5, Y: 5, W: 40, H: 12}, Padding: 2}, vmath.Rect{X: 200, Y: 200, W: 9, H: 3}},
		{"avoid near far edge", Region{Bounds: vmath.Rect{X: 0, Y: 0, W: 30, H: 12}, Padding: 2}, vmath.Rect{X: 21, Y: 8, W: 9, H: 3}},
	}

	for _, tt := range regions {
		t.Run(tt.name, func(t *testing.T) {
			uw, uh := tt.region.Usable(mover)
			pad := tt.region.Padding
			for seed := uint64(0); seed < 2000; seed++ {
				p := ComputePosition(tt.region, tt.avoid, mover, seeded(seed), DefaultOptions())
				if p.X < pad || p.X > pad+uw || p.Y < pad || p.Y > pad+uh {
					t.Fatalf("seed %d: %v outside [%v,%v]x[%v,%v]", seed, p, pad, pad+uw, pad, pad+uh)
				}
			}
		})
	}
}

// TestComputePositionEscapesZone uses a container wide enough for the escape offset to fit
func TestComputePositionEscapesZone(t *testing.T) {
	mover := vmath.Size{W: 8, H: 3}
	region := Region{Bounds: vmath.Rect{X: 40, Y: 10, W: 120, H: 20}, Padding: 2}
	avoid := vmath.Rect{X: 50, Y: 15, W: 9, H: 3}

	center := avoid.Center()
	center.X -= region.Bounds.X
	center.Y -= region.Bounds.Y

	escaped := 0
	for seed := uint64(0); seed < 2000; seed++ {
		p := ComputePosition(region, avoid, mover, seeded(seed), DefaultOptions())
		if InExclusionZone(p, center, mover, DefaultOptions().ExclusionFactor) {
			t.Fatalf("seed %d: %v inside exclusion zone around %v", seed, p, center)
		}
		if p.X >= center.X+mover.W*DefaultOptions().EscapeFactor {
			escaped++
		}
	}
	if escaped == 0 {
		t.Error("Expected some candidates to take the escape path")
	}
}

// TestComputePositionEscapeClampsInNarrowRegion covers the case where escaping overflows the usable width
func TestComputePositionEscapeClampsInNarrowRegion(t *testing.T) {
	mover := vmath.Size{W: 8, H: 3}
	region := Region{Bounds: vmath.Rect{X: 0, Y: 0, W: 30, H: 12}, Padding: 2}
	avoid := vmath.Rect{X: 5.5, Y: 4.5, W: 9, H: 3} // center (10, 6)

	uw, _ := region.Usable(mover)
	for seed := uint64(0); seed < 500; seed++ {
		p := ComputePosition(region, avoid, mover, seeded(seed), DefaultOptions())
		if p.X != uw-mover.W {
			t.Fatalf("seed %d: expected x clamped to %v, got %v", seed, uw-mover.W, p.X)
		}
	}
}

func TestComputePositionDeterministic(t *testing.T) {
	mover := vmath.Size{W: 8, H: 3}
	region := Region{Bounds: vmath.Rect{W: 80, H: 16}, Padding: 2}
	avoid := vmath.Rect{X: 10, Y: 6, W: 9, H: 3}

	a := ComputePosition(region, avoid, mover, seeded(42), DefaultOptions())
	b := ComputePosition(region, avoid, mover, seeded(42), DefaultOptions())
	if a != b {
		t.Errorf("Same seed produced %v and %v", a, b)
	}
}

func TestComputePositionCandidateBias(t *testing.T) {
	mover := vmath.Size{W: 8, H: 3}
	region := Region{Bounds: vmath.Rect{W: 100, H: 30}, Padding: 2}
	avoid := vmath.Rect{X: 500, Y: 500, W: 1, H: 1} // never triggers escape

	uw, uh := region.Usable(mover)
	opts := DefaultOptions()
	for seed := uint64(0); seed < 1000; seed++ {
		p := ComputePosition(region, avoid, mover, seeded(seed), opts)
		if p.X >= 2+uw*opts.WidthFraction || p.Y >= 2+uh*opts.HeightFraction {
			t.Fatalf("seed %d: candidate %v outside biased sampling area", seed, p)
		}
	}
}

func TestComputePositionDegenerateRegion(t *testing.T) {
	mover := vmath.Size{W: 8, H: 3}
	region := Region{Bounds: vmath.Rect{W: 6, H: 2}, Padding: 2}

	p := ComputePosition(region, vmath.Rect{}, mover, seeded(1), DefaultOptions())
	if p.X != 2 || p.Y != 2 {
		t.Errorf("Degenerate region should pin to padding, got %v", p)
	}
}
