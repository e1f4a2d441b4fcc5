package render

import (
	"math"
	"unicode/utf8"

	"github.com/lixenwraith/yes-or-no/constants"
	"github.com/lixenwraith/yes-or-no/evade"
	"github.com/lixenwraith/yes-or-no/vmath"
)

// Layout is the static screen geometry for one terminal size, in cells
type Layout struct {
	Screen      vmath.Rect
	Container   vmath.Rect  // Bounded region the decline control evades inside
	Accept      vmath.Rect  // Absolute accept control rect
	DeclineSize vmath.Size  // Decline control footprint
	DeclineHome vmath.Point // Initial decline position, container-relative
	TitleY      int
	SubtitleY   int
	CounterY    int
}

// buttonSize is the boxed footprint of a label: one cell of border plus one of padding each side
func buttonSize(label string) vmath.Size {
	return vmath.Size{W: float64(utf8.RuneCountInString(label) + 4), H: constants.ControlHeight}
}

// ComputeLayout places the container and both controls for a w x h terminal
func ComputeLayout(w, h int) Layout {
	sw, sh := float64(w), float64(h)

	cw := math.Min(math.Max(constants.ContainerMinWidth, math.Floor(sw*constants.ContainerWidthFraction)), sw)
	ch := math.Min(math.Max(constants.ContainerMinHeight, math.Floor(sh*0.4)), sh)
	cx := math.Floor((sw - cw) / 2)
	cy := math.Floor((sh-ch)/2) + 1
	if cy+ch > sh {
		cy = sh - ch
	}
	container := vmath.Rect{X: cx, Y: cy, W: cw, H: ch}

	accept := buttonSize(constants.AcceptLabel)
	decline := buttonSize(constants.DeclineLabel)
	rowY := math.Floor((ch - constants.ControlHeight) / 2)

	return Layout{
		Screen:      vmath.Rect{W: sw, H: sh},
		Container:   container,
		Accept:      vmath.Rect{X: cx + math.Floor(cw/2) - accept.W - 2, Y: cy + rowY, W: accept.W, H: accept.H},
		DeclineSize: decline,
		DeclineHome: vmath.Point{X: math.Floor(cw/2) + 2, Y: rowY},
		TitleY:      int(cy) - 3,
		SubtitleY:   int(cy) - 2,
		CounterY:    int(cy+ch) + 1,
	}
}

// Region returns the evasion region for the solver
func (l Layout) Region() evade.Region {
	return evade.Region{Bounds: l.Container, Padding: constants.RegionPadding}
}

// DeclineRect returns the absolute decline rect for a container-relative position
func (l Layout) DeclineRect(pos vmath.Point) vmath.Rect {
	return vmath.RectAt(l.Container.Origin().Add(pos), l.DeclineSize)
}

// ClampDecline keeps a container-relative position inside the usable area after a resize
func (l Layout) ClampDecline(pos vmath.Point) vmath.Point {
	r := l.Region()
	uw, uh := r.Usable(l.DeclineSize)
	return vmath.Point{
		X: vmath.Clamp(pos.X, r.Padding, r.Padding+uw),
		Y: vmath.Clamp(pos.Y, r.Padding, r.Padding+uh),
	}
}

// cellRect snaps a rect to whole cells
func cellRect(r vmath.Rect) (x, y, w, h int) {
	x, y = r.Origin().Round()
	return x, y, int(math.Round(r.W)), int(math.Round(r.H))
}

// cellContains reports whether cell (x, y) falls inside r once snapped to cells
func cellContains(r vmath.Rect, x, y int) bool {
	rx, ry, rw, rh := cellRect(r)
	return x >= rx && x < rx+rw && y >= ry && y < ry+rh
}
