package vmath

import "math"

// Point is a position in cell units, origin top-left
type Point struct {
	X, Y float64
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p multiplied component-wise by f
func (p Point) Scale(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// Round returns the nearest integer cell
func (p Point) Round() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Size is a width/height pair in cell units
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle, X/Y is the top-left corner
type Rect struct {
	X, Y, W, H float64
}

// RectAt builds a rect from a corner and a size
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, W: s.W, H: s.H}
}

// Center returns the midpoint of r
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Origin returns the top-left corner of r
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions of r
func (r Rect) Size() Size {
	return Size{W: r.W, H: r.H}
}

// Contains reports whether p lies inside r, right and bottom edges exclusive
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp limits v to [lo, hi]; lo wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint interpolates between two points by t
func LerpPoint(a, b Point, t float64) Point {
	return Point{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// EaseOutCubic decelerates toward t = 1
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	u := 1 - t
	return 1 - u*u*u
}
