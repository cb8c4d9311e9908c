// Package core provides fundamental types and utilities for the homebound
// simulation. It contains no external dependencies (especially no Bubble Tea)
// to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or direction in field coordinates.
// The simulation runs on a continuous float64 field independent of the
// terminal cell grid; the platform layer maps between the two.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns the component-wise difference v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v multiplied by the scalar s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared length of v. Collision checks compare squared
// distances to avoid the sqrt.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Direction returns the unit vector pointing from "from" to "to".
// Returns the zero vector when the points coincide, so callers moving along
// the result simply stand still for that frame instead of producing NaNs.
func Direction(from, to Vec2) Vec2 {
	d := to.Sub(from)
	l := d.Len()
	if l == 0 {
		return Vec2{}
	}
	return d.Scale(1 / l)
}

// Rect is an axis-aligned rectangle described by its center and full
// width/height, matching how the home square is specified.
type Rect struct {
	Center Vec2
	W, H   float64
}

// NewSquare creates a square Rect of the given full size centered at c.
func NewSquare(c Vec2, size float64) Rect {
	return Rect{Center: c, W: size, H: size}
}

// Contains reports whether p lies inside the rectangle. The test is
// inclusive on all four edges: a point exactly on the boundary counts.
func (r Rect) Contains(p Vec2) bool {
	hw, hh := r.W/2, r.H/2
	return p.X >= r.Center.X-hw && p.X <= r.Center.X+hw &&
		p.Y >= r.Center.Y-hh && p.Y <= r.Center.Y+hh
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
