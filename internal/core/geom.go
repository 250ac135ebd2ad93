// Package core provides fundamental types and utilities for the breakout platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec is a point or direction in arena units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned rectangle in arena units.
// The arena is y-up: Bottom <= Top.
type Box struct {
	Left, Bottom, Right, Top float64
}

// BoxAround returns the box of size w x h centred on (cx, cy).
func BoxAround(cx, cy, w, h float64) Box {
	return Box{
		Left:   cx - w*0.5,
		Bottom: cy - h*0.5,
		Right:  cx + w*0.5,
		Top:    cy + h*0.5,
	}
}

// Expand grows the box outward by r on every side.
// This is the rectangle approximation of a Minkowski sum with a disc of radius r.
func (b Box) Expand(r float64) Box {
	return Box{
		Left:   b.Left - r,
		Bottom: b.Bottom - r,
		Right:  b.Right + r,
		Top:    b.Top + r,
	}
}

// Contains reports whether p lies in the box, edges included.
func (b Box) Contains(p Vec) bool {
	return PointInRect(p.X, p.Y, b.Left, b.Bottom, b.Right, b.Top)
}

// PointInRect reports whether (x, y) lies inside the rectangle, edges included.
func PointInRect(x, y, left, bottom, right, top float64) bool {
	return x >= left && x <= right && y >= bottom && y <= top
}

// PointInTriangle reports whether p lies inside the triangle (p0, p1, p2).
//
// It solves p = p0 + (p1-p0)*s + (p2-p0)*t for the barycentric weights s and t;
// the point is inside when s >= 0, t >= 0 and s+t <= 1. A triangle with zero
// area contains no points.
func PointInTriangle(p, p0, p1, p2 Vec) bool {
	area2 := -p1.Y*p2.X + p0.Y*(-p1.X+p2.X) + p0.X*(p1.Y-p2.Y) + p1.X*p2.Y
	if area2 == 0 {
		return false
	}
	s := (p0.Y*p2.X - p0.X*p2.Y + (p2.Y-p0.Y)*p.X + (p0.X-p2.X)*p.Y) / area2
	t := (p0.X*p1.Y - p0.Y*p1.X + (p0.Y-p1.Y)*p.X + (p1.X-p0.X)*p.Y) / area2
	return s >= 0 && t >= 0 && s+t <= 1
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
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
