// Package geom holds the world-space primitives shared by every entity:
// a 2D vector and an axis-aligned rectangle with overlap and clamp helpers.
package geom

import "math"

type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned box. X,Y is the top-left corner; Y grows downward.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Pos returns the top-left corner.
func (r Rect) Pos() Vec2 {
	return Vec2{X: r.X, Y: r.Y}
}

// Move returns a copy translated by (dx, dy).
func (r Rect) Move(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Edge setters keep the size fixed and move the box so the named edge lands on v.
// The far edges never end up past v, even when x+width rounds upward, so a
// box snapped against another no longer intersects it.
func (r *Rect) SetLeft(v float64) { r.X = v }
func (r *Rect) SetTop(v float64)  { r.Y = v }

func (r *Rect) SetRight(v float64) {
	r.X = snapBelow(v, r.Width)
}

func (r *Rect) SetBottom(v float64) {
	r.Y = snapBelow(v, r.Height)
}

// snapBelow returns edge-size, nudged down until o+size <= edge holds.
func snapBelow(edge, size float64) float64 {
	o := edge - size
	for o+size > edge {
		o = math.Nextafter(o, math.Inf(-1))
	}
	return o
}

// SetCenter moves the box so its midpoint is c.
func (r *Rect) SetCenter(c Vec2) {
	r.X = c.X - r.Width/2
	r.Y = c.Y - r.Height/2
}

// Intersects reports whether a and b overlap on both axes.
// Edges are half-open: boxes that only touch do not intersect.
func Intersects(a, b Rect) bool {
	if a.Left() >= b.Right() || b.Left() >= a.Right() {
		return false
	}
	if a.Top() >= b.Bottom() || b.Top() >= a.Bottom() {
		return false
	}
	return true
}

// Intersects is the method form of the package function.
func (r Rect) Intersects(other Rect) bool {
	return Intersects(r, other)
}

// ClampToBounds moves r so it lies inside [minX,maxX] x [minY,maxY].
// When r is wider (or taller) than the bounds the min edge wins.
func ClampToBounds(r Rect, minX, maxX, minY, maxY float64) Rect {
	if r.Right() > maxX {
		r.SetRight(maxX)
	}
	if r.Left() < minX {
		r.SetLeft(minX)
	}
	if r.Bottom() > maxY {
		r.SetBottom(maxY)
	}
	if r.Top() < minY {
		r.SetTop(minY)
	}
	return r
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
