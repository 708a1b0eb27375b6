// Package core provides fundamental types and utilities for the sketch
// platform. It contains no external dependencies (especially no Bubble Tea)
// to keep simulation logic pure and testable.
package core

// Vec2 is a 2D vector in continuous sketch space.
// One unit corresponds to one terminal cell, but positions and velocities
// are kept as floats so sub-cell motion accumulates correctly.
type Vec2 struct {
	X, Y float64
}

// Add returns the component-wise sum of two vectors.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the component-wise difference of two vectors.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns the vector multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// LenSq returns the squared length of the vector.
// Collision tests compare squared distances to avoid the square root.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Box is an axis-aligned rectangle in continuous sketch space,
// used for static geometry (obstacles, walls, ground planes).
type Box struct {
	X, Y, W, H float64
}

// NewBox creates a box with the given origin and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Contains reports whether the point p lies inside the box (inclusive).
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Bottom()
}

// CircleBoxCollides reports whether a circle overlaps an axis-aligned box.
// It clamps the circle's center to the box bounds to find the nearest point
// on the box, then compares the squared distance against the squared radius.
// The comparison is inclusive, so touching at exactly radius distance counts
// as a collision. A center inside the box clamps to itself (distance zero),
// which handles full containment.
func CircleBoxCollides(center Vec2, radius float64, b Box) bool {
	nearest := Vec2{
		X: ClampF(center.X, b.X, b.Right()),
		Y: ClampF(center.Y, b.Y, b.Bottom()),
	}
	return center.Sub(nearest).LenSq() <= radius*radius
}

// Rect is an axis-aligned rectangle in cell coordinates, used for layout
// and drawing into the Screen buffer.
type Rect struct {
	X, Y, W, H int
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
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
