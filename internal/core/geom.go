// Package core provides the shared types of the game and its front ends.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a 2D vector in world units.
type Vec struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rect represents an axis-aligned bounding box in world units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Touches reports whether r and other overlap, counting shared edges as contact.
// Game collisions are inclusive: a ball resting exactly on a paddle edge hits it.
func (r Rect) Touches(other Rect) bool {
	return r.Right() >= other.X && r.X <= other.Right() &&
		r.Bottom() >= other.Y && r.Y <= other.Bottom()
}

// Intersects returns true if this rectangle strictly overlaps another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// SquareAround returns the bounding square of a circle.
func SquareAround(center Vec, radius float64) Rect {
	return Rect{X: center.X - radius, Y: center.Y - radius, W: 2 * radius, H: 2 * radius}
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
