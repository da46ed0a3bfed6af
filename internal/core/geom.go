// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle on a Screen.
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

// Box is an axis-aligned bounding box in world units, described by its
// center and half extents. World space is y-up.
type Box struct {
	X, Y         float64 // Center
	HalfW, HalfH float64 // Half extents
}

// Overlaps reports whether two boxes overlap. Boxes whose edges exactly
// touch do not overlap: the comparison is strict on both axes.
func (b Box) Overlaps(other Box) bool {
	dx := other.X - b.X
	dy := other.Y - b.Y
	return math.Abs(dx) < b.HalfW+other.HalfW &&
		math.Abs(dy) < b.HalfH+other.HalfH
}

// OverlapsX reports whether other's center lies within b's half width
// widened by margin, ignoring the vertical axis entirely.
func (b Box) OverlapsX(other Box, margin float64) bool {
	return math.Abs(other.X-b.X) < b.HalfW+margin
}
