// Package core provides fundamental types and utilities for the falling game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec is a point in playfield space (pixels, y grows downward).
// Entities use it for the position of their top-left corner.
type Vec struct {
	X, Y float64
}

// Add returns v translated by o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Square is an axis-aligned square described by its top-left corner and side length.
type Square struct {
	Pos  Vec
	Size float64
}

// Right returns the x-coordinate of the right edge.
func (s Square) Right() float64 {
	return s.Pos.X + s.Size
}

// Bottom returns the y-coordinate of the bottom edge.
func (s Square) Bottom() float64 {
	return s.Pos.Y + s.Size
}

// Corners returns top-left, top-right, bottom-left and bottom-right, in that order.
func (s Square) Corners() [4]Vec {
	return [4]Vec{
		s.Pos,
		{X: s.Right(), Y: s.Pos.Y},
		{X: s.Pos.X, Y: s.Bottom()},
		{X: s.Right(), Y: s.Bottom()},
	}
}

// ContainsPoint reports whether p lies inside the closed box [Pos, Pos+Size] on both axes.
func (s Square) ContainsPoint(p Vec) bool {
	return p.X >= s.Pos.X && p.X <= s.Right() &&
		p.Y >= s.Pos.Y && p.Y <= s.Bottom()
}

// Collides reports whether any corner of the smaller square lies inside the
// larger square's closed bounding box. On equal sizes the first square's
// corners are tested.
//
// This is a corner-containment test, not an interval overlap test. Only the
// smaller square is probed: the larger square's corners can all sit outside a
// small square that crosses one of its edges.
func Collides(aPos Vec, aSize float64, bPos Vec, bSize float64) bool {
	a := Square{Pos: aPos, Size: aSize}
	b := Square{Pos: bPos, Size: bSize}

	if a.Size <= b.Size {
		return cornerInside(a, b)
	}
	return cornerInside(b, a)
}

// SquaresCollide is Collides for two Square values.
func SquaresCollide(a, b Square) bool {
	return Collides(a.Pos, a.Size, b.Pos, b.Size)
}

func cornerInside(small, large Square) bool {
	for _, c := range small.Corners() {
		if large.ContainsPoint(c) {
			return true
		}
	}
	return false
}

// Rect is an integer cell rectangle used when drawing into a Screen.
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
