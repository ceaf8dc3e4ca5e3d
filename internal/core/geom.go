// Package core provides the shared value types of the invaders platform:
// pixel geometry, the per-tick button snapshot, the cell screen and the
// step result handed back to the platform. It has no external dependencies
// so simulation code stays pure and testable.
package core

// Rect is an axis-aligned box in simulation pixels.
// All tests on Rect use half-open intervals: [X, X+W) x [Y, Y+H).
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether r and other overlap.
// Touching edges do not count as overlap, and an empty rect overlaps nothing.
func (r Rect) Intersects(other Rect) bool {
	if r.W <= 0 || r.H <= 0 || other.W <= 0 || other.H <= 0 {
		return false
	}
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// OutsideOf reports whether r lies entirely outside [0,w) x [0,h)
// on at least one axis.
func (r Rect) OutsideOf(w, h int) bool {
	return r.Right() <= 0 || r.X >= w || r.Bottom() <= 0 || r.Y >= h
}

// Clamp restricts val to [lo, hi]. When hi < lo the result is lo.
func Clamp(val, lo, hi int) int {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
