// Package geometry provides the rectangle primitives used by the placement
// engine.  Everything here is pure: no state, no side effects, no error
// conditions.  All coordinates and sizes are whole inches measured from the
// top-left corner of a bed.
package geometry

// Rect is an axis-aligned rectangle.  X and Y locate the top-left corner,
// W and H give the footprint.
//
// Fields:
//  X – horizontal offset in inches from the bed's left edge.
//  Y – vertical offset in inches from the bed's top edge.
//  W – width of the footprint in inches.
//  H – height of the footprint in inches.
type Rect struct {
	X int // offset from the left edge
	Y int // offset from the top edge
	W int // footprint width
	H int // footprint height
}

// Overlaps reports whether a and b share any interior area.  Rectangles that
// merely touch along an edge or at a corner do not overlap: the comparisons
// are strict on both sides.
func (a Rect) Overlaps(b Rect) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Within reports whether the rectangle lies entirely inside a width×height
// area anchored at the origin.  A rectangle flush against a boundary edge is
// still within bounds.
func (r Rect) Within(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 &&
		r.X+r.W <= width && r.Y+r.H <= height
}
