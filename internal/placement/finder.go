// Package placement locates free space for a new planting inside a bed.  The
// search is deterministic: adjacent offsets around the origin planting are
// tried in a fixed preference order, then the bed is raster-scanned.  The
// adjacent phase is a heuristic, not an optimal packer; callers depend on the
// exact order, so it must not be reordered.
package placement

import (
	"github.com/jwicker/garden-bed-planner/internal/geometry"
)

// Point is a candidate top-left position inside a bed, in inches.
type Point struct {
	X int
	Y int
}

// FindPosition searches for a free, in-bounds position for a rectangle with
// the origin's footprint.  occupied holds every planting currently in the
// target bed (the origin itself included when placing into its own bed).
//
// Phase one tries eight positions adjacent to origin, in order: right, down,
// left, up, down-right, down-left, up-right, up-left.  Phase two raster-scans
// the bed row-major with step = min(w, h), y outer and x inner, both starting
// at zero and exclusive of the bounds.  The first candidate that is within
// bounds and overlaps nothing wins.  The second return value is false when
// no free position exists.
func FindPosition(origin geometry.Rect, occupied []geometry.Rect, boundsW, boundsH int) (Point, bool) {
	offsets := [8][2]int{
		{origin.W, 0},         // right
		{0, origin.H},         // down
		{-origin.W, 0},        // left
		{0, -origin.H},        // up
		{origin.W, origin.H},  // down-right
		{-origin.W, origin.H}, // down-left
		{origin.W, -origin.H}, // up-right
		{-origin.W, -origin.H}, // up-left
	}
	for _, off := range offsets {
		cand := geometry.Rect{X: origin.X + off[0], Y: origin.Y + off[1], W: origin.W, H: origin.H}
		if fits(cand, occupied, boundsW, boundsH) {
			return Point{X: cand.X, Y: cand.Y}, true
		}
	}

	step := origin.W
	if origin.H < step {
		step = origin.H
	}
	if step <= 0 {
		return Point{}, false
	}
	for scanY := 0; scanY < boundsH; scanY += step {
		for scanX := 0; scanX < boundsW; scanX += step {
			cand := geometry.Rect{X: scanX, Y: scanY, W: origin.W, H: origin.H}
			if fits(cand, occupied, boundsW, boundsH) {
				return Point{X: scanX, Y: scanY}, true
			}
		}
	}
	return Point{}, false
}

// fits reports whether cand is fully inside the bed and clear of every
// occupied rectangle.
func fits(cand geometry.Rect, occupied []geometry.Rect, boundsW, boundsH int) bool {
	if !cand.Within(boundsW, boundsH) {
		return false
	}
	for _, occ := range occupied {
		if cand.Overlaps(occ) {
			return false
		}
	}
	return true
}
