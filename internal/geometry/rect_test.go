package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"identical", Rect{0, 0, 12, 12}, Rect{0, 0, 12, 12}, true},
		{"partial overlap", Rect{0, 0, 12, 12}, Rect{6, 6, 12, 12}, true},
		{"contained", Rect{0, 0, 24, 24}, Rect{6, 6, 4, 4}, true},
		{"touching right edge", Rect{0, 0, 12, 12}, Rect{12, 0, 12, 12}, false},
		{"touching bottom edge", Rect{0, 0, 12, 12}, Rect{0, 12, 12, 12}, false},
		{"touching corner", Rect{0, 0, 12, 12}, Rect{12, 12, 12, 12}, false},
		{"disjoint", Rect{0, 0, 12, 12}, Rect{30, 30, 6, 6}, false},
		{"one inch of overlap", Rect{0, 0, 12, 12}, Rect{11, 0, 12, 12}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			// overlap is symmetric
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestWithin(t *testing.T) {
	cases := []struct {
		name string
		r    Rect
		w, h int
		want bool
	}{
		{"interior", Rect{10, 10, 12, 12}, 48, 48, true},
		{"at origin", Rect{0, 0, 12, 12}, 48, 48, true},
		{"flush bottom right", Rect{36, 36, 12, 12}, 48, 48, true},
		{"fills the bed", Rect{0, 0, 48, 48}, 48, 48, true},
		{"negative x", Rect{-1, 0, 12, 12}, 48, 48, false},
		{"negative y", Rect{0, -1, 12, 12}, 48, 48, false},
		{"past right edge", Rect{40, 0, 12, 12}, 48, 48, false},
		{"past bottom edge", Rect{0, 40, 12, 12}, 48, 48, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.r.Within(tc.w, tc.h))
		})
	}
}
