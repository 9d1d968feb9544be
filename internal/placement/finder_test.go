package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwicker/garden-bed-planner/internal/geometry"
)

func TestFindPositionPrefersRight(t *testing.T) {
	origin := geometry.Rect{X: 0, Y: 0, W: 12, H: 12}
	occupied := []geometry.Rect{origin}

	pt, ok := FindPosition(origin, occupied, 48, 48)
	require.True(t, ok)
	assert.Equal(t, Point{X: 12, Y: 0}, pt)
}

func TestFindPositionOffsetOrder(t *testing.T) {
	origin := geometry.Rect{X: 0, Y: 0, W: 12, H: 12}

	// right blocked -> down
	occupied := []geometry.Rect{origin, {X: 12, Y: 0, W: 12, H: 12}}
	pt, ok := FindPosition(origin, occupied, 48, 48)
	require.True(t, ok)
	assert.Equal(t, Point{X: 0, Y: 12}, pt)

	// right and down blocked -> left/up are out of bounds -> down-right
	occupied = append(occupied, geometry.Rect{X: 0, Y: 12, W: 12, H: 12})
	pt, ok = FindPosition(origin, occupied, 48, 48)
	require.True(t, ok)
	assert.Equal(t, Point{X: 12, Y: 12}, pt)
}

func TestFindPositionRasterRowMajor(t *testing.T) {
	// Origin sits in the far corner so that every in-bounds adjacent offset is
	// occupied.  The raster scan must then start at (0,0).
	origin := geometry.Rect{X: 24, Y: 24, W: 12, H: 12}
	occupied := []geometry.Rect{
		origin,
		{X: 12, Y: 24, W: 12, H: 12}, // left
		{X: 24, Y: 12, W: 12, H: 12}, // up
		{X: 12, Y: 12, W: 12, H: 12}, // up-left
	}

	pt, ok := FindPosition(origin, occupied, 36, 36)
	require.True(t, ok)
	assert.Equal(t, Point{X: 0, Y: 0}, pt)
}

func TestFindPositionRasterFindsLastFreeCell(t *testing.T) {
	// Fully packed 24x24 bed except the bottom-right 8x8 cell, which no
	// adjacent offset of the origin can reach.
	origin := geometry.Rect{X: 0, Y: 0, W: 8, H: 8}
	occupied := []geometry.Rect{origin}
	for _, cell := range [][2]int{{8, 0}, {16, 0}, {0, 8}, {8, 8}, {16, 8}, {0, 16}, {8, 16}} {
		occupied = append(occupied, geometry.Rect{X: cell[0], Y: cell[1], W: 8, H: 8})
	}

	pt, ok := FindPosition(origin, occupied, 24, 24)
	require.True(t, ok)
	assert.Equal(t, Point{X: 16, Y: 16}, pt)
}

func TestFindPositionNoSpace(t *testing.T) {
	origin := geometry.Rect{X: 0, Y: 0, W: 12, H: 12}
	occupied := []geometry.Rect{origin}

	_, ok := FindPosition(origin, occupied, 12, 12)
	assert.False(t, ok)
}

func TestFindPositionStepUsesShorterSide(t *testing.T) {
	// 12x6 footprint scans with a 6 inch step, so a free slot starting at a
	// 6-inch boundary is reachable.
	origin := geometry.Rect{X: 0, Y: 0, W: 12, H: 6}
	occupied := []geometry.Rect{
		origin,
		{X: 12, Y: 0, W: 12, H: 6},
		{X: 0, Y: 6, W: 6, H: 6},
		{X: 18, Y: 6, W: 6, H: 6},
	}

	pt, ok := FindPosition(origin, occupied, 24, 12)
	require.True(t, ok)
	assert.Equal(t, Point{X: 6, Y: 6}, pt)
}

func TestFindPositionZeroFootprint(t *testing.T) {
	_, ok := FindPosition(geometry.Rect{}, nil, 48, 48)
	assert.False(t, ok)
}
