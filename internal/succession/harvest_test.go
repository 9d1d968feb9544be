package succession

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimateHarvestDate(t *testing.T) {
	anchor := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)

	days := int32(60)
	got := EstimateHarvestDate(anchor, &days)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 5, 31, 9, 30, 0, 0, time.UTC), *got)

	assert.Nil(t, EstimateHarvestDate(anchor, nil))

	zero := int32(0)
	assert.Nil(t, EstimateHarvestDate(anchor, &zero))

	neg := int32(-5)
	assert.Nil(t, EstimateHarvestDate(anchor, &neg))
}

func TestNextNumber(t *testing.T) {
	assert.Equal(t, 1, NextNumber(nil))
	assert.Equal(t, 2, NextNumber([]int{1}))
	assert.Equal(t, 4, NextNumber([]int{1, 2, 3}))
	// a deleted intermediate generation never frees its number
	assert.Equal(t, 6, NextNumber([]int{1, 3, 5}))
}
