package succession

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapBlocksThirdGenerationAtMaxTwo(t *testing.T) {
	two := int32(2)
	// a two-generation lineage: the founder and one succession
	next := NextNumber([]int{1, 2})
	require.Equal(t, 3, next)
	assert.True(t, CapExceeded(next, &two))
	// the limit reported to the client is the plant's own cap
	assert.Equal(t, 2, EffectiveCreationCap(&two))
}

func TestCapAllowsUpToMax(t *testing.T) {
	three := int32(3)
	assert.False(t, CapExceeded(NextNumber([]int{1, 2}), &three))
	assert.True(t, CapExceeded(NextNumber([]int{1, 2, 3}), &three))
}

func TestCapDefaultsToTwenty(t *testing.T) {
	assert.Equal(t, CreationCap, EffectiveCreationCap(nil))
	assert.False(t, CapExceeded(20, nil))
	assert.True(t, CapExceeded(21, nil))
}

func TestCapIgnoresGapsFromDeletedGenerations(t *testing.T) {
	five := int32(5)
	// generations 2 and 4 were deleted; the stored maximum still governs
	next := NextNumber([]int{1, 3, 5})
	require.Equal(t, 6, next)
	assert.True(t, CapExceeded(next, &five))
}
