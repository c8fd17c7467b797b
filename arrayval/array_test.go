package arrayval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsEmptyDims(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestNew_RejectsNegativeDim(t *testing.T) {
	_, err := New([]int32{3, -1})
	assert.Error(t, err)
}

func TestNew_OneDimensionIsZeroFilledLeaf(t *testing.T) {
	arr, err := New([]int32{4})
	require.NoError(t, err)
	assert.True(t, arr.IsLeaf())
	assert.Equal(t, 4, arr.Len())
	assert.Equal(t, []int32{0, 0, 0, 0}, arr.Ints)
}

func TestNew_MultiDimensionNestsOuterToInner(t *testing.T) {
	arr, err := New([]int32{2, 3})
	require.NoError(t, err)
	assert.False(t, arr.IsLeaf())
	assert.Equal(t, 2, arr.Len())
	for _, row := range arr.Elems {
		assert.True(t, row.IsLeaf())
		assert.Equal(t, 3, row.Len())
	}
}

func TestNew_SiblingsDoNotShareStorage(t *testing.T) {
	arr, err := New([]int32{2, 2})
	require.NoError(t, err)

	arr.Elems[0].Ints[0] = 99
	assert.Equal(t, int32(0), arr.Elems[1].Ints[0])
}

func TestDeepCopy_IsFullyIndependent(t *testing.T) {
	arr, err := New([]int32{2, 2, 2})
	require.NoError(t, err)

	arr.Elems[0].Elems[0].Ints[0] = 7
	assert.Equal(t, int32(0), arr.Elems[1].Elems[0].Ints[0])
	assert.Equal(t, int32(0), arr.Elems[0].Elems[1].Ints[0])
}
