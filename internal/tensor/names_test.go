package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	raw, _ := NewRaw(Shape{2, 3}, Float32, CPU)
	assert.False(t, raw.HasNames())

	require.NoError(t, raw.SetNames("batch", "feature"))
	assert.True(t, raw.HasNames())

	d, err := raw.DimIndex("feature")
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	_, err = raw.DimIndex("time")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	assert.ErrorIs(t, raw.SetNames("a"), ErrInvalidArgument)
	assert.ErrorIs(t, raw.SetNames("a", "a"), ErrInvalidArgument)
}

func TestPropagateNamesForReduction(t *testing.T) {
	src, _ := NewRaw(Shape{2, 3}, Float32, CPU)
	require.NoError(t, src.SetNames("batch", "feature"))

	squeezed, _ := NewRaw(Shape{2}, Float32, CPU)
	PropagateNamesForReduction(squeezed, src, 1, false)
	assert.Equal(t, []string{"batch"}, squeezed.Names())

	kept, _ := NewRaw(Shape{2, 1}, Int64, CPU)
	PropagateNamesForReduction(kept, src, 1, true)
	assert.Equal(t, []string{"batch", "feature"}, kept.Names())

	unnamed, _ := NewRaw(Shape{2, 3}, Float32, CPU)
	out, _ := NewRaw(Shape{2}, Float32, CPU)
	PropagateNamesForReduction(out, unnamed, 1, false)
	assert.Nil(t, out.Names())
}
