package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastShapes(t *testing.T) {
	tests := []struct {
		name   string
		shapes []Shape
		want   Shape
	}{
		{"same", []Shape{{3, 5}, {3, 5}}, Shape{3, 5}},
		{"column", []Shape{{3, 1}, {3, 5}}, Shape{3, 5}},
		{"three way", []Shape{{1, 5}, {3, 1}, {5}}, Shape{3, 5}},
		{"scalar", []Shape{{}, {2, 2}}, Shape{2, 2}},
		{"zero size", []Shape{{3, 0}, {1, 1}}, Shape{3, 0}},
		{"none", nil, Shape{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BroadcastShapes(tt.shapes...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = BroadcastShapes(Shape{0}, Shape{2})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestWrapDim(t *testing.T) {
	d, err := WrapDim(-1, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, d)

	d, err = WrapDim(-1, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	_, err = WrapDim(3, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = WrapDim(-4, 3)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = WrapDim(1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestReduceShape(t *testing.T) {
	s := Shape{2, 3, 4}
	assert.Equal(t, Shape{2, 1, 4}, s.ReduceShape(1, true))
	assert.Equal(t, Shape{2, 4}, s.ReduceShape(1, false))
	assert.Equal(t, Shape{2, 3, 4}, s, "input shape must not change")
	assert.Equal(t, Shape{}, Shape{}.ReduceShape(0, false))
}

func TestComputeStridesZeroDim(t *testing.T) {
	assert.Equal(t, []int{3, 3, 1}, Shape{2, 0, 3}.ComputeStrides())
	assert.Equal(t, 0, Shape{2, 0, 3}.NumElements())
	assert.Equal(t, 1, Shape{}.NumElements())
}
