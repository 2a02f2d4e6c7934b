package compare

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/compare/internal/tensor"
)

func TestIsCloseDefaults(t *testing.T) {
	a := fromSlice(t, []float64{1, 1, 100}, 3)
	b := fromSlice(t, []float64{1 + 1e-6, 1.1, 100.0001}, 3)
	got, err := IsClose(a, b, DefaultRTol, DefaultATol, false)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, got.AsBool())
}

func TestIsCloseIsRelativeToOther(t *testing.T) {
	// |1-2| = 1 <= 0.5*|2| but not <= 0.5*|1|.
	a := fromSlice(t, []float64{1}, 1)
	b := fromSlice(t, []float64{2}, 1)

	got, err := IsClose(a, b, 0.5, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []bool{true}, got.AsBool())

	got, err = IsClose(b, a, 0.5, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []bool{false}, got.AsBool())
}

func TestIsCloseZeroToleranceIsEquality(t *testing.T) {
	nan := math.NaN()
	a := fromSlice(t, []float32{1, float32(nan), 3, float32(math.Inf(1))}, 4)
	b := fromSlice(t, []float32{1, float32(nan), 3.0001, float32(math.Inf(1))}, 4)

	for _, equalNaN := range []bool{false, true} {
		got, err := IsClose(a, b, 0, 0, equalNaN)
		require.NoError(t, err)
		equal, err := eq("test", a, b, nil)
		require.NoError(t, err)
		want := equal.AsBool()
		want[1] = equalNaN
		assert.Equal(t, want, got.AsBool(), "equalNaN=%v", equalNaN)
	}

	all, err := AllClose(a, a, 0, 0, true)
	require.NoError(t, err)
	assert.True(t, all)
	all, err = AllClose(a, a, 0, 0, false)
	require.NoError(t, err)
	assert.False(t, all, "NaN is not equal to itself")
}

func TestIsCloseInfinities(t *testing.T) {
	inf := math.Inf(1)
	a := fromSlice(t, []float64{inf, inf, -inf}, 3)
	b := fromSlice(t, []float64{inf, -inf, 1e308}, 3)
	got, err := IsClose(a, b, 1, 1, false)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, got.AsBool())
}

func TestIsCloseIntegral(t *testing.T) {
	// In uint8 arithmetic 0-1 would wrap around to 255.
	a := fromSlice(t, []uint8{0, 10}, 2)
	b := fromSlice(t, []uint8{1, 20}, 2)
	got, err := IsClose(a, b, 0, 1.5, false)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, got.AsBool())

	bools := fromSlice(t, []bool{true, false}, 2)
	other := fromSlice(t, []bool{true, true}, 2)
	got, err = IsClose(bools, other, DefaultRTol, DefaultATol, true)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, got.AsBool())
}

func TestIsCloseComplex(t *testing.T) {
	nan := cmplx.NaN()
	a := fromSlice(t, []complex128{1 + 1i, nan, 3i}, 3)
	b := fromSlice(t, []complex128{1 + 1.000001i, complex(0, math.NaN()), 0}, 3)

	got, err := IsClose(a, b, DefaultRTol, DefaultATol, true)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false}, got.AsBool())

	got, err = IsClose(a, b, DefaultRTol, DefaultATol, false)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, got.AsBool())
}

func TestIsCloseBroadcasts(t *testing.T) {
	a := fromSlice(t, []float32{1, 2}, 2, 1)
	b := fromSlice(t, []float32{1, 2, 3}, 3)
	got, err := IsClose(a, b, 0, 0, false)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, got.Shape())
	assert.Equal(t, []bool{true, false, false, false, true, false}, got.AsBool())
}

func TestIsCloseErrors(t *testing.T) {
	f := fromSlice(t, []float32{1}, 1)

	_, err := IsClose(f, fromSlice(t, []float64{1}, 1), 0, 0, false)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "float32 did not match float64")

	_, err = IsClose(f, f, -1, 0, false)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)

	_, err = AllClose(f, f, 0, -1e-8, false)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
}

func TestAllClose(t *testing.T) {
	a := fromSlice(t, []float64{1, 2, 3}, 3)
	b := fromSlice(t, []float64{1, 2, 3.5}, 3)

	all, err := AllClose(a, b, DefaultRTol, DefaultATol, false)
	require.NoError(t, err)
	assert.False(t, all)

	all, err = AllClose(a, b, 0, 0.5, false)
	require.NoError(t, err)
	assert.True(t, all)
}
