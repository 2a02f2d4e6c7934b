package compare

import (
	"math"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/born-ml/compare/internal/tensor"
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

func TestIsNaNIsSelfInequality(t *testing.T) {
	values := []float64{0, -1, math.NaN(), posInf, negInf, math.SmallestNonzeroFloat64, math.NaN()}
	x := fromSlice(t, values, len(values))
	got, err := IsNaN(x)
	require.NoError(t, err)
	for i, v := range values {
		assert.Equal(t, math.IsNaN(v), got.AsBool()[i], "element %d", i)
	}

	ints, err := IsNaN(fromSlice(t, []int32{0, 1, -1}, 3))
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, false}, ints.AsBool())
}

func TestSpecialPredicates(t *testing.T) {
	x := fromSlice(t, []float32{float32(posInf), float32(negInf), float32(math.NaN()), 1.5}, 4)
	tests := []struct {
		name string
		pred func(*tensor.RawTensor) (*tensor.RawTensor, error)
		want []bool
	}{
		{"IsInf", IsInf, []bool{true, true, false, false}},
		{"IsFinite", IsFinite, []bool{false, false, false, true}},
		{"IsPosInf", IsPosInf, []bool{true, false, false, false}},
		{"IsNegInf", IsNegInf, []bool{false, true, false, false}},
		{"IsReal", IsReal, []bool{true, true, true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pred(x)
			require.NoError(t, err)
			assert.Equal(t, tensor.Bool, got.DType())
			assert.Equal(t, tt.want, got.AsBool())
		})
	}
}

func TestSpecialPredicatesHalf(t *testing.T) {
	h := fromSlice(t, []float16.Float16{
		float16.Fromfloat32(float32(posInf)), float16.Fromfloat32(2), float16.Fromfloat32(float32(negInf)),
	}, 3)
	got, err := IsInf(h)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, got.AsBool())

	got, err = IsNegInf(h)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true}, got.AsBool())
}

func TestSpecialPredicatesIntegral(t *testing.T) {
	x := fromSlice(t, []int64{1, 2, 3, 4}, 2, 2)
	tests := []struct {
		name string
		pred func(*tensor.RawTensor) (*tensor.RawTensor, error)
		want bool
	}{
		{"IsInf", IsInf, false},
		{"IsFinite", IsFinite, true},
		{"IsPosInf", IsPosInf, false},
		{"IsNegInf", IsNegInf, false},
		{"IsReal", IsReal, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.pred(x)
			require.NoError(t, err)
			assert.Equal(t, tensor.Shape{2, 2}, got.Shape())
			assert.Equal(t, []bool{tt.want, tt.want, tt.want, tt.want}, got.AsBool())
		})
	}
}

func TestSpecialPredicatesComplex(t *testing.T) {
	x := fromSlice(t, []complex64{complex(1, float32(posInf)), 1 + 2i, complex(float32(math.NaN()), 0), 3}, 4)

	got, err := IsInf(x)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false}, got.AsBool())

	got, err = IsFinite(x)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false, true}, got.AsBool())

	got, err = IsReal(x)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, true}, got.AsBool())

	got, err = IsNaN(x)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false, true, false}, got.AsBool())

	_, err = IsPosInf(x)
	assert.ErrorIs(t, err, tensor.ErrType)
	_, err = IsNegInf(x)
	assert.ErrorIs(t, err, tensor.ErrType)
}

func TestSignedInfOut(t *testing.T) {
	x := fromSlice(t, []float64{posInf, 0}, 2)

	out := must.M1(tensor.NewRaw(tensor.Shape{2}, tensor.Bool, tensor.CPU))
	got, err := IsPosInfOut(x, out)
	require.NoError(t, err)
	assert.Same(t, out, got)
	assert.Equal(t, []bool{true, false}, out.AsBool())

	ints := fromSlice(t, []int8{1, 2}, 2)
	got, err = IsNegInfOut(ints, out)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, false}, got.AsBool())

	bad := must.M1(tensor.NewRaw(tensor.Shape{2}, tensor.Uint8, tensor.CPU))
	_, err = IsPosInfOut(x, bad)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
}
