package cpu

import (
	"math"
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/google/go-cmp/cmp"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/compare/internal/dispatch"
	"github.com/born-ml/compare/internal/iter"
	"github.com/born-ml/compare/internal/tensor"
)

func fromSlice[T tensor.Element](t *testing.T, data []T, shape ...int) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.FromSlice(data, tensor.Shape(shape))
	require.NoError(t, err)
	return raw
}

func build(t *testing.T, c *iter.Config) *iter.Iterator {
	t.Helper()
	it, err := c.Build()
	require.NoError(t, err)
	return it
}

func TestCPUBackend_New(t *testing.T) {
	backend := New()
	assert.Equal(t, "CPU", backend.Name())
	assert.Equal(t, tensor.CPU, backend.Device())
	assert.ElementsMatch(t, dispatch.OpValues(), backend.Kernels(), "every op has a CPU kernel")
	assert.False(t, dispatch.Mode.Has(tensor.CUDA))
}

func TestEqNe(t *testing.T) {
	nan := float32(math.NaN())
	a := fromSlice(t, []float32{1, nan, 3}, 3)
	b := fromSlice(t, []float32{1, nan, 4}, 3)

	it := build(t, iter.NewConfig().AddOutput(nil).AddInput(a).AddInput(b).DeclareStaticDType(tensor.Bool))
	dispatch.Eq.Get(tensor.CPU)(it)
	assert.Equal(t, []bool{true, false, false}, it.Finish()[0].AsBool())

	it = build(t, iter.NewConfig().AddOutput(nil).AddInput(a).AddInput(b).DeclareStaticDType(tensor.Bool))
	dispatch.Ne.Get(tensor.CPU)(it)
	assert.Equal(t, []bool{false, true, true}, it.Finish()[0].AsBool())
}

func TestEqBroadcastComplex(t *testing.T) {
	a := fromSlice(t, []complex64{1 + 1i, 2}, 2, 1)
	b := fromSlice(t, []complex64{1 + 1i, 2, 3}, 3)
	it := build(t, iter.NewConfig().AddOutput(nil).AddInput(a).AddInput(b).DeclareStaticDType(tensor.Bool))
	dispatch.Eq.Get(tensor.CPU)(it)
	assert.Equal(t, []bool{true, false, false, false, true, false}, it.Finish()[0].AsBool())
}

func TestMaximumMinimumPropagateNaN(t *testing.T) {
	nan := math.NaN()
	a := fromSlice(t, []float64{1, nan, 5}, 3)
	b := fromSlice(t, []float64{2, 0, nan}, 3)

	it := build(t, iter.NewConfig().AddOutput(nil).AddInput(a).AddInput(b))
	dispatch.Maximum.Get(tensor.CPU)(it)
	got := it.Finish()[0].AsFloat64()
	assert.Equal(t, 2.0, got[0])
	assert.True(t, math.IsNaN(got[1]))
	assert.True(t, math.IsNaN(got[2]))

	it = build(t, iter.NewConfig().AddOutput(nil).AddInput(a).AddInput(b))
	dispatch.Minimum.Get(tensor.CPU)(it)
	got = it.Finish()[0].AsFloat64()
	assert.Equal(t, 1.0, got[0])
	assert.True(t, math.IsNaN(got[1]))
}

func TestLogical(t *testing.T) {
	a := fromSlice(t, []bool{true, true, false, false}, 4)
	b := fromSlice(t, []bool{true, false, true, false}, 4)

	it := build(t, iter.NewConfig().AddOutput(nil).AddInput(a).AddInput(b))
	dispatch.LogicalAnd.Get(tensor.CPU)(it)
	assert.Equal(t, []bool{true, false, false, false}, it.Finish()[0].AsBool())

	it = build(t, iter.NewConfig().AddOutput(nil).AddInput(a).AddInput(b))
	dispatch.LogicalOr.Get(tensor.CPU)(it)
	assert.Equal(t, []bool{true, true, true, false}, it.Finish()[0].AsBool())
}

func TestClampKernels(t *testing.T) {
	x := fromSlice(t, []int32{-5, 0, 4, 9}, 4)

	t.Run("Scalar", func(t *testing.T) {
		it := build(t, iter.NewConfig().AddOutput(nil).AddInput(x))
		dispatch.ClampScalar.Get(tensor.CPU)(it, tensor.Int(0), tensor.Int(5))
		assert.Equal(t, []int32{0, 0, 4, 5}, it.Finish()[0].AsInt32())
	})

	t.Run("InvertedBoundsYieldMax", func(t *testing.T) {
		it := build(t, iter.NewConfig().AddOutput(nil).AddInput(x))
		dispatch.ClampScalar.Get(tensor.CPU)(it, tensor.Int(5), tensor.Int(3))
		assert.Equal(t, []int32{3, 3, 3, 3}, it.Finish()[0].AsInt32())
	})

	t.Run("MinOnly", func(t *testing.T) {
		it := build(t, iter.NewConfig().AddOutput(nil).AddInput(x))
		dispatch.ClampMinScalar.Get(tensor.CPU)(it, tensor.Int(1))
		assert.Equal(t, []int32{1, 1, 4, 9}, it.Finish()[0].AsInt32())
	})

	t.Run("MaxOnly", func(t *testing.T) {
		it := build(t, iter.NewConfig().AddOutput(nil).AddInput(x))
		dispatch.ClampMaxScalar.Get(tensor.CPU)(it, tensor.Int(1))
		assert.Equal(t, []int32{-5, 0, 1, 1}, it.Finish()[0].AsInt32())
	})

	t.Run("Tensor", func(t *testing.T) {
		nan := float32(math.NaN())
		v := fromSlice(t, []float32{-1, 0.5, 7, nan}, 4)
		lo := fromSlice(t, []float32{0}, 1)
		hi := fromSlice(t, []float32{1, 1, nan, 1}, 4)
		it := build(t, iter.NewConfig().AddOutput(nil).AddInput(v).AddInput(lo).AddInput(hi))
		dispatch.Clamp.Get(tensor.CPU)(it)
		got := it.Finish()[0].AsFloat32()
		assert.Equal(t, []float32{0, 0.5}, got[:2])
		assert.True(t, math.IsNaN(float64(got[2])), "NaN bound")
		assert.True(t, math.IsNaN(float64(got[3])), "NaN input")
	})
}

func TestClampBoolNotImplemented(t *testing.T) {
	x := fromSlice(t, []bool{true}, 1)
	it := build(t, iter.NewConfig().AddOutput(nil).AddInput(x))
	err := exceptions.TryCatch[error](func() {
		dispatch.ClampMinScalar.Get(tensor.CPU)(it, tensor.BoolScalar(false))
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clamp_min_scalar not implemented for dtype bool")
}

func TestIsInKernel(t *testing.T) {
	elements := fromSlice(t, []int64{1, 2, 3, 4}, 2, 2)
	test := fromSlice(t, []int64{4, 1, 9}, 3)
	out := must.M1(tensor.NewRaw(tensor.Shape{2, 2}, tensor.Bool, tensor.CPU))

	dispatch.IsInDefault.Get(tensor.CPU)(elements, test, false, out)
	assert.Equal(t, []bool{true, false, false, true}, out.AsBool())

	dispatch.IsInDefault.Get(tensor.CPU)(elements, test, true, out)
	assert.Equal(t, []bool{false, true, true, false}, out.AsBool())
}

func TestCloseTolerance(t *testing.T) {
	a := fromSlice(t, []float64{1, 100, math.Inf(1), 1}, 4)
	b := fromSlice(t, []float64{1.05, 101, math.Inf(1), math.NaN()}, 4)
	it := build(t, iter.NewConfig().AddOutput(nil).AddInput(a).AddInput(b).DeclareStaticDType(tensor.Bool))
	dispatch.CloseTolerance.Get(tensor.CPU)(it, 0.01, 0.04)
	// |1-1.05| = 0.05 <= 0.04 + 0.0105; |100-101| = 1 <= 0.04 + 1.01; inf-inf is NaN.
	assert.Equal(t, []bool{true, true, false, false}, it.Finish()[0].AsBool())
}

func TestCloseToleranceComplex(t *testing.T) {
	a := fromSlice(t, []complex128{1 + 1i, 3i}, 2)
	b := fromSlice(t, []complex128{1 + 1.001i, 0}, 2)
	it := build(t, iter.NewConfig().AddOutput(nil).AddInput(a).AddInput(b).DeclareStaticDType(tensor.Bool))
	dispatch.CloseTolerance.Get(tensor.CPU)(it, 0, 0.01)
	assert.Equal(t, []bool{true, false}, it.Finish()[0].AsBool())
}

func TestSpecialValues(t *testing.T) {
	x := fromSlice(t, []float32{float32(math.Inf(1)), float32(math.Inf(-1)), float32(math.NaN()), 1}, 4)
	tests := []struct {
		stub *dispatch.Stub[dispatch.ElementwiseFn]
		want []bool
	}{
		{dispatch.IsInf, []bool{true, true, false, false}},
		{dispatch.IsFinite, []bool{false, false, false, true}},
		{dispatch.IsPosInf, []bool{true, false, false, false}},
		{dispatch.IsNegInf, []bool{false, true, false, false}},
	}
	for _, tt := range tests {
		t.Run(tt.stub.Op().String(), func(t *testing.T) {
			it := build(t, iter.NewConfig().AddOutput(nil).AddInput(x).DeclareStaticDType(tensor.Bool))
			tt.stub.Get(tensor.CPU)(it)
			assert.Equal(t, tt.want, it.Finish()[0].AsBool())
		})
	}
}

func TestWhereKernel(t *testing.T) {
	cond := fromSlice(t, []bool{true, false}, 1, 2)
	x := fromSlice(t, []int64{1, 2}, 1, 2)
	y := fromSlice(t, []int64{3, 4}, 1, 2)
	it := build(t, iter.NewConfig().AddOutput(nil).AddInput(cond).AddInput(x).AddInput(y).
		DeclareStaticDType(tensor.Int64))
	dispatch.Where.Get(tensor.CPU)(it)
	assert.Equal(t, []int64{1, 4}, it.Finish()[0].AsInt64())
}

func TestNonzeroKernel(t *testing.T) {
	x := fromSlice(t, []float32{0, 2, 0, 0, 0, -1}, 2, 3)
	got := dispatch.Nonzero.Get(tensor.CPU)(x)
	assert.Equal(t, tensor.Shape{2, 2}, got.Shape())
	if diff := cmp.Diff([]int64{0, 1, 1, 2}, got.AsInt64()); diff != "" {
		t.Errorf("nonzero coordinates mismatch (-want +got):\n%s", diff)
	}

	empty := dispatch.Nonzero.Get(tensor.CPU)(fromSlice(t, []bool{false, false}, 2))
	assert.Equal(t, tensor.Shape{0, 1}, empty.Shape())
}

func TestFillKernel(t *testing.T) {
	out := must.M1(tensor.NewRaw(tensor.Shape{3}, tensor.BFloat16, tensor.CPU))
	it := build(t, iter.NewConfig().AddOutput(out))
	dispatch.Fill.Get(tensor.CPU)(it, tensor.Float(2.5))
	it.Finish()
	for i := range 3 {
		assert.Equal(t, 2.5, out.At(i).AsFloat64())
	}
}
