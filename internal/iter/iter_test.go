package iter

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/compare/internal/parallel"
	"github.com/born-ml/compare/internal/tensor"
)

// addKernel sums the first two inputs in the iterator's compute dtype, float64 or int64.
func addKernel(it *Iterator) {
	a, b, out := it.Input(0), it.Input(1), it.Output(0)
	it.ForRange(func(start, end int) {
		for i := start; i < end; i++ {
			x := a.At(it.Offset(0, i)).AsFloat64() + b.At(it.Offset(1, i)).AsFloat64()
			out.SetAt(i, tensor.Float(x))
		}
	})
}

func TestBuildBroadcast(t *testing.T) {
	a := must.M1(tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}))
	b := must.M1(tensor.FromSlice([]float32{10, 20}, tensor.Shape{2, 1}))

	it, err := NewConfig().AddOutput(nil).AddInput(a).AddInput(b).Build()
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, it.Shape())
	assert.Equal(t, tensor.Float32, it.CommonDType())

	addKernel(it)
	out := it.Finish()[0]
	assert.Equal(t, []float32{11, 12, 13, 21, 22, 23}, out.AsFloat32())
}

func TestBuildPromotion(t *testing.T) {
	a := must.M1(tensor.FromSlice([]int32{1, 2}, tensor.Shape{2}))
	half := tensor.WrappedScalar(tensor.Float(0.5), tensor.CPU)

	it, err := NewConfig().AddOutput(nil).AddInput(a).AddInput(half).
		PromoteInputsToCommonDType(true).Build()
	require.NoError(t, err)
	assert.Equal(t, tensor.Float32, it.CommonDType())
	assert.Equal(t, tensor.Float32, it.Input(0).DType())

	addKernel(it)
	assert.Equal(t, []float32{1.5, 2.5}, it.Finish()[0].AsFloat32())
}

func TestBuildHalfComputesInFloat32(t *testing.T) {
	a := tensor.Cast(must.M1(tensor.FromSlice([]float32{1, 2}, tensor.Shape{2})), tensor.Float16)

	it, err := NewConfig().AddOutput(nil).AddInput(a).AddInput(a).Build()
	require.NoError(t, err)
	assert.Equal(t, tensor.Float16, it.CommonDType())
	assert.Equal(t, tensor.Float32, it.DType())
	assert.Equal(t, tensor.Float32, it.Output(0).DType())

	addKernel(it)
	out := it.Finish()[0]
	assert.Equal(t, tensor.Float16, out.DType())
	assert.Equal(t, 4.0, out.At(1).AsFloat64())
}

func TestBuildOutputRules(t *testing.T) {
	a := must.M1(tensor.FromSlice([]float64{1, 2}, tensor.Shape{2}))
	intOut := must.M1(tensor.NewRaw(tensor.Shape{2}, tensor.Int64, tensor.CPU))

	_, err := NewConfig().AddOutput(intOut).AddInput(a).Build()
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument, "casting to outputs was not enabled")

	_, err = NewConfig().AddOutput(intOut).AddInput(a).
		CastCommonDTypeToOutputs(true).EnforceSafeCastingToOutput(true).Build()
	assert.ErrorIs(t, err, tensor.ErrType)

	_, err = NewConfig().AddOutput(intOut).AddInput(a).DeclareStaticDType(tensor.Bool).Build()
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)

	// Unsafe cast is allowed when not enforced.
	it, err := NewConfig().AddOutput(intOut).AddInput(a).AddInput(a).CastCommonDTypeToOutputs(true).Build()
	require.NoError(t, err)
	addKernel(it)
	assert.Same(t, intOut, it.Finish()[0])
	assert.Equal(t, []int64{2, 4}, intOut.AsInt64())
}

func TestBuildResizesOutput(t *testing.T) {
	a := must.M1(tensor.FromSlice([]int64{1, 2, 3}, tensor.Shape{3}))
	out := must.M1(tensor.NewRaw(tensor.Shape{0}, tensor.Int64, tensor.CPU))

	it, err := NewConfig().AddOutput(out).AddInput(a).AddInput(a).Build()
	require.NoError(t, err)
	addKernel(it)
	it.Finish()
	assert.Equal(t, tensor.Shape{3}, out.Shape())
	assert.Equal(t, []int64{2, 4, 6}, out.AsInt64())
}

func TestBuildValidationFailures(t *testing.T) {
	a := must.M1(tensor.FromSlice([]int64{1, 2, 3}, tensor.Shape{3}))
	b := must.M1(tensor.FromSlice([]int64{1, 2}, tensor.Shape{2}))
	out := must.M1(tensor.NewRaw(tensor.Shape{0}, tensor.Int64, tensor.CPU))

	_, err := NewConfig().AddOutput(out).AddInput(a).AddInput(b).Build()
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
	assert.Equal(t, tensor.Shape{0}, out.Shape(), "outputs must not be touched on failure")

	f := must.M1(tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{3}))
	_, err = NewConfig().AddOutput(nil).AddInput(a).AddInput(f).CheckAllSameDType(true).Build()
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)

	gpu := must.M1(tensor.FromSliceOn([]int64{1, 2, 3}, tensor.Shape{3}, tensor.CUDA))
	_, err = NewConfig().AddOutput(nil).AddInput(a).AddInput(gpu).Build()
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
}

func TestWrappedScalarIgnoresDevice(t *testing.T) {
	gpu := must.M1(tensor.FromSliceOn([]int64{1, 2, 3}, tensor.Shape{3}, tensor.CUDA))
	it, err := NewConfig().AddOutput(nil).AddInput(gpu).AddInput(tensor.WrappedScalar(tensor.Int(1), tensor.CPU)).Build()
	require.NoError(t, err)
	assert.Equal(t, tensor.CUDA, it.Device())
}

func TestForRangeParallel(t *testing.T) {
	n := 1000
	a := must.M1(tensor.Full(tensor.Shape{n}, tensor.Int64, tensor.CPU, tensor.Int(1)))
	it, err := NewConfig().AddOutput(nil).AddInput(a).AddInput(a).
		WithParallel(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 10}).Build()
	require.NoError(t, err)
	addKernel(it)
	for _, v := range it.Finish()[0].AsInt64() {
		require.Equal(t, int64(2), v)
	}
}

func TestBuildParallelConfig(t *testing.T) {
	a := must.M1(tensor.Full(tensor.Shape{4}, tensor.Int64, tensor.CPU, tensor.Int(1)))

	t.Setenv("COMPARE_PARALLEL", "false")
	it, err := NewConfig().AddOutput(nil).AddInput(a).Build()
	require.NoError(t, err)
	assert.False(t, it.par.Enabled, "environment applies without an override")

	t.Setenv("COMPARE_PARALLEL", "true")
	t.Setenv("COMPARE_NUM_THREADS", "8")
	override := parallel.Config{Enabled: true, NumWorkers: 2, MinChunkSize: 7}
	it, err = NewConfig().AddOutput(nil).AddInput(a).WithParallel(override).Build()
	require.NoError(t, err)
	assert.Equal(t, override, it.par)

	it, err = NewConfig().AddOutput(nil).AddInput(a).WithParallel(parallel.Sequential()).Build()
	require.NoError(t, err)
	assert.Equal(t, parallel.Sequential(), it.par)
}

func TestOutputOnlyIterator(t *testing.T) {
	out := must.M1(tensor.NewRaw(tensor.Shape{2, 2}, tensor.Uint8, tensor.CPU))
	it, err := NewConfig().AddOutput(out).Build()
	require.NoError(t, err)
	assert.Equal(t, tensor.Uint8, it.CommonDType())
	assert.Equal(t, 4, it.NumElements())
}
