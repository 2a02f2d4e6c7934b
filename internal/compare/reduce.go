package compare

import (
	"sync"

	"k8s.io/klog/v2"

	"github.com/born-ml/compare/internal/dispatch"
	"github.com/born-ml/compare/internal/tensor"
)

// ============================================================================
// Reductions with indices
// ============================================================================

// Max returns the largest value of self along dim and the index where it first occurs.
//
// dim may be negative. With keepDim the reduced dimension is kept with size 1,
// otherwise it is removed. NaN is larger than every number, so a slice holding NaN
// reports its first NaN. indices are Int64.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int64{3, 1, 1, 3}, tensor.Shape{4})
//	values, indices, err := compare.Max(x, 0, false)
//	// values = 3, indices = 0
func Max(self *tensor.RawTensor, dim int, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	return minmax("max", dispatch.Max, self, dim, keepDim, nil, nil)
}

// MaxOut is Max writing into values and indices.
func MaxOut(self *tensor.RawTensor, dim int, keepDim bool, values, indices *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	return minmax("max", dispatch.Max, self, dim, keepDim, values, indices)
}

// Min returns the smallest value of self along dim and the index where it first occurs.
func Min(self *tensor.RawTensor, dim int, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	return minmax("min", dispatch.Min, self, dim, keepDim, nil, nil)
}

// MinOut is Min writing into values and indices.
func MinOut(self *tensor.RawTensor, dim int, keepDim bool, values, indices *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	return minmax("min", dispatch.Min, self, dim, keepDim, values, indices)
}

// reductionPlan is a validated reduction of self along dim.
type reductionPlan struct {
	values, indices OutputDescriptor
	dim             int
}

func planReduction(op string, self *tensor.RawTensor, dim int, keepDim bool, values, indices *tensor.RawTensor) (*reductionPlan, error) {
	dim, err := tensor.WrapDim(dim, self.Dim())
	if err != nil {
		return nil, wrapOp(op, err)
	}
	shape := self.Shape().ReduceShape(dim, keepDim)
	plan := &reductionPlan{
		values:  describe(shape, self.DType(), self.Device()),
		indices: describe(shape, tensor.Int64, self.Device()),
		dim:     dim,
	}
	if err := plan.values.check(op, values); err != nil {
		return nil, err
	}
	if err := plan.indices.check(op, indices); err != nil {
		return nil, err
	}
	return plan, nil
}

// checkNonEmptyDim rejects an empty input whose reduced dimension has no elements.
func checkNonEmptyDim(op string, self *tensor.RawTensor, dim int) error {
	if self.NumElements() != 0 {
		return nil
	}
	if self.Dim() == 0 || self.Shape()[dim] == 0 {
		return tensor.InvalidArgumentf("%s(): Expected reduction dim %d to have non-zero size", op, dim)
	}
	return nil
}

func minmax(op string, stub *dispatch.Stub[dispatch.ReduceWithIndicesFn], self *tensor.RawTensor, dim int, keepDim bool,
	values, indices *tensor.RawTensor,
) (*tensor.RawTensor, *tensor.RawTensor, error) {
	if self.DType().IsComplex() {
		return nil, nil, tensor.TypeErrorf("%s(): does not support complex input", op)
	}
	plan, err := planReduction(op, self, dim, keepDim, values, indices)
	if err != nil {
		return nil, nil, err
	}
	if err := checkNonEmptyDim(op, self, plan.dim); err != nil {
		return nil, nil, err
	}
	values, indices = plan.values.allocate(values), plan.indices.allocate(indices)

	switch {
	case self.NumElements() == 0:
	case self.Dim() == 0:
		values.Fill(self.At(0))
		indices.Fill(tensor.Int(0))
	default:
		stub.Get(self.Device())(values, indices, self, plan.dim, keepDim)
	}
	tensor.PropagateNamesForReduction(values, self, plan.dim, keepDim)
	tensor.PropagateNamesForReduction(indices, self, plan.dim, keepDim)
	return values, indices, nil
}

// ============================================================================
// Mode
// ============================================================================

// Mode returns the most frequent value of self along dim and the index where it first
// occurs. Among equally frequent values the one occurring first wins.
//
// Mode is implemented for CPU and CUDA tensors with a strided layout.
func Mode(self *tensor.RawTensor, dim int, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	return mode(self, dim, keepDim, nil, nil)
}

// ModeOut is Mode writing into values and indices.
func ModeOut(self *tensor.RawTensor, dim int, keepDim bool, values, indices *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	return mode(self, dim, keepDim, values, indices)
}

func planMode(self *tensor.RawTensor, dim int, keepDim bool, values, indices *tensor.RawTensor) (*reductionPlan, error) {
	const op = "mode"
	if d := self.Device(); d != tensor.CPU && d != tensor.CUDA {
		return nil, tensor.UnsupportedDevicef("mode only supports CPU AND CUDA device type, got: %s", d)
	}
	if l := self.Layout(); l != tensor.Strided {
		return nil, tensor.UnsupportedDevicef("mode only supports strided layout, got: %s", l)
	}
	if self.DType().IsComplex() {
		return nil, tensor.TypeErrorf("mode(): does not support complex input")
	}
	return planReduction(op, self, dim, keepDim, values, indices)
}

func mode(self *tensor.RawTensor, dim int, keepDim bool, values, indices *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	plan, err := planMode(self, dim, keepDim, values, indices)
	if err != nil {
		return nil, nil, err
	}
	if self.NumElements() == 0 {
		if err := checkNonEmptyDim("mode", self, plan.dim); err != nil {
			return nil, nil, err
		}
		return plan.values.allocate(values), plan.indices.allocate(indices), nil
	}
	values, indices = plan.values.allocate(values), plan.indices.allocate(indices)
	if self.Dim() == 0 {
		values.Fill(self.At(0))
		indices.Fill(tensor.Int(0))
		return values, indices, nil
	}
	dispatch.Mode.Get(self.Device())(values, indices, self, plan.dim, keepDim)
	tensor.PropagateNamesForReduction(values, self, plan.dim, keepDim)
	tensor.PropagateNamesForReduction(indices, self, plan.dim, keepDim)
	return values, indices, nil
}

// ============================================================================
// aminmax
// ============================================================================

var deprecatedAminmaxWarning sync.Once

// Aminmax returns the minimum and maximum of self along dim, or over every element
// when dim is nil. Without dim, keepDim keeps every dimension with size 1.
func Aminmax(self *tensor.RawTensor, dim *int, keepDim bool) (min, max *tensor.RawTensor, err error) {
	const op = "aminmax"
	if self.DType().IsComplex() {
		return nil, nil, tensor.TypeErrorf("%s(): does not support complex input", op)
	}
	input, d := self, 0
	if dim != nil {
		d = *dim
	} else {
		if self.NumElements() == 0 {
			return nil, nil, tensor.InvalidArgumentf("%s(): cannot compute aminmax over an empty dimension as the operation has no identity", op)
		}
		if input, err = self.View(tensor.Shape{self.NumElements()}); err != nil {
			return nil, nil, wrapOp(op, err)
		}
	}

	if min, _, err = minmax(op, dispatch.Min, input, d, keepDim && dim != nil, nil, nil); err != nil {
		return nil, nil, err
	}
	if max, _, err = minmax(op, dispatch.Max, input, d, keepDim && dim != nil, nil, nil); err != nil {
		return nil, nil, err
	}

	if dim == nil && keepDim {
		ones := make(tensor.Shape, self.Dim())
		for i := range ones {
			ones[i] = 1
		}
		if min, err = min.View(ones); err != nil {
			return nil, nil, wrapOp(op, err)
		}
		if max, err = max.View(ones); err != nil {
			return nil, nil, wrapOp(op, err)
		}
	}
	return min, max, nil
}

// DeprecatedAminmax is the superseded entry point of Aminmax along a dimension.
// The first call logs a deprecation warning.
//
// Deprecated: use Aminmax.
func DeprecatedAminmax(self *tensor.RawTensor, dim int, keepDim bool) (min, max *tensor.RawTensor, err error) {
	deprecatedAminmaxWarning.Do(func() {
		klog.Warningf("_aminmax is deprecated and will be removed in a future release. Use aminmax instead. " +
			"This warning will only appear once per process.")
	})
	return Aminmax(self, &dim, keepDim)
}
