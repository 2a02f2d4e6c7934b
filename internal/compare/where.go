package compare

import (
	"sync"

	"k8s.io/klog/v2"

	"github.com/born-ml/compare/internal/dispatch"
	"github.com/born-ml/compare/internal/iter"
	"github.com/born-ml/compare/internal/tensor"
)

var uint8ConditionWarning sync.Once

// Where selects x where condition holds and y elsewhere. The three operands broadcast
// together and the result has the promoted type of x and y.
//
// condition must be Bool. A Uint8 condition is still accepted and read as Bool, with
// a one time deprecation warning.
//
// Example:
//
//	cond, _ := tensor.FromSlice([]bool{true, false}, tensor.Shape{1, 2})
//	x, _ := tensor.FromSlice([]int64{1, 2}, tensor.Shape{1, 2})
//	y, _ := tensor.FromSlice([]int64{3, 4}, tensor.Shape{1, 2})
//	z, err := compare.Where(cond, x, y)
//	// z = [[1, 4]]
func Where(condition, x, y *tensor.RawTensor) (*tensor.RawTensor, error) {
	return where(condition, x, y, nil)
}

// WhereOut is Where writing into out, which must have the promoted type.
func WhereOut(condition, x, y, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return where(condition, x, y, out)
}

// WhereScalarSelf is Where with a scalar x.
func WhereScalarSelf(condition *tensor.RawTensor, x tensor.Scalar, y *tensor.RawTensor) (*tensor.RawTensor, error) {
	return where(condition, tensor.WrappedScalar(x, tensor.CPU), y, nil)
}

// WhereScalarOther is Where with a scalar y.
func WhereScalarOther(condition, x *tensor.RawTensor, y tensor.Scalar) (*tensor.RawTensor, error) {
	return where(condition, x, tensor.WrappedScalar(y, tensor.CPU), nil)
}

// WhereScalars is Where with scalar x and y.
func WhereScalars(condition *tensor.RawTensor, x, y tensor.Scalar) (*tensor.RawTensor, error) {
	return where(condition, tensor.WrappedScalar(x, tensor.CPU), tensor.WrappedScalar(y, tensor.CPU), nil)
}

func planWhere(op string, condition, x, y, out *tensor.RawTensor) (OutputDescriptor, error) {
	if dt := condition.DType(); dt != tensor.Bool && dt != tensor.Uint8 {
		return OutputDescriptor{}, tensor.TypeErrorf("%s expected condition to be a boolean tensor, but got a tensor with dtype %s", op, dt)
	}
	// The condition takes no part in promotion.
	desc, err := broadcastDescriptor(op, tensor.ResultType(x, y), condition, x, y)
	if err != nil {
		return OutputDescriptor{}, err
	}
	return desc, desc.check(op, out)
}

func where(condition, x, y, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "where"
	desc, err := planWhere(op, condition, x, y, out)
	if err != nil {
		return nil, err
	}
	if condition.DType() == tensor.Uint8 {
		uint8ConditionWarning.Do(func() {
			klog.Warningf("where received a uint8 condition tensor. This behavior is deprecated " +
				"and will be removed in a future version, use a bool condition instead.")
		})
		condition = tensor.Cast(condition, tensor.Bool)
	}

	cfg := iter.NewConfig().AddOutput(out).
		AddInput(condition).
		AddInput(tensor.Cast(x, desc.DType)).
		AddInput(tensor.Cast(y, desc.DType)).
		DeclareStaticDType(desc.DType)
	return elementwise(op, dispatch.Where, cfg)
}

// Nonzero returns, for every dimension of condition, the coordinates along it of the
// non-zero elements: one Int64 tensor per dimension, each holding one entry per match.
// A 0-d condition is read as a one element vector.
//
// This is the one argument form of where, not a selection.
func Nonzero(condition *tensor.RawTensor) ([]*tensor.RawTensor, error) {
	if condition.Dim() == 0 {
		var err error
		if condition, err = condition.View(tensor.Shape{1}); err != nil {
			return nil, wrapOp("where", err)
		}
	}
	coords := dispatch.Nonzero.Get(condition.Device())(condition)
	n, rank := coords.Shape()[0], coords.Shape()[1]
	all := coords.AsInt64()

	result := make([]*tensor.RawTensor, rank)
	for d := range rank {
		column := make([]int64, n)
		for i := range n {
			column[i] = all[i*rank+d]
		}
		t, err := tensor.FromSliceOn(column, tensor.Shape{n}, condition.Device())
		if err != nil {
			return nil, wrapOp("where", err)
		}
		result[d] = t
	}
	return result, nil
}
