package compare

import (
	"math"

	"github.com/born-ml/compare/internal/dispatch"
	"github.com/born-ml/compare/internal/iter"
	"github.com/born-ml/compare/internal/tensor"
)

// ============================================================================
// Scalar bounds
// ============================================================================

// Clamp limits every element of self to [min, max]. Either bound may be nil, but not both.
//
// Bounds are applied as max then min, so inverted bounds (min > max) set every
// element to max. A NaN bound makes the whole result NaN. Integral inputs are
// promoted when a bound is floating point.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int64{-5, 0, 4, 9}, tensor.Shape{4})
//	y, err := compare.Clamp(x, compare.Some(tensor.Int(0)), compare.Some(tensor.Int(5)))
//	// y = [0, 0, 4, 5]
func Clamp(self *tensor.RawTensor, min, max *tensor.Scalar) (*tensor.RawTensor, error) {
	return clampScalar("clamp", self, min, max, nil)
}

// ClampOut is Clamp writing into out, which must have the result dtype.
func ClampOut(self *tensor.RawTensor, min, max *tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampScalar("clamp", self, min, max, out)
}

// ClampInPlace is Clamp writing into self. It fails when the bounds would promote self.
func ClampInPlace(self *tensor.RawTensor, min, max *tensor.Scalar) (*tensor.RawTensor, error) {
	return clampScalar("clamp_", self, min, max, self)
}

// ClampMin limits every element of self from below.
func ClampMin(self *tensor.RawTensor, min tensor.Scalar) (*tensor.RawTensor, error) {
	return clampScalar("clamp_min", self, &min, nil, nil)
}

// ClampMinOut is ClampMin writing into out.
func ClampMinOut(self *tensor.RawTensor, min tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampScalar("clamp_min", self, &min, nil, out)
}

// ClampMinInPlace is ClampMin writing into self.
func ClampMinInPlace(self *tensor.RawTensor, min tensor.Scalar) (*tensor.RawTensor, error) {
	return clampScalar("clamp_min_", self, &min, nil, self)
}

// ClampMax limits every element of self from above.
func ClampMax(self *tensor.RawTensor, max tensor.Scalar) (*tensor.RawTensor, error) {
	return clampScalar("clamp_max", self, nil, &max, nil)
}

// ClampMaxOut is ClampMax writing into out.
func ClampMaxOut(self *tensor.RawTensor, max tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampScalar("clamp_max", self, nil, &max, out)
}

// ClampMaxInPlace is ClampMax writing into self.
func ClampMaxInPlace(self *tensor.RawTensor, max tensor.Scalar) (*tensor.RawTensor, error) {
	return clampScalar("clamp_max_", self, nil, &max, self)
}

// clampPlan is a validated clamp with scalar bounds.
type clampPlan struct {
	out      OutputDescriptor
	min, max *tensor.Scalar
}

func planClamp(op string, self *tensor.RawTensor, min, max *tensor.Scalar, out *tensor.RawTensor) (*clampPlan, error) {
	if min == nil && max == nil {
		return nil, tensor.InvalidArgumentf("%s: at least one of 'min' or 'max' must not be None", op)
	}
	var bounds []tensor.Operand
	for _, b := range []*tensor.Scalar{min, max} {
		if b != nil {
			bounds = append(bounds, *b)
		}
	}
	resultType, err := resolveResultType(op, self, out, bounds...)
	if err != nil {
		return nil, err
	}
	if err := checkClampable(op, resultType); err != nil {
		return nil, err
	}
	for _, b := range []*tensor.Scalar{min, max} {
		if b != nil && !b.FitsIn(resultType) {
			return nil, tensor.InvalidArgumentf("%s: value %s cannot be converted to type %s without overflow", op, b, resultType)
		}
	}
	desc := describe(self.Shape(), resultType, self.Device())
	if err := desc.check(op, out); err != nil {
		return nil, err
	}
	return &clampPlan{out: desc, min: min, max: max}, nil
}

func checkClampable(op string, dt tensor.DataType) error {
	if dt == tensor.Bool {
		return tensor.TypeErrorf("%s is not supported for boolean tensors", op)
	}
	return nil
}

// sanitizeBounds reports whether a present bound is NaN. Comparisons against NaN are
// not ordered, so such a clamp is a NaN fill of the output rather than a kernel call.
func sanitizeBounds(bounds ...*tensor.Scalar) (tensor.Scalar, bool) {
	for _, b := range bounds {
		if b != nil && b.IsNaN() {
			return tensor.Float(math.NaN()), true
		}
	}
	return tensor.Scalar{}, false
}

func clampScalar(op string, self *tensor.RawTensor, min, max *tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	plan, err := planClamp(op, self, min, max, out)
	if err != nil {
		return nil, err
	}
	if nan, ok := sanitizeBounds(min, max); ok {
		return fill(op, plan.out, out, nan)
	}

	input := tensor.Cast(self, plan.out.DType)
	cfg := iter.NewConfig().AddOutput(out).AddInput(input)
	return run(op, cfg, func(it *iter.Iterator) {
		switch {
		case min != nil && max != nil:
			dispatch.ClampScalar.Get(it.Device())(it, *min, *max)
		case min != nil:
			dispatch.ClampMinScalar.Get(it.Device())(it, *min)
		default:
			dispatch.ClampMaxScalar.Get(it.Device())(it, *max)
		}
	})
}

// ============================================================================
// Tensor bounds
// ============================================================================

// ClampTensor limits self elementwise between the broadcast tensors min and max.
// Either bound may be nil, but not both. A NaN in a bound yields NaN at that position.
func ClampTensor(self, min, max *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampTensor("clamp", self, min, max, nil)
}

// ClampTensorOut is ClampTensor writing into out. The result type must be safely castable to out.
func ClampTensorOut(self, min, max, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampTensor("clamp", self, min, max, out)
}

// ClampTensorInPlace is ClampTensor writing into self.
func ClampTensorInPlace(self, min, max *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampTensor("clamp_", self, min, max, self)
}

// ClampMinTensor is the elementwise maximum of self and min.
func ClampMinTensor(self, min *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampTensor("clamp_min", self, min, nil, nil)
}

func ClampMinTensorOut(self, min, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampTensor("clamp_min", self, min, nil, out)
}

func ClampMinTensorInPlace(self, min *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampTensor("clamp_min_", self, min, nil, self)
}

// ClampMaxTensor is the elementwise minimum of self and max.
func ClampMaxTensor(self, max *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampTensor("clamp_max", self, nil, max, nil)
}

func ClampMaxTensorOut(self, max, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampTensor("clamp_max", self, nil, max, out)
}

func ClampMaxTensorInPlace(self, max *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampTensor("clamp_max_", self, nil, max, self)
}

func planClampTensor(op string, self, min, max, out *tensor.RawTensor) (OutputDescriptor, error) {
	if min == nil && max == nil {
		return OutputDescriptor{}, tensor.InvalidArgumentf("%s: at least one of 'min' or 'max' must not be None", op)
	}
	if err := rejectComplex(op, self, min, max); err != nil {
		return OutputDescriptor{}, err
	}
	resultType := tensor.ResultType(self, min, max)
	if err := checkClampable(op, resultType); err != nil {
		return OutputDescriptor{}, err
	}
	desc, err := broadcastDescriptor(op, resultType, self, min, max)
	if err != nil {
		return OutputDescriptor{}, err
	}
	if out == nil {
		return desc, nil
	}
	if !tensor.CanCast(resultType, out.DType()) {
		return OutputDescriptor{}, tensor.TypeErrorf("%s: result type %s can't be cast to the desired output type %s",
			op, resultType, out.DType())
	}
	if out.SameStorage(self) && !desc.Shape.Equal(self.Shape()) {
		return OutputDescriptor{}, tensor.InvalidArgumentf("%s: output with shape %v doesn't match the broadcast shape %v",
			op, []int(self.Shape()), []int(desc.Shape))
	}
	return desc, nil
}

// clampTensor redispatches one-sided clamps to maximum and minimum, which coincide
// with them for tensor bounds.
func clampTensor(op string, self, min, max, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	if _, err := planClampTensor(op, self, min, max, out); err != nil {
		return nil, err
	}

	cfg := iter.NewConfig().AddOutput(out).AddInput(self).
		PromoteInputsToCommonDType(true).
		CastCommonDTypeToOutputs(true).
		EnforceSafeCastingToOutput(true)
	stub := dispatch.Clamp
	switch {
	case min != nil && max != nil:
		cfg.AddInput(min).AddInput(max)
	case min != nil:
		cfg.AddInput(min)
		stub = dispatch.Maximum
	default:
		cfg.AddInput(max)
		stub = dispatch.Minimum
	}
	return elementwise(op, stub, cfg)
}

// ============================================================================
// Clip aliases
// ============================================================================

// Clip is an alias for Clamp.
func Clip(self *tensor.RawTensor, min, max *tensor.Scalar) (*tensor.RawTensor, error) {
	return clampScalar("clip", self, min, max, nil)
}

// ClipOut is an alias for ClampOut.
func ClipOut(self *tensor.RawTensor, min, max *tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampScalar("clip", self, min, max, out)
}

// ClipInPlace is an alias for ClampInPlace.
func ClipInPlace(self *tensor.RawTensor, min, max *tensor.Scalar) (*tensor.RawTensor, error) {
	return clampScalar("clip_", self, min, max, self)
}

// ClipTensor is an alias for ClampTensor.
func ClipTensor(self, min, max *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampTensor("clip", self, min, max, nil)
}

// ClipTensorOut is an alias for ClampTensorOut.
func ClipTensorOut(self, min, max, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampTensor("clip", self, min, max, out)
}

// ClipTensorInPlace is an alias for ClampTensorInPlace.
func ClipTensorInPlace(self, min, max *tensor.RawTensor) (*tensor.RawTensor, error) {
	return clampTensor("clip_", self, min, max, self)
}
