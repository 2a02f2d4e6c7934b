package compare

import (
	"slices"

	"github.com/born-ml/compare/internal/dispatch"
	"github.com/born-ml/compare/internal/iter"
	"github.com/born-ml/compare/internal/tensor"
)

// Default tolerances of IsClose and AllClose.
const (
	DefaultRTol = 1e-05
	DefaultATol = 1e-08
)

// IsClose reports elementwise whether self is close to other:
//
//	self == other || (|self - other| is finite && |self - other| <= atol + rtol*|other|)
//
// The tolerance is relative to other only, so IsClose(a, b) and IsClose(b, a) may differ.
// With equalNaN, NaNs compare equal to each other. Both operands must share a dtype.
func IsClose(self, other *tensor.RawTensor, rtol, atol float64, equalNaN bool) (*tensor.RawTensor, error) {
	const op = "isclose"
	if _, err := planClose(op, self, other, rtol, atol); err != nil {
		return nil, err
	}

	closeMask, err := eq(op, self, other, nil)
	if err != nil {
		return nil, err
	}
	if equalNaN && (self.DType().IsFloating() || self.DType().IsComplex()) {
		selfNaN, err := ne(op, self, self, nil)
		if err != nil {
			return nil, err
		}
		otherNaN, err := ne(op, other, other, nil)
		if err != nil {
			return nil, err
		}
		bothNaN, err := logicalAnd(op, selfNaN, otherNaN)
		if err != nil {
			return nil, err
		}
		if closeMask, err = logicalOr(op, closeMask, bothNaN); err != nil {
			return nil, err
		}
	}

	// Zero tolerances leave nothing but equality.
	if rtol == 0 && atol == 0 {
		return closeMask, nil
	}

	// Integral differences are computed in the default floating type, so unsigned
	// subtraction cannot wrap around.
	castSelf, castOther := self, other
	if self.DType() == tensor.Bool {
		castSelf = tensor.Cast(self, tensor.DefaultFloat())
	}
	if self.DType().IsIntegral(true) {
		castOther = tensor.Cast(other, tensor.DefaultFloat())
	}
	cfg := iter.NewConfig().AddOutput(nil).AddInput(castSelf).AddInput(castOther).
		PromoteInputsToCommonDType(true).
		DeclareStaticDType(tensor.Bool)
	withinTolerance, err := run(op, cfg, func(it *iter.Iterator) {
		dispatch.CloseTolerance.Get(it.Device())(it, rtol, atol)
	})
	if err != nil {
		return nil, err
	}
	return logicalOr(op, closeMask, withinTolerance)
}

// AllClose reports whether IsClose holds for every element.
func AllClose(self, other *tensor.RawTensor, rtol, atol float64, equalNaN bool) (bool, error) {
	closeMask, err := IsClose(self, other, rtol, atol, equalNaN)
	if err != nil {
		return false, err
	}
	return !slices.Contains(closeMask.AsBool(), false), nil
}

func planClose(op string, self, other *tensor.RawTensor, rtol, atol float64) (OutputDescriptor, error) {
	if self.DType() != other.DType() {
		return OutputDescriptor{}, tensor.InvalidArgumentf("%s: %s did not match %s", op, self.DType(), other.DType())
	}
	if !(rtol >= 0) {
		return OutputDescriptor{}, tensor.InvalidArgumentf("%s: rtol must be greater than or equal to zero, but got %v", op, rtol)
	}
	if !(atol >= 0) {
		return OutputDescriptor{}, tensor.InvalidArgumentf("%s: atol must be greater than or equal to zero, but got %v", op, atol)
	}
	return broadcastDescriptor(op, tensor.Bool, self, other)
}
