package compare

import (
	"github.com/pkg/errors"

	"github.com/born-ml/compare/internal/tensor"
)

// resolveResultType returns the type op computes self and operands in.
//
// Floating point is the widest type these operations accept, so a floating self
// keeps its type. Otherwise every operand is folded into a promotion state.
// Complex operands are rejected, and so is a promotion that would change the
// type of an in-place output.
func resolveResultType(op string, self, out *tensor.RawTensor, operands ...tensor.Operand) (tensor.DataType, error) {
	if err := rejectComplex(op, append([]tensor.Operand{self}, operands...)...); err != nil {
		return tensor.Invalid, err
	}
	result := self.DType()
	if result.IsFloating() {
		return result, nil
	}

	state := tensor.ResultTypeState{}.Update(self)
	for _, operand := range operands {
		state = state.Update(operand)
	}
	result = state.Result()
	if result != self.DType() && out.SameStorage(self) {
		return tensor.Invalid, tensor.TypeErrorf("%s: result type %s can't be cast to the desired output type %s",
			op, result, self.DType())
	}
	return result, nil
}

func rejectComplex(op string, operands ...tensor.Operand) error {
	for _, operand := range operands {
		var complexType bool
		switch v := operand.(type) {
		case tensor.Scalar:
			complexType = v.IsComplex()
		case *tensor.RawTensor:
			complexType = v != nil && v.DType().IsComplex()
		}
		if complexType {
			return tensor.TypeErrorf("%s is not supported for complex types", op)
		}
	}
	return nil
}

// wrapOp prefixes err with the operation name. The error kind survives for errors.Is.
func wrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, op)
}
