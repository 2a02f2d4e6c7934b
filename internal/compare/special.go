package compare

import (
	"github.com/born-ml/compare/internal/dispatch"
	"github.com/born-ml/compare/internal/iter"
	"github.com/born-ml/compare/internal/tensor"
)

// Special value predicates. Every result is a Bool tensor shaped like self.

// IsNaN marks elements that do not equal themselves. Integral inputs are never NaN.
func IsNaN(self *tensor.RawTensor) (*tensor.RawTensor, error) {
	return ne("isnan", self, self, nil)
}

// IsReal marks elements with a zero imaginary part. Non-complex inputs are always real.
func IsReal(self *tensor.RawTensor) (*tensor.RawTensor, error) {
	if !self.DType().IsComplex() {
		return constantMask(self, true), nil
	}
	zero := tensor.WrappedScalar(tensor.Int(0), self.Device())
	return eq("isreal", tensor.Imag(self), zero, nil)
}

// IsInf marks positive and negative infinities. A complex value is infinite when
// either part is.
func IsInf(self *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "isinf"
	switch {
	case self.DType().IsIntegral(true):
		return constantMask(self, false), nil
	case self.DType().IsComplex():
		return complexParts(op, self, IsInf, logicalOr)
	}
	return unaryPredicate(op, dispatch.IsInf, self, nil)
}

// IsFinite marks elements that are neither infinite nor NaN. A complex value is
// finite when both parts are.
func IsFinite(self *tensor.RawTensor) (*tensor.RawTensor, error) {
	const op = "isfinite"
	switch {
	case self.DType().IsIntegral(true):
		return constantMask(self, true), nil
	case self.DType().IsComplex():
		return complexParts(op, self, IsFinite, logicalAnd)
	}
	return unaryPredicate(op, dispatch.IsFinite, self, nil)
}

// IsPosInf marks positive infinities.
func IsPosInf(self *tensor.RawTensor) (*tensor.RawTensor, error) {
	return signedInf("isposinf", dispatch.IsPosInf, self, nil)
}

// IsPosInfOut is IsPosInf writing into out, which must be a Bool tensor.
func IsPosInfOut(self, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return signedInf("isposinf", dispatch.IsPosInf, self, out)
}

// IsNegInf marks negative infinities.
func IsNegInf(self *tensor.RawTensor) (*tensor.RawTensor, error) {
	return signedInf("isneginf", dispatch.IsNegInf, self, nil)
}

// IsNegInfOut is IsNegInf writing into out, which must be a Bool tensor.
func IsNegInfOut(self, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return signedInf("isneginf", dispatch.IsNegInf, self, out)
}

func planSignedInf(op string, self, out *tensor.RawTensor) (OutputDescriptor, error) {
	if self.DType().IsComplex() {
		return OutputDescriptor{}, tensor.TypeErrorf("%s does not support complex inputs", op)
	}
	if out != nil && out.DType() != tensor.Bool {
		return OutputDescriptor{}, tensor.InvalidArgumentf("%s does not support non-boolean outputs", op)
	}
	desc := describe(self.Shape(), tensor.Bool, self.Device())
	return desc, desc.check(op, out)
}

func signedInf(op string, stub *dispatch.Stub[dispatch.ElementwiseFn], self, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	desc, err := planSignedInf(op, self, out)
	if err != nil {
		return nil, err
	}
	if self.DType().IsIntegral(true) {
		return fill(op, desc, out, tensor.BoolScalar(false))
	}
	return unaryPredicate(op, stub, self, out)
}

func unaryPredicate(op string, stub *dispatch.Stub[dispatch.ElementwiseFn], self, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return elementwise(op, stub, iter.NewConfig().AddOutput(out).AddInput(self).DeclareStaticDType(tensor.Bool))
}

// complexParts applies pred to both parts of a complex tensor and combines the masks.
func complexParts(op string, self *tensor.RawTensor,
	pred func(*tensor.RawTensor) (*tensor.RawTensor, error),
	combine func(op string, a, b *tensor.RawTensor) (*tensor.RawTensor, error),
) (*tensor.RawTensor, error) {
	re, err := pred(tensor.Real(self))
	if err != nil {
		return nil, err
	}
	im, err := pred(tensor.Imag(self))
	if err != nil {
		return nil, err
	}
	return combine(op, re, im)
}

// constantMask returns a Bool tensor shaped like self holding v, without a kernel call.
func constantMask(self *tensor.RawTensor, v bool) *tensor.RawTensor {
	mask, err := tensor.Full(self.Shape(), tensor.Bool, self.Device(), tensor.BoolScalar(v))
	if err != nil {
		panic(err)
	}
	return mask
}
