package dispatch

import (
	"github.com/born-ml/compare/internal/iter"
	"github.com/born-ml/compare/internal/tensor"
)

// Kernel signatures.
type (
	// FillFn writes v into every element of the iterator's only output.
	FillFn func(it *iter.Iterator, v tensor.Scalar)

	// ElementwiseFn computes the iterator's outputs from its inputs.
	ElementwiseFn func(it *iter.Iterator)

	// ClampScalarFn clamps the iterator's only input between lo and hi.
	ClampScalarFn func(it *iter.Iterator, lo, hi tensor.Scalar)

	// ClampBoundFn clamps the iterator's only input against a single bound.
	ClampBoundFn func(it *iter.Iterator, bound tensor.Scalar)

	// IsInFn marks which of elements occur in testElements, by comparing every pair.
	IsInFn func(elements, testElements *tensor.RawTensor, invert bool, out *tensor.RawTensor)

	// CloseFn marks where |a-b| is finite and within atol + rtol*|b|.
	CloseFn func(it *iter.Iterator, rtol, atol float64)

	// NonzeroFn returns the coordinates of non-zero elements as an (n, dim) Int64 tensor.
	NonzeroFn func(self *tensor.RawTensor) *tensor.RawTensor

	// ReduceWithIndicesFn reduces self along dim into preallocated values and indices.
	ReduceWithIndicesFn func(values, indices, self *tensor.RawTensor, dim int, keepDim bool)
)

// Kernel slots, one per operation.
var (
	Fill           = NewStub[FillFn](OpFill)
	Eq             = NewStub[ElementwiseFn](OpEq)
	Ne             = NewStub[ElementwiseFn](OpNe)
	LogicalAnd     = NewStub[ElementwiseFn](OpLogicalAnd)
	LogicalOr      = NewStub[ElementwiseFn](OpLogicalOr)
	Maximum        = NewStub[ElementwiseFn](OpMaximum)
	Minimum        = NewStub[ElementwiseFn](OpMinimum)
	Clamp          = NewStub[ElementwiseFn](OpClamp)
	ClampScalar    = NewStub[ClampScalarFn](OpClampScalar)
	ClampMinScalar = NewStub[ClampBoundFn](OpClampMinScalar)
	ClampMaxScalar = NewStub[ClampBoundFn](OpClampMaxScalar)
	IsInDefault    = NewStub[IsInFn](OpIsInDefault)
	CloseTolerance = NewStub[CloseFn](OpCloseTolerance)
	IsInf          = NewStub[ElementwiseFn](OpIsInf)
	IsFinite       = NewStub[ElementwiseFn](OpIsFinite)
	IsPosInf       = NewStub[ElementwiseFn](OpIsPosInf)
	IsNegInf       = NewStub[ElementwiseFn](OpIsNegInf)
	Where          = NewStub[ElementwiseFn](OpWhere)
	Nonzero        = NewStub[NonzeroFn](OpNonzero)
	Max            = NewStub[ReduceWithIndicesFn](OpMax)
	Min            = NewStub[ReduceWithIndicesFn](OpMin)
	Mode           = NewStub[ReduceWithIndicesFn](OpMode)
)
