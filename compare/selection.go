// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package compare

import (
	"github.com/born-ml/compare/internal/compare"
	"github.com/born-ml/compare/tensor"
)

// IsIn reports, for every element of elements, whether it occurs in testElements.
// The result is a Bool tensor shaped like elements; invert negates it.
//
// assumeUnique promises that both operands are free of duplicates and lets the
// sorting algorithm skip deduplication. It never changes a correct result.
// Bool, Float16, BFloat16 and complex operands are rejected.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	test, _ := tensor.FromSlice([]int64{2, 3}, tensor.Shape{2})
//	mask, err := compare.IsIn(x, test, false, false)
//	// mask = [[false, true], [true, false]]
func IsIn(elements, testElements *tensor.RawTensor, assumeUnique, invert bool) (*tensor.RawTensor, error) {
	return compare.IsIn(elements, testElements, assumeUnique, invert)
}

// IsInOut is IsIn writing into out, which must be Bool.
func IsInOut(elements, testElements *tensor.RawTensor, assumeUnique, invert bool, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.IsInOut(elements, testElements, assumeUnique, invert, out)
}

// IsInScalar is IsIn with a single test element.
func IsInScalar(elements *tensor.RawTensor, testElement tensor.Scalar, assumeUnique, invert bool) (*tensor.RawTensor, error) {
	return compare.IsInScalar(elements, testElement, assumeUnique, invert)
}

// IsInScalarOut is IsInScalar writing into out.
func IsInScalarOut(elements *tensor.RawTensor, testElement tensor.Scalar, assumeUnique, invert bool, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.IsInScalarOut(elements, testElement, assumeUnique, invert, out)
}

// ScalarIsIn is IsIn with a single element. The result is 0-dimensional.
func ScalarIsIn(element tensor.Scalar, testElements *tensor.RawTensor, assumeUnique, invert bool) (*tensor.RawTensor, error) {
	return compare.ScalarIsIn(element, testElements, assumeUnique, invert)
}

// ScalarIsInOut is ScalarIsIn writing into out.
func ScalarIsInOut(element tensor.Scalar, testElements *tensor.RawTensor, assumeUnique, invert bool, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ScalarIsInOut(element, testElements, assumeUnique, invert, out)
}

// Where selects x where condition holds and y elsewhere. The three operands broadcast
// together and x and y promote to a common dtype. condition must be Bool; Uint8 is
// accepted with a one-time deprecation warning.
//
// Example:
//
//	cond, _ := tensor.FromSlice([]bool{true, false}, tensor.Shape{1, 2})
//	x, _ := tensor.FromSlice([]int64{1, 2}, tensor.Shape{1, 2})
//	y, _ := tensor.FromSlice([]int64{3, 4}, tensor.Shape{1, 2})
//	z, err := compare.Where(cond, x, y)
//	// z = [[1, 4]]
func Where(condition, x, y *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.Where(condition, x, y)
}

// WhereOut is Where writing into out.
func WhereOut(condition, x, y, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.WhereOut(condition, x, y, out)
}

// WhereScalarSelf is Where with a scalar x.
func WhereScalarSelf(condition *tensor.RawTensor, x tensor.Scalar, y *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.WhereScalarSelf(condition, x, y)
}

// WhereScalarOther is Where with a scalar y.
func WhereScalarOther(condition, x *tensor.RawTensor, y tensor.Scalar) (*tensor.RawTensor, error) {
	return compare.WhereScalarOther(condition, x, y)
}

// WhereScalars is Where with scalar x and y. The result is shaped like condition.
func WhereScalars(condition *tensor.RawTensor, x, y tensor.Scalar) (*tensor.RawTensor, error) {
	return compare.WhereScalars(condition, x, y)
}

// Nonzero returns, for every dimension of condition, the coordinates of its
// non-zero elements in row-major order. It is the single-argument form of Where.
func Nonzero(condition *tensor.RawTensor) ([]*tensor.RawTensor, error) {
	return compare.Nonzero(condition)
}
