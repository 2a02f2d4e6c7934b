// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package compare

import (
	"github.com/born-ml/compare/internal/compare"
	"github.com/born-ml/compare/tensor"
)

// Default tolerances of IsClose and AllClose.
const (
	DefaultRTol = compare.DefaultRTol
	DefaultATol = compare.DefaultATol
)

// IsClose reports, elementwise, whether |self - other| <= atol + rtol*|other|.
//
// The test is asymmetric: the relative tolerance scales other. Equal infinities
// are close; NaN is close to NaN only with equalNaN. self and other must share a
// dtype and broadcast together.
//
// Example:
//
//	a, _ := tensor.FromSlice([]float64{1, 1}, tensor.Shape{2})
//	b, _ := tensor.FromSlice([]float64{1 + 1e-6, 1.1}, tensor.Shape{2})
//	mask, err := compare.IsClose(a, b, compare.DefaultRTol, compare.DefaultATol, false)
//	// mask = [true, false]
func IsClose(self, other *tensor.RawTensor, rtol, atol float64, equalNaN bool) (*tensor.RawTensor, error) {
	return compare.IsClose(self, other, rtol, atol, equalNaN)
}

// AllClose reports whether IsClose holds for every element.
func AllClose(self, other *tensor.RawTensor, rtol, atol float64, equalNaN bool) (bool, error) {
	return compare.AllClose(self, other, rtol, atol, equalNaN)
}

// IsNaN reports, elementwise, whether self is NaN.
func IsNaN(self *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.IsNaN(self)
}

// IsInf reports, elementwise, whether self is infinite. A complex value is
// infinite when either part is.
func IsInf(self *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.IsInf(self)
}

// IsPosInf reports, elementwise, whether self is positive infinity.
func IsPosInf(self *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.IsPosInf(self)
}

// IsPosInfOut is IsPosInf writing into out, which must be Bool.
func IsPosInfOut(self, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.IsPosInfOut(self, out)
}

// IsNegInf reports, elementwise, whether self is negative infinity.
func IsNegInf(self *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.IsNegInf(self)
}

// IsNegInfOut is IsNegInf writing into out, which must be Bool.
func IsNegInfOut(self, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.IsNegInfOut(self, out)
}

// IsFinite reports, elementwise, whether self is neither infinite nor NaN.
func IsFinite(self *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.IsFinite(self)
}

// IsReal reports, elementwise, whether self has a zero imaginary part.
// It holds everywhere for non-complex tensors.
func IsReal(self *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.IsReal(self)
}
