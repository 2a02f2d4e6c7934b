// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package compare

import (
	"github.com/born-ml/compare/internal/compare"
	"github.com/born-ml/compare/tensor"
)

// Some returns a pointer to v, for optional clamp bounds.
func Some(v tensor.Scalar) *tensor.Scalar {
	return compare.Some(v)
}

// Clamp limits every element of self to [min, max]. Either bound may be nil, but not both.
//
// Integral self is promoted to a floating result when a bound is floating. A NaN
// bound makes every element NaN. When min > max every element becomes max.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int64{-3, 2, 9}, tensor.Shape{3})
//	y, err := compare.Clamp(x, compare.Some(tensor.Int(0)), compare.Some(tensor.Int(5)))
//	// y = [0, 2, 5]
func Clamp(self *tensor.RawTensor, min, max *tensor.Scalar) (*tensor.RawTensor, error) {
	return compare.Clamp(self, min, max)
}

// ClampOut is Clamp writing into out.
func ClampOut(self *tensor.RawTensor, min, max *tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClampOut(self, min, max, out)
}

// ClampInPlace is Clamp writing into self. It fails when the bounds would change self's dtype.
func ClampInPlace(self *tensor.RawTensor, min, max *tensor.Scalar) (*tensor.RawTensor, error) {
	return compare.ClampInPlace(self, min, max)
}

// ClampMin raises every element of self to at least min.
func ClampMin(self *tensor.RawTensor, min tensor.Scalar) (*tensor.RawTensor, error) {
	return compare.ClampMin(self, min)
}

// ClampMinOut is ClampMin writing into out.
func ClampMinOut(self *tensor.RawTensor, min tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClampMinOut(self, min, out)
}

// ClampMinInPlace is ClampMin writing into self.
func ClampMinInPlace(self *tensor.RawTensor, min tensor.Scalar) (*tensor.RawTensor, error) {
	return compare.ClampMinInPlace(self, min)
}

// ClampMax lowers every element of self to at most max.
func ClampMax(self *tensor.RawTensor, max tensor.Scalar) (*tensor.RawTensor, error) {
	return compare.ClampMax(self, max)
}

// ClampMaxOut is ClampMax writing into out.
func ClampMaxOut(self *tensor.RawTensor, max tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClampMaxOut(self, max, out)
}

// ClampMaxInPlace is ClampMax writing into self.
func ClampMaxInPlace(self *tensor.RawTensor, max tensor.Scalar) (*tensor.RawTensor, error) {
	return compare.ClampMaxInPlace(self, max)
}

// ClampTensor is Clamp with tensor bounds broadcast against self. Either bound may be nil, but not both.
func ClampTensor(self, min, max *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClampTensor(self, min, max)
}

// ClampTensorOut is ClampTensor writing into out. out may be wider than the result type.
func ClampTensorOut(self, min, max, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClampTensorOut(self, min, max, out)
}

// ClampTensorInPlace is ClampTensor writing into self. The bounds may not grow self's shape.
func ClampTensorInPlace(self, min, max *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClampTensorInPlace(self, min, max)
}

// ClampMinTensor is the elementwise maximum of self and min.
func ClampMinTensor(self, min *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClampMinTensor(self, min)
}

// ClampMinTensorOut is ClampMinTensor writing into out.
func ClampMinTensorOut(self, min, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClampMinTensorOut(self, min, out)
}

// ClampMinTensorInPlace is ClampMinTensor writing into self.
func ClampMinTensorInPlace(self, min *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClampMinTensorInPlace(self, min)
}

// ClampMaxTensor is the elementwise minimum of self and max.
func ClampMaxTensor(self, max *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClampMaxTensor(self, max)
}

// ClampMaxTensorOut is ClampMaxTensor writing into out.
func ClampMaxTensorOut(self, max, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClampMaxTensorOut(self, max, out)
}

// ClampMaxTensorInPlace is ClampMaxTensor writing into self.
func ClampMaxTensorInPlace(self, max *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClampMaxTensorInPlace(self, max)
}

// Clip is an alias for Clamp.
func Clip(self *tensor.RawTensor, min, max *tensor.Scalar) (*tensor.RawTensor, error) {
	return compare.Clip(self, min, max)
}

// ClipOut is an alias for ClampOut.
func ClipOut(self *tensor.RawTensor, min, max *tensor.Scalar, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClipOut(self, min, max, out)
}

// ClipInPlace is an alias for ClampInPlace.
func ClipInPlace(self *tensor.RawTensor, min, max *tensor.Scalar) (*tensor.RawTensor, error) {
	return compare.ClipInPlace(self, min, max)
}

// ClipTensor is an alias for ClampTensor.
func ClipTensor(self, min, max *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClipTensor(self, min, max)
}

// ClipTensorOut is an alias for ClampTensorOut.
func ClipTensorOut(self, min, max, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClipTensorOut(self, min, max, out)
}

// ClipTensorInPlace is an alias for ClampTensorInPlace.
func ClipTensorInPlace(self, min, max *tensor.RawTensor) (*tensor.RawTensor, error) {
	return compare.ClipTensorInPlace(self, min, max)
}
