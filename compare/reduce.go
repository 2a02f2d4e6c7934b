// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package compare

import (
	"github.com/born-ml/compare/internal/compare"
	"github.com/born-ml/compare/tensor"
)

// Max returns the largest value of self along dim and the index of its first
// occurrence. NaN counts as the largest value. indices are Int64.
//
// Example:
//
//	x, _ := tensor.FromSlice([]int64{3, 1, 1, 3}, tensor.Shape{4})
//	values, indices, err := compare.Max(x, 0, false)
//	// values = 3, indices = 0
func Max(self *tensor.RawTensor, dim int, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	return compare.Max(self, dim, keepDim)
}

// MaxOut is Max writing into values and indices.
func MaxOut(self *tensor.RawTensor, dim int, keepDim bool, values, indices *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	return compare.MaxOut(self, dim, keepDim, values, indices)
}

// Min returns the smallest value of self along dim and the index of its first occurrence.
func Min(self *tensor.RawTensor, dim int, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	return compare.Min(self, dim, keepDim)
}

// MinOut is Min writing into values and indices.
func MinOut(self *tensor.RawTensor, dim int, keepDim bool, values, indices *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	return compare.MinOut(self, dim, keepDim, values, indices)
}

// Mode returns the most frequent value of self along dim and the index of its
// first occurrence. Ties go to the value seen first. Only CPU and CUDA tensors
// with a strided layout are supported.
func Mode(self *tensor.RawTensor, dim int, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	return compare.Mode(self, dim, keepDim)
}

// ModeOut is Mode writing into values and indices.
func ModeOut(self *tensor.RawTensor, dim int, keepDim bool, values, indices *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	return compare.ModeOut(self, dim, keepDim, values, indices)
}

// MaxNamed is Max along the dimension labelled name.
func MaxNamed(self *tensor.RawTensor, name string, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	return compare.MaxNamed(self, name, keepDim)
}

// MaxNamedOut is MaxNamed writing into values and indices.
func MaxNamedOut(self *tensor.RawTensor, name string, keepDim bool, values, indices *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	return compare.MaxNamedOut(self, name, keepDim, values, indices)
}

// MinNamed is Min along the dimension labelled name.
func MinNamed(self *tensor.RawTensor, name string, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	return compare.MinNamed(self, name, keepDim)
}

// MinNamedOut is MinNamed writing into values and indices.
func MinNamedOut(self *tensor.RawTensor, name string, keepDim bool, values, indices *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	return compare.MinNamedOut(self, name, keepDim, values, indices)
}

// ModeNamed is Mode along the dimension labelled name.
func ModeNamed(self *tensor.RawTensor, name string, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	return compare.ModeNamed(self, name, keepDim)
}

// ModeNamedOut is ModeNamed writing into values and indices.
func ModeNamedOut(self *tensor.RawTensor, name string, keepDim bool, values, indices *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	return compare.ModeNamedOut(self, name, keepDim, values, indices)
}

// Aminmax returns the minimum and maximum of self along dim, or over all
// elements when dim is nil.
func Aminmax(self *tensor.RawTensor, dim *int, keepDim bool) (min, max *tensor.RawTensor, err error) {
	return compare.Aminmax(self, dim, keepDim)
}

// DeprecatedAminmax is Aminmax along dim.
//
// Deprecated: use Aminmax.
func DeprecatedAminmax(self *tensor.RawTensor, dim int, keepDim bool) (min, max *tensor.RawTensor, err error) {
	return compare.DeprecatedAminmax(self, dim, keepDim)
}
