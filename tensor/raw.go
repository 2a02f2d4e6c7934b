// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/compare/internal/tensor"
)

// RawTensor is the tensor representation every operation consumes and produces.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device(), Layout()
//   - Type-safe data access via AsFloat32(), AsInt64(), AsBool(), etc.
//   - Element access via At() and SetAt()
//   - Optional dimension names via SetNames() and Names()
//   - Reference counting via Clone() and Release()
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32()  // Type-safe access
//	clone := raw.Clone()     // Shares buffer via reference counting
type RawTensor = tensor.RawTensor

// NewRaw creates a new zeroed tensor with the given shape, dtype, and device.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice creates a CPU tensor holding a copy of data.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func FromSlice[T Element](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// FromSliceOn is FromSlice for a tensor tagged with device.
func FromSliceOn[T Element](data []T, shape Shape, device Device) (*RawTensor, error) {
	return tensor.FromSliceOn(data, shape, device)
}

// Data returns the elements of r as a slice of T, which must match r's dtype.
func Data[T Element](r *RawTensor) []T {
	return tensor.Data[T](r)
}

// Full creates a tensor filled with v.
func Full(shape Shape, dtype DataType, device Device, v Scalar) (*RawTensor, error) {
	return tensor.Full(shape, dtype, device, v)
}

// ScalarTensor creates a 0-dimensional tensor holding v.
func ScalarTensor(v Scalar, dtype DataType, device Device) *RawTensor {
	return tensor.ScalarTensor(v, dtype, device)
}

// Cast returns r converted to dtype, or r itself when it already has that dtype.
func Cast(r *RawTensor, dtype DataType) *RawTensor {
	return tensor.Cast(r, dtype)
}
