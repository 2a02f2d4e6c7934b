// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/compare/internal/tensor"
)

// Type aliases for public API

// Element is a constraint for the Go types a tensor can hold.
// Supported types: bool, uint8, int8, int16, int32, int64, float16, bfloat16,
// float32, float64, complex64, complex128.
type Element = tensor.Element

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Invalid    DataType = tensor.Invalid
	Bool       DataType = tensor.Bool
	Uint8      DataType = tensor.Uint8
	Int8       DataType = tensor.Int8
	Int16      DataType = tensor.Int16
	Int32      DataType = tensor.Int32
	Int64      DataType = tensor.Int64
	Float16    DataType = tensor.Float16
	BFloat16   DataType = tensor.BFloat16
	Float32    DataType = tensor.Float32
	Float64    DataType = tensor.Float64
	Complex64  DataType = tensor.Complex64
	Complex128 DataType = tensor.Complex128
)

// ParseDataType returns the DataType named name, as printed by DataType.String.
func ParseDataType(name string) (DataType, error) {
	return tensor.ParseDataType(name)
}

// DefaultFloat returns the floating type floating scalars promote to.
// Configurable via COMPARE_DEFAULT_DTYPE.
func DefaultFloat() DataType {
	return tensor.DefaultFloat()
}

// CanCast reports whether values of type from may be written into a tensor of type to.
func CanCast(from, to DataType) bool {
	return tensor.CanCast(from, to)
}

// Device represents the device where tensor data resides.
type Device = tensor.Device

// Device constants.
const (
	CPU    Device = tensor.CPU
	CUDA   Device = tensor.CUDA
	Vulkan Device = tensor.Vulkan
	Metal  Device = tensor.Metal
	WebGPU Device = tensor.WebGPU
)

// Layout is the storage layout tag of a tensor.
type Layout = tensor.Layout

// Layout constants.
const (
	Strided Layout = tensor.Strided
	Sparse  Layout = tensor.Sparse
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// BroadcastShapes returns the shape all of shapes broadcast to.
func BroadcastShapes(shapes ...Shape) (Shape, error) {
	return tensor.BroadcastShapes(shapes...)
}

// Scalar is a single value tagged with its kind: bool, integral, floating or complex.
type Scalar = tensor.Scalar

// BoolScalar returns a boolean Scalar.
func BoolScalar(v bool) Scalar { return tensor.BoolScalar(v) }

// Int returns an integral Scalar.
func Int(v int64) Scalar { return tensor.Int(v) }

// Float returns a floating Scalar.
func Float(v float64) Scalar { return tensor.Float(v) }

// Complex returns a complex Scalar.
func Complex(v complex128) Scalar { return tensor.Complex(v) }

// Error kinds. Every error returned by this module wraps one of them; test with errors.Is.
var (
	ErrInvalidArgument   = tensor.ErrInvalidArgument
	ErrType              = tensor.ErrType
	ErrUnsupportedDevice = tensor.ErrUnsupportedDevice
)
