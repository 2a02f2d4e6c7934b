// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor data model used by the compare package.
//
// # Overview
//
// A RawTensor is a dense, row-major array with:
//   - An element type (DataType), from Bool up to Complex128
//   - A Shape; zero-size dimensions are legal
//   - A Device tag and a Layout tag
//   - Optional dimension names
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/compare/compare"
//	    "github.com/born-ml/compare/tensor"
//	    _ "github.com/born-ml/compare/backend/cpu"
//	)
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float32{-1, 0.5, 3}, tensor.Shape{3})
//	    lo, hi := tensor.Float(0), tensor.Float(1)
//	    y, err := compare.Clamp(x, &lo, &hi)  // [0, 0.5, 1]
//	}
//
// # Scalars
//
// Scalar values are tagged with a kind rather than a Go type. They take part in
// type promotion like 0-dimensional tensors but never widen a tensor of the same
// kind:
//
//	tensor.Int(2)      // integral
//	tensor.Float(0.5)  // floating, promotes to DefaultFloat()
//
// # Errors
//
// Validation failures wrap ErrInvalidArgument, ErrType or ErrUnsupportedDevice
// and are tested with errors.Is. A missing kernel for a device is a fatal
// configuration error and panics.
package tensor
