// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU kernels for the compare package.
//
// # Overview
//
// Importing this package registers a CPU kernel for every operation:
//   - Pure Go implementation (no CGO)
//   - Every DataType, with Float16 and BFloat16 computed in float32
//   - NumPy-compatible broadcasting
//   - Parallel elementwise loops above COMPARE_GRAIN_SIZE elements
//
// # Basic Usage
//
//	import (
//	    _ "github.com/born-ml/compare/backend/cpu"
//	    "github.com/born-ml/compare/compare"
//	    "github.com/born-ml/compare/tensor"
//	)
//
//	func main() {
//	    x, _ := tensor.FromSlice([]float64{1, math.NaN()}, tensor.Shape{2})
//	    mask, _ := compare.IsNaN(x)  // [false, true]
//	}
//
// # Thread Safety
//
// Kernels are registered once, at import. Afterwards the kernel table is
// read-only and operations are safe for concurrent use.
package cpu
