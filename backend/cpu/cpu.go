// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/compare/internal/backend/cpu"
	"github.com/born-ml/compare/tensor"
)

// Backend represents the CPU backend implementation.
//
// Its kernels are registered when the package is imported; a Backend value only
// reports what is available.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/compare/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    fmt.Println(backend.Kernels())
//	}
func New() *Backend {
	return internalcpu.New()
}
