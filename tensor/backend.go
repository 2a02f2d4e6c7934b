// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/compare/internal/dispatch"

// Op names one slot of the kernel table.
type Op = dispatch.Op

// Backend describes a compute backend. Backends register their kernels when their
// package is imported, so operations never take a Backend argument: the device tag
// of the operands selects the kernel.
//
// Implementations:
//   - backend/cpu: Pure Go kernels for every operation
//
// Example:
//
//	import (
//	    "github.com/born-ml/compare/backend/cpu"
//	    "github.com/born-ml/compare/tensor"
//	)
//
//	var b tensor.Backend = cpu.New()
//	fmt.Println(b.Name(), b.Kernels())
type Backend interface {
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
	Kernels() []Op  // Operations with a registered kernel.
}

// Kernels lists the operations with a kernel registered for device.
func Kernels(device Device) []Op {
	return dispatch.Registered(device)
}
