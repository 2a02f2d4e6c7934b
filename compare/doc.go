// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package compare provides comparison and selection operations on tensors.
//
// # Overview
//
// Every operation validates its operands and computes the output's shape and
// dtype before touching any data:
//   - Clamp and Clip limit values to a range
//   - IsIn tests set membership, choosing between a pairwise and a sorting algorithm
//   - IsClose and AllClose compare within a tolerance
//   - IsNaN, IsInf, IsPosInf, IsNegInf, IsFinite and IsReal classify values
//   - Where selects between two operands
//   - Max, Min and Mode reduce along a dimension and report indices
//
// # Call Forms
//
// Most operations come in three forms:
//
//	y, err := compare.Clamp(x, &lo, &hi)          // allocates the result
//	y, err := compare.ClampOut(x, &lo, &hi, out)  // writes into out, resizing it if needed
//	y, err := compare.ClampInPlace(x, &lo, &hi)   // writes into x
//
// A caller-supplied output must have exactly the result dtype and live on the
// operands' device. Its shape is adjusted.
//
// # Kernels
//
// Operations run the kernel registered for the operands' device. Import
// backend/cpu to register the CPU kernels:
//
//	import _ "github.com/born-ml/compare/backend/cpu"
package compare
