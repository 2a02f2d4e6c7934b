package cpu

import (
	"github.com/born-ml/compare/internal/iter"
	"github.com/born-ml/compare/internal/tensor"
)

// Comparison kernels. Inputs share the iterator's dtype, outputs are Bool.

var (
	eqDTypeMap      = newDTypeMap("eq")
	neDTypeMap      = newDTypeMap("ne")
	maximumDTypeMap = newDTypeMap("maximum")
	minimumDTypeMap = newDTypeMap("minimum")
)

func eqKernel(it *iter.Iterator) {
	eqDTypeMap.get(it.Input(0).DType()).(func(*iter.Iterator))(it)
}

func neKernel(it *iter.Iterator) {
	neDTypeMap.get(it.Input(0).DType()).(func(*iter.Iterator))(it)
}

// maximumKernel computes the elementwise maximum, propagating NaN.
func maximumKernel(it *iter.Iterator) {
	maximumDTypeMap.get(it.DType()).(func(*iter.Iterator))(it)
}

// minimumKernel computes the elementwise minimum, propagating NaN.
func minimumKernel(it *iter.Iterator) {
	minimumDTypeMap.get(it.DType()).(func(*iter.Iterator))(it)
}

func execEqGeneric[T tensor.Element](it *iter.Iterator) {
	binaryLoop(it, func(a, b T) bool { return a == b })
}

func execNeGeneric[T tensor.Element](it *iter.Iterator) {
	binaryLoop(it, func(a, b T) bool { return a != b })
}

func execMaximumGeneric[T ordered](it *iter.Iterator) {
	binaryLoop(it, maxPropagateNaN[T])
}

func execMinimumGeneric[T ordered](it *iter.Iterator) {
	binaryLoop(it, minPropagateNaN[T])
}

func execMaximumBool(it *iter.Iterator) {
	binaryLoop(it, func(a, b bool) bool { return a || b })
}

func execMinimumBool(it *iter.Iterator) {
	binaryLoop(it, func(a, b bool) bool { return a && b })
}
