package cpu

import (
	"math"

	"github.com/born-ml/compare/internal/iter"
)

// Special value predicates over real floating point inputs. Integral and complex
// inputs are resolved before reaching a kernel.

var (
	isInfDTypeMap    = newDTypeMap("is_inf")
	isFiniteDTypeMap = newDTypeMap("is_finite")
	isPosInfDTypeMap = newDTypeMap("is_pos_inf")
	isNegInfDTypeMap = newDTypeMap("is_neg_inf")
)

func isInfKernel(it *iter.Iterator) {
	isInfDTypeMap.get(it.Input(0).DType()).(func(*iter.Iterator))(it)
}

func isFiniteKernel(it *iter.Iterator) {
	isFiniteDTypeMap.get(it.Input(0).DType()).(func(*iter.Iterator))(it)
}

func isPosInfKernel(it *iter.Iterator) {
	isPosInfDTypeMap.get(it.Input(0).DType()).(func(*iter.Iterator))(it)
}

func isNegInfKernel(it *iter.Iterator) {
	isNegInfDTypeMap.get(it.Input(0).DType()).(func(*iter.Iterator))(it)
}

func execIsInfGeneric[T floating](it *iter.Iterator) {
	unaryLoop(it, func(v T) bool { return math.IsInf(float64(v), 0) })
}

func execIsFiniteGeneric[T floating](it *iter.Iterator) {
	unaryLoop(it, func(v T) bool {
		f := float64(v)
		return !math.IsInf(f, 0) && !math.IsNaN(f)
	})
}

func execIsPosInfGeneric[T floating](it *iter.Iterator) {
	unaryLoop(it, func(v T) bool { return math.IsInf(float64(v), 1) })
}

func execIsNegInfGeneric[T floating](it *iter.Iterator) {
	unaryLoop(it, func(v T) bool { return math.IsInf(float64(v), -1) })
}
