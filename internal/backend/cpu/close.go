package cpu

import (
	"math"
	"math/cmplx"

	"github.com/born-ml/compare/internal/iter"
)

var closeDTypeMap = newDTypeMap("close_tolerance")

// closeToleranceKernel marks where |a-b| is finite and <= atol + rtol*|b|.
// The tolerance is relative to the second input only.
func closeToleranceKernel(it *iter.Iterator, rtol, atol float64) {
	closeDTypeMap.get(it.DType()).(func(*iter.Iterator, float64, float64))(it, rtol, atol)
}

func execCloseGeneric[T floating](it *iter.Iterator, rtol, atol float64) {
	r, a := T(rtol), T(atol)
	binaryLoop(it, func(x, y T) bool {
		actual := abs(x - y)
		allowed := a + abs(r*y)
		f := float64(actual)
		return !math.IsInf(f, 0) && !math.IsNaN(f) && actual <= allowed
	})
}

func execCloseComplex[T complexFloat](it *iter.Iterator, rtol, atol float64) {
	binaryLoop(it, func(x, y T) bool {
		actual := cmplx.Abs(complex128(x - y))
		allowed := atol + rtol*cmplx.Abs(complex128(y))
		return !math.IsInf(actual, 0) && !math.IsNaN(actual) && actual <= allowed
	})
}
