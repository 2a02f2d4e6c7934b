package cpu

import (
	"github.com/born-ml/compare/internal/iter"
	"github.com/born-ml/compare/internal/tensor"
)

// Clamp kernels compute min(max(x, lo), hi) in that order, so inverted bounds yield hi.
// A NaN input propagates. The tensor form also yields NaN where a bound is NaN;
// NaN scalar bounds are handled before the scalar kernels run.

var (
	clampDTypeMap          = newDTypeMap("clamp")
	clampScalarDTypeMap    = newDTypeMap("clamp_scalar")
	clampMinScalarDTypeMap = newDTypeMap("clamp_min_scalar")
	clampMaxScalarDTypeMap = newDTypeMap("clamp_max_scalar")
)

func clampKernel(it *iter.Iterator) {
	clampDTypeMap.get(it.DType()).(func(*iter.Iterator))(it)
}

func clampScalarKernel(it *iter.Iterator, lo, hi tensor.Scalar) {
	clampScalarDTypeMap.get(it.DType()).(func(*iter.Iterator, tensor.Scalar, tensor.Scalar))(it, lo, hi)
}

func clampMinScalarKernel(it *iter.Iterator, lo tensor.Scalar) {
	clampMinScalarDTypeMap.get(it.DType()).(func(*iter.Iterator, tensor.Scalar))(it, lo)
}

func clampMaxScalarKernel(it *iter.Iterator, hi tensor.Scalar) {
	clampMaxScalarDTypeMap.get(it.DType()).(func(*iter.Iterator, tensor.Scalar))(it, hi)
}

func clampValue[T ordered](v, lo, hi T) T {
	switch {
	case isNaN(lo):
		return lo
	case isNaN(hi):
		return hi
	}
	if v < lo {
		v = lo
	}
	if hi < v {
		v = hi
	}
	return v
}

func execClampGeneric[T ordered](it *iter.Iterator) {
	ternaryLoop(it, clampValue[T])
}

func execClampScalarGeneric[T ordered](it *iter.Iterator, lo, hi tensor.Scalar) {
	l, h := tensor.ScalarAs[T](lo), tensor.ScalarAs[T](hi)
	unaryLoop(it, func(v T) T {
		if v < l {
			v = l
		}
		if h < v {
			v = h
		}
		return v
	})
}

func execClampMinScalarGeneric[T ordered](it *iter.Iterator, lo tensor.Scalar) {
	l := tensor.ScalarAs[T](lo)
	unaryLoop(it, func(v T) T {
		if v < l {
			return l
		}
		return v
	})
}

func execClampMaxScalarGeneric[T ordered](it *iter.Iterator, hi tensor.Scalar) {
	h := tensor.ScalarAs[T](hi)
	unaryLoop(it, func(v T) T {
		if h < v {
			return h
		}
		return v
	})
}
