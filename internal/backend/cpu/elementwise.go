package cpu

import (
	"github.com/born-ml/compare/internal/iter"
	"github.com/born-ml/compare/internal/tensor"
)

// Elementwise loops over an iterator. Outputs are contiguous in the iteration
// shape, inputs are reached through it.Offset to honor broadcasting.

func unaryLoop[T, R tensor.Element](it *iter.Iterator, f func(a T) R) {
	in, out := tensor.Data[T](it.Input(0)), tensor.Data[R](it.Output(0))
	it.ForRange(func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = f(in[it.Offset(0, i)])
		}
	})
}

func binaryLoop[T, R tensor.Element](it *iter.Iterator, f func(a, b T) R) {
	a, b := tensor.Data[T](it.Input(0)), tensor.Data[T](it.Input(1))
	out := tensor.Data[R](it.Output(0))
	it.ForRange(func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = f(a[it.Offset(0, i)], b[it.Offset(1, i)])
		}
	})
}

func ternaryLoop[A, T, R tensor.Element](it *iter.Iterator, f func(a A, b, c T) R) {
	a, b, c := tensor.Data[A](it.Input(0)), tensor.Data[T](it.Input(1)), tensor.Data[T](it.Input(2))
	out := tensor.Data[R](it.Output(0))
	it.ForRange(func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = f(a[it.Offset(0, i)], b[it.Offset(1, i)], c[it.Offset(2, i)])
		}
	})
}
