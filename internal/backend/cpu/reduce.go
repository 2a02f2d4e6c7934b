package cpu

import (
	"github.com/born-ml/compare/internal/parallel"
	"github.com/born-ml/compare/internal/tensor"
)

// Reductions along one dimension producing values and Int64 indices.
// values and indices arrive allocated with the reduced shape.

var (
	maxDTypeMap  = newDTypeMap("max")
	minDTypeMap  = newDTypeMap("min")
	modeDTypeMap = newDTypeMap("mode")
)

type reduceFn = func(values, indices, self *tensor.RawTensor, dim int)

func maxKernel(values, indices, self *tensor.RawTensor, dim int, _ bool) {
	reduceWithIndices(maxDTypeMap, values, indices, self, dim)
}

func minKernel(values, indices, self *tensor.RawTensor, dim int, _ bool) {
	reduceWithIndices(minDTypeMap, values, indices, self, dim)
}

func modeKernel(values, indices, self *tensor.RawTensor, dim int, _ bool) {
	reduceWithIndices(modeDTypeMap, values, indices, self, dim)
}

// reduceWithIndices computes half precision inputs in float32 and casts the values back.
// The reduced slices are laid out identically whether or not the dimension is kept.
func reduceWithIndices(m *dtypeMap, values, indices, self *tensor.RawTensor, dim int) {
	src, dst := self, values
	if self.DType().IsHalf() {
		src = tensor.Cast(self, tensor.Float32)
		dst = tensor.EmptyLike(values, tensor.Float32)
	}
	m.get(src.DType()).(reduceFn)(dst, indices, src, dim)
	if dst != values {
		values.CopyFrom(dst)
	}
}

// reductionGeometry splits shape around dim into outer slices, the reduced size, and inner stride.
func reductionGeometry(shape tensor.Shape, dim int) (outer, size, inner int) {
	if len(shape) == 0 {
		return 1, 1, 1
	}
	outer, size, inner = 1, shape[dim], 1
	for _, d := range shape[:dim] {
		outer *= d
	}
	for _, d := range shape[dim+1:] {
		inner *= d
	}
	return outer, size, inner
}

// forEachSlice calls f with the position of every reduced slice and its first element.
func forEachSlice(shape tensor.Shape, dim int, f func(slice, base, size, inner int)) {
	outer, size, inner := reductionGeometry(shape, dim)
	parallel.For(outer*inner, func(start, end int) {
		for s := start; s < end; s++ {
			o, in := s/inner, s%inner
			f(s, o*size*inner+in, size, inner)
		}
	}, parallel.DefaultConfig())
}

// reduceExtremum keeps the first value for which better holds against the current one.
// Scanning stops early once stop holds, so a NaN wins at its first occurrence.
func reduceExtremum[T tensor.Element](values, indices, self *tensor.RawTensor, dim int,
	better func(v, cur T) bool, stop func(T) bool,
) {
	src, vals, idx := tensor.Data[T](self), tensor.Data[T](values), tensor.Data[int64](indices)
	forEachSlice(self.Shape(), dim, func(slice, base, size, inner int) {
		best, bestIdx := src[base], 0
		for k := 1; k < size && !stop(best); k++ {
			if v := src[base+k*inner]; better(v, best) {
				best, bestIdx = v, k
			}
		}
		vals[slice], idx[slice] = best, int64(bestIdx)
	})
}

func execMaxGeneric[T ordered](values, indices, self *tensor.RawTensor, dim int) {
	reduceExtremum(values, indices, self, dim, func(v, cur T) bool { return !(v <= cur) }, isNaN[T])
}

func execMinGeneric[T ordered](values, indices, self *tensor.RawTensor, dim int) {
	reduceExtremum(values, indices, self, dim, func(v, cur T) bool { return !(v >= cur) }, isNaN[T])
}

func never[T any](T) bool { return false }

func execMaxBool(values, indices, self *tensor.RawTensor, dim int) {
	reduceExtremum(values, indices, self, dim, func(v, cur bool) bool { return v && !cur }, never[bool])
}

func execMinBool(values, indices, self *tensor.RawTensor, dim int) {
	reduceExtremum(values, indices, self, dim, func(v, cur bool) bool { return !v && cur }, never[bool])
}

// execModeGeneric reports the most frequent value of each slice. Among equally
// frequent values the one seen first wins, and the index of its first occurrence
// is reported. NaN never equals itself, so each NaN counts once.
func execModeGeneric[T tensor.Element](values, indices, self *tensor.RawTensor, dim int) {
	src, vals, idx := tensor.Data[T](self), tensor.Data[T](values), tensor.Data[int64](indices)
	forEachSlice(self.Shape(), dim, func(slice, base, size, inner int) {
		position := make(map[T]int, size)
		var (
			seen   []T
			first  []int
			counts []int
		)
		for k := range size {
			v := src[base+k*inner]
			p, ok := position[v]
			if !ok {
				p = len(seen)
				position[v] = p
				seen = append(seen, v)
				first = append(first, k)
				counts = append(counts, 0)
			}
			counts[p]++
		}
		best := 0
		for p := 1; p < len(seen); p++ {
			if counts[p] > counts[best] {
				best = p
			}
		}
		vals[slice], idx[slice] = seen[best], int64(first[best])
	})
}
