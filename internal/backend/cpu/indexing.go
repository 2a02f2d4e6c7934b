package cpu

import (
	"github.com/born-ml/compare/internal/iter"
	"github.com/born-ml/compare/internal/tensor"
)

var (
	whereDTypeMap   = newDTypeMap("where")
	nonzeroDTypeMap = newDTypeMap("nonzero")
)

// whereKernel selects from inputs 1 and 2 according to the Bool condition in input 0.
func whereKernel(it *iter.Iterator) {
	whereDTypeMap.get(it.Output(0).DType()).(func(*iter.Iterator))(it)
}

func execWhereGeneric[T tensor.Element](it *iter.Iterator) {
	ternaryLoop(it, func(cond bool, x, y T) T {
		if cond {
			return x
		}
		return y
	})
}

// nonzeroKernel returns the row-major coordinates of every non-zero element
// as an (n, dim) Int64 tensor.
func nonzeroKernel(self *tensor.RawTensor) *tensor.RawTensor {
	if self.DType().IsHalf() {
		// Half zero has two bit patterns.
		self = tensor.Cast(self, tensor.Float32)
	}
	return nonzeroDTypeMap.get(self.DType()).(func(*tensor.RawTensor) *tensor.RawTensor)(self)
}

func execNonzeroGeneric[T tensor.Element](self *tensor.RawTensor) *tensor.RawTensor {
	var zero T
	data := tensor.Data[T](self)
	shape := self.Shape()
	strides := shape.ComputeStrides()

	var coords []int64
	n := 0
	for i, v := range data {
		if v == zero {
			continue
		}
		n++
		rem := i
		for d := range shape {
			coords = append(coords, int64(rem/strides[d]))
			rem %= strides[d]
		}
	}

	out, err := tensor.FromSliceOn(coords, tensor.Shape{n, len(shape)}, self.Device())
	if err != nil {
		panic(err)
	}
	return out
}
