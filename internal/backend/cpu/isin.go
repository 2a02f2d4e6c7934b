package cpu

import (
	"github.com/born-ml/compare/internal/parallel"
	"github.com/born-ml/compare/internal/tensor"
)

var isInDTypeMap = newDTypeMap("is_in_default")

type isInFn = func(elements, testElements *tensor.RawTensor, invert bool, out *tensor.RawTensor)

// isInKernel compares every element against every test element.
// Both operands share a dtype and out is a Bool tensor with elements' size.
func isInKernel(elements, testElements *tensor.RawTensor, invert bool, out *tensor.RawTensor) {
	isInDTypeMap.get(elements.DType()).(isInFn)(elements, testElements, invert, out)
}

func execIsInGeneric[T tensor.Element](elements, testElements *tensor.RawTensor, invert bool, out *tensor.RawTensor) {
	el, test, result := tensor.Data[T](elements), tensor.Data[T](testElements), tensor.Data[bool](out)
	parallel.For(len(el), func(start, end int) {
		for i := start; i < end; i++ {
			result[i] = invert
			for _, t := range test {
				if el[i] == t {
					result[i] = !invert
					break
				}
			}
		}
	}, parallel.DefaultConfig())
}
