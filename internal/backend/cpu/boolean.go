package cpu

import (
	"github.com/born-ml/compare/internal/iter"
	"github.com/born-ml/compare/internal/tensor"
)

// Boolean kernels - work on bool tensors.

func logicalAndKernel(it *iter.Iterator) {
	checkBoolInputs("logical_and", it)
	binaryLoop(it, func(a, b bool) bool { return a && b })
}

func logicalOrKernel(it *iter.Iterator) {
	checkBoolInputs("logical_or", it)
	binaryLoop(it, func(a, b bool) bool { return a || b })
}

func checkBoolInputs(op string, it *iter.Iterator) {
	for k := range it.NumInputs() {
		if it.Input(k).DType() != tensor.Bool {
			panic(op + ": both tensors must be bool dtype")
		}
	}
}
