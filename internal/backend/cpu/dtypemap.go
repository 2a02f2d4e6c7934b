package cpu

import (
	"github.com/gomlx/exceptions"
	"golang.org/x/exp/constraints"

	"github.com/born-ml/compare/internal/tensor"
)

// Element type sets the generic kernels are instantiated over.
// Half precision types never reach them: they are computed in float32.
type (
	integer interface {
		uint8 | int8 | int16 | int32 | int64
	}
	floating interface {
		float32 | float64
	}
	ordered interface {
		integer | floating
	}
	complexFloat interface {
		complex64 | complex128
	}
)

// dtypeMap holds one instantiation of a generic kernel per dtype.
type dtypeMap struct {
	name string
	fns  map[tensor.DataType]any
}

func newDTypeMap(name string) *dtypeMap {
	return &dtypeMap{name: name, fns: make(map[tensor.DataType]any)}
}

func (m *dtypeMap) register(dtype tensor.DataType, fn any) {
	m.fns[dtype] = fn
}

// get returns the instantiation for dtype. Callers assert it to the kernel's function type.
func (m *dtypeMap) get(dtype tensor.DataType) any {
	fn, ok := m.fns[dtype]
	if !ok {
		exceptions.Panicf("cpu: %s not implemented for dtype %s", m.name, dtype)
	}
	return fn
}

func isNaN[T constraints.Ordered](v T) bool {
	return v != v
}

// maxPropagateNaN returns the larger of a and b, or the first NaN among them.
func maxPropagateNaN[T constraints.Ordered](a, b T) T {
	switch {
	case isNaN(a):
		return a
	case isNaN(b):
		return b
	case a < b:
		return b
	}
	return a
}

// minPropagateNaN returns the smaller of a and b, or the first NaN among them.
func minPropagateNaN[T constraints.Ordered](a, b T) T {
	switch {
	case isNaN(a):
		return a
	case isNaN(b):
		return b
	case b < a:
		return b
	}
	return a
}

func abs[T constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
