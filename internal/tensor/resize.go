package tensor

import "k8s.io/klog/v2"

// ResizeOutput reshapes a caller-supplied output to shape, reallocating its buffer
// when the element count changes. It reports whether anything changed.
//
// Resizing an output that already holds elements is allowed but logged,
// since callers usually pass outputs of the right shape or empty ones.
func ResizeOutput(out *RawTensor, shape Shape) bool {
	if out.shape.Equal(shape) {
		return false
	}
	if out.NumElements() != 0 {
		klog.Warningf("an output with one or more elements was resized since it had shape %v, "+
			"which does not match the required output shape %v", []int(out.shape), []int(shape))
	}
	out.Resize(shape)
	return true
}

// Resize changes r's shape in place. Storage is reallocated, and zeroed, only when the
// element count changes.
func (r *RawTensor) Resize(shape Shape) {
	if shape.NumElements() != r.NumElements() {
		r.buffer.release()
		r.buffer = newTensorBuffer(shape.NumElements() * r.dtype.Size())
	}
	if len(shape) != len(r.shape) {
		r.names = nil
	}
	r.shape = shape.Clone()
	r.stride = shape.ComputeStrides()
}
