// Package compare implements the comparison and selection operations: clamp, isin,
// isclose, the special value predicates, where, and min/max/mode along a dimension.
//
// Every operation runs in two phases. A pure planning step validates operands and
// computes an OutputDescriptor without touching data, then an execution step hands
// the planned operands to the kernel registered for their device. Validation failures
// are returned before any output is written.
//
// Most operations come in three forms:
//
//	y, err := compare.Clamp(x, compare.Some(tensor.Int(0)), nil)      // functional
//	_, err = compare.ClampInPlace(x, compare.Some(tensor.Int(0)), nil) // in-place
//	_, err = compare.ClampOut(x, compare.Some(tensor.Int(0)), nil, y)  // out parameter
package compare

import (
	"github.com/born-ml/compare/internal/tensor"
)

// OutputDescriptor is the planned layout of an operation's output.
type OutputDescriptor struct {
	Shape   tensor.Shape
	Strides []int
	DType   tensor.DataType
	Device  tensor.Device
}

func describe(shape tensor.Shape, dtype tensor.DataType, device tensor.Device) OutputDescriptor {
	return OutputDescriptor{
		Shape:   shape,
		Strides: shape.ComputeStrides(),
		DType:   dtype,
		Device:  device,
	}
}

// check validates a caller-supplied output. Its shape is not checked: outputs of
// another shape are resized when the operation runs.
func (d OutputDescriptor) check(op string, out *tensor.RawTensor) error {
	if out == nil {
		return nil
	}
	if out.DType() != d.DType {
		return tensor.InvalidArgumentf("%s: expected out tensor to have dtype %s, but got %s instead", op, d.DType, out.DType())
	}
	if out.Device() != d.Device {
		return tensor.InvalidArgumentf("%s: expected out tensor on device %s, but got %s", op, d.Device, out.Device())
	}
	return nil
}

// allocate returns out resized to the descriptor, or a new tensor when out is nil.
func (d OutputDescriptor) allocate(out *tensor.RawTensor) *tensor.RawTensor {
	if out == nil {
		raw, err := tensor.NewRaw(d.Shape, d.DType, d.Device)
		if err != nil {
			panic(err)
		}
		return raw
	}
	tensor.ResizeOutput(out, d.Shape)
	return out
}

// Some returns a pointer to v, for optional scalar operands.
func Some(v tensor.Scalar) *tensor.Scalar {
	return &v
}

// broadcastDescriptor plans the output of an elementwise operation over operands.
func broadcastDescriptor(op string, dtype tensor.DataType, operands ...*tensor.RawTensor) (OutputDescriptor, error) {
	var (
		shapes []tensor.Shape
		device tensor.Device
		seen   bool
	)
	for _, r := range operands {
		if r == nil {
			continue
		}
		shapes = append(shapes, r.Shape())
		if r.IsWrappedNumber() && r.Device() == tensor.CPU {
			continue
		}
		if seen && r.Device() != device {
			return OutputDescriptor{}, tensor.InvalidArgumentf("%s: expected all tensors to be on the same device, but found at least two devices, %s and %s",
				op, device, r.Device())
		}
		device, seen = r.Device(), true
	}
	shape, err := tensor.BroadcastShapes(shapes...)
	if err != nil {
		return OutputDescriptor{}, wrapOp(op, err)
	}
	return describe(shape, dtype, device), nil
}
