// Package dispatch holds the per-device kernel table.
//
// Every operation has one typed Stub. Backends register a kernel per device from
// their init functions, before any operation runs, and the table is only read
// afterwards, so lookups take no locks. Asking for a kernel that was never
// registered is a configuration error and panics.
package dispatch

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/compare/internal/tensor"
)

//go:generate go tool enumer -type=Op -trimprefix=Op -transform=snake -output=gen_op_enumer.go registry.go

// Op names one kernel slot.
type Op int

// Kernel slots.
const (
	OpFill Op = iota
	OpEq
	OpNe
	OpLogicalAnd
	OpLogicalOr
	OpMaximum
	OpMinimum
	OpClamp
	OpClampScalar
	OpClampMinScalar
	OpClampMaxScalar
	OpIsInDefault
	OpCloseTolerance
	OpIsInf
	OpIsFinite
	OpIsPosInf
	OpIsNegInf
	OpWhere
	OpNonzero
	OpMax
	OpMin
	OpMode
)

const numDevices = int(tensor.WebGPU) + 1

// Stub is the kernel slot of one operation, holding one function of type F per device.
type Stub[F any] struct {
	op  Op
	fns [numDevices]F
	set [numDevices]bool
}

type slot interface {
	Op() Op
	Has(device tensor.Device) bool
}

var stubs []slot

// NewStub creates the slot for op. Stubs are created once, as package variables.
func NewStub[F any](op Op) *Stub[F] {
	s := &Stub[F]{op: op}
	stubs = append(stubs, s)
	return s
}

// Op returns the operation the stub serves.
func (s *Stub[F]) Op() Op {
	return s.op
}

// Register installs fn as the kernel for device. Registering twice is fatal.
func (s *Stub[F]) Register(device tensor.Device, fn F) {
	d := deviceIndex(s.op, device)
	if s.set[d] {
		exceptions.Panicf("dispatch: %s kernel for %s registered twice", s.op, device)
	}
	s.fns[d] = fn
	s.set[d] = true
}

// Get returns the kernel for device. A missing kernel is fatal.
func (s *Stub[F]) Get(device tensor.Device) F {
	d := deviceIndex(s.op, device)
	if !s.set[d] {
		exceptions.Panicf("dispatch: %s has no kernel registered for device %s", s.op, device)
	}
	return s.fns[d]
}

// Has reports whether a kernel is registered for device.
func (s *Stub[F]) Has(device tensor.Device) bool {
	d := int(device)
	return d >= 0 && d < numDevices && s.set[d]
}

func deviceIndex(op Op, device tensor.Device) int {
	d := int(device)
	if d < 0 || d >= numDevices {
		exceptions.Panicf("dispatch: %s called with unknown device %d", op, d)
	}
	return d
}

// Registered lists the operations with a kernel for device, in slot order.
func Registered(device tensor.Device) []Op {
	var ops []Op
	for _, s := range stubs {
		if s.Has(device) {
			ops = append(ops, s.Op())
		}
	}
	return ops
}
