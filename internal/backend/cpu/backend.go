// Package cpu implements the CPU kernels of every comparison and selection operation.
package cpu

import (
	"github.com/born-ml/compare/internal/dispatch"
	"github.com/born-ml/compare/internal/iter"
	"github.com/born-ml/compare/internal/tensor"
)

// CPUBackend registers the CPU kernels into the dispatch table.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Kernels lists the operations with a registered kernel for this backend's device.
func (cpu *CPUBackend) Kernels() []dispatch.Op {
	return dispatch.Registered(cpu.device)
}

func init() {
	New().register()
}

// register installs every CPU kernel. It runs once, from init.
func (cpu *CPUBackend) register() {
	d := cpu.device
	dispatch.Fill.Register(d, fillKernel)
	dispatch.Eq.Register(d, eqKernel)
	dispatch.Ne.Register(d, neKernel)
	dispatch.LogicalAnd.Register(d, logicalAndKernel)
	dispatch.LogicalOr.Register(d, logicalOrKernel)
	dispatch.Maximum.Register(d, maximumKernel)
	dispatch.Minimum.Register(d, minimumKernel)
	dispatch.Clamp.Register(d, clampKernel)
	dispatch.ClampScalar.Register(d, clampScalarKernel)
	dispatch.ClampMinScalar.Register(d, clampMinScalarKernel)
	dispatch.ClampMaxScalar.Register(d, clampMaxScalarKernel)
	dispatch.IsInDefault.Register(d, isInKernel)
	dispatch.CloseTolerance.Register(d, closeToleranceKernel)
	dispatch.IsInf.Register(d, isInfKernel)
	dispatch.IsFinite.Register(d, isFiniteKernel)
	dispatch.IsPosInf.Register(d, isPosInfKernel)
	dispatch.IsNegInf.Register(d, isNegInfKernel)
	dispatch.Where.Register(d, whereKernel)
	dispatch.Nonzero.Register(d, nonzeroKernel)
	dispatch.Max.Register(d, maxKernel)
	dispatch.Min.Register(d, minKernel)
	dispatch.Mode.Register(d, modeKernel)
}

// fillKernel writes v into the iterator's only output.
func fillKernel(it *iter.Iterator, v tensor.Scalar) {
	out := it.Output(0)
	it.ForRange(func(start, end int) {
		for i := start; i < end; i++ {
			out.SetAt(i, v)
		}
	})
}
