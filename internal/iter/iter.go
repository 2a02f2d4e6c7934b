// Package iter implements the elementwise execution contract shared by kernels.
//
// A Config collects outputs and inputs plus the promotion and casting rules of an
// operation. Build validates them, broadcasts the inputs, resolves the common dtype,
// and allocates or resizes outputs. Kernels then walk the Iterator with ForRange and
// Offset, and the caller collects results with Finish.
package iter

import (
	"github.com/born-ml/compare/internal/parallel"
	"github.com/born-ml/compare/internal/tensor"
)

// Config declares the operands and rules of an elementwise operation.
type Config struct {
	outputs []*tensor.RawTensor
	inputs  []*tensor.RawTensor

	promote        bool
	castToOutputs  bool
	enforceSafe    bool
	checkSameDType bool
	staticDType    tensor.DataType

	par    parallel.Config
	hasPar bool
}

// NewConfig returns an empty configuration.
func NewConfig() *Config {
	return &Config{}
}

// AddOutput registers an output. A nil output is allocated by Build.
// Outputs must be added before inputs.
func (c *Config) AddOutput(out *tensor.RawTensor) *Config {
	if len(c.inputs) > 0 {
		panic("iter: outputs must be added before inputs")
	}
	c.outputs = append(c.outputs, out)
	return c
}

// AddInput registers an input.
func (c *Config) AddInput(in *tensor.RawTensor) *Config {
	c.inputs = append(c.inputs, in)
	return c
}

// PromoteInputsToCommonDType casts every input to the promoted type of all inputs.
func (c *Config) PromoteInputsToCommonDType(v bool) *Config {
	c.promote = v
	return c
}

// CastCommonDTypeToOutputs lets defined outputs have a dtype other than the common one.
func (c *Config) CastCommonDTypeToOutputs(v bool) *Config {
	c.castToOutputs = v
	return c
}

// EnforceSafeCastingToOutput rejects outputs the common dtype cannot be safely cast to.
func (c *Config) EnforceSafeCastingToOutput(v bool) *Config {
	c.enforceSafe = v
	return c
}

// CheckAllSameDType requires every input to share the first input's dtype.
func (c *Config) CheckAllSameDType(v bool) *Config {
	c.checkSameDType = v
	return c
}

// DeclareStaticDType fixes the dtype of every output.
func (c *Config) DeclareStaticDType(dt tensor.DataType) *Config {
	c.staticDType = dt
	return c
}

// WithParallel overrides the environment's parallel configuration.
func (c *Config) WithParallel(p parallel.Config) *Config {
	c.par = p
	c.hasPar = true
	return c
}

type output struct {
	caller *tensor.RawTensor // returned by Finish
	work   *tensor.RawTensor // written by kernels
}

// Iterator is a validated, broadcast operand set ready for a kernel.
type Iterator struct {
	shape       tensor.Shape
	strides     []int
	numel       int
	commonDType tensor.DataType
	device      tensor.Device

	inputs        []*tensor.RawTensor
	inputStrides  [][]int
	inputIdentity []bool
	outputs       []output

	par parallel.Config
}

// Build validates the configuration and returns an Iterator.
// Nothing is allocated or resized when validation fails.
func (c *Config) Build() (*Iterator, error) {
	it := &Iterator{par: c.par}
	if !c.hasPar {
		it.par = parallel.DefaultConfig()
	}

	if err := c.checkDevices(it); err != nil {
		return nil, err
	}

	shapes := make([]tensor.Shape, 0, len(c.inputs))
	for _, in := range c.inputs {
		shapes = append(shapes, in.Shape())
	}
	if len(c.inputs) == 0 && len(c.outputs) > 0 && c.outputs[0] != nil {
		shapes = append(shapes, c.outputs[0].Shape())
	}
	shape, err := tensor.BroadcastShapes(shapes...)
	if err != nil {
		return nil, err
	}
	it.shape = shape
	it.strides = shape.ComputeStrides()
	it.numel = shape.NumElements()

	if err := c.resolveCommonDType(it); err != nil {
		return nil, err
	}
	if err := c.checkOutputs(it); err != nil {
		return nil, err
	}

	// Validation done, start materializing.
	for _, in := range c.inputs {
		dt := in.DType()
		if c.promote {
			dt = it.commonDType
		}
		in = tensor.Cast(in, computeType(dt))
		it.inputs = append(it.inputs, in)
		it.inputStrides = append(it.inputStrides, broadcastStrides(in.Shape(), shape))
		it.inputIdentity = append(it.inputIdentity, in.Shape().Equal(shape))
	}
	for _, out := range c.outputs {
		it.outputs = append(it.outputs, c.prepareOutput(it, out))
	}
	return it, nil
}

func (c *Config) checkDevices(it *Iterator) error {
	first := true
	check := func(r *tensor.RawTensor) error {
		if r == nil || (r.IsWrappedNumber() && r.Device() == tensor.CPU) {
			return nil
		}
		if first {
			it.device = r.Device()
			first = false
			return nil
		}
		if r.Device() != it.device {
			return tensor.InvalidArgumentf("expected all tensors to be on the same device, but found at least two devices, %s and %s",
				it.device, r.Device())
		}
		return nil
	}
	for _, r := range c.outputs {
		if err := check(r); err != nil {
			return err
		}
	}
	for _, r := range c.inputs {
		if err := check(r); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) resolveCommonDType(it *Iterator) error {
	switch {
	case c.promote:
		ops := make([]tensor.Operand, len(c.inputs))
		for i, in := range c.inputs {
			ops[i] = in
		}
		it.commonDType = tensor.ResultType(ops...)
	case len(c.inputs) > 0:
		it.commonDType = c.inputs[0].DType()
	case c.staticDType == tensor.Invalid && len(c.outputs) > 0 && c.outputs[0] != nil:
		it.commonDType = c.outputs[0].DType()
	default:
		it.commonDType = c.staticDType
	}

	if c.checkSameDType {
		for _, in := range c.inputs[min(1, len(c.inputs)):] {
			if want := c.inputs[0].DType(); in.DType() != want {
				return tensor.InvalidArgumentf("expected all inputs to have dtype %s, but got %s", want, in.DType())
			}
		}
	}
	return nil
}

func (c *Config) checkOutputs(it *Iterator) error {
	for _, out := range c.outputs {
		if out == nil {
			continue
		}
		if c.staticDType != tensor.Invalid {
			if out.DType() != c.staticDType {
				return tensor.InvalidArgumentf("expected out tensor to have dtype %s, but got %s instead", c.staticDType, out.DType())
			}
			continue
		}
		if out.DType() == it.commonDType {
			continue
		}
		if !c.castToOutputs {
			return tensor.InvalidArgumentf("expected out tensor to have dtype %s, but got %s instead", it.commonDType, out.DType())
		}
		if c.enforceSafe && !tensor.CanCast(it.commonDType, out.DType()) {
			return tensor.TypeErrorf("result type %s can't be cast to the desired output type %s", it.commonDType, out.DType())
		}
	}
	return nil
}

func (c *Config) prepareOutput(it *Iterator, out *tensor.RawTensor) output {
	dt := it.commonDType
	if c.staticDType != tensor.Invalid {
		dt = c.staticDType
	}
	if out == nil {
		out, _ = tensor.NewRaw(it.shape, dt, it.device)
	} else {
		tensor.ResizeOutput(out, it.shape)
	}

	work := out
	if want := computeType(dt); out.DType() != want {
		work = tensor.EmptyLike(out, want)
		// Aliased outputs may be read by the kernel before being written.
		work.CopyFrom(out)
	}
	return output{caller: out, work: work}
}

// computeType maps half precision types onto Float32, in which they are computed.
func computeType(dt tensor.DataType) tensor.DataType {
	if dt.IsHalf() {
		return tensor.Float32
	}
	return dt
}

// Shape returns the broadcast iteration shape.
func (it *Iterator) Shape() tensor.Shape { return it.shape }

// NumElements returns the number of elements visited.
func (it *Iterator) NumElements() int { return it.numel }

// CommonDType returns the promoted dtype of the inputs.
func (it *Iterator) CommonDType() tensor.DataType { return it.commonDType }

// DType returns the dtype kernels compute in: the common dtype with half types widened.
func (it *Iterator) DType() tensor.DataType { return computeType(it.commonDType) }

// Device returns the device all operands live on.
func (it *Iterator) Device() tensor.Device { return it.device }

// NumInputs returns the number of inputs.
func (it *Iterator) NumInputs() int { return len(it.inputs) }

// Input returns the k-th input, cast to its compute dtype.
func (it *Iterator) Input(k int) *tensor.RawTensor { return it.inputs[k] }

// Output returns the buffer kernels write the k-th output into.
func (it *Iterator) Output(k int) *tensor.RawTensor { return it.outputs[k].work }

// Offset maps the i-th position of the iteration onto the k-th input's storage.
// Outputs are contiguous in the iteration shape, so their offset is i itself.
func (it *Iterator) Offset(k, i int) int {
	if it.inputIdentity[k] {
		return i
	}
	return flatIndex(i, it.strides, it.inputStrides[k])
}

// ForRange calls f over disjoint ranges covering every position.
func (it *Iterator) ForRange(f func(start, end int)) {
	parallel.For(it.numel, f, it.par)
}

// Finish writes computed values back into caller-visible outputs and returns them.
func (it *Iterator) Finish() []*tensor.RawTensor {
	result := make([]*tensor.RawTensor, len(it.outputs))
	for k, out := range it.outputs {
		if out.work != out.caller {
			out.caller.CopyFrom(out.work)
		}
		result[k] = out.caller
	}
	return result
}
