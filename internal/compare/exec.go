package compare

import (
	"github.com/born-ml/compare/internal/dispatch"
	"github.com/born-ml/compare/internal/iter"
	"github.com/born-ml/compare/internal/tensor"
)

// run builds cfg, hands the iterator to kernel and returns the first caller-visible output.
func run(op string, cfg *iter.Config, kernel func(it *iter.Iterator)) (*tensor.RawTensor, error) {
	it, err := cfg.Build()
	if err != nil {
		return nil, wrapOp(op, err)
	}
	kernel(it)
	return it.Finish()[0], nil
}

// elementwise runs the kernel registered in stub for the operands' device.
func elementwise(op string, stub *dispatch.Stub[dispatch.ElementwiseFn], cfg *iter.Config) (*tensor.RawTensor, error) {
	return run(op, cfg, func(it *iter.Iterator) {
		stub.Get(it.Device())(it)
	})
}

// predicate runs a comparison stub over promoted inputs into a Bool output.
func predicate(op string, stub *dispatch.Stub[dispatch.ElementwiseFn], out *tensor.RawTensor, inputs ...*tensor.RawTensor) (*tensor.RawTensor, error) {
	cfg := iter.NewConfig().AddOutput(out).PromoteInputsToCommonDType(true).DeclareStaticDType(tensor.Bool)
	for _, in := range inputs {
		cfg.AddInput(in)
	}
	return elementwise(op, stub, cfg)
}

func eq(op string, a, b, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return predicate(op, dispatch.Eq, out, a, b)
}

func ne(op string, a, b, out *tensor.RawTensor) (*tensor.RawTensor, error) {
	return predicate(op, dispatch.Ne, out, a, b)
}

func logicalAnd(op string, a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return elementwise(op, dispatch.LogicalAnd, iter.NewConfig().AddOutput(nil).AddInput(a).AddInput(b))
}

func logicalOr(op string, a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return elementwise(op, dispatch.LogicalOr, iter.NewConfig().AddOutput(nil).AddInput(a).AddInput(b))
}

// fill writes v into every element of the planned output.
func fill(op string, desc OutputDescriptor, out *tensor.RawTensor, v tensor.Scalar) (*tensor.RawTensor, error) {
	out = desc.allocate(out)
	return run(op, iter.NewConfig().AddOutput(out), func(it *iter.Iterator) {
		dispatch.Fill.Get(it.Device())(it, v)
	})
}
