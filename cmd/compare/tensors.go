package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/compare/tensor"
)

// tensorFlag is a tensor given on the command line as --<name> values and --<name>-shape dims.
type tensorFlag struct {
	name   string
	values []string
	shape  []int
}

// addTensorFlag registers the flags of a tensor operand on cmd.
func addTensorFlag(cmd *cobra.Command, name, usage string) *tensorFlag {
	f := &tensorFlag{name: name}
	cmd.Flags().StringSliceVar(&f.values, name, nil, usage+" (comma separated)")
	cmd.Flags().IntSliceVar(&f.shape, name+"-shape", nil, "Shape of --"+name+" (default: 1-D)")
	return f
}

// build creates the tensor with the given dtype. Without a shape the tensor is 1-D.
func (f *tensorFlag) build(dtype tensor.DataType) (*tensor.RawTensor, error) {
	if f.values == nil {
		return nil, errors.Errorf("--%s is required", f.name)
	}
	shape := tensor.Shape(f.shape)
	if f.shape == nil {
		shape = tensor.Shape{len(f.values)}
	}
	if shape.NumElements() != len(f.values) {
		return nil, errors.Errorf("--%s has %d values but --%s-shape %v holds %d", f.name, len(f.values), f.name, f.shape, shape.NumElements())
	}
	raw, err := tensor.NewRaw(shape, dtype, tensor.CPU)
	if err != nil {
		return nil, err
	}
	for i, s := range f.values {
		v, err := parseElement(s, dtype)
		if err != nil {
			return nil, errors.Wrapf(err, "--%s element %d", f.name, i)
		}
		raw.SetAt(i, v)
	}
	return raw, nil
}

// parseElement parses s as a value of dtype.
func parseElement(s string, dtype tensor.DataType) (tensor.Scalar, error) {
	s = strings.TrimSpace(s)
	switch {
	case dtype == tensor.Bool:
		b, err := strconv.ParseBool(s)
		return tensor.BoolScalar(b), err
	case dtype.IsComplex():
		c, err := strconv.ParseComplex(s, 128)
		return tensor.Complex(c), err
	case dtype.IsFloating():
		v, err := strconv.ParseFloat(s, 64)
		return tensor.Float(v), err
	default:
		v, err := strconv.ParseInt(s, 10, 64)
		return tensor.Int(v), err
	}
}

// parseScalar parses a literal, taking its kind from its spelling:
// "2" is integral, "2.0", "nan" and "inf" are floating, "true" is boolean and "1+2i" complex.
func parseScalar(s string) (tensor.Scalar, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return tensor.Int(v), nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return tensor.Float(v), nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return tensor.BoolScalar(b), nil
	}
	if c, err := strconv.ParseComplex(s, 128); err == nil {
		return tensor.Complex(c), nil
	}
	return tensor.Scalar{}, errors.Errorf("invalid scalar %q", s)
}

// dtypeFlag reads the --dtype flag of cmd.
func dtypeFlag(cmd *cobra.Command) (tensor.DataType, error) {
	name, err := cmd.Flags().GetString("dtype")
	if err != nil {
		return tensor.Invalid, err
	}
	return tensor.ParseDataType(name)
}
