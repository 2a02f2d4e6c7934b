package compare

import "github.com/born-ml/compare/internal/tensor"

// Overloads taking a dimension label instead of a position.

// MaxNamed is Max along the dimension labelled name.
func MaxNamed(self *tensor.RawTensor, name string, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	dim, err := dimension("max", self, name)
	if err != nil {
		return nil, nil, err
	}
	return Max(self, dim, keepDim)
}

// MaxNamedOut is MaxOut along the dimension labelled name.
func MaxNamedOut(self *tensor.RawTensor, name string, keepDim bool, values, indices *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	dim, err := dimension("max", self, name)
	if err != nil {
		return nil, nil, err
	}
	return MaxOut(self, dim, keepDim, values, indices)
}

// MinNamed is Min along the dimension labelled name.
func MinNamed(self *tensor.RawTensor, name string, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	dim, err := dimension("min", self, name)
	if err != nil {
		return nil, nil, err
	}
	return Min(self, dim, keepDim)
}

// MinNamedOut is MinOut along the dimension labelled name.
func MinNamedOut(self *tensor.RawTensor, name string, keepDim bool, values, indices *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	dim, err := dimension("min", self, name)
	if err != nil {
		return nil, nil, err
	}
	return MinOut(self, dim, keepDim, values, indices)
}

// ModeNamed is Mode along the dimension labelled name.
func ModeNamed(self *tensor.RawTensor, name string, keepDim bool) (values, indices *tensor.RawTensor, err error) {
	dim, err := dimension("mode", self, name)
	if err != nil {
		return nil, nil, err
	}
	return Mode(self, dim, keepDim)
}

// ModeNamedOut is ModeOut along the dimension labelled name.
func ModeNamedOut(self *tensor.RawTensor, name string, keepDim bool, values, indices *tensor.RawTensor) (*tensor.RawTensor, *tensor.RawTensor, error) {
	dim, err := dimension("mode", self, name)
	if err != nil {
		return nil, nil, err
	}
	return ModeOut(self, dim, keepDim, values, indices)
}

func dimension(op string, self *tensor.RawTensor, name string) (int, error) {
	dim, err := self.DimIndex(name)
	return dim, wrapOp(op, err)
}
