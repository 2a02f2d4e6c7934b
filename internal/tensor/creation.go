package tensor

// FromSlice creates a CPU tensor holding a copy of data with the given shape.
//
// Example:
//
//	t, err := tensor.FromSlice([]float32{1, 2, 3, 4}, Shape{2, 2})
func FromSlice[T Element](data []T, shape Shape) (*RawTensor, error) {
	return FromSliceOn(data, shape, CPU)
}

// FromSliceOn is FromSlice with an explicit device tag.
func FromSliceOn[T Element](data []T, shape Shape, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != len(data) {
		return nil, InvalidArgumentf("data length %d doesn't match shape %v (%d elements)", len(data), shape, shape.NumElements())
	}
	raw, err := NewRaw(shape, dataTypeOf[T](), device)
	if err != nil {
		return nil, err
	}
	copy(Data[T](raw), data)
	return raw, nil
}

// Zeros creates a zero-filled tensor.
func Zeros(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return NewRaw(shape, dtype, device)
}

// Full creates a tensor of the given dtype with every element set to v.
//
// Example:
//
//	t, err := tensor.Full(Shape{3, 3}, Float32, CPU, tensor.Float(3.14))
func Full(shape Shape, dtype DataType, device Device, v Scalar) (*RawTensor, error) {
	raw, err := NewRaw(shape, dtype, device)
	if err != nil {
		return nil, err
	}
	raw.Fill(v)
	return raw, nil
}

// Fill sets every element of r to v converted to r's dtype.
func (r *RawTensor) Fill(v Scalar) {
	n := r.NumElements()
	if n == 0 {
		return
	}
	r.SetAt(0, v)
	size := r.dtype.Size()
	data := r.buffer.data
	// Doubling copy of the first element.
	for filled := size; filled < n*size; filled *= 2 {
		copy(data[filled:n*size], data[:filled])
	}
}

// ScalarTensor creates a 0-d tensor of the given dtype holding v.
func ScalarTensor(v Scalar, dtype DataType, device Device) *RawTensor {
	raw, err := Full(Shape{}, dtype, device, v)
	if err != nil {
		panic(err)
	}
	return raw
}

// WrappedScalar creates a 0-d tensor holding v that promotes like the Scalar itself.
// The value is stored at full width, so casting it to the promoted type rounds only once.
func WrappedScalar(v Scalar, device Device) *RawTensor {
	raw := ScalarTensor(v, v.wideDType(), device)
	raw.wrappedNumber = true
	return raw
}

// EmptyLike allocates a zeroed tensor with r's shape and device and the given dtype.
func EmptyLike(r *RawTensor, dtype DataType) *RawTensor {
	raw, err := NewRaw(r.shape, dtype, r.device)
	if err != nil {
		panic(err)
	}
	return raw
}
