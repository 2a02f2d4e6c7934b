package tensor

// Cast returns r converted to dtype. When r already has that dtype it is returned as is.
func Cast(r *RawTensor, dtype DataType) *RawTensor {
	if r.dtype == dtype {
		return r
	}
	out, err := NewRaw(r.shape, dtype, r.device)
	if err != nil {
		panic(err)
	}
	out.names = append([]string(nil), r.names...)
	out.wrappedNumber = r.wrappedNumber
	out.CopyFrom(r)
	return out
}

// CopyFrom writes src's elements into r in row-major order, converting to r's dtype.
// Both tensors must hold the same number of elements.
func (r *RawTensor) CopyFrom(src *RawTensor) {
	n := r.NumElements()
	if src.NumElements() != n {
		panic(InvalidArgumentf("copy: %d elements into %d", src.NumElements(), n))
	}
	if src.dtype == r.dtype {
		copy(r.buffer.data[:n*r.dtype.Size()], src.buffer.data)
		return
	}
	for i := range n {
		r.SetAt(i, src.At(i))
	}
}

// Real returns the real part of a complex tensor as a new tensor of the component type.
func Real(r *RawTensor) *RawTensor {
	return complexPart(r, func(c complex128) float64 { return real(c) })
}

// Imag returns the imaginary part of a complex tensor as a new tensor of the component type.
func Imag(r *RawTensor) *RawTensor {
	return complexPart(r, func(c complex128) float64 { return imag(c) })
}

func complexPart(r *RawTensor, part func(complex128) float64) *RawTensor {
	if !r.dtype.IsComplex() {
		panic(TypeErrorf("expected a complex tensor, got %s", r.dtype))
	}
	out, err := NewRaw(r.shape, r.dtype.ToReal(), r.device)
	if err != nil {
		panic(err)
	}
	for i := range r.NumElements() {
		out.SetAt(i, Float(part(r.At(i).AsComplex128())))
	}
	return out
}
