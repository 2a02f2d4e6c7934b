package tensor

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"
)

// Device represents the compute device for tensor operations.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	CUDA
	Vulkan
	Metal
	WebGPU
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case CUDA:
		return "CUDA"
	case Vulkan:
		return "Vulkan"
	case Metal:
		return "Metal"
	case WebGPU:
		return "WebGPU"
	default:
		return "Unknown"
	}
}

// Layout describes how a tensor's elements are stored.
type Layout int

const (
	// Strided is the dense row-major layout every kernel understands.
	Strided Layout = iota
	// Sparse marks tensors holding indices and values. Only carried as a tag.
	Sparse
)

func (l Layout) String() string {
	if l == Sparse {
		return "sparse"
	}
	return "strided"
}

// tensorBuffer is a reference-counted shared buffer for Copy-on-Write semantics.
type tensorBuffer struct {
	data     []byte
	refCount atomic.Int32
	mu       sync.Mutex // For safe deallocation
}

func newTensorBuffer(size int) *tensorBuffer {
	buf := &tensorBuffer{
		data: make([]byte, size),
	}
	buf.refCount.Store(1)
	return buf
}

func (tb *tensorBuffer) addRef() {
	tb.refCount.Add(1)
}

func (tb *tensorBuffer) release() {
	if tb.refCount.Add(-1) == 0 {
		tb.mu.Lock()
		defer tb.mu.Unlock()
		tb.data = nil
	}
}

func (tb *tensorBuffer) isUnique() bool {
	return tb.refCount.Load() == 1
}

// RawTensor is the low-level tensor representation.
// It uses reference-counted shared buffers, so Clone borrows and NewRaw owns.
type RawTensor struct {
	buffer        *tensorBuffer // Shared reference-counted buffer
	shape         Shape         // Tensor dimensions
	stride        []int         // Memory strides (row-major)
	dtype         DataType      // Runtime type information
	device        Device        // Compute device
	layout        Layout        // Storage layout tag
	names         []string      // Optional dimension labels, "" for unnamed
	wrappedNumber bool          // 0-d tensor built from a Scalar; promotes like one
}

// NewRaw creates a new RawTensor with the given shape and type.
// Memory is allocated and zeroed.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if dtype == Invalid {
		return nil, InvalidArgumentf("cannot allocate a tensor of type %s", dtype)
	}

	return &RawTensor{
		buffer: newTensorBuffer(shape.NumElements() * dtype.Size()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
		dtype:  dtype,
		device: device,
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// DType returns the tensor's data type.
func (r *RawTensor) DType() DataType {
	return r.dtype
}

// Device returns the tensor's compute device.
func (r *RawTensor) Device() Device {
	return r.device
}

// Layout returns the tensor's storage layout.
func (r *RawTensor) Layout() Layout {
	return r.layout
}

// Dim returns the number of dimensions.
func (r *RawTensor) Dim() int {
	return len(r.shape)
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (r *RawTensor) ByteSize() int {
	return r.NumElements() * r.dtype.Size()
}

// IsWrappedNumber reports whether r is a 0-d tensor standing in for a Scalar.
func (r *RawTensor) IsWrappedNumber() bool {
	return r.wrappedNumber
}

// Bytes returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (r *RawTensor) Bytes() []byte {
	return r.buffer.data
}

// Data interprets the tensor's memory as []T without copying.
// Panics if T does not back the tensor's dtype. Empty tensors yield a nil slice.
func Data[T Element](r *RawTensor) []T {
	if dt := dataTypeOf[T](); dt != r.dtype {
		panic(fmt.Sprintf("tensor dtype is %s, not %s", r.dtype, dt))
	}
	n := r.NumElements()
	if n == 0 {
		return nil
	}
	//nolint:gosec // unsafe.Slice for zero-copy performance, bounds checked by NumElements()
	return unsafe.Slice((*T)(unsafe.Pointer(&r.buffer.data[0])), n)
}

// AsFloat32 interprets the data as []float32.
func (r *RawTensor) AsFloat32() []float32 { return Data[float32](r) }

// AsFloat64 interprets the data as []float64.
func (r *RawTensor) AsFloat64() []float64 { return Data[float64](r) }

// AsInt32 interprets the data as []int32.
func (r *RawTensor) AsInt32() []int32 { return Data[int32](r) }

// AsInt64 interprets the data as []int64.
func (r *RawTensor) AsInt64() []int64 { return Data[int64](r) }

// AsUint8 interprets the data as []uint8.
func (r *RawTensor) AsUint8() []uint8 { return Data[uint8](r) }

// AsBool interprets the data as []bool.
func (r *RawTensor) AsBool() []bool { return Data[bool](r) }

// At returns the i-th element in row-major order.
func (r *RawTensor) At(i int) Scalar {
	switch r.dtype {
	case Bool:
		return BoolScalar(Data[bool](r)[i])
	case Uint8:
		return Int(int64(Data[uint8](r)[i]))
	case Int8:
		return Int(int64(Data[int8](r)[i]))
	case Int16:
		return Int(int64(Data[int16](r)[i]))
	case Int32:
		return Int(int64(Data[int32](r)[i]))
	case Int64:
		return Int(Data[int64](r)[i])
	case Float16:
		return Float(float64(Data[float16.Float16](r)[i].Float32()))
	case BFloat16:
		return Float(float64(Data[bfloat16.BFloat16](r)[i].Float32()))
	case Float32:
		return Float(float64(Data[float32](r)[i]))
	case Float64:
		return Float(Data[float64](r)[i])
	case Complex64:
		return Complex(complex128(Data[complex64](r)[i]))
	case Complex128:
		return Complex(Data[complex128](r)[i])
	}
	panic(fmt.Sprintf("unsupported dtype %s", r.dtype))
}

// SetAt converts v to the tensor's dtype and stores it as the i-th element.
func (r *RawTensor) SetAt(i int, v Scalar) {
	switch r.dtype {
	case Bool:
		Data[bool](r)[i] = ScalarAs[bool](v)
	case Uint8:
		Data[uint8](r)[i] = ScalarAs[uint8](v)
	case Int8:
		Data[int8](r)[i] = ScalarAs[int8](v)
	case Int16:
		Data[int16](r)[i] = ScalarAs[int16](v)
	case Int32:
		Data[int32](r)[i] = ScalarAs[int32](v)
	case Int64:
		Data[int64](r)[i] = ScalarAs[int64](v)
	case Float16:
		Data[float16.Float16](r)[i] = ScalarAs[float16.Float16](v)
	case BFloat16:
		Data[bfloat16.BFloat16](r)[i] = ScalarAs[bfloat16.BFloat16](v)
	case Float32:
		Data[float32](r)[i] = ScalarAs[float32](v)
	case Float64:
		Data[float64](r)[i] = ScalarAs[float64](v)
	case Complex64:
		Data[complex64](r)[i] = ScalarAs[complex64](v)
	case Complex128:
		Data[complex128](r)[i] = ScalarAs[complex128](v)
	default:
		panic(fmt.Sprintf("unsupported dtype %s", r.dtype))
	}
}

// Item returns the only element of a one-element tensor.
func (r *RawTensor) Item() (Scalar, error) {
	if r.NumElements() != 1 {
		return Scalar{}, InvalidArgumentf("a tensor with %d elements cannot be converted to a scalar", r.NumElements())
	}
	return r.At(0), nil
}

// Clone creates a shallow copy of the RawTensor (shares buffer with reference counting).
func (r *RawTensor) Clone() *RawTensor {
	r.buffer.addRef()
	return &RawTensor{
		buffer:        r.buffer,
		shape:         r.shape.Clone(),
		stride:        append([]int(nil), r.stride...),
		dtype:         r.dtype,
		device:        r.device,
		layout:        r.layout,
		names:         append([]string(nil), r.names...),
		wrappedNumber: r.wrappedNumber,
	}
}

// WithLayout returns a view of r tagged with layout l.
func (r *RawTensor) WithLayout(l Layout) *RawTensor {
	v := r.Clone()
	v.layout = l
	return v
}

// View returns a view of r with a new shape holding the same number of elements.
func (r *RawTensor) View(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if shape.NumElements() != r.NumElements() {
		return nil, InvalidArgumentf("shape %v is invalid for input of size %d", shape, r.NumElements())
	}
	v := r.Clone()
	v.shape = shape.Clone()
	v.stride = shape.ComputeStrides()
	v.names = nil
	v.wrappedNumber = false
	return v, nil
}

// SameStorage reports whether r and other share one buffer. It detects in-place calls.
func (r *RawTensor) SameStorage(other *RawTensor) bool {
	return r != nil && other != nil && r.buffer == other.buffer
}

// Release decrements the reference count and deallocates if it reaches 0.
func (r *RawTensor) Release() {
	r.buffer.release()
}

// IsUnique returns true if this tensor is the only reference to the buffer.
func (r *RawTensor) IsUnique() bool {
	return r.buffer.isUnique()
}

// String formats the tensor as its flattened values with dtype and shape.
func (r *RawTensor) String() string {
	var sb strings.Builder
	sb.WriteString("tensor([")
	for i := range r.NumElements() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.At(i).String())
	}
	fmt.Fprintf(&sb, "], dtype=%s, shape=%v)", r.dtype, []int(r.shape))
	return sb.String()
}
