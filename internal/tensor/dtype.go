// Package tensor provides the core tensor types for the comparison engine.
package tensor

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"
)

// Element is a constraint satisfied by the Go type backing every DataType.
type Element interface {
	bool | uint8 | int8 | int16 | int32 | int64 |
		float16.Float16 | bfloat16.BFloat16 | float32 | float64 |
		complex64 | complex128
}

// DataType represents runtime type information for tensors.
type DataType int

// Supported data types for tensors.
// The zero value Invalid doubles as "undefined" while promoting types.
const (
	Invalid DataType = iota
	Bool
	Uint8
	Int8
	Int16
	Int32
	Int64
	Float16
	BFloat16
	Float32
	Float64
	Complex64
	Complex128
)

// Size returns the byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Uint8, Int8:
		return 1
	case Int16, Float16, BFloat16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64, Complex64:
		return 8
	case Complex128:
		return 16
	default:
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Invalid:
		return "invalid"
	case Bool:
		return "bool"
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Float16:
		return "float16"
	case BFloat16:
		return "bfloat16"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Complex64:
		return "complex64"
	case Complex128:
		return "complex128"
	default:
		return "unknown"
	}
}

// ParseDataType returns the DataType with the given name.
func ParseDataType(name string) (DataType, error) {
	for dt := Bool; dt <= Complex128; dt++ {
		if dt.String() == name {
			return dt, nil
		}
	}
	switch name {
	case "half":
		return Float16, nil
	case "float":
		return Float32, nil
	case "double":
		return Float64, nil
	case "long":
		return Int64, nil
	case "int":
		return Int32, nil
	}
	return Invalid, InvalidArgumentf("unknown data type %q", name)
}

// IsFloating reports whether dt is a real floating point type.
func (dt DataType) IsFloating() bool {
	switch dt {
	case Float16, BFloat16, Float32, Float64:
		return true
	}
	return false
}

// IsComplex reports whether dt is a complex type.
func (dt DataType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// IsIntegral reports whether dt is an integer type, optionally counting Bool as one.
func (dt DataType) IsIntegral(includeBool bool) bool {
	switch dt {
	case Uint8, Int8, Int16, Int32, Int64:
		return true
	case Bool:
		return includeBool
	}
	return false
}

// IsHalf reports whether dt is one of the 16-bit floating point types.
func (dt DataType) IsHalf() bool {
	return dt == Float16 || dt == BFloat16
}

// ToReal returns the component type of a complex type, or dt itself otherwise.
func (dt DataType) ToReal() DataType {
	switch dt {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	}
	return dt
}

// ToComplex returns the complex type whose components have type dt.
func (dt DataType) ToComplex() DataType {
	if dt == Float64 || dt == Complex128 {
		return Complex128
	}
	return Complex64
}

// DefaultFloat returns the configured default floating point type.
func DefaultFloat() DataType {
	if defaultDTypeName() == "float64" {
		return Float64
	}
	return Float32
}

// DefaultComplex returns the complex type matching DefaultFloat.
func DefaultComplex() DataType {
	return DefaultFloat().ToComplex()
}

// CanCast reports whether values of type from may be written into an output of type to
// without a lossy change of category.
func CanCast(from, to DataType) bool {
	if from.IsComplex() && !to.IsComplex() {
		return false
	}
	if from.IsFloating() && to.IsIntegral(true) {
		return false
	}
	if from != Bool && to == Bool {
		return false
	}
	return true
}

// dataTypeOf returns the DataType backed by the Go type T.
func dataTypeOf[T Element]() DataType {
	var zero T
	switch any(zero).(type) {
	case bool:
		return Bool
	case uint8:
		return Uint8
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case float16.Float16:
		return Float16
	case bfloat16.BFloat16:
		return BFloat16
	case float32:
		return Float32
	case float64:
		return Float64
	case complex64:
		return Complex64
	case complex128:
		return Complex128
	default:
		panic("unsupported type")
	}
}
