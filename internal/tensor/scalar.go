package tensor

import (
	"fmt"
	"math"
	"math/cmplx"
	"strconv"

	"github.com/gomlx/gopjrt/dtypes/bfloat16"
	"github.com/x448/float16"
)

// ScalarKind is the category of a Scalar.
type ScalarKind uint8

// Scalar kinds, in promotion order.
const (
	KindBool ScalarKind = iota
	KindIntegral
	KindFloating
	KindComplex
)

// Scalar is a single numeric value tagged with its kind.
// It promotes exactly like a zero-dimensional tensor would, without allocating one.
type Scalar struct {
	kind ScalarKind
	b    bool
	i    int64
	f    float64
	c    complex128
}

// BoolScalar returns a boolean Scalar.
func BoolScalar(v bool) Scalar { return Scalar{kind: KindBool, b: v} }

// Int returns an integral Scalar.
func Int(v int64) Scalar { return Scalar{kind: KindIntegral, i: v} }

// Float returns a floating point Scalar.
func Float(v float64) Scalar { return Scalar{kind: KindFloating, f: v} }

// Complex returns a complex Scalar.
func Complex(v complex128) Scalar { return Scalar{kind: KindComplex, c: v} }

// Kind returns the scalar's category.
func (v Scalar) Kind() ScalarKind { return v.kind }

// IsComplex reports whether the scalar is complex.
func (v Scalar) IsComplex() bool { return v.kind == KindComplex }

// IsFloating reports whether the scalar is a real floating point value.
func (v Scalar) IsFloating() bool { return v.kind == KindFloating }

// IsBool reports whether the scalar is a boolean.
func (v Scalar) IsBool() bool { return v.kind == KindBool }

// IsNaN reports whether the scalar is not a number. Only floating and complex scalars can be.
func (v Scalar) IsNaN() bool {
	switch v.kind {
	case KindFloating:
		return math.IsNaN(v.f)
	case KindComplex:
		return cmplx.IsNaN(v.c)
	}
	return false
}

// DType returns the type a tensor built from the scalar gets.
func (v Scalar) DType() DataType {
	switch v.kind {
	case KindBool:
		return Bool
	case KindIntegral:
		return Int64
	case KindFloating:
		return DefaultFloat()
	default:
		return DefaultComplex()
	}
}

// AsFloat64 returns the value as a float64. Complex values lose their imaginary part.
func (v Scalar) AsFloat64() float64 {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindIntegral:
		return float64(v.i)
	case KindFloating:
		return v.f
	default:
		return real(v.c)
	}
}

// AsInt64 returns the value truncated to an int64.
func (v Scalar) AsInt64() int64 {
	switch v.kind {
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindIntegral:
		return v.i
	case KindFloating:
		return int64(v.f)
	default:
		return int64(real(v.c))
	}
}

// AsComplex128 returns the value as a complex128.
func (v Scalar) AsComplex128() complex128 {
	if v.kind == KindComplex {
		return v.c
	}
	return complex(v.AsFloat64(), 0)
}

// AsBool returns whether the value is non-zero.
func (v Scalar) AsBool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindIntegral:
		return v.i != 0
	case KindFloating:
		return v.f != 0
	default:
		return v.c != 0
	}
}

// String implements fmt.Stringer.
func (v Scalar) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindIntegral:
		return strconv.FormatInt(v.i, 10)
	case KindFloating:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	default:
		return fmt.Sprint(v.c)
	}
}

// wideDType is the widest type of the scalar's kind, which holds its value exactly.
func (v Scalar) wideDType() DataType {
	switch v.kind {
	case KindBool:
		return Bool
	case KindIntegral:
		return Int64
	case KindFloating:
		return Float64
	default:
		return Complex128
	}
}

// FitsIn reports whether the scalar converts to dt without overflow.
// Non-finite values fit every floating type; rounding is not overflow.
func (v Scalar) FitsIn(dt DataType) bool {
	if v.kind == KindBool || dt == Bool || dt.IsComplex() {
		return true
	}
	if dt.IsIntegral(false) {
		lo, hi := integralRange(dt)
		if v.kind == KindIntegral {
			return v.i >= lo && v.i <= hi
		}
		// Truncation toward zero keeps anything strictly inside (lo-1, hi+1).
		f := v.AsFloat64()
		return f > float64(lo)-1 && f < float64(hi)+1
	}
	f := v.AsFloat64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return true
	}
	return math.Abs(f) <= floatMax(dt)
}

func integralRange(dt DataType) (lo, hi int64) {
	switch dt {
	case Uint8:
		return 0, math.MaxUint8
	case Int8:
		return math.MinInt8, math.MaxInt8
	case Int16:
		return math.MinInt16, math.MaxInt16
	case Int32:
		return math.MinInt32, math.MaxInt32
	default:
		return math.MinInt64, math.MaxInt64
	}
}

func floatMax(dt DataType) float64 {
	switch dt {
	case Float16:
		return 65504
	case BFloat16:
		return float64(bfloat16.FromBits(0x7f7f).Float32())
	case Float32:
		return math.MaxFloat32
	default:
		return math.MaxFloat64
	}
}

// ScalarAs converts a Scalar to the Go type T.
func ScalarAs[T Element](v Scalar) T {
	var out T
	switch p := any(&out).(type) {
	case *bool:
		*p = v.AsBool()
	case *uint8:
		*p = uint8(v.AsInt64())
	case *int8:
		*p = int8(v.AsInt64())
	case *int16:
		*p = int16(v.AsInt64())
	case *int32:
		*p = int32(v.AsInt64())
	case *int64:
		*p = v.AsInt64()
	case *float16.Float16:
		*p = float16.Fromfloat32(float32(v.AsFloat64()))
	case *bfloat16.BFloat16:
		*p = bfloat16.FromFloat32(float32(v.AsFloat64()))
	case *float32:
		*p = float32(v.AsFloat64())
	case *float64:
		*p = v.AsFloat64()
	case *complex64:
		*p = complex64(v.AsComplex128())
	case *complex128:
		*p = v.AsComplex128()
	}
	return out
}

// ScalarOf wraps a Go value of type T in a Scalar of the matching kind.
func ScalarOf[T Element](x T) Scalar {
	switch v := any(x).(type) {
	case bool:
		return BoolScalar(v)
	case uint8:
		return Int(int64(v))
	case int8:
		return Int(int64(v))
	case int16:
		return Int(int64(v))
	case int32:
		return Int(int64(v))
	case int64:
		return Int(v)
	case float16.Float16:
		return Float(float64(v.Float32()))
	case bfloat16.BFloat16:
		return Float(float64(v.Float32()))
	case float32:
		return Float(float64(v))
	case float64:
		return Float(v)
	case complex64:
		return Complex(complex128(v))
	case complex128:
		return Complex(v)
	}
	panic("unsupported type")
}
