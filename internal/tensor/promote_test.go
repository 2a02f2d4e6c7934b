package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromoteTypes(t *testing.T) {
	tests := []struct {
		a, b, want DataType
	}{
		{Bool, Bool, Bool},
		{Bool, Uint8, Uint8},
		{Uint8, Int8, Int16},
		{Uint8, Int32, Int32},
		{Int16, Int64, Int64},
		{Int64, Float16, Float16},
		{Float16, BFloat16, Float32},
		{Float32, Float64, Float64},
		{Int64, Complex64, Complex64},
		{Float64, Complex64, Complex128},
		{Invalid, Int8, Int8},
	}
	for _, tt := range tests {
		t.Run(tt.a.String()+"_"+tt.b.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, PromoteTypes(tt.a, tt.b))
			assert.Equal(t, tt.want, PromoteTypes(tt.b, tt.a), "promotion must be symmetric")
		})
	}
}

func TestResultType(t *testing.T) {
	i32, _ := NewRaw(Shape{3}, Int32, CPU)
	u8, _ := NewRaw(Shape{3}, Uint8, CPU)
	f16, _ := NewRaw(Shape{3}, Float16, CPU)
	f64zero, _ := NewRaw(Shape{}, Float64, CPU)
	i64zero, _ := NewRaw(Shape{}, Int64, CPU)

	tests := []struct {
		name     string
		operands []Operand
		want     DataType
	}{
		{"int scalar keeps tensor type", []Operand{i32, Int(5)}, Int32},
		{"float scalar lifts to default float", []Operand{i32, Float(0.5)}, Float32},
		{"float scalar keeps half tensor", []Operand{f16, Float(0.5)}, Float16},
		{"zero-dim float lifts integral", []Operand{i32, f64zero}, Float64},
		{"zero-dim int does not widen", []Operand{u8, i64zero}, Uint8},
		{"complex scalar", []Operand{f16, Complex(1i)}, Complex64},
		{"wrapped bool and int scalar", []Operand{WrappedScalar(BoolScalar(true), CPU), Int(1)}, Int64},
		{"nil operands ignored", []Operand{i32, (*RawTensor)(nil)}, Int32},
		{"wrapped number promotes like a scalar", []Operand{u8, WrappedScalar(Int(300), CPU)}, Uint8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResultType(tt.operands...))
		})
	}
}

func TestResultTypeDefaultFloat64(t *testing.T) {
	t.Setenv("COMPARE_DEFAULT_DTYPE", "float64")
	i32, _ := NewRaw(Shape{3}, Int32, CPU)
	assert.Equal(t, Float64, ResultType(i32, Float(1)))
	assert.Equal(t, Complex128, ResultType(i32, Complex(1)))
}

func TestCanCast(t *testing.T) {
	assert.True(t, CanCast(Int64, Float32))
	assert.True(t, CanCast(Bool, Uint8))
	assert.False(t, CanCast(Float32, Int64))
	assert.False(t, CanCast(Complex64, Float64))
	assert.False(t, CanCast(Int8, Bool))
}

func TestParseDataType(t *testing.T) {
	for _, name := range []string{"bool", "uint8", "int64", "bfloat16", "complex128"} {
		dt, err := ParseDataType(name)
		assert.NoError(t, err)
		assert.Equal(t, name, dt.String())
	}
	dt, err := ParseDataType("double")
	assert.NoError(t, err)
	assert.Equal(t, Float64, dt)

	_, err = ParseDataType("quaternion")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
