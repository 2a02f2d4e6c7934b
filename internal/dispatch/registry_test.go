package dispatch

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/compare/internal/tensor"
)

func TestStubRegisterAndGet(t *testing.T) {
	s := &Stub[func() int]{op: OpMode}
	assert.False(t, s.Has(tensor.CPU))

	s.Register(tensor.CPU, func() int { return 7 })
	require.True(t, s.Has(tensor.CPU))
	assert.Equal(t, 7, s.Get(tensor.CPU)())
	assert.False(t, s.Has(tensor.Metal))
}

func TestStubMissingKernelIsFatal(t *testing.T) {
	s := &Stub[func()]{op: OpWhere}
	err := exceptions.TryCatch[error](func() { s.Get(tensor.CUDA) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "where has no kernel registered for device CUDA")
}

func TestStubDuplicateRegistrationIsFatal(t *testing.T) {
	s := &Stub[func()]{op: OpFill}
	s.Register(tensor.CPU, func() {})
	err := exceptions.TryCatch[error](func() { s.Register(tensor.CPU, func() {}) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registered twice")
}

func TestOpNames(t *testing.T) {
	assert.Equal(t, "clamp_min_scalar", OpClampMinScalar.String())
	assert.Equal(t, "is_in_default", OpIsInDefault.String())
	op, err := OpString("logical_or")
	require.NoError(t, err)
	assert.Equal(t, OpLogicalOr, op)
	assert.Len(t, OpValues(), len(stubs))
	assert.Equal(t, "Op(99)", Op(99).String())
}

func TestStubsCoverEveryOp(t *testing.T) {
	for i, s := range stubs {
		assert.Equal(t, Op(i), s.Op(), "stubs are declared in slot order")
	}
}
