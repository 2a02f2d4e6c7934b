package tensor

import "github.com/born-ml/compare/internal/config"

var defaultDTypeName = config.DefaultDType

// PromoteTypes returns the smallest type both a and b can be represented in.
//
// Bool < unsigned < signed integral < floating < complex. Invalid acts as "undefined"
// and is absorbed by the other operand.
func PromoteTypes(a, b DataType) DataType {
	switch {
	case a == Invalid:
		return b
	case b == Invalid, a == b:
		return a
	case a == Bool:
		return b
	case b == Bool:
		return a
	}

	if a.IsComplex() || b.IsComplex() {
		if a == Complex128 || b == Complex128 || a == Float64 || b == Float64 {
			return Complex128
		}
		return Complex64
	}

	if a.IsFloating() && b.IsFloating() {
		if a == Float64 || b == Float64 {
			return Float64
		}
		// Float16 and BFloat16 only meet in Float32.
		return Float32
	}
	if a.IsFloating() {
		return a
	}
	if b.IsFloating() {
		return b
	}

	// Both integral.
	if a == Uint8 || b == Uint8 {
		other := b
		if b == Uint8 {
			other = a
		}
		if other == Int8 {
			return Int16
		}
		return other
	}
	if a.Size() >= b.Size() {
		return a
	}
	return b
}

// Operand is a value taking part in type promotion: a *RawTensor or a Scalar.
type Operand interface {
	updateState(s ResultTypeState) ResultTypeState
}

// ResultTypeState accumulates promotion across operands in three categories:
// tensors with dimensions, zero-dimensional tensors, and wrapped numbers (scalars).
// Higher categories win unless a lower one belongs to a higher kind.
type ResultTypeState struct {
	dimResult     DataType
	zeroResult    DataType
	wrappedResult DataType
}

// Update folds one operand into the state. Nil operands are ignored.
func (s ResultTypeState) Update(op Operand) ResultTypeState {
	if op == nil {
		return s
	}
	return op.updateState(s)
}

// Result returns the promoted type of every operand folded so far.
func (s ResultTypeState) Result() DataType {
	return combineCategories(s.dimResult, combineCategories(s.zeroResult, s.wrappedResult))
}

func combineCategories(higher, lower DataType) DataType {
	if higher.IsComplex() {
		return higher
	}
	if !lower.IsComplex() && higher.IsFloating() {
		return higher
	}
	if higher == Bool || lower.IsFloating() || lower.IsComplex() {
		return PromoteTypes(higher, lower)
	}
	if higher != Invalid {
		return higher
	}
	return lower
}

// wrappedType maps the dtype of a wrapped number onto the default type of its kind.
func wrappedType(dt DataType) DataType {
	switch {
	case dt.IsComplex():
		return DefaultComplex()
	case dt.IsFloating():
		return DefaultFloat()
	}
	return dt
}

func (r *RawTensor) updateState(s ResultTypeState) ResultTypeState {
	if r == nil {
		return s
	}
	current := r.dtype
	switch {
	case r.wrappedNumber:
		s.wrappedResult = PromoteTypes(s.wrappedResult, wrappedType(current))
	case r.Dim() == 0:
		s.zeroResult = PromoteTypes(s.zeroResult, current)
	default:
		s.dimResult = PromoteTypes(s.dimResult, current)
	}
	return s
}

func (v Scalar) updateState(s ResultTypeState) ResultTypeState {
	s.wrappedResult = PromoteTypes(s.wrappedResult, wrappedType(v.DType()))
	return s
}

// ResultType returns the promoted type of the given operands.
func ResultType(operands ...Operand) DataType {
	var state ResultTypeState
	for _, op := range operands {
		state = state.Update(op)
	}
	return state.Result()
}
