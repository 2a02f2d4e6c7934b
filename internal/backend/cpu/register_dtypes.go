package cpu

import "github.com/born-ml/compare/internal/tensor"

// Kernel instantiations per dtype. Half precision types are computed in float32
// and never looked up.
func init() {
	// Comparison.
	eqDTypeMap.register(tensor.Bool, execEqGeneric[bool])
	eqDTypeMap.register(tensor.Uint8, execEqGeneric[uint8])
	eqDTypeMap.register(tensor.Int8, execEqGeneric[int8])
	eqDTypeMap.register(tensor.Int16, execEqGeneric[int16])
	eqDTypeMap.register(tensor.Int32, execEqGeneric[int32])
	eqDTypeMap.register(tensor.Int64, execEqGeneric[int64])
	eqDTypeMap.register(tensor.Float32, execEqGeneric[float32])
	eqDTypeMap.register(tensor.Float64, execEqGeneric[float64])
	eqDTypeMap.register(tensor.Complex64, execEqGeneric[complex64])
	eqDTypeMap.register(tensor.Complex128, execEqGeneric[complex128])
	neDTypeMap.register(tensor.Bool, execNeGeneric[bool])
	neDTypeMap.register(tensor.Uint8, execNeGeneric[uint8])
	neDTypeMap.register(tensor.Int8, execNeGeneric[int8])
	neDTypeMap.register(tensor.Int16, execNeGeneric[int16])
	neDTypeMap.register(tensor.Int32, execNeGeneric[int32])
	neDTypeMap.register(tensor.Int64, execNeGeneric[int64])
	neDTypeMap.register(tensor.Float32, execNeGeneric[float32])
	neDTypeMap.register(tensor.Float64, execNeGeneric[float64])
	neDTypeMap.register(tensor.Complex64, execNeGeneric[complex64])
	neDTypeMap.register(tensor.Complex128, execNeGeneric[complex128])
	maximumDTypeMap.register(tensor.Uint8, execMaximumGeneric[uint8])
	maximumDTypeMap.register(tensor.Int8, execMaximumGeneric[int8])
	maximumDTypeMap.register(tensor.Int16, execMaximumGeneric[int16])
	maximumDTypeMap.register(tensor.Int32, execMaximumGeneric[int32])
	maximumDTypeMap.register(tensor.Int64, execMaximumGeneric[int64])
	maximumDTypeMap.register(tensor.Float32, execMaximumGeneric[float32])
	maximumDTypeMap.register(tensor.Float64, execMaximumGeneric[float64])
	maximumDTypeMap.register(tensor.Bool, execMaximumBool)
	minimumDTypeMap.register(tensor.Uint8, execMinimumGeneric[uint8])
	minimumDTypeMap.register(tensor.Int8, execMinimumGeneric[int8])
	minimumDTypeMap.register(tensor.Int16, execMinimumGeneric[int16])
	minimumDTypeMap.register(tensor.Int32, execMinimumGeneric[int32])
	minimumDTypeMap.register(tensor.Int64, execMinimumGeneric[int64])
	minimumDTypeMap.register(tensor.Float32, execMinimumGeneric[float32])
	minimumDTypeMap.register(tensor.Float64, execMinimumGeneric[float64])
	minimumDTypeMap.register(tensor.Bool, execMinimumBool)

	// Clamp.
	clampDTypeMap.register(tensor.Uint8, execClampGeneric[uint8])
	clampDTypeMap.register(tensor.Int8, execClampGeneric[int8])
	clampDTypeMap.register(tensor.Int16, execClampGeneric[int16])
	clampDTypeMap.register(tensor.Int32, execClampGeneric[int32])
	clampDTypeMap.register(tensor.Int64, execClampGeneric[int64])
	clampDTypeMap.register(tensor.Float32, execClampGeneric[float32])
	clampDTypeMap.register(tensor.Float64, execClampGeneric[float64])
	clampScalarDTypeMap.register(tensor.Uint8, execClampScalarGeneric[uint8])
	clampScalarDTypeMap.register(tensor.Int8, execClampScalarGeneric[int8])
	clampScalarDTypeMap.register(tensor.Int16, execClampScalarGeneric[int16])
	clampScalarDTypeMap.register(tensor.Int32, execClampScalarGeneric[int32])
	clampScalarDTypeMap.register(tensor.Int64, execClampScalarGeneric[int64])
	clampScalarDTypeMap.register(tensor.Float32, execClampScalarGeneric[float32])
	clampScalarDTypeMap.register(tensor.Float64, execClampScalarGeneric[float64])
	clampMinScalarDTypeMap.register(tensor.Uint8, execClampMinScalarGeneric[uint8])
	clampMinScalarDTypeMap.register(tensor.Int8, execClampMinScalarGeneric[int8])
	clampMinScalarDTypeMap.register(tensor.Int16, execClampMinScalarGeneric[int16])
	clampMinScalarDTypeMap.register(tensor.Int32, execClampMinScalarGeneric[int32])
	clampMinScalarDTypeMap.register(tensor.Int64, execClampMinScalarGeneric[int64])
	clampMinScalarDTypeMap.register(tensor.Float32, execClampMinScalarGeneric[float32])
	clampMinScalarDTypeMap.register(tensor.Float64, execClampMinScalarGeneric[float64])
	clampMaxScalarDTypeMap.register(tensor.Uint8, execClampMaxScalarGeneric[uint8])
	clampMaxScalarDTypeMap.register(tensor.Int8, execClampMaxScalarGeneric[int8])
	clampMaxScalarDTypeMap.register(tensor.Int16, execClampMaxScalarGeneric[int16])
	clampMaxScalarDTypeMap.register(tensor.Int32, execClampMaxScalarGeneric[int32])
	clampMaxScalarDTypeMap.register(tensor.Int64, execClampMaxScalarGeneric[int64])
	clampMaxScalarDTypeMap.register(tensor.Float32, execClampMaxScalarGeneric[float32])
	clampMaxScalarDTypeMap.register(tensor.Float64, execClampMaxScalarGeneric[float64])

	// Membership, compared pairwise.
	isInDTypeMap.register(tensor.Uint8, execIsInGeneric[uint8])
	isInDTypeMap.register(tensor.Int8, execIsInGeneric[int8])
	isInDTypeMap.register(tensor.Int16, execIsInGeneric[int16])
	isInDTypeMap.register(tensor.Int32, execIsInGeneric[int32])
	isInDTypeMap.register(tensor.Int64, execIsInGeneric[int64])
	isInDTypeMap.register(tensor.Float32, execIsInGeneric[float32])
	isInDTypeMap.register(tensor.Float64, execIsInGeneric[float64])

	// Closeness and special values.
	closeDTypeMap.register(tensor.Float32, execCloseGeneric[float32])
	closeDTypeMap.register(tensor.Float64, execCloseGeneric[float64])
	closeDTypeMap.register(tensor.Complex64, execCloseComplex[complex64])
	closeDTypeMap.register(tensor.Complex128, execCloseComplex[complex128])
	isInfDTypeMap.register(tensor.Float32, execIsInfGeneric[float32])
	isInfDTypeMap.register(tensor.Float64, execIsInfGeneric[float64])
	isFiniteDTypeMap.register(tensor.Float32, execIsFiniteGeneric[float32])
	isFiniteDTypeMap.register(tensor.Float64, execIsFiniteGeneric[float64])
	isPosInfDTypeMap.register(tensor.Float32, execIsPosInfGeneric[float32])
	isPosInfDTypeMap.register(tensor.Float64, execIsPosInfGeneric[float64])
	isNegInfDTypeMap.register(tensor.Float32, execIsNegInfGeneric[float32])
	isNegInfDTypeMap.register(tensor.Float64, execIsNegInfGeneric[float64])

	// Selection.
	whereDTypeMap.register(tensor.Bool, execWhereGeneric[bool])
	whereDTypeMap.register(tensor.Uint8, execWhereGeneric[uint8])
	whereDTypeMap.register(tensor.Int8, execWhereGeneric[int8])
	whereDTypeMap.register(tensor.Int16, execWhereGeneric[int16])
	whereDTypeMap.register(tensor.Int32, execWhereGeneric[int32])
	whereDTypeMap.register(tensor.Int64, execWhereGeneric[int64])
	whereDTypeMap.register(tensor.Float32, execWhereGeneric[float32])
	whereDTypeMap.register(tensor.Float64, execWhereGeneric[float64])
	whereDTypeMap.register(tensor.Complex64, execWhereGeneric[complex64])
	whereDTypeMap.register(tensor.Complex128, execWhereGeneric[complex128])
	nonzeroDTypeMap.register(tensor.Bool, execNonzeroGeneric[bool])
	nonzeroDTypeMap.register(tensor.Uint8, execNonzeroGeneric[uint8])
	nonzeroDTypeMap.register(tensor.Int8, execNonzeroGeneric[int8])
	nonzeroDTypeMap.register(tensor.Int16, execNonzeroGeneric[int16])
	nonzeroDTypeMap.register(tensor.Int32, execNonzeroGeneric[int32])
	nonzeroDTypeMap.register(tensor.Int64, execNonzeroGeneric[int64])
	nonzeroDTypeMap.register(tensor.Float32, execNonzeroGeneric[float32])
	nonzeroDTypeMap.register(tensor.Float64, execNonzeroGeneric[float64])
	nonzeroDTypeMap.register(tensor.Complex64, execNonzeroGeneric[complex64])
	nonzeroDTypeMap.register(tensor.Complex128, execNonzeroGeneric[complex128])

	// Reductions with indices.
	maxDTypeMap.register(tensor.Uint8, execMaxGeneric[uint8])
	maxDTypeMap.register(tensor.Int8, execMaxGeneric[int8])
	maxDTypeMap.register(tensor.Int16, execMaxGeneric[int16])
	maxDTypeMap.register(tensor.Int32, execMaxGeneric[int32])
	maxDTypeMap.register(tensor.Int64, execMaxGeneric[int64])
	maxDTypeMap.register(tensor.Float32, execMaxGeneric[float32])
	maxDTypeMap.register(tensor.Float64, execMaxGeneric[float64])
	maxDTypeMap.register(tensor.Bool, execMaxBool)
	minDTypeMap.register(tensor.Uint8, execMinGeneric[uint8])
	minDTypeMap.register(tensor.Int8, execMinGeneric[int8])
	minDTypeMap.register(tensor.Int16, execMinGeneric[int16])
	minDTypeMap.register(tensor.Int32, execMinGeneric[int32])
	minDTypeMap.register(tensor.Int64, execMinGeneric[int64])
	minDTypeMap.register(tensor.Float32, execMinGeneric[float32])
	minDTypeMap.register(tensor.Float64, execMinGeneric[float64])
	minDTypeMap.register(tensor.Bool, execMinBool)
	modeDTypeMap.register(tensor.Bool, execModeGeneric[bool])
	modeDTypeMap.register(tensor.Uint8, execModeGeneric[uint8])
	modeDTypeMap.register(tensor.Int8, execModeGeneric[int8])
	modeDTypeMap.register(tensor.Int16, execModeGeneric[int16])
	modeDTypeMap.register(tensor.Int32, execModeGeneric[int32])
	modeDTypeMap.register(tensor.Int64, execModeGeneric[int64])
	modeDTypeMap.register(tensor.Float32, execModeGeneric[float32])
	modeDTypeMap.register(tensor.Float64, execModeGeneric[float64])
}
