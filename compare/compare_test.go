// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package compare_test

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/born-ml/compare/backend/cpu"
	"github.com/born-ml/compare/compare"
	"github.com/born-ml/compare/tensor"
)

func TestPublicClamp(t *testing.T) {
	x, err := tensor.FromSlice([]int64{-3, 2, 9}, tensor.Shape{3})
	require.NoError(t, err)

	y, err := compare.Clamp(x, compare.Some(tensor.Int(0)), compare.Some(tensor.Int(5)))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 5}, y.AsInt64())

	_, err = compare.Clamp(x, nil, nil)
	assert.True(t, errors.Is(err, tensor.ErrInvalidArgument))
}

func TestPublicSelection(t *testing.T) {
	x, err := tensor.FromSlice([]int64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	test, err := tensor.FromSlice([]int64{2, 3}, tensor.Shape{2})
	require.NoError(t, err)

	mask, err := compare.IsIn(x, test, false, false)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, true, false}, mask.AsBool())

	z, err := compare.WhereScalarOther(mask, x, tensor.Int(0))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 3, 0}, z.AsInt64())
}

func TestPublicPredicates(t *testing.T) {
	x, err := tensor.FromSlice([]float64{1, math.NaN(), math.Inf(-1)}, tensor.Shape{3})
	require.NoError(t, err)

	nan, err := compare.IsNaN(x)
	require.NoError(t, err)
	assert.Equal(t, []bool{false, true, false}, nan.AsBool())

	finite, err := compare.IsFinite(x)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false}, finite.AsBool())

	all, err := compare.AllClose(x, x, compare.DefaultRTol, compare.DefaultATol, true)
	require.NoError(t, err)
	assert.True(t, all)
}

func TestPublicReductions(t *testing.T) {
	x, err := tensor.FromSlice([]int64{3, 1, 1, 3}, tensor.Shape{4})
	require.NoError(t, err)

	values, indices, err := compare.Max(x, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, values.AsInt64())
	assert.Equal(t, []int64{0}, indices.AsInt64())

	values, indices, err = compare.Mode(x, 0, true)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{1}, values.Shape())
	assert.Equal(t, []int64{3}, values.AsInt64())
	assert.Equal(t, []int64{0}, indices.AsInt64())
}
