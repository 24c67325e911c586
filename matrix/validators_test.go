// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairwise/matrix"
)

func TestValidateSquare(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	require.ErrorIs(t, matrix.ValidateSquare(typedNil), matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(rect), matrix.ErrNonSquare)

	sq, err := matrix.NewSquare(3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq))
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym, err := matrix.NewFromRows([][]float64{{1, 2}, {2, 1}})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))

	asym, err := matrix.NewFromRows([][]float64{{1, 2}, {2.1, 1}})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, 0), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(asym, 0.2))
	require.ErrorIs(t, matrix.ValidateSymmetric(asym, math.NaN()), matrix.ErrNaNInf)

	nan, err := matrix.NewFromRows([][]float64{{1, math.NaN()}, {math.NaN(), 1}})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSymmetric(nan, 0))
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	ok, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateFinite(ok))

	bad, err := matrix.NewFromRows([][]float64{{1, math.Inf(1)}, {3, 4}})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateFinite(bad), matrix.ErrNaNInf)
}

func TestValidatePermutation(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidatePermutation([]int{2, 0, 1}, 3))
	require.ErrorIs(t, matrix.ValidatePermutation([]int{0, 0, 1}, 3), matrix.ErrBadPermutation)
	require.ErrorIs(t, matrix.ValidatePermutation([]int{0, 1}, 3), matrix.ErrBadPermutation)
	require.ErrorIs(t, matrix.ValidatePermutation([]int{0, 1, 3}, 3), matrix.ErrBadPermutation)
}
