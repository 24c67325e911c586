package pairwise_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairwise/catalog"
	"github.com/katalvlaran/pairwise/ensemble"
	"github.com/katalvlaran/pairwise/matrix"
	"github.com/katalvlaran/pairwise/pairwise"
	"github.com/katalvlaran/pairwise/table"
)

// fixture: 3 columns, 4 rows, 2 samples.
//
//	sample 0: columns in views [0 0 1]; view 0 rows [0 0 1 1]; view 1 rows [0 0 0 0]
//	sample 1: columns in views [0 1 1]; view 0 rows [0 1 0 1]; view 1 rows [0 0 1 1]
//
// Dependence probability over (x, y, label):
//
//	[1,   0.5, 0  ]
//	[0.5, 1,   0.5]
//	[0,   0.5, 1  ]
//
// Row similarity: (0,1) and (2,3) are 5/6; every other off-diagonal pair ≤ 2/6.
func fixture(t *testing.T) (*catalog.Catalog, *ensemble.Ensemble, *table.Table) {
	t.Helper()
	cat, err := catalog.New([]string{"x", "y", "label"}, 4,
		catalog.WithColumnTypes(catalog.Numerical, catalog.Numerical, catalog.Categorical))
	require.NoError(t, err)

	ens, err := ensemble.New(
		[]ensemble.Latent{
			{ColumnPartition: ensemble.Partition{Assignments: []int{0, 0, 1}}},
			{ColumnPartition: ensemble.Partition{Assignments: []int{0, 1, 1}}},
		},
		[]ensemble.Assignments{
			{{0, 0, 1, 1}, {0, 0, 0, 0}},
			{{0, 1, 0, 1}, {0, 0, 1, 1}},
		},
	)
	require.NoError(t, err)

	tb, err := table.New([][]float64{
		{1, 2, 0},
		{2, 4, 1},
		{3, 6, 0},
		{4, 8, 1},
	})
	require.NoError(t, err)

	return cat, ens, tb
}

// identity keeps every position in place.
var identity = pairwise.OrdererFunc(func(m matrix.Matrix) ([]catalog.Local, error) {
	out := make([]catalog.Local, m.Rows())
	for i := range out {
		out[i] = catalog.Local(i)
	}

	return out, nil
})

// reverse flips the axis order.
var reverse = pairwise.OrdererFunc(func(m matrix.Matrix) ([]catalog.Local, error) {
	n := m.Rows()
	out := make([]catalog.Local, n)
	for i := range out {
		out[i] = catalog.Local(n - 1 - i)
	}

	return out, nil
})

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func at(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}
