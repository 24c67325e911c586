package stats_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairwise/catalog"
	"github.com/katalvlaran/pairwise/ensemble"
	"github.com/katalvlaran/pairwise/stats"
	"github.com/katalvlaran/pairwise/table"
)

// fixture: 3 columns, 4 rows, 2 samples.
//
//	sample 0: columns in views [0 0 1]; view 0 rows [0 0 1 1]; view 1 rows [0 0 0 0]
//	sample 1: columns in views [0 1 1]; view 0 rows [0 1 0 1]; view 1 rows [0 0 1 1]
func fixture(t *testing.T) *stats.Inputs {
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
	require.NoError(t, ens.Validate(cat.NumColumns(), cat.NumRows()))

	tb, err := table.New([][]float64{
		{1, 2, 0},
		{2, 4, 1},
		{3, 6, 0},
		{4, 8, 1},
	})
	require.NoError(t, err)

	return &stats.Inputs{Catalog: cat, Ensemble: ens, Table: tb}
}

func TestResolve_Recognized(t *testing.T) {
	for _, name := range []string{"mutual information", "dependence probability", "correlation"} {
		fn, err := stats.Resolve(name, stats.Column)
		require.NoError(t, err, name)
		assert.NotNil(t, fn)
	}
	fn, err := stats.Resolve("similarity", stats.Row)
	require.NoError(t, err)
	assert.NotNil(t, fn)
}

// TestResolve_Banana: an unknown name fails with a parse error naming it verbatim.
func TestResolve_Banana(t *testing.T) {
	_, err := stats.Resolve("banana correlation", stats.Column)
	require.Error(t, err)
	assert.ErrorIs(t, err, stats.ErrParse)

	var perr *stats.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "banana correlation", perr.Name)
	assert.Equal(t, "invalid column function: banana correlation", err.Error())
}

// TestResolve_ModeMismatch: names are only recognized in their own mode and are case-sensitive.
func TestResolve_ModeMismatch(t *testing.T) {
	_, err := stats.Resolve("similarity", stats.Column)
	assert.ErrorIs(t, err, stats.ErrParse)

	_, err = stats.Resolve("correlation", stats.Row)
	assert.EqualError(t, err, "invalid row function: correlation")

	_, err = stats.Resolve("Correlation", stats.Column)
	assert.ErrorIs(t, err, stats.ErrParse)
}

func TestResolver_WithStatistic(t *testing.T) {
	stub := func(context.Context, *stats.Inputs, catalog.Index, catalog.Index) (float64, error) {
		return 42, nil
	}
	r := stats.NewResolver(stats.WithStatistic(stats.Column, stats.NameCorrelation, stub))

	fn, err := r.Resolve("correlation", stats.Column)
	require.NoError(t, err)
	v, err := fn(context.Background(), nil, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	assert.Equal(t, []string{"correlation", "dependence probability", "mutual information"}, r.Names(stats.Column))

	assert.Panics(t, func() {
		stats.NewResolver(stats.WithStatistic(stats.Row, "banana", stub))
	})
}

func TestDependenceProbability(t *testing.T) {
	in := fixture(t)
	ctx := context.Background()

	cases := []struct {
		a, b catalog.Index
		want float64
	}{
		{0, 1, 0.5},
		{1, 0, 0.5},
		{1, 2, 0.5},
		{0, 2, 0},
		{2, 2, 1}, // single-category view still counts for a self-pair
		{0, 0, 1},
	}
	for _, tc := range cases {
		got, err := stats.DependenceProbability(ctx, in, tc.a, tc.b)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, got, 1e-12, "pair (%d,%d)", tc.a, tc.b)
	}

	_, err := stats.DependenceProbability(ctx, &stats.Inputs{}, 0, 1)
	assert.ErrorIs(t, err, stats.ErrMissingInput)
}

func TestCorrelation(t *testing.T) {
	in := fixture(t)
	ctx := context.Background()

	r, err := stats.Correlation(ctx, in, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)

	_, err = stats.Correlation(ctx, in, 0, 2)
	assert.ErrorIs(t, err, stats.ErrNonNumeric)
}

func TestCorrelation_MissingAndDegenerate(t *testing.T) {
	cat, err := catalog.New([]string{"a", "b", "c"}, 4)
	require.NoError(t, err)
	tb, err := table.New([][]float64{
		{1, 4, 7},
		{2, 3, 7},
		{math.NaN(), 100, 7},
		{4, 1, 7},
	})
	require.NoError(t, err)
	in := &stats.Inputs{Catalog: cat, Table: tb}

	r, err := stats.Correlation(context.Background(), in, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, 1e-12) // NaN row skipped

	r, err = stats.Correlation(context.Background(), in, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r) // constant column
}

func TestSimilarity(t *testing.T) {
	in := fixture(t)
	ctx := context.Background()

	s, err := stats.Similarity(ctx, in, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/6.0, s, 1e-12)

	s, err = stats.Similarity(ctx, in, 2, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s, 1e-12)

	in.TargetColumns = []catalog.Index{0}
	s, err = stats.Similarity(ctx, in, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s, 1e-12)

	in.TargetColumns = nil
	_, err = stats.Similarity(ctx, in, 0, 9)
	assert.ErrorIs(t, err, catalog.ErrRowOutOfRange)
}

func TestEnsembleStatistics_MalformedEnsemble(t *testing.T) {
	in := fixture(t)
	ctx := context.Background()
	latent := in.Ensemble.Latents[0]

	cases := []struct {
		name string
		ens  *ensemble.Ensemble
		want error
	}{
		{"empty", &ensemble.Ensemble{}, ensemble.ErrEmpty},
		{"assignments shorter than latents", &ensemble.Ensemble{Latents: []ensemble.Latent{latent}}, ensemble.ErrLengthMismatch},
	}
	for _, tc := range cases {
		in.Ensemble = tc.ens

		_, err := stats.DependenceProbability(ctx, in, 0, 1)
		assert.ErrorIs(t, err, tc.want, "dependence probability: %s", tc.name)

		_, err = stats.Similarity(ctx, in, 0, 1)
		assert.ErrorIs(t, err, tc.want, "similarity: %s", tc.name)
	}
}

type fakeEngine struct {
	values []float64
	err    error
	asked  int
}

func (f *fakeEngine) MutualInformation(_ context.Context, _ *stats.Inputs, _, _ catalog.Index, samples int) ([]float64, error) {
	f.asked = samples
	return f.values, f.err
}

func TestMutualInformation(t *testing.T) {
	in := fixture(t)
	ctx := context.Background()

	_, err := stats.MutualInformation(ctx, in, 0, 1)
	assert.ErrorIs(t, err, stats.ErrEngineRequired)

	in.Engine = struct{}{}
	_, err = stats.MutualInformation(ctx, in, 0, 1)
	assert.ErrorIs(t, err, stats.ErrEngineUnsupported)

	eng := &fakeEngine{values: []float64{0.2, 0.4}}
	in.Engine = eng
	mi, err := stats.MutualInformation(ctx, in, 0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.3, mi, 1e-12)
	assert.Equal(t, stats.DefaultMISamples, eng.asked)

	in.MISamples = 10
	_, err = stats.MutualInformation(ctx, in, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 10, eng.asked)

	boom := errors.New("engine offline")
	in.Engine = &fakeEngine{err: boom}
	_, err = stats.MutualInformation(ctx, in, 0, 1)
	assert.Same(t, boom, err) // propagated unchanged

	in.Engine = &fakeEngine{}
	_, err = stats.MutualInformation(ctx, in, 0, 1)
	assert.ErrorIs(t, err, stats.ErrEmptyEstimate)
}
