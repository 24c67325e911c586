package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pairwise/stats"
)

const catalogYAML = `columns:
  - name: x
  - name: y
  - name: label
    type: categorical
num_rows: 4
`

const ensembleJSON = `{
  "X_L_list": [
    {"column_partition": {"assignments": [0, 0, 1]}},
    {"column_partition": {"assignments": [0, 1, 1]}}
  ],
  "X_D_list": [
    [[0, 0, 1, 1], [0, 0, 0, 0]],
    [[0, 1, 0, 1], [0, 0, 1, 1]]
  ]
}`

const tableCSV = `x,y,label
1,2,a
2,4,b
3,6,a
4,8,b
`

// workspace writes the model files plus an empty config and returns the
// common flag prefix.
func workspace(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"catalog.yaml":  catalogYAML,
		"ensemble.json": ensembleJSON,
		"data.csv":      tableCSV,
		"pairwise.yaml": "log_level: error\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	return []string{
		"--config", filepath.Join(dir, "pairwise.yaml"),
		"--catalog", filepath.Join(dir, "catalog.yaml"),
		"--ensemble", filepath.Join(dir, "ensemble.json"),
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestColumns_JSON(t *testing.T) {
	flags := workspace(t)
	args := append([]string{"columns"}, flags...)
	args = append(args, "--function", "dependence probability", "--threshold", "0.4", "--workers", "2")
	out, err := run(t, args...)
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got.RequestID)
	assert.ElementsMatch(t, []string{"x", "y", "label"}, got.Names)
	assert.Len(t, got.Permutation, 3)
	require.Len(t, got.Matrix, 3)
	require.Len(t, got.Components, 1)
	assert.ElementsMatch(t, []int{0, 1, 2}, toInts(got.Components[0]))
}

func TestColumns_CorrelationYAML(t *testing.T) {
	flags := workspace(t)
	dir := filepath.Dir(flags[1])
	args := append([]string{"columns"}, flags...)
	args = append(args,
		"--function", "correlation",
		"--table", filepath.Join(dir, "data.csv"),
		"--columns", "y,x",
		"--format", "yaml",
	)
	out, err := run(t, args...)
	require.NoError(t, err)

	var got report
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.ElementsMatch(t, []string{"x", "y"}, got.Names)
	assert.InDelta(t, 1.0, got.Matrix[0][1], 1e-12)
	assert.Empty(t, got.Components)
}

func TestColumns_Errors(t *testing.T) {
	flags := workspace(t)

	_, err := run(t, append([]string{"columns", "--function", "banana correlation"}, flags...)...)
	assert.ErrorIs(t, err, stats.ErrParse)

	_, err = run(t, "columns", "--config", flags[1], "--function", "correlation")
	assert.ErrorIs(t, err, errCatalogRequired)

	_, err = run(t, append([]string{"columns", "--log-level", "loud"}, flags...)...)
	assert.Error(t, err)
}

func TestRows(t *testing.T) {
	flags := workspace(t)
	out, err := run(t, append([]string{"rows", "--rows", "3,0,1", "--threshold", "0.5"}, flags...)...)
	require.NoError(t, err)

	var got report
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []int{3, 0, 1}, toInts(got.Rows))
	require.Len(t, got.Components, 1)
	assert.Equal(t, []int{0, 1}, toInts(got.Components[0]))
	assert.InDelta(t, 5.0/6, got.Matrix[1][2], 1e-12)
}

func TestFunctionHelpListsResolverNames(t *testing.T) {
	out, err := run(t, "columns", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "column statistic: correlation, dependence probability, mutual information")

	out, err = run(t, "rows", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "row statistic: similarity")
}

func toInts[T ~int](xs []T) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[i] = int(x)
	}

	return out
}
