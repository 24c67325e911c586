package catalog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairwise/catalog"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]string{"age", "height", "weight", "color"}, 5,
		catalog.WithColumnTypes(catalog.Numerical, catalog.Numerical, catalog.Numerical, catalog.Categorical))
	require.NoError(t, err)

	return c
}

func TestNew_Lookups(t *testing.T) {
	c := newCatalog(t)

	assert.Equal(t, 4, c.NumColumns())
	assert.Equal(t, 5, c.NumRows())

	ix, err := c.Lookup("weight")
	require.NoError(t, err)
	assert.Equal(t, catalog.Index(2), ix)

	name, err := c.Name(3)
	require.NoError(t, err)
	assert.Equal(t, "color", name)

	typ, err := c.Type(3)
	require.NoError(t, err)
	assert.Equal(t, catalog.Categorical, typ)

	assert.Equal(t, []string{"age", "height", "weight", "color"}, c.Names())
}

func TestNew_Rejects(t *testing.T) {
	_, err := catalog.New([]string{"a", "a"}, 1)
	assert.ErrorIs(t, err, catalog.ErrDuplicateName)

	_, err = catalog.New([]string{"a"}, -1)
	assert.ErrorIs(t, err, catalog.ErrRowOutOfRange)

	_, err = catalog.New([]string{"a"}, 1, catalog.WithColumnTypes("ordinal"))
	assert.ErrorIs(t, err, catalog.ErrUnknownType)

	_, err = catalog.New([]string{"a", "b"}, 1, catalog.WithColumnTypes(catalog.Numerical))
	assert.ErrorIs(t, err, catalog.ErrInconsistent)
}

func TestFromMaps(t *testing.T) {
	c, err := catalog.FromMaps(
		map[string]int{"x": 1, "y": 0},
		map[string]string{"0": "y", "1": "x"},
		3,
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"y", "x"}, c.Names())

	_, err = catalog.FromMaps(map[string]int{"x": 0}, map[string]string{"0": "z"}, 3)
	assert.ErrorIs(t, err, catalog.ErrInconsistent)

	_, err = catalog.FromMaps(map[string]int{"x": 2}, map[string]string{"2": "x"}, 3)
	assert.ErrorIs(t, err, catalog.ErrInconsistent)
}

// TestSelect_AllColumns: no subset yields natural order with matching names.
func TestSelect_AllColumns(t *testing.T) {
	c := newCatalog(t)

	sel, err := c.Select(nil)
	require.NoError(t, err)
	assert.Equal(t, []catalog.Index{0, 1, 2, 3}, sel.Indices)
	assert.Equal(t, []string{"age", "height", "weight", "color"}, sel.Names)
}

// TestSelect_RequestOrder: explicit subsets keep the request order, not catalog order.
func TestSelect_RequestOrder(t *testing.T) {
	c := newCatalog(t)

	sel, err := c.Select([]string{"color", "age"})
	require.NoError(t, err)
	assert.Equal(t, []catalog.Index{3, 0}, sel.Indices)
	assert.Equal(t, []string{"color", "age"}, sel.Names)

	local, ok := sel.Local(0)
	assert.True(t, ok)
	assert.Equal(t, catalog.Local(1), local)

	ix, err := sel.Catalog(0)
	require.NoError(t, err)
	assert.Equal(t, catalog.Index(3), ix)

	_, err = sel.Catalog(2)
	assert.ErrorIs(t, err, catalog.ErrLocalOutOfRange)
}

func TestSelect_Errors(t *testing.T) {
	c := newCatalog(t)

	_, err := c.Select([]string{"age", "shoe size"})
	require.ErrorIs(t, err, catalog.ErrUnknownColumn)
	var lerr *catalog.LookupError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, "shoe size", lerr.Name)
	assert.Contains(t, err.Error(), `"shoe size"`)

	_, err = c.Select([]string{"age", "age"})
	assert.ErrorIs(t, err, catalog.ErrDuplicateName)

	_, err = c.Select([]string{})
	assert.ErrorIs(t, err, catalog.ErrEmptySelection)
}

func TestSelectRows(t *testing.T) {
	c := newCatalog(t)

	all, err := c.SelectRows(nil)
	require.NoError(t, err)
	assert.Equal(t, []catalog.Index{0, 1, 2, 3, 4}, all.Indices)
	assert.Equal(t, []string{"0", "1", "2", "3", "4"}, all.Names)

	some, err := c.SelectRows([]int{4, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "1"}, some.Names)

	_, err = c.SelectRows([]int{5})
	assert.ErrorIs(t, err, catalog.ErrRowOutOfRange)

	_, err = c.SelectRows([]int{1, 1})
	assert.ErrorIs(t, err, catalog.ErrBadSelection)
}

// TestSelectionPermute keeps names glued to their indices.
func TestSelectionPermute(t *testing.T) {
	sel, err := catalog.NewSelection([]string{"a", "b", "c"}, []catalog.Index{7, 2, 5})
	require.NoError(t, err)

	p, err := sel.Permute([]catalog.Local{2, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, p.Names)
	assert.Equal(t, []catalog.Index{5, 7, 2}, p.Indices)
	// original untouched
	assert.Equal(t, []string{"a", "b", "c"}, sel.Names)

	_, err = sel.Permute([]catalog.Local{0, 0, 1})
	assert.ErrorIs(t, err, catalog.ErrBadSelection)

	_, err = catalog.NewSelection([]string{"a"}, []catalog.Index{1, 2})
	assert.ErrorIs(t, err, catalog.ErrBadSelection)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`
num_rows: 10
columns:
  - name: age
  - name: color
    type: categorical
`), 0o644))
	c, err := catalog.Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []string{"age", "color"}, c.Names())
	typ, _ := c.Type(0)
	assert.Equal(t, catalog.Numerical, typ)
	typ, _ = c.Type(1)
	assert.Equal(t, catalog.Categorical, typ)

	jsonPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{
  "name_to_idx": {"a": 0, "b": 1},
  "idx_to_name": {"0": "a", "1": "b"},
  "num_rows": 4
}`), 0o644))
	c, err = catalog.Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 4, c.NumRows())
	assert.Equal(t, []string{"a", "b"}, c.Names())

	_, err = catalog.Decode([]byte("x"), "toml")
	assert.Error(t, err)
}
