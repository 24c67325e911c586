package catalog

import (
	"fmt"
	"strconv"
)

// Index is a column or row id in full-table (catalog) space.
type Index int

// Local is a position inside a Selection, i.e. along a pairwise matrix axis.
type Local int

// ColumnType is the model type of a column.
type ColumnType string

const (
	// Numerical columns hold continuous values (normal-inverse-gamma in the model).
	Numerical ColumnType = "numerical"
	// Categorical columns hold codes drawn from a finite set.
	Categorical ColumnType = "categorical"
)

// Valid reports whether t is a supported column type.
func (t ColumnType) Valid() bool {
	return t == Numerical || t == Categorical
}

// Catalog is the immutable name ↔ index mapping of a dataset plus its row count.
// The inverse map is keyed by the decimal index string, matching the catalog
// format produced by the ingestion side ("0" → "age").
type Catalog struct {
	nameToIdx map[string]int
	idxToName map[string]string
	types     []ColumnType
	numRows   int
}

// Option configures optional Catalog fields at construction.
type Option func(*Catalog) error

// WithColumnTypes assigns a model type to every column, in index order.
// Columns default to Numerical when the option is absent.
func WithColumnTypes(types ...ColumnType) Option {
	return func(c *Catalog) error {
		if len(types) != len(c.types) {
			return fmt.Errorf("WithColumnTypes: got %d types for %d columns: %w", len(types), len(c.types), ErrInconsistent)
		}
		for i, t := range types {
			if !t.Valid() {
				return fmt.Errorf("WithColumnTypes: column %d %q: %w", i, t, ErrUnknownType)
			}
		}
		copy(c.types, types)

		return nil
	}
}

// New builds a Catalog from names in index order.
// Returns ErrDuplicateName for repeated names and ErrRowOutOfRange for a
// negative row count.
func New(names []string, numRows int, opts ...Option) (*Catalog, error) {
	if numRows < 0 {
		return nil, fmt.Errorf("New: num_rows %d: %w", numRows, ErrRowOutOfRange)
	}
	c := &Catalog{
		nameToIdx: make(map[string]int, len(names)),
		idxToName: make(map[string]string, len(names)),
		types:     make([]ColumnType, len(names)),
		numRows:   numRows,
	}
	for i, name := range names {
		if _, dup := c.nameToIdx[name]; dup {
			return nil, fmt.Errorf("New: %q: %w", name, ErrDuplicateName)
		}
		c.nameToIdx[name] = i
		c.idxToName[strconv.Itoa(i)] = name
		c.types[i] = Numerical
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// FromMaps builds a Catalog from the raw name_to_idx / idx_to_name maps.
// MAIN DESCRIPTION:
//   - Accepts the external catalog shape as-is and verifies it: both maps
//     have the same size n, indices cover [0, n) exactly once, and each map
//     is the inverse of the other.
//
// Errors:
//   - ErrInconsistent on any violation, ErrRowOutOfRange on negative numRows.
//
// Complexity:
//   - Time O(n), Space O(n). Inputs are copied, never retained.
func FromMaps(nameToIdx map[string]int, idxToName map[string]string, numRows int, opts ...Option) (*Catalog, error) {
	if len(nameToIdx) != len(idxToName) {
		return nil, fmt.Errorf("FromMaps: %d names vs %d indices: %w", len(nameToIdx), len(idxToName), ErrInconsistent)
	}
	names := make([]string, len(nameToIdx))
	seen := make([]bool, len(nameToIdx))
	for name, idx := range nameToIdx {
		if idx < 0 || idx >= len(names) || seen[idx] {
			return nil, fmt.Errorf("FromMaps: %q -> %d: %w", name, idx, ErrInconsistent)
		}
		if back, ok := idxToName[strconv.Itoa(idx)]; !ok || back != name {
			return nil, fmt.Errorf("FromMaps: %q -> %d -> %q: %w", name, idx, back, ErrInconsistent)
		}
		seen[idx] = true
		names[idx] = name
	}

	return New(names, numRows, opts...)
}

// NumColumns returns the number of catalog columns.
func (c *Catalog) NumColumns() int { return len(c.nameToIdx) }

// NumRows returns the implicit table row count.
func (c *Catalog) NumRows() int { return c.numRows }

// Lookup maps a column name to its Index, or a *LookupError.
func (c *Catalog) Lookup(name string) (Index, error) {
	idx, ok := c.nameToIdx[name]
	if !ok {
		return 0, &LookupError{Name: name}
	}

	return Index(idx), nil
}

// Name returns the column name at idx.
func (c *Catalog) Name(idx Index) (string, error) {
	name, ok := c.idxToName[strconv.Itoa(int(idx))]
	if !ok {
		return "", fmt.Errorf("Name: column %d: %w", idx, ErrUnknownColumn)
	}

	return name, nil
}

// Type returns the model type of column idx.
func (c *Catalog) Type(idx Index) (ColumnType, error) {
	if idx < 0 || int(idx) >= len(c.types) {
		return "", fmt.Errorf("Type: column %d: %w", idx, ErrUnknownColumn)
	}

	return c.types[idx], nil
}

// Names returns all column names in index order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.types))
	for i := range out {
		out[i] = c.idxToName[strconv.Itoa(i)]
	}

	return out
}
