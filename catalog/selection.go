package catalog

import (
	"fmt"
	"strconv"
)

// Selection is an ordered list of catalog indices paired with display names.
// Invariants: len(Names) == len(Indices), Indices unique.
// Position k of both slices is Local(k).
type Selection struct {
	Names   []string `json:"names" yaml:"names"`
	Indices []Index  `json:"indices" yaml:"indices"`
}

// NewSelection validates and copies names/indices into a Selection.
func NewSelection(names []string, indices []Index) (Selection, error) {
	if len(names) != len(indices) {
		return Selection{}, fmt.Errorf("NewSelection: %d names vs %d indices: %w", len(names), len(indices), ErrBadSelection)
	}
	seen := make(map[Index]struct{}, len(indices))
	for _, ix := range indices {
		if _, dup := seen[ix]; dup {
			return Selection{}, fmt.Errorf("NewSelection: index %d repeated: %w", ix, ErrBadSelection)
		}
		seen[ix] = struct{}{}
	}

	return Selection{
		Names:   append([]string(nil), names...),
		Indices: append([]Index(nil), indices...),
	}, nil
}

// Len returns the number of selected indices (the matrix dimension).
func (s Selection) Len() int { return len(s.Indices) }

// Catalog converts a matrix-space position to its catalog Index.
func (s Selection) Catalog(l Local) (Index, error) {
	if l < 0 || int(l) >= len(s.Indices) {
		return 0, fmt.Errorf("Catalog: local %d of %d: %w", l, len(s.Indices), ErrLocalOutOfRange)
	}

	return s.Indices[l], nil
}

// Local converts a catalog Index to its matrix-space position.
// Linear scan: selections are small and this is not on a hot path.
func (s Selection) Local(ix Index) (Local, bool) {
	for k, v := range s.Indices {
		if v == ix {
			return Local(k), true
		}
	}

	return 0, false
}

// Permute returns a new Selection whose position k holds the entry at perm[k].
// Names and indices move together, so name-to-index correspondence survives.
func (s Selection) Permute(perm []Local) (Selection, error) {
	if len(perm) != len(s.Indices) {
		return Selection{}, fmt.Errorf("Permute: %d positions for %d entries: %w", len(perm), len(s.Indices), ErrBadSelection)
	}
	seen := make([]bool, len(perm))
	out := Selection{
		Names:   make([]string, len(perm)),
		Indices: make([]Index, len(perm)),
	}
	for k, p := range perm {
		if p < 0 || int(p) >= len(perm) || seen[p] {
			return Selection{}, fmt.Errorf("Permute: position %d: %w", p, ErrBadSelection)
		}
		seen[p] = true
		out.Names[k] = s.Names[p]
		out.Indices[k] = s.Indices[p]
	}

	return out, nil
}

// Select resolves an optional list of column names into a Selection.
// MAIN DESCRIPTION:
//   - names == nil: every column, indices 0..NumColumns-1, names from the
//     inverse map, natural order.
//   - names != nil: indices looked up in the order of the request.
//
// Errors:
//   - *LookupError (ErrUnknownColumn) naming the first unknown column.
//   - ErrDuplicateName when the request repeats a name.
//   - ErrEmptySelection for an explicit empty request, or a catalog with no columns.
//
// Complexity:
//   - Time O(k) for k requested names (O(n) for the full selection).
func (c *Catalog) Select(names []string) (Selection, error) {
	if names == nil {
		if c.NumColumns() == 0 {
			return Selection{}, fmt.Errorf("Select: %w", ErrEmptySelection)
		}
		all := make([]Index, c.NumColumns())
		for i := range all {
			all[i] = Index(i)
		}

		return Selection{Names: c.Names(), Indices: all}, nil
	}
	if len(names) == 0 {
		return Selection{}, fmt.Errorf("Select: %w", ErrEmptySelection)
	}

	out := Selection{
		Names:   make([]string, 0, len(names)),
		Indices: make([]Index, 0, len(names)),
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		ix, err := c.Lookup(name)
		if err != nil {
			return Selection{}, fmt.Errorf("Select: %w", err)
		}
		if _, dup := seen[name]; dup {
			return Selection{}, fmt.Errorf("Select: %q: %w", name, ErrDuplicateName)
		}
		seen[name] = struct{}{}
		out.Names = append(out.Names, name)
		out.Indices = append(out.Indices, ix)
	}

	return out, nil
}

// SelectRows resolves an optional list of row ids into a Selection.
// rows == nil selects every row in natural order; names are decimal row ids.
func (c *Catalog) SelectRows(rows []int) (Selection, error) {
	if rows == nil {
		if c.numRows == 0 {
			return Selection{}, fmt.Errorf("SelectRows: %w", ErrEmptySelection)
		}
		rows = make([]int, c.numRows)
		for i := range rows {
			rows[i] = i
		}
	}
	if len(rows) == 0 {
		return Selection{}, fmt.Errorf("SelectRows: %w", ErrEmptySelection)
	}

	names := make([]string, len(rows))
	indices := make([]Index, len(rows))
	for k, r := range rows {
		if r < 0 || r >= c.numRows {
			return Selection{}, fmt.Errorf("SelectRows: row %d of %d: %w", r, c.numRows, ErrRowOutOfRange)
		}
		names[k] = strconv.Itoa(r)
		indices[k] = Index(r)
	}

	return NewSelection(names, indices)
}
