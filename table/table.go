// Package table holds the raw data table a model was fitted to: row-major
// float64 cells with NaN marking a missing value. Categorical cells are stored
// as their integer codes.
package table

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrShape indicates an empty or ragged table, or one that disagrees with the catalog.
	ErrShape = errors.New("table: bad shape")

	// ErrOutOfRange indicates a row or column outside the table.
	ErrOutOfRange = errors.New("table: index out of range")
)

// Table is an immutable rows×cols grid of cells.
type Table struct {
	rows, cols int
	cells      []float64
}

// New copies a rectangular [][]float64 into a Table.
func New(rows [][]float64) (*Table, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("New: %w", ErrShape)
	}
	t := &Table{rows: len(rows), cols: len(rows[0])}
	t.cells = make([]float64, 0, t.rows*t.cols)
	for i, r := range rows {
		if len(r) != t.cols {
			return nil, fmt.Errorf("New: row %d has %d cells, want %d: %w", i, len(r), t.cols, ErrShape)
		}
		t.cells = append(t.cells, r...)
	}

	return t, nil
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the column count.
func (t *Table) NumCols() int { return t.cols }

// At returns the cell at (row, col); NaN means missing.
func (t *Table) At(row, col int) (float64, error) {
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols {
		return 0, fmt.Errorf("At(%d,%d): %w", row, col, ErrOutOfRange)
	}

	return t.cells[row*t.cols+col], nil
}

// Column returns a copy of column col.
func (t *Table) Column(col int) ([]float64, error) {
	if col < 0 || col >= t.cols {
		return nil, fmt.Errorf("Column(%d): %w", col, ErrOutOfRange)
	}
	out := make([]float64, t.rows)
	for i := range out {
		out[i] = t.cells[i*t.cols+col]
	}

	return out, nil
}

// Missing reports whether v encodes a missing cell.
func Missing(v float64) bool { return math.IsNaN(v) }
