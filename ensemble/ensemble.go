// Package ensemble models the posterior samples produced by the inference
// engine: an ordered list of (Latent, Assignments) pairs. Pairwise statistics
// aggregate over every sample; nothing in this module mutates an Ensemble.
package ensemble

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty indicates an ensemble without samples.
	ErrEmpty = errors.New("ensemble: no samples")

	// ErrLengthMismatch indicates len(Latents) != len(Assignments).
	ErrLengthMismatch = errors.New("ensemble: latent and assignment lists differ in length")

	// ErrShape indicates a sample that does not fit the catalog (column or row counts, view ids).
	ErrShape = errors.New("ensemble: sample does not match catalog shape")
)

// Partition assigns every column to a view.
type Partition struct {
	Assignments []int `json:"assignments" yaml:"assignments"`
	Counts      []int `json:"counts,omitempty" yaml:"counts,omitempty"`
}

// Latent is one sample's latent structure (X_L). ViewState is carried through
// opaquely for engines that need it.
type Latent struct {
	ColumnPartition Partition        `json:"column_partition" yaml:"column_partition"`
	ViewState       []map[string]any `json:"view_state,omitempty" yaml:"view_state,omitempty"`
}

// View returns the view that column col belongs to.
func (l Latent) View(col int) (int, error) {
	if col < 0 || col >= len(l.ColumnPartition.Assignments) {
		return 0, fmt.Errorf("View: column %d: %w", col, ErrShape)
	}

	return l.ColumnPartition.Assignments[col], nil
}

// Assignments is one sample's row partition (X_D): view → row → category.
type Assignments [][]int

// Categories returns the number of distinct categories used in view v.
func (a Assignments) Categories(v int) int {
	if v < 0 || v >= len(a) {
		return 0
	}
	seen := make(map[int]struct{})
	for _, c := range a[v] {
		seen[c] = struct{}{}
	}

	return len(seen)
}

// Ensemble is the ordered list of posterior samples.
type Ensemble struct {
	Latents     []Latent      `json:"X_L_list" yaml:"X_L_list"`
	Assignments []Assignments `json:"X_D_list" yaml:"X_D_list"`
}

// New pairs latents with assignments; both lists must be non-empty and equal length.
func New(latents []Latent, assignments []Assignments) (*Ensemble, error) {
	e := &Ensemble{Latents: latents, Assignments: assignments}
	if err := e.Check(); err != nil {
		return nil, err
	}

	return e, nil
}

// Check verifies the ensemble is non-empty and pairs every latent with one
// assignment list. Statistics call it before walking samples; Validate adds
// the catalog shape on top.
// Errors: ErrEmpty, ErrLengthMismatch.
func (e *Ensemble) Check() error {
	if len(e.Latents) == 0 {
		return ErrEmpty
	}
	if len(e.Latents) != len(e.Assignments) {
		return fmt.Errorf("%d latents vs %d assignments: %w", len(e.Latents), len(e.Assignments), ErrLengthMismatch)
	}

	return nil
}

// Len returns the number of samples.
func (e *Ensemble) Len() int { return len(e.Latents) }

// Validate checks every sample against the catalog shape: one view id per
// column, view ids inside X_D, and one category per row in every view.
// Complexity: O(samples · (columns + views·rows)).
func (e *Ensemble) Validate(numColumns, numRows int) error {
	if err := e.Check(); err != nil {
		return fmt.Errorf("Validate: %w", err)
	}
	for k, l := range e.Latents {
		xd := e.Assignments[k]
		if len(l.ColumnPartition.Assignments) != numColumns {
			return fmt.Errorf("Validate: sample %d has %d column assignments, want %d: %w",
				k, len(l.ColumnPartition.Assignments), numColumns, ErrShape)
		}
		for col, v := range l.ColumnPartition.Assignments {
			if v < 0 || v >= len(xd) {
				return fmt.Errorf("Validate: sample %d column %d in view %d of %d: %w", k, col, v, len(xd), ErrShape)
			}
		}
		for v, rows := range xd {
			if len(rows) != numRows {
				return fmt.Errorf("Validate: sample %d view %d has %d rows, want %d: %w", k, v, len(rows), numRows, ErrShape)
			}
		}
	}

	return nil
}
