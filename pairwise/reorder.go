package pairwise

import (
	"fmt"

	"github.com/katalvlaran/pairwise/catalog"
	"github.com/katalvlaran/pairwise/linkage"
	"github.com/katalvlaran/pairwise/matrix"
)

// Orderer produces a permutation of a square matrix's positions that places
// similar entries next to each other.
type Orderer interface {
	Order(m matrix.Matrix) ([]catalog.Local, error)
}

// OrdererFunc adapts a plain function to Orderer.
type OrdererFunc func(m matrix.Matrix) ([]catalog.Local, error)

// Order calls f(m).
func (f OrdererFunc) Order(m matrix.Matrix) ([]catalog.Local, error) { return f(m) }

// LinkageOrderer treats each matrix row as an observation vector, clusters
// rows by Euclidean distance with single linkage and returns the dendrogram
// leaf order.
type LinkageOrderer struct{}

// Order implements Orderer.
func (LinkageOrderer) Order(m matrix.Matrix) ([]catalog.Local, error) {
	order, err := linkage.Order(m)
	if err != nil {
		return nil, err
	}
	out := make([]catalog.Local, len(order))
	for k, p := range order {
		out[k] = catalog.Local(p)
	}

	return out, nil
}

// Reordering is a permuted matrix plus the permutation that produced it:
// Matrix[i][j] = original[Permutation[i]][Permutation[j]].
type Reordering struct {
	Matrix      *matrix.Dense
	Permutation []catalog.Local
}

// Reorder permutes both axes of m by the order chosen by or.
// m must be symmetric (mirrored NaN cells are accepted). The permutation is
// checked to be a bijection before it is applied; the input matrix is never
// mutated.
// Errors: ErrNilOrderer, matrix.ErrNonSquare, matrix.ErrAsymmetry,
// matrix.ErrBadPermutation, or the orderer's own error.
func Reorder(m matrix.Matrix, or Orderer) (*Reordering, error) {
	if or == nil {
		return nil, ErrNilOrderer
	}
	if err := matrix.ValidateSymmetric(m, 0); err != nil {
		return nil, fmt.Errorf("Reorder: %w", err)
	}
	perm, err := or.Order(m)
	if err != nil {
		return nil, fmt.Errorf("Reorder: %w", err)
	}
	idx := make([]int, len(perm))
	for k, p := range perm {
		idx[k] = int(p)
	}
	pm, err := matrix.Permute(m, idx)
	if err != nil {
		return nil, fmt.Errorf("Reorder: %w", err)
	}

	return &Reordering{Matrix: pm, Permutation: append([]catalog.Local(nil), perm...)}, nil
}
