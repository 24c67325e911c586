package linkage

import (
	"fmt"

	"github.com/katalvlaran/pairwise/matrix"
)

// Order clusters the rows of m (each row an observation vector) with
// Euclidean distance and single linkage, and returns the dendrogram leaf
// order: a permutation of [0, m.Rows()).
// Errors: matrix.ErrNilMatrix, matrix.ErrNaNInf from the distance step.
func Order(m matrix.Matrix) ([]int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("Order: %w", err)
	}
	dist, err := matrix.PairwiseDistances(m)
	if err != nil {
		return nil, fmt.Errorf("Order: %w", err)
	}
	merges, err := Single(dist, m.Rows())
	if err != nil {
		return nil, fmt.Errorf("Order: %w", err)
	}

	return LeafOrder(merges, m.Rows())
}
