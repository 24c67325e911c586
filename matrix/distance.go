// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

const opPairwiseDistances = "PairwiseDistances"

// PairwiseDistances returns the condensed Euclidean distance vector between the
// rows of m: entry CondensedIndex(n, i, j) holds ‖row_i − row_j‖₂ for i<j.
// MAIN DESCRIPTION:
//   - Treats every row as an observation vector; the layout matches the
//     classic condensed form (upper triangle, row by row, diagonal omitted).
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite cells make distances meaningless).
//
// Complexity:
//   - Time O(n²·c), Space O(n²/2).
func PairwiseDistances(m Matrix) ([]float64, error) {
	if err := ValidateFinite(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opPairwiseDistances, err)
	}
	n, c := m.Rows(), m.Cols()
	out := make([]float64, n*(n-1)/2)

	var i, j, k int
	var a, b, sum float64
	pos := 0
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < c; k++ {
				a, _ = m.At(i, k)
				b, _ = m.At(j, k)
				sum += (a - b) * (a - b)
			}
			out[pos] = math.Sqrt(sum)
			pos++
		}
	}

	return out, nil
}

// CondensedIndex maps the pair (i, j), i != j, of an n-point set to its slot
// in a condensed distance vector. Order of i and j does not matter.
func CondensedIndex(n, i, j int) int {
	if i > j {
		i, j = j, i
	}

	return n*i - i*(i+1)/2 + (j - i - 1)
}
