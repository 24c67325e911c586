// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opPermute = "Permute"

// Permute returns P·m·Pᵀ for the permutation perm: result[i][j] = m[perm[i]][perm[j]].
// MAIN DESCRIPTION:
//   - Reorders both axes of a square matrix identically, so a symmetric input
//     stays symmetric and the multiset of cell values is unchanged.
//
// Implementation:
//   - Stage 1: ValidateSquare, ValidatePermutation.
//   - Stage 2: fast path via Dense.Induced; generic fallback through At/Set.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrBadPermutation.
//
// Complexity:
//   - Time O(n²), Space O(n²). The input is never mutated.
func Permute(m Matrix, perm []int) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("%s: %w", opPermute, err)
	}
	n := m.Rows()
	if err := ValidatePermutation(perm, n); err != nil {
		return nil, fmt.Errorf("%s: %w", opPermute, err)
	}

	if d, ok := m.(*Dense); ok {
		return d.Induced(perm, perm)
	}

	res, err := NewSquare(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opPermute, err)
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(perm[i], perm[j]); err != nil {
				return nil, fmt.Errorf("%s: %w", opPermute, err)
			}
			res.data[i*n+j] = v
		}
	}

	return res, nil
}
