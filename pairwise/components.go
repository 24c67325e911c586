package pairwise

import (
	"fmt"
	"math"

	"github.com/katalvlaran/pairwise/catalog"
	"github.com/katalvlaran/pairwise/matrix"
)

// Component is a group of mutually reachable entries in catalog space.
type Component []catalog.Index

// FindComponents groups matrix positions linked by values above threshold.
// MAIN DESCRIPTION:
//   - Positions i ≠ j are adjacent when the upper-triangle value
//     m[min(i,j)][max(i,j)] is strictly greater than threshold.
//     The diagonal never creates an edge.
//   - Returns every connected component of size ≥ 2; isolated positions are
//     dropped. Nothing above threshold yields an empty, non-nil slice.
//
// Implementation:
//   - Stage 1: ValidateSquare; reject a NaN threshold.
//   - Stage 2: seed = smallest unvisited position; iterative stack search,
//     marking positions visited when pushed. Adjacency is read lazily from m,
//     no edge list is materialized.
//
// Determinism:
//   - Components appear in order of their smallest member; members appear
//     in discovery order.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrBadThreshold.
//
// Complexity:
//   - Time O(n²), Space O(n).
func FindComponents(m matrix.Matrix, threshold float64) ([][]catalog.Local, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, fmt.Errorf("FindComponents: %w", err)
	}
	if math.IsNaN(threshold) {
		return nil, fmt.Errorf("FindComponents: %w", ErrBadThreshold)
	}

	n := m.Rows()
	visited := make([]bool, n)
	out := make([][]catalog.Local, 0)
	stack := make([]int, 0, n)

	var seed, cur, v int
	for seed = 0; seed < n; seed++ {
		if visited[seed] {
			continue
		}
		visited[seed] = true
		stack = append(stack[:0], seed)
		var comp []catalog.Local
		for len(stack) > 0 {
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, catalog.Local(cur))
			for v = 0; v < n; v++ {
				if visited[v] || !linked(m, cur, v, threshold) {
					continue
				}
				visited[v] = true
				stack = append(stack, v)
			}
		}
		if len(comp) > 1 {
			out = append(out, comp)
		}
	}

	return out, nil
}

// linked reports whether i and j share an edge, reading only the upper triangle.
func linked(m matrix.Matrix, i, j int, threshold float64) bool {
	if i == j {
		return false
	}
	if i > j {
		i, j = j, i
	}
	w, _ := m.At(i, j) // in range after ValidateSquare

	return w > threshold
}

// RemapComponents translates matrix-space components into catalog space
// through the selection that produced the matrix. Order is preserved.
// Errors: catalog.ErrLocalOutOfRange for a position outside the selection.
func RemapComponents(local [][]catalog.Local, sel catalog.Selection) ([]Component, error) {
	out := make([]Component, len(local))
	for k, comp := range local {
		out[k] = make(Component, len(comp))
		for p, l := range comp {
			ix, err := sel.Catalog(l)
			if err != nil {
				return nil, fmt.Errorf("RemapComponents: component %d: %w", k, err)
			}
			out[k][p] = ix
		}
	}

	return out, nil
}
