package linkage

import "fmt"

// LeafOrder returns the left-to-right leaf sequence of the dendrogram encoded
// by merges over n leaves. For n == 1 the order is [0].
// Errors: ErrNoPoints, ErrBadTree when merges is not a tree over n leaves.
// Complexity: O(n).
func LeafOrder(merges []Merge, n int) ([]int, error) {
	if n < 1 {
		return nil, ErrNoPoints
	}
	if len(merges) != n-1 {
		return nil, fmt.Errorf("LeafOrder: %d merges for %d leaves: %w", len(merges), n, ErrBadTree)
	}
	if n == 1 {
		return []int{0}, nil
	}

	order := make([]int, 0, n)
	used := make([]bool, 2*n-1)
	stack := []int{2*n - 2} // root
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id < 0 || id >= 2*n-1 || used[id] {
			return nil, fmt.Errorf("LeafOrder: node %d: %w", id, ErrBadTree)
		}
		used[id] = true
		if id < n {
			order = append(order, id)
			continue
		}
		m := merges[id-n]
		if m.Left >= id || m.Right >= id {
			return nil, fmt.Errorf("LeafOrder: merge %d references a later cluster: %w", id-n, ErrBadTree)
		}
		// Right first so Left is expanded first.
		stack = append(stack, m.Right, m.Left)
	}
	if len(order) != n {
		return nil, fmt.Errorf("LeafOrder: reached %d of %d leaves: %w", len(order), n, ErrBadTree)
	}

	return order, nil
}
