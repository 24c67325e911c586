package linkage

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/pairwise/matrix"
)

var (
	// ErrNoPoints indicates n < 1.
	ErrNoPoints = errors.New("linkage: need at least one point")

	// ErrDistanceLength indicates a condensed vector whose length is not n(n-1)/2.
	ErrDistanceLength = errors.New("linkage: condensed distance length mismatch")

	// ErrBadTree indicates a merge list that does not describe a binary tree over n leaves.
	ErrBadTree = errors.New("linkage: malformed merge list")
)

// Merge is one agglomeration step: clusters Left and Right (Left < Right)
// joined at Distance into a cluster of Size points.
type Merge struct {
	Left     int
	Right    int
	Distance float64
	Size     int
}

// pair is one candidate edge of the complete distance graph.
type pair struct {
	i, j int
	d    float64
}

// Single computes single-linkage merges from a condensed distance vector.
// MAIN DESCRIPTION:
//   - Single linkage equals Kruskal over the complete graph: walk pairs by
//     ascending distance and merge whenever the endpoints sit in different
//     clusters. Ties keep (i, j) lexicographic order.
//
// Implementation:
//   - Stage 1: validate n and len(dist).
//   - Stage 2: build and stable-sort the pair list.
//   - Stage 3: disjoint-set with path compression and union by rank; each
//     successful union appends a Merge and relabels the root with id n+k.
//
// Errors:
//   - ErrNoPoints, ErrDistanceLength.
//
// Complexity:
//   - Time O(P log P), Memory O(P) with P = n(n-1)/2.
func Single(dist []float64, n int) ([]Merge, error) {
	if n < 1 {
		return nil, ErrNoPoints
	}
	if len(dist) != n*(n-1)/2 {
		return nil, fmt.Errorf("Single: got %d distances for %d points: %w", len(dist), n, ErrDistanceLength)
	}

	pairs := make([]pair, 0, len(dist))
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			pairs = append(pairs, pair{i: i, j: j, d: dist[matrix.CondensedIndex(n, i, j)]})
		}
	}
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].d < pairs[b].d })

	parent := make([]int, n)
	rank := make([]int, n)
	cluster := make([]int, n) // root -> current cluster id
	size := make([]int, n)    // root -> member count
	for i = 0; i < n; i++ {
		parent[i] = i
		cluster[i] = i
		size[i] = 1
	}

	// Iterative find with path compression to avoid deep recursion.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}

	merges := make([]Merge, 0, n-1)
	for _, p := range pairs {
		ru, rv := find(p.i), find(p.j)
		if ru == rv {
			continue
		}
		left, right := cluster[ru], cluster[rv]
		if left > right {
			left, right = right, left
		}
		total := size[ru] + size[rv]

		// Union by rank.
		root := ru
		if rank[ru] < rank[rv] {
			parent[ru] = rv
			root = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
		cluster[root] = n + len(merges)
		size[root] = total

		merges = append(merges, Merge{Left: left, Right: right, Distance: p.d, Size: total})
		if len(merges) == n-1 {
			break
		}
	}

	return merges, nil
}
