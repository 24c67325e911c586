// Package linkage provides agglomerative (single-linkage) clustering over the
// rows of a matrix and the dendrogram leaf order derived from it.
//
// The pairwise reorderer uses Order to obtain a permutation that places
// similar rows next to each other. Leaf order is read straight from the merge
// tree; nothing is drawn.
//
// Merge ids follow the usual convention: leaves are 0..n-1, the k-th merge
// creates cluster n+k, and every Merge lists the smaller child id as Left.
//
// Complexity:
//
//   - Single: O(P log P) with P = n(n-1)/2 pairs (sort) plus α(n)·P union-find.
//   - LeafOrder: O(n).
package linkage
