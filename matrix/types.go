// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface.
// Pairwise consumers (component search, reordering) accept this interface so
// they can run over any storage; Dense is the only implementation shipped.
package matrix

// Matrix is a read-only view of a two-dimensional float64 array.
// Every consumer in this module only reads; writers work on *Dense directly.
//
// Complexity notes: all methods are expected O(1).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}
