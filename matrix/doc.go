// Package matrix offers the dense, row-major matrix used to hold pairwise
// relationship values, plus the handful of structural helpers the pairwise
// pipeline needs on top of it.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 buffer with bounds-checked At/Set and a
//     SetSym writer that fills both symmetric slots in one call.
//   - Validators (ValidateSquare, ValidateSymmetric, ValidateFinite,
//     ValidatePermutation) returning package sentinels.
//   - Permute, which applies one permutation to both axes of a square matrix.
//   - PairwiseDistances, the condensed Euclidean distance vector between rows.
//
// Matrices are best for dense or small selections where O(n²) memory and
// O(n²) build time are acceptable, which is always the case for pairwise
// statistics: every cell is evaluated anyway.
package matrix
