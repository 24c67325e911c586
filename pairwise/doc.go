// Package pairwise computes symmetric relationship matrices over the columns
// (or rows) of a modeled dataset and extracts structure from them.
//
// Pipeline:
//
//	stats.Resolve      name + mode            → Statistic
//	Catalog.Select     optional column names  → Selection (names + catalog indices)
//	Compute            Statistic × Selection  → symmetric n×n matrix, n(n+1)/2 evaluations
//	FindComponents     matrix × threshold     → connected groups (size ≥ 2), matrix space
//	RemapComponents    groups × Selection     → groups in catalog space
//	Reorder            matrix × Orderer       → permutation + permuted matrix
//
// GenerateColumnMatrix and GenerateRowMatrix run the whole pipeline.
//
// Options:
//
//   - WithWorkers(k)     evaluate cells on k goroutines (errgroup); default 1.
//   - WithLogger(l)      slog logger for debug events; default slog.Default().
//   - WithOrderer(o)     reordering strategy; default single-linkage leaf order.
//   - WithResolver(r)    statistic resolver; default stats built-ins.
//
// Errors:
//
//   - *stats.ParseError for unknown function names; catalog lookup errors for unknown columns.
//   - Any Statistic error, returned unchanged; no partial matrix is ever returned.
//   - matrix.ErrNonSquare / ErrBadThreshold for malformed post-processing input.
package pairwise
