package stats

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pairwise/catalog"
)

// Similarity compares rows a and b: the share of (sample, column) pairs in
// which both rows fall in the same category of the column's view.
// Columns default to every catalog column; Inputs.TargetColumns narrows them.
// Complexity: O(samples · columns).
func Similarity(ctx context.Context, in *Inputs, a, b catalog.Index) (float64, error) {
	if in == nil || in.Ensemble == nil || in.Catalog == nil {
		return 0, fmt.Errorf("similarity: ensemble/catalog: %w", ErrMissingInput)
	}
	if err := in.Ensemble.Check(); err != nil {
		return 0, fmt.Errorf("similarity: %w", err)
	}
	cols := in.TargetColumns
	if cols == nil {
		cols = make([]catalog.Index, in.Catalog.NumColumns())
		for i := range cols {
			cols[i] = catalog.Index(i)
		}
	}
	if len(cols) == 0 {
		return 0, fmt.Errorf("similarity: target columns: %w", ErrMissingInput)
	}

	var score float64
	for k, latent := range in.Ensemble.Latents {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		xd := in.Ensemble.Assignments[k]
		for _, col := range cols {
			v, err := latent.View(int(col))
			if err != nil {
				return 0, fmt.Errorf("similarity: sample %d: %w", k, err)
			}
			if v < 0 || v >= len(xd) {
				return 0, fmt.Errorf("similarity: sample %d: view %d of %d: %w", k, v, len(xd), ErrMissingInput)
			}
			rows := xd[v]
			if int(a) < 0 || int(a) >= len(rows) || int(b) < 0 || int(b) >= len(rows) {
				return 0, fmt.Errorf("similarity: rows (%d,%d) of %d: %w", a, b, len(rows), catalog.ErrRowOutOfRange)
			}
			if rows[a] == rows[b] {
				score++
			}
		}
	}

	return score / float64(in.Ensemble.Len()*len(cols)), nil
}
