package stats

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/pairwise/catalog"
	"github.com/katalvlaran/pairwise/table"
)

// Correlation is Pearson's r between numerical columns a and b over the rows
// where both cells are present. Fewer than two complete rows, or a constant
// column, yields 0 rather than NaN so downstream thresholding and clustering
// stay well-defined.
// Complexity: O(rows).
func Correlation(_ context.Context, in *Inputs, a, b catalog.Index) (float64, error) {
	if in == nil || in.Table == nil || in.Catalog == nil {
		return 0, fmt.Errorf("correlation: table/catalog: %w", ErrMissingInput)
	}
	for _, col := range []catalog.Index{a, b} {
		typ, err := in.Catalog.Type(col)
		if err != nil {
			return 0, fmt.Errorf("correlation: %w", err)
		}
		if typ != catalog.Numerical {
			name, _ := in.Catalog.Name(col)
			return 0, fmt.Errorf("correlation: %q: %w", name, ErrNonNumeric)
		}
	}
	xs, err := in.Table.Column(int(a))
	if err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}
	ys, err := in.Table.Column(int(b))
	if err != nil {
		return 0, fmt.Errorf("correlation: %w", err)
	}

	return pearson(xs, ys), nil
}

// pearson skips pairs with a missing cell on either side.
func pearson(xs, ys []float64) float64 {
	var n, sx, sy float64
	for i := range xs {
		if table.Missing(xs[i]) || table.Missing(ys[i]) {
			continue
		}
		n++
		sx += xs[i]
		sy += ys[i]
	}
	if n < 2 {
		return 0
	}
	mx, my := sx/n, sy/n

	var cov, vx, vy float64
	for i := range xs {
		if table.Missing(xs[i]) || table.Missing(ys[i]) {
			continue
		}
		dx, dy := xs[i]-mx, ys[i]-my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}
	if vx == 0 || vy == 0 {
		return 0
	}

	return cov / math.Sqrt(vx*vy)
}
