package pairwise

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pairwise/catalog"
	"github.com/katalvlaran/pairwise/matrix"
	"github.com/katalvlaran/pairwise/stats"
)

// Compute builds the symmetric n×n matrix of stat over the selection.
// MAIN DESCRIPTION:
//   - Cell (i, j) holds stat(sel.Indices[i], sel.Indices[j]); the statistic is
//     evaluated exactly once per unordered pair (i ≤ j), n(n+1)/2 calls in
//     total, and both mirrored cells are written by a single SetSym.
//   - Diagonal cells are evaluated like any other pair.
//
// Implementation:
//   - Stage 1: validate stat and the selection, allocate the matrix.
//   - Stage 2 (workers == 1): upper triangle in row-major order, ctx checked
//     before every evaluation.
//   - Stage 2 (workers > 1): one errgroup task per pair, SetLimit(workers).
//     Tasks write disjoint cells, so no locking is needed; Compute returns
//     only after every started task has finished.
//
// Errors:
//   - ErrNilStatistic, catalog.ErrEmptySelection.
//   - The first error returned by stat, unchanged; ctx.Err() on cancellation.
//     On any error the matrix is discarded.
//
// Complexity:
//   - n(n+1)/2 evaluations; Space O(n²).
func Compute(ctx context.Context, stat stats.Statistic, in *stats.Inputs, sel catalog.Selection, opts ...Option) (*matrix.Dense, error) {
	if stat == nil {
		return nil, ErrNilStatistic
	}
	n := sel.Len()
	if n == 0 {
		return nil, catalog.ErrEmptySelection
	}
	o := gatherOptions(opts...)

	ctx, span := tracer.Start(ctx, "pairwise.Compute", trace.WithAttributes(
		attribute.Int("pairwise.n", n),
		attribute.Int("pairwise.workers", o.workers),
	))
	defer span.End()

	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	if o.workers <= 1 {
		err = computeSequential(ctx, stat, in, sel, m)
	} else {
		err = computeParallel(ctx, stat, in, sel, m, o.workers)
	}
	elapsed := time.Since(start)
	computeDuration.Observe(elapsed.Seconds())

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.logger.Debug("pairwise compute failed", "n", n, "workers", o.workers, "error", err)

		return nil, err
	}
	o.logger.Debug("pairwise compute done",
		"n", n,
		"evaluations", n*(n+1)/2,
		"workers", o.workers,
		"duration", elapsed,
	)

	return m, nil
}

func computeSequential(ctx context.Context, stat stats.Statistic, in *stats.Inputs, sel catalog.Selection, m *matrix.Dense) error {
	n := sel.Len()
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := evaluate(ctx, stat, in, sel, m, i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

func computeParallel(ctx context.Context, stat stats.Statistic, in *stats.Inputs, sel catalog.Selection, m *matrix.Dense, workers int) error {
	n := sel.Len()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

schedule:
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if gctx.Err() != nil {
				break schedule
			}
			i, j := i, j
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				return evaluate(gctx, stat, in, sel, m, i, j)
			})
		}
	}

	if err := g.Wait(); err != nil {
		return err
	}

	// Parent cancelled after scheduling stopped but before any task saw it.
	return ctx.Err()
}

// evaluate computes one unordered pair and mirrors it into m.
func evaluate(ctx context.Context, stat stats.Statistic, in *stats.Inputs, sel catalog.Selection, m *matrix.Dense, i, j int) error {
	v, err := stat(ctx, in, sel.Indices[i], sel.Indices[j])
	evaluationsTotal.Inc()
	if err != nil {
		return err
	}

	return m.SetSym(i, j, v)
}
