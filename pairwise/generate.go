package pairwise

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pairwise/catalog"
	"github.com/katalvlaran/pairwise/ensemble"
	"github.com/katalvlaran/pairwise/matrix"
	"github.com/katalvlaran/pairwise/stats"
	"github.com/katalvlaran/pairwise/table"
)

const (
	pipelineColumns = "columns"
	pipelineRows    = "rows"
	resultOK        = "ok"
	resultError     = "error"
)

// ColumnRequest configures one column-pipeline run.
type ColumnRequest struct {
	// Function is a column-mode statistic name, e.g. "dependence probability".
	Function string

	Catalog  *catalog.Catalog
	Ensemble *ensemble.Ensemble
	Table    *table.Table
	Engine   stats.Engine

	// Confidence and Limit are carried for callers that filter results
	// downstream; the pipeline itself does not read them.
	Confidence *float64
	Limit      *int

	// ColumnNames restricts and orders the matrix axes; nil means every column.
	ColumnNames []string

	// ComponentThreshold enables component extraction when non-nil.
	ComponentThreshold *float64

	// MISamples overrides stats.DefaultMISamples when > 0.
	MISamples int
}

// ColumnResult is the output of GenerateColumnMatrix. Matrix, Names and the
// catalog indices behind them are already in reordered position.
type ColumnResult struct {
	RequestID   string
	Matrix      *matrix.Dense
	Names       []string
	Indices     []catalog.Index
	Permutation []catalog.Local
	// Components is nil when no threshold was requested.
	Components []Component
}

// RowRequest configures one row-pipeline run.
type RowRequest struct {
	// Function must name a row-mode statistic; empty means "similarity".
	Function string

	Catalog  *catalog.Catalog
	Ensemble *ensemble.Ensemble

	// Rows restricts and orders the matrix axes; nil means every row.
	Rows []int

	// TargetColumns limits which columns similarity compares; nil means all.
	TargetColumns []string

	ComponentThreshold *float64
}

// RowResult is the output of GenerateRowMatrix. Rows are not reordered.
type RowResult struct {
	RequestID  string
	Matrix     *matrix.Dense
	Rows       []catalog.Index
	Components []Component
}

// GenerateColumnMatrix runs the column pipeline.
// MAIN DESCRIPTION:
//   - resolve Function (column mode) → select ColumnNames → Compute →
//     FindComponents + RemapComponents (only when ComponentThreshold != nil)
//     → Reorder (always) → permute names and indices alongside.
//
// Errors:
//   - ErrMissingCatalog; *stats.ParseError; *catalog.LookupError,
//     catalog.ErrDuplicateName, catalog.ErrEmptySelection; ensemble shape
//     errors; any statistic error unchanged; ErrBadThreshold; orderer errors.
//   - Every failure aborts the run; no partial result is returned.
func GenerateColumnMatrix(ctx context.Context, req ColumnRequest, opts ...Option) (res *ColumnResult, err error) {
	o := gatherOptions(opts...)
	id := uuid.NewString()
	ctx, span := tracer.Start(ctx, "pairwise.GenerateColumnMatrix", trace.WithAttributes(
		attribute.String("pairwise.request_id", id),
		attribute.String("pairwise.function", req.Function),
	))
	defer func() { finish(span, pipelineColumns, err) }()

	if req.Catalog == nil {
		return nil, ErrMissingCatalog
	}
	stat, err := o.resolver.Resolve(req.Function, stats.Column)
	if err != nil {
		return nil, err
	}
	if req.Ensemble != nil {
		if err = req.Ensemble.Validate(req.Catalog.NumColumns(), req.Catalog.NumRows()); err != nil {
			return nil, err
		}
	}
	sel, err := req.Catalog.Select(req.ColumnNames)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("column matrix requested",
		"request_id", id,
		"function", req.Function,
		"columns", sel.Len(),
	)

	in := &stats.Inputs{
		Catalog:   req.Catalog,
		Ensemble:  req.Ensemble,
		Table:     req.Table,
		Engine:    req.Engine,
		MISamples: req.MISamples,
	}
	m, err := Compute(ctx, stat, in, sel, opts...)
	if err != nil {
		return nil, err
	}

	var comps []Component
	if req.ComponentThreshold != nil {
		if comps, err = components(m, sel, *req.ComponentThreshold); err != nil {
			return nil, err
		}
		o.logger.Debug("components found", "request_id", id, "count", len(comps))
	}

	_, rspan := tracer.Start(ctx, "pairwise.Reorder")
	ro, err := Reorder(m, o.orderer)
	rspan.End()
	if err != nil {
		return nil, err
	}
	ordered, err := sel.Permute(ro.Permutation)
	if err != nil {
		return nil, fmt.Errorf("GenerateColumnMatrix: %w", err)
	}

	return &ColumnResult{
		RequestID:   id,
		Matrix:      ro.Matrix,
		Names:       ordered.Names,
		Indices:     ordered.Indices,
		Permutation: ro.Permutation,
		Components:  comps,
	}, nil
}

// GenerateRowMatrix runs the row pipeline: resolve (row mode) → select rows
// → Compute → optional components. Rows keep their requested order.
func GenerateRowMatrix(ctx context.Context, req RowRequest, opts ...Option) (res *RowResult, err error) {
	o := gatherOptions(opts...)
	id := uuid.NewString()
	name := req.Function
	if name == "" {
		name = stats.NameSimilarity
	}
	ctx, span := tracer.Start(ctx, "pairwise.GenerateRowMatrix", trace.WithAttributes(
		attribute.String("pairwise.request_id", id),
		attribute.String("pairwise.function", name),
	))
	defer func() { finish(span, pipelineRows, err) }()

	if req.Catalog == nil {
		return nil, ErrMissingCatalog
	}
	stat, err := o.resolver.Resolve(name, stats.Row)
	if err != nil {
		return nil, err
	}
	if req.Ensemble != nil {
		if err = req.Ensemble.Validate(req.Catalog.NumColumns(), req.Catalog.NumRows()); err != nil {
			return nil, err
		}
	}
	sel, err := req.Catalog.SelectRows(req.Rows)
	if err != nil {
		return nil, err
	}
	var targets []catalog.Index
	if req.TargetColumns != nil {
		cols, err := req.Catalog.Select(req.TargetColumns)
		if err != nil {
			return nil, err
		}
		targets = cols.Indices
	}
	o.logger.Debug("row matrix requested", "request_id", id, "rows", sel.Len())

	in := &stats.Inputs{
		Catalog:       req.Catalog,
		Ensemble:      req.Ensemble,
		TargetColumns: targets,
	}
	m, err := Compute(ctx, stat, in, sel, opts...)
	if err != nil {
		return nil, err
	}

	var comps []Component
	if req.ComponentThreshold != nil {
		if comps, err = components(m, sel, *req.ComponentThreshold); err != nil {
			return nil, err
		}
		o.logger.Debug("components found", "request_id", id, "count", len(comps))
	}

	return &RowResult{
		RequestID:  id,
		Matrix:     m,
		Rows:       append([]catalog.Index(nil), sel.Indices...),
		Components: comps,
	}, nil
}

// components runs FindComponents and lifts the result into catalog space.
func components(m matrix.Matrix, sel catalog.Selection, threshold float64) ([]Component, error) {
	local, err := FindComponents(m, threshold)
	if err != nil {
		return nil, err
	}
	comps, err := RemapComponents(local, sel)
	if err != nil {
		return nil, err
	}
	componentsFound.Observe(float64(len(comps)))

	return comps, nil
}

// finish records the request outcome on the span and in metrics.
func finish(span trace.Span, pipeline string, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		requestsTotal.WithLabelValues(pipeline, resultError).Inc()
	} else {
		requestsTotal.WithLabelValues(pipeline, resultOK).Inc()
	}
	span.End()
}
