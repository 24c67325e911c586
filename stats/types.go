package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pairwise/catalog"
	"github.com/katalvlaran/pairwise/ensemble"
	"github.com/katalvlaran/pairwise/table"
)

// Mode selects whether a statistic compares two columns or two rows.
type Mode int

const (
	// Column compares two columns across all rows.
	Column Mode = iota
	// Row compares two rows across all columns.
	Row
)

// String returns "column" or "row".
func (m Mode) String() string {
	if m == Row {
		return "row"
	}

	return "column"
}

// DefaultMISamples is the sample count requested from the engine for mutual information.
const DefaultMISamples = 1000

var (
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("stats: invalid function")

	// ErrEngineRequired indicates a statistic that queries the engine got a nil Engine.
	ErrEngineRequired = errors.New("stats: engine required")

	// ErrEngineUnsupported indicates an Engine lacking the capability a statistic needs.
	ErrEngineUnsupported = errors.New("stats: engine does not support this statistic")

	// ErrMissingInput indicates a nil ensemble, catalog or table the statistic depends on.
	ErrMissingInput = errors.New("stats: missing input")

	// ErrNonNumeric indicates correlation requested on a non-numerical column.
	ErrNonNumeric = errors.New("stats: column is not numerical")

	// ErrEmptyEstimate indicates the engine returned no per-model values.
	ErrEmptyEstimate = errors.New("stats: engine returned no estimates")
)

// ParseError reports an unrecognized (name, mode) pair with the name verbatim.
type ParseError struct {
	Mode Mode
	Name string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s function: %s", e.Mode, e.Name)
}

// Is lets errors.Is(err, ErrParse) match.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// Engine is the opaque inference-engine handle. Statistics that need it
// type-assert to the capability they require; nothing else looks inside.
type Engine any

// MutualInformationEstimator is the engine capability behind "mutual information".
// It returns one estimate per ensemble sample.
type MutualInformationEstimator interface {
	MutualInformation(ctx context.Context, in *Inputs, a, b catalog.Index, samples int) ([]float64, error)
}

// Inputs are the read-only arguments shared by every evaluation of one request.
type Inputs struct {
	Catalog  *catalog.Catalog
	Ensemble *ensemble.Ensemble
	Table    *table.Table
	Engine   Engine

	// MISamples overrides DefaultMISamples when > 0.
	MISamples int

	// TargetColumns restricts row similarity to these columns; nil means all.
	TargetColumns []catalog.Index
}

// Statistic evaluates one unordered pair. In Column mode a and b are column
// indices, in Row mode they are row ids. Implementations must be pure in
// their inputs and symmetric in (a, b).
type Statistic func(ctx context.Context, in *Inputs, a, b catalog.Index) (float64, error)
