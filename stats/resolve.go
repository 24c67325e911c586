package stats

import (
	"fmt"
	"sort"
)

// Recognized function names, exact and case-sensitive.
const (
	NameMutualInformation     = "mutual information"
	NameDependenceProbability = "dependence probability"
	NameCorrelation           = "correlation"
	NameSimilarity            = "similarity"
)

const panicUnrecognized = "stats: WithStatistic: %q is not a recognized %s function"

// Resolver maps (name, mode) to a Statistic. The recognized name set is fixed;
// WithStatistic only rebinds the implementation behind a recognized name.
type Resolver struct {
	column map[string]Statistic
	row    map[string]Statistic
}

// ResolverOption customizes a Resolver.
type ResolverOption func(*Resolver)

// WithStatistic binds fn to a recognized name in the given mode.
// Panics if name is not recognized in that mode (programmer error).
func WithStatistic(mode Mode, name string, fn Statistic) ResolverOption {
	return func(r *Resolver) {
		table := r.tableFor(mode)
		if _, ok := table[name]; !ok {
			panic(fmt.Sprintf(panicUnrecognized, name, mode))
		}
		table[name] = fn
	}
}

// NewResolver returns a Resolver bound to the built-in statistics, then applies opts.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		column: map[string]Statistic{
			NameMutualInformation:     MutualInformation,
			NameDependenceProbability: DependenceProbability,
			NameCorrelation:           Correlation,
		},
		row: map[string]Statistic{
			NameSimilarity: Similarity,
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *Resolver) tableFor(mode Mode) map[string]Statistic {
	if mode == Row {
		return r.row
	}

	return r.column
}

// Resolve returns the Statistic registered under name for mode, or a
// *ParseError carrying name verbatim.
func (r *Resolver) Resolve(name string, mode Mode) (Statistic, error) {
	fn, ok := r.tableFor(mode)[name]
	if !ok || fn == nil {
		return nil, &ParseError{Mode: mode, Name: name}
	}

	return fn, nil
}

// Names lists the recognized names for mode, sorted.
func (r *Resolver) Names(mode Mode) []string {
	table := r.tableFor(mode)
	out := make([]string, 0, len(table))
	for name := range table {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

var defaultResolver = NewResolver()

// Resolve resolves against the built-in statistics.
func Resolve(name string, mode Mode) (Statistic, error) {
	return defaultResolver.Resolve(name, mode)
}
