// Package stats resolves pairwise statistic names into executable Statistic
// functions and ships the built-in statistics evaluated over a model ensemble.
//
// Column mode recognizes exactly:
//
//	"mutual information": mean per-model estimate from the inference Engine.
//	"dependence probability": share of samples placing both columns in one view.
//	"correlation": Pearson r over complete rows of the raw table.
//
// Row mode recognizes exactly:
//
//	"similarity": share of (sample, column) pairs where both rows share a category.
//
// Names are case-sensitive. Anything else fails with a *ParseError naming the
// offending function verbatim.
//
// Every Statistic is symmetric in (a, b); the pairwise computer relies on that
// to evaluate only the upper triangle.
package stats
