package pairwise

import "errors"

var (
	// ErrNilStatistic indicates Compute was called without a Statistic.
	ErrNilStatistic = errors.New("pairwise: nil statistic")

	// ErrMissingCatalog indicates a request without a catalog.
	ErrMissingCatalog = errors.New("pairwise: catalog is required")

	// ErrBadThreshold indicates a NaN component threshold.
	ErrBadThreshold = errors.New("pairwise: threshold must not be NaN")

	// ErrNilOrderer indicates Reorder was called without an Orderer.
	ErrNilOrderer = errors.New("pairwise: nil orderer")
)
