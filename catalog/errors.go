package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownColumn indicates a requested column name is not in the catalog.
	ErrUnknownColumn = errors.New("catalog: unknown column name")

	// ErrDuplicateName indicates a name appears twice in a request or catalog.
	ErrDuplicateName = errors.New("catalog: duplicate column name")

	// ErrEmptySelection indicates an explicit, empty subset was requested.
	ErrEmptySelection = errors.New("catalog: empty selection")

	// ErrRowOutOfRange indicates a row id outside [0, NumRows).
	ErrRowOutOfRange = errors.New("catalog: row out of range")

	// ErrInconsistent indicates name_to_idx and idx_to_name are not inverse bijections over [0, n).
	ErrInconsistent = errors.New("catalog: inconsistent name/index maps")

	// ErrUnknownType indicates an unsupported column model type.
	ErrUnknownType = errors.New("catalog: unknown column type")

	// ErrBadSelection indicates a Selection whose names and indices disagree in
	// length or whose indices repeat.
	ErrBadSelection = errors.New("catalog: malformed selection")

	// ErrLocalOutOfRange indicates a Local position outside the Selection.
	ErrLocalOutOfRange = errors.New("catalog: local index out of range")
)

// LookupError reports the offending name verbatim.
type LookupError struct {
	Name string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnknownColumn, e.Name)
}

// Unwrap lets errors.Is(err, ErrUnknownColumn) match.
func (e *LookupError) Unwrap() error { return ErrUnknownColumn }
