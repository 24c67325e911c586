// Package catalog holds the dataset catalog (column name ↔ index maps and row
// count) and the Index Selector that turns an optional list of requested names
// into an ordered Selection.
//
// Two index spaces exist and are kept apart by type:
//
//	Index: a column (or row) id in full-table space, as the catalog numbers it.
//	Local: a position inside a Selection, i.e. a matrix axis position.
//
// Convert explicitly with Selection.Catalog and Selection.Local; never index a
// Selection with a raw int taken from somewhere else.
//
// Errors:
//
//   - ErrUnknownColumn (via *LookupError) for names missing from the catalog.
//   - ErrDuplicateName, ErrEmptySelection for malformed requests.
//   - ErrRowOutOfRange for row ids outside [0, NumRows).
//   - ErrInconsistent for name/index maps that are not inverse bijections.
package catalog
