// Package table: sentinel error set. All parsing failures return these
// sentinels (optionally wrapped with positional context via %w) and tests
// check them via errors.Is.

package table

import "errors"

var (
	// ErrSeparatorConflict indicates an invalid separator configuration:
	// the line separator equals the column separator, or one is empty.
	ErrSeparatorConflict = errors.New("table: line and column separators must be distinct and non-empty")

	// ErrMalformedTable signals that the parsed table is not square: some row
	// has fewer data cells than the total row count. Wrappers carry the
	// offending row index and its cell count.
	ErrMalformedTable = errors.New("table: data is not a square table")

	// ErrDataIntegrity is returned only in strict mode, when a non-empty cell
	// is rejected by the converter or when Format receives a label sequence
	// whose length differs from the matrix dimension.
	ErrDataIntegrity = errors.New("table: data integrity violation")

	// ErrNilConverter indicates WithConverter(nil) — a programmer error caught
	// at option-gathering time instead of a nil dereference mid-parse.
	ErrNilConverter = errors.New("table: converter must not be nil")
)
