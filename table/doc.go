// Package table converts delimited text into the square relation matrix and
// label sequence the ranking pipeline starts from, and back again.
//
// 🚀 What is table?
//
//	Parse splits a text blob into rows on a line separator (default "\n")
//	and rows into cells on a column separator (default "\t"). The first
//	cell of every row is an optional whitespace-trimmed label; the rest are
//	converted to numbers by a pluggable ConvertFunc (default: integer
//	parse). Format is the exact inverse, so Parse(Format(m, labels)) is an
//	identity for integer matrices.
//
// Permissive by design:
//
//   - Empty cells and cells the converter rejects degrade to 0 — malformed
//     data becomes zero weight instead of aborting the pipeline.
//   - WithStrict switches rejected cells to a hard ErrDataIntegrity failure
//     naming the offending row and column.
//
// Fail-fast invariants:
//
//   - The line and column separators must differ (ErrSeparatorConflict).
//   - Every row must carry at least as many data cells as there are rows,
//     so the result is always square (ErrMalformedTable otherwise, wrapped
//     with the offending row index and its cell count).
package table
