package table

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pagerank/matrix"
)

// Parse extracts a square relation matrix and its aligned label sequence
// from delimited text.
//
// Algorithm Outline:
//  1. Gather options; separators must be distinct and non-empty.
//  2. Split text into rows on the line separator, rows into cells on the
//     column separator.
//  3. With labels enabled, pop the first cell of each row, trim surrounding
//     whitespace, and record it; otherwise record "".
//  4. Convert each remaining cell: empty cells become 0; cells the converter
//     rejects become 0 (permissive default) or fail with ErrDataIntegrity in
//     strict mode.
//  5. Enforce the square invariant: every row must have at least rowCount
//     data cells. The matrix keeps exactly the first rowCount cells per row.
//
// Complexity: O(len(text)) split + O(N²) conversion.
//
// Errors:
//   - ErrSeparatorConflict — line separator equals column separator (or empty).
//   - ErrMalformedTable    — some row has fewer data cells than the row count;
//     the wrap names the offending row index and its cell count.
//   - ErrDataIntegrity     — strict mode only: a non-empty cell was rejected.
//
// The returned labels slice always has length == matrix dimension.
func Parse(text string, opts ...Option) (*matrix.Dense, []string, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, nil, err
	}

	rows := strings.Split(text, o.lineSep)
	size := len(rows)

	labels := make([]string, 0, size)
	cellRows := make([][]string, 0, size)
	for _, r := range rows {
		cells := strings.Split(r, o.columnSep)
		if o.hasLabels {
			labels = append(labels, strings.TrimSpace(cells[0]))
			cells = cells[1:]
		} else {
			labels = append(labels, "")
		}
		cellRows = append(cellRows, cells)
	}

	// Square invariant: a row with fewer data cells than the row count can
	// never form an N×N matrix. Checked before conversion so the error names
	// the structural problem, not a downstream symptom.
	for i, cells := range cellRows {
		if len(cells) < size {
			return nil, nil, fmt.Errorf("row %d has %d columns, need %dx%d: %w",
				i, len(cells), size, size, ErrMalformedTable)
		}
	}

	m, err := matrix.NewDense(size, size)
	if err != nil {
		return nil, nil, err
	}
	for i, cells := range cellRows {
		for j := 0; j < size; j++ {
			v, convErr := convertCell(cells[j], o)
			if convErr != nil {
				return nil, nil, fmt.Errorf("row %d, column %d: cell %q: %w",
					i, j, cells[j], ErrDataIntegrity)
			}
			if setErr := m.Set(i, j, v); setErr != nil {
				return nil, nil, setErr
			}
		}
	}

	return m, labels, nil
}

// convertCell applies the configured converter with the permissive default:
// empty cells and rejected cells are zero weight. In strict mode a rejected
// non-empty cell surfaces as an error instead.
func convertCell(cell string, o options) (float64, error) {
	if cell == "" {
		return 0, nil
	}
	v, err := o.convert(cell)
	if err != nil {
		if o.strict {
			return 0, err
		}

		return 0, nil // malformed data degrades to zero weight
	}

	return v, nil
}
