package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/pagerank/matrix"
)

// Format renders a matrix and its labels back into delimited text — the
// inverse of Parse, so Parse(Format(m, labels)) round-trips integer data.
//
// Label handling mirrors the pipeline's permissive defaults: with labels
// enabled, a labels slice shorter than the matrix pads with "" and a longer
// one truncates. WithStrict turns any length mismatch into ErrDataIntegrity.
//
// Values are formatted with the shortest representation that survives a
// float64 round-trip ('g', precision -1), so integer weights come out as
// plain integers.
//
// Errors:
//   - matrix.ErrNilMatrix  — m is nil.
//   - ErrSeparatorConflict — invalid separator configuration.
//   - ErrDataIntegrity     — strict mode only: len(labels) != m.Rows().
func Format(m *matrix.Dense, labels []string, opts ...Option) (string, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return "", err
	}
	if m == nil {
		return "", matrix.ErrNilMatrix
	}
	if o.strict && o.hasLabels && len(labels) != m.Rows() {
		return "", fmt.Errorf("have %d labels for %d rows: %w",
			len(labels), m.Rows(), ErrDataIntegrity)
	}

	var b strings.Builder
	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			b.WriteString(o.lineSep)
		}
		if o.hasLabels {
			if i < len(labels) {
				b.WriteString(labels[i])
			}
			b.WriteString(o.columnSep)
		}
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				b.WriteString(o.columnSep)
			}
			v, atErr := m.At(i, j)
			if atErr != nil {
				return "", atErr
			}
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	}

	return b.String(), nil
}
