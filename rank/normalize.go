package rank

import (
	"fmt"

	"github.com/katalvlaran/pagerank/matrix"
)

// Normalize rescales m so every column sums to 1 (column-stochastic form).
//
// Algorithm Outline:
//  1. Sum each column.
//  2. Divide every entry by its column sum.
//
// Zero-sum columns (dangling nodes) follow the configured policy:
//   - default: plain division — entries become NaN (0/0) or ±Inf and
//     propagate through the rest of the pipeline unmasked;
//   - WithDanglingUniform: the column becomes the uniform distribution 1/N;
//   - WithStrict: fail with ErrDataIntegrity naming the first such column.
//
// Complexity: O(r*c) time, O(r*c) memory for the result.
//
// Errors:
//   - matrix.ErrNilMatrix — m is nil.
//   - ErrDataIntegrity    — strict mode only, zero-sum column.
func Normalize(m *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	sums, err := matrix.ColumnSums(m)
	if err != nil {
		return nil, err
	}

	if o.strict {
		for j, s := range sums {
			if s == 0 {
				return nil, fmt.Errorf("column %d sums to zero: %w", j, ErrDataIntegrity)
			}
		}
	}

	uniform := 1 / float64(m.Rows())
	out := m.Transform(func(_, col int, v float64) float64 {
		if sums[col] == 0 && o.danglingUniform {
			return uniform // dangling column redistributed uniformly
		}

		return v / sums[col]
	})

	return out, nil
}
