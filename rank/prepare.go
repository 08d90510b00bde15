package rank

import (
	"fmt"

	"github.com/katalvlaran/pagerank/matrix"
)

// Prepare damps a stochastic matrix toward the uniform distribution:
// every entry becomes p·v + (1−p)·(1/N), with p = WithProportion (0.85 by
// default) and N the matrix dimension.
//
// For p in [0,1] and a column-stochastic input, the output stays
// column-stochastic. Out-of-range proportions are accepted and simply change
// the blend weighting.
//
// Complexity: O(N²) time and memory.
//
// Errors:
//   - matrix.ErrNilMatrix — m is nil.
//   - matrix.ErrNonSquare — m is not square (damping needs 1/N well-defined
//     against the entity count on both axes).
func Prepare(m *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = matrix.EnsureSquare(m); err != nil {
		return nil, fmt.Errorf("Prepare: %w", err)
	}

	restart := (1 - o.proportion) / float64(m.Rows())
	out := m.Transform(func(_, _ int, v float64) float64 {
		return o.proportion*v + restart
	})

	return out, nil
}
