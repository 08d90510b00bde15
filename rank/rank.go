package rank

import (
	"fmt"

	"github.com/katalvlaran/pagerank/matrix"
)

// Rank runs power iteration by repeated squaring: M ← M·M, once per epoch.
//
// Algorithm Outline:
//  1. Validate the input is square.
//  2. For each of WithEpochs (default 10) epochs, replace the working matrix
//     with its own product with itself.
//
// After k epochs the result equals M^(2^k) — repeated squaring reaches the
// dominant eigenstructure exponentially faster than multiplying by the
// original matrix each round. For a damped column-stochastic input the
// columns converge toward the stationary distribution, which is exactly what
// IsolateScores reads off afterwards.
//
// There is neither a convergence test nor overflow guarding: the epoch count
// is the sole termination condition, and ill-conditioned (non-stochastic)
// inputs may overflow or vanish.
//
// Complexity: O(epochs · N³) time, O(N²) memory (the product buffer is
// reallocated per epoch by matrix.Mul; the input is never mutated).
//
// Errors:
//   - matrix.ErrNilMatrix — m is nil.
//   - matrix.ErrNonSquare — m is not square.
func Rank(m *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = matrix.EnsureSquare(m); err != nil {
		return nil, fmt.Errorf("Rank: %w", err)
	}

	cur := m.Clone() // zero epochs must still return a fresh value
	var epoch int
	for epoch = 0; epoch < o.epochs; epoch++ {
		next, mulErr := matrix.Mul(cur, cur)
		if mulErr != nil {
			return nil, fmt.Errorf("Rank: %w", mulErr)
		}
		cur = next
	}

	return cur, nil
}
