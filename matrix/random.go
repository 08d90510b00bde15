// SPDX-License-Identifier: MIT

package matrix

import "math/rand"

// Random builds an n×n Dense with entries drawn uniformly from [0,1),
// seeded explicitly so examples and benchmarks stay reproducible.
// No global randomness: each call owns its own rand.Rand.
// Complexity: O(n²) time and memory.
func Random(n int, seed int64) (*Dense, error) {
	if n <= 0 {
		return nil, ErrBadShape
	}

	rng := rand.New(rand.NewSource(seed))
	m := &Dense{r: n, c: n, data: make([]float64, n*n)}
	for i := range m.data {
		m.data[i] = rng.Float64()
	}

	return m, nil
}
