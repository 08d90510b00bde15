package rank

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pagerank/matrix"
)

// IsolateScores reads column 0 of the converged matrix as the per-entity
// score vector. After enough power iteration the columns of a damped
// stochastic matrix are (near-)identical, so column 0 stands for all.
//
// Complexity: O(N) time and memory.
//
// Errors:
//   - matrix.ErrNilMatrix — m is nil.
func IsolateScores(m *matrix.Dense) ([]float64, error) {
	if m == nil {
		return nil, matrix.ErrNilMatrix
	}

	return m.Column(0)
}

// AttachLabels zips labels with scores positionally into Pairs.
//
// By default a length mismatch truncates to the shorter of the two sequences
// — the permissive zip. WithStrict upgrades the mismatch to ErrDataIntegrity
// naming both lengths.
//
// Complexity: O(N) time and memory.
func AttachLabels(scores []float64, labels []string, opts ...Option) ([]Pair, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	if o.strict && len(scores) != len(labels) {
		return nil, fmt.Errorf("%d scores vs %d labels: %w",
			len(scores), len(labels), ErrDataIntegrity)
	}

	n := len(scores)
	if len(labels) < n {
		n = len(labels) // permissive zip truncates to the shorter side
	}

	pairs := make([]Pair, n)
	var i int
	for i = 0; i < n; i++ {
		pairs[i] = Pair{Label: labels[i], Score: scores[i]}
	}

	return pairs, nil
}

// SortResults orders pairs by score, best-first by default. The sort is
// stable, so equal scores keep their incoming (entity) order. WithAscending
// flips the direction; WithKey substitutes the sort key.
//
// The input slice is never mutated; a sorted copy is returned.
//
// Complexity: O(N log N) time, O(N) memory.
func SortResults(pairs []Pair, opts ...Option) ([]Pair, error) {
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	out := make([]Pair, len(pairs))
	copy(out, pairs)

	sort.SliceStable(out, func(i, j int) bool {
		if o.ascending {
			return o.key(out[i]) < o.key(out[j])
		}

		return o.key(out[i]) > o.key(out[j])
	})

	return out, nil
}
