package rank_test

import (
	"fmt"

	"github.com/katalvlaran/pagerank/rank"
	"github.com/katalvlaran/pagerank/table"
)

// ExampleRank walks the full numeric pipeline on the identity relation:
// normalize → damp with p=0.5 → one squaring epoch → extract → sort.
//
// Scenario:
//
//	"A\t1\t0\nB\t0\t1" — A and B each relate only to themselves. Damping
//	leaks half the mass toward uniform, one epoch squares the blend, and A
//	ends up ahead because column 0 carries its self-relation.
func ExampleRank() {
	m, labels, err := table.Parse("A\t1\t0\nB\t0\t1")
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	stochastic, _ := rank.Normalize(m)
	damped, _ := rank.Prepare(stochastic, rank.WithProportion(0.5))
	converged, _ := rank.Rank(damped, rank.WithEpochs(1))

	scores, _ := rank.IsolateScores(converged)
	pairs, _ := rank.AttachLabels(scores, labels)
	ranked, _ := rank.SortResults(pairs)

	for i, p := range ranked {
		fmt.Printf("%d - %s (%.3f)\n", i+1, p.Label, p.Score)
	}
	// Output:
	// 1 - A (0.625)
	// 2 - B (0.375)
}
