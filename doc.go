// Package pagerank is a small, dependency-light engine for computing
// stationary-distribution-style rankings over entities connected by
// weighted relations — the classic PageRank recipe, end to end.
//
// 🚀 What is pagerank?
//
//	A pipeline of pure numeric stages over dense square matrices:
//		• Table parsing: delimited text → relation matrix + entity labels
//		• Normalization: rescale every column to sum to 1 (column-stochastic)
//		• Damping: blend toward the uniform matrix by a proportion (default 0.85)
//		• Power iteration: repeated self-multiplication (M ← M·M) for a fixed
//		  number of epochs — fast convergence toward the dominant eigenstructure
//		• Extraction: column 0 as per-entity scores, paired with labels, sorted
//
// ✨ Why choose pagerank?
//
//   - Fail-fast guarantees – malformed tables and non-square matrices abort
//     with sentinel errors; nothing partial ever escapes the pipeline
//   - Permissive by default – unparsable cells degrade to zero weight, label
//     mismatches truncate; opt into strict mode when data quality matters
//   - Pluggable presentation – ranked pairs and matrices are handed to a tiny
//     Presenter interface; a text renderer ships built in
//
// Under the hood, everything is organized in flat subpackages:
//
//	matrix/  — dense row-major float64 matrices, multiply, column sums
//	table/   — delimited-text parser and formatter (round-trip safe)
//	rank/    — normalize, damp, power-iterate, extract, sort
//	present/ — Presenter interface + lipgloss-styled text renderer
//	config/  — YAML pipeline configuration
//
// The root package wires the stages into a Pipeline:
//
//	p := pagerank.Pipeline{Presenter: present.NewText()}
//	res, err := p.Run("A\t1\t0\nB\t0\t1")
//	// res.Ranked holds the sorted (label, score) pairs; res.RankedView the
//	// rendered text view
//
//	go get github.com/katalvlaran/pagerank
package pagerank
