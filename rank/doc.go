// Package rank implements the numeric stages of the ranking pipeline:
// column normalization, damping, power iteration, and result extraction.
//
// 🚀 What is rank?
//
//	Given a square relation matrix (see table.Parse), rank drives it toward
//	its stationary distribution:
//		• Normalize — every column rescaled to sum to 1 (column-stochastic)
//		• Prepare   — damping: p·M + (1−p)·(1/N), default p = 0.85
//		• Rank      — power iteration by repeated squaring (M ← M·M) for a
//		  fixed number of epochs; after k epochs the result approximates
//		  M^(2^k), far fewer multiplies than naive vector iteration
//		• IsolateScores / AttachLabels / SortResults — column 0 as the score
//		  vector, zipped with labels, stably sorted best-first
//
// ⚙️ Usage:
//
//	stochastic, _ := rank.Normalize(m)
//	damped, _ := rank.Prepare(stochastic, rank.WithProportion(0.85))
//	converged, _ := rank.Rank(damped, rank.WithEpochs(10))
//	scores, _ := rank.IsolateScores(converged)
//	pairs, _ := rank.AttachLabels(scores, labels)
//	ranked, _ := rank.SortResults(pairs)
//
// Numeric policy (documented, deliberate):
//
//   - A zero-sum column normalizes to non-finite values (division by zero)
//     under the permissive default — dangling nodes are NOT silently fixed.
//     WithDanglingUniform opts into the classic uniform-redistribution fix;
//     WithStrict fails with ErrDataIntegrity naming the column instead.
//   - Rank performs no convergence check; the epoch count is the sole
//     termination condition. Overflow for non-stochastic inputs is a known,
//     unguarded limitation.
//   - AttachLabels truncates to the shorter of scores/labels by default;
//     WithStrict upgrades the mismatch to ErrDataIntegrity.
//
// Performance: each epoch is one O(N³) multiply over O(N²) memory; N up to a
// few thousand is comfortable on one core.
package rank
