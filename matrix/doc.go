// Package matrix provides the dense linear-algebra primitives the ranking
// pipeline is built on.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with O(1) bounds-checked access,
//     flat backing storage for cache friendliness, and deep Clone.
//   - Mul for matrix products with fail-fast dimension validation — the
//     kernel behind power iteration.
//   - ColumnSums and Transform, the two building blocks of column
//     normalization and damping.
//   - Random for deterministic synthetic relation matrices (examples and
//     benchmarks).
//
// Dense matrices are best for the ranking workload: N up to a few thousand,
// O(N²) memory, O(N³) multiply. All user-triggered error conditions return
// package sentinels matched via errors.Is; nothing here panics.
package matrix
