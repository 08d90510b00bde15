// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels shared by the pipeline stages.
// All kernels perform strict fail-fast validation via the central validators
// and return plain sentinels, wrapped with an operation tag at the facade.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul        = "Mul"
	opColumnSums = "ColumnSums"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// sentinel via %w so errors.Is/As keep matching.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul computes the matrix product a·b.
//
// Stage 1 (Validate): both operands non-nil, a.Cols == b.Rows.
// Stage 2 (Execute): triple loop in i-k-j order so the inner loop walks both
// operands sequentially in memory.
// Stage 3 (Finalize): return the freshly allocated product.
//
// Complexity: O(a.r · a.c · b.c) time, O(a.r · b.c) memory.
//
// Errors:
//   - ErrNilMatrix          — a or b is nil.
//   - ErrDimensionMismatch  — inner dimensions disagree.
func Mul(a, b *Dense) (*Dense, error) {
	// Validate operands
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	out := &Dense{r: a.r, c: b.c, data: make([]float64, a.r*b.c)}
	var i, k, j int
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue // skip zero contributions, common in sparse relation data
			}
			for j = 0; j < b.c; j++ {
				out.data[i*b.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return out, nil
}

// ColumnSums returns the sum of every column of m.
//
// Stage 1 (Validate): m non-nil.
// Stage 2 (Execute): accumulate row by row for sequential memory access.
//
// Complexity: O(r*c) time, O(c) memory.
func ColumnSums(m *Dense) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opColumnSums, ErrNilMatrix)
	}

	sums := make([]float64, m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			sums[j] += m.data[i*m.c+j]
		}
	}

	return sums, nil
}

// EnsureSquare validates that m is non-nil and square.
// Returns plain sentinels (no wrapping) so call sites can wrap uniformly.
// Complexity: O(1).
func EnsureSquare(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}
