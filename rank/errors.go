// Package rank: sentinel error set. Shape violations reuse the matrix
// sentinels (matrix.ErrNonSquare, matrix.ErrNilMatrix) so callers match one
// taxonomy across the pipeline.

package rank

import "errors"

var (
	// ErrDataIntegrity is returned only in strict mode: a zero-sum column
	// during normalization, or a scores/labels length mismatch.
	ErrDataIntegrity = errors.New("rank: data integrity violation")

	// ErrInvalidOption indicates a nonsensical option value, e.g. negative
	// epochs or a nil sort key.
	ErrInvalidOption = errors.New("rank: invalid option value")
)
