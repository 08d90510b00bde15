package rank_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pagerank/matrix"
	"github.com/katalvlaran/pagerank/rank"
)

// mustDense builds a Dense from rows or fails the test immediately.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// TestNormalize_ColumnsSumToOne verifies the normalization property: every
// column of the output sums to 1 within floating tolerance.
func TestNormalize_ColumnsSumToOne(t *testing.T) {
	m := mustDense(t, [][]float64{
		{1, 5, 2},
		{3, 5, 2},
		{4, 10, 6},
	})

	out, err := rank.Normalize(m)
	require.NoError(t, err)

	sums, err := matrix.ColumnSums(out)
	require.NoError(t, err)
	for j, s := range sums {
		assert.InDelta(t, 1.0, s, 1e-12, "column %d must sum to 1", j)
	}
}

// TestNormalize_AlreadyStochastic checks that a column-stochastic input is a
// fixed point of normalization.
func TestNormalize_AlreadyStochastic(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 0}, {0, 1}})

	out, err := rank.Normalize(m)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			want, _ := m.At(i, j)
			got, _ := out.At(i, j)
			assert.Equal(t, want, got)
		}
	}
}

// TestNormalize_ZeroColumnDefault documents the permissive default: a
// zero-sum column divides by zero and yields non-finite values, unmasked.
func TestNormalize_ZeroColumnDefault(t *testing.T) {
	m := mustDense(t, [][]float64{
		{1, 0},
		{1, 0},
	})

	out, err := rank.Normalize(m)
	require.NoError(t, err, "permissive default must not error on a dangling column")

	v, err := out.At(0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v), "0/0 must stay NaN under the permissive default")
}

// TestNormalize_DanglingUniform verifies the opt-in dangling-node fix:
// zero-sum columns become the uniform distribution 1/N.
func TestNormalize_DanglingUniform(t *testing.T) {
	m := mustDense(t, [][]float64{
		{1, 0},
		{3, 0},
	})

	out, err := rank.Normalize(m, rank.WithDanglingUniform())
	require.NoError(t, err)

	col, err := out.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, col, "dangling column must become uniform 1/N")

	// The healthy column is still divided by its own sum.
	col0, err := out.Column(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, col0[0], 1e-12)
	assert.InDelta(t, 0.75, col0[1], 1e-12)
}

// TestNormalize_StrictZeroColumn verifies strict mode fails fast and names
// the offending column.
func TestNormalize_StrictZeroColumn(t *testing.T) {
	m := mustDense(t, [][]float64{
		{1, 0},
		{1, 0},
	})

	_, err := rank.Normalize(m, rank.WithStrict())
	require.ErrorIs(t, err, rank.ErrDataIntegrity)
	assert.Contains(t, err.Error(), "column 1")
}

// TestNormalize_NilMatrix fails fast on nil input.
func TestNormalize_NilMatrix(t *testing.T) {
	_, err := rank.Normalize(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}
