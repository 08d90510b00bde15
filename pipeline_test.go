package pagerank_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pagerank"
	"github.com/katalvlaran/pagerank/config"
	"github.com/katalvlaran/pagerank/matrix"
	"github.com/katalvlaran/pagerank/present"
	"github.com/katalvlaran/pagerank/rank"
	"github.com/katalvlaran/pagerank/table"
)

// TestPipeline_CanonicalScenario runs a hand-computed end-to-end case:
// "A\t1\t0\nB\t0\t1" with p=0.5 and one epoch must rank A at 0.625 and
// B at 0.375.
func TestPipeline_CanonicalScenario(t *testing.T) {
	pl := pagerank.Pipeline{
		Rank: []rank.Option{rank.WithProportion(0.5), rank.WithEpochs(1)},
	}

	res, err := pl.Run("A\t1\t0\nB\t0\t1")
	require.NoError(t, err)

	require.Len(t, res.Ranked, 2)
	assert.Equal(t, "A", res.Ranked[0].Label)
	assert.InDelta(t, 0.625, res.Ranked[0].Score, 1e-12)
	assert.Equal(t, "B", res.Ranked[1].Label)
	assert.InDelta(t, 0.375, res.Ranked[1].Score, 1e-12)

	// Intermediate artifacts are exposed for presenters.
	assert.Equal(t, []string{"A", "B"}, res.Labels)
	d00, _ := res.Damped.At(0, 0)
	assert.InDelta(t, 0.75, d00, 1e-12, "damped matrix must be the p=0.5 blend")
}

// TestPipeline_FailFast verifies that stage errors abort with no result.
func TestPipeline_FailFast(t *testing.T) {
	pl := pagerank.Pipeline{}

	_, err := pl.Run("A\t1\nB\t0\t1")
	assert.ErrorIs(t, err, table.ErrMalformedTable)

	// Configuration errors travel the same path.
	pl = pagerank.Pipeline{Table: []table.Option{table.WithLineSeparator("\t")}}
	_, err = pl.Run("whatever")
	assert.ErrorIs(t, err, table.ErrSeparatorConflict)
}

// TestPipeline_Presenter renders all three views when a presenter is set.
func TestPipeline_Presenter(t *testing.T) {
	pl := pagerank.Pipeline{
		Rank:      []rank.Option{rank.WithProportion(0.5), rank.WithEpochs(1)},
		Presenter: present.NewText(),
	}

	res, err := pl.Run("A\t1\t0\nB\t0\t1")
	require.NoError(t, err)

	assert.NotEmpty(t, res.RawView)
	assert.NotEmpty(t, res.DampedView)
	assert.Contains(t, res.RankedView, "A")
	assert.Contains(t, res.RankedView, "(0.625)")
}

// TestPipeline_RunMatrix feeds an in-memory synthetic matrix, the way the
// classic random driver does.
func TestPipeline_RunMatrix(t *testing.T) {
	m, err := matrix.Random(20, 99)
	require.NoError(t, err)
	labels := make([]string, 20)
	for i := range labels {
		labels[i] = string(rune('a' + i))
	}

	pl := pagerank.Pipeline{}
	res, err := pl.RunMatrix(m, labels)
	require.NoError(t, err)

	require.Len(t, res.Ranked, 20)
	for i := 1; i < len(res.Ranked); i++ {
		assert.GreaterOrEqual(t, res.Ranked[i-1].Score, res.Ranked[i].Score,
			"scores must be non-increasing")
	}
}

// TestFromConfig builds a pipeline off a YAML document and runs it.
func TestFromConfig(t *testing.T) {
	cfg, err := config.Parse([]byte(`
damping:
  proportion: 0.5
rank:
  epochs: 1
`))
	require.NoError(t, err)

	pl := pagerank.FromConfig(cfg, nil)
	res, err := pl.Run("A\t1\t0\nB\t0\t1")
	require.NoError(t, err)
	assert.InDelta(t, 0.625, res.Ranked[0].Score, 1e-12)

	// A nil config is a zero pipeline, still runnable.
	res, err = pagerank.FromConfig(nil, nil).Run("A\t1\t0\nB\t0\t1")
	require.NoError(t, err)
	assert.Len(t, res.Ranked, 2)
}
