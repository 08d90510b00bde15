package pagerank

import (
	"github.com/katalvlaran/pagerank/config"
	"github.com/katalvlaran/pagerank/matrix"
	"github.com/katalvlaran/pagerank/present"
	"github.com/katalvlaran/pagerank/rank"
	"github.com/katalvlaran/pagerank/table"
)

// Pipeline wires the full ranking chain:
//
//	text → table.Parse → rank.Normalize → rank.Prepare → rank.Rank →
//	rank.IsolateScores → rank.AttachLabels → rank.SortResults
//
// and, when a Presenter is attached, hands it the raw matrix, the damped
// matrix and the ranked pairs. The zero value runs with every package's
// documented defaults and no rendering.
//
// Fail-fast all the way: the first sentinel aborts the run and no partial
// result escapes.
type Pipeline struct {
	// Table options feed table.Parse (separators, labels, converter, strict).
	Table []table.Option

	// Rank options feed every numeric stage (proportion, epochs, strict,
	// dangling policy, sort direction/key).
	Rank []rank.Option

	// Presenter, when non-nil, renders the three artifacts into the Result
	// views. A nil Presenter skips rendering entirely.
	Presenter present.Presenter

	// Render tunes the Presenter (precision, bar width, value visibility).
	Render present.RenderOptions
}

// Result carries every artifact a pipeline run produces. Raw and Damped are
// the two matrices a presenter may want to show next to the ranking, exactly
// as the stages produced them.
type Result struct {
	Raw    *matrix.Dense // parsed relation matrix, pre-normalization
	Damped *matrix.Dense // stochastic matrix after damping, pre-iteration
	Labels []string      // entity labels, aligned with matrix rows
	Ranked []rank.Pair   // (label, score) pairs, sorted

	// Rendered views, empty unless a Presenter was attached.
	RawView    string
	DampedView string
	RankedView string
}

// FromConfig builds a Pipeline from a loaded configuration and an optional
// presenter.
func FromConfig(cfg *config.Config, p present.Presenter) Pipeline {
	if cfg == nil {
		return Pipeline{Presenter: p}
	}

	return Pipeline{
		Table:     cfg.TableOptions(),
		Rank:      cfg.RankOptions(),
		Presenter: p,
		Render:    cfg.RenderOptions(),
	}
}

// Run parses text into a relation matrix and ranks it end to end.
func (pl Pipeline) Run(text string) (*Result, error) {
	raw, labels, err := table.Parse(text, pl.Table...)
	if err != nil {
		return nil, err
	}

	return pl.RunMatrix(raw, labels)
}

// RunMatrix ranks an in-memory relation matrix directly — the entry point for
// callers that already hold their data as a matrix (synthetic drivers,
// upstream ingestion).
func (pl Pipeline) RunMatrix(raw *matrix.Dense, labels []string) (*Result, error) {
	stochastic, err := rank.Normalize(raw, pl.Rank...)
	if err != nil {
		return nil, err
	}

	damped, err := rank.Prepare(stochastic, pl.Rank...)
	if err != nil {
		return nil, err
	}

	converged, err := rank.Rank(damped, pl.Rank...)
	if err != nil {
		return nil, err
	}

	scores, err := rank.IsolateScores(converged)
	if err != nil {
		return nil, err
	}
	pairs, err := rank.AttachLabels(scores, labels, pl.Rank...)
	if err != nil {
		return nil, err
	}
	ranked, err := rank.SortResults(pairs, pl.Rank...)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Raw:    raw,
		Damped: damped,
		Labels: labels,
		Ranked: ranked,
	}
	if pl.Presenter != nil {
		res.RawView = pl.Presenter.RenderMatrix(raw, labels, pl.Render)
		res.DampedView = pl.Presenter.RenderMatrix(damped, labels, pl.Render)
		res.RankedView = pl.Presenter.RenderRanked(ranked, pl.Render)
	}

	return res, nil
}
