package present

import (
	"github.com/katalvlaran/pagerank/matrix"
	"github.com/katalvlaran/pagerank/rank"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultPrecision is the number of fractional digits shown for scores
	// and matrix values.
	DefaultPrecision = 3

	// DefaultWidth is the width, in cells, of the longest ranked bar.
	DefaultWidth = 40
)

// RenderOptions tunes a Presenter. The zero value means "all defaults".
type RenderOptions struct {
	// Precision is the number of fractional digits; <= 0 means DefaultPrecision.
	Precision int

	// Width is the maximum bar width in cells; <= 0 means DefaultWidth.
	Width int

	// HideValues suppresses the numeric score/value annotations, leaving only
	// bars and shades.
	HideValues bool
}

// normalized fills zero-value fields with the documented defaults.
func (o RenderOptions) normalized() RenderOptions {
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}

	return o
}

// Presenter renders the pipeline's two artifacts. Implementations must treat
// inputs as read-only and tolerate nil/empty inputs by returning "".
type Presenter interface {
	// RenderRanked renders an ordered sequence of (label, score) pairs.
	RenderRanked(pairs []rank.Pair, opts RenderOptions) string

	// RenderMatrix renders a matrix with positionally aligned row labels.
	RenderMatrix(m *matrix.Dense, labels []string, opts RenderOptions) string
}
