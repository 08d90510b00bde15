// Package rank: functional configuration shared by the pipeline stages.
// Defaults are documented constants (single source of truth); each stage
// reads only the fields it cares about.

package rank

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultProportion is the damping proportion: the share of the
	// stochastic matrix kept when blending toward uniform. The canonical
	// PageRank value.
	DefaultProportion = 0.85

	// DefaultEpochs is the number of power-iteration squarings. Ten epochs
	// approximate M^1024 — ample for stochastic matrices of modest size.
	DefaultEpochs = 10
)

// Pair couples an entity label with its converged score.
type Pair struct {
	Label string
	Score float64
}

// KeyFunc extracts the sort key from a Pair. The default key is the score.
type KeyFunc func(Pair) float64

// options carries the gathered configuration; fields are unexported so the
// only mutation path is a WithX constructor.
type options struct {
	proportion      float64
	epochs          int
	strict          bool
	danglingUniform bool
	ascending       bool
	key             KeyFunc
}

// Option mutates options; public APIs consume ...Option.
type Option func(*options)

// WithProportion overrides the damping proportion. Values are expected in
// [0,1] but not enforced — out-of-range values simply change the blend.
func WithProportion(p float64) Option {
	return func(o *options) { o.proportion = p }
}

// WithEpochs overrides the power-iteration squaring count.
// Zero epochs is legal and returns the input unchanged (modulo copy).
func WithEpochs(n int) Option {
	return func(o *options) { o.epochs = n }
}

// WithStrict upgrades data-quality degeneracies (zero-sum columns,
// scores/labels length mismatch) from silent recovery to ErrDataIntegrity.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithDanglingUniform rewrites zero-sum columns to the uniform distribution
// 1/N during normalization — the classic dangling-node fix. Mutually
// exclusive with WithStrict in effect: strict wins and errors first.
func WithDanglingUniform() Option {
	return func(o *options) { o.danglingUniform = true }
}

// WithAscending sorts results worst-first instead of the default best-first.
func WithAscending() Option {
	return func(o *options) { o.ascending = true }
}

// WithKey overrides the sort key extracted from each Pair.
func WithKey(key KeyFunc) Option {
	return func(o *options) { o.key = key }
}

// gatherOptions applies opts over defaults and enforces invariants.
func gatherOptions(opts []Option) (options, error) {
	o := options{
		proportion: DefaultProportion,
		epochs:     DefaultEpochs,
		key:        func(p Pair) float64 { return p.Score },
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.epochs < 0 {
		return options{}, ErrInvalidOption
	}
	if o.key == nil {
		return options{}, ErrInvalidOption
	}

	return o, nil
}
