// Package table: functional configuration for Parse and Format.
// Defaults are documented constants (single source of truth); WithX
// constructors record overrides; gatherOptions enforces invariants once,
// so parsing kernels never re-validate configuration.

package table

import "strconv"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultLineSeparator splits the text blob into rows.
	DefaultLineSeparator = "\n"

	// DefaultColumnSeparator splits a row into cells.
	DefaultColumnSeparator = "\t"

	// DefaultHasLabels treats the first cell of every row as that row's label.
	DefaultHasLabels = true
)

// ConvertFunc turns a raw cell string into a numeric weight.
// Returning an error marks the cell as unparsable; what happens next depends
// on strict mode (see Parse).
type ConvertFunc func(cell string) (float64, error)

// IntConverter is the default ConvertFunc: strict base-10 integer parsing,
// mirroring the classic ingestion path where relation weights are counts.
func IntConverter(cell string) (float64, error) {
	n, err := strconv.Atoi(cell)
	if err != nil {
		return 0, err
	}

	return float64(n), nil
}

// FloatConverter parses cells as float64 for real-valued relation weights.
func FloatConverter(cell string) (float64, error) {
	return strconv.ParseFloat(cell, 64)
}

// options carries the gathered configuration; fields are unexported so the
// only mutation path is a WithX constructor.
type options struct {
	hasLabels bool
	lineSep   string
	columnSep string
	convert   ConvertFunc
	strict    bool
}

// Option mutates options; public APIs consume ...Option.
type Option func(*options)

// WithLabels toggles label extraction from the first cell of each row.
func WithLabels(enabled bool) Option {
	return func(o *options) { o.hasLabels = enabled }
}

// WithLineSeparator overrides the row separator.
func WithLineSeparator(sep string) Option {
	return func(o *options) { o.lineSep = sep }
}

// WithColumnSeparator overrides the cell separator.
func WithColumnSeparator(sep string) Option {
	return func(o *options) { o.columnSep = sep }
}

// WithConverter overrides the cell conversion function.
func WithConverter(fn ConvertFunc) Option {
	return func(o *options) { o.convert = fn }
}

// WithStrict makes unparsable non-empty cells fatal (ErrDataIntegrity)
// instead of degrading them to zero weight.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// gatherOptions applies opts over defaults and enforces invariants:
// distinct non-empty separators, non-nil converter.
func gatherOptions(opts []Option) (options, error) {
	o := options{
		hasLabels: DefaultHasLabels,
		lineSep:   DefaultLineSeparator,
		columnSep: DefaultColumnSeparator,
		convert:   IntConverter,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.lineSep == "" || o.columnSep == "" || o.lineSep == o.columnSep {
		return options{}, ErrSeparatorConflict
	}
	if o.convert == nil {
		return options{}, ErrNilConverter
	}

	return o, nil
}
