// Package config loads YAML pipeline configuration and turns it into the
// functional options the table and rank packages consume.
//
// A full document looks like:
//
//	table:
//	  line_separator: "\n"
//	  column_separator: "\t"
//	  has_labels: true
//	damping:
//	  proportion: 0.85
//	rank:
//	  epochs: 10
//	strict: false
//	presenter:
//	  precision: 3
//	  width: 40
//	  hide_values: false
//
// Every field is optional; zero values fall back to the package defaults
// documented in table, rank and present. Validation fails fast with
// ErrInvalidConfig so a broken file never reaches the pipeline.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pagerank/present"
	"github.com/katalvlaran/pagerank/rank"
	"github.com/katalvlaran/pagerank/table"
)

// ErrInvalidConfig is returned when a configuration file is syntactically
// valid YAML but semantically unusable (equal separators, negative epochs…).
var ErrInvalidConfig = errors.New("config: invalid configuration")

// TableConfig configures the text-to-matrix parser.
type TableConfig struct {
	LineSeparator   string `yaml:"line_separator"`
	ColumnSeparator string `yaml:"column_separator"`
	HasLabels       *bool  `yaml:"has_labels,omitempty"`
}

// DampingConfig configures the damping stage.
type DampingConfig struct {
	Proportion *float64 `yaml:"proportion,omitempty"`
}

// RankConfig configures power iteration.
type RankConfig struct {
	Epochs *int `yaml:"epochs,omitempty"`
}

// PresenterConfig configures the built-in text presenter.
type PresenterConfig struct {
	Precision  int  `yaml:"precision"`
	Width      int  `yaml:"width"`
	HideValues bool `yaml:"hide_values"`
}

// Config is the root pipeline configuration.
type Config struct {
	Table     TableConfig     `yaml:"table"`
	Damping   DampingConfig   `yaml:"damping"`
	Rank      RankConfig      `yaml:"rank"`
	Strict    bool            `yaml:"strict"`
	Presenter PresenterConfig `yaml:"presenter"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(raw)
}

// Parse decodes raw YAML into a validated Config.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate enforces the same invariants the pipeline would trip over later,
// so misconfiguration surfaces at load time with a config-shaped error.
func (c *Config) validate() error {
	lineSep := c.Table.LineSeparator
	columnSep := c.Table.ColumnSeparator
	if lineSep == "" {
		lineSep = table.DefaultLineSeparator
	}
	if columnSep == "" {
		columnSep = table.DefaultColumnSeparator
	}
	if lineSep == columnSep {
		return fmt.Errorf("line and column separators are both %q: %w", lineSep, ErrInvalidConfig)
	}
	if c.Rank.Epochs != nil && *c.Rank.Epochs < 0 {
		return fmt.Errorf("epochs must be >= 0, have %d: %w", *c.Rank.Epochs, ErrInvalidConfig)
	}
	if c.Presenter.Precision < 0 || c.Presenter.Width < 0 {
		return fmt.Errorf("presenter precision/width must be >= 0: %w", ErrInvalidConfig)
	}

	return nil
}

// TableOptions converts the table section into table.Option values.
func (c *Config) TableOptions() []table.Option {
	var opts []table.Option
	if c.Table.LineSeparator != "" {
		opts = append(opts, table.WithLineSeparator(c.Table.LineSeparator))
	}
	if c.Table.ColumnSeparator != "" {
		opts = append(opts, table.WithColumnSeparator(c.Table.ColumnSeparator))
	}
	if c.Table.HasLabels != nil {
		opts = append(opts, table.WithLabels(*c.Table.HasLabels))
	}
	if c.Strict {
		opts = append(opts, table.WithStrict())
	}

	return opts
}

// RankOptions converts the damping/rank sections into rank.Option values.
func (c *Config) RankOptions() []rank.Option {
	var opts []rank.Option
	if c.Damping.Proportion != nil {
		opts = append(opts, rank.WithProportion(*c.Damping.Proportion))
	}
	if c.Rank.Epochs != nil {
		opts = append(opts, rank.WithEpochs(*c.Rank.Epochs))
	}
	if c.Strict {
		opts = append(opts, rank.WithStrict())
	}

	return opts
}

// RenderOptions converts the presenter section into present.RenderOptions.
// Zero values stay zero here; present fills in its own defaults.
func (c *Config) RenderOptions() present.RenderOptions {
	return present.RenderOptions{
		Precision:  c.Presenter.Precision,
		Width:      c.Presenter.Width,
		HideValues: c.Presenter.HideValues,
	}
}
