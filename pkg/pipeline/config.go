package pipeline

import (
	"github.com/BurntSushi/toml"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Config is the TOML chart description.
//
// A minimal config names the X column and one series:
//
//	[data]
//	x = "time"
//
//	[[series]]
//	name = "sine"
//	column = "sine"
type Config struct {
	Title string `toml:"title"`
	Debug bool   `toml:"debug"`

	Font   FontConfig     `toml:"font"`
	Aspect AspectConfig   `toml:"aspect"`
	Data   DataConfig     `toml:"data"`
	Series []SeriesConfig `toml:"series"`
	Range  RangeConfig    `toml:"range"`
	Edges  EdgesConfig    `toml:"edges"`
	Inner  []InnerConfig  `toml:"inner"`
}

// FontConfig overrides the monospace font metrics.
type FontConfig struct {
	Height float64 `toml:"height"`
	Width  float64 `toml:"width"`
}

// AspectConfig selects the aspect policy. Mode is outer (default), inner,
// or environment. Either both dimensions or one dimension plus a ratio.
type AspectConfig struct {
	Mode   string  `toml:"mode"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Ratio  float64 `toml:"ratio"`
}

// DataConfig names the X column and its scale (float or timestamp).
type DataConfig struct {
	X     string `toml:"x"`
	Scale string `toml:"scale"`
	// TimeFormat is the Go layout for timestamp columns, RFC 3339 when
	// empty.
	TimeFormat string `toml:"time_format"`
}

// SeriesConfig declares one mark over a data column.
type SeriesConfig struct {
	Name   string  `toml:"name"`
	Column string  `toml:"column"`
	Kind   string  `toml:"kind"`  // line (default) or bar
	Color  string  `toml:"color"` // scheme color when empty
	Width  float64 `toml:"width"` // line stroke width
}

// RangeConfig widens the data ranges; overrides inside the data extent are
// absorbed.
type RangeConfig struct {
	XMin *float64 `toml:"x_min"`
	XMax *float64 `toml:"x_max"`
	YMin *float64 `toml:"y_min"`
	YMax *float64 `toml:"y_max"`
}

// EdgesConfig lists the decorations per edge. Top and left are declared in
// visual outer-to-inner order, bottom and right inner-to-outer.
type EdgesConfig struct {
	Top    []EdgeItemConfig `toml:"top"`
	Right  []EdgeItemConfig `toml:"right"`
	Bottom []EdgeItemConfig `toml:"bottom"`
	Left   []EdgeItemConfig `toml:"left"`
}

// EdgeItemConfig is one edge decoration: ticks, label, or legend.
type EdgeItemConfig struct {
	Kind   string `toml:"kind"`
	Text   string `toml:"text"`   // label only
	Anchor string `toml:"anchor"` // label and legend
}

// InnerConfig is one plot-area decoration: marker, grid-x, grid-y,
// guide-x, guide-y, or legend.
type InnerConfig struct {
	Kind      string `toml:"kind"`
	Placement string `toml:"placement"` // marker only
	Arrow     bool   `toml:"arrow"`     // marker only
	Align     string `toml:"align"`     // guide-x only: data (default) or cursor
	Corner    string `toml:"corner"`    // legend only
	Color     string `toml:"color"`
}

// ParseConfig parses and validates a TOML chart description.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse chart config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config for structural problems. Value-level problems
// (ranges, degenerate sizes) are absorbed by the engine, not rejected here.
func (c *Config) Validate() error {
	if c.Data.X == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "data.x column is required")
	}
	if err := errors.ValidateScaleName(c.Data.Scale); err != nil {
		return err
	}
	if len(c.Series) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "at least one series is required")
	}
	for _, s := range c.Series {
		if s.Column == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "series %q: column is required", s.Name)
		}
		if err := errors.ValidateMarkKind(s.Kind); err != nil {
			return err
		}
		if s.Color != "" {
			if err := errors.ValidateHexColor(s.Color); err != nil {
				return err
			}
		}
	}

	switch c.Aspect.Mode {
	case "", "outer", "inner", "environment":
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown aspect mode: %q (want outer, inner, or environment)", c.Aspect.Mode)
	}

	for _, items := range [][]EdgeItemConfig{c.Edges.Top, c.Edges.Right, c.Edges.Bottom, c.Edges.Left} {
		for _, item := range items {
			if err := item.validate(); err != nil {
				return err
			}
		}
	}
	for _, item := range c.Inner {
		if err := item.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (e EdgeItemConfig) validate() error {
	switch e.Kind {
	case "ticks", "legend":
	case "label":
		if e.Text == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "edge label requires text")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown edge decoration: %q (want ticks, label, or legend)", e.Kind)
	}
	return errors.ValidateAnchorName(e.Anchor)
}

func (i InnerConfig) validate() error {
	switch i.Kind {
	case "grid-x", "grid-y", "guide-y":
	case "marker":
		switch i.Placement {
		case "", "top", "right", "bottom", "left", "zero-horizontal", "zero-vertical":
		default:
			return errors.New(errors.ErrCodeInvalidConfig, "unknown marker placement: %q", i.Placement)
		}
	case "guide-x":
		switch i.Align {
		case "", "data", "cursor":
		default:
			return errors.New(errors.ErrCodeInvalidConfig, "unknown guide align: %q", i.Align)
		}
	case "legend":
		switch i.Corner {
		case "", "top-left", "top-right", "bottom-left", "bottom-right":
		default:
			return errors.New(errors.ErrCodeInvalidConfig, "unknown legend corner: %q", i.Corner)
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig,
			"unknown inner decoration: %q (want marker, grid-x, grid-y, guide-x, guide-y, or legend)", i.Kind)
	}
	if i.Color != "" {
		return errors.ValidateHexColor(i.Color)
	}
	return nil
}

// IsTimestamp reports whether the X column holds timestamps.
func (c *Config) IsTimestamp() bool {
	return c.Data.Scale == "timestamp"
}
