package pipeline

import (
	"math"
	"sort"
	"time"

	"github.com/matzehuels/chartkit/pkg/chart"
	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/series"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/reactive"
)

// Render builds the chart described by cfg over the data table and renders
// the SVG document. The table rows are sorted by the X column; the engine
// depends on ascending X positions.
func Render(cfg *Config, tbl *Table, opts Options) ([]byte, error) {
	if cfg.IsTimestamp() {
		return renderTimestamp(cfg, tbl, opts)
	}
	return renderFloat(cfg, tbl, opts)
}

// floatRow is one record with a numeric X.
type floatRow struct {
	x  float64
	ys []float64
}

// timeRow is one record with a temporal X.
type timeRow struct {
	x  time.Time
	ys []float64
}

func renderFloat(cfg *Config, tbl *Table, opts Options) ([]byte, error) {
	xIdx, yIdx, err := columnIndexes(cfg, tbl)
	if err != nil {
		return nil, err
	}

	rows := make([]floatRow, 0, len(tbl.Rows))
	for _, raw := range tbl.Rows {
		row := floatRow{x: floatAt(raw, xIdx), ys: make([]float64, len(yIdx))}
		for i, idx := range yIdx {
			row.ys[i] = floatAt(raw, idx)
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return lessNaNLast(rows[i].x, rows[j].x) })

	s := series.New[floatRow, ticks.Float, ticks.Float](
		func(r floatRow) ticks.Float { return ticks.Float(r.x) },
	)
	addMarks(s, cfg, func(r floatRow) []float64 { return r.ys })
	if v := cfg.Range.XMin; v != nil {
		s.SetXMin(ticks.Float(*v))
	}
	if v := cfg.Range.XMax; v != nil {
		s.SetXMax(ticks.Float(*v))
	}
	applyYRange(s, cfg)

	c := chart.Chart[floatRow, ticks.Float, ticks.Float]{
		AspectRatio: buildAspect(cfg.Aspect, opts),
		FontHeight:  cfg.Font.Height,
		FontWidth:   cfg.Font.Width,
		Debug:       cfg.Debug || opts.Debug,
		Top:         edgeItems[ticks.Float](topItems(cfg), ticks.Floats{}),
		Bottom:      edgeItems[ticks.Float](cfg.Edges.Bottom, ticks.Floats{}),
		Left:        edgeItems[ticks.Float](cfg.Edges.Left, ticks.Floats{}),
		Right:       edgeItems[ticks.Float](cfg.Edges.Right, ticks.Floats{}),
		Inner:       innerItems[ticks.Float, ticks.Float](cfg.Inner, ticks.Floats{}, ticks.Floats{}),
	}
	u := c.Build(s, reactive.NewValue(rows))
	u.Container.Set(containerSize(opts))
	return u.SVG(), nil
}

// lessNaNLast orders floats ascending with NaN after every finite value, so
// rows whose X cell failed to parse collect at the tail instead of breaking
// the ascending order the nearest-point search depends on.
func lessNaNLast(a, b float64) bool {
	if math.IsNaN(b) {
		return !math.IsNaN(a)
	}
	if math.IsNaN(a) {
		return false
	}
	return a < b
}

func renderTimestamp(cfg *Config, tbl *Table, opts Options) ([]byte, error) {
	xIdx, yIdx, err := columnIndexes(cfg, tbl)
	if err != nil {
		return nil, err
	}
	layout := cfg.Data.TimeFormat
	if layout == "" {
		layout = time.RFC3339
	}

	rows := make([]timeRow, 0, len(tbl.Rows))
	for _, raw := range tbl.Rows {
		x, err := timeAt(raw, xIdx, layout)
		if err != nil {
			return nil, err
		}
		row := timeRow{x: x, ys: make([]float64, len(yIdx))}
		for i, idx := range yIdx {
			row.ys[i] = floatAt(raw, idx)
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].x.Before(rows[j].x) })

	s := series.New[timeRow, ticks.Timestamp, ticks.Float](
		func(r timeRow) ticks.Timestamp { return ticks.Timestamp(r.x) },
	)
	addMarks(s, cfg, func(r timeRow) []float64 { return r.ys })
	applyYRange(s, cfg)

	gen := ticks.Timestamps{Periods: ticks.AllPeriods()}
	c := chart.Chart[timeRow, ticks.Timestamp, ticks.Float]{
		AspectRatio: buildAspect(cfg.Aspect, opts),
		FontHeight:  cfg.Font.Height,
		FontWidth:   cfg.Font.Width,
		Debug:       cfg.Debug || opts.Debug,
		Top:         edgeItems[ticks.Timestamp](topItems(cfg), gen),
		Bottom:      edgeItems[ticks.Timestamp](cfg.Edges.Bottom, gen),
		Left:        edgeItems[ticks.Float](cfg.Edges.Left, ticks.Floats{}),
		Right:       edgeItems[ticks.Float](cfg.Edges.Right, ticks.Floats{}),
		Inner:       innerItems[ticks.Timestamp, ticks.Float](cfg.Inner, gen, ticks.Floats{}),
	}
	u := c.Build(s, reactive.NewValue(rows))
	u.Container.Set(containerSize(opts))
	return u.SVG(), nil
}

// columnIndexes resolves the X column and every series column.
func columnIndexes(cfg *Config, tbl *Table) (int, []int, error) {
	xIdx := tbl.Column(cfg.Data.X)
	if xIdx < 0 {
		return 0, nil, errors.New(errors.ErrCodeInvalidData, "x column %q not found in data", cfg.Data.X)
	}
	yIdx := make([]int, len(cfg.Series))
	for i, sc := range cfg.Series {
		idx := tbl.Column(sc.Column)
		if idx < 0 {
			return 0, nil, errors.New(errors.ErrCodeInvalidData, "series column %q not found in data", sc.Column)
		}
		yIdx[i] = idx
	}
	return xIdx, yIdx, nil
}

// addMarks declares one mark per configured series. Explicit colors replace
// the scheme slot for their index.
func addMarks[T any, X ticks.Tick](s *series.Series[T, X, ticks.Float], cfg *Config, ys func(T) []float64) {
	colors := make([]string, len(cfg.Series))
	custom := false
	def := series.DefaultScheme()
	for i, sc := range cfg.Series {
		colors[i] = def.ByIndex(i)
		if sc.Color != "" {
			colors[i] = sc.Color
			custom = true
		}
	}
	if custom {
		s.SetColors(series.NewScheme(colors...))
	}

	for i, sc := range cfg.Series {
		idx := i
		name := sc.Name
		if name == "" {
			name = sc.Column
		}
		getY := func(r T) ticks.Float { return ticks.Float(ys(r)[idx]) }
		if sc.Kind == "bar" {
			s.AddBar(series.Bar[T, ticks.Float]{Name: name, GetY: getY})
		} else {
			s.AddLine(series.Line[T, ticks.Float]{Name: name, GetY: getY, Width: sc.Width})
		}
	}
}

func applyYRange[T any, X ticks.Tick](s *series.Series[T, X, ticks.Float], cfg *Config) {
	if v := cfg.Range.YMin; v != nil {
		s.SetYMin(ticks.Float(*v))
	}
	if v := cfg.Range.YMax; v != nil {
		s.SetYMax(ticks.Float(*v))
	}
}

// topItems prepends the chart title to the configured top decorations.
func topItems(cfg *Config) []EdgeItemConfig {
	if cfg.Title == "" {
		return cfg.Edges.Top
	}
	title := EdgeItemConfig{Kind: "label", Text: cfg.Title, Anchor: "middle"}
	return append([]EdgeItemConfig{title}, cfg.Edges.Top...)
}

// buildAspect reduces the aspect section plus option overrides to a policy.
// Option width/height beat the config; both beat the package defaults.
func buildAspect(a AspectConfig, opts Options) chart.AspectRatio {
	width := opts.Width
	if width == 0 {
		width = a.Width
	}
	height := opts.Height
	if height == 0 {
		height = a.Height
	}

	switch a.Mode {
	case "environment":
		switch {
		case a.Ratio > 0 && a.Width == 0:
			return chart.EnvironmentWidth(a.Ratio)
		case a.Ratio > 0 && a.Height == 0:
			return chart.EnvironmentHeight(a.Ratio)
		default:
			return chart.Environment()
		}
	case "inner":
		switch {
		case a.Ratio > 0 && a.Width == 0:
			return chart.InnerWidth(fallback(height, DefaultHeight), a.Ratio)
		case a.Ratio > 0 && a.Height == 0:
			return chart.InnerHeight(fallback(width, DefaultWidth), a.Ratio)
		default:
			return chart.InnerSize(fallback(width, DefaultWidth), fallback(height, DefaultHeight))
		}
	default:
		switch {
		case a.Ratio > 0 && a.Width == 0:
			return chart.OuterWidth(fallback(height, DefaultHeight), a.Ratio)
		case a.Ratio > 0 && a.Height == 0:
			return chart.OuterHeight(fallback(width, DefaultWidth), a.Ratio)
		default:
			return chart.OuterSize(fallback(width, DefaultWidth), fallback(height, DefaultHeight))
		}
	}
}

func fallback(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

// containerSize is the measured size handed to environment aspect policies;
// for a one-shot render the requested output size is the container.
func containerSize(opts Options) *geom.Size {
	return &geom.Size{
		Width:  fallback(opts.Width, DefaultWidth),
		Height: fallback(opts.Height, DefaultHeight),
	}
}

// edgeItems converts edge decoration configs for one axis.
func edgeItems[T ticks.Tick](items []EdgeItemConfig, gen ticks.Generator[T]) []chart.EdgeLayout[T] {
	out := make([]chart.EdgeLayout[T], 0, len(items))
	for _, item := range items {
		switch item.Kind {
		case "ticks":
			out = append(out, chart.TickLabels[T]{Gen: gen})
		case "label":
			out = append(out, chart.RotatedLabel[T]{Text: item.Text, Anchor: parseAnchor(item.Anchor)})
		case "legend":
			out = append(out, chart.Legend[T]{Anchor: parseAnchor(item.Anchor)})
		}
	}
	return out
}

// innerItems converts plot-area decoration configs.
func innerItems[X ticks.Tick, Y ticks.Tick](
	items []InnerConfig, xGen ticks.Generator[X], yGen ticks.Generator[Y],
) []chart.InnerLayout[X, Y] {
	out := make([]chart.InnerLayout[X, Y], 0, len(items))
	for _, item := range items {
		switch item.Kind {
		case "marker":
			out = append(out, chart.AxisMarker[X, Y]{
				Placement: parsePlacement(item.Placement),
				Color:     item.Color,
				Arrow:     item.Arrow,
			})
		case "grid-x":
			out = append(out, chart.XGridLine[X, Y]{Gen: xGen, Color: item.Color})
		case "grid-y":
			out = append(out, chart.YGridLine[X, Y]{Gen: yGen, Color: item.Color})
		case "guide-x":
			align := chart.AlignData
			if item.Align == "cursor" {
				align = chart.AlignCursor
			}
			out = append(out, chart.XGuideLine[X, Y]{Align: align, Color: item.Color})
		case "guide-y":
			out = append(out, chart.YGuideLine[X, Y]{Color: item.Color})
		case "legend":
			out = append(out, chart.InsetLegend[X, Y]{Corner: parseCorner(item.Corner)})
		}
	}
	return out
}

func parseAnchor(s string) chart.Anchor {
	switch s {
	case "start":
		return chart.AnchorStart
	case "end":
		return chart.AnchorEnd
	}
	return chart.AnchorMiddle
}

func parsePlacement(s string) chart.MarkerPlacement {
	switch s {
	case "top":
		return chart.MarkerTopEdge
	case "right":
		return chart.MarkerRightEdge
	case "left":
		return chart.MarkerLeftEdge
	case "zero-horizontal":
		return chart.MarkerHorizontalZero
	case "zero-vertical":
		return chart.MarkerVerticalZero
	}
	return chart.MarkerBottomEdge
}

func parseCorner(s string) chart.Corner {
	switch s {
	case "top-right":
		return chart.CornerTopRight
	case "bottom-left":
		return chart.CornerBottomLeft
	case "bottom-right":
		return chart.CornerBottomRight
	}
	return chart.CornerTopLeft
}
