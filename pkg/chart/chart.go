// Package chart composes edge and inner decorations around a central plot
// area, projects series data into SVG space, and renders the result. All
// derived geometry is reactive: changing the container size, the cursor, or
// the source data recomputes exactly the affected cells on the next read.
package chart

import (
	"bytes"
	"io"
	"math"

	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/series"
	"github.com/matzehuels/chartkit/pkg/chart/svg"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
	"github.com/matzehuels/chartkit/pkg/reactive"
)

// Chart describes one chart: an aspect policy, font metrics, and the
// decorations attached to each edge and to the plot area. Top and Left are
// declared in visual outer-to-inner order; Bottom and Right inner-to-outer.
type Chart[T any, X ticks.Tick, Y ticks.Tick] struct {
	AspectRatio AspectRatio
	FontHeight  float64       // DefaultFontHeight when zero
	FontWidth   float64       // DefaultFontWidth when zero
	Padding     *geom.Padding // one font width on every side when nil
	Debug       bool

	Top    []EdgeLayout[X]
	Bottom []EdgeLayout[X]
	Left   []EdgeLayout[Y]
	Right  []EdgeLayout[Y]
	Inner  []InnerLayout[X, Y]
}

// UseChart is a built chart: the reactive geometry cells plus the renderer.
// Confined to a single goroutine like every reactive cell.
type UseChart[X ticks.Tick, Y ticks.Tick] struct {
	// Data is the resolved series the chart was built over.
	Data *series.UseData[X, Y]

	// Container carries the observed container size; nil before the first
	// measurement. Only environment aspect policies read it.
	Container *reactive.Value[*geom.Size]

	// Cursor carries the pointer position in SVG pixels; nil when the
	// pointer is outside the chart. Guide lines and nearest queries read it.
	Cursor *reactive.Value[*geom.Point]

	// OuterBounds, InnerBounds and Projection are the finalized geometry.
	OuterBounds *reactive.Memo[geom.Bounds]
	InnerBounds *reactive.Memo[geom.Bounds]
	Projection  *reactive.Memo[Projection]

	pre      *preState
	layout   *layout
	inner    []innerUse
	nearestX *reactive.Memo[float64]
}

// Build resolves the chart against a series declaration and its data cell.
func (c Chart[T, X, Y]) Build(s *series.Series[T, X, Y], data *reactive.Value[[]T]) *UseChart[X, Y] {
	d := series.Use(s, data)

	pre := newPreState(
		reactive.NewValue(c.Debug),
		reactive.NewValue(c.FontHeight),
		reactive.NewValue(c.FontWidth),
		reactive.NewValue(c.Padding),
	)
	container := reactive.NewValue[*geom.Size](nil)
	cursor := reactive.NewValue[*geom.Point](nil)

	xAxis := axisData[X]{rng: d.RangeX, marks: d.Marks()}
	yAxis := axisData[Y]{rng: d.RangeY, marks: d.Marks()}
	l := composeLayout(pre, c.AspectRatio, container, c.Top, c.Bottom, c.Left, c.Right, xAxis, yAxis)

	u := &UseChart[X, Y]{
		Data:      d,
		Container: container,
		Cursor:    cursor,
		pre:       pre,
		layout:    l,
	}
	for _, item := range c.Inner {
		u.inner = append(u.inner, item.intoInner(pre, xAxis, yAxis))
	}

	u.OuterBounds = reactive.NewMemo(func() geom.Bounds {
		return l.result.Get().Outer
	}, l.result)
	u.InnerBounds = reactive.NewMemo(func() geom.Bounds {
		return l.result.Get().Inner
	}, l.result)
	u.Projection = reactive.NewMemo(func() Projection {
		return NewProjection(l.result.Get().Inner, d.PositionRange.Get())
	}, l.result, d.PositionRange)

	// Cursor in position space feeds the nearest-point snap.
	cursorPos := reactive.NewMemo(func() float64 {
		pt := cursor.Get()
		if pt == nil {
			return math.NaN()
		}
		x, _ := u.Projection.Get().SVGToData(pt.X, pt.Y)
		return x
	}, cursor, u.Projection)
	u.nearestX = d.NearestPositionX(cursorPos)

	return u
}

// Phase reports how far the build has progressed. Environment aspect
// policies stay PhaseUnsized until Container carries a measurement.
func (u *UseChart[X, Y]) Phase() Phase {
	return u.layout.result.Get().Phase
}

// NearestX returns the data-aligned X position nearest the cursor, NaN when
// there is no cursor or no data.
func (u *UseChart[X, Y]) NearestX() float64 {
	return u.nearestX.Get()
}

// SVG renders the chart. An unsized chart renders nothing; a zero-area plot
// renders the document frame with no content.
func (u *UseChart[X, Y]) SVG() []byte {
	res := u.layout.result.Get()
	if res.Phase != PhaseFinalized {
		return nil
	}

	rc := renderContext{
		proj:       u.Projection.Get(),
		fontHeight: u.pre.fontHeight.Get(),
		fontWidth:  u.pre.fontWidth.Get(),
		padding:    u.pre.padding.Get(),
		debug:      u.pre.debug.Get(),
		cursor:     u.Cursor.Get(),
		nearestX:   u.nearestX.Get(),
	}

	var buf bytes.Buffer
	svg.Open(&buf, res.Outer.Width(), res.Outer.Height())
	if rc.debug {
		svg.Rect(&buf, res.Outer.Left, res.Outer.Top, res.Outer.Width(), res.Outer.Height(), "red")
		svg.Rect(&buf, res.Inner.Left, res.Inner.Top, res.Inner.Width(), res.Inner.Height(), "blue")
	}

	// Grid lines and markers sit under the series, guide lines above it.
	for _, item := range u.inner {
		if isGuide(item) {
			continue
		}
		item.render(&buf, rc, res.Inner)
	}
	u.renderSeries(&buf, rc, res.Inner)
	for _, item := range u.inner {
		if isGuide(item) {
			item.render(&buf, rc, res.Inner)
		}
	}
	u.layout.renderEdges(&buf, rc, res)

	svg.Close(&buf)
	return buf.Bytes()
}

func isGuide(item innerUse) bool {
	switch item.(type) {
	case *xGuideUse, *yGuideUse:
		return true
	}
	return false
}

// renderSeries draws every mark over the plot area. Points with non-finite
// positions are skipped; lines break at the gap, bars omit the bar.
func (u *UseChart[X, Y]) renderSeries(w io.Writer, rc renderContext, inner geom.Bounds) {
	if inner.Zero() {
		return
	}
	xs := u.Data.PositionsX.Get()
	for _, m := range u.Data.Marks() {
		ys := u.Data.PositionsY[m.ID].Get()
		switch m.Kind {
		case series.MarkBar:
			u.renderBars(w, rc, inner, m, xs, ys)
		default:
			svgX := make([]float64, len(xs))
			svgY := make([]float64, len(xs))
			for i := range xs {
				svgX[i], svgY[i] = rc.proj.PositionToSVG(xs[i], ys[i])
			}
			svg.Path(w, svg.PolylinePath(svgX, svgY), m.Color, m.Width)
		}
	}
}

// renderBars draws one bar per record from the zero baseline, clamped into
// the plot area.
func (u *UseChart[X, Y]) renderBars(w io.Writer, rc renderContext, inner geom.Bounds, m series.Mark, xs, ys []float64) {
	if len(xs) == 0 {
		return
	}
	_, zeroY := rc.proj.PositionToSVG(0, 0)
	zeroY = clamp(zeroY, inner.Top, inner.Bottom)
	barWidth := inner.Width() / float64(len(xs)) * 0.8

	for i := range xs {
		if math.IsNaN(xs[i]) || math.IsInf(xs[i], 0) || math.IsNaN(ys[i]) || math.IsInf(ys[i], 0) {
			continue
		}
		x, y := rc.proj.PositionToSVG(xs[i], ys[i])
		top := math.Min(y, zeroY)
		height := math.Abs(y - zeroY)
		svg.FilledRect(w, x-barWidth/2, top, barWidth, height, m.Color)
	}
}
