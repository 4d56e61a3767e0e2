package chart

import (
	"io"
	"math"

	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/series"
	"github.com/matzehuels/chartkit/pkg/chart/svg"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
	"github.com/matzehuels/chartkit/pkg/reactive"
)

// InnerLayout is a decoration drawn inside the plot area. Inner decorations
// read the finalized bounds and projection but never influence sizing.
type InnerLayout[X ticks.Tick, Y ticks.Tick] interface {
	intoInner(pre *preState, xAxis axisData[X], yAxis axisData[Y]) innerUse
}

type innerUse interface {
	render(w io.Writer, rc renderContext, inner geom.Bounds)
}

// MarkerPlacement selects where an AxisMarker draws its line.
type MarkerPlacement int

const (
	MarkerTopEdge MarkerPlacement = iota
	MarkerRightEdge
	MarkerBottomEdge
	MarkerLeftEdge
	// MarkerHorizontalZero draws at data y = 0, clamped into the plot.
	MarkerHorizontalZero
	// MarkerVerticalZero draws at data x = 0, clamped into the plot.
	MarkerVerticalZero
)

const markerColor = "#D2D2D2"

// AxisMarker draws an axis line at a plot edge or at the zero position,
// optionally with an arrowhead at its far end.
type AxisMarker[X ticks.Tick, Y ticks.Tick] struct {
	Placement MarkerPlacement
	Color     string  // markerColor when empty
	Width     float64 // 1 when zero
	Arrow     bool
}

func (am AxisMarker[X, Y]) intoInner(*preState, axisData[X], axisData[Y]) innerUse {
	color := am.Color
	if color == "" {
		color = markerColor
	}
	width := am.Width
	if width == 0 {
		width = 1
	}
	return &axisMarkerUse{placement: am.Placement, color: color, width: width, arrow: am.Arrow}
}

type axisMarkerUse struct {
	placement MarkerPlacement
	color     string
	width     float64
	arrow     bool
}

func (u *axisMarkerUse) render(w io.Writer, rc renderContext, inner geom.Bounds) {
	if inner.Zero() {
		return
	}
	var x1, y1, x2, y2 float64
	switch u.placement {
	case MarkerTopEdge:
		x1, y1, x2, y2 = inner.Left, inner.Top, inner.Right, inner.Top
	case MarkerRightEdge:
		x1, y1, x2, y2 = inner.Right, inner.Bottom, inner.Right, inner.Top
	case MarkerBottomEdge:
		x1, y1, x2, y2 = inner.Left, inner.Bottom, inner.Right, inner.Bottom
	case MarkerLeftEdge:
		x1, y1, x2, y2 = inner.Left, inner.Bottom, inner.Left, inner.Top
	case MarkerHorizontalZero:
		_, y := rc.proj.PositionToSVG(0, 0)
		y = clamp(y, inner.Top, inner.Bottom)
		x1, y1, x2, y2 = inner.Left, y, inner.Right, y
	case MarkerVerticalZero:
		x, _ := rc.proj.PositionToSVG(0, 0)
		x = clamp(x, inner.Left, inner.Right)
		x1, y1, x2, y2 = x, inner.Bottom, x, inner.Top
	}
	svg.Line(w, x1, y1, x2, y2, u.color, u.width)
	if u.arrow {
		renderArrowhead(w, x1, y1, x2, y2, u.color)
	}
}

// renderArrowhead draws a small triangle at the (x2, y2) end of a line.
func renderArrowhead(w io.Writer, x1, y1, x2, y2 float64, color string) {
	const size = 5.0
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	// Base of the triangle, one size back from the tip.
	bx, by := x2-ux*size, y2-uy*size
	px, py := -uy*size/2, ux*size/2
	d := svg.PolylinePath(
		[]float64{bx + px, x2, bx - px, bx + px},
		[]float64{by + py, y2, by - py, by + py},
	)
	svg.Path(w, d, color, 1)
}

// XGridLine draws vertical grid lines at generated X ticks.
type XGridLine[X ticks.Tick, Y ticks.Tick] struct {
	Gen   ticks.Generator[X]
	Color string // markerColor when empty
}

func (g XGridLine[X, Y]) intoInner(pre *preState, xAxis axisData[X], _ axisData[Y]) innerUse {
	color := g.Color
	if color == "" {
		color = markerColor
	}
	return &xGridUse[X]{gen: g.Gen, rng: xAxis.rng, color: color}
}

type xGridUse[X ticks.Tick] struct {
	gen   ticks.Generator[X]
	rng   reactive.Signal[*series.Range[X]]
	color string
}

func (u *xGridUse[X]) render(w io.Writer, rc renderContext, inner geom.Bounds) {
	rng := u.rng.Get()
	if rng == nil || inner.Zero() {
		return
	}
	span := ticks.HorizontalSpan{
		FontWidth: rc.fontWidth,
		Padding:   rc.padding.Width(),
		Avail:     inner.Width(),
	}
	for _, p := range u.gen.Generate(rng.Min, rng.Max, span) {
		x, _ := rc.proj.PositionToSVG(p.Position, 0)
		svg.Line(w, x, inner.Top, x, inner.Bottom, u.color, 1)
	}
}

// YGridLine draws horizontal grid lines at generated Y ticks.
type YGridLine[X ticks.Tick, Y ticks.Tick] struct {
	Gen   ticks.Generator[Y]
	Color string // markerColor when empty
}

func (g YGridLine[X, Y]) intoInner(pre *preState, _ axisData[X], yAxis axisData[Y]) innerUse {
	color := g.Color
	if color == "" {
		color = markerColor
	}
	return &yGridUse[Y]{gen: g.Gen, rng: yAxis.rng, color: color}
}

type yGridUse[Y ticks.Tick] struct {
	gen   ticks.Generator[Y]
	rng   reactive.Signal[*series.Range[Y]]
	color string
}

func (u *yGridUse[Y]) render(w io.Writer, rc renderContext, inner geom.Bounds) {
	rng := u.rng.Get()
	if rng == nil || inner.Zero() {
		return
	}
	span := ticks.VerticalSpan{
		LineHeight: rc.fontHeight + rc.padding.Height(),
		Avail:      inner.Height(),
	}
	for _, p := range u.gen.Generate(rng.Min, rng.Max, span) {
		_, y := rc.proj.PositionToSVG(0, p.Position)
		svg.Line(w, inner.Left, y, inner.Right, y, u.color, 1)
	}
}

// GuideAlign selects what a guide line tracks.
type GuideAlign int

const (
	// AlignData snaps the guide to the data point nearest the cursor.
	AlignData GuideAlign = iota
	// AlignCursor follows the raw cursor position.
	AlignCursor
)

const guideColor = "#9A9A9A"

// XGuideLine draws a vertical line tracking the cursor, snapped to the
// nearest data X position by default.
type XGuideLine[X ticks.Tick, Y ticks.Tick] struct {
	Align GuideAlign
	Color string // guideColor when empty
}

func (g XGuideLine[X, Y]) intoInner(*preState, axisData[X], axisData[Y]) innerUse {
	color := g.Color
	if color == "" {
		color = guideColor
	}
	return &xGuideUse{align: g.Align, color: color}
}

type xGuideUse struct {
	align GuideAlign
	color string
}

func (u *xGuideUse) render(w io.Writer, rc renderContext, inner geom.Bounds) {
	if rc.cursor == nil || inner.Zero() {
		return
	}
	var x float64
	switch u.align {
	case AlignCursor:
		x = rc.cursor.X
	default:
		if math.IsNaN(rc.nearestX) {
			return
		}
		x, _ = rc.proj.PositionToSVG(rc.nearestX, 0)
	}
	if x < inner.Left || x > inner.Right {
		return
	}
	svg.Line(w, x, inner.Top, x, inner.Bottom, u.color, 1)
}

// YGuideLine draws a horizontal line at the cursor's Y position.
type YGuideLine[X ticks.Tick, Y ticks.Tick] struct {
	Color string // guideColor when empty
}

func (g YGuideLine[X, Y]) intoInner(*preState, axisData[X], axisData[Y]) innerUse {
	color := g.Color
	if color == "" {
		color = guideColor
	}
	return &yGuideUse{color: color}
}

type yGuideUse struct {
	color string
}

func (u *yGuideUse) render(w io.Writer, rc renderContext, inner geom.Bounds) {
	if rc.cursor == nil || inner.Zero() {
		return
	}
	y := rc.cursor.Y
	if y < inner.Top || y > inner.Bottom {
		return
	}
	svg.Line(w, inner.Left, y, inner.Right, y, u.color, 1)
}

// Corner positions an inset decoration inside the plot area.
type Corner int

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// InsetLegend floats a legend inside the plot area, anchored to a corner.
type InsetLegend[X ticks.Tick, Y ticks.Tick] struct {
	Corner Corner
}

func (il InsetLegend[X, Y]) intoInner(_ *preState, xAxis axisData[X], _ axisData[Y]) innerUse {
	return &insetLegendUse{marks: xAxis.marks, corner: il.Corner}
}

type insetLegendUse struct {
	marks  []series.Mark
	corner Corner
}

func (u *insetLegendUse) render(w io.Writer, rc renderContext, inner geom.Bounds) {
	if len(u.marks) == 0 || inner.Zero() {
		return
	}
	line := rc.fontHeight + rc.padding.Height()
	longest := 0
	for _, m := range u.marks {
		if n := len([]rune(m.Name)); n > longest {
			longest = n
		}
	}
	width := float64(longest+2)*rc.fontWidth + rc.padding.Width()
	height := line * float64(len(u.marks))

	x, y := inner.Left, inner.Top
	switch u.corner {
	case CornerTopRight:
		x = inner.Right - width
	case CornerBottomLeft:
		y = inner.Bottom - height
	case CornerBottomRight:
		x, y = inner.Right-width, inner.Bottom-height
	}

	svg.FilledRect(w, x, y, width, height, "white")
	for _, m := range u.marks {
		renderLegendEntry(w, rc, m, x+rc.padding.Left, y+line/2)
		y += line
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
