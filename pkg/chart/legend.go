package chart

import (
	"io"

	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/series"
	"github.com/matzehuels/chartkit/pkg/chart/svg"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
	"github.com/matzehuels/chartkit/pkg/reactive"
)

// Legend lists every mark with its color swatch. On a horizontal edge the
// entries sit side by side; on a vertical edge they stack one per line.
type Legend[T ticks.Tick] struct {
	Anchor Anchor
}

func (lg Legend[T]) fixedHeight(pre *preState) reactive.Signal[float64] {
	return lineHeight(pre)
}

func (lg Legend[T]) into(pre *preState, axis axisData[T], _ reactive.Signal[float64], edge Edge) edgeUse {
	var thick reactive.Signal[float64]
	if edge.Horizontal() {
		thick = lg.fixedHeight(pre)
	} else {
		thick = reactive.NewMemo(func() float64 {
			if len(axis.marks) == 0 {
				return 0
			}
			longest := 0
			for _, m := range axis.marks {
				if n := len([]rune(m.Name)); n > longest {
					longest = n
				}
			}
			// Two character cells for the swatch and its gap.
			return float64(longest+2)*pre.fontWidth.Get() + pre.padding.Get().Width()
		}, pre.fontWidth, pre.padding)
	}
	return &legendUse{marks: axis.marks, anchor: lg.Anchor, thick: thick}
}

type legendUse struct {
	marks  []series.Mark
	anchor Anchor
	thick  reactive.Signal[float64]
}

func (u *legendUse) thickness() reactive.Signal[float64] { return u.thick }

func (u *legendUse) render(w io.Writer, rc renderContext, edge Edge, b geom.Bounds) {
	if len(u.marks) == 0 || b.Zero() {
		return
	}
	if rc.debug {
		svg.Rect(w, b.Left, b.Top, b.Width(), b.Height(), "green")
	}
	if edge.Horizontal() {
		u.renderRow(w, rc, b)
	} else {
		u.renderColumn(w, rc, b)
	}
}

func (u *legendUse) renderRow(w io.Writer, rc renderContext, b geom.Bounds) {
	entryWidth := func(m series.Mark) float64 {
		return float64(len([]rune(m.Name))+2)*rc.fontWidth + rc.padding.Width()
	}
	var total float64
	for _, m := range u.marks {
		total += entryWidth(m)
	}

	x := b.Left
	switch u.anchor {
	case AnchorMiddle:
		x = b.CenterX() - total/2
	case AnchorEnd:
		x = b.Right - total
	}
	y := b.CenterY()
	for _, m := range u.marks {
		renderLegendEntry(w, rc, m, x+rc.padding.Left, y)
		x += entryWidth(m)
	}
}

func (u *legendUse) renderColumn(w io.Writer, rc renderContext, b geom.Bounds) {
	line := rc.fontHeight + rc.padding.Height()
	total := line * float64(len(u.marks))

	y := b.Top
	switch u.anchor {
	case AnchorMiddle:
		y = b.CenterY() - total/2
	case AnchorEnd:
		y = b.Bottom - total
	}
	for _, m := range u.marks {
		renderLegendEntry(w, rc, m, b.Left+rc.padding.Left, y+line/2)
		y += line
	}
}

// renderLegendEntry draws one swatch plus name, left-anchored at (x, y).
func renderLegendEntry(w io.Writer, rc renderContext, m series.Mark, x, y float64) {
	swatch := rc.fontWidth
	svg.FilledRect(w, x, y-swatch/2, swatch, swatch, m.Color)
	svg.Text(w, x+2*rc.fontWidth, y, "start", rc.fontHeight, m.Name)
}
