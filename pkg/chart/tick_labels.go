package chart

import (
	"io"

	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/svg"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
	"github.com/matzehuels/chartkit/pkg/reactive"
)

// TickLabels renders generated tick labels along an edge. On a horizontal
// edge it occupies one line of text; on a vertical edge its width follows
// the widest generated label, so left/right thickness reacts to the data
// range and the available height.
type TickLabels[T ticks.Tick] struct {
	Gen ticks.Generator[T]
}

func (tl TickLabels[T]) fixedHeight(pre *preState) reactive.Signal[float64] {
	return lineHeight(pre)
}

func (tl TickLabels[T]) into(pre *preState, axis axisData[T], avail reactive.Signal[float64], edge Edge) edgeUse {
	gen := reactive.NewMemo(func() []ticks.Point[T] {
		rng := axis.rng.Get()
		if rng == nil {
			return nil
		}
		var span ticks.Span
		if edge.Horizontal() {
			span = ticks.HorizontalSpan{
				FontWidth: pre.fontWidth.Get(),
				Padding:   pre.padding.Get().Width(),
				Avail:     avail.Get(),
			}
		} else {
			span = ticks.VerticalSpan{
				LineHeight: pre.fontHeight.Get() + pre.padding.Get().Height(),
				Avail:      avail.Get(),
			}
		}
		return tl.Gen.Generate(rng.Min, rng.Max, span)
	}, axis.rng, avail, pre.fontWidth, pre.fontHeight, pre.padding)

	var thick reactive.Signal[float64]
	if edge.Horizontal() {
		thick = tl.fixedHeight(pre)
	} else {
		thick = reactive.NewMemo(func() float64 {
			longest := 0
			for _, p := range gen.Get() {
				if n := len([]rune(p.Label)); n > longest {
					longest = n
				}
			}
			if longest == 0 {
				return 0
			}
			return float64(longest)*pre.fontWidth.Get() + pre.padding.Get().Width()
		}, gen, pre.fontWidth, pre.padding)
	}

	return &tickLabelsUse[T]{gen: gen, thick: thick}
}

type tickLabelsUse[T ticks.Tick] struct {
	gen   *reactive.Memo[[]ticks.Point[T]]
	thick reactive.Signal[float64]
}

func (u *tickLabelsUse[T]) thickness() reactive.Signal[float64] { return u.thick }

func (u *tickLabelsUse[T]) render(w io.Writer, rc renderContext, edge Edge, b geom.Bounds) {
	if b.Zero() {
		return
	}
	if rc.debug {
		svg.Rect(w, b.Left, b.Top, b.Width(), b.Height(), "orange")
	}
	for _, p := range u.gen.Get() {
		if edge.Horizontal() {
			x, _ := rc.proj.PositionToSVG(p.Position, 0)
			svg.Text(w, x, b.CenterY(), "middle", rc.fontHeight, p.Label)
			continue
		}
		_, y := rc.proj.PositionToSVG(0, p.Position)
		if edge == EdgeLeft {
			// Right-aligned against the plot, padded off the axis line.
			svg.Text(w, b.Right-rc.padding.Right, y, "end", rc.fontHeight, p.Label)
		} else {
			svg.Text(w, b.Left+rc.padding.Left, y, "start", rc.fontHeight, p.Label)
		}
	}
}
