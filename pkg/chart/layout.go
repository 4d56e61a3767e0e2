package chart

// Layout composition peels edge decorations from the outside in around a
// shrinking central plot area. The mutual dependency between edge thickness
// and tick density is resolved by a bounded, deterministic pass order rather
// than a solver:
//
//  1. Horizontal edge (top/bottom) heights are fixed functions of font
//     metrics, known upfront.
//  2. The inner height follows from the resolved aspect minus those heights,
//     which gives vertical edges (left/right) the span they need to pick
//     their ticks and measure label widths.
//  3. The inner width follows from the aspect minus the vertical widths,
//     which gives horizontal edges the span they need for tick density.
//  4. Inner aspect policies skip the subtractions: the plot area is fixed
//     and the outer grows by whatever the edges consumed.
//
// Top and left decoration lists are declared in visual outer-to-inner order:
// the first declared item sits nearest the chart boundary. Bottom and right
// lists are declared inner-to-outer: the first declared item sits nearest
// the plot. This asymmetry is part of the public contract.

import (
	"io"

	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/series"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
	"github.com/matzehuels/chartkit/pkg/reactive"
)

// Phase describes how far a chart build has progressed. Between
// recomputations a chart observes either Unsized (no container measurement
// for an environment aspect policy) or Finalized; AspectResolving and
// Composing are the transient stages a recomputation passes through.
type Phase int

const (
	PhaseUnsized Phase = iota
	PhaseAspectResolving
	PhaseComposing
	PhaseFinalized
)

func (p Phase) String() string {
	switch p {
	case PhaseUnsized:
		return "unsized"
	case PhaseAspectResolving:
		return "aspect-resolving"
	case PhaseComposing:
		return "composing"
	case PhaseFinalized:
		return "finalized"
	}
	return "unknown"
}

// axisData is what an edge decoration may read from its axis: the combined
// data range (to generate ticks from) and the resolved marks (for legends).
type axisData[T ticks.Tick] struct {
	rng   reactive.Signal[*series.Range[T]]
	marks []series.Mark
}

// EdgeLayout is a decoration attachable to a chart edge. Implementations
// report a fixed height for horizontal placement upfront (heights never
// depend on layout), and resolve to a measured edgeUse once the available
// span along the edge is known.
type EdgeLayout[T ticks.Tick] interface {
	// fixedHeight is the thickness the decoration occupies on a top or
	// bottom edge, a function of font metrics only.
	fixedHeight(pre *preState) reactive.Signal[float64]
	// into measures the decoration against its axis. avail is the pixel
	// span along the edge: the inner height for left/right placement, the
	// inner width for top/bottom.
	into(pre *preState, axis axisData[T], avail reactive.Signal[float64], edge Edge) edgeUse
}

// edgeUse is a measured edge decoration: a perpendicular thickness plus a
// renderer invoked with the rectangle the composition assigned to it.
type edgeUse interface {
	thickness() reactive.Signal[float64]
	render(w io.Writer, rc renderContext, edge Edge, b geom.Bounds)
}

// edgeSlot pairs a measured decoration with its edge and the thickness
// signal the composition uses for both summing and rectangle assignment.
type edgeSlot struct {
	edge  Edge
	use   edgeUse
	thick reactive.Signal[float64]
}

// layoutResult is one finalized composition: outer and inner rectangles
// plus the rectangle assigned to every edge decoration, in declaration
// order per edge.
type layoutResult struct {
	Phase Phase
	Outer geom.Bounds
	Inner geom.Bounds

	Top, Right, Bottom, Left []geom.Bounds
}

// layout owns the composed edge decorations and the derived geometry cells.
type layout struct {
	aspect      *reactive.Memo[knownAspect]
	innerWidth  *reactive.Memo[float64]
	innerHeight *reactive.Memo[float64]
	result      *reactive.Memo[layoutResult]

	top, right, bottom, left []edgeSlot
}

// composeLayout wires the decorations of all four edges into a layout. The
// pass order in the package comment is realized here as construction order:
// each derived cell depends only on cells built before it.
func composeLayout[X ticks.Tick, Y ticks.Tick](
	pre *preState,
	aspect AspectRatio,
	container *reactive.Value[*geom.Size],
	top, bottom []EdgeLayout[X],
	left, right []EdgeLayout[Y],
	xAxis axisData[X],
	yAxis axisData[Y],
) *layout {
	l := &layout{}

	l.aspect = reactive.NewMemo(func() knownAspect {
		return aspect.resolve(container.Get())
	}, container)

	// Horizontal edge heights are known before any composition.
	topHeights := make([]reactive.Signal[float64], len(top))
	for i, item := range top {
		topHeights[i] = item.fixedHeight(pre)
	}
	bottomHeights := make([]reactive.Signal[float64], len(bottom))
	for i, item := range bottom {
		bottomHeights[i] = item.fixedHeight(pre)
	}
	topSum := sumOf(topHeights)
	bottomSum := sumOf(bottomHeights)

	l.innerHeight = reactive.NewMemo(func() float64 {
		k := l.aspect.Get()
		switch {
		case !k.ok:
			return 0
		case k.inner:
			return k.height
		default:
			return max(0, k.height-topSum.Get()-bottomSum.Get())
		}
	}, l.aspect, topSum, bottomSum)

	// Vertical edges measure against the inner height.
	leftWidths := make([]reactive.Signal[float64], len(left))
	for i, item := range left {
		use := item.into(pre, yAxis, l.innerHeight, EdgeLeft)
		l.left = append(l.left, edgeSlot{edge: EdgeLeft, use: use, thick: use.thickness()})
		leftWidths[i] = l.left[i].thick
	}
	rightWidths := make([]reactive.Signal[float64], len(right))
	for i, item := range right {
		use := item.into(pre, yAxis, l.innerHeight, EdgeRight)
		l.right = append(l.right, edgeSlot{edge: EdgeRight, use: use, thick: use.thickness()})
		rightWidths[i] = l.right[i].thick
	}
	leftSum := sumOf(leftWidths)
	rightSum := sumOf(rightWidths)

	l.innerWidth = reactive.NewMemo(func() float64 {
		k := l.aspect.Get()
		switch {
		case !k.ok:
			return 0
		case k.inner:
			return k.width
		default:
			return max(0, k.width-leftSum.Get()-rightSum.Get())
		}
	}, l.aspect, leftSum, rightSum)

	// Horizontal edges measure against the inner width. Their thickness is
	// the fixed height reported upfront.
	for i, item := range top {
		use := item.into(pre, xAxis, l.innerWidth, EdgeTop)
		l.top = append(l.top, edgeSlot{edge: EdgeTop, use: use, thick: topHeights[i]})
	}
	for i, item := range bottom {
		use := item.into(pre, xAxis, l.innerWidth, EdgeBottom)
		l.bottom = append(l.bottom, edgeSlot{edge: EdgeBottom, use: use, thick: bottomHeights[i]})
	}

	deps := []reactive.Source{l.aspect, l.innerWidth, l.innerHeight, topSum, bottomSum, leftSum, rightSum}
	for _, slots := range [][]edgeSlot{l.top, l.right, l.bottom, l.left} {
		for _, s := range slots {
			deps = append(deps, s.thick)
		}
	}
	l.result = reactive.NewMemo(func() layoutResult {
		k := l.aspect.Get()
		if !k.ok {
			return layoutResult{Phase: PhaseUnsized}
		}

		iw, ih := l.innerWidth.Get(), l.innerHeight.Get()
		tH, bH := topSum.Get(), bottomSum.Get()
		lW, rW := leftSum.Get(), rightSum.Get()

		var outer geom.Bounds
		if k.inner {
			outer = geom.FromSize(iw+lW+rW, ih+tH+bH)
		} else {
			outer = geom.FromSize(k.width, k.height)
		}
		inner := outer.ShrinkTop(tH).ShrinkBottom(bH).ShrinkLeft(lW).ShrinkRight(rW)

		res := layoutResult{
			Phase: PhaseFinalized,
			Outer: outer,
			Inner: inner,
		}

		// Top and left peel inward from the chart boundary, so the first
		// declared decoration is the outermost. Bottom and right grow
		// outward from the plot, so the first declared is the innermost.
		y := outer.Top
		for _, s := range l.top {
			h := s.thick.Get()
			res.Top = append(res.Top, geom.Bounds{Left: inner.Left, Top: y, Right: inner.Right, Bottom: y + h})
			y += h
		}
		y = inner.Bottom
		for _, s := range l.bottom {
			h := s.thick.Get()
			res.Bottom = append(res.Bottom, geom.Bounds{Left: inner.Left, Top: y, Right: inner.Right, Bottom: y + h})
			y += h
		}
		x := outer.Left
		for _, s := range l.left {
			w := s.thick.Get()
			res.Left = append(res.Left, geom.Bounds{Left: x, Top: inner.Top, Right: x + w, Bottom: inner.Bottom})
			x += w
		}
		x = inner.Right
		for _, s := range l.right {
			w := s.thick.Get()
			res.Right = append(res.Right, geom.Bounds{Left: x, Top: inner.Top, Right: x + w, Bottom: inner.Bottom})
			x += w
		}
		return res
	}, deps...)

	return l
}

// renderEdges writes every edge decoration inside its assigned rectangle.
func (l *layout) renderEdges(w io.Writer, rc renderContext, res layoutResult) {
	for i, s := range l.top {
		s.use.render(w, rc, s.edge, res.Top[i])
	}
	for i, s := range l.right {
		s.use.render(w, rc, s.edge, res.Right[i])
	}
	for i, s := range l.bottom {
		s.use.render(w, rc, s.edge, res.Bottom[i])
	}
	for i, s := range l.left {
		s.use.render(w, rc, s.edge, res.Left[i])
	}
}

// sumOf derives the sum of a list of float cells.
func sumOf(sigs []reactive.Signal[float64]) *reactive.Memo[float64] {
	deps := make([]reactive.Source, len(sigs))
	for i, s := range sigs {
		deps[i] = s
	}
	return reactive.NewMemo(func() float64 {
		var sum float64
		for _, s := range sigs {
			sum += s.Get()
		}
		return sum
	}, deps...)
}
