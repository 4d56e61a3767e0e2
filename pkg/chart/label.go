package chart

import (
	"io"

	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/svg"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
	"github.com/matzehuels/chartkit/pkg/reactive"
)

// Anchor positions a decoration along its edge.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

func (a Anchor) svg() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorEnd:
		return "end"
	}
	return "middle"
}

// RotatedLabel is an edge title. On top and bottom edges the text runs
// horizontally; on the left edge it is rotated to read bottom-up, on the
// right edge top-down.
type RotatedLabel[T ticks.Tick] struct {
	Text   string
	Anchor Anchor
}

func (rl RotatedLabel[T]) fixedHeight(pre *preState) reactive.Signal[float64] {
	return lineHeight(pre)
}

func (rl RotatedLabel[T]) into(pre *preState, _ axisData[T], _ reactive.Signal[float64], edge Edge) edgeUse {
	var thick reactive.Signal[float64]
	if edge.Horizontal() {
		thick = rl.fixedHeight(pre)
	} else {
		// Rotated a line of text occupies its height as width.
		thick = reactive.NewMemo(func() float64 {
			return pre.fontHeight.Get() + pre.padding.Get().Width()
		}, pre.fontHeight, pre.padding)
	}
	return &rotatedLabelUse{text: rl.Text, anchor: rl.Anchor, thick: thick}
}

type rotatedLabelUse struct {
	text   string
	anchor Anchor
	thick  reactive.Signal[float64]
}

func (u *rotatedLabelUse) thickness() reactive.Signal[float64] { return u.thick }

func (u *rotatedLabelUse) render(w io.Writer, rc renderContext, edge Edge, b geom.Bounds) {
	if u.text == "" || b.Zero() {
		return
	}
	if rc.debug {
		svg.Rect(w, b.Left, b.Top, b.Width(), b.Height(), "purple")
	}

	if edge.Horizontal() {
		x := b.CenterX()
		switch u.anchor {
		case AnchorStart:
			x = b.Left + rc.padding.Left
		case AnchorEnd:
			x = b.Right - rc.padding.Right
		}
		svg.Text(w, x, b.CenterY(), u.anchor.svg(), rc.fontHeight, u.text)
		return
	}

	// Left reads bottom-up, right top-down; the anchor follows the reading
	// direction, so start is the bottom on the left edge and the top on the
	// right edge.
	x := b.CenterX()
	y := b.CenterY()
	deg := -90.0
	if edge == EdgeRight {
		deg = 90
	}
	switch u.anchor {
	case AnchorStart:
		if edge == EdgeLeft {
			y = b.Bottom - rc.padding.Bottom
		} else {
			y = b.Top + rc.padding.Top
		}
	case AnchorEnd:
		if edge == EdgeLeft {
			y = b.Top + rc.padding.Top
		} else {
			y = b.Bottom - rc.padding.Bottom
		}
	}
	svg.RotatedText(w, x, y, deg, u.anchor.svg(), rc.fontHeight, u.text)
}
