package chart

import (
	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/reactive"
)

// Font dimensions used when the caller does not override them. The width
// must be the exact advance of one character in the monospaced font the SVG
// text is rendered with; all label measurement builds on it.
const (
	DefaultFontHeight = 16.0
	DefaultFontWidth  = 10.0
)

// preState bundles the chart-wide attributes every layout item reads:
// font metrics, padding, and debug mode. All derived, all reactive.
type preState struct {
	debug      *reactive.Memo[bool]
	fontHeight *reactive.Memo[float64]
	fontWidth  *reactive.Memo[float64]
	padding    *reactive.Memo[geom.Padding]
}

func newPreState(
	debug *reactive.Value[bool],
	fontHeight, fontWidth *reactive.Value[float64],
	padding *reactive.Value[*geom.Padding],
) *preState {
	height := reactive.NewMemo(func() float64 {
		if v := fontHeight.Get(); v > 0 {
			return v
		}
		return DefaultFontHeight
	}, fontHeight)
	width := reactive.NewMemo(func() float64 {
		if v := fontWidth.Get(); v > 0 {
			return v
		}
		return DefaultFontWidth
	}, fontWidth)
	return &preState{
		debug:      reactive.NewMemo(debug.Get, debug),
		fontHeight: height,
		fontWidth:  width,
		// Default padding is one font width on every side.
		padding: reactive.NewMemo(func() geom.Padding {
			if p := padding.Get(); p != nil {
				return *p
			}
			return geom.Uniform(width.Get())
		}, padding, width),
	}
}

// lineHeight derives the height of one padded text line, the thickness of
// every text-bearing decoration on a horizontal edge.
func lineHeight(pre *preState) *reactive.Memo[float64] {
	return reactive.NewMemo(func() float64 {
		return pre.fontHeight.Get() + pre.padding.Get().Height()
	}, pre.fontHeight, pre.padding)
}

// renderContext is the resolved (non-reactive) snapshot handed to items
// while writing SVG: the finalized projection plus chart attributes.
type renderContext struct {
	proj       Projection
	fontHeight float64
	fontWidth  float64
	padding    geom.Padding
	debug      bool

	// Cursor state for guide lines; nil when the pointer is outside.
	cursor *geom.Point
	// nearestX is the data-aligned X position closest to the cursor,
	// NaN when there is no cursor or no data.
	nearestX float64
}
