// Package geom provides the pixel-space primitives shared by chart layout
// and projection: axis-aligned bounds, padding insets, and sizes.
package geom

// Bounds is an axis-aligned rectangle in pixel units. Top < Bottom follows
// the SVG convention (y grows downward). A finalized Bounds always has
// Right >= Left and Bottom >= Top; zero-area rectangles are valid and mean
// "nothing to draw".
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// FromPoints builds a Bounds from two corner points, normalizing the order
// so that Left <= Right and Top <= Bottom regardless of argument order.
func FromPoints(x0, y0, x1, y1 float64) Bounds {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Bounds{Left: x0, Top: y0, Right: x1, Bottom: y1}
}

// FromSize builds a Bounds anchored at the origin.
func FromSize(width, height float64) Bounds {
	return FromPoints(0, 0, width, height)
}

// Width returns the horizontal span of the rectangle.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns the vertical span of the rectangle.
func (b Bounds) Height() float64 { return b.Bottom - b.Top }

// CenterX returns the horizontal center point.
func (b Bounds) CenterX() float64 { return (b.Left + b.Right) / 2 }

// CenterY returns the vertical center point.
func (b Bounds) CenterY() float64 { return (b.Top + b.Bottom) / 2 }

// Zero reports whether the rectangle has no area.
func (b Bounds) Zero() bool { return b.Width() <= 0 || b.Height() <= 0 }

// Pad shrinks the rectangle by the given insets, clamping so the result
// never has negative width or height.
func (b Bounds) Pad(p Padding) Bounds {
	left := b.Left + p.Left
	top := b.Top + p.Top
	right := b.Right - p.Right
	bottom := b.Bottom - p.Bottom
	if right < left {
		mid := (left + right) / 2
		left, right = mid, mid
	}
	if bottom < top {
		mid := (top + bottom) / 2
		top, bottom = mid, mid
	}
	return Bounds{Left: left, Top: top, Right: right, Bottom: bottom}
}

// ShrinkTop returns the rectangle with the given thickness removed from the
// top edge, floored at zero height.
func (b Bounds) ShrinkTop(t float64) Bounds {
	b.Top = min(b.Top+t, b.Bottom)
	return b
}

// ShrinkBottom returns the rectangle with the given thickness removed from
// the bottom edge, floored at zero height.
func (b Bounds) ShrinkBottom(t float64) Bounds {
	b.Bottom = max(b.Bottom-t, b.Top)
	return b
}

// ShrinkLeft returns the rectangle with the given thickness removed from the
// left edge, floored at zero width.
func (b Bounds) ShrinkLeft(t float64) Bounds {
	b.Left = min(b.Left+t, b.Right)
	return b
}

// ShrinkRight returns the rectangle with the given thickness removed from
// the right edge, floored at zero width.
func (b Bounds) ShrinkRight(t float64) Bounds {
	b.Right = max(b.Right-t, b.Left)
	return b
}

// Size is a width/height pair in pixel units.
type Size struct {
	Width, Height float64
}

// Point is an x/y pair in pixel units.
type Point struct {
	X, Y float64
}
