package geom

// Padding is a set of per-side insets in pixel units.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// Uniform creates a Padding with the same inset on all four sides.
func Uniform(v float64) Padding {
	return Padding{Top: v, Right: v, Bottom: v, Left: v}
}

// Sides creates a Padding with a vertical inset for top/bottom and a
// horizontal inset for left/right.
func Sides(vertical, horizontal float64) Padding {
	return Padding{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// Width returns the total horizontal inset.
func (p Padding) Width() float64 { return p.Left + p.Right }

// Height returns the total vertical inset.
func (p Padding) Height() float64 { return p.Top + p.Bottom }
