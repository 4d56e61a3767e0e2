package chart

import "github.com/matzehuels/chartkit/pkg/chart/geom"

// Projection is the affine map between position space and SVG pixel space.
// It is built from exactly two inputs: the finalized inner plot bounds and
// the combined position range. The vertical axis is mirrored (SVG y grows
// downward, data y grows upward); the horizontal axis is not.
//
// A degenerate domain (zero width or height, e.g. a single data point) maps
// every value on that axis to the center of the corresponding pixel span
// instead of dividing by zero.
type Projection struct {
	bounds geom.Bounds // pixel target rectangle
	domain geom.Bounds // position-space domain rectangle
}

// NewProjection builds a projection from the inner plot bounds and the
// position range. The inner bounds must be finalized layout output, never an
// intermediate composition rectangle.
func NewProjection(inner, positionRange geom.Bounds) Projection {
	return Projection{bounds: inner, domain: positionRange}
}

// Bounds returns the pixel rectangle the projection targets.
func (p Projection) Bounds() geom.Bounds { return p.bounds }

// Domain returns the position-space rectangle the projection maps from.
func (p Projection) Domain() geom.Bounds { return p.domain }

// PositionToSVG maps a position-space point to SVG pixels. This is the bulk
// path for series rendering where positions are precomputed.
func (p Projection) PositionToSVG(x, y float64) (float64, float64) {
	var svgX, svgY float64
	if w := p.domain.Width(); w > 0 {
		svgX = p.bounds.Left + (x-p.domain.Left)/w*p.bounds.Width()
	} else {
		svgX = p.bounds.CenterX()
	}
	if h := p.domain.Height(); h > 0 {
		svgY = p.bounds.Bottom - (y-p.domain.Top)/h*p.bounds.Height()
	} else {
		svgY = p.bounds.CenterY()
	}
	return svgX, svgY
}

// DataToSVG maps a position-space point to SVG pixels.
func (p Projection) DataToSVG(x, y float64) (float64, float64) {
	return p.PositionToSVG(x, y)
}

// SVGToData maps an SVG pixel point back to position space. For a degenerate
// domain axis every pixel maps to the collapsed domain value.
func (p Projection) SVGToData(svgX, svgY float64) (float64, float64) {
	var x, y float64
	if w := p.bounds.Width(); w > 0 && p.domain.Width() > 0 {
		x = p.domain.Left + (svgX-p.bounds.Left)/w*p.domain.Width()
	} else {
		x = p.domain.CenterX()
	}
	if h := p.bounds.Height(); h > 0 && p.domain.Height() > 0 {
		y = p.domain.Top + (p.bounds.Bottom-svgY)/h*p.domain.Height()
	} else {
		y = p.domain.CenterY()
	}
	return x, y
}
