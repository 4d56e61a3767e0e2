// Package series converts a declarative description of chart series
// (extractors over a record type, plus range overrides) and an ordered record
// sequence into the reactive arrays the chart engine consumes: per-mark
// values and position-space projections, reconciled data ranges, and
// nearest-point queries for cursor interaction.
//
// Records must arrive sorted by the independent variable; the nearest-point
// binary search depends on ascending X positions.
package series

import (
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
	"github.com/matzehuels/chartkit/pkg/reactive"
)

// MarkKind distinguishes how a mark's data is drawn.
type MarkKind int

const (
	// MarkLine draws data as a connected polyline.
	MarkLine MarkKind = iota
	// MarkBar draws data as vertical bars from the zero baseline.
	MarkBar
)

// Mark is a resolved, renderable series descriptor. Marks are identified by
// a small integer id; everything that needs a mark looks it up by id rather
// than sharing references.
type Mark struct {
	ID    int
	Name  string
	Kind  MarkKind
	Color string
	Width float64 // stroke width for lines
}

// Line declares a polyline mark over the record type T.
type Line[T any, Y ticks.Tick] struct {
	Name  string
	GetY  func(T) Y
	Width float64 // stroke width, 1 when zero
}

// Bar declares a bar mark over the record type T.
type Bar[T any, Y ticks.Tick] struct {
	Name string
	GetY func(T) Y
}

// Series is the declarative form: an X extractor, a list of marks, a color
// scheme, and optional range overrides. Build one with New, add marks, then
// call Use to resolve it against a data cell.
type Series[T any, X ticks.Tick, Y ticks.Tick] struct {
	getX   func(T) X
	marks  []markSpec[T, Y]
	scheme Scheme

	// Range overrides. Nil means no override; the combined range is always
	// the componentwise min/max of data and override, so an override outside
	// the data widens the range and one inside it is absorbed.
	MinX *reactive.Value[*X]
	MaxX *reactive.Value[*X]
	MinY *reactive.Value[*Y]
	MaxY *reactive.Value[*Y]
}

// markSpec pairs a declared mark with its Y extractor before resolution.
type markSpec[T any, Y ticks.Tick] struct {
	name  string
	kind  MarkKind
	getY  func(T) Y
	width float64
}

// New creates a Series with the given X extractor and the default colors.
func New[T any, X ticks.Tick, Y ticks.Tick](getX func(T) X) *Series[T, X, Y] {
	return &Series[T, X, Y]{
		getX:   getX,
		scheme: DefaultScheme(),
		MinX:   reactive.NewValue[*X](nil),
		MaxX:   reactive.NewValue[*X](nil),
		MinY:   reactive.NewValue[*Y](nil),
		MaxY:   reactive.NewValue[*Y](nil),
	}
}

// AddLine appends a line mark.
func (s *Series[T, X, Y]) AddLine(l Line[T, Y]) *Series[T, X, Y] {
	width := l.Width
	if width == 0 {
		width = 1
	}
	s.marks = append(s.marks, markSpec[T, Y]{name: l.Name, kind: MarkLine, getY: l.GetY, width: width})
	return s
}

// AddBar appends a bar mark.
func (s *Series[T, X, Y]) AddBar(b Bar[T, Y]) *Series[T, X, Y] {
	s.marks = append(s.marks, markSpec[T, Y]{name: b.Name, kind: MarkBar, getY: b.GetY})
	return s
}

// SetColors replaces the color scheme.
func (s *Series[T, X, Y]) SetColors(scheme Scheme) *Series[T, X, Y] {
	s.scheme = scheme
	return s
}

// SetXMin sets the X range override lower bound.
func (s *Series[T, X, Y]) SetXMin(x X) *Series[T, X, Y] {
	s.MinX.Set(&x)
	return s
}

// SetXMax sets the X range override upper bound.
func (s *Series[T, X, Y]) SetXMax(x X) *Series[T, X, Y] {
	s.MaxX.Set(&x)
	return s
}

// SetXRange sets both X range override bounds.
func (s *Series[T, X, Y]) SetXRange(lo, hi X) *Series[T, X, Y] {
	return s.SetXMin(lo).SetXMax(hi)
}

// SetYMin sets the Y range override lower bound.
func (s *Series[T, X, Y]) SetYMin(y Y) *Series[T, X, Y] {
	s.MinY.Set(&y)
	return s
}

// SetYMax sets the Y range override upper bound.
func (s *Series[T, X, Y]) SetYMax(y Y) *Series[T, X, Y] {
	s.MaxY.Set(&y)
	return s
}

// SetYRange sets both Y range override bounds.
func (s *Series[T, X, Y]) SetYRange(lo, hi Y) *Series[T, X, Y] {
	return s.SetYMin(lo).SetYMax(hi)
}
