// Package ticks generates axis tick values, positions, and display labels
// for a data span constrained by the pixel span available to render them.
//
// Generators guarantee that the returned ticks are ordered, deduplicated,
// and within (or logically bounding) the requested span, and that the tick
// count is reduced until the rendered labels fit the available span. A
// degenerate span (first == last) yields a single tick; callers with no data
// simply do not ask for ticks.
package ticks

import "time"

// Tick is a value that can be placed on an axis. Position projects the value
// onto the real line; all range, ordering, and distance computations operate
// on positions so that non-numeric tick types order consistently.
type Tick interface {
	Position() float64
}

// Float is a plain numeric tick.
type Float float64

// Position returns the value itself.
func (f Float) Position() float64 { return float64(f) }

// Timestamp is a temporal tick.
type Timestamp time.Time

// Position returns fractional Unix time: whole seconds plus the nanosecond
// fraction. This keeps sub-second data monotonic in position space.
func (ts Timestamp) Position() float64 {
	t := time.Time(ts)
	return float64(t.Unix()) + float64(t.Nanosecond())/1e9
}

// Time returns the underlying time.Time.
func (ts Timestamp) Time() time.Time { return time.Time(ts) }

// Point is a generated tick: the tick value, its position-space projection,
// and the short display label to render.
type Point[T Tick] struct {
	Value    T
	Position float64
	Label    string
}

// Generator produces the ticks for an axis span. Implementations must be
// pure: the same inputs always yield the same ticks.
type Generator[T Tick] interface {
	Generate(first, last T, span Span) []Point[T]
}

// Span describes the pixel space available for rendering tick labels along
// an axis, and how much of it a candidate label set would consume.
type Span interface {
	// Length is the available pixel span.
	Length() float64
	// Consumed is the pixel span a set of rendered labels would take.
	Consumed(labels ...string) float64
}

// HorizontalSpan models labels laid side by side along a horizontal axis.
// Each label occupies the width of the widest label in the set (labels are
// centered on their ticks, so spacing is uniform) plus padding.
type HorizontalSpan struct {
	FontWidth float64 // exact width of one monospaced character
	Padding   float64 // horizontal padding around each label
	Avail     float64 // available pixel width
}

// Length returns the available width.
func (s HorizontalSpan) Length() float64 { return s.Avail }

// Consumed returns widest-label width (plus padding) times the label count.
func (s HorizontalSpan) Consumed(labels ...string) float64 {
	longest := 0
	for _, l := range labels {
		if n := len([]rune(l)); n > longest {
			longest = n
		}
	}
	width := s.FontWidth*float64(longest) + s.Padding
	return width * float64(len(labels))
}

// VerticalSpan models labels stacked along a vertical axis, one line each.
type VerticalSpan struct {
	LineHeight float64 // font height plus vertical padding
	Avail      float64 // available pixel height
}

// Length returns the available height.
func (s VerticalSpan) Length() float64 { return s.Avail }

// Consumed returns one line height per label.
func (s VerticalSpan) Consumed(labels ...string) float64 {
	return s.LineHeight * float64(len(labels))
}
