package ticks

import (
	"math"
	"strconv"
)

// Floats generates ticks aligned to "nice" step sizes (1, 2, 2.5, 5 times a
// power of ten). The tick count starts at an upper bound and is reduced until
// the resulting labels fit the span.
type Floats struct{}

// niceUnits are the step multipliers tried per power of ten, in order of
// increasing coarseness.
var niceUnits = []float64{1, 2, 2.5, 5}

// maxFloatTicks bounds the search; more than this many labels never fits a
// sensible chart axis anyway.
const maxFloatTicks = 20

// Generate returns aligned ticks covering [first, last].
func (Floats) Generate(first, last Float, span Span) []Point[Float] {
	lo, hi := float64(first), float64(last)
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi == lo {
		p := floatPoint(lo, decimalsFor(1))
		if span.Consumed(p.Label) <= span.Length() {
			return []Point[Float]{p}
		}
		return nil
	}

	for count := maxFloatTicks; count >= 2; count-- {
		step := niceStep((hi - lo) / float64(count-1))
		pts := alignedPoints(lo, hi, step)
		if len(pts) == 0 || len(pts) > count {
			continue
		}
		if span.Consumed(labelsOf(pts)...) <= span.Length() {
			return pts
		}
	}

	// Not even two labels fit: fall back to a single centered tick.
	p := floatPoint((lo+hi)/2, decimalsFor(hi-lo))
	if span.Consumed(p.Label) <= span.Length() {
		return []Point[Float]{p}
	}
	return nil
}

// niceStep rounds raw up to the nearest nice step size.
func niceStep(raw float64) float64 {
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _, unit := range niceUnits {
		if step := unit * mag; step >= raw {
			return step
		}
	}
	return 10 * mag
}

// alignedPoints returns the multiples of step inside [lo, hi], labelled with
// just enough decimals to distinguish consecutive ticks.
func alignedPoints(lo, hi, step float64) []Point[Float] {
	decimals := decimalsFor(step)
	var pts []Point[Float]
	for v := math.Ceil(lo/step) * step; v <= hi+step*1e-9; v += step {
		p := floatPoint(v, decimals)
		if n := len(pts); n > 0 && pts[n-1].Label == p.Label {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}

func floatPoint(v float64, decimals int) Point[Float] {
	// Snap values like 0.30000000000000004 before formatting.
	scale := math.Pow(10, float64(decimals))
	v = math.Round(v*scale) / scale
	return Point[Float]{
		Value:    Float(v),
		Position: v,
		Label:    strconv.FormatFloat(v, 'f', decimals, 64),
	}
}

// decimalsFor returns the number of fraction digits needed to render steps
// of the given size distinctly.
func decimalsFor(step float64) int {
	if step <= 0 {
		return 0
	}
	d := -int(math.Floor(math.Log10(step)))
	if d < 0 {
		return 0
	}
	// One extra digit covers 2.5-style steps.
	if frac := step * math.Pow(10, float64(d)); frac != math.Trunc(frac) {
		d++
	}
	if d > 12 {
		d = 12
	}
	return d
}

func labelsOf[T Tick](pts []Point[T]) []string {
	labels := make([]string, len(pts))
	for i, p := range pts {
		labels[i] = p.Label
	}
	return labels
}
