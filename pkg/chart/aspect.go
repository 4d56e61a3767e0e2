package chart

import "github.com/matzehuels/chartkit/pkg/chart/geom"

// AspectRatio declares how the chart's outer width and height are derived.
//
// Outer policies fix the outer SVG dimensions directly. Inner policies fix
// the plot area (the rectangle left after edge decorations) and let the
// outer dimensions grow by whatever the edges consume, so charts with the
// same inner aspect stay visually comparable regardless of label widths.
// Environment policies follow the observed container size, optionally
// deriving one axis from the other with a ratio.
type AspectRatio struct {
	kind aspectKind
	calc aspectCalc
	a, b float64
}

type aspectKind int

const (
	aspectOuter aspectKind = iota
	aspectInner
	aspectEnv
)

type aspectCalc int

const (
	calcSize   aspectCalc = iota // a=width, b=height
	calcWidth                    // a=height, b=ratio: width = height * ratio
	calcHeight                   // a=width, b=ratio: height = width / ratio
	calcEnv                      // follow container on both axes
)

// OuterSize fixes the outer dimensions.
func OuterSize(width, height float64) AspectRatio {
	return AspectRatio{kind: aspectOuter, calc: calcSize, a: width, b: height}
}

// OuterWidth fixes the outer height and derives width = height × ratio.
func OuterWidth(height, ratio float64) AspectRatio {
	return AspectRatio{kind: aspectOuter, calc: calcWidth, a: height, b: ratio}
}

// OuterHeight fixes the outer width and derives height = width / ratio.
func OuterHeight(width, ratio float64) AspectRatio {
	return AspectRatio{kind: aspectOuter, calc: calcHeight, a: width, b: ratio}
}

// InnerSize fixes the plot-area dimensions.
func InnerSize(width, height float64) AspectRatio {
	return AspectRatio{kind: aspectInner, calc: calcSize, a: width, b: height}
}

// InnerWidth fixes the plot-area height and derives its width from ratio.
func InnerWidth(height, ratio float64) AspectRatio {
	return AspectRatio{kind: aspectInner, calc: calcWidth, a: height, b: ratio}
}

// InnerHeight fixes the plot-area width and derives its height from ratio.
func InnerHeight(width, ratio float64) AspectRatio {
	return AspectRatio{kind: aspectInner, calc: calcHeight, a: width, b: ratio}
}

// Environment follows the observed container size on both axes.
func Environment() AspectRatio {
	return AspectRatio{kind: aspectEnv, calc: calcEnv}
}

// EnvironmentWidth follows the container height and derives width from ratio.
func EnvironmentWidth(ratio float64) AspectRatio {
	return AspectRatio{kind: aspectEnv, calc: calcWidth, b: ratio}
}

// EnvironmentHeight follows the container width and derives height from ratio.
func EnvironmentHeight(ratio float64) AspectRatio {
	return AspectRatio{kind: aspectEnv, calc: calcHeight, b: ratio}
}

// knownAspect is a resolved aspect policy: concrete dimensions plus whether
// they describe the inner plot area or the outer chart. ok is false while an
// environment policy is still waiting for a container measurement.
type knownAspect struct {
	ok     bool
	inner  bool
	width  float64
	height float64
}

// resolve reduces the policy against the observed container size (nil before
// the first measurement).
func (a AspectRatio) resolve(env *geom.Size) knownAspect {
	switch a.kind {
	case aspectEnv:
		if env == nil {
			return knownAspect{}
		}
		switch a.calc {
		case calcWidth:
			return knownAspect{ok: true, width: env.Height * a.b, height: env.Height}
		case calcHeight:
			return knownAspect{ok: true, width: env.Width, height: ratioHeight(env.Width, a.b)}
		default:
			return knownAspect{ok: true, width: env.Width, height: env.Height}
		}
	case aspectInner:
		k := a.resolveFixed()
		k.inner = true
		return k
	default:
		return a.resolveFixed()
	}
}

func (a AspectRatio) resolveFixed() knownAspect {
	switch a.calc {
	case calcWidth:
		return knownAspect{ok: true, width: a.a * a.b, height: a.a}
	case calcHeight:
		return knownAspect{ok: true, width: a.a, height: ratioHeight(a.a, a.b)}
	default:
		return knownAspect{ok: true, width: a.a, height: a.b}
	}
}

func ratioHeight(width, ratio float64) float64 {
	if ratio == 0 {
		return 0
	}
	return width / ratio
}
