package chart

import (
	"io"
	"testing"

	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/series"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
	"github.com/matzehuels/chartkit/pkg/reactive"
)

// fixedEdge is a decoration with a constant thickness on any edge.
type fixedEdge struct{ t float64 }

func (f fixedEdge) fixedHeight(*preState) reactive.Signal[float64] {
	return reactive.NewValue(f.t)
}

func (f fixedEdge) into(*preState, axisData[ticks.Float], reactive.Signal[float64], Edge) edgeUse {
	return fixedUse{t: f.t}
}

type fixedUse struct{ t float64 }

func (f fixedUse) thickness() reactive.Signal[float64]             { return reactive.NewValue(f.t) }
func (f fixedUse) render(io.Writer, renderContext, Edge, geom.Bounds) {}

func testPre() *preState {
	return newPreState(
		reactive.NewValue(false),
		reactive.NewValue(0.0),
		reactive.NewValue(0.0),
		reactive.NewValue[*geom.Padding](nil),
	)
}

func testCompose(
	aspect AspectRatio,
	container *reactive.Value[*geom.Size],
	top, bottom, left, right []EdgeLayout[ticks.Float],
) *layout {
	axis := axisData[ticks.Float]{rng: reactive.NewValue[*series.Range[ticks.Float]](nil)}
	return composeLayout(testPre(), aspect, container, top, bottom, left, right, axis, axis)
}

func TestLayoutConservation(t *testing.T) {
	container := reactive.NewValue[*geom.Size](nil)
	l := testCompose(OuterSize(800, 600), container,
		[]EdgeLayout[ticks.Float]{fixedEdge{20}},
		[]EdgeLayout[ticks.Float]{fixedEdge{30}, fixedEdge{10}},
		[]EdgeLayout[ticks.Float]{fixedEdge{40}},
		nil,
	)

	res := l.result.Get()
	if res.Phase != PhaseFinalized {
		t.Fatalf("phase = %v, want finalized", res.Phase)
	}
	want := geom.Bounds{Left: 40, Top: 20, Right: 800, Bottom: 560}
	if res.Inner != want {
		t.Errorf("inner = %+v, want %+v", res.Inner, want)
	}
	if res.Outer != geom.FromSize(800, 600) {
		t.Errorf("outer = %+v, want 800x600 at origin", res.Outer)
	}
	if got := l.innerHeight.Get(); got != 540 {
		t.Errorf("innerHeight = %v, want 540", got)
	}
	if got := l.innerWidth.Get(); got != 760 {
		t.Errorf("innerWidth = %v, want 760", got)
	}
}

func TestLayoutNoDecorations(t *testing.T) {
	l := testCompose(OuterSize(300, 200), reactive.NewValue[*geom.Size](nil), nil, nil, nil, nil)
	res := l.result.Get()
	if res.Inner != res.Outer {
		t.Errorf("inner = %+v, want same as outer %+v", res.Inner, res.Outer)
	}
}

func TestLayoutOverConsumedEdgesClampToZero(t *testing.T) {
	l := testCompose(OuterSize(100, 50), reactive.NewValue[*geom.Size](nil),
		[]EdgeLayout[ticks.Float]{fixedEdge{40}},
		[]EdgeLayout[ticks.Float]{fixedEdge{40}},
		nil, nil,
	)
	res := l.result.Get()
	if h := res.Inner.Height(); h != 0 {
		t.Errorf("inner height = %v, want 0", h)
	}
	if res.Inner.Top > res.Inner.Bottom {
		t.Errorf("inner inverted: %+v", res.Inner)
	}
}

func TestLayoutDeclarationOrderAsymmetry(t *testing.T) {
	l := testCompose(OuterSize(800, 600), reactive.NewValue[*geom.Size](nil),
		[]EdgeLayout[ticks.Float]{fixedEdge{10}, fixedEdge{20}},
		[]EdgeLayout[ticks.Float]{fixedEdge{10}, fixedEdge{20}},
		[]EdgeLayout[ticks.Float]{fixedEdge{10}, fixedEdge{20}},
		[]EdgeLayout[ticks.Float]{fixedEdge{10}, fixedEdge{20}},
	)
	res := l.result.Get()

	// Top: first declared sits at the chart boundary, strictly further from
	// the plot than the second.
	if res.Top[0].Top != 0 || res.Top[0].Bottom != 10 {
		t.Errorf("top[0] = %+v, want rows 0..10", res.Top[0])
	}
	if res.Top[1].Top != 10 || res.Top[1].Bottom != 30 {
		t.Errorf("top[1] = %+v, want rows 10..30", res.Top[1])
	}
	if !(res.Top[0].Bottom <= res.Top[1].Top) {
		t.Errorf("first top decoration must be outermost: %+v then %+v", res.Top[0], res.Top[1])
	}

	// Left mirrors top.
	if res.Left[0].Left != 0 || res.Left[0].Right != 10 {
		t.Errorf("left[0] = %+v, want cols 0..10", res.Left[0])
	}
	if res.Left[1].Left != 10 || res.Left[1].Right != 30 {
		t.Errorf("left[1] = %+v, want cols 10..30", res.Left[1])
	}

	// Bottom and right: first declared is the innermost.
	if res.Bottom[0].Top != res.Inner.Bottom {
		t.Errorf("bottom[0] = %+v, want to start at inner bottom %v", res.Bottom[0], res.Inner.Bottom)
	}
	if res.Bottom[1].Top != res.Inner.Bottom+10 {
		t.Errorf("bottom[1] = %+v, want to start below bottom[0]", res.Bottom[1])
	}
	if res.Right[0].Left != res.Inner.Right {
		t.Errorf("right[0] = %+v, want to start at inner right %v", res.Right[0], res.Inner.Right)
	}
	if res.Right[1].Left != res.Inner.Right+10 {
		t.Errorf("right[1] = %+v, want to start outside right[0]", res.Right[1])
	}
}

func TestLayoutInnerAspect(t *testing.T) {
	l := testCompose(InnerSize(600, 400), reactive.NewValue[*geom.Size](nil),
		[]EdgeLayout[ticks.Float]{fixedEdge{20}},
		nil,
		[]EdgeLayout[ticks.Float]{fixedEdge{50}},
		nil,
	)
	res := l.result.Get()

	// The plot area is fixed; the outer grows by the edge thicknesses.
	if w, h := res.Inner.Width(), res.Inner.Height(); w != 600 || h != 400 {
		t.Errorf("inner size = %vx%v, want 600x400", w, h)
	}
	if res.Outer != geom.FromSize(650, 420) {
		t.Errorf("outer = %+v, want 650x420", res.Outer)
	}
	if res.Inner != (geom.Bounds{Left: 50, Top: 20, Right: 650, Bottom: 420}) {
		t.Errorf("inner = %+v", res.Inner)
	}
}

func TestLayoutEnvironmentLifecycle(t *testing.T) {
	container := reactive.NewValue[*geom.Size](nil)
	l := testCompose(Environment(), container, nil, nil, nil, nil)

	if res := l.result.Get(); res.Phase != PhaseUnsized {
		t.Fatalf("phase before measurement = %v, want unsized", res.Phase)
	}

	container.Set(&geom.Size{Width: 640, Height: 480})
	res := l.result.Get()
	if res.Phase != PhaseFinalized {
		t.Fatalf("phase after measurement = %v, want finalized", res.Phase)
	}
	if res.Outer != geom.FromSize(640, 480) {
		t.Errorf("outer = %+v, want container size", res.Outer)
	}

	// Repeated reads with unchanged inputs observe the same result.
	if again := l.result.Get(); again.Outer != res.Outer || again.Phase != res.Phase {
		t.Errorf("recomputation with unchanged inputs diverged: %+v vs %+v", again, res)
	}
}
