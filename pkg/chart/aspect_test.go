package chart

import (
	"testing"

	"github.com/matzehuels/chartkit/pkg/chart/geom"
)

func TestAspectRatioResolve(t *testing.T) {
	env := &geom.Size{Width: 1024, Height: 768}

	tests := []struct {
		name       string
		aspect     AspectRatio
		env        *geom.Size
		wantOK     bool
		wantInner  bool
		wantWidth  float64
		wantHeight float64
	}{
		{"outer size", OuterSize(800, 600), nil, true, false, 800, 600},
		{"outer width from ratio", OuterWidth(300, 2), nil, true, false, 600, 300},
		{"outer height from ratio", OuterHeight(600, 1.5), nil, true, false, 600, 400},
		{"inner size", InnerSize(640, 480), nil, true, true, 640, 480},
		{"inner width from ratio", InnerWidth(200, 3), nil, true, true, 600, 200},
		{"inner height from ratio", InnerHeight(500, 2.5), nil, true, true, 500, 200},
		{"environment both axes", Environment(), env, true, false, 1024, 768},
		{"environment width from ratio", EnvironmentWidth(0.5), env, true, false, 384, 768},
		{"environment height from ratio", EnvironmentHeight(2), env, true, false, 1024, 512},
		{"environment unmeasured", Environment(), nil, false, false, 0, 0},
		{"environment ratio unmeasured", EnvironmentHeight(2), nil, false, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.aspect.resolve(tt.env)
			if got.ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", got.ok, tt.wantOK)
			}
			if !got.ok {
				return
			}
			if got.inner != tt.wantInner {
				t.Errorf("inner = %v, want %v", got.inner, tt.wantInner)
			}
			if got.width != tt.wantWidth || got.height != tt.wantHeight {
				t.Errorf("size = (%v, %v), want (%v, %v)",
					got.width, got.height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestAspectRatioZeroRatio(t *testing.T) {
	// A zero ratio must not divide by zero; the derived axis collapses.
	got := OuterHeight(600, 0).resolve(nil)
	if !got.ok || got.height != 0 {
		t.Errorf("resolve = %+v, want ok with zero height", got)
	}
}
