package ticks

import (
	"math"
	"testing"
)

func TestFloatsGenerate(t *testing.T) {
	tests := []struct {
		name        string
		first, last Float
		span        Span
		wantLabels  []string
	}{
		{
			name:  "wide span keeps unit steps",
			first: 0, last: 10,
			span: HorizontalSpan{FontWidth: 10, Avail: 800},
			wantLabels: []string{
				"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
			},
		},
		{
			name:  "narrow span coarsens steps",
			first: 0, last: 10,
			span:       HorizontalSpan{FontWidth: 10, Avail: 100},
			wantLabels: []string{"0", "5", "10"},
		},
		{
			name:  "fractional range gains decimals",
			first: 0, last: 1,
			span:       HorizontalSpan{FontWidth: 10, Avail: 200},
			wantLabels: []string{"0.0", "0.2", "0.4", "0.6", "0.8", "1.0"},
		},
		{
			name:  "degenerate range yields single tick",
			first: 3, last: 3,
			span:       HorizontalSpan{FontWidth: 10, Avail: 200},
			wantLabels: []string{"3"},
		},
		{
			name:  "reversed range normalizes",
			first: 10, last: 0,
			span:       HorizontalSpan{FontWidth: 10, Avail: 100},
			wantLabels: []string{"0", "5", "10"},
		},
		{
			name:  "no room yields nothing",
			first: 0, last: 10,
			span:       HorizontalSpan{FontWidth: 10, Avail: 5},
			wantLabels: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := Floats{}.Generate(tt.first, tt.last, tt.span)
			got := labelsOf(pts)
			if len(got) != len(tt.wantLabels) {
				t.Fatalf("labels = %v, want %v", got, tt.wantLabels)
			}
			for i := range got {
				if got[i] != tt.wantLabels[i] {
					t.Fatalf("labels = %v, want %v", got, tt.wantLabels)
				}
			}
		})
	}
}

func TestFloatsGenerateOrderedWithinSpan(t *testing.T) {
	pts := Floats{}.Generate(-7.3, 42.9, HorizontalSpan{FontWidth: 10, Avail: 600})
	if len(pts) == 0 {
		t.Fatal("no ticks generated")
	}
	for i, p := range pts {
		if p.Position < -7.3 || p.Position > 42.9 {
			t.Errorf("tick %d position %v outside span", i, p.Position)
		}
		if i > 0 && pts[i-1].Position >= p.Position {
			t.Errorf("ticks not strictly ascending at %d: %v >= %v", i, pts[i-1].Position, p.Position)
		}
	}
}

func TestFloatsGenerateNonFinite(t *testing.T) {
	span := HorizontalSpan{FontWidth: 10, Avail: 800}
	if pts := (Floats{}).Generate(Float(math.NaN()), 10, span); pts != nil {
		t.Errorf("NaN first: got %d ticks, want none", len(pts))
	}
	if pts := (Floats{}).Generate(0, Float(math.Inf(1)), span); pts != nil {
		t.Errorf("Inf last: got %d ticks, want none", len(pts))
	}
}

func TestVerticalSpanConsumed(t *testing.T) {
	s := VerticalSpan{LineHeight: 20, Avail: 100}
	if got := s.Consumed("a", "b", "c"); got != 60 {
		t.Errorf("Consumed() = %v, want 60", got)
	}
}
