package geom

import "testing"

func TestFromPointsNormalizes(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 float64
		want           Bounds
	}{
		{
			name: "ordered",
			x0:   1, y0: 2, x1: 10, y1: 20,
			want: Bounds{Left: 1, Top: 2, Right: 10, Bottom: 20},
		},
		{
			name: "swapped x",
			x0:   10, y0: 2, x1: 1, y1: 20,
			want: Bounds{Left: 1, Top: 2, Right: 10, Bottom: 20},
		},
		{
			name: "swapped y",
			x0:   1, y0: 20, x1: 10, y1: 2,
			want: Bounds{Left: 1, Top: 2, Right: 10, Bottom: 20},
		},
		{
			name: "both swapped",
			x0:   10, y0: 20, x1: 1, y1: 2,
			want: Bounds{Left: 1, Top: 2, Right: 10, Bottom: 20},
		},
		{
			name: "degenerate point",
			x0:   5, y0: 5, x1: 5, y1: 5,
			want: Bounds{Left: 5, Top: 5, Right: 5, Bottom: 5},
		},
		{
			name: "negative coordinates",
			x0:   3, y0: -4, x1: -3, y1: 4,
			want: Bounds{Left: -3, Top: -4, Right: 3, Bottom: 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromPoints(tt.x0, tt.y0, tt.x1, tt.y1)
			if got != tt.want {
				t.Errorf("FromPoints() = %+v, want %+v", got, tt.want)
			}
			if got.Left > got.Right || got.Top > got.Bottom {
				t.Errorf("FromPoints() not normalized: %+v", got)
			}
		})
	}
}

func TestBoundsAccessors(t *testing.T) {
	b := FromPoints(10, 20, 50, 100)
	if got := b.Width(); got != 40 {
		t.Errorf("Width() = %v, want 40", got)
	}
	if got := b.Height(); got != 80 {
		t.Errorf("Height() = %v, want 80", got)
	}
	if got := b.CenterX(); got != 30 {
		t.Errorf("CenterX() = %v, want 30", got)
	}
	if got := b.CenterY(); got != 60 {
		t.Errorf("CenterY() = %v, want 60", got)
	}
}

func TestPadZeroIsIdentity(t *testing.T) {
	b := FromPoints(1, 2, 30, 40)
	if got := b.Pad(Padding{}); got != b {
		t.Errorf("Pad(zero) = %+v, want %+v", got, b)
	}
}

func TestPadShrinks(t *testing.T) {
	b := FromPoints(0, 0, 100, 50)
	got := b.Pad(Padding{Top: 5, Right: 10, Bottom: 15, Left: 20})
	want := Bounds{Left: 20, Top: 5, Right: 90, Bottom: 35}
	if got != want {
		t.Errorf("Pad() = %+v, want %+v", got, want)
	}
}

func TestPadClampsAtZeroArea(t *testing.T) {
	b := FromPoints(0, 0, 10, 10)
	got := b.Pad(Uniform(20))
	if got.Width() != 0 || got.Height() != 0 {
		t.Errorf("Pad() oversized insets = %+v, want zero area", got)
	}
	if got.Left > got.Right || got.Top > got.Bottom {
		t.Errorf("Pad() produced negative area: %+v", got)
	}
}

func TestShrinkEdges(t *testing.T) {
	b := FromPoints(0, 0, 100, 100)
	if got := b.ShrinkTop(10).Top; got != 10 {
		t.Errorf("ShrinkTop(10).Top = %v, want 10", got)
	}
	if got := b.ShrinkBottom(10).Bottom; got != 90 {
		t.Errorf("ShrinkBottom(10).Bottom = %v, want 90", got)
	}
	if got := b.ShrinkLeft(10).Left; got != 10 {
		t.Errorf("ShrinkLeft(10).Left = %v, want 10", got)
	}
	if got := b.ShrinkRight(10).Right; got != 90 {
		t.Errorf("ShrinkRight(10).Right = %v, want 90", got)
	}

	// Oversized shrink floors at zero span instead of inverting.
	if got := b.ShrinkTop(500); got.Height() != 0 {
		t.Errorf("ShrinkTop(500).Height() = %v, want 0", got.Height())
	}
	if got := b.ShrinkLeft(500); got.Width() != 0 {
		t.Errorf("ShrinkLeft(500).Width() = %v, want 0", got.Width())
	}
}

func TestPaddingSpans(t *testing.T) {
	p := Sides(4, 6)
	if got := p.Height(); got != 8 {
		t.Errorf("Height() = %v, want 8", got)
	}
	if got := p.Width(); got != 12 {
		t.Errorf("Width() = %v, want 12", got)
	}
}
