package ticks

import (
	"testing"
	"time"
)

func ts(s string) Timestamp {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return Timestamp(t)
}

func TestTimestampPosition(t *testing.T) {
	base := time.Unix(1700000000, 500000000).UTC()
	got := Timestamp(base).Position()
	want := 1700000000.5
	if got != want {
		t.Errorf("Position() = %v, want %v", got, want)
	}
}

func TestTimestampsGenerateDayRange(t *testing.T) {
	first := ts("2023-01-01T00:00:00Z")
	last := ts("2023-01-02T00:00:00Z")
	span := HorizontalSpan{FontWidth: 10, Avail: 800}

	pts := NewTimestamps().Generate(first, last, span)
	if len(pts) == 0 {
		t.Fatal("no ticks generated")
	}

	// A day at this width lands on 2-hour boundaries.
	if got := pts[0].Label; got != "00:00" {
		t.Errorf("first label = %q, want 00:00", got)
	}
	if len(pts) != 13 {
		t.Errorf("tick count = %d, want 13", len(pts))
	}
	for i := 1; i < len(pts); i++ {
		if pts[i-1].Position >= pts[i].Position {
			t.Errorf("positions not ascending at %d", i)
		}
	}
	if consumed := span.Consumed(labelsOf(pts)...); consumed > span.Length() {
		t.Errorf("labels consume %v > available %v", consumed, span.Length())
	}
}

func TestTimestampsGenerateYearRange(t *testing.T) {
	first := ts("2000-01-01T00:00:00Z")
	last := ts("2020-01-01T00:00:00Z")
	span := HorizontalSpan{FontWidth: 10, Avail: 400}

	pts := NewTimestamps().Generate(first, last, span)
	want := []string{"2000", "2005", "2010", "2015", "2020"}
	if len(pts) != len(want) {
		t.Fatalf("labels = %v, want %v", labelsOf(pts), want)
	}
	for i, p := range pts {
		if p.Label != want[i] {
			t.Fatalf("labels = %v, want %v", labelsOf(pts), want)
		}
	}
}

func TestTimestampsGenerateRestrictedPeriods(t *testing.T) {
	first := ts("2023-01-01T00:00:00Z")
	last := ts("2023-01-02T00:00:00Z")
	span := HorizontalSpan{FontWidth: 10, Avail: 800}

	// Only day boundaries allowed: the range holds exactly two.
	pts := Timestamps{Periods: []Period{PeriodDay}}.Generate(first, last, span)
	if len(pts) != 2 {
		t.Fatalf("tick count = %d, want 2", len(pts))
	}
	if pts[0].Label != "1 Jan" || pts[1].Label != "2 Jan" {
		t.Errorf("labels = %v, want [1 Jan 2 Jan]", labelsOf(pts))
	}
}

func TestTimestampsGenerateEmptyWhenNothingFits(t *testing.T) {
	first := ts("2023-01-01T00:00:00Z")
	last := ts("2023-01-02T00:00:00Z")
	span := HorizontalSpan{FontWidth: 10, Avail: 1}

	if pts := NewTimestamps().Generate(first, last, span); pts != nil {
		t.Errorf("got %d ticks, want none", len(pts))
	}
}

func TestAlignDown(t *testing.T) {
	base := time.Date(2023, time.July, 14, 13, 37, 42, 123456789, time.UTC)
	tests := []struct {
		name   string
		period Period
		stride int
		want   time.Time
	}{
		{"year", PeriodYear, 1, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"5 years", PeriodYear, 5, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"quarter", PeriodMonth, 3, time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)},
		{"hour", PeriodHour, 1, time.Date(2023, 7, 14, 13, 0, 0, 0, time.UTC)},
		{"6 hours", PeriodHour, 6, time.Date(2023, 7, 14, 12, 0, 0, 0, time.UTC)},
		{"15 minutes", PeriodMinute, 15, time.Date(2023, 7, 14, 13, 30, 0, 0, time.UTC)},
		{"second", PeriodSecond, 1, time.Date(2023, 7, 14, 13, 37, 42, 0, time.UTC)},
		{"100ms", PeriodMillisecond, 100, time.Date(2023, 7, 14, 13, 37, 42, 100000000, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := alignDown(base, tt.period, tt.stride); !got.Equal(tt.want) {
				t.Errorf("alignDown() = %v, want %v", got, tt.want)
			}
		})
	}
}
