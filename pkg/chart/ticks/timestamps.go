package ticks

import "time"

// Period is a calendar alignment for timestamp ticks.
type Period int

// Periods from coarsest to finest.
const (
	PeriodYear Period = iota
	PeriodMonth
	PeriodDay
	PeriodHour
	PeriodMinute
	PeriodSecond
	PeriodMillisecond
)

// AllPeriods returns every supported period, coarsest first.
func AllPeriods() []Period {
	return []Period{
		PeriodYear, PeriodMonth, PeriodDay,
		PeriodHour, PeriodMinute, PeriodSecond, PeriodMillisecond,
	}
}

// periodStrides lists the step multiples tried for each period, finest first.
var periodStrides = map[Period][]int{
	PeriodYear:        {1, 2, 5, 10, 25, 50, 100},
	PeriodMonth:       {1, 2, 3, 6},
	PeriodDay:         {1, 2, 7, 14},
	PeriodHour:        {1, 2, 4, 6, 12},
	PeriodMinute:      {1, 2, 5, 10, 15, 30},
	PeriodSecond:      {1, 2, 5, 10, 15, 30},
	PeriodMillisecond: {1, 2, 5, 10, 25, 50, 100, 250, 500},
}

// periodFormats are the short display formats per period.
var periodFormats = map[Period]string{
	PeriodYear:        "2006",
	PeriodMonth:       "Jan 06",
	PeriodDay:         "2 Jan",
	PeriodHour:        "15:04",
	PeriodMinute:      "15:04",
	PeriodSecond:      "15:04:05",
	PeriodMillisecond: "05.000",
}

// approxDuration is a rough length per period, used only to bound the search.
var approxDuration = map[Period]time.Duration{
	PeriodYear:        365 * 24 * time.Hour,
	PeriodMonth:       30 * 24 * time.Hour,
	PeriodDay:         24 * time.Hour,
	PeriodHour:        time.Hour,
	PeriodMinute:      time.Minute,
	PeriodSecond:      time.Second,
	PeriodMillisecond: time.Millisecond,
}

// maxTimeTicks bounds candidate tick counts before measuring labels.
const maxTimeTicks = 50

// Timestamps generates calendar-aligned timestamp ticks. The finest period
// and stride whose labels fit the span wins, so zooming a chart in moves the
// axis from years through months and days down to milliseconds.
type Timestamps struct {
	// Periods restricts which periods may be chosen. Empty means all.
	Periods []Period
}

// NewTimestamps returns a generator allowing all periods.
func NewTimestamps() Timestamps { return Timestamps{} }

// Generate returns aligned timestamp ticks covering [first, last].
func (g Timestamps) Generate(first, last Timestamp, span Span) []Point[Timestamp] {
	lo, hi := first.Time(), last.Time()
	if hi.Before(lo) {
		lo, hi = hi, lo
	}

	allowed := g.Periods
	if len(allowed) == 0 {
		allowed = AllPeriods()
	}

	// Finest first: reverse of AllPeriods order.
	for i := len(allowed) - 1; i >= 0; i-- {
		period := allowed[i]
		for _, stride := range periodStrides[period] {
			if est := estimateCount(lo, hi, period, stride); est == 0 || est > maxTimeTicks {
				continue
			}
			pts := alignedTimes(lo, hi, period, stride)
			if len(pts) == 0 {
				continue
			}
			if span.Consumed(labelsOf(pts)...) <= span.Length() {
				return pts
			}
		}
	}
	return nil
}

func estimateCount(lo, hi time.Time, p Period, stride int) int {
	step := approxDuration[p] * time.Duration(stride)
	if step <= 0 {
		return 0
	}
	return int(hi.Sub(lo)/step) + 1
}

// alignedTimes emits the period boundaries inside [lo, hi].
func alignedTimes(lo, hi time.Time, p Period, stride int) []Point[Timestamp] {
	t := alignUp(lo, p, stride)
	var pts []Point[Timestamp]
	for !t.After(hi) && len(pts) <= maxTimeTicks {
		ts := Timestamp(t)
		pts = append(pts, Point[Timestamp]{
			Value:    ts,
			Position: ts.Position(),
			Label:    t.Format(periodFormats[p]),
		})
		t = advance(t, p, stride)
	}
	if len(pts) > maxTimeTicks {
		return nil
	}
	return pts
}

// alignUp returns the first period boundary at or after t.
func alignUp(t time.Time, p Period, stride int) time.Time {
	down := alignDown(t, p, stride)
	if down.Before(t) {
		return advance(down, p, stride)
	}
	return down
}

// alignDown truncates t to the period boundary at or before it.
func alignDown(t time.Time, p Period, stride int) time.Time {
	loc := t.Location()
	switch p {
	case PeriodYear:
		y := t.Year() - mod(t.Year(), stride)
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case PeriodMonth:
		m := int(t.Month()) - 1
		m -= mod(m, stride)
		return time.Date(t.Year(), time.Month(m+1), 1, 0, 0, 0, 0, loc)
	case PeriodDay:
		d := t.YearDay() - 1
		d -= mod(d, stride)
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc).AddDate(0, 0, d)
	case PeriodHour:
		h := t.Hour() - mod(t.Hour(), stride)
		return time.Date(t.Year(), t.Month(), t.Day(), h, 0, 0, 0, loc)
	case PeriodMinute:
		m := t.Minute() - mod(t.Minute(), stride)
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), m, 0, 0, loc)
	case PeriodSecond:
		s := t.Second() - mod(t.Second(), stride)
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), s, 0, loc)
	case PeriodMillisecond:
		ms := t.Nanosecond() / 1e6
		ms -= mod(ms, stride)
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), ms*1e6, loc)
	}
	return t
}

// advance moves t forward by one stride of the period.
func advance(t time.Time, p Period, stride int) time.Time {
	switch p {
	case PeriodYear:
		return t.AddDate(stride, 0, 0)
	case PeriodMonth:
		return t.AddDate(0, stride, 0)
	case PeriodDay:
		return t.AddDate(0, 0, stride)
	case PeriodHour:
		return t.Add(time.Duration(stride) * time.Hour)
	case PeriodMinute:
		return t.Add(time.Duration(stride) * time.Minute)
	case PeriodSecond:
		return t.Add(time.Duration(stride) * time.Second)
	case PeriodMillisecond:
		return t.Add(time.Duration(stride) * time.Millisecond)
	}
	return t
}

func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
