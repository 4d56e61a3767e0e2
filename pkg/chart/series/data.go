package series

import (
	"math"
	"sort"

	"github.com/matzehuels/chartkit/pkg/chart/geom"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
	"github.com/matzehuels/chartkit/pkg/reactive"
)

// Range is an inclusive data range.
type Range[T ticks.Tick] struct {
	Min, Max T
}

// UseData is the resolved, reactive form of a Series bound to a data cell.
// Every field is derived wholesale from the source records on each change;
// DataX and every per-mark slice always have identical length and indexing.
type UseData[X ticks.Tick, Y ticks.Tick] struct {
	marks     []Mark // sorted by name for display
	marksByID map[int]Mark

	// DataX holds the extracted X value per record; PositionsX its
	// position-space projection. Non-finite positions stay in the arrays
	// (renderers skip those points) but never contribute to ranges.
	DataX      *reactive.Memo[[]X]
	PositionsX *reactive.Memo[[]float64]

	// Per-mark Y values and positions, keyed by mark id.
	DataY      map[int]*reactive.Memo[[]Y]
	PositionsY map[int]*reactive.Memo[[]float64]

	// RangeX and RangeY reconcile the finite data extent of every mark with
	// the user overrides via componentwise min/max. Nil when there is no
	// data and no override.
	RangeX     *reactive.Memo[*Range[X]]
	RangeY     *reactive.Memo[*Range[Y]]
	RangeYMark map[int]*reactive.Memo[*Range[Y]]

	// PositionRange is the combined range in position space, the domain of
	// the chart projection. Zero bounds when there is no range.
	PositionRange *reactive.Memo[geom.Bounds]
}

// Use resolves the series against a data cell. The records must be sorted by
// X; the chart reads them only through the returned UseData.
func Use[T any, X ticks.Tick, Y ticks.Tick](s *Series[T, X, Y], data *reactive.Value[[]T]) *UseData[X, Y] {
	d := &UseData[X, Y]{
		marksByID:  make(map[int]Mark, len(s.marks)),
		DataY:      make(map[int]*reactive.Memo[[]Y], len(s.marks)),
		PositionsY: make(map[int]*reactive.Memo[[]float64], len(s.marks)),
		RangeYMark: make(map[int]*reactive.Memo[*Range[Y]], len(s.marks)),
	}

	// Resolve marks: ids follow declaration order, colors follow ids.
	for i, spec := range s.marks {
		m := Mark{
			ID:    i,
			Name:  spec.name,
			Kind:  spec.kind,
			Color: s.scheme.ByIndex(i),
			Width: spec.width,
		}
		d.marks = append(d.marks, m)
		d.marksByID[m.ID] = m
	}
	sort.SliceStable(d.marks, func(i, j int) bool {
		return d.marks[i].Name < d.marks[j].Name
	})

	getX := s.getX
	d.DataX = reactive.NewMemo(func() []X {
		records := data.Get()
		xs := make([]X, len(records))
		for i, r := range records {
			xs[i] = getX(r)
		}
		return xs
	}, data)

	d.PositionsX = reactive.NewMemo(func() []float64 {
		return positionsOf(d.DataX.Get())
	}, d.DataX)

	for i, spec := range s.marks {
		getY := spec.getY
		dataY := reactive.NewMemo(func() []Y {
			records := data.Get()
			ys := make([]Y, len(records))
			for i, r := range records {
				ys[i] = getY(r)
			}
			return ys
		}, data)
		positionsY := reactive.NewMemo(func() []float64 {
			return positionsOf(dataY.Get())
		}, dataY)
		d.DataY[i] = dataY
		d.PositionsY[i] = positionsY
		d.RangeYMark[i] = reactive.NewMemo(func() *Range[Y] {
			return dataRange(positionsY.Get(), dataY.Get())
		}, positionsY, dataY)
	}

	d.RangeX = reactive.NewMemo(func() *Range[X] {
		rng := dataRange(d.PositionsX.Get(), d.DataX.Get())
		return reconcile(rng, s.MinX.Get(), s.MaxX.Get())
	}, d.PositionsX, d.DataX, s.MinX, s.MaxX)

	yDeps := []reactive.Source{s.MinY, s.MaxY}
	for _, m := range d.marks {
		yDeps = append(yDeps, d.RangeYMark[m.ID])
	}
	d.RangeY = reactive.NewMemo(func() *Range[Y] {
		var candidates []Y
		for _, m := range d.marks {
			if r := d.RangeYMark[m.ID].Get(); r != nil {
				candidates = append(candidates, r.Min, r.Max)
			}
		}
		if v := s.MinY.Get(); v != nil {
			candidates = append(candidates, *v)
		}
		if v := s.MaxY.Get(); v != nil {
			candidates = append(candidates, *v)
		}
		if len(candidates) == 0 {
			return nil
		}
		lo, hi := candidates[0], candidates[0]
		for _, c := range candidates[1:] {
			if c.Position() < lo.Position() {
				lo = c
			}
			if c.Position() > hi.Position() {
				hi = c
			}
		}
		return &Range[Y]{Min: lo, Max: hi}
	}, yDeps...)

	d.PositionRange = reactive.NewMemo(func() geom.Bounds {
		var minX, maxX, minY, maxY float64
		if r := d.RangeX.Get(); r != nil {
			minX, maxX = r.Min.Position(), r.Max.Position()
		}
		if r := d.RangeY.Get(); r != nil {
			minY, maxY = r.Min.Position(), r.Max.Position()
		}
		return geom.FromPoints(minX, minY, maxX, maxY)
	}, d.RangeX, d.RangeY)

	return d
}

// Marks returns the resolved marks sorted by name.
func (d *UseData[X, Y]) Marks() []Mark { return d.marks }

// Mark returns the mark with the given id.
func (d *UseData[X, Y]) Mark(id int) (Mark, bool) {
	m, ok := d.marksByID[id]
	return m, ok
}

// NearestIndex derives the index of the data point whose X position is
// closest to the query position, or -1 when there is no data or the query is
// NaN. Queries before the first point or after the last clamp to the boundary
// index. An exact midpoint between two points resolves to the earlier index.
func (d *UseData[X, Y]) NearestIndex(pos reactive.Signal[float64]) *reactive.Memo[int] {
	return reactive.NewMemo(func() int {
		positions := d.PositionsX.Get()
		if len(positions) == 0 {
			return -1
		}
		q := pos.Get()
		// A NaN query compares false against every position, which would
		// make the binary search clamp to the last index.
		if math.IsNaN(q) {
			return -1
		}
		// First index at or after the query.
		idx := sort.Search(len(positions), func(i int) bool {
			return positions[i] >= q
		})
		if idx == 0 {
			return 0
		}
		if idx == len(positions) {
			return idx - 1
		}
		ahead := positions[idx] - q
		before := q - positions[idx-1]
		if ahead < before {
			return idx
		}
		return idx - 1
	}, d.PositionsX, pos)
}

// NearestDataX derives the X value nearest the query position, nil when
// there is no data.
func (d *UseData[X, Y]) NearestDataX(pos reactive.Signal[float64]) *reactive.Memo[*X] {
	index := d.NearestIndex(pos)
	return reactive.NewMemo(func() *X {
		i := index.Get()
		if i < 0 {
			return nil
		}
		x := d.DataX.Get()[i]
		return &x
	}, index, d.DataX)
}

// NearestPositionX derives the data-aligned X position nearest the query
// position. NaN when there is no data.
func (d *UseData[X, Y]) NearestPositionX(pos reactive.Signal[float64]) *reactive.Memo[float64] {
	index := d.NearestIndex(pos)
	return reactive.NewMemo(func() float64 {
		i := index.Get()
		if i < 0 {
			return math.NaN()
		}
		return d.PositionsX.Get()[i]
	}, index, d.PositionsX)
}

// NearestY pairs a mark with its reactive Y value at the nearest X index.
type NearestY[Y ticks.Tick] struct {
	Mark  Mark
	Value *reactive.Memo[*Y]
}

// NearestDataY derives, per mark, the Y value at the index nearest the query
// position. Values are nil when there is no data.
func (d *UseData[X, Y]) NearestDataY(pos reactive.Signal[float64]) []NearestY[Y] {
	index := d.NearestIndex(pos)
	out := make([]NearestY[Y], 0, len(d.marks))
	for _, m := range d.marks {
		dataY := d.DataY[m.ID]
		out = append(out, NearestY[Y]{
			Mark: m,
			Value: reactive.NewMemo(func() *Y {
				i := index.Get()
				if i < 0 {
					return nil
				}
				y := dataY.Get()[i]
				return &y
			}, index, dataY),
		})
	}
	return out
}

// positionsOf projects tick values into position space.
func positionsOf[T ticks.Tick](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.Position()
	}
	return out
}

// dataRange finds the values at the min and max finite positions. Non-finite
// positions (NaN, infinities) are skipped; nil when nothing is finite.
func dataRange[V ticks.Tick](positions []float64, values []V) *Range[V] {
	minIdx, maxIdx := -1, -1
	for i, p := range positions {
		if !isFinite(p) {
			continue
		}
		if minIdx < 0 || p < positions[minIdx] {
			minIdx = i
		}
		if maxIdx < 0 || p > positions[maxIdx] {
			maxIdx = i
		}
	}
	if minIdx < 0 {
		return nil
	}
	return &Range[V]{Min: values[minIdx], Max: values[maxIdx]}
}

// reconcile merges the data range with the user overrides. A lone min or max
// override acts as a degenerate (v, v) range, then the combined range is the
// componentwise min/max of the two. An override never replaces the data
// extent, it can only widen it.
func reconcile[T ticks.Tick](rng *Range[T], lo, hi *T) *Range[T] {
	var spec *Range[T]
	switch {
	case lo != nil && hi != nil:
		spec = &Range[T]{Min: *lo, Max: *hi}
	case lo != nil:
		spec = &Range[T]{Min: *lo, Max: *lo}
	case hi != nil:
		spec = &Range[T]{Min: *hi, Max: *hi}
	}
	if rng == nil {
		return spec
	}
	if spec == nil {
		return rng
	}
	merged := *rng
	if spec.Min.Position() < merged.Min.Position() {
		merged.Min = spec.Min
	}
	if spec.Max.Position() > merged.Max.Position() {
		merged.Max = spec.Max
	}
	return &merged
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
