// Package reactive provides the dataflow cells the chart engine is built on.
//
// All derived chart state (bounds, tick sets, projections, nearest-point
// lookups) is expressed as memoized pure functions over explicit input cells.
// Recomputation is pull-based: reading a Memo brings it up to date by checking
// the versions of its declared dependencies and re-running its function only
// when one of them changed. Repeated reads with unchanged inputs return the
// cached value without recomputation.
//
// The package is single-threaded by design. There are no locks; a chart and
// every cell it owns must be confined to one goroutine.
//
// # Usage
//
//	width := reactive.NewValue(800.0)
//	height := reactive.NewValue(600.0)
//	area := reactive.NewMemo(func() float64 {
//	    return width.Get() * height.Get()
//	}, width, height)
//
//	area.Get()      // computes 480000
//	area.Get()      // cached, no recomputation
//	width.Set(400)
//	area.Get()      // recomputes 240000
package reactive

// Source is a dependency that a Memo can declare. It is implemented by
// Value and Memo; the unexported method keeps the versioning protocol
// internal to this package.
type Source interface {
	// sync brings the source up to date and returns the version of its
	// current value. The version only advances when the value changes.
	sync() uint64
}

// Reader is the read-only view of a cell. Both Value and Memo satisfy it,
// so consumers can accept either a writable input or a derived value.
type Reader[T any] interface {
	Get() T
}

// Signal is a readable cell that can also be declared as a Memo dependency.
// Both Value and Memo satisfy it.
type Signal[T any] interface {
	Reader[T]
	Source
}

// Value is a writable input cell.
type Value[T any] struct {
	val T
	ver uint64
}

// NewValue creates an input cell holding initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{val: initial, ver: 1}
}

// Get returns the current value.
func (v *Value[T]) Get() T { return v.val }

// Set replaces the current value and marks every dependent Memo stale.
func (v *Value[T]) Set(val T) {
	v.val = val
	v.ver++
}

// Update applies fn to the current value and stores the result.
func (v *Value[T]) Update(fn func(T) T) {
	v.Set(fn(v.val))
}

func (v *Value[T]) sync() uint64 { return v.ver }

// Memo is a derived cell: a pure function of its declared dependencies,
// recomputed lazily when one of them changed since the last read.
type Memo[T any] struct {
	fn   func() T
	deps []Source
	seen []uint64
	val  T
	ver  uint64
}

// NewMemo creates a derived cell. fn must read only the listed deps (reading
// an undeclared cell will not trigger recomputation when it changes) and must
// be pure: no side effects, total over its inputs.
func NewMemo[T any](fn func() T, deps ...Source) *Memo[T] {
	return &Memo[T]{
		fn:   fn,
		deps: deps,
		seen: make([]uint64, len(deps)),
	}
}

// Get returns the memoized value, recomputing it first if any dependency
// changed since the previous read.
func (m *Memo[T]) Get() T {
	m.sync()
	return m.val
}

func (m *Memo[T]) sync() uint64 {
	stale := m.ver == 0
	for i, dep := range m.deps {
		if ver := dep.sync(); ver != m.seen[i] {
			m.seen[i] = ver
			stale = true
		}
	}
	if stale {
		m.val = m.fn()
		m.ver++
	}
	return m.ver
}
