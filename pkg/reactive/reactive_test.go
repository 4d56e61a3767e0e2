package reactive

import "testing"

func TestMemoCachesUntilDependencyChanges(t *testing.T) {
	in := NewValue(2)
	calls := 0
	double := NewMemo(func() int {
		calls++
		return in.Get() * 2
	}, in)

	if got := double.Get(); got != 4 {
		t.Fatalf("Get() = %d, want 4", got)
	}
	if got := double.Get(); got != 4 {
		t.Fatalf("Get() = %d, want 4", got)
	}
	if calls != 1 {
		t.Errorf("compute calls = %d, want 1", calls)
	}

	in.Set(5)
	if got := double.Get(); got != 10 {
		t.Fatalf("Get() after Set = %d, want 10", got)
	}
	if calls != 2 {
		t.Errorf("compute calls = %d, want 2", calls)
	}
}

func TestMemoChains(t *testing.T) {
	in := NewValue(1)
	plusOne := NewMemo(func() int { return in.Get() + 1 }, in)
	timesTen := NewMemo(func() int { return plusOne.Get() * 10 }, plusOne)

	if got := timesTen.Get(); got != 20 {
		t.Fatalf("Get() = %d, want 20", got)
	}

	in.Set(4)
	if got := timesTen.Get(); got != 50 {
		t.Fatalf("Get() = %d, want 50", got)
	}
}

func TestMemoMultipleDependencies(t *testing.T) {
	a := NewValue(3.0)
	b := NewValue(4.0)
	calls := 0
	sum := NewMemo(func() float64 {
		calls++
		return a.Get() + b.Get()
	}, a, b)

	if got := sum.Get(); got != 7 {
		t.Fatalf("Get() = %v, want 7", got)
	}

	b.Set(10)
	if got := sum.Get(); got != 13 {
		t.Fatalf("Get() = %v, want 13", got)
	}
	if calls != 2 {
		t.Errorf("compute calls = %d, want 2", calls)
	}
}

func TestUpdate(t *testing.T) {
	v := NewValue([]int{1, 2})
	v.Update(func(s []int) []int { return append(s, 3) })
	if got := len(v.Get()); got != 3 {
		t.Errorf("len = %d, want 3", got)
	}
}

func TestDiamondRecomputesOnce(t *testing.T) {
	in := NewValue(1)
	left := NewMemo(func() int { return in.Get() + 1 }, in)
	right := NewMemo(func() int { return in.Get() * 2 }, in)
	calls := 0
	join := NewMemo(func() int {
		calls++
		return left.Get() + right.Get()
	}, left, right)

	if got := join.Get(); got != 4 {
		t.Fatalf("Get() = %d, want 4", got)
	}
	in.Set(3)
	if got := join.Get(); got != 10 {
		t.Fatalf("Get() = %d, want 10", got)
	}
	if calls != 2 {
		t.Errorf("join compute calls = %d, want 2", calls)
	}
}
