package reactive_test

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/reactive"
)

func Example() {
	width := reactive.NewValue(800.0)
	height := reactive.NewValue(600.0)

	area := reactive.NewMemo(func() float64 {
		return width.Get() * height.Get()
	}, width, height)

	fmt.Println(area.Get())
	width.Set(400)
	fmt.Println(area.Get())
	// Output:
	// 480000
	// 240000
}

func ExampleMemo_chained() {
	points := reactive.NewValue([]float64{1, 3, 2})

	max := reactive.NewMemo(func() float64 {
		best := 0.0
		for _, p := range points.Get() {
			if p > best {
				best = p
			}
		}
		return best
	}, points)

	label := reactive.NewMemo(func() string {
		return fmt.Sprintf("max=%.0f", max.Get())
	}, max)

	fmt.Println(label.Get())
	points.Set([]float64{1, 3, 7})
	fmt.Println(label.Get())
	// Output:
	// max=3
	// max=7
}
