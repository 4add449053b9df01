package waveform_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-circuit/circuit/core"
	"github.com/cwbudde/algo-circuit/circuit/waveform"
)

func ExampleGenerator_Sine() {
	g := waveform.NewGenerator(core.WithSampleRate(1000))

	x, err := g.Sine(250, 1, 5)
	if err != nil {
		panic(err)
	}

	if math.Abs(x[4]) < 1e-12 {
		x[4] = 0
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", x[0], x[1], x[2], x[3], x[4])

	// Output:
	// 0 1 0 -1 0
}

func ExampleGenerator_TimeAxis() {
	g := waveform.NewGenerator(core.WithSampleRate(200000))

	t, err := g.TimeAxis(4)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.0f %.0f %.0f %.0f (microseconds)\n", t[0]*1e6, t[1]*1e6, t[2]*1e6, t[3]*1e6)

	// Output:
	// 0 5 10 15 (microseconds)
}
