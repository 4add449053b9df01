package thevenin_test

import (
	"fmt"

	"github.com/cwbudde/algo-circuit/measure/thevenin"
)

func ExampleSource_MaxPower() {
	s := thevenin.Source{Voltage: 10, Resistance: 50}

	load, watts := s.MaxPower()

	fmt.Printf("maximum power %.3f W at RL = %.0f Ohm\n", watts, load)

	// Output:
	// maximum power 0.500 W at RL = 50 Ohm
}

func ExampleSource_Sweep() {
	s := thevenin.Source{Voltage: 10, Resistance: 50}

	sw, err := s.Sweep(0.1, 10000, 800)
	if err != nil {
		panic(err)
	}

	fmt.Printf("curve maximum %.4f W near RL = %.0f Ohm\n", sw.MaxPower, sw.MaxLoad)

	// Output:
	// curve maximum 0.5000 W near RL = 50 Ohm
}
