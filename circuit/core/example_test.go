package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-circuit/circuit/core"
)

func ExampleParallel() {
	// Effective AC collector load of the reference stage: RC || RL.
	fmt.Printf("%.1f Ohm\n", core.Parallel(2200, 10000))

	// Output:
	// 1803.3 Ohm
}

func ExampleLogspace() {
	freqs := core.Logspace(1, 1e6, 7)

	for _, f := range freqs {
		fmt.Printf("%.0f ", f)
	}
	fmt.Println()

	// Output:
	// 1 10 100 1000 10000 100000 1000000
}
