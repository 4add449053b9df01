package levels_test

import (
	"fmt"

	"github.com/cwbudde/algo-circuit/circuit/core"
	"github.com/cwbudde/algo-circuit/circuit/waveform"
	"github.com/cwbudde/algo-circuit/measure/levels"
)

func ExampleAnalyze() {
	g := waveform.NewGenerator(core.WithSampleRate(4096))

	sine, err := g.Sine(16, 5, 4096)
	if err != nil {
		panic(err)
	}

	shifted := waveform.Offset(sine, -4.3)

	lv, err := levels.Analyze(shifted, 4096)
	if err != nil {
		panic(err)
	}

	fmt.Printf("DC = %.1f V\n", lv.DC)
	fmt.Printf("fundamental = %.1f V at %.0f Hz\n", lv.Fundamental, lv.FundamentalFreq)
	fmt.Printf("peak-to-peak = %.1f V\n", lv.PeakToPeak)

	// Output:
	// DC = -4.3 V
	// fundamental = 5.0 V at 16 Hz
	// peak-to-peak = 10.0 V
}
