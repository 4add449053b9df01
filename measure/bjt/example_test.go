package bjt_test

import (
	"fmt"

	"github.com/cwbudde/algo-circuit/measure/bjt"
)

func ExampleAnalyzer_OperatingPoint() {
	a := bjt.NewAnalyzer(bjt.DefaultConfig(bjt.CommonEmitter))
	q := a.OperatingPoint()

	fmt.Printf("IC  = %.2f mA\n", q.IC*1e3)
	fmt.Printf("VCE = %.2f V\n", q.VCE)

	// Output:
	// IC  = 1.39 mA
	// VCE = 7.53 V
}

func ExampleAnalyzer_GainsAt() {
	a := bjt.NewAnalyzer(bjt.DefaultConfig(bjt.CommonEmitter))

	g, err := a.GainsAt(1000)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Av = %.1f dB\n", g.VoltageDB)
	fmt.Printf("Ap = %.1f dB\n", g.PowerDB)

	// Output:
	// Av = 39.1 dB
	// Ap = 25.0 dB
}
