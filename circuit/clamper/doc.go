// Package clamper simulates diode clamper circuits by explicit
// forward-Euler integration of the diode-capacitor charge equation.
//
// A clamper (also called a DC restorer) shifts a waveform's DC level
// without changing its peak-to-peak amplitude. While the ideal diode
// conducts, the series resistor charges the capacitor:
//
//	C * dVc/dt = (Vin - Vc - Vd) / R
//
// and while it blocks, the capacitor is isolated (dVc/dt = 0) and the
// output follows the input riding on the stored bias. The conduction
// decision is re-evaluated every step from the current input sample and
// the previous step's capacitor voltage alone, so the simulator carries
// a single scalar of state.
//
// The capacitor starts uncharged, so the first cycles show the gradual
// charging transient before the output settles at the steady-state clamp
// level (negative peak near -Vd for a positive clamper, positive peak
// near +Vd for a negative one).
//
// Accuracy depends on the step size being small against the R*C time
// constant. The reference configuration uses dt = 1/200000 s against
// R*C = 4.7 ms, about 940 steps per time constant. No sub-stepping or
// implicit solve is performed.
//
// # Usage
//
//	g := waveform.NewGenerator(core.WithSampleRate(200000))
//	t, _ := g.TimeAxis(160000)
//	vin, _ := g.Sine(100, 5, 160000)
//
//	res, err := clamper.Simulate(t, vin, clamper.Params{
//	    DiodeDrop:        0.7,
//	    SeriesResistance: 1000,
//	    Capacitance:      4.7e-6,
//	    Polarity:         clamper.Positive,
//	})
package clamper
