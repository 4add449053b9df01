// Package bjt analyzes the small-signal behavior of single-transistor
// BJT amplifier stages with voltage-divider bias.
//
// Two topologies are supported: the common-emitter stage (input at the
// base, emitter bypass capacitor) and the common-base stage (input at
// the emitter, base bypass capacitor). For either one the package
// computes the DC operating point and the voltage, current, and power
// gain magnitudes as a function of frequency.
//
// The model is the standard first-order hand-analysis one: re = VT/IE
// for the AC emitter resistance, magnitude-only parallel combinations
// for the bypass capacitor path, and a single high-pass term for the
// input coupling capacitor. It evaluates a closed-form expression per
// frequency sample with no state carried between samples, so a response
// sweep is just the per-frequency evaluation over a log-spaced grid.
//
// # Usage
//
//	a := bjt.NewAnalyzer(bjt.DefaultConfig(bjt.CommonEmitter))
//	q := a.OperatingPoint()
//	g, _ := a.GainsAt(1000)
//	resp, _ := a.Response(1, 1e6, 500)
package bjt
