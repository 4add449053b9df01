// Package testutil provides deterministic waveform builders and tolerance
// helpers shared by the package tests.
package testutil

import "math"

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// TimeAxis generates a uniformly spaced time axis in seconds starting at 0.
func TimeAxis(sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	dt := 1 / sampleRate
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
