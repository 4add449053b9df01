//go:build !fastmath

// Package fastmath provides the scalar math kernels behind the dB
// conversions and gain sweep hot loops. The default build uses the
// standard library; the fastmath build tag swaps in approximation-based
// variants.
package fastmath

import "math"

// Log10 computes log10(x).
func Log10(x float64) float64 {
	return math.Log10(x)
}

// Pow10 computes 10^x.
func Pow10(x float64) float64 {
	return math.Pow(10, x)
}

// Sqrt computes sqrt(x).
func Sqrt(x float64) float64 {
	return math.Sqrt(x)
}
