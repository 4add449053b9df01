package core

import (
	"math"

	"github.com/cwbudde/algo-circuit/internal/fastmath"
)

// Parallel returns the parallel combination a*b/(a+b).
// Returns 0 when both values are zero.
func Parallel(a, b float64) float64 {
	sum := a + b
	if sum == 0 {
		return 0
	}

	return a * b / sum
}

// CapacitiveReactance returns 1/(2*pi*f*C), the impedance magnitude of a
// capacitor at the given frequency. Returns +Inf for non-positive
// frequency or capacitance.
func CapacitiveReactance(freqHz, capacitance float64) float64 {
	if freqHz <= 0 || capacitance <= 0 {
		return math.Inf(1)
	}

	return 1 / (2 * math.Pi * freqHz * capacitance)
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return fastmath.Pow10(db / 20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * fastmath.Log10(linear)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * fastmath.Log10(power)
}

// Logspace fills a slice with n logarithmically spaced values from start
// to end inclusive. Both endpoints must be positive; returns nil otherwise.
func Logspace(start, end float64, n int) []float64 {
	if n <= 0 || start <= 0 || end <= 0 {
		return nil
	}

	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}

	logStart := math.Log10(start)
	step := (math.Log10(end) - logStart) / float64(n-1)
	for i := range out {
		out[i] = math.Pow(10, logStart+float64(i)*step)
	}
	// Pin both endpoints: the log/pow round trip does not return them
	// exactly (pow(10, log10(0.1)) is off by one ulp).
	out[0] = start
	out[n-1] = end

	return out
}
