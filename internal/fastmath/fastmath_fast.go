//go:build fastmath

package fastmath

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// ln10 is the natural logarithm of 10, used for log base conversions.
const ln10 = 2.302585092994045684017991454684

// Log10 computes log10(x) using fast approximation.
// Uses the identity: log10(x) = ln(x) / ln(10)
func Log10(x float64) float64 {
	return approx.FastLog(x) / ln10
}

// Pow10 computes 10^x using the standard library.
// Note: algo-approx doesn't provide direct power-of-10, and Pow10 is
// called once per conversion rather than per sample.
func Pow10(x float64) float64 {
	return math.Pow(10, x)
}

// Sqrt computes sqrt(x) using fast approximation.
func Sqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
