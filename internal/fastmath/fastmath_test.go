package fastmath

import (
	"math"
	"testing"
)

// Tolerances are loose enough to pass under both the stdlib build and the
// fastmath build tag.
const relTol = 1e-2

func relErr(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}

func TestLog10(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{1, 0},
		{10, 1},
		{100, 2},
		{1e6, 6},
		{0.001, -3},
	}

	for _, tt := range tests {
		got := Log10(tt.x)
		if tt.want == 0 {
			if math.Abs(got) > relTol {
				t.Errorf("Log10(%v) = %v, want 0", tt.x, got)
			}
			continue
		}
		if relErr(got, tt.want) > relTol {
			t.Errorf("Log10(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestPow10(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{0, 1},
		{1, 10},
		{3, 1000},
		{-2, 0.01},
	}

	for _, tt := range tests {
		if got := Pow10(tt.x); relErr(got, tt.want) > relTol {
			t.Errorf("Pow10(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		x, want float64
	}{
		{4, 2},
		{2, math.Sqrt2},
		{1e6, 1000},
		{0.25, 0.5},
	}

	for _, tt := range tests {
		if got := Sqrt(tt.x); relErr(got, tt.want) > relTol {
			t.Errorf("Sqrt(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, x := range []float64{0.5, 1, 2.7, 42, 1000} {
		if got := Pow10(Log10(x)); relErr(got, x) > 2*relTol {
			t.Errorf("Pow10(Log10(%v)) = %v", x, got)
		}
	}
}
