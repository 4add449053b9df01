package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1, 2.5, 2}

	diff, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff != 1 {
		t.Errorf("MaxAbsDiff = %v, want 1", diff)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestRequireSliceNearlyEqual(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1 + 1e-13, 2, 3 - 1e-13}

	RequireSliceNearlyEqual(t, a, b, 1e-12)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1.5, math.MaxFloat64})
}
