package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	sine := DeterministicSine(1000, 8000, 2, 8)

	if len(sine) != 8 {
		t.Fatalf("length = %d, want 8", len(sine))
	}

	if sine[0] != 0 {
		t.Errorf("sine[0] = %v, want 0", sine[0])
	}

	// 1 kHz at 8 kHz puts the quarter period at index 2.
	if math.Abs(sine[2]-2) > 1e-12 {
		t.Errorf("sine[2] = %v, want 2", sine[2])
	}

	if math.Abs(sine[6]+2) > 1e-12 {
		t.Errorf("sine[6] = %v, want -2", sine[6])
	}
}

func TestTimeAxis(t *testing.T) {
	times := TimeAxis(1000, 4)

	want := []float64{0, 0.001, 0.002, 0.003}
	for i := range want {
		if math.Abs(times[i]-want[i]) > 1e-15 {
			t.Errorf("times[%d] = %v, want %v", i, times[i], want[i])
		}
	}
}

func TestDC(t *testing.T) {
	sig := DC(-4.3, 16)

	if len(sig) != 16 {
		t.Fatalf("length = %d, want 16", len(sig))
	}

	for i, v := range sig {
		if v != -4.3 {
			t.Fatalf("sig[%d] = %v, want -4.3", i, v)
		}
	}
}
