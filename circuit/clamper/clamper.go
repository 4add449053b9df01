package clamper

import (
	"errors"
	"math"
)

// Errors returned by Simulate. All of them indicate invalid input
// detected before the step loop starts; the simulation itself cannot
// fail once it begins.
var (
	ErrTooFewSamples      = errors.New("clamper: waveform needs at least 2 samples")
	ErrLengthMismatch     = errors.New("clamper: time and voltage slices differ in length")
	ErrTimeOrder          = errors.New("clamper: time samples must be strictly increasing")
	ErrNonFiniteSample    = errors.New("clamper: waveform contains a non-finite sample")
	ErrInvalidDiodeDrop   = errors.New("clamper: diode drop must be positive and finite")
	ErrInvalidResistance  = errors.New("clamper: series resistance must be positive and finite")
	ErrInvalidCapacitance = errors.New("clamper: capacitance must be positive and finite")
	ErrInvalidPolarity    = errors.New("clamper: unknown clamp polarity")
)

// Polarity selects the clamper topology.
type Polarity int

// Clamp polarities.
const (
	// Positive conducts on positive input excursions, charging the
	// capacitor positive and shifting the waveform upward until the
	// negative peak clamps near -DiodeDrop.
	Positive Polarity = iota
	// Negative is the mirrored topology: the waveform shifts downward
	// until the positive peak clamps near +DiodeDrop.
	Negative
)

// String returns the polarity name.
func (p Polarity) String() string {
	switch p {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "unknown"
	}
}

// Params holds the clamper circuit values.
type Params struct {
	DiodeDrop        float64 // forward voltage drop in V
	SeriesResistance float64 // charging resistor in Ohm
	Capacitance      float64 // coupling capacitor in F
	Polarity         Polarity
}

// Validate checks that the circuit values are physical.
func (p Params) Validate() error {
	if p.DiodeDrop <= 0 || !isFinite(p.DiodeDrop) {
		return ErrInvalidDiodeDrop
	}

	if p.SeriesResistance <= 0 || !isFinite(p.SeriesResistance) {
		return ErrInvalidResistance
	}

	if p.Capacitance <= 0 || !isFinite(p.Capacitance) {
		return ErrInvalidCapacitance
	}

	if p.Polarity != Positive && p.Polarity != Negative {
		return ErrInvalidPolarity
	}

	return nil
}

// TimeConstant returns the R*C charging time constant in seconds.
func (p Params) TimeConstant() float64 {
	return p.SeriesResistance * p.Capacitance
}

// Result holds the simulated traces, aligned index-for-index with the
// input time axis.
type Result struct {
	Output    []float64 // clamped output voltage
	Capacitor []float64 // capacitor voltage
}

// Simulate runs the transient clamper simulation over the input
// waveform. times and input are parallel slices; times must be strictly
// increasing. The capacitor starts uncharged, so Capacitor[0] is 0 and
// Output[0] equals input[0].
//
// For each later step the ideal diode either conducts, charging the
// capacitor one Euler step and pinning the output at the clamp level,
// or blocks, holding the capacitor and letting the output follow the
// input plus the stored bias. Simulate is a pure function: identical
// arguments produce bit-identical results.
func Simulate(times, input []float64, p Params) (Result, error) {
	if err := validateWaveform(times, input); err != nil {
		return Result{}, err
	}

	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	n := len(times)
	out := make([]float64, n)
	vc := make([]float64, n)

	// Cold start: no stored charge, diode path and follow path coincide.
	out[0] = input[0]
	vc[0] = 0

	for i := 1; i < n; i++ {
		dt := times[i] - times[i-1]
		vin := input[i]
		vcPrev := vc[i-1]

		switch p.Polarity {
		case Positive:
			if vin > vcPrev+p.DiodeDrop {
				ic := (vin - vcPrev - p.DiodeDrop) / p.SeriesResistance
				vc[i] = vcPrev + ic*dt/p.Capacitance
				out[i] = vin - p.DiodeDrop
			} else {
				vc[i] = vcPrev
				out[i] = vin + vc[i]
			}
		case Negative:
			if vin < vcPrev-p.DiodeDrop {
				ic := (vin - vcPrev + p.DiodeDrop) / p.SeriesResistance
				vc[i] = vcPrev + ic*dt/p.Capacitance
				out[i] = vin + p.DiodeDrop
			} else {
				vc[i] = vcPrev
				out[i] = vin + vc[i]
			}
		}
	}

	return Result{Output: out, Capacitor: vc}, nil
}

// SimulateBoth runs the positive and negative variants of the same
// circuit over one input waveform. The runs are independent; only the
// polarity differs.
func SimulateBoth(times, input []float64, p Params) (pos, neg Result, err error) {
	p.Polarity = Positive

	pos, err = Simulate(times, input, p)
	if err != nil {
		return Result{}, Result{}, err
	}

	p.Polarity = Negative

	neg, err = Simulate(times, input, p)
	if err != nil {
		return Result{}, Result{}, err
	}

	return pos, neg, nil
}

func validateWaveform(times, input []float64) error {
	if len(times) != len(input) {
		return ErrLengthMismatch
	}

	if len(times) < 2 {
		return ErrTooFewSamples
	}

	for i := range times {
		if !isFinite(times[i]) || !isFinite(input[i]) {
			return ErrNonFiniteSample
		}

		if i > 0 && times[i] <= times[i-1] {
			return ErrTimeOrder
		}
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
