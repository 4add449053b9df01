package waveform

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-circuit/circuit/core"
)

// Errors returned by waveform construction.
var (
	ErrInvalidSamples    = errors.New("waveform: sample count must be > 0")
	ErrInvalidSampleRate = errors.New("waveform: sample rate must be > 0")
	ErrLengthMismatch    = errors.New("waveform: slice lengths differ")
)

// Generator creates deterministic source waveforms from a shared
// configuration.
type Generator struct {
	cfg core.SimConfig
}

// NewGenerator creates a configured waveform generator.
func NewGenerator(opts ...core.SimOption) *Generator {
	return &Generator{cfg: core.ApplySimOptions(opts...)}
}

// Config returns the generator configuration.
func (g *Generator) Config() core.SimConfig {
	return g.cfg
}

// TimeAxis generates a uniformly spaced time axis in seconds starting
// at t=0, with spacing 1/SampleRate.
func (g *Generator) TimeAxis(samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, ErrInvalidSamples
	}
	if g.cfg.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	out := make([]float64, samples)
	dt := 1 / g.cfg.SampleRate
	for i := range out {
		out[i] = float64(i) * dt
	}

	return out, nil
}

// Sine generates a sine wave at the configured sample rate.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, ErrInvalidSamples
	}
	if g.cfg.SampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// Scale returns signal multiplied by factor.
func Scale(signal []float64, factor float64) []float64 {
	out := make([]float64, len(signal))
	if len(out) == 0 {
		return out
	}

	vecmath.ScaleBlock(out, signal, factor)

	return out
}

// ScaleDB returns signal with a gain applied in dB (20*log10
// convention): 0 dB leaves the signal untouched, 20 dB multiplies it
// by 10.
func ScaleDB(signal []float64, gainDB float64) []float64 {
	return Scale(signal, core.DBToLinear(gainDB))
}

// Add returns the elementwise sum of a and b.
func Add(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	out := make([]float64, len(a))
	copy(out, a)
	if len(out) > 0 {
		vecmath.AddBlockInPlace(out, b)
	}

	return out, nil
}

// Offset returns signal with a constant voltage added to every sample.
func Offset(signal []float64, volts float64) []float64 {
	out := make([]float64, len(signal))
	for i, v := range signal {
		out[i] = v + volts
	}

	return out
}
