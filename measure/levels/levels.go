// Package levels measures DC and fundamental levels of a waveform.
//
// It is the measurement counterpart of the clamper simulation: a clamper
// shifts a waveform's DC level while preserving its peak-to-peak
// amplitude, and Analyze quantifies exactly those two properties. The DC
// component and the fundamental come from a forward FFT; peak and trough
// are scanned in the time domain.
package levels

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by Analyze.
var (
	ErrTooFewSamples     = errors.New("levels: signal needs at least 2 samples")
	ErrInvalidSampleRate = errors.New("levels: sample rate must be positive")
)

// Levels holds the measured levels of one waveform.
type Levels struct {
	DC              float64 // mean value in V
	Fundamental     float64 // amplitude of the strongest non-DC component in V
	FundamentalFreq float64 // frequency of that component in Hz
	Peak            float64 // maximum sample value
	Trough          float64 // minimum sample value
	PeakToPeak      float64 // Peak - Trough
}

// Analyze measures the levels of signal sampled at sampleRate.
//
// The signal is zero-padded to a power-of-2 FFT size. Zero padding
// leaves bin 0 (the sample sum) untouched, so the DC estimate is exact;
// the fundamental amplitude estimate assumes the component dominates its
// bin and is approximate for non-integer cycle counts.
func Analyze(signal []float64, sampleRate float64) (Levels, error) {
	if len(signal) < 2 {
		return Levels{}, ErrTooFewSamples
	}

	if sampleRate <= 0 {
		return Levels{}, ErrInvalidSampleRate
	}

	var lv Levels

	lv.Peak = signal[0]
	lv.Trough = signal[0]

	for _, v := range signal[1:] {
		if v > lv.Peak {
			lv.Peak = v
		}

		if v < lv.Trough {
			lv.Trough = v
		}
	}

	lv.PeakToPeak = lv.Peak - lv.Trough

	fftSize := nextPowerOf2(len(signal))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Levels{}, fmt.Errorf("levels: failed to create FFT plan: %w", err)
	}

	padded := make([]complex128, fftSize)
	for i, v := range signal {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return Levels{}, fmt.Errorf("levels: forward FFT failed: %w", err)
	}

	// Magnitudes of the first half of the spectrum.
	binCount := fftSize/2 + 1
	re := make([]float64, binCount)
	im := make([]float64, binCount)

	for i := 0; i < binCount; i++ {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	mag := make([]float64, binCount)
	vecmath.Magnitude(mag, re, im)

	// Bin 0 is the plain sample sum; take it signed rather than as a
	// magnitude so negative DC shifts survive.
	n := float64(len(signal))
	lv.DC = real(freq[0]) / n

	maxBin := 0
	maxMag := 0.0

	for k := 1; k < binCount; k++ {
		if mag[k] > maxMag {
			maxMag = mag[k]
			maxBin = k
		}
	}

	if maxBin > 0 {
		lv.Fundamental = 2 * maxMag / n
		lv.FundamentalFreq = float64(maxBin) * sampleRate / float64(fftSize)
	}

	return lv, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
