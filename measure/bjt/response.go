package bjt

import "github.com/cwbudde/algo-circuit/circuit/core"

// Response holds gain curves over a log-spaced frequency grid. The dB
// slices are aligned index-for-index with Frequencies.
type Response struct {
	Frequencies []float64 // Hz, log-spaced

	VoltageDB []float64
	CurrentDB []float64
	PowerDB   []float64
}

// Response sweeps the stage gains over points log-spaced frequencies
// from startHz to endHz inclusive. Each sample is an independent
// closed-form evaluation; no state is carried across the sweep.
func (a *Analyzer) Response(startHz, endHz float64, points int) (Response, error) {
	if startHz <= 0 || endHz <= 0 {
		return Response{}, ErrInvalidFrequency
	}

	if startHz >= endHz {
		return Response{}, ErrFrequencyOrder
	}

	if points < 2 {
		return Response{}, ErrInvalidPoints
	}

	freqs := core.Logspace(startHz, endHz, points)

	resp := Response{
		Frequencies: freqs,
		VoltageDB:   make([]float64, points),
		CurrentDB:   make([]float64, points),
		PowerDB:     make([]float64, points),
	}

	for i, f := range freqs {
		g, err := a.GainsAt(f)
		if err != nil {
			return Response{}, err
		}

		resp.VoltageDB[i] = g.VoltageDB
		resp.CurrentDB[i] = g.CurrentDB
		resp.PowerDB[i] = g.PowerDB
	}

	return resp, nil
}
