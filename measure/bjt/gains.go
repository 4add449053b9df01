package bjt

import (
	"math"

	"github.com/cwbudde/algo-circuit/circuit/core"
	"github.com/cwbudde/algo-circuit/internal/fastmath"
)

// dbFloor is the floor applied to gain magnitudes at or below
// minLinearGain, keeping the log conversion away from -Inf.
const (
	minLinearGain = 1e-10
	dbFloor       = -100
)

// Gains holds the gain magnitudes of a stage at one frequency.
// Phase is not modeled; the common-emitter 180 degree inversion is
// dropped and only magnitudes are reported.
type Gains struct {
	Voltage float64 // |Av|, linear
	Current float64 // |Ai|, linear
	Power   float64 // Ap = Av*Ai, linear

	VoltageDB float64 // 20*log10(|Av|), floored at -100 dB
	CurrentDB float64 // 20*log10(|Ai|), floored at -100 dB
	PowerDB   float64 // 10*log10(Ap), floored at -100 dB
}

// GainsAt computes the stage gains at the given frequency.
func (a *Analyzer) GainsAt(freqHz float64) (Gains, error) {
	if freqHz <= 0 {
		return Gains{}, ErrInvalidFrequency
	}

	switch a.cfg.Topology {
	case CommonEmitter:
		return a.gainsCommonEmitter(freqHz), nil
	case CommonBase:
		return a.gainsCommonBase(freqHz), nil
	default:
		return Gains{}, ErrUnknownTopology
	}
}

func (a *Analyzer) gainsCommonEmitter(freqHz float64) Gains {
	cfg := a.cfg
	q := a.OperatingPoint()

	re := largeImpedance
	if q.IE > 0 {
		re = cfg.VT / q.IE
	}

	// Emitter leg: RE shunted by the bypass capacitor. Low frequency
	// leaves RE in the signal path (low gain), high frequency shorts it.
	zcE := reactance(freqHz, cfg.CBypass)

	zeEff := 0.0
	if cfg.RE > 0 && zcE > 0 {
		zeEff = cfg.RE * zcE / fastmath.Sqrt(cfg.RE*cfg.RE+zcE*zcE)
	}

	rcEff := effectiveCollectorLoad(cfg)

	av := 0.0
	if re+zeEff > 0 {
		av = rcEff / (re + zeEff)
	}

	// Input resistance seen by the source: RB1 || RB2 || beta*(re+Ze).
	rin := largeImpedance

	currentDivision := 1.0

	if cfg.RB1 > 0 && cfg.RB2 > 0 {
		rbParallel := core.Parallel(cfg.RB1, cfg.RB2)
		rinBase := cfg.Beta * (re + zeEff)

		if rbParallel+rinBase > 0 {
			rin = core.Parallel(rbParallel, rinBase)
			currentDivision = rinBase / (rbParallel + rinBase)
		} else {
			rin = rbParallel
		}
	}

	cinResponse := inputCouplingResponse(freqHz, rin, cfg.Cin)
	av *= cinResponse

	outputDivision := 1.0
	if cfg.RC > 0 && cfg.RL > 0 {
		outputDivision = cfg.RC / (cfg.RC + cfg.RL)
	}

	ai := cfg.Beta * currentDivision * outputDivision * cinResponse

	return makeGains(av, ai)
}

func (a *Analyzer) gainsCommonBase(freqHz float64) Gains {
	cfg := a.cfg
	q := a.OperatingPoint()

	re := largeImpedance
	if q.IE > 0 {
		re = cfg.VT / q.IE
	}

	// Base leg: the divider resistance shunted by the base bypass
	// capacitor, reflected into the emitter divided by beta+1.
	zcB := reactance(freqHz, cfg.CBypass)

	rbParallel := largeImpedance
	if cfg.RB1 > 0 && cfg.RB2 > 0 {
		rbParallel = core.Parallel(cfg.RB1, cfg.RB2)
	}

	zBaseEff := 0.0
	if rbParallel > 0 && zcB > 0 {
		zBaseEff = rbParallel * zcB / fastmath.Sqrt(rbParallel*rbParallel+zcB*zcB)
	}

	zinEmitter := re + zBaseEff/(cfg.Beta+1)

	rin := zinEmitter
	if cfg.RE > 0 && zinEmitter > 0 {
		rin = core.Parallel(cfg.RE, zinEmitter)
	}

	cinResponse := inputCouplingResponse(freqHz, rin, cfg.Cin)

	rcEff := effectiveCollectorLoad(cfg)

	av := 0.0
	if zinEmitter > 0 {
		av = rcEff / zinEmitter
	}
	av *= cinResponse

	alpha := cfg.Beta / (cfg.Beta + 1)

	inputSplit := 1.0
	if cfg.RE+zinEmitter > 0 {
		inputSplit = cfg.RE / (cfg.RE + zinEmitter)
	}

	outputSplit := 1.0
	if cfg.RC > 0 && cfg.RL > 0 {
		outputSplit = cfg.RC / (cfg.RC + cfg.RL)
	}

	ai := alpha * inputSplit * outputSplit * cinResponse

	return makeGains(av, ai)
}

// effectiveCollectorLoad returns RC || RL, degrading to whichever one is
// present when the other is zero.
func effectiveCollectorLoad(cfg Config) float64 {
	if cfg.RC > 0 && cfg.RL > 0 {
		return core.Parallel(cfg.RC, cfg.RL)
	}

	if cfg.RC > 0 {
		return cfg.RC
	}

	return cfg.RL
}

// reactance returns the capacitive reactance magnitude, substituting a
// large finite impedance for degenerate inputs so downstream parallel
// combinations stay well-defined.
func reactance(freqHz, capacitance float64) float64 {
	z := core.CapacitiveReactance(freqHz, capacitance)
	if math.IsInf(z, 1) {
		return largeImpedance
	}

	return z
}

// inputCouplingResponse returns the first-order high-pass magnitude of
// the input coupling capacitor against the stage input resistance:
//
//	|H(f)| = (f/fc) / sqrt(1 + (f/fc)^2),  fc = 1/(2*pi*Rin*Cin)
func inputCouplingResponse(freqHz, rin, cin float64) float64 {
	if rin <= 0 || freqHz <= 0 || cin <= 0 {
		return 1
	}

	fc := 1 / (2 * math.Pi * rin * cin)
	ratio := freqHz / fc

	return ratio / fastmath.Sqrt(1+ratio*ratio)
}

func makeGains(av, ai float64) Gains {
	ap := av * ai

	return Gains{
		Voltage:   av,
		Current:   ai,
		Power:     ap,
		VoltageDB: amplitudeDB(av),
		CurrentDB: amplitudeDB(ai),
		PowerDB:   powerDB(ap),
	}
}

func amplitudeDB(lin float64) float64 {
	if lin <= minLinearGain {
		return dbFloor
	}

	return core.LinearToDB(lin)
}

func powerDB(lin float64) float64 {
	if lin <= minLinearGain {
		return dbFloor
	}

	return core.LinearPowerToDB(lin)
}
