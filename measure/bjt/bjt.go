package bjt

import "errors"

// Errors returned by the analyzer.
var (
	ErrInvalidFrequency = errors.New("bjt: frequency must be positive")
	ErrFrequencyOrder   = errors.New("bjt: start frequency must be less than end frequency")
	ErrInvalidPoints    = errors.New("bjt: point count must be >= 2")
	ErrUnknownTopology  = errors.New("bjt: unknown topology")
)

// Topology selects the amplifier stage configuration.
type Topology int

// Supported stage topologies.
const (
	CommonEmitter Topology = iota
	CommonBase
)

// String returns the topology name.
func (t Topology) String() string {
	switch t {
	case CommonEmitter:
		return "common-emitter"
	case CommonBase:
		return "common-base"
	default:
		return "unknown"
	}
}

// Default component values shared by both reference stages.
const (
	defaultVT  = 0.026 // thermal voltage at room temperature in V
	defaultVBE = 0.7   // base-emitter drop in V

	// largeImpedance stands in for an open path when a component value
	// would make an expression degenerate.
	largeImpedance = 1e6
)

// Config holds the stage component values.
type Config struct {
	Topology Topology

	RC  float64 // collector resistor in Ohm
	RB1 float64 // upper bias divider resistor in Ohm
	RB2 float64 // lower bias divider resistor in Ohm
	RE  float64 // emitter resistor in Ohm
	RL  float64 // load resistor in Ohm

	VCC  float64 // supply voltage in V
	Beta float64 // current gain (hFE)

	Cin     float64 // input coupling capacitor in F
	Cout    float64 // output coupling capacitor in F
	CBypass float64 // emitter bypass (CE) or base bypass (CB) capacitor in F

	VT  float64 // thermal voltage in V; defaults to 26 mV when zero
	VBE float64 // base-emitter drop in V; defaults to 0.7 V when zero
}

// DefaultConfig returns the reference component values for the given
// topology.
func DefaultConfig(topology Topology) Config {
	return Config{
		Topology: topology,
		RC:       2.2e3,
		RB1:      47e3,
		RB2:      10e3,
		RE:       1e3,
		RL:       10e3,
		VCC:      12,
		Beta:     100,
		Cin:      10e-6,
		Cout:     10e-6,
		CBypass:  100e-6,
		VT:       defaultVT,
		VBE:      defaultVBE,
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg.VT <= 0 {
		cfg.VT = defaultVT
	}

	if cfg.VBE <= 0 {
		cfg.VBE = defaultVBE
	}

	return cfg
}

// QPoint holds the DC operating point of a stage.
type QPoint struct {
	IB float64 // base current in A
	IC float64 // collector current in A
	IE float64 // emitter current in A

	VB  float64 // base voltage in V
	VC  float64 // collector voltage in V
	VE  float64 // emitter voltage in V
	VCE float64 // collector-emitter voltage in V
}

// Analyzer evaluates the small-signal model of a configured stage.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer for the given configuration.
func NewAnalyzer(cfg Config) *Analyzer {
	cfg = normalizeConfig(cfg)
	return &Analyzer{cfg: cfg}
}

// Config returns the normalized configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// OperatingPoint computes the DC bias point from the voltage-divider
// Thevenin equivalent. A stage biased into cutoff (VE <= 0) reports
// zero currents rather than an error; the AC gains then collapse
// accordingly.
func (a *Analyzer) OperatingPoint() QPoint {
	cfg := a.cfg

	var q QPoint

	if cfg.RB1+cfg.RB2 > 0 {
		q.VB = cfg.VCC * cfg.RB2 / (cfg.RB1 + cfg.RB2)
	}

	q.VE = q.VB - cfg.VBE

	if cfg.RE > 0 && q.VE > 0 {
		q.IE = q.VE / cfg.RE
	}

	if cfg.Beta > 0 {
		q.IC = q.IE * cfg.Beta / (cfg.Beta + 1)
		q.IB = q.IE / (cfg.Beta + 1)
	}

	q.VC = cfg.VCC - q.IC*cfg.RC
	q.VCE = q.VC - q.VE

	return q
}
