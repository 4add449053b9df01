// Package thevenin evaluates power transfer from a Thevenin equivalent
// source into a resistive load.
//
// The delivered power is P = Vth^2 * RL / (Rth + RL)^2, maximized when
// the load matches the source resistance (RL = Rth). Sweep produces the
// curve over a log-spaced load grid, which is the natural view when the
// load spans several orders of magnitude.
package thevenin

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-circuit/circuit/core"
)

// Errors returned by the sweep.
var (
	ErrInvalidVoltage    = errors.New("thevenin: source voltage must be positive and finite")
	ErrInvalidResistance = errors.New("thevenin: source resistance must be positive and finite")
	ErrInvalidRange      = errors.New("thevenin: start load must be positive and less than end load")
	ErrInvalidPoints     = errors.New("thevenin: point count must be >= 2")
)

// Source is a Thevenin equivalent source.
type Source struct {
	Voltage    float64 // Vth in V
	Resistance float64 // Rth in Ohm
}

// Validate checks that the source values are physical.
func (s Source) Validate() error {
	if s.Voltage <= 0 || math.IsNaN(s.Voltage) || math.IsInf(s.Voltage, 0) {
		return ErrInvalidVoltage
	}

	if s.Resistance <= 0 || math.IsNaN(s.Resistance) || math.IsInf(s.Resistance, 0) {
		return ErrInvalidResistance
	}

	return nil
}

// PowerAt returns the power delivered into the given load resistance.
// Non-positive loads deliver no power.
func (s Source) PowerAt(loadOhms float64) float64 {
	if loadOhms <= 0 {
		return 0
	}

	total := s.Resistance + loadOhms

	return s.Voltage * s.Voltage * loadOhms / (total * total)
}

// MaxPower returns the analytic maximum-power point: the load equals
// the source resistance and delivers Vth^2 / (4*Rth).
func (s Source) MaxPower() (loadOhms, watts float64) {
	return s.Resistance, s.Voltage * s.Voltage / (4 * s.Resistance)
}

// Sweep holds a power-transfer curve over a log-spaced load grid.
type Sweep struct {
	Loads []float64 // Ohm, log-spaced
	Power []float64 // W, aligned with Loads

	MaxIndex int     // index of the curve maximum
	MaxLoad  float64 // load at the curve maximum in Ohm
	MaxPower float64 // power at the curve maximum in W
}

// Sweep evaluates the power curve over points log-spaced loads from
// startOhms to endOhms inclusive and locates the curve maximum. The
// located maximum sits on the grid, so it approaches the analytic
// RL = Rth point only as densely as the grid allows.
func (s Source) Sweep(startOhms, endOhms float64, points int) (Sweep, error) {
	if err := s.Validate(); err != nil {
		return Sweep{}, err
	}

	if startOhms <= 0 || startOhms >= endOhms {
		return Sweep{}, ErrInvalidRange
	}

	if points < 2 {
		return Sweep{}, ErrInvalidPoints
	}

	loads := core.Logspace(startOhms, endOhms, points)

	sw := Sweep{
		Loads: loads,
		Power: make([]float64, points),
	}

	for i, rl := range loads {
		sw.Power[i] = s.PowerAt(rl)

		if sw.Power[i] > sw.MaxPower {
			sw.MaxPower = sw.Power[i]
			sw.MaxIndex = i
		}
	}

	sw.MaxLoad = loads[sw.MaxIndex]

	return sw, nil
}
