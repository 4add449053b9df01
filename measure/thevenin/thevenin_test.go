package thevenin

import (
	"math"
	"testing"
)

func TestSourceValidate(t *testing.T) {
	tests := []struct {
		name    string
		src     Source
		wantErr error
	}{
		{"valid", Source{10, 50}, nil},
		{"zero voltage", Source{0, 50}, ErrInvalidVoltage},
		{"negative voltage", Source{-10, 50}, ErrInvalidVoltage},
		{"nan voltage", Source{math.NaN(), 50}, ErrInvalidVoltage},
		{"zero resistance", Source{10, 0}, ErrInvalidResistance},
		{"inf resistance", Source{10, math.Inf(1)}, ErrInvalidResistance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.src.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPowerAt(t *testing.T) {
	s := Source{Voltage: 10, Resistance: 50}

	tests := []struct {
		load float64
		want float64
	}{
		{50, 0.5},           // matched load: V^2/(4R)
		{100, 0.444444444},  // 100*100/150^2
		{10, 0.277777778},   // 100*10/60^2
		{0, 0},              // short delivers nothing
		{-5, 0},             // non-physical load delivers nothing
	}

	for _, tt := range tests {
		got := s.PowerAt(tt.load)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("PowerAt(%v) = %v, want %v", tt.load, got, tt.want)
		}
	}
}

func TestMaxPower(t *testing.T) {
	s := Source{Voltage: 10, Resistance: 50}

	load, watts := s.MaxPower()

	if load != 50 {
		t.Errorf("max power load = %v, want 50", load)
	}

	if math.Abs(watts-0.5) > 1e-12 {
		t.Errorf("max power = %v, want 0.5", watts)
	}
}

func TestSweep(t *testing.T) {
	// The reference sweep: 0.1 Ohm to 10 kOhm over 800 log-spaced points.
	s := Source{Voltage: 10, Resistance: 50}

	sw, err := s.Sweep(0.1, 10000, 800)
	if err != nil {
		t.Fatal(err)
	}

	if len(sw.Loads) != 800 || len(sw.Power) != 800 {
		t.Fatalf("sweep lengths = %d/%d, want 800", len(sw.Loads), len(sw.Power))
	}

	if sw.Loads[0] != 0.1 || sw.Loads[799] != 10000 {
		t.Errorf("load endpoints = %v..%v, want 0.1..10000", sw.Loads[0], sw.Loads[799])
	}

	// The grid maximum sits next to the analytic RL = Rth point.
	if math.Abs(sw.MaxLoad-50)/50 > 0.02 {
		t.Errorf("MaxLoad = %v, want within 2%% of 50", sw.MaxLoad)
	}

	if sw.MaxPower > 0.5 || sw.MaxPower < 0.4999 {
		t.Errorf("MaxPower = %v, want just below 0.5", sw.MaxPower)
	}

	if sw.Power[sw.MaxIndex] != sw.MaxPower {
		t.Error("MaxIndex does not point at MaxPower")
	}

	// Power falls off on both sides of the maximum.
	if sw.Power[0] >= sw.MaxPower || sw.Power[799] >= sw.MaxPower {
		t.Error("curve endpoints should sit below the maximum")
	}
}

func TestSweepValidation(t *testing.T) {
	s := Source{Voltage: 10, Resistance: 50}

	tests := []struct {
		name    string
		start   float64
		end     float64
		points  int
		wantErr error
	}{
		{"zero start", 0, 100, 10, ErrInvalidRange},
		{"reversed", 100, 10, 10, ErrInvalidRange},
		{"one point", 0.1, 100, 1, ErrInvalidPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Sweep(tt.start, tt.end, tt.points)
			if err != tt.wantErr {
				t.Errorf("Sweep() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	bad := Source{Voltage: 0, Resistance: 50}
	if _, err := bad.Sweep(0.1, 100, 10); err != ErrInvalidVoltage {
		t.Errorf("Sweep() error = %v, want %v", err, ErrInvalidVoltage)
	}
}
