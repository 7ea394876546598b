// Package osc implements the free-running phase accumulator from spec
// 4.8: a scalar oscillator whose Param precomputes the per-tick phase
// step and whose State holds the running phase.
package osc

import (
	"fmt"

	"github.com/doismellburning/ctrlcore/numeric/unit"
)

// Param precomputes delta-phi = freq * dt * scale-of-unit, where scale
// is one of Rev, QRev, or HPi's radian scale (spec 4.8).
type Param struct {
	deltaPhi float64
	period   float64
}

// State holds the running phase, confined to [0, period).
type State struct {
	Phi float64
}

// MakeParam builds an oscillator Param for unit in {Rev, QRev, HPi},
// given dt (seconds) and the target freq (Hz).
func MakeParam[U unit.Unit](dt, freq float64) (Param, error) {
	if dt <= 0 {
		return Param{}, fmt.Errorf("osc: dt must be positive, got %g", dt)
	}
	var u U
	period := u.Scale()
	return Param{
		deltaPhi: freq * dt * period,
		period:   period,
	}, nil
}

// Apply advances phi by delta-phi, wraps modulo the unit period, and
// returns the new phase. The modulus subtracts one period while the
// phase is at or above the period (and adds one while it is below
// zero), so the result always lands in [0, period).
func Apply(p Param, s *State) float64 {
	s.Phi += p.deltaPhi
	for s.Phi >= p.period {
		s.Phi -= p.period
	}
	for s.Phi < 0 {
		s.Phi += p.period
	}
	return s.Phi
}

// Phase returns the current phase without advancing it.
func Phase(s *State) float64 {
	return s.Phi
}

// Reset re-seeds the phase accumulator.
func Reset(s *State, phi float64) {
	s.Phi = phi
}
