// Package heater implements the lumped-thermal resistive-heater plant
// model from spec 4.10: one capacity-and-loss node driven by applied
// power and cooled toward ambient through a thermal resistance.
package heater

import "fmt"

// Param holds the heater's thermal constants: heat capacity C
// (J/K/kg), mass (kg), thermal resistance RTh (K/W) to the
// environment, and the ambient temperature TEnv (K).
type Param struct {
	C, Mass, RTh, TEnv float64
}

// MakeParam validates the constants the discrete update divides by.
func MakeParam(c, mass, rTh, tEnv float64) (Param, error) {
	if c <= 0 {
		return Param{}, fmt.Errorf("heater: C must be positive, got %g", c)
	}
	if mass <= 0 {
		return Param{}, fmt.Errorf("heater: mass must be positive, got %g", mass)
	}
	if rTh <= 0 {
		return Param{}, fmt.Errorf("heater: RTh must be positive, got %g", rTh)
	}
	return Param{C: c, Mass: mass, RTh: rTh, TEnv: tEnv}, nil
}

// State holds the current lumped temperature.
type State struct {
	T float64
}

// Step advances the heater one sample of dt seconds under applied
// power, per spec 4.10:
//
//	T[k+1] = T[k] + (dt/(C*Mass))*(power - (T[k]-TEnv)/RTh)
func Step(p Param, s *State, power, dt float64) {
	loss := (s.T - p.TEnv) / p.RTh
	s.T += (dt / (p.C * p.Mass)) * (power - loss)
}
