// Package dcm implements the discrete DC-motor plant model from spec
// 4.10, used by test harnesses and cmd/ctrlbench scenarios to close
// the loop around a PID or LQE controller the same way the teacher's
// atest.go round-trips its own encoder through a synthetic channel.
package dcm

import "fmt"

// Param holds the motor's physical constants: armature resistance R
// (ohms), inductance L (henries), torque constant K, and rotor
// moment of inertia J (kg*m^2).
type Param struct {
	R, L, K, J float64
}

// MakeParam validates the physical constants that would make the
// discrete update divide by zero.
func MakeParam(r, l, k, j float64) (Param, error) {
	if l <= 0 {
		return Param{}, fmt.Errorf("dcm: L must be positive, got %g", l)
	}
	if j <= 0 {
		return Param{}, fmt.Errorf("dcm: J must be positive, got %g", j)
	}
	return Param{R: r, L: l, K: k, J: j}, nil
}

// State holds armature current Ir and rotor angular velocity Wr.
type State struct {
	Ir, Wr float64
}

// Step advances the motor one sample of dt seconds under applied
// voltage u and load torque tLoad, per spec 4.10's two discrete
// update equations:
//
//	Ir[k+1] = Ir[k] + (dt/L)*(u - R*Ir[k] - K*Wr[k])
//	Wr[k+1] = Wr[k] + (dt/J)*(K*Ir[k] - tLoad[k])
func Step(p Param, s *State, u, tLoad, dt float64) {
	ir := s.Ir + (dt/p.L)*(u-p.R*s.Ir-p.K*s.Wr)
	wr := s.Wr + (dt/p.J)*(p.K*s.Ir-tLoad)
	s.Ir, s.Wr = ir, wr
}
