// Package pid implements the PID regulator family from spec 4.6: four
// canonical shapes (PO, PI, PD, PID) plus the orthogonal CoupleP and
// LimitI refinements.
//
// Spec 9 describes this as "a builder pattern that changes the type on
// each step" and recommends modeling it as "pure functions returning a
// distinct Param type" -- exactly what this package does: WithI,
// WithD, and WithILimit each return a new concrete struct type rather
// than mutating a variant/flag field, so a PO can never accidentally
// be applied as if it had an integral term.
package pid

import "fmt"

// PO is proportional-only. Invariant 7 (spec 8): apply(e) = p*e and is
// stateless in effect.
type PO struct {
	P float64
}

// PI is proportional + integral.
type PI struct {
	P, I float64
}

// PD is proportional + derivative.
type PD struct {
	P, D float64
}

// PID is the full three-term regulator.
type PID struct {
	P, I, D float64
}

// MakePO builds a proportional-only Param.
func MakePO(p float64) PO { return PO{P: p} }

// WithI up-classes PO to PI.
func (po PO) WithI(i float64) PI { return PI{P: po.P, I: i} }

// WithD up-classes PO to PD.
func (po PO) WithD(d float64) PD { return PD{P: po.P, D: d} }

// WithD up-classes PI to PID. Builder order is always P -> I -> D, so
// a PID's fields are always populated in (P, I, D) order -- spec's
// third Open Question (a `(P, D, I)` positional path seen in one
// source branch) is resolved by not reproducing it; see DESIGN.md.
func (pi PI) WithD(d float64) PID { return PID{P: pi.P, I: pi.I, D: d} }

// WithI up-classes PD to PID.
func (pd PD) WithI(i float64) PID { return PID{P: pd.P, I: i, D: pd.D} }

// WithIdt builds the integral gain from a time-constant design: spec
// 4.6's "with_I!dt(tau_i) multiplies by dt."
func (po PO) WithIdt(tauI, dt float64) PI { return po.WithI(tauI * dt) }

// WithDdt builds the derivative gain from a time-constant design: spec
// 4.6's "with_D!dt(tau_d) divides by dt."
func (po PO) WithDdt(tauD, dt float64) PD { return po.WithD(tauD / dt) }

// WithDdt up-classes PI to PID using a derivative time constant.
func (pi PI) WithDdt(tauD, dt float64) PID { return pi.WithD(tauD / dt) }

// WithIdt up-classes PD to PID using an integral time constant.
func (pd PD) WithIdt(tauI, dt float64) PID { return pd.WithI(tauI * dt) }

// LimitedPID is a PID with a symmetric integral clamp.
type LimitedPID struct {
	PID
	ELimit float64
}

// LimitedPI is a PI with a symmetric integral clamp.
type LimitedPI struct {
	PI
	ELimit float64
}

// WithILimit enables integral clamping on a PID.
func (p PID) WithILimit(e float64) (LimitedPID, error) {
	if e <= 0 {
		return LimitedPID{}, fmt.Errorf("pid: integral limit must be positive, got %g", e)
	}
	return LimitedPID{PID: p, ELimit: e}, nil
}

// WithILimit enables integral clamping on a PI.
func (p PI) WithILimit(e float64) (LimitedPI, error) {
	if e <= 0 {
		return LimitedPI{}, fmt.Errorf("pid: integral limit must be positive, got %g", e)
	}
	return LimitedPI{PI: p, ELimit: e}, nil
}

// Coupled markers: proportional gain multiplies the full (P+I+D) sum
// rather than only the error (spec 4.6's "Coupled" composition).
type CoupledPI struct{ PI }
type CoupledPD struct{ PD }
type CoupledPID struct{ PID }
type CoupledLimitedPI struct{ LimitedPI }
type CoupledLimitedPID struct{ LimitedPID }

func (p PI) Coupled() CoupledPI              { return CoupledPI{p} }
func (p PD) Coupled() CoupledPD              { return CoupledPD{p} }
func (p PID) Coupled() CoupledPID            { return CoupledPID{p} }
func (p LimitedPI) Coupled() CoupledLimitedPI  { return CoupledLimitedPI{p} }
func (p LimitedPID) Coupled() CoupledLimitedPID { return CoupledLimitedPID{p} }
