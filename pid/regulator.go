package pid

// Regulator is the uniform per-tick shape every PID variant can be
// bound to, so a caller (e.g. cmd/ctrlbench's scenario runner) can
// swap controller shapes without a type switch on every tick.
type Regulator func(errVal float64) float64

// BindPO binds a PO Param into a Regulator closure.
func BindPO(p PO) Regulator {
	return func(e float64) float64 { return ApplyPO(p, e) }
}

// BindPI binds a PI Param and its State into a Regulator closure.
func BindPI(p PI, s *StateI) Regulator {
	return func(e float64) float64 { return ApplyPI(p, s, e) }
}

// BindPD binds a PD Param and its State into a Regulator closure.
func BindPD(p PD, s *StateD) Regulator {
	return func(e float64) float64 { return ApplyPD(p, s, e) }
}

// BindPID binds a PID Param and its State into a Regulator closure.
func BindPID(p PID, s *StatePID) Regulator {
	return func(e float64) float64 { return ApplyPID(p, s, e) }
}

// BindLimitedPID binds an integral-limited PID into a Regulator.
func BindLimitedPID(p LimitedPID, s *StatePID) Regulator {
	return func(e float64) float64 { return ApplyLimitedPID(p, s, e) }
}

// BindCoupledPID binds a coupled PID into a Regulator.
func BindCoupledPID(p CoupledPID, s *StatePID) Regulator {
	return func(e float64) float64 { return ApplyCoupledPID(p, s, e) }
}
