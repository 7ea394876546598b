package filter

import "fmt"

// LQEParam holds the scalar steady-state Kalman design parameters:
// F (state transition), H (measurement), Q (process noise), R
// (measurement noise).
type LQEParam struct {
	F, H, Q, R float64
}

// LQEState holds the estimate and its error covariance.
type LQEState struct {
	XHat, P float64
}

// MakeLQEParam validates and builds an LQEParam; R must be positive
// or the Kalman gain's denominator can vanish.
func MakeLQEParam(f, h, q, r float64) (LQEParam, error) {
	if r <= 0 {
		return LQEParam{}, fmt.Errorf("filter: R must be positive, got %g", r)
	}
	return LQEParam{F: f, H: h, Q: q, R: r}, nil
}

// SetLQEParams updates p in place, validating R as MakeLQEParam does.
func SetLQEParams(p *LQEParam, f, h, q, r float64) error {
	np, err := MakeLQEParam(f, h, q, r)
	if err != nil {
		return err
	}
	*p = np
	return nil
}

// ResetLQE re-seeds the estimate and its covariance.
func ResetLQE(s *LQEState, x, p float64) {
	s.XHat = x
	s.P = p
}

// ApplyLQE runs predict / gain / update per spec 4.5:
//  1. predict:  xhat <- F*xhat;       P <- F^2*P + Q
//  2. gain:     K = H*P / (H^2*P + R)
//  3. update:   xhat <- xhat + K*(z - H*xhat);  P <- (1 - K*H)*P
func ApplyLQE(p LQEParam, s *LQEState, z float64) float64 {
	s.XHat = p.F * s.XHat
	s.P = p.F*p.F*s.P + p.Q

	k := p.H * s.P / (p.H*p.H*s.P + p.R)

	s.XHat = s.XHat + k*(z-p.H*s.XHat)
	s.P = (1 - k*p.H) * s.P

	return s.XHat
}
