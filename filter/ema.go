// Package filter implements the EMA low-pass filter and the scalar
// steady-state Kalman (LQE) filter from spec 4.4 and 4.5.
package filter

import "fmt"

// EMAParam holds the single derived smoothing coefficient alpha.
type EMAParam struct {
	Alpha float64
}

// EMAState holds the filter's last output, zero-initialized per spec's
// "zero history" default.
type EMAState struct {
	Y float64
}

func checkAlpha(alpha float64) error {
	if alpha <= 0 || alpha > 1 {
		return fmt.Errorf("filter: alpha must be in (0, 1], got %g", alpha)
	}
	return nil
}

// EMAFromAlpha builds a Param directly from alpha in (0, 1].
func EMAFromAlpha(alpha float64) (EMAParam, error) {
	if err := checkAlpha(alpha); err != nil {
		return EMAParam{}, err
	}
	return EMAParam{Alpha: alpha}, nil
}

// EMAFromSamples derives alpha = 2/(N+1) for an N-sample moving window.
func EMAFromSamples(n int) (EMAParam, error) {
	if n < 1 {
		return EMAParam{}, fmt.Errorf("filter: samples must be >= 1, got %d", n)
	}
	return EMAFromAlpha(2 / (float64(n) + 1))
}

// EMAFromTime derives alpha = dt/(dt+tau) for a time-constant design,
// the small-dt simplification of alpha = 1 - exp(-dt/tau) spec 4.4
// names.
func EMAFromTime(tau, dt float64) (EMAParam, error) {
	if tau <= 0 || dt <= 0 {
		return EMAParam{}, fmt.Errorf("filter: tau and dt must be positive, got tau=%g dt=%g", tau, dt)
	}
	return EMAFromAlpha(dt / (dt + tau))
}

// EMAFromPT1 derives alpha = dt/(dt+T) for a first-order-lag design.
func EMAFromPT1(tLag, dt float64) (EMAParam, error) {
	return EMAFromTime(tLag, dt)
}

// EMAApply updates and returns the new output:
// y[k] = y[k-1] + alpha*(x[k] - y[k-1]).
func EMAApply(p EMAParam, s *EMAState, x float64) float64 {
	s.Y += p.Alpha * (x - s.Y)
	return s.Y
}

// EMAReset re-seeds the filter's output to value.
func EMAReset(s *EMAState, value float64) {
	s.Y = value
}

// EMASetWindow recomputes alpha from a desired time constant.
func EMASetWindow(p *EMAParam, tau, dt float64) error {
	np, err := EMAFromTime(tau, dt)
	if err != nil {
		return err
	}
	p.Alpha = np.Alpha
	return nil
}
