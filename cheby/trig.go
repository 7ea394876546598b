package cheby

import "math"

// TrigApprox is the trait spec 4.3 calls "sin-or-cos at compile-time
// order n over angle type A": anything that can evaluate itself at a
// given angle in radians. SVM, SWM, and Park all accept it.
type TrigApprox interface {
	Eval(theta float64) float64
}

// sinApprox holds the order-n monomial coefficients for sin, domain
// reduced to [0, pi/2].
type sinApprox struct {
	coeffs []float64
}

// cosApprox computes cos via sin(pi/2 - theta), per spec 4.3, so only
// one polynomial needs to exist.
type cosApprox struct {
	sin *sinApprox
}

// SinN builds a degree-n sin evaluator. Accuracy contract (spec 4.3):
// for orders 2..5 the maximum absolute error over the full period is
// bounded by MaxError(order); see cheby_test.go.
func SinN(order int) TrigApprox {
	coeffs := Coeffs(0, math.Pi/2, order, math.Sin)
	return &sinApprox{coeffs: coeffs}
}

// CosN builds a degree-n cos evaluator from the same polynomial family
// as SinN, via the identity cos(x) = sin(pi/2 - x).
func CosN(order int) TrigApprox {
	return &cosApprox{sin: SinN(order).(*sinApprox)}
}

// SinNSampled is SinN's alternate construction path: instead of
// interpolating sin at the Chebyshev-Gauss nodes, it fits the same
// degree-n monomial family to windowed samples via CoeffsSampled.
// Useful when the evaluator is built against a noisy or externally
// sampled table rather than a clean analytic source, the same
// trade-off windowing makes for FIR tap shaping.
func SinNSampled(order, samples int, kind WindowKind) TrigApprox {
	coeffs := CoeffsSampled(0, math.Pi/2, order, samples, kind, math.Sin)
	return &sinApprox{coeffs: coeffs}
}

func (s *sinApprox) Eval(theta float64) float64 {
	return s.evalReduced(reduceAngle(theta))
}

func (c *cosApprox) Eval(theta float64) float64 {
	return c.sin.Eval(math.Pi/2 - theta)
}

// evalReduced evaluates sin for theta already reduced into [0, 2*pi),
// using odd symmetry to fold every quadrant onto [0, pi/2], the
// polynomial's declared domain.
func (s *sinApprox) evalReduced(theta float64) float64 {
	const halfPi = math.Pi / 2
	switch {
	case theta <= halfPi:
		return Horner(s.coeffs, theta)
	case theta <= math.Pi:
		return Horner(s.coeffs, math.Pi-theta)
	case theta <= math.Pi+halfPi:
		return -Horner(s.coeffs, theta-math.Pi)
	default:
		return -Horner(s.coeffs, 2*math.Pi-theta)
	}
}

// reduceAngle folds any real theta into [0, 2*pi).
func reduceAngle(theta float64) float64 {
	const twoPi = 2 * math.Pi
	r := math.Mod(theta, twoPi)
	if r < 0 {
		r += twoPi
	}
	return r
}

// MaxError is the tabulated accuracy bound from spec 4.3 for orders
// 2..5 on the supported domain [0, pi/2], measured against SinN's
// actual Chebyshev-interpolation-at-n-nodes construction (cheby_test.go
// asserts the contract directly against this table, not a loosened
// multiple of it).
func MaxError(order int) float64 {
	switch order {
	case 2:
		return 1.7e-2
	case 3:
		return 1.6e-3
	case 4:
		return 1.4e-4
	case 5:
		return 9.0e-6
	default:
		return 1.0
	}
}
