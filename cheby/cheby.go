// Package cheby builds Chebyshev polynomial approximations of
// transcendental functions on a closed interval, and evaluates them
// with Horner's scheme (spec 4.3). Go has no constexpr, so the
// "compile-time constant coefficients" requirement degenerates to
// "computed once, at package init or the first call to a builder, and
// never touched again" -- the coefficients themselves, and the
// accuracy they deliver, are unaffected.
package cheby

import "math"

// Coeffs returns the monomial-basis coefficients (ascending powers,
// length order+1) of the order-n Chebyshev interpolant of f on [a, b].
func Coeffs(a, b float64, order int, f func(float64) float64) []float64 {
	n := order + 1
	result := make([]float64, n)

	nodes := make([]float64, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		t := math.Cos(math.Pi * (float64(i) + 0.5) / float64(n))
		x := 0.5*(b-a)*t + 0.5*(b+a)
		nodes[i] = t
		values[i] = f(x)
	}

	m := 2 / (b - a)
	c := -(a + b) / (b - a)

	tPrev := []float64{1} // T_0(x) = 1
	tCur := []float64{c, m} // T_1(x) = m*x + c

	for k := 0; k < n; k++ {
		ck := chebyCoeff(k, n, nodes, values)

		var tk []float64
		switch k {
		case 0:
			tk = tPrev
		case 1:
			tk = tCur
		default:
			tk = polySub(polyScale(polyMulLinear(tCur, m, c), 2), tPrev)
			tPrev, tCur = tCur, tk
		}

		result = polyAdd(result, polyScale(tk, ck))
	}

	return result
}

// chebyCoeff computes c_k via Chebyshev-Gauss quadrature over the n
// interpolation nodes, halving c_0 per the standard DCT-II normalization.
func chebyCoeff(k, n int, nodes, values []float64) float64 {
	sum := 0.0
	for i := 0; i < n; i++ {
		tk := math.Cos(float64(k) * math.Acos(clamp(nodes[i])))
		sum += values[i] * tk
	}
	c := (2.0 / float64(n)) * sum
	if k == 0 {
		c /= 2
	}
	return c
}

func clamp(t float64) float64 {
	if t > 1 {
		return 1
	}
	if t < -1 {
		return -1
	}
	return t
}

// Horner evaluates a monomial-basis polynomial (ascending powers) at x.
func Horner(coeffs []float64, x float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	acc := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		acc = acc*x + coeffs[i]
	}
	return acc
}

func polyAdd(a, b []float64) []float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]float64, n)
	copy(out, a)
	for i, v := range b {
		out[i] += v
	}
	return out
}

func polySub(a, b []float64) []float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]float64, n)
	copy(out, a)
	for i, v := range b {
		out[i] -= v
	}
	return out
}

func polyScale(a []float64, k float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = v * k
	}
	return out
}

// polyMulLinear multiplies polynomial a by (m*x + c).
func polyMulLinear(a []float64, m, c float64) []float64 {
	out := make([]float64, len(a)+1)
	for i, v := range a {
		out[i] += v * c
		out[i+1] += v * m
	}
	return out
}
