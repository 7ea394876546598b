package cheby

import "math"

// WindowKind mirrors the shapes the teacher's dsp.go window() function
// supports for FIR filter tap shaping; here they shape the sample set
// an alternate Chebyshev builder (CoeffsSampled) draws from.
type WindowKind int

const (
	WindowTruncated WindowKind = iota
	WindowCosine
	WindowHamming
	WindowBlackman
	WindowFlattop
)

// Window returns the window-shape multiplier for tap j of size taps,
// ported from the teacher's dsp.go window(), generalized from audio
// FIR coefficient shaping to sample weighting for CoeffsSampled.
func Window(kind WindowKind, taps, j int) float64 {
	size := float64(taps)
	jf := float64(j)
	center := 0.5 * (size - 1)

	switch kind {
	case WindowCosine:
		return math.Cos((jf - center) / size * math.Pi)
	case WindowHamming:
		return 0.53836 - 0.46164*math.Cos((jf*2*math.Pi)/(size-1))
	case WindowBlackman:
		return 0.42659 - 0.49656*math.Cos((jf*2*math.Pi)/(size-1)) +
			0.076849*math.Cos((jf*4*math.Pi)/(size-1))
	case WindowFlattop:
		return 1.0 - 1.93*math.Cos((jf*2*math.Pi)/(size-1)) +
			1.29*math.Cos((jf*4*math.Pi)/(size-1)) -
			0.388*math.Cos((jf*6*math.Pi)/(size-1)) +
			0.028*math.Cos((jf*8*math.Pi)/(size-1))
	case WindowTruncated:
		fallthrough
	default:
		return 1.0
	}
}

// CoeffsSampled is an alternate builder to Coeffs: it fits the
// monomial polynomial to windowed samples of f over [a, b] rather than
// Chebyshev-Gauss nodes, by solving the weighted-least-squares normal
// equations for the Chebyshev basis against those samples. Useful when
// f is noisy or only known at non-Chebyshev sample points, the same
// motivation the teacher has for windowing FIR taps instead of using a
// brick-wall sinc.
//
// Uniformly spaced samples are not orthogonal under the Chebyshev
// basis the way the Gauss nodes Coeffs uses are, so each basis
// coefficient cannot be solved independently; the Gram matrix below is
// small (order+1 square) and solved directly by Gauss-Jordan
// elimination rather than reaching for a linear-algebra dependency.
func CoeffsSampled(a, b float64, order int, samples int, kind WindowKind, f func(float64) float64) []float64 {
	n := order + 1

	m := 2 / (b - a)
	c := -(a + b) / (b - a)

	basisPolys := make([][]float64, n)
	basisPolys[0] = []float64{1}
	if n > 1 {
		basisPolys[1] = []float64{c, m}
	}
	for k := 2; k < n; k++ {
		basisPolys[k] = polySub(polyScale(polyMulLinear(basisPolys[k-1], m, c), 2), basisPolys[k-2])
	}

	xs := make([]float64, samples)
	weights := make([]float64, samples)
	for i := 0; i < samples; i++ {
		frac := float64(i) / float64(samples-1)
		xs[i] = a + frac*(b-a)
		weights[i] = Window(kind, samples, i)
	}

	basisVals := make([][]float64, n)
	for k := 0; k < n; k++ {
		basisVals[k] = make([]float64, samples)
		for i := 0; i < samples; i++ {
			basisVals[k][i] = Horner(basisPolys[k], xs[i])
		}
	}

	gram := make([][]float64, n)
	rhs := make([]float64, n)
	for k := 0; k < n; k++ {
		gram[k] = make([]float64, n)
		for l := 0; l < n; l++ {
			var sum float64
			for i := 0; i < samples; i++ {
				sum += weights[i] * basisVals[k][i] * basisVals[l][i]
			}
			gram[k][l] = sum
		}
		var sum float64
		for i := 0; i < samples; i++ {
			sum += weights[i] * f(xs[i]) * basisVals[k][i]
		}
		rhs[k] = sum
	}

	basisCoeffs := solveLinear(gram, rhs)

	result := make([]float64, n)
	for k := 0; k < n; k++ {
		result = polyAdd(result, polyScale(basisPolys[k], basisCoeffs[k]))
	}

	return result
}

// solveLinear solves a*x = b for a small dense a via Gauss-Jordan
// elimination with partial pivoting. a is square; both are left
// unmodified by use of local copies.
func solveLinear(a [][]float64, b []float64) []float64 {
	n := len(b)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n+1)
		copy(m[i], a[i])
		m[i][n] = b[i]
	}

	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		m[col], m[pivot] = m[pivot], m[col]

		pivotVal := m[col][col]
		if pivotVal == 0 {
			continue
		}
		for j := col; j <= n; j++ {
			m[col][j] /= pivotVal
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := m[r][col]
			for j := col; j <= n; j++ {
				m[r][j] -= factor * m[col][j]
			}
		}
	}

	x := make([]float64, n)
	for i := range x {
		x[i] = m[i][n]
	}
	return x
}
