package cheby_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/doismellburning/ctrlcore/cheby"
)

func TestHornerEvaluatesConstant(t *testing.T) {
	assert.Equal(t, 5.0, cheby.Horner([]float64{5}, 100))
}

func TestHornerEvaluatesLinear(t *testing.T) {
	// p(x) = 2 + 3x
	assert.InDelta(t, 11.0, cheby.Horner([]float64{2, 3}, 3), 1e-9)
}

func TestCoeffsApproximatesSquare(t *testing.T) {
	coeffs := cheby.Coeffs(-1, 1, 4, func(x float64) float64 { return x * x })
	for _, x := range []float64{-1, -0.5, 0, 0.5, 1} {
		assert.InDelta(t, x*x, cheby.Horner(coeffs, x), 1e-6)
	}
}

func TestSinNWithinAccuracyContract(t *testing.T) {
	for order := 2; order <= 5; order++ {
		s := cheby.SinN(order)
		maxErr := 0.0
		for i := 0; i <= 1000; i++ {
			theta := float64(i) / 1000 * math.Pi / 2
			err := math.Abs(s.Eval(theta) - math.Sin(theta))
			if err > maxErr {
				maxErr = err
			}
		}
		assert.LessOrEqualf(t, maxErr, cheby.MaxError(order), "order %d exceeded tolerance: %v", order, maxErr)
	}
}

func TestCosNMatchesSinShiftedByHalfPi(t *testing.T) {
	c := cheby.CosN(5)
	rapid.Check(t, func(t *rapid.T) {
		theta := rapid.Float64Range(0, 2*math.Pi).Draw(t, "theta")
		assert.InDelta(t, math.Cos(theta), c.Eval(theta), 2e-3)
	})
}

func TestSinNSampledApproximatesSin(t *testing.T) {
	s := cheby.SinNSampled(5, 64, cheby.WindowHamming)
	for _, theta := range []float64{0, 0.3, 0.78, 1.2, math.Pi/2 - 0.01} {
		assert.InDelta(t, math.Sin(theta), s.Eval(theta), 5e-3)
	}
}

func TestWindowTruncatedIsFlat(t *testing.T) {
	for j := 0; j < 8; j++ {
		assert.Equal(t, 1.0, cheby.Window(cheby.WindowTruncated, 8, j))
	}
}

func TestWindowHammingTapersTowardEdges(t *testing.T) {
	center := cheby.Window(cheby.WindowHamming, 9, 4)
	edge := cheby.Window(cheby.WindowHamming, 9, 0)
	assert.Greater(t, center, edge)
}

func TestSinNHandlesFullPeriod(t *testing.T) {
	s := cheby.SinN(5)
	rapid.Check(t, func(t *rapid.T) {
		theta := rapid.Float64Range(-4*math.Pi, 4*math.Pi).Draw(t, "theta")
		assert.InDelta(t, math.Sin(theta), s.Eval(theta), 2e-3)
	})
}
