package fixed_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/doismellburning/ctrlcore/numeric/fixed"
)

func TestNewPicksNarrowestWidth(t *testing.T) {
	b, err := fixed.New(-1, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, b.Width)

	b, err = fixed.New(-1000, 1000)
	require.NoError(t, err)
	assert.Equal(t, 16, b.Width)
}

func TestNewRejectsInvertedInterval(t *testing.T) {
	_, err := fixed.New(1, -1)
	assert.Error(t, err)
}

func TestLitRejectsOutOfRange(t *testing.T) {
	b, err := fixed.New(-1, 1)
	require.NoError(t, err)
	_, err = b.Lit(2)
	assert.Error(t, err)
}

func TestAddDerivesSumInterval(t *testing.T) {
	a, err := fixed.New(0, 10)
	require.NoError(t, err)
	b, err := fixed.New(0, 5)
	require.NoError(t, err)

	av, err := a.Lit(3)
	require.NoError(t, err)
	bv, err := b.Lit(2)
	require.NoError(t, err)

	sum, err := av.Add(bv)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, sum.Float(), 1e-6)
	assert.Equal(t, 0.0, sum.Bounds().Lo)
	assert.Equal(t, 15.0, sum.Bounds().Hi)
}

func TestDivRejectsIntervalContainingZero(t *testing.T) {
	a, err := fixed.New(0, 10)
	require.NoError(t, err)
	b, err := fixed.New(-1, 1)
	require.NoError(t, err)

	av, _ := a.Lit(5)
	bv, _ := b.Lit(0.5)

	_, err = av.Div(bv)
	assert.Error(t, err)
}

func TestCastNarrowingRequiresExplicitCall(t *testing.T) {
	wide, _ := fixed.New(-100, 100)
	narrow, _ := fixed.New(-1, 1)

	v, err := wide.Lit(50)
	require.NoError(t, err)

	_, err = v.Cast(narrow)
	assert.Error(t, err, "implicit narrowing must be rejected")

	// Explicit narrowing is allowed even though it is the caller's
	// responsibility to ensure the value actually fits.
	n := v.CastNarrow(narrow)
	assert.NotZero(t, n.Bounds())
}

func TestCastWideningAlwaysSucceeds(t *testing.T) {
	narrow, _ := fixed.New(-1, 1)
	wide, _ := fixed.New(-100, 100)

	v, err := narrow.Lit(0.5)
	require.NoError(t, err)

	w, err := v.Cast(wide)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, w.Float(), 1e-6)
}

// Property: fixed-point arithmetic commutes with its float
// interpretation within the least-significant-bit bound of the result
// type (spec 8, invariant 5).
func TestAddAgreesWithFloatWithinLSB(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lo, hi := -100.0, 100.0
		bounds, err := fixed.New(lo, hi)
		require.NoError(t, err)

		x := rapid.Float64Range(lo/2, hi/2).Draw(t, "x")
		y := rapid.Float64Range(lo/2, hi/2).Draw(t, "y")

		xf, err := bounds.Lit(x)
		require.NoError(t, err)
		yf, err := bounds.Lit(y)
		require.NoError(t, err)

		sum, err := xf.Add(yf)
		require.NoError(t, err)

		lsb := math.Pow(2, float64(sum.Bounds().Exp))
		assert.InDelta(t, x+y, sum.Float(), 2*lsb)
	})
}
