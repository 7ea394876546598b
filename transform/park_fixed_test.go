package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doismellburning/ctrlcore/numeric/fixed"
	"github.com/doismellburning/ctrlcore/transform"
)

func TestParkFwdFixedAgreesWithFloatPath(t *testing.T) {
	bounds, err := fixed.New(-10, 10)
	require.NoError(t, err)

	alpha, err := bounds.Lit(2.5)
	require.NoError(t, err)
	beta, err := bounds.Lit(-1.25)
	require.NoError(t, err)

	theta := 30 * math.Pi / 180
	s, c := math.Sin(theta), math.Cos(theta)

	d, q, err := transform.ParkFwdFixed(alpha, beta, s, c)
	require.NoError(t, err)

	wantD := 2.5*c + -1.25*s
	wantQ := -1.25*c - 2.5*s

	assert.InDelta(t, wantD, d.Float(), 0.5)
	assert.InDelta(t, wantQ, q.Float(), 0.5)
}

func TestParkFixedRoundTrip(t *testing.T) {
	bounds, err := fixed.New(-10, 10)
	require.NoError(t, err)

	d, err := bounds.Lit(1.5)
	require.NoError(t, err)
	q, err := bounds.Lit(-0.5)
	require.NoError(t, err)

	theta := 17 * math.Pi / 180
	s, c := math.Sin(theta), math.Cos(theta)

	alpha, beta, err := transform.ParkInvFixed(d, q, s, c)
	require.NoError(t, err)

	back1, back2, err := transform.ParkFwdFixed(alpha, beta, s, c)
	require.NoError(t, err)

	// Round trip through the fixed path loses precision at each
	// re-quantization step, so this checks the loop closes within the
	// same coarse tolerance used elsewhere in this file, not bit-exact
	// agreement.
	assert.InDelta(t, 1.5, back1.Float(), 1.0)
	assert.InDelta(t, -0.5, back2.Float(), 1.0)
}
