package osc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doismellburning/ctrlcore/numeric/unit"
	"github.com/doismellburning/ctrlcore/osc"
)

func TestApplyAdvancesAndWraps(t *testing.T) {
	p, err := osc.MakeParam[unit.Rev](0.001, 50) // 50 Hz, 1ms tick
	require.NoError(t, err)

	var s osc.State
	var last float64
	for i := 0; i < 5000; i++ {
		last = osc.Apply(p, &s)
		assert.GreaterOrEqual(t, last, 0.0)
		assert.Less(t, last, 2*math.Pi)
	}
	_ = last
}

// Invariant (spec 8, #8): OSC phase after N = round(period/delta-phi)
// steps is within delta-phi of the starting phase.
func TestPhaseReturnsNearStartAfterFullPeriod(t *testing.T) {
	p, err := osc.MakeParam[unit.Rev](0.001, 50)
	require.NoError(t, err)

	var s osc.State
	osc.Reset(&s, 0.3)
	start := osc.Phase(&s)

	deltaPhi := 50 * 0.001 * 2 * math.Pi
	n := int(math.Round((2 * math.Pi) / deltaPhi))

	for i := 0; i < n; i++ {
		osc.Apply(p, &s)
	}

	diff := math.Abs(osc.Phase(&s) - start)
	if diff > math.Pi {
		diff = 2*math.Pi - diff
	}
	assert.LessOrEqual(t, diff, deltaPhi+1e-9)
}

func TestMakeParamRejectsNonPositiveDt(t *testing.T) {
	_, err := osc.MakeParam[unit.Rev](0, 50)
	assert.Error(t, err)
}
