package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doismellburning/ctrlcore/filter"
)

// S1: EMA float scenario from spec 8.
func TestEMAScenarioS1(t *testing.T) {
	p, err := filter.EMAFromAlpha(0.5)
	require.NoError(t, err)

	var s filter.EMAState
	filter.EMAReset(&s, 0)

	want := []float64{0.5, 0.75, 0.875, 0.9375}
	for i, x := range []float64{1, 1, 1, 1} {
		got := filter.EMAApply(p, &s, x)
		assert.InDelta(t, want[i], got, 1e-9)
	}
}

// Invariant 6: EMA with alpha=1 is passthrough.
func TestEMAAlphaOnePassthrough(t *testing.T) {
	p, err := filter.EMAFromAlpha(1.0)
	require.NoError(t, err)

	var s filter.EMAState
	filter.EMAReset(&s, 42)

	assert.Equal(t, 7.0, filter.EMAApply(p, &s, 7))
	assert.Equal(t, -3.0, filter.EMAApply(p, &s, -3))
}

func TestEMAFromSamplesMatchesFormula(t *testing.T) {
	p, err := filter.EMAFromSamples(9)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, p.Alpha, 1e-9) // 2/(9+1)
}

func TestEMARejectsOutOfRangeAlpha(t *testing.T) {
	_, err := filter.EMAFromAlpha(0)
	assert.Error(t, err)
	_, err = filter.EMAFromAlpha(1.5)
	assert.Error(t, err)
}

func TestLQEConvergesTowardConstantMeasurement(t *testing.T) {
	p, err := filter.MakeLQEParam(1, 1, 0.01, 1)
	require.NoError(t, err)

	var s filter.LQEState
	filter.ResetLQE(&s, 0, 1)

	var last float64
	for i := 0; i < 200; i++ {
		last = filter.ApplyLQE(p, &s, 10)
	}
	assert.InDelta(t, 10, last, 0.5)
}

func TestMakeLQEParamRejectsNonPositiveR(t *testing.T) {
	_, err := filter.MakeLQEParam(1, 1, 0.1, 0)
	assert.Error(t, err)
}
