package heater_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doismellburning/ctrlcore/plant/heater"
)

func TestStepMatchesDiscreteEquation(t *testing.T) {
	p, err := heater.MakeParam(500, 0.2, 2.0, 20.0)
	require.NoError(t, err)

	s := heater.State{T: 20.0}
	dt := 1.0
	heater.Step(p, &s, 10.0, dt)

	want := 20.0 + (dt/(500*0.2))*(10.0-(20.0-20.0)/2.0)
	assert.InDelta(t, want, s.T, 1e-12)
}

func TestSteadyStateWithZeroPowerStaysAtAmbient(t *testing.T) {
	p, err := heater.MakeParam(500, 0.2, 2.0, 22.5)
	require.NoError(t, err)

	s := heater.State{T: 22.5}
	for i := 0; i < 100; i++ {
		heater.Step(p, &s, 0, 1.0)
	}
	assert.InDelta(t, 22.5, s.T, 1e-9)
}

func TestMakeParamRejectsNonPositiveConstants(t *testing.T) {
	_, err := heater.MakeParam(0, 0.2, 2.0, 20.0)
	assert.Error(t, err)
	_, err = heater.MakeParam(500, 0, 2.0, 20.0)
	assert.Error(t, err)
	_, err = heater.MakeParam(500, 0.2, 0, 20.0)
	assert.Error(t, err)
}
