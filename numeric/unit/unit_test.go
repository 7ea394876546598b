package unit_test

import (
	"testing"

	"github.com/golang/geo/s1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doismellburning/ctrlcore/numeric/unit"
)

func TestConvertDegToRad(t *testing.T) {
	deg := unit.Of[unit.Deg](180)
	rad, err := unit.ConvertTo[unit.Deg, unit.Rad](deg)
	require.NoError(t, err)
	assert.InDelta(t, 3.14159265, rad.Raw(), 1e-6)
}

func TestConvertRejectsMismatchedClass(t *testing.T) {
	v := unit.Of[unit.Volt](5)
	_, err := unit.ConvertTo[unit.Volt, unit.Ohm](v)
	assert.Error(t, err)
}

func TestPiKProducesKPi(t *testing.T) {
	q := unit.PiK[unit.Rad](2)
	assert.InDelta(t, 2*3.14159265, q.Raw(), 1e-6)
}

func TestMilliOhmScale(t *testing.T) {
	mohm := unit.Of[unit.MilliOhm](500)
	ohm, err := unit.ConvertTo[unit.MilliOhm, unit.Ohm](mohm)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, ohm.Raw(), 1e-9)
}

func TestClassAlgebraVoltsFromOhmAmp(t *testing.T) {
	r := unit.Of[unit.Ohm](10)
	i := unit.Of[unit.Amp](2)
	v := unit.VoltsFromOhmAmp(r, i)
	assert.InDelta(t, 20, v.Raw(), 1e-9)
}

// Cross-check this package's radian convention against golang/geo's
// s1.Angle, which is also radian-canonical.
func TestRadMatchesS1AngleConvention(t *testing.T) {
	deg := unit.Of[unit.Deg](90)
	rad, err := unit.ConvertTo[unit.Deg, unit.Rad](deg)
	require.NoError(t, err)

	s1a := s1.Angle(rad.Raw())
	assert.InDelta(t, 90.0, s1a.Degrees(), 1e-9)
}
