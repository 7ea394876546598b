// Package swm implements classical sine-wave (sinusoidal) PWM
// modulation, spec 4.9's swm(S, [N])(phi) for N in {1, 2, 3}.
package swm

import (
	"fmt"
	"math"

	"github.com/doismellburning/ctrlcore/cheby"
)

// Apply emits channels sin evaluations of phi: [S(phi)] for one channel, [S(phi), S(phi+pi/2)] for two, or
// the balanced three-phase [S(phi), S(phi+2*pi/3), S(phi-2*pi/3)] for
// three. In the three-channel case a+b+c is zero within the sin
// evaluator's polynomial precision (spec 8 invariant 3).
func Apply(phi float64, channels int, sinFn cheby.TrigApprox) ([]float64, error) {
	switch channels {
	case 1:
		return []float64{sinFn.Eval(phi)}, nil
	case 2:
		return []float64{sinFn.Eval(phi), sinFn.Eval(phi + math.Pi/2)}, nil
	case 3:
		return []float64{
			sinFn.Eval(phi),
			sinFn.Eval(phi + 2*math.Pi/3),
			sinFn.Eval(phi - 2*math.Pi/3),
		}, nil
	default:
		return nil, fmt.Errorf("swm: channels must be 1, 2, or 3, got %d", channels)
	}
}
