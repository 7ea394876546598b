package transform

import (
	"math"

	"github.com/doismellburning/ctrlcore/cheby"
	"github.com/doismellburning/ctrlcore/numeric/vec"
)

// ParkFwd rotates alpha-beta by theta into the co-rotating d-q frame.
// cos(theta) is computed as sin(pi/2 - theta) through the caller's sin
// evaluator, so only one polynomial family is needed (spec 4.7).
func ParkFwd(ab vec.Vec2[float64], theta float64, sinFn cheby.TrigApprox) vec.Vec2[float64] {
	alpha, beta := ab[0], ab[1]
	s := sinFn.Eval(theta)
	c := sinFn.Eval(math.Pi/2 - theta)
	d := alpha*c + beta*s
	q := beta*c - alpha*s
	return vec.New2(d, q)
}

// ParkInv rotates d-q back to alpha-beta by -theta.
func ParkInv(dq vec.Vec2[float64], theta float64, sinFn cheby.TrigApprox) vec.Vec2[float64] {
	d, q := dq[0], dq[1]
	s := sinFn.Eval(theta)
	c := sinFn.Eval(math.Pi/2 - theta)
	alpha := d*c - q*s
	beta := q*c + d*s
	return vec.New2(alpha, beta)
}
