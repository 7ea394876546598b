package transform

import (
	"math"

	"github.com/doismellburning/ctrlcore/numeric/unit"
)

// ClarkeFwdUnit is ClarkeFwd's unit-tagged sibling: a Quantity[Volt]
// pair in yields a Quantity[Volt] pair out, per spec 4.2's carried
// unit. U is left free over any Unit so the same transform serves
// voltage, current, or flux inputs without duplication.
func ClarkeFwdUnit[U unit.Unit](a, b unit.Quantity[U]) (alpha, beta unit.Quantity[U]) {
	alpha = a
	sum := unit.Add(a, unit.Scale(b, 2))
	beta = unit.Scale(sum, 1/math.Sqrt(3))
	return alpha, beta
}

// ClarkeInvUnit is ClarkeInv2's unit-tagged sibling.
func ClarkeInvUnit[U unit.Unit](alpha, beta unit.Quantity[U]) (a, b unit.Quantity[U]) {
	a = alpha
	b = unit.Scale(unit.Add(unit.Scale(alpha, -1), unit.Scale(beta, math.Sqrt(3))), 0.5)
	return a, b
}
