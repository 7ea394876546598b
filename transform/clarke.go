// Package transform implements the Clarke and Park coordinate
// transforms (spec 4.7).
package transform

import (
	"math"

	"github.com/doismellburning/ctrlcore/numeric/vec"
)

// ClarkeFwd projects three-phase (a, b, c) onto the alpha-beta frame.
// The C component is ignored when present, per spec.
func ClarkeFwd(abc vec.Vec3[float64]) vec.Vec2[float64] {
	a, b := abc[0], abc[1]
	alpha := a
	beta := (a + 2*b) / math.Sqrt(3)
	return vec.New2(alpha, beta)
}

// ClarkeInv3 recovers the three-phase (a, b, c) from alpha-beta.
func ClarkeInv3(ab vec.Vec2[float64]) vec.Vec3[float64] {
	alpha, beta := ab[0], ab[1]
	a := alpha
	b := (-alpha + math.Sqrt(3)*beta) / 2
	c := (-alpha - math.Sqrt(3)*beta) / 2
	return vec.New3(a, b, c)
}

// ClarkeInv2 is ClarkeInv3 with the C phase omitted, for callers whose
// target is a 2-component vector.
func ClarkeInv2(ab vec.Vec2[float64]) vec.Vec2[float64] {
	alpha, beta := ab[0], ab[1]
	a := alpha
	b := (-alpha + math.Sqrt(3)*beta) / 2
	return vec.New2(a, b)
}
