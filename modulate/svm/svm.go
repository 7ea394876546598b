// Package svm implements three-phase space-vector modulation (spec
// 4.9): higher DC-bus utilization than sine-wave modulation by
// exploiting the redundancy of the zero vector.
package svm

import (
	"math"

	"github.com/doismellburning/ctrlcore/cheby"
)

const sectorWidth = math.Pi / 3

// sectorTable holds, per sector, the output positions of a, b, c --
// the fixed 6-entry table from spec 4.9.
var sectorTable = [6][3]int{
	{2, 0, 1},
	{2, 1, 0},
	{0, 1, 2},
	{0, 2, 1},
	{1, 2, 0},
	{1, 0, 2},
}

// Apply computes one sample of 3-phase SVM at angle phi using the
// packed permutation table.
func Apply(phi float64, sinFn cheby.TrigApprox) [3]float64 {
	s, phiLocal := sector(phi)
	dx, dy := subAngles(phiLocal, sinFn)

	a := dx + dy
	b := -a
	var c float64
	if s%2 == 1 {
		c = b + 2*dy
	} else {
		c = b + 2*dx
	}

	t := sectorTable[s]
	var out [3]float64
	out[t[0]] = a
	out[t[1]] = b
	out[t[2]] = c
	return out
}

// ApplyArith is spec 9's "arithmetic derivation" alternative to the
// packed permutation table: the same permutation, computed from the
// sector index instead of looked up. Open Question 2 in spec 9 asks
// whether the two dispatches agree; svm_test.go checks they do for
// every sector.
func ApplyArith(phi float64, sinFn cheby.TrigApprox) [3]float64 {
	s, phiLocal := sector(phi)
	dx, dy := subAngles(phiLocal, sinFn)

	a := dx + dy
	b := -a
	var c float64
	if s%2 == 1 {
		c = b + 2*dy
	} else {
		c = b + 2*dx
	}

	posA, posB, posC := arithPositions(s)
	var out [3]float64
	out[posA] = a
	out[posB] = b
	out[posC] = c
	return out
}

// arithPositions derives the same permutation as sectorTable without
// a lookup table.
func arithPositions(s int) (posA, posB, posC int) {
	half := s / 2
	posA = ((half - 1) % 3 + 3) % 3
	if s%2 == 0 {
		posB = half % 3
	} else {
		posB = (half + 1) % 3
	}
	posC = 3 - posA - posB
	return posA, posB, posC
}

func sector(phi float64) (s int, phiLocal float64) {
	twoPi := 2 * math.Pi
	r := math.Mod(phi, twoPi)
	if r < 0 {
		r += twoPi
	}
	s = int(r / sectorWidth)
	if s > 5 {
		s = 5
	}
	phiLocal = r - float64(s)*sectorWidth
	return s, phiLocal
}

func subAngles(phiLocal float64, sinFn cheby.TrigApprox) (dx, dy float64) {
	dx = sinFn.Eval(sectorWidth - phiLocal)
	dy = sinFn.Eval(phiLocal)
	return dx, dy
}
