// Package scale provides the value scaling and clamp helpers spec 6
// lists as an L2 utility, including the +-10000 integer scaling the
// C-ABI boundary (spec 6) uses at each side of an x_ fixed-point entry
// point.
package scale

import "golang.org/x/exp/constraints"

// Clamp confines v to [lo, hi] -- spec 7's explicit, caller-opted-into
// clamp operation.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp maps v linearly from [inLo, inHi] to [outLo, outHi].
func Lerp(v, inLo, inHi, outLo, outHi float64) float64 {
	if inHi == inLo {
		return outLo
	}
	t := (v - inLo) / (inHi - inLo)
	return outLo + t*(outHi-outLo)
}

const abiScale = 10000

// ToScaled10000 maps v in [lo, hi] onto the integer range
// [-10000, +10000] the demo front-end's fixed-point ABI uses (spec 6).
func ToScaled10000(v, lo, hi float64) int32 {
	return int32(Lerp(v, lo, hi, -abiScale, abiScale))
}

// FromScaled10000 is the inverse of ToScaled10000.
func FromScaled10000(s int32, lo, hi float64) float64 {
	return Lerp(float64(s), -abiScale, abiScale, lo, hi)
}
