package transform

import "github.com/doismellburning/ctrlcore/numeric/fixed"

var trigLitBounds, _ = fixed.New(-1, 1)

// ParkFwdFixed is ParkFwd's fixed-point sibling. sinTheta and cosTheta
// are folded in as narrow-interval literals the way ClarkeFwdFixed
// folds in 1/sqrt(3): the rotation angle varies per call, but the two
// evaluated trig values are compile-time-real as far as the
// multiplies that consume them are concerned, so Lit is the right
// tool rather than re-deriving a fixed-point sin/cos evaluator.
func ParkFwdFixed(alpha, beta fixed.Fixed, sinTheta, cosTheta float64) (d, q fixed.Fixed, err error) {
	s, err := trigLitBounds.Lit(sinTheta)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}
	c, err := trigLitBounds.Lit(cosTheta)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}

	alphaC, err := alpha.Mul(c)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}
	betaS, err := beta.Mul(s)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}
	d, err = alphaC.Add(betaS)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}

	betaC, err := beta.Mul(c)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}
	alphaS, err := alpha.Mul(s)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}
	q, err = betaC.Sub(alphaS)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}

	return d, q, nil
}

// ParkInvFixed is ParkInv's fixed-point sibling, rotating d-q back to
// alpha-beta by the same (sinTheta, cosTheta) pair ParkFwdFixed used.
func ParkInvFixed(d, q fixed.Fixed, sinTheta, cosTheta float64) (alpha, beta fixed.Fixed, err error) {
	s, err := trigLitBounds.Lit(sinTheta)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}
	c, err := trigLitBounds.Lit(cosTheta)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}

	dC, err := d.Mul(c)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}
	qS, err := q.Mul(s)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}
	alpha, err = dC.Sub(qS)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}

	qC, err := q.Mul(c)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}
	dS, err := d.Mul(s)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}
	beta, err = qC.Add(dS)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}

	return alpha, beta, nil
}
