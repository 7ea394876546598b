package transform

import (
	"math"

	"github.com/doismellburning/ctrlcore/numeric/fixed"
)

var (
	twoBounds, _      = fixed.New(0, 2)
	halfBounds, _     = fixed.New(0, 1)
	sqrt3Bounds, _    = fixed.New(0, 2)
	invSqrt3Bounds, _ = fixed.New(0, 1)
)

// ClarkeFwdFixed is ClarkeFwd's fixed-point sibling: the constant
// 1/sqrt(3) is folded in as a narrow-interval literal and multiplied
// through, widening per spec 4.1's multiply rule.
func ClarkeFwdFixed(a, b fixed.Fixed) (alpha, beta fixed.Fixed, err error) {
	alpha = a

	twoLit, err := twoBounds.Lit(2)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}

	twoB, err := b.Mul(twoLit)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}

	sum, err := a.Add(twoB)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}

	invSqrt3, err := invSqrt3Bounds.Lit(1 / math.Sqrt(3))
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}

	beta, err = sum.Mul(invSqrt3)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, err
	}
	return alpha, beta, nil
}

// ClarkeInvFixed is ClarkeInv3's fixed-point sibling: b and c are
// recovered as (-alpha +/- sqrt(3)*beta)/2, with sqrt(3) and 1/2
// folded in as narrow-interval literals per spec 4.1's multiply rule.
func ClarkeInvFixed(alpha, beta fixed.Fixed) (a, b, c fixed.Fixed, err error) {
	a = alpha

	negAlpha, err := alpha.Neg()
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, fixed.Fixed{}, err
	}

	sqrt3Lit, err := sqrt3Bounds.Lit(math.Sqrt(3))
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, fixed.Fixed{}, err
	}

	sqrt3Beta, err := beta.Mul(sqrt3Lit)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, fixed.Fixed{}, err
	}

	halfLit, err := halfBounds.Lit(0.5)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, fixed.Fixed{}, err
	}

	bSum, err := negAlpha.Add(sqrt3Beta)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, fixed.Fixed{}, err
	}
	b, err = bSum.Mul(halfLit)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, fixed.Fixed{}, err
	}

	cDiff, err := negAlpha.Sub(sqrt3Beta)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, fixed.Fixed{}, err
	}
	c, err = cDiff.Mul(halfLit)
	if err != nil {
		return fixed.Fixed{}, fixed.Fixed{}, fixed.Fixed{}, err
	}

	return a, b, c, nil
}
