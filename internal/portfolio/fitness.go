package portfolio

import "math"

// scoreEpsilon guards the objective's denominator against a division fault.
const scoreEpsilon = 1e-12

// Score rates a normalized weight vector against the universe.
//
// R is the allocation-weighted risk and G the allocation-weighted expected
// return. The objective 2*(1-R)*G / ((1-R)+G) rewards simultaneously low
// risk and high return, saturating toward 2 as R goes to 0 and G to 1.
// A degenerate denominator (R at 1 with G at 0) scores 0 rather than
// propagating a division fault.
//
// Score is pure: same weights and universe always produce the same value.
func (u Universe) Score(weights []float64) float64 {
	var r, g float64
	for i, a := range u {
		r += weights[i] * a.Risk
		g += weights[i] * a.ExpectedReturn
	}

	denom := (1 - r) + g
	if math.Abs(denom) < scoreEpsilon {
		return 0
	}
	return (2 * (1 - r) * g) / denom
}
