package survey

import "math"

// AgreementScore is the headline number of a distribution: the share of
// respondents that agree or strongly agree. No validation is applied.
func AgreementScore(d Distribution) float64 {
	return d.Agree + d.StronglyAgree
}

// RoundHalfUp rounds to the nearest integer, halves going up (2.5 -> 3,
// -2.5 -> -2).
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// DisplayScore is the rounded agreement score shown on gauges.
func DisplayScore(d Distribution) int {
	return RoundHalfUp(AgreementScore(d))
}
