package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAgreementScore_SumsOnlyAgreeBuckets(t *testing.T) {
	base := Distribution{StronglyDisagree: 3, Disagree: 5, Neutral: 12, Agree: 60, StronglyAgree: 20}
	assert.InDelta(t, 80.0, AgreementScore(base), 1e-9)

	// Shuffling the other three buckets must not move the score.
	shuffled := base
	shuffled.StronglyDisagree, shuffled.Disagree, shuffled.Neutral = base.Neutral, base.StronglyDisagree, base.Disagree
	assert.InDelta(t, AgreementScore(base), AgreementScore(shuffled), 1e-9)

	zeroed := Distribution{Agree: 60, StronglyAgree: 20}
	assert.InDelta(t, AgreementScore(base), AgreementScore(zeroed), 1e-9)
}

func TestAgreementScore_AcceptsNoisyInput(t *testing.T) {
	// Upper Middle Income row of the affinity indicator sums to ~99.996.
	d := Distribution{StronglyDisagree: 0.668, Disagree: 0.668, Neutral: 11.036, Agree: 58.193, StronglyAgree: 29.4313}
	assert.InDelta(t, 87.6243, AgreementScore(d), 1e-9)

	neg := Distribution{Agree: -5, StronglyAgree: 120}
	assert.InDelta(t, 115.0, AgreementScore(neg), 1e-9)
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]int{
		0:      0,
		0.49:   0,
		0.5:    1,
		2.5:    3,
		90.585: 91,
		79.5:   80,
		79.49:  79,
		-2.5:   -2,
	}
	for in, want := range cases {
		assert.Equal(t, want, RoundHalfUp(in), "RoundHalfUp(%v)", in)
	}
}

func TestDisplayScore_DoesNotMutate(t *testing.T) {
	d := Distribution{StronglyDisagree: 0.415, Disagree: 1.0, Neutral: 8.0, Agree: 60.0, StronglyAgree: 30.585}
	before := d
	assert.Equal(t, 91, DisplayScore(d))
	assert.Equal(t, before, d)
}
