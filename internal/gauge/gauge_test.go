package gauge

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/kwash-dashboard/internal/survey"
)

func TestAngle_Endpoints(t *testing.T) {
	assert.Equal(t, -90.0, Angle(0))
	assert.Equal(t, 0.0, Angle(50))
	assert.Equal(t, 90.0, Angle(100))
	assert.InDelta(t, 73.8, Angle(91), 1e-9)
}

func TestAngle_Monotonic(t *testing.T) {
	prev := Angle(0)
	for s := 1; s <= 100; s++ {
		a := Angle(s)
		require.GreaterOrEqual(t, a, prev, "angle decreased at %d", s)
		prev = a
	}
}

func TestBandFor_StepFunction(t *testing.T) {
	cases := []struct {
		score int
		want  Band
	}{
		{0, Red},
		{19, Red},
		{20, Orange},
		{39, Orange},
		{40, Yellow},
		{59, Yellow},
		{60, LightGreen},
		{79, LightGreen},
		{80, DarkGreen},
		{91, DarkGreen},
		{100, DarkGreen},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BandFor(tc.score), "BandFor(%d)", tc.score)
	}
}

func TestBand_NamesAndColors(t *testing.T) {
	assert.Equal(t, "light-green", LightGreen.String())
	assert.Equal(t, "#10b981", DarkGreen.Color())
	assert.Equal(t, "#ef4444", Red.Color())
	assert.Equal(t, "unknown", Band(42).String())

	b, err := json.Marshal(ReadScore(50))
	require.NoError(t, err)
	assert.JSONEq(t, `{"raw":50,"score":50,"angle":0,"band":"yellow","color":"#facc15"}`, string(b))
}

func TestRead_RoundsBeforeMapping(t *testing.T) {
	groups := []survey.Group{{
		Name: "All",
		Responses: survey.Distribution{
			StronglyDisagree: 0.415, Disagree: 1.0, Neutral: 8.0, Agree: 60.0, StronglyAgree: 30.585,
		},
	}}

	r, ok := Read(groups)
	require.True(t, ok)
	assert.InDelta(t, 90.585, r.Raw, 1e-9)
	assert.Equal(t, 91, r.Score)
	assert.InDelta(t, 73.8, r.Angle, 1e-9)
	assert.Equal(t, DarkGreen, r.Band)
	assert.Equal(t, "#10b981", r.Color)
}

func TestRead_BoundaryUsesRoundedScore(t *testing.T) {
	// 79.5 rounds to 80 and lands in the dark-green band.
	r, ok := Read([]survey.Group{{Responses: survey.Distribution{Agree: 59.5, StronglyAgree: 20}}})
	require.True(t, ok)
	assert.Equal(t, 80, r.Score)
	assert.Equal(t, DarkGreen, r.Band)
}

func TestRead_NoGroupIsEmptyState(t *testing.T) {
	_, ok := Read(nil)
	assert.False(t, ok)
	_, ok = Read([]survey.Group{})
	assert.False(t, ok)
}

func TestBand_TextRoundTrip(t *testing.T) {
	var b Band
	require.NoError(t, b.UnmarshalText([]byte("light-green")))
	assert.Equal(t, LightGreen, b)
	assert.Error(t, b.UnmarshalText([]byte("purple")))
}
