package chart

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/kwash-dashboard/internal/gauge"
	"github.com/mind-engage/kwash-dashboard/internal/survey"
)

func TestRegistry_AllKindsRegistered(t *testing.T) {
	for _, k := range []Kind{KindPie, KindBar, KindStacked, KindLine, KindTreemap, KindGauge} {
		_, ok := Lookup(k)
		assert.True(t, ok, k)
	}
	err := Render(&bytes.Buffer{}, Kind("radar"), Spec{})
	assert.ErrorContains(t, err, "radar")
}

func TestRender_EmptyInputIsNoData(t *testing.T) {
	cases := map[Kind]Spec{
		KindPie:     {Values: []Value{{Label: "a", Value: 0}}},
		KindBar:     {},
		KindStacked: {Groups: []survey.Group{}},
		KindLine:    {Points: []Point{{At: time.Now(), Value: 1}}},
		KindTreemap: {Values: nil},
		KindGauge:   {},
	}
	for k, s := range cases {
		var buf bytes.Buffer
		assert.ErrorIs(t, Render(&buf, k, s), ErrNoData, k)
	}
}

func TestRender_ProducesSVG(t *testing.T) {
	day := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	r := gauge.ReadScore(91)
	cases := map[Kind]Spec{
		KindPie:     {Title: "Proximity", Values: []Value{{Label: "100-200m", Value: 62}, {Label: "500m", Value: 38}}},
		KindBar:     {Values: []Value{{Label: "Easy", Value: 77}, {Label: "Difficult", Value: 0}}},
		KindStacked: {Groups: []survey.Group{{Name: "15-19", Responses: survey.Distribution{Disagree: 2.3, Neutral: 10.5, Agree: 73.3, StronglyAgree: 13.9}}}},
		KindLine:    {Points: []Point{{At: day, Value: 217.1}, {At: day.AddDate(0, 0, 1), Value: 116.4}}},
		KindTreemap: {Values: []Value{{Label: "PMA", Value: 90}, {Label: "Bhutani", Value: 80}}},
		KindGauge:   {Reading: &r},
	}
	for k, s := range cases {
		var buf bytes.Buffer
		require.NoError(t, Render(&buf, k, s), k)
		assert.Contains(t, buf.String(), "<svg", k)
	}
}

func TestLayout_SliceAndDice(t *testing.T) {
	tiles := Layout([]Value{{Label: "a", Value: 3}, {Label: "skip", Value: 0}, {Label: "b", Value: 1}}, 400, 100)
	require.Len(t, tiles, 2)
	assert.InDelta(t, 300, tiles[0].W, 1e-9)
	assert.InDelta(t, 300, tiles[1].X, 1e-9)
	assert.InDelta(t, 100, tiles[1].W, 1e-9)
	assert.Equal(t, 100.0, tiles[1].H)

	tall := Layout([]Value{{Value: 1}, {Value: 1}}, 100, 400)
	assert.InDelta(t, 200, tall[1].Y, 1e-9)
	assert.Nil(t, Layout(nil, 10, 10))
}

func TestGaugeSVG_ShowsScoreAndNeedle(t *testing.T) {
	r := gauge.ReadScore(91)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, KindGauge, Spec{Title: "A & B", Reading: &r}))
	out := buf.String()
	assert.Contains(t, out, ">91%<")
	assert.Contains(t, out, `data-angle="73.8"`)
	assert.Contains(t, out, "A &amp; B")
	assert.Equal(t, len(gauge.Segments), strings.Count(out, "<path"))
	assert.Contains(t, out, `stroke="#10b981" stroke-width="4"`)
}

func TestGaugeSVG_NeedleFollowsBand(t *testing.T) {
	r := gauge.ReadScore(10)
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, KindGauge, Spec{Reading: &r}))
	out := buf.String()
	assert.Contains(t, out, `stroke="#ef4444" stroke-width="4"`)
	assert.Contains(t, out, `r="7" fill="#ef4444"`)
	assert.NotContains(t, out, "#111827")
}

func TestPolar(t *testing.T) {
	x, y := polar(100, 100, 50, 0)
	assert.InDelta(t, 100, x, 1e-9)
	assert.InDelta(t, 50, y, 1e-9)
	x, y = polar(100, 100, 50, -90)
	assert.InDelta(t, 50, x, 1e-9)
	assert.InDelta(t, 100, y, 1e-9)
}
