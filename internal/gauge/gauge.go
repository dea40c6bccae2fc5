// Package gauge maps an agreement score onto a half-circle dial: a needle
// angle and one of five colour bands.
package gauge

import (
	"fmt"

	"github.com/mind-engage/kwash-dashboard/internal/survey"
)

type Band int

const (
	Red Band = iota
	Orange
	Yellow
	LightGreen
	DarkGreen
)

// Segment is one coloured arc of the dial covering [Min, Max).
type Segment struct {
	Band  Band
	Min   int
	Max   int
	Color string
}

// Segments are the fixed dial stops 0-20-40-60-80-100.
var Segments = []Segment{
	{Band: Red, Min: 0, Max: 20, Color: "#ef4444"},
	{Band: Orange, Min: 20, Max: 40, Color: "#f97316"},
	{Band: Yellow, Min: 40, Max: 60, Color: "#facc15"},
	{Band: LightGreen, Min: 60, Max: 80, Color: "#4ade80"},
	{Band: DarkGreen, Min: 80, Max: 100, Color: "#10b981"},
}

var bandNames = map[Band]string{
	Red:        "red",
	Orange:     "orange",
	Yellow:     "yellow",
	LightGreen: "light-green",
	DarkGreen:  "dark-green",
}

func (b Band) String() string {
	if s, ok := bandNames[b]; ok {
		return s
	}
	return "unknown"
}

func (b Band) Color() string {
	for _, s := range Segments {
		if s.Band == b {
			return s.Color
		}
	}
	return ""
}

func (b Band) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *Band) UnmarshalText(text []byte) error {
	for k, name := range bandNames {
		if name == string(text) {
			*b = k
			return nil
		}
	}
	return fmt.Errorf("unknown band %q", text)
}

// Angle maps a score onto the dial in degrees: 0 -> -90 (full left),
// 50 -> 0, 100 -> +90. The mapping is linear and not clamped.
func Angle(score int) float64 {
	return float64(score)/100*180 - 90
}

// BandFor classifies a score. Lower bounds are inclusive, so a score on a
// boundary belongs to the higher band.
func BandFor(score int) Band {
	switch {
	case score >= 80:
		return DarkGreen
	case score >= 60:
		return LightGreen
	case score >= 40:
		return Yellow
	case score >= 20:
		return Orange
	default:
		return Red
	}
}

// Reading is everything a dial needs to draw itself.
type Reading struct {
	Raw   float64 `json:"raw"`
	Score int     `json:"score"`
	Angle float64 `json:"angle"`
	Band  Band    `json:"band"`
	Color string  `json:"color"`
}

// ReadScore maps an already-rounded score.
func ReadScore(score int) Reading {
	b := BandFor(score)
	return Reading{
		Raw:   float64(score),
		Score: score,
		Angle: Angle(score),
		Band:  b,
		Color: b.Color(),
	}
}

// Read derives the dial from the first group of a holistic dataset. The
// agreement score is rounded before it is mapped. ok is false when there is
// no first group; callers render nothing in that case.
func Read(groups []survey.Group) (r Reading, ok bool) {
	if len(groups) == 0 {
		return Reading{}, false
	}
	raw := survey.AgreementScore(groups[0].Responses)
	r = ReadScore(survey.RoundHalfUp(raw))
	r.Raw = raw
	return r, true
}
