package survey

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// ResponseKey names one bucket of a five-point agreement scale.
type ResponseKey string

const (
	StronglyDisagree ResponseKey = "Strongly Disagree"
	Disagree         ResponseKey = "Disagree"
	Neutral          ResponseKey = "Neutral"
	Agree            ResponseKey = "Agree"
	StronglyAgree    ResponseKey = "Strongly Agree"
)

// ResponseOrder is the fixed display/stacking order of the buckets.
var ResponseOrder = []ResponseKey{StronglyDisagree, Disagree, Neutral, Agree, StronglyAgree}

// ResponseColors are the stacked-bar and legend colours per bucket.
var ResponseColors = map[ResponseKey]string{
	StronglyDisagree: "#f87171",
	Disagree:         "#fb923c",
	Neutral:          "#facc15",
	Agree:            "#60a5fa",
	StronglyAgree:    "#34d399",
}

// Distribution holds one percentage per bucket. Values are expected to sum
// to ~100 but nothing enforces it.
type Distribution struct {
	StronglyDisagree float64 `json:"strongly_disagree" yaml:"strongly_disagree"`
	Disagree         float64 `json:"disagree" yaml:"disagree"`
	Neutral          float64 `json:"neutral" yaml:"neutral"`
	Agree            float64 `json:"agree" yaml:"agree"`
	StronglyAgree    float64 `json:"strongly_agree" yaml:"strongly_agree"`
}

// Value returns the percentage stored for k; unknown keys read as 0.
func (d Distribution) Value(k ResponseKey) float64 {
	switch k {
	case StronglyDisagree:
		return d.StronglyDisagree
	case Disagree:
		return d.Disagree
	case Neutral:
		return d.Neutral
	case Agree:
		return d.Agree
	case StronglyAgree:
		return d.StronglyAgree
	}
	return 0
}

// Values returns the buckets in ResponseOrder.
func (d Distribution) Values() []float64 {
	out := make([]float64, 0, len(ResponseOrder))
	for _, k := range ResponseOrder {
		out = append(out, d.Value(k))
	}
	return out
}

// Group is one cohort ("20-24", "Female", "All") within a perspective.
type Group struct {
	Name      string       `json:"group" yaml:"group"`
	Responses Distribution `json:"responses" yaml:"responses"`
}

// Segment is the demographic lens of a non-holistic perspective.
type Segment string

const (
	SegmentAge                 Segment = "age"
	SegmentGender              Segment = "gender"
	SegmentSocioeconomicStatus Segment = "socioeconomic_status"
)

const holisticTag = "Holistic"

// Perspective is either the Holistic aggregate or a BySegment lens.
// The zero value is an empty segment, not Holistic.
type Perspective struct {
	holistic bool
	segment  Segment
}

func Holistic() Perspective { return Perspective{holistic: true} }

func BySegment(s Segment) Perspective { return Perspective{segment: s} }

// ParsePerspective maps the dataset tag onto the variant. Only the exact,
// case-sensitive string "Holistic" selects the aggregate.
func ParsePerspective(tag string) Perspective {
	if tag == holisticTag {
		return Holistic()
	}
	return BySegment(Segment(tag))
}

func (p Perspective) IsHolistic() bool { return p.holistic }

// Segment returns the lens, or "" for Holistic.
func (p Perspective) Segment() Segment { return p.segment }

func (p Perspective) String() string {
	if p.holistic {
		return holisticTag
	}
	return string(p.segment)
}

// Title formats the tag for card headings: "socioeconomic_status" becomes
// "Socioeconomic Status".
func (p Perspective) Title() string {
	words := strings.Fields(strings.ReplaceAll(p.String(), "_", " "))
	for i, w := range words {
		r, n := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[n:]
	}
	return strings.Join(words, " ")
}

func (p Perspective) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Perspective) UnmarshalText(b []byte) error {
	*p = ParsePerspective(string(b))
	return nil
}

// Dataset is one indicator seen through one perspective.
type Dataset struct {
	Indicator   string      `json:"indicator" yaml:"indicator"`
	Perspective Perspective `json:"perspective" yaml:"perspective"`
	Groups      []Group     `json:"groups" yaml:"groups"`
}
