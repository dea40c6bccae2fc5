package view

import (
	"fmt"
	"net/url"

	"github.com/mind-engage/kwash-dashboard/internal/gauge"
	"github.com/mind-engage/kwash-dashboard/internal/survey"
)

// Placeholder replaces the card grid when no dataset matches the selection.
const Placeholder = "Please select an Indicator to view detailed survey data."

type Option struct {
	Name   string `json:"name"`
	Short  string `json:"short"`
	Href   string `json:"href"`
	Active bool   `json:"active"`
}

type LegendItem struct {
	Key   survey.ResponseKey `json:"key"`
	Color string             `json:"color"`
}

func Legend() []LegendItem {
	out := make([]LegendItem, 0, len(survey.ResponseOrder))
	for _, k := range survey.ResponseOrder {
		out = append(out, LegendItem{Key: k, Color: survey.ResponseColors[k]})
	}
	return out
}

type BreakdownRow struct {
	Key      survey.ResponseKey `json:"key"`
	Color    string             `json:"color"`
	Value    float64            `json:"value"`
	Text     string             `json:"text"`
	Positive bool               `json:"positive"`
}

// Breakdown lists every bucket with three decimals, e.g. "60.000%".
func Breakdown(d survey.Distribution) []BreakdownRow {
	out := make([]BreakdownRow, 0, len(survey.ResponseOrder))
	for _, k := range survey.ResponseOrder {
		v := d.Value(k)
		out = append(out, BreakdownRow{
			Key:      k,
			Color:    survey.ResponseColors[k],
			Value:    v,
			Text:     fmt.Sprintf("%.3f%%", v),
			Positive: k == survey.Agree || k == survey.StronglyAgree,
		})
	}
	return out
}

type GaugeCard struct {
	Title     string         `json:"title"`
	Reading   gauge.Reading  `json:"reading"`
	Breakdown []BreakdownRow `json:"breakdown"`
	ChartURL  string         `json:"chart_url"`
}

type SegmentCard struct {
	Title       string         `json:"title"`
	Perspective string         `json:"perspective"`
	Groups      []survey.Group `json:"groups"`
	ChartURL    string         `json:"chart_url"`
}

// Card is either a holistic gauge or a segment stacked-bar chart.
type Card struct {
	Gauge   *GaugeCard   `json:"gauge,omitempty"`
	Segment *SegmentCard `json:"segment,omitempty"`
}

type Psychosocial struct {
	Title       string       `json:"title"`
	Stakeholder string       `json:"stakeholder"`
	Indicators  []Option     `json:"indicators"`
	Active      string       `json:"active"`
	Empty       bool         `json:"empty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Cards       []Card       `json:"cards"`
	Legend      []LegendItem `json:"legend"`
}

// ActiveIndicator resolves the selection for a request. Without an explicit
// choice the first indicator is active; an explicit choice is taken as is,
// so an unknown name yields the empty state.
func ActiveIndicator(data []survey.Dataset, requested string, explicit bool) string {
	if !explicit {
		return survey.NewSelection(data).Active()
	}
	return requested
}

// GaugeTitle is the heading of the holistic card.
func GaugeTitle(indicator string) string {
	return indicator + " - HOLISTIC AGREEMENT"
}

// HolisticReading finds the holistic dataset of an indicator and maps its
// first group onto the dial. ok is false when there is nothing to show.
func HolisticReading(data []survey.Dataset, indicator string) (gauge.Reading, survey.Distribution, bool) {
	for _, d := range survey.Filter(data, indicator) {
		if !d.Perspective.IsHolistic() {
			continue
		}
		r, ok := gauge.Read(d.Groups)
		if !ok {
			return gauge.Reading{}, survey.Distribution{}, false
		}
		return r, d.Groups[0].Responses, true
	}
	return gauge.Reading{}, survey.Distribution{}, false
}

// BuildPsychosocial assembles the psychosocial page for the active indicator.
func BuildPsychosocial(data []survey.Dataset, active string) Psychosocial {
	p := Psychosocial{
		Title:       "WaSH Survey Dashboard: Psychosocial Factors",
		Stakeholder: "Key Stakeholder: Floating Population",
		Active:      active,
		Cards:       []Card{},
		Legend:      Legend(),
	}
	for _, name := range survey.Indicators(data) {
		p.Indicators = append(p.Indicators, Option{
			Name:   name,
			Short:  firstWord(name),
			Href:   psychosocialHref(name),
			Active: name == active,
		})
	}

	matched := survey.Filter(data, active)
	if len(matched) == 0 {
		p.Empty = true
		p.Placeholder = Placeholder
		return p
	}
	for _, d := range matched {
		if d.Perspective.IsHolistic() {
			r, ok := gauge.Read(d.Groups)
			if !ok {
				continue
			}
			p.Cards = append(p.Cards, Card{Gauge: &GaugeCard{
				Title:     GaugeTitle(active),
				Reading:   r,
				Breakdown: Breakdown(d.Groups[0].Responses),
				ChartURL:  chartURL("/charts/psychosocial/gauge.svg", active, ""),
			}})
			continue
		}
		p.Cards = append(p.Cards, Card{Segment: &SegmentCard{
			Title:       d.Perspective.Title(),
			Perspective: d.Perspective.String(),
			Groups:      d.Groups,
			ChartURL:    chartURL("/charts/psychosocial/stacked.svg", active, d.Perspective.String()),
		}})
	}
	return p
}

func firstWord(s string) string {
	for i, r := range s {
		if r == ' ' {
			return s[:i]
		}
	}
	return s
}

func psychosocialHref(indicator string) string {
	q := url.Values{}
	q.Set("tab", string(TabState))
	q.Set("sub", string(SubPsychosocial))
	q.Set("indicator", indicator)
	return "/dashboard?" + q.Encode()
}

func chartURL(path, indicator, perspective string) string {
	q := url.Values{}
	q.Set("indicator", indicator)
	if perspective != "" {
		q.Set("perspective", perspective)
	}
	return path + "?" + q.Encode()
}
