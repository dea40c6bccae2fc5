package chart

import (
	"io"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mind-engage/kwash-dashboard/internal/survey"
)

func init() {
	Register(KindPie, RendererFunc(renderPie))
	Register(KindBar, RendererFunc(renderBar))
	Register(KindStacked, RendererFunc(renderStacked))
	Register(KindLine, RendererFunc(renderLine))
}

func fill(c string) gochart.Style {
	col := drawing.ColorFromHex(hex(c))
	return gochart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1}
}

func renderPie(w io.Writer, s Spec) error {
	vals := positive(s.Values)
	if len(vals) == 0 {
		return ErrNoData
	}
	width, height := s.size(320, 320)
	pie := gochart.PieChart{
		Title:  s.Title,
		Width:  width,
		Height: height,
	}
	for i, v := range s.Values {
		if v.Value <= 0 {
			continue
		}
		pie.Values = append(pie.Values, gochart.Value{Label: v.Label, Value: v.Value, Style: fill(colorAt(v, i))})
	}
	return pie.Render(gochart.SVG, w)
}

func renderBar(w io.Writer, s Spec) error {
	if len(s.Values) == 0 {
		return ErrNoData
	}
	width, height := s.size(480, 320)
	top := 0.0
	for _, v := range s.Values {
		if v.Value > top {
			top = v.Value
		}
	}
	if top == 0 {
		top = 1
	}
	bc := gochart.BarChart{
		Title:    s.Title,
		Width:    width,
		Height:   height,
		BarWidth: barWidth(width, len(s.Values)),
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10},
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: 0, Max: top},
		},
	}
	for i, v := range s.Values {
		bc.Bars = append(bc.Bars, gochart.Value{Label: v.Label, Value: v.Value, Style: fill(colorAt(v, i))})
	}
	return bc.Render(gochart.SVG, w)
}

func barWidth(width, n int) int {
	bw := width / (2 * n)
	if bw > 60 {
		bw = 60
	}
	if bw < 8 {
		bw = 8
	}
	return bw
}

// renderStacked draws one bar per group with the five response buckets in
// fixed order and colours.
func renderStacked(w io.Writer, s Spec) error {
	if len(s.Groups) == 0 {
		return ErrNoData
	}
	width, height := s.size(560, 320)
	sb := gochart.StackedBarChart{
		Title:  s.Title,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 40},
		},
	}
	for _, g := range s.Groups {
		bar := gochart.StackedBar{Name: g.Name}
		for _, k := range survey.ResponseOrder {
			v := g.Responses.Value(k)
			if v <= 0 {
				continue
			}
			bar.Values = append(bar.Values, gochart.Value{Label: string(k), Value: v, Style: fill(survey.ResponseColors[k])})
		}
		if len(bar.Values) == 0 {
			continue
		}
		sb.Bars = append(sb.Bars, bar)
	}
	if len(sb.Bars) == 0 {
		return ErrNoData
	}
	return sb.Render(gochart.SVG, w)
}

func dayLabel(v interface{}) string {
	switch t := v.(type) {
	case float64:
		return gochart.TimeFromFloat64(t).UTC().Format("02 Jan")
	case time.Time:
		return t.UTC().Format("02 Jan")
	}
	return ""
}

func renderLine(w io.Writer, s Spec) error {
	if len(s.Points) < 2 {
		return ErrNoData
	}
	width, height := s.size(720, 320)
	ts := gochart.TimeSeries{
		Name: s.Title,
		Style: gochart.Style{
			StrokeColor: drawing.ColorFromHex("3b82f6"),
			StrokeWidth: 2,
			DotColor:    drawing.ColorFromHex("3b82f6"),
			DotWidth:    2,
		},
	}
	for _, p := range s.Points {
		ts.XValues = append(ts.XValues, p.At)
		ts.YValues = append(ts.YValues, p.Value)
	}
	ch := gochart.Chart{
		Title:      s.Title,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      gochart.XAxis{Name: "Date", ValueFormatter: dayLabel},
		YAxis:      gochart.YAxis{Name: "Tonnes"},
		Series:     []gochart.Series{ts},
	}
	return ch.Render(gochart.SVG, w)
}
