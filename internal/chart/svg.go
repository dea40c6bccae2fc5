package chart

import (
	"bufio"
	"fmt"
	"html"
	"io"
	"math"

	"github.com/mind-engage/kwash-dashboard/internal/gauge"
)

func init() {
	Register(KindTreemap, RendererFunc(renderTreemap))
	Register(KindGauge, RendererFunc(renderGauge))
}

type svgWriter struct {
	w   *bufio.Writer
	err error
}

func newSVG(w io.Writer, width, height int) *svgWriter {
	s := &svgWriter{w: bufio.NewWriter(w)}
	s.printf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	return s
}

func (s *svgWriter) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

func (s *svgWriter) text(x, y float64, size int, anchor, fill, body string) {
	s.printf(`<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%d" text-anchor="%s" fill="%s">%s</text>`+"\n",
		x, y, size, anchor, fill, html.EscapeString(body))
}

func (s *svgWriter) close() error {
	s.printf("</svg>\n")
	if s.err != nil {
		return s.err
	}
	return s.w.Flush()
}

// Rect is a laid-out treemap tile.
type Rect struct {
	Value
	X, Y, W, H float64
}

// Layout splits the area with slice-and-dice: tiles are laid side by side
// along the longer edge, each taking its share of the total.
func Layout(vals []Value, width, height float64) []Rect {
	vals = positive(vals)
	var total float64
	for _, v := range vals {
		total += v.Value
	}
	if total == 0 {
		return nil
	}
	out := make([]Rect, 0, len(vals))
	horizontal := width >= height
	var off float64
	for _, v := range vals {
		share := v.Value / total
		r := Rect{Value: v}
		if horizontal {
			r.X, r.Y, r.W, r.H = off, 0, width*share, height
			off += r.W
		} else {
			r.X, r.Y, r.W, r.H = 0, off, width, height*share
			off += r.H
		}
		out = append(out, r)
	}
	return out
}

func renderTreemap(w io.Writer, s Spec) error {
	width, height := s.size(640, 320)
	top := 0
	if s.Title != "" {
		top = 28
	}
	tiles := Layout(s.Values, float64(width), float64(height-top))
	if len(tiles) == 0 {
		return ErrNoData
	}
	svg := newSVG(w, width, height)
	if s.Title != "" {
		svg.text(float64(width)/2, 18, 14, "middle", "#111827", s.Title)
	}
	for i, t := range tiles {
		y := t.Y + float64(top)
		svg.printf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#fff" stroke-width="2"/>`+"\n",
			t.X, y, t.W, t.H, colorAt(t.Value, i))
		if t.W < 40 || t.H < 28 {
			continue
		}
		svg.text(t.X+t.W/2, y+t.H/2-2, 11, "middle", "#111827", t.Label)
		svg.text(t.X+t.W/2, y+t.H/2+12, 11, "middle", "#111827", formatNumber(t.Value.Value))
	}
	return svg.close()
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.2f", v)
}

// polar converts a dial angle (0 is straight up, positive is clockwise)
// into SVG coordinates.
func polar(cx, cy, r, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return cx + r*math.Sin(rad), cy - r*math.Cos(rad)
}

func renderGauge(w io.Writer, s Spec) error {
	if s.Reading == nil {
		return ErrNoData
	}
	rd := *s.Reading
	width, height := s.size(300, 190)
	cx, cy := float64(width)/2, float64(height)-30
	r := math.Min(cx, cy) - 20

	svg := newSVG(w, width, height)
	for _, seg := range gauge.Segments {
		x1, y1 := polar(cx, cy, r, gauge.Angle(seg.Min))
		x2, y2 := polar(cx, cy, r, gauge.Angle(seg.Max))
		svg.printf(`<path d="M %.2f %.2f A %.2f %.2f 0 0 1 %.2f %.2f" fill="none" stroke="%s" stroke-width="22"/>`+"\n",
			x1, y1, r, r, x2, y2, seg.Color)
	}
	nx, ny := polar(cx, cy, r-14, rd.Angle)
	svg.printf(`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="4" stroke-linecap="round" data-angle="%.1f"/>`+"\n",
		cx, cy, nx, ny, rd.Color, rd.Angle)
	svg.printf(`<circle cx="%.2f" cy="%.2f" r="7" fill="%s"/>`+"\n", cx, cy, rd.Color)
	svg.text(cx, cy+24, 18, "middle", rd.Color, fmt.Sprintf("%d%%", rd.Score))
	if s.Title != "" {
		svg.text(cx, 16, 12, "middle", "#374151", s.Title)
	}
	return svg.close()
}
