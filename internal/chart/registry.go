// Package chart renders dashboard charts as SVG. Renderers are looked up by
// kind so the HTTP layer can serve any of them from one route.
package chart

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/mind-engage/kwash-dashboard/internal/gauge"
	"github.com/mind-engage/kwash-dashboard/internal/survey"
)

// ErrNoData is returned when there is nothing to draw.
var ErrNoData = errors.New("no chart data")

type Kind string

const (
	KindPie     Kind = "pie"
	KindBar     Kind = "bar"
	KindStacked Kind = "stacked"
	KindLine    Kind = "line"
	KindTreemap Kind = "treemap"
	KindGauge   Kind = "gauge"
)

// Value is one labelled slice, bar or tile. Color is "#rrggbb" or empty for
// the palette colour.
type Value struct {
	Label string
	Value float64
	Color string
}

type Point struct {
	At    time.Time
	Value float64
}

// Spec carries the input for any kind; each renderer reads the fields it
// needs.
type Spec struct {
	Title  string
	Width  int
	Height int

	Values  []Value        // pie, bar, treemap
	Groups  []survey.Group // stacked
	Points  []Point        // line
	Reading *gauge.Reading // gauge
}

func (s Spec) size(w, h int) (int, int) {
	if s.Width > 0 {
		w = s.Width
	}
	if s.Height > 0 {
		h = s.Height
	}
	return w, h
}

type Renderer interface {
	Render(w io.Writer, s Spec) error
}

type RendererFunc func(w io.Writer, s Spec) error

func (f RendererFunc) Render(w io.Writer, s Spec) error { return f(w, s) }

var (
	mu       sync.RWMutex
	registry = map[Kind]Renderer{}
)

// Register a renderer for a kind. Call from init().
func Register(k Kind, r Renderer) {
	mu.Lock()
	defer mu.Unlock()
	registry[k] = r
}

// Lookup returns the renderer registered for a kind.
func Lookup(k Kind) (Renderer, bool) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := registry[k]
	return r, ok
}

// Render draws s with the renderer registered for k.
func Render(w io.Writer, k Kind, s Spec) error {
	r, ok := Lookup(k)
	if !ok {
		return fmt.Errorf("no renderer for chart kind %q", k)
	}
	return r.Render(w, s)
}

// Palette is used for values without an explicit colour.
var Palette = []string{
	"#8884d8", "#82ca9d", "#ffc658", "#ff7300", "#00ff00",
	"#ff00ff", "#00ffff", "#ffff00", "#ff0000", "#0000ff",
}

func colorAt(v Value, i int) string {
	if v.Color != "" {
		return v.Color
	}
	return Palette[i%len(Palette)]
}

func hex(c string) string { return strings.TrimPrefix(c, "#") }

// positive drops non-positive values; charts that scale by share cannot
// draw them.
func positive(vs []Value) []Value {
	out := make([]Value, 0, len(vs))
	for _, v := range vs {
		if v.Value > 0 {
			out = append(out, v)
		}
	}
	return out
}
