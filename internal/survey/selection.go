package survey

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownIndicator = errors.New("unknown indicator")

// Indicators lists the distinct indicator names in order of first appearance.
func Indicators(data []Dataset) []string {
	seen := make(map[string]bool, len(data))
	out := make([]string, 0, len(data))
	for _, d := range data {
		if seen[d.Indicator] {
			continue
		}
		seen[d.Indicator] = true
		out = append(out, d.Indicator)
	}
	return out
}

// Filter keeps the datasets whose indicator equals name exactly and moves
// the Holistic perspective first. The remaining perspectives keep their
// original relative order. data is not modified.
func Filter(data []Dataset, name string) []Dataset {
	out := make([]Dataset, 0, 4)
	if name == "" {
		return out
	}
	for _, d := range data {
		if d.Indicator == name {
			out = append(out, d)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Perspective.IsHolistic() && !out[j].Perspective.IsHolistic()
	})
	return out
}

// Selection is the active-indicator state of the psychosocial view. Its
// options are fixed when it is created.
type Selection struct {
	options []string
	known   map[string]bool
	active  string
}

// NewSelection derives the options from data. The initial state is the
// first option, or unselected ("") when data has no indicators.
func NewSelection(data []Dataset) *Selection {
	opts := Indicators(data)
	s := &Selection{options: opts, known: make(map[string]bool, len(opts))}
	for _, o := range opts {
		s.known[o] = true
	}
	if len(opts) > 0 {
		s.active = opts[0]
	}
	return s
}

func (s *Selection) Options() []string {
	out := make([]string, len(s.options))
	copy(out, s.options)
	return out
}

func (s *Selection) Active() string { return s.active }

// Select switches to name. Names outside the option set are rejected and
// the state is left unchanged.
func (s *Selection) Select(name string) error {
	if !s.known[name] {
		return fmt.Errorf("%w: %q", ErrUnknownIndicator, name)
	}
	s.active = name
	return nil
}
