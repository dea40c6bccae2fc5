package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/kwash.yaml
var embedded []byte

var ErrInvalid = errors.New("invalid catalog")

// Parse decodes a catalog document. Unknown fields are rejected so a typo in
// the data file fails loudly instead of silently dropping a chart.
func Parse(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var c Catalog
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(bytes.NewReader(embedded))
}

// Embedded returns a copy of the raw embedded document.
func Embedded() []byte {
	return append([]byte(nil), embedded...)
}

func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks the shape of the catalog. Distributions are taken as given:
// nothing is summed or normalised.
func (c *Catalog) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	for i, a := range c.Access {
		if a.Title == "" {
			add("access[%d]: missing title", i)
		}
		if a.Chart != ChartPie && a.Chart != ChartBar {
			add("access[%d]: unknown chart kind %q", i, a.Chart)
		}
		if !a.Icon.Known() {
			add("access[%d]: unknown icon %q", i, a.Icon)
		}
		if len(a.Values) == 0 {
			add("access[%d]: no values", i)
		}
	}

	for i, f := range c.Infrastructure.WaterSupply.Facilities {
		if !f.Kind.Known() {
			add("water_supply.facilities[%d]: unknown kind %q", i, f.Kind)
		}
	}
	for i, w := range c.Infrastructure.SolidWaste {
		if !w.Kind.Known() {
			add("solid_waste[%d]: unknown kind %q", i, w.Kind)
		}
	}
	for i, f := range c.Infrastructure.Figures {
		if !figureSections[f.Section] {
			add("infrastructure.figures[%d]: unknown section %q", i, f.Section)
		}
		if f.Path == "" {
			add("infrastructure.figures[%d]: missing path", i)
		}
	}

	for i, p := range c.Operations.Practices {
		if p.Title == "" {
			add("practices[%d]: missing title", i)
		}
	}

	for i, d := range c.Psychosocial {
		if d.Indicator == "" {
			add("psychosocial[%d]: missing indicator", i)
		}
		if !d.Perspective.IsHolistic() && d.Perspective.Segment() == "" {
			add("psychosocial[%d]: missing perspective", i)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
