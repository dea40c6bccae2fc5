package catalog

import (
	"encoding/json"
	"time"

	"github.com/mind-engage/kwash-dashboard/internal/survey"
)

// Catalog is the whole dashboard dataset. It is built once at startup and
// shared read-only afterwards.
type Catalog struct {
	Title          string            `json:"title" yaml:"title"`
	Stakeholder    string            `json:"stakeholder" yaml:"stakeholder"`
	Access         []AccessIndicator `json:"access" yaml:"access"`
	Infrastructure Infrastructure    `json:"infrastructure" yaml:"infrastructure"`
	Operations     Operations        `json:"operations" yaml:"operations"`
	Psychosocial   []survey.Dataset  `json:"psychosocial" yaml:"psychosocial"`
}

type ChartKind string

const (
	ChartPie ChartKind = "pie"
	ChartBar ChartKind = "bar"
)

// Value is one labelled number of a pie/bar/treemap chart.
type Value struct {
	Label string  `json:"label" yaml:"label"`
	Value float64 `json:"value" yaml:"value"`
}

// Total sums the values; pie cards show it as the centre label.
func Total(vs []Value) float64 {
	var t float64
	for _, v := range vs {
		t += v.Value
	}
	return t
}

type AccessIndicator struct {
	Title      string    `json:"title" yaml:"title"`
	Definition string    `json:"definition" yaml:"definition"`
	Inference  string    `json:"inference" yaml:"inference"`
	Icon       Icon      `json:"icon" yaml:"icon"`
	Chart      ChartKind `json:"chart" yaml:"chart"`
	Values     []Value   `json:"values" yaml:"values"`
}

// Fact is a label/display-value pair; values are preformatted strings
// ("1,12,151", "1295 km").
type Fact struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

type Facility struct {
	Kind       FacilityKind `json:"kind" yaml:"kind"`
	Label      string       `json:"label" yaml:"label"`
	Value      string       `json:"value" yaml:"value"`
	Definition string       `json:"definition,omitempty" yaml:"definition,omitempty"`
}

type WaterSupply struct {
	Title      string     `json:"title" yaml:"title"`
	Definition string     `json:"definition" yaml:"definition"`
	Facilities []Facility `json:"facilities" yaml:"facilities"`
}

type InfraIndicator struct {
	SNo        string `json:"sno" yaml:"sno"`
	Title      string `json:"title" yaml:"title"`
	Definition string `json:"definition" yaml:"definition"`
	Facts      []Fact `json:"facts,omitempty" yaml:"facts,omitempty"`
}

type SectorFacility struct {
	Sectors  string `json:"sectors" yaml:"sectors"`
	Facility string `json:"facility" yaml:"facility"`
}

type SolidWasteItem struct {
	Kind     FacilityKind `json:"kind" yaml:"kind"`
	Label    string       `json:"label" yaml:"label"`
	Quantity string       `json:"quantity" yaml:"quantity"`
	Value    float64      `json:"value" yaml:"value"`
}

// Figure is a captioned image. Path is relative to the asset root.
type Figure struct {
	Section FigureSection `json:"section,omitempty" yaml:"section,omitempty"`
	Caption string        `json:"caption" yaml:"caption"`
	Path    string        `json:"path" yaml:"path"`
}

type Infrastructure struct {
	WaterSupply       WaterSupply      `json:"water_supply" yaml:"water_supply"`
	Indicators        []InfraIndicator `json:"indicators" yaml:"indicators"`
	ToiletTypes       []Value          `json:"toilet_types" yaml:"toilet_types"`
	TransportVendors  []Value          `json:"transport_vendors" yaml:"transport_vendors"`
	TreatmentBySector []SectorFacility `json:"treatment_by_sector" yaml:"treatment_by_sector"`
	SolidWaste        []SolidWasteItem `json:"solid_waste" yaml:"solid_waste"`
	Figures           []Figure         `json:"figures" yaml:"figures"`
}

// FiguresIn returns the figures of one section in catalog order.
func (i Infrastructure) FiguresIn(s FigureSection) []Figure {
	var out []Figure
	for _, f := range i.Figures {
		if f.Section == s {
			out = append(out, f)
		}
	}
	return out
}

// Day is a calendar date in YYYY-MM-DD form.
type Day struct{ time.Time }

const dayLayout = "2006-01-02"

func (d Day) MarshalText() ([]byte, error) { return []byte(d.Format(dayLayout)), nil }

func (d *Day) UnmarshalText(b []byte) error {
	t, err := time.Parse(dayLayout, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// JSON methods shadow the ones promoted from time.Time.
func (d Day) MarshalJSON() ([]byte, error) { return json.Marshal(d.Format(dayLayout)) }

func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return d.UnmarshalText([]byte(s))
}

type DailyTonnage struct {
	Date   Day     `json:"date" yaml:"date"`
	Tonnes float64 `json:"tonnes" yaml:"tonnes"`
}

type MonthlyTonnage struct {
	Month  string  `json:"month" yaml:"month"`
	Tonnes float64 `json:"tonnes" yaml:"tonnes"`
}

// Practice is one operations & management indicator.
type Practice struct {
	Title      string   `json:"title" yaml:"title"`
	Definition string   `json:"definition" yaml:"definition"`
	Inference  string   `json:"inference" yaml:"inference"`
	Stats      []Fact   `json:"stats,omitempty" yaml:"stats,omitempty"`
	Values     []Value  `json:"values,omitempty" yaml:"values,omitempty"`
	Figures    []Figure `json:"figures,omitempty" yaml:"figures,omitempty"`
}

type Operations struct {
	MonthlyTotals   []MonthlyTonnage `json:"monthly_totals" yaml:"monthly_totals"`
	Practices       []Practice       `json:"practices" yaml:"practices"`
	WasteCollection []DailyTonnage   `json:"waste_collection" yaml:"waste_collection"`
}
