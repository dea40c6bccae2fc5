package view

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/mind-engage/kwash-dashboard/internal/catalog"
)

// AssetURL maps an asset key to the URL it is served under.
type AssetURL func(key string) string

type Share struct {
	Label   string  `json:"label"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
	Text    string  `json:"text"`
}

// Shares gives each value its share of the total, one decimal place.
func Shares(vs []catalog.Value, unit string) []Share {
	total := catalog.Total(vs)
	out := make([]Share, 0, len(vs))
	for _, v := range vs {
		s := Share{Label: v.Label, Value: v.Value}
		if total > 0 {
			s.Percent = math.Round(v.Value/total*1000) / 10
		}
		s.Text = fmt.Sprintf("%s %s (%.1f%%)", count(v.Value), unit, s.Percent)
		out = append(out, s)
	}
	return out
}

func count(v float64) string {
	if v == math.Trunc(v) {
		return humanize.Comma(int64(v))
	}
	return humanize.CommafWithDigits(v, 2)
}

type AccessCard struct {
	Title      string            `json:"title"`
	Definition string            `json:"definition"`
	Inference  string            `json:"inference"`
	Icon       string            `json:"icon"`
	Chart      catalog.ChartKind `json:"chart"`
	Values     []catalog.Value   `json:"values"`
	Total      string            `json:"total,omitempty"`
	ChartURL   string            `json:"chart_url"`
}

type Access struct {
	Title       string       `json:"title"`
	Stakeholder string       `json:"stakeholder"`
	Cards       []AccessCard `json:"cards"`
}

func BuildAccess(c *catalog.Catalog) Access {
	a := Access{
		Title:       "Equitable Access to WaSH Services",
		Stakeholder: "Key Stakeholder: Floating Population Survey Insights",
		Cards:       make([]AccessCard, 0, len(c.Access)),
	}
	for i, ind := range c.Access {
		card := AccessCard{
			Title:      ind.Title,
			Definition: ind.Definition,
			Inference:  ind.Inference,
			Icon:       ind.Icon.Glyph(),
			Chart:      ind.Chart,
			Values:     ind.Values,
			ChartURL:   "/charts/access/" + strconv.Itoa(i) + ".svg",
		}
		if ind.Chart == catalog.ChartPie {
			card.Total = formatPercent(catalog.Total(ind.Values))
		}
		a.Cards = append(a.Cards, card)
	}
	return a
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

type FacilityCard struct {
	Label      string `json:"label"`
	Value      string `json:"value"`
	Definition string `json:"definition"`
	Image      string `json:"image"`
}

type WasteCard struct {
	Label    string `json:"label"`
	Quantity string `json:"quantity"`
	Image    string `json:"image"`
}

type FigureCard struct {
	Caption string `json:"caption"`
	Image   string `json:"image"`
}

type Infrastructure struct {
	Title             string                   `json:"title"`
	Stakeholder       string                   `json:"stakeholder"`
	WaterTitle        string                   `json:"water_title"`
	WaterDefinition   string                   `json:"water_definition"`
	Facilities        []FacilityCard           `json:"facilities"`
	Indicators        []catalog.InfraIndicator `json:"indicators"`
	ToiletTypes       []Share                  `json:"toilet_types"`
	ToiletTotal       string                   `json:"toilet_total"`
	ToiletChartURL    string                   `json:"toilet_chart_url"`
	Vendors           []Share                  `json:"vendors"`
	VendorTotal       string                   `json:"vendor_total"`
	VendorChartURL    string                   `json:"vendor_chart_url"`
	TreatmentBySector []catalog.SectorFacility `json:"treatment_by_sector"`
	SolidWaste        []WasteCard              `json:"solid_waste"`
	Figures           map[string][]FigureCard  `json:"figures"`
}

func figures(fs []catalog.Figure, asset AssetURL) []FigureCard {
	out := make([]FigureCard, 0, len(fs))
	for _, f := range fs {
		out = append(out, FigureCard{Caption: f.Caption, Image: asset(f.Path)})
	}
	return out
}

// BuildInfrastructure assembles the infrastructure page. Facility pictures
// are chosen by kind; a facility without a definition inherits the water
// supply definition.
func BuildInfrastructure(c *catalog.Catalog, asset AssetURL) Infrastructure {
	in := c.Infrastructure
	v := Infrastructure{
		Title:             "State of Infrastructure and Technology of WASH services",
		Stakeholder:       "(Key Stakeholder: Government officials)",
		WaterTitle:        in.WaterSupply.Title,
		WaterDefinition:   in.WaterSupply.Definition,
		Indicators:        in.Indicators,
		ToiletTypes:       Shares(in.ToiletTypes, "units"),
		ToiletTotal:       count(catalog.Total(in.ToiletTypes)),
		ToiletChartURL:    "/charts/infrastructure/toilets.svg",
		Vendors:           Shares(in.TransportVendors, "vehicles"),
		VendorTotal:       count(catalog.Total(in.TransportVendors)),
		VendorChartURL:    "/charts/infrastructure/transport.svg",
		TreatmentBySector: in.TreatmentBySector,
		Figures:           map[string][]FigureCard{},
	}
	for _, f := range in.WaterSupply.Facilities {
		def := f.Definition
		if def == "" {
			def = in.WaterSupply.Definition
		}
		v.Facilities = append(v.Facilities, FacilityCard{
			Label:      f.Label,
			Value:      f.Value,
			Definition: def,
			Image:      asset(f.Kind.Image()),
		})
	}
	for _, w := range in.SolidWaste {
		v.SolidWaste = append(v.SolidWaste, WasteCard{Label: w.Label, Quantity: w.Quantity, Image: asset(w.Kind.Image())})
	}
	for _, s := range []catalog.FigureSection{
		catalog.SectionToilets, catalog.SectionDisposal, catalog.SectionCollection, catalog.SectionSignage,
	} {
		v.Figures[string(s)] = figures(in.FiguresIn(s), asset)
	}
	return v
}

type PracticeCard struct {
	Title      string         `json:"title"`
	Definition string         `json:"definition"`
	Inference  string         `json:"inference"`
	Stats      []catalog.Fact `json:"stats,omitempty"`
	ChartURL   string         `json:"chart_url,omitempty"`
	Figures    []FigureCard   `json:"figures,omitempty"`
}

type MonthTotal struct {
	Month string `json:"month"`
	Text  string `json:"text"`
}

type Operations struct {
	Title           string         `json:"title"`
	Stakeholder     string         `json:"stakeholder"`
	Monthly         []MonthTotal   `json:"monthly"`
	MonthlyChartURL string         `json:"monthly_chart_url,omitempty"`
	Practices       []PracticeCard `json:"practices"`
	WasteChartURL   string         `json:"waste_chart_url,omitempty"`
	CollectedText   string         `json:"collected_text"`
	PeakDay         string         `json:"peak_day,omitempty"`
	PeakText        string         `json:"peak_text,omitempty"`
}

func tonnes(v float64) string { return fmt.Sprintf("%.2f MT", v) }

func BuildOperations(c *catalog.Catalog, asset AssetURL) Operations {
	op := c.Operations
	v := Operations{
		Title:       "State of Operations and Management",
		Stakeholder: "Key Stakeholder: Infrastructure & Service Provider Insights",
	}
	for _, m := range op.MonthlyTotals {
		v.Monthly = append(v.Monthly, MonthTotal{Month: m.Month, Text: tonnes(m.Tonnes)})
	}
	if len(op.MonthlyTotals) > 0 {
		v.MonthlyChartURL = "/charts/operations/monthly.svg"
	}
	for i, p := range op.Practices {
		card := PracticeCard{
			Title:      p.Title,
			Definition: p.Definition,
			Inference:  p.Inference,
			Stats:      p.Stats,
			Figures:    figures(p.Figures, asset),
		}
		if len(p.Values) > 0 {
			card.ChartURL = "/charts/operations/practices/" + strconv.Itoa(i) + ".svg"
		}
		v.Practices = append(v.Practices, card)
	}

	var total float64
	peak := -1
	for i, d := range op.WasteCollection {
		total += d.Tonnes
		if peak < 0 || d.Tonnes > op.WasteCollection[peak].Tonnes {
			peak = i
		}
	}
	v.CollectedText = tonnes(total)
	if peak >= 0 {
		d := op.WasteCollection[peak]
		v.PeakDay = d.Date.Format("02 Jan 2006")
		v.PeakText = tonnes(d.Tonnes)
	}
	if len(op.WasteCollection) > 1 {
		v.WasteChartURL = "/charts/operations/waste.svg"
	}
	return v
}
