package http

import (
	"net/http"

	"github.com/mind-engage/kwash-dashboard/internal/catalog"
	"github.com/mind-engage/kwash-dashboard/internal/gauge"
	"github.com/mind-engage/kwash-dashboard/internal/survey"
	"github.com/mind-engage/kwash-dashboard/internal/view"
)

// requestedIndicator reads ?indicator=. Without the parameter the initial
// selection applies; with it the value is used verbatim.
func requestedIndicator(r *http.Request, data []survey.Dataset) string {
	vals, explicit := r.URL.Query()["indicator"]
	req := ""
	if explicit && len(vals) > 0 {
		req = vals[0]
	}
	return view.ActiveIndicator(data, req, explicit)
}

type indicatorsResponse struct {
	Options []string `json:"options"`
	Initial string   `json:"initial"`
}

func IndicatorsHandler(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sel := survey.NewSelection(c.Psychosocial)
		opts := sel.Options()
		if opts == nil {
			opts = []string{}
		}
		writeJSON(w, http.StatusOK, indicatorsResponse{Options: opts, Initial: sel.Active()})
	}
}

func PsychosocialHandler(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active := requestedIndicator(r, c.Psychosocial)
		writeJSON(w, http.StatusOK, view.BuildPsychosocial(c.Psychosocial, active))
	}
}

type gaugeResponse struct {
	Indicator string              `json:"indicator"`
	Title     string              `json:"title"`
	Reading   gauge.Reading       `json:"reading"`
	Breakdown []view.BreakdownRow `json:"breakdown"`
}

// GaugeHandler answers 204 when the indicator has no holistic first group,
// mirroring a dial that renders nothing.
func GaugeHandler(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		active := requestedIndicator(r, c.Psychosocial)
		rd, d, ok := view.HolisticReading(c.Psychosocial, active)
		if !ok {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		writeJSON(w, http.StatusOK, gaugeResponse{
			Indicator: active,
			Title:     view.GaugeTitle(active),
			Reading:   rd,
			Breakdown: view.Breakdown(d),
		})
	}
}
