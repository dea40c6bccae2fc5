package http

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/mind-engage/kwash-dashboard/internal/catalog"
	"github.com/mind-engage/kwash-dashboard/internal/chart"
	"github.com/mind-engage/kwash-dashboard/internal/survey"
	"github.com/mind-engage/kwash-dashboard/internal/view"
)

// specFunc builds the chart for a request; ok=false means the addressed
// chart does not exist.
type specFunc func(r *http.Request) (kind chart.Kind, spec chart.Spec, ok bool)

func values(vs []catalog.Value) []chart.Value {
	out := make([]chart.Value, 0, len(vs))
	for _, v := range vs {
		out = append(out, chart.Value{Label: v.Label, Value: v.Value})
	}
	return out
}

func index(r *http.Request, n int) (int, bool) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || i < 0 || i >= n {
		return 0, false
	}
	return i, true
}

func MountCharts(r chi.Router, c *catalog.Catalog, log *zap.Logger) {
	serve := func(build specFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			kind, spec, ok := build(r)
			if !ok {
				writeError(w, http.StatusNotFound, "chart not found")
				return
			}
			var buf bytes.Buffer
			if err := chart.Render(&buf, kind, spec); err != nil {
				if errors.Is(err, chart.ErrNoData) {
					writeError(w, http.StatusNotFound, err.Error())
					return
				}
				log.Error("render chart", zap.String("kind", string(kind)), zap.Error(err))
				writeError(w, http.StatusInternalServerError, "render failed")
				return
			}
			w.Header().Set("Content-Type", "image/svg+xml")
			w.Header().Set("Cache-Control", "public, max-age=300")
			_, _ = w.Write(buf.Bytes())
		}
	}

	r.Get("/psychosocial/gauge.svg", serve(func(r *http.Request) (chart.Kind, chart.Spec, bool) {
		active := requestedIndicator(r, c.Psychosocial)
		rd, _, ok := view.HolisticReading(c.Psychosocial, active)
		if !ok {
			return chart.KindGauge, chart.Spec{}, true
		}
		return chart.KindGauge, chart.Spec{Reading: &rd}, true
	}))

	r.Get("/psychosocial/stacked.svg", serve(func(r *http.Request) (chart.Kind, chart.Spec, bool) {
		active := requestedIndicator(r, c.Psychosocial)
		want := r.URL.Query().Get("perspective")
		for _, d := range survey.Filter(c.Psychosocial, active) {
			if d.Perspective.IsHolistic() || d.Perspective.String() != want {
				continue
			}
			return chart.KindStacked, chart.Spec{Groups: d.Groups}, true
		}
		return "", chart.Spec{}, false
	}))

	r.Get("/access/{index}.svg", serve(func(r *http.Request) (chart.Kind, chart.Spec, bool) {
		i, ok := index(r, len(c.Access))
		if !ok {
			return "", chart.Spec{}, false
		}
		ind := c.Access[i]
		kind := chart.KindBar
		if ind.Chart == catalog.ChartPie {
			kind = chart.KindPie
		}
		return kind, chart.Spec{Values: values(ind.Values)}, true
	}))

	r.Get("/infrastructure/toilets.svg", serve(func(r *http.Request) (chart.Kind, chart.Spec, bool) {
		return chart.KindPie, chart.Spec{Values: values(c.Infrastructure.ToiletTypes), Width: 360, Height: 360}, true
	}))

	r.Get("/infrastructure/transport.svg", serve(func(r *http.Request) (chart.Kind, chart.Spec, bool) {
		return chart.KindTreemap, chart.Spec{Values: values(c.Infrastructure.TransportVendors)}, true
	}))

	r.Get("/operations/waste.svg", serve(func(r *http.Request) (chart.Kind, chart.Spec, bool) {
		pts := make([]chart.Point, 0, len(c.Operations.WasteCollection))
		for _, d := range c.Operations.WasteCollection {
			pts = append(pts, chart.Point{At: d.Date.Time, Value: d.Tonnes})
		}
		return chart.KindLine, chart.Spec{Title: "Daily solid waste collected (MT)", Points: pts}, true
	}))

	r.Get("/operations/monthly.svg", serve(func(r *http.Request) (chart.Kind, chart.Spec, bool) {
		vs := make([]chart.Value, 0, len(c.Operations.MonthlyTotals))
		for _, m := range c.Operations.MonthlyTotals {
			vs = append(vs, chart.Value{Label: m.Month, Value: m.Tonnes})
		}
		return chart.KindBar, chart.Spec{Title: "Total solid waste collected (MT)", Values: vs}, true
	}))

	r.Get("/operations/practices/{index}.svg", serve(func(r *http.Request) (chart.Kind, chart.Spec, bool) {
		i, ok := index(r, len(c.Operations.Practices))
		if !ok {
			return "", chart.Spec{}, false
		}
		return chart.KindBar, chart.Spec{Values: values(c.Operations.Practices[i].Values)}, true
	}))
}
