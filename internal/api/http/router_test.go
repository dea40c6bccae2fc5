package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/kwash-dashboard/internal/catalog"
	"github.com/mind-engage/kwash-dashboard/internal/storage"
	"github.com/mind-engage/kwash-dashboard/internal/view"
)

func newTestRouter(t *testing.T, ready func(context.Context) error) chi.Router {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "indicators"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "indicators", "tap.png"), []byte("\x89PNG"), 0o644))
	as, err := storage.NewFSStore(dir, "/assets")
	require.NoError(t, err)

	r, err := NewRouter(Options{
		Catalog:     c,
		Assets:      as,
		CORSOrigins: []string{"http://localhost:3000"},
		Ready:       ready,
	})
	require.NoError(t, err)
	return r
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func q(indicator string) string {
	return url.Values{"indicator": {indicator}}.Encode()
}

func TestIndicators(t *testing.T) {
	rec := get(t, newTestRouter(t, nil), "/api/psychosocial/indicators")
	require.Equal(t, http.StatusOK, rec.Code)

	var body indicatorsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{
		"Affinity towards hygiene practices",
		"Awareness of WaSH practices",
		"Satisfaction with WaSH services",
	}, body.Options)
	assert.Equal(t, "Affinity towards hygiene practices", body.Initial)
}

func TestPsychosocial_DefaultSelection(t *testing.T) {
	rec := get(t, newTestRouter(t, nil), "/api/psychosocial")
	require.Equal(t, http.StatusOK, rec.Code)

	var p view.Psychosocial
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Affinity towards hygiene practices", p.Active)
	assert.False(t, p.Empty)
	require.Len(t, p.Cards, 4)
	require.NotNil(t, p.Cards[0].Gauge, "holistic card comes first")
	for _, c := range p.Cards[1:] {
		require.NotNil(t, c.Segment)
	}
}

func TestPsychosocial_UnknownAndEmptySelection(t *testing.T) {
	r := newTestRouter(t, nil)
	for _, target := range []string{"/api/psychosocial?indicator=", "/api/psychosocial?" + q("affinity towards hygiene practices")} {
		rec := get(t, r, target)
		require.Equal(t, http.StatusOK, rec.Code)
		var p view.Psychosocial
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
		assert.True(t, p.Empty, target)
		assert.Equal(t, view.Placeholder, p.Placeholder)
		assert.Empty(t, p.Cards)
	}
}

func TestGauge(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := get(t, r, "/api/psychosocial/gauge?"+q("Awareness of WaSH practices"))
	require.Equal(t, http.StatusOK, rec.Code)
	var g gaugeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.Equal(t, "Awareness of WaSH practices - HOLISTIC AGREEMENT", g.Title)
	assert.Equal(t, g.Reading.Score, int(g.Reading.Raw+0.5))
	assert.InDelta(t, float64(g.Reading.Score)/100*180-90, g.Reading.Angle, 1e-9)
	assert.Len(t, g.Breakdown, 5)

	rec = get(t, r, "/api/psychosocial/gauge?"+q("Unknown"))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestSections(t *testing.T) {
	r := newTestRouter(t, nil)
	for _, p := range []string{"/api/access", "/api/infrastructure", "/api/operations"} {
		rec := get(t, r, p)
		assert.Equal(t, http.StatusOK, rec.Code, p)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"), p)
	}

	rec := get(t, r, "/api/infrastructure")
	var in view.Infrastructure
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &in))
	assert.Equal(t, "/assets/indicators/tap.png", in.Facilities[2].Image)
}

func TestCharts(t *testing.T) {
	r := newTestRouter(t, nil)
	ok := []string{
		"/charts/psychosocial/gauge.svg?" + q("Satisfaction with WaSH services"),
		"/charts/psychosocial/stacked.svg?" + q("Satisfaction with WaSH services") + "&perspective=age",
		"/charts/access/0.svg",
		"/charts/access/1.svg",
		"/charts/infrastructure/toilets.svg",
		"/charts/infrastructure/transport.svg",
		"/charts/operations/waste.svg",
		"/charts/operations/monthly.svg",
		"/charts/operations/practices/6.svg",
	}
	for _, p := range ok {
		rec := get(t, r, p)
		require.Equal(t, http.StatusOK, rec.Code, p)
		assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"), p)
		assert.Contains(t, rec.Body.String(), "<svg", p)
	}

	missing := []string{
		"/charts/psychosocial/gauge.svg?" + q("Unknown"),
		"/charts/psychosocial/stacked.svg?" + q("Satisfaction with WaSH services") + "&perspective=Holistic",
		"/charts/access/99.svg",
		"/charts/access/x.svg",
		"/charts/operations/practices/0.svg",
	}
	for _, p := range missing {
		rec := get(t, r, p)
		assert.Equal(t, http.StatusNotFound, rec.Code, p)
		assert.Contains(t, rec.Body.String(), `"error"`, p)
	}
}

func TestAssets(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := get(t, r, "/assets/indicators/tap.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	rec = get(t, r, "/assets/indicators/Liner%20Bags.png")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = get(t, r, "/assets/../../etc/passwd")
	assert.NotEqual(t, http.StatusOK, rec.Code)
}

func TestPages(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := get(t, r, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/dashboard"`)

	rec = get(t, r, "/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "K-WaSH Framework")
	assert.Contains(t, rec.Body.String(), "Psychosocial Factors")

	rec = get(t, r, "/dashboard?tab=state&sub=psychosocial&"+q("Awareness of WaSH practices"))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Awareness of WaSH practices - HOLISTIC AGREEMENT")
	assert.Contains(t, body, "Detailed Response Breakdown")
	assert.Less(t, strings.Index(body, "card gauge"), strings.Index(body, "card segment"))
	assert.Contains(t, body, `<span class="short">Awareness</span>`)

	rec = get(t, r, "/dashboard?tab=state&sub=psychosocial&indicator=Nope")
	assert.Contains(t, rec.Body.String(), view.Placeholder)

	for _, sub := range []string{"infrastructure", "access", "operations"} {
		rec = get(t, r, "/dashboard?tab=state&sub="+sub)
		assert.Equal(t, http.StatusOK, rec.Code, sub)
	}
	rec = get(t, r, "/dashboard?tab=state&sub=operations")
	assert.Contains(t, rec.Body.String(), `src="/charts/operations/monthly.svg"`)
}

func TestHealthAndCORS(t *testing.T) {
	r := newTestRouter(t, nil)
	assert.Equal(t, http.StatusOK, get(t, r, "/healthz").Code)
	assert.Equal(t, http.StatusOK, get(t, r, "/readyz").Code)

	rec := get(t, r, "/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/api/access", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))

	c, err := catalog.Default()
	require.NoError(t, err)
	as, err := storage.NewFSStore(t.TempDir(), "/assets")
	require.NoError(t, err)
	closed, err := NewRouter(Options{Catalog: c, Assets: as})
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	closed.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	down := newTestRouter(t, func(context.Context) error { return errors.New("db down") })
	rec = get(t, down, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "db down")
}
