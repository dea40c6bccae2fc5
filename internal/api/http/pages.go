package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/mind-engage/kwash-dashboard/internal/catalog"
	"github.com/mind-engage/kwash-dashboard/internal/storage"
	"github.com/mind-engage/kwash-dashboard/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

type pages struct {
	cat    *catalog.Catalog
	assets storage.AssetStore
	tmpl   *template.Template
}

func newPages(c *catalog.Catalog, as storage.AssetStore) (*pages, error) {
	t, err := template.New("").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &pages{cat: c, assets: as, tmpl: t}, nil
}

type hostPage struct {
	Title string
}

type dashboardPage struct {
	Title          string
	Stakeholder    string
	Nav            view.Nav
	Framework      []view.Pillar
	Infrastructure *view.Infrastructure
	Access         *view.Access
	Operations     *view.Operations
	Psychosocial   *view.Psychosocial
}

func (p *pages) render(w http.ResponseWriter, name string, data any) {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		writeError(w, http.StatusInternalServerError, "render page: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// HostHandler serves the page with the single button that opens the
// dashboard.
func (p *pages) HostHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.render(w, "host.html", hostPage{Title: p.cat.Title})
	}
}

// DashboardHandler renders the active tab only.
func (p *pages) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		d := dashboardPage{
			Title:       p.cat.Title,
			Stakeholder: p.cat.Stakeholder,
			Nav:         view.ParseNav(q.Get("tab"), q.Get("sub")),
		}
		if d.Nav.Tab == view.TabKWash {
			d.Framework = view.Framework()
		} else {
			switch d.Nav.Sub {
			case view.SubInfrastructure:
				v := view.BuildInfrastructure(p.cat, p.assets.URL)
				d.Infrastructure = &v
			case view.SubAccess:
				v := view.BuildAccess(p.cat)
				d.Access = &v
			case view.SubOperations:
				v := view.BuildOperations(p.cat, p.assets.URL)
				d.Operations = &v
			case view.SubPsychosocial:
				v := view.BuildPsychosocial(p.cat.Psychosocial, requestedIndicator(r, p.cat.Psychosocial))
				d.Psychosocial = &v
			}
		}
		p.render(w, "dashboard.html", d)
	}
}
