package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/mind-engage/kwash-dashboard/internal/catalog"
	"github.com/mind-engage/kwash-dashboard/internal/logging"
	"github.com/mind-engage/kwash-dashboard/internal/storage"
)

type Options struct {
	Catalog     *catalog.Catalog
	Assets      storage.AssetStore
	Logger      *zap.Logger
	CORSOrigins []string
	Timeout     time.Duration
	// Ready reports whether backing services are usable; nil means always.
	Ready func(ctx context.Context) error
}

// NewRouter wires every dashboard route. The catalog is shared read-only by
// all handlers.
func NewRouter(o Options) (chi.Router, error) {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Timeout == 0 {
		o.Timeout = 30 * time.Second
	}
	pages, err := newPages(o.Catalog, o.Assets)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, logging.RequestLogger(o.Logger), middleware.Recoverer)
	r.Use(middleware.Timeout(o.Timeout))
	// cors treats an empty origin list as "allow all"; no origins means
	// same-origin only.
	if len(o.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: o.CORSOrigins,
			AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			ExposedHeaders: []string{"Content-Length"},
			MaxAge:         300,
		}))
	}

	r.Get("/", pages.HostHandler())
	r.Get("/dashboard", pages.DashboardHandler())

	r.Route("/api", func(ar chi.Router) {
		ar.Get("/psychosocial/indicators", IndicatorsHandler(o.Catalog))
		ar.Get("/psychosocial", PsychosocialHandler(o.Catalog))
		ar.Get("/psychosocial/gauge", GaugeHandler(o.Catalog))
		ar.Get("/access", AccessHandler(o.Catalog))
		ar.Get("/infrastructure", InfrastructureHandler(o.Catalog, o.Assets))
		ar.Get("/operations", OperationsHandler(o.Catalog, o.Assets))
	})

	r.Route("/charts", func(cr chi.Router) {
		MountCharts(cr, o.Catalog, o.Logger)
	})
	r.Route("/assets", func(ar chi.Router) {
		MountAssets(ar, o.Assets)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if o.Ready != nil {
			if err := o.Ready(r.Context()); err != nil {
				writeError(w, http.StatusServiceUnavailable, err.Error())
				return
			}
		}
		w.WriteHeader(200)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r, nil
}
