package http

import (
	"net/http"

	"github.com/mind-engage/kwash-dashboard/internal/catalog"
	"github.com/mind-engage/kwash-dashboard/internal/storage"
	"github.com/mind-engage/kwash-dashboard/internal/view"
)

func AccessHandler(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, view.BuildAccess(c))
	}
}

func InfrastructureHandler(c *catalog.Catalog, as storage.AssetStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, view.BuildInfrastructure(c, as.URL))
	}
}

func OperationsHandler(c *catalog.Catalog, as storage.AssetStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, view.BuildOperations(c, as.URL))
	}
}
