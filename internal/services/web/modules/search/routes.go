package search

import (
	"net/http"

	"github.com/golear/golear/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppSearch, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.SearchPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(routepath.SearchPrefix, h.WriteNotFound)
}
