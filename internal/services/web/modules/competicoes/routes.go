package competicoes

import (
	"net/http"

	"github.com/golear/golear/internal/services/web/platform/httpx"
	"github.com/golear/golear/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppCompeticoes, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.CompeticoesPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppCompeticoesCreate, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppCompeticoesCreate, h.handleCreate)
	mux.HandleFunc(routepath.CompeticoesPrefix, h.WriteNotFound)
}
