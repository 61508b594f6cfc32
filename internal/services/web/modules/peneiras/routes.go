package peneiras

import (
	"net/http"

	"github.com/golear/golear/internal/services/web/platform/httpx"
	"github.com/golear/golear/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppPeneiras, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.PeneirasPrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppPeneirasCreate, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppPeneirasCreate, h.handleCreate)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppPeneiraEnrollPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppPeneiraEnrollPattern, h.handleEnrollRoute)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppPeneiraLeavePattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppPeneiraLeavePattern, h.handleLeaveRoute)
	mux.HandleFunc(routepath.PeneirasPrefix, h.WriteNotFound)
}
