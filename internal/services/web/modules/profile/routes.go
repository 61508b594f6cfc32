package profile

import (
	"net/http"

	"github.com/golear/golear/internal/services/web/platform/httpx"
	"github.com/golear/golear/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProfile, h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProfilePrefix+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProfileEdit, h.handleEditPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.AppProfileEdit, h.handleSave)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProfileStats, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppProfileStats, h.handleStats)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppProfilePicture, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppProfilePicture, h.handlePicture)
	mux.HandleFunc(routepath.ProfilePrefix, h.WriteNotFound)
}
