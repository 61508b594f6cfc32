package users

import (
	"net/http"

	"github.com/golear/golear/internal/services/web/platform/httpx"
	"github.com/golear/golear/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppUsers, h.handleDirectory)
	mux.HandleFunc(http.MethodGet+" "+routepath.UsersPrefix+"{$}", h.handleDirectory)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppUserPattern, h.handleProfileRoute)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppUserConnectPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppUserConnectPattern, h.handleConnectRoute)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppUserDisconnectPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppUserDisconnectPattern, h.handleDisconnectRoute)
	mux.HandleFunc(routepath.UsersPrefix, h.WriteNotFound)
}
