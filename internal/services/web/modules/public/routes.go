package public

import (
	"net/http"

	"github.com/golear/golear/internal/services/web/platform/httpx"
	"github.com/golear/golear/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" /{$}", h.handleLanding)
	mux.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleLoginPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Login, h.handleLogin)
	mux.HandleFunc(http.MethodGet+" "+routepath.Logout, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogout)
	mux.HandleFunc(http.MethodGet+" "+routepath.Register, h.handleRegisterPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.Register, h.handleRegister)
	mux.HandleFunc(http.MethodGet+" "+routepath.RecoverPassword, h.handleRecoverPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.RecoverPassword, h.handleRecover)
	mux.HandleFunc(http.MethodGet+" "+routepath.Peneiras, h.handlePeneiras)
	mux.HandleFunc("/", h.WriteNotFound)
}
