package plans

import (
	"net/http"

	"github.com/golear/golear/internal/services/web/platform/httpx"
	"github.com/golear/golear/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.AppPlans, h.handleCatalog)
	mux.HandleFunc(http.MethodGet+" "+routepath.PlansPrefix+"{$}", h.handleCatalog)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppPlanPattern, h.handlePayment)
	mux.HandleFunc(http.MethodGet+" "+routepath.AppPlanCheckoutPattern, httpx.MethodNotAllowed(http.MethodPost))
	mux.HandleFunc(http.MethodPost+" "+routepath.AppPlanCheckoutPattern, h.handleCheckout)
	mux.HandleFunc(routepath.PlansPrefix, h.WriteNotFound)
}
