package competicoes

import (
	"net/http"

	module "github.com/golear/golear/internal/services/web/module"
	"github.com/golear/golear/internal/services/web/platform/modulehandler"
	"github.com/golear/golear/internal/services/web/routepath"
)

// Module provides the competition listing and the club create form.
type Module struct {
	gateway CompeticaoGateway
	base    modulehandler.Base
}

// New returns a competicoes module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a competicoes module with explicit dependencies.
func NewWithGateway(gateway CompeticaoGateway, base modulehandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "competicoes" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires competicoes route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.CompeticoesPrefix, Handler: mux}, nil
}
