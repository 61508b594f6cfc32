package public

import (
	"net/http"

	module "github.com/golear/golear/internal/services/web/module"
	"github.com/golear/golear/internal/services/web/platform/publichandler"
	"github.com/golear/golear/internal/services/web/platform/requestmeta"
	"github.com/golear/golear/internal/services/web/routepath"
)

// Module provides unauthenticated root routes: the landing page, the auth
// forms and the public peneira list.
type Module struct {
	gateway     AuthGateway
	sessions    SessionStarter
	base        publichandler.Base
	requestMeta requestmeta.SchemePolicy
}

// New returns a public module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a public module with explicit gateway, session and
// handler dependencies.
func NewWithGateway(gateway AuthGateway, sessions SessionStarter, base publichandler.Base, policy requestmeta.SchemePolicy) Module {
	return Module{gateway: gateway, sessions: sessions, base: base, requestMeta: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string { return "public" }

// Healthy reports whether the module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil || m.sessions == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires public routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway, m.sessions)
	h := newHandlers(svc, m.base, m.requestMeta)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
