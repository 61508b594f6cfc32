package plans

import (
	"net/http"

	module "github.com/golear/golear/internal/services/web/module"
	"github.com/golear/golear/internal/services/web/platform/modulehandler"
	checkout "github.com/golear/golear/internal/services/web/plans"
	"github.com/golear/golear/internal/services/web/routepath"
)

// Module provides the subscription catalog and the simulated checkout.
type Module struct {
	processor checkout.Processor
	base      modulehandler.Base
}

// New returns a plans module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithProcessor returns a plans module with an explicit processor.
func NewWithProcessor(processor checkout.Processor, base modulehandler.Base) Module {
	return Module{processor: processor, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "plans" }

// Healthy reports whether a payment processor is configured.
func (m Module) Healthy() bool {
	return m.processor != nil
}

// Mount wires plan catalog and checkout handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.processor), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.PlansPrefix, Handler: mux}, nil
}
