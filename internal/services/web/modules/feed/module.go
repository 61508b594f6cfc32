package feed

import (
	"net/http"

	module "github.com/golear/golear/internal/services/web/module"
	"github.com/golear/golear/internal/services/web/platform/modulehandler"
	"github.com/golear/golear/internal/services/web/routepath"
)

// Module provides the authenticated feed: posts, likes, comments and the
// news sidebar.
type Module struct {
	gateway FeedGateway
	news    NewsSource
	base    modulehandler.Base
}

// New returns a feed module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a feed module with explicit gateway, news and
// handler dependencies.
func NewWithGateway(gateway FeedGateway, news NewsSource, base modulehandler.Base) Module {
	return Module{gateway: gateway, news: news, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "feed" }

// Healthy reports whether the feed module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires feed route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway, m.news)
	h := newHandlers(svc, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.FeedPrefix, Handler: mux}, nil
}
