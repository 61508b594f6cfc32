// Package web hosts the browser-facing Golear service.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golear/golear/internal/platform/logging"
	"github.com/golear/golear/internal/platform/timeouts"
	"github.com/golear/golear/internal/services/golearapi"
	webapp "github.com/golear/golear/internal/services/web/app"
	"github.com/golear/golear/internal/services/web/modules"
	"github.com/golear/golear/internal/services/web/modules/feed"
	"github.com/golear/golear/internal/services/web/platform/httpx"
	"github.com/golear/golear/internal/services/web/platform/observability"
	"github.com/golear/golear/internal/services/web/platform/requestmeta"
	checkout "github.com/golear/golear/internal/services/web/plans"
	"github.com/golear/golear/internal/services/web/session"
	webstatic "github.com/golear/golear/internal/services/web/static"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Paths served outside the module registry.
const (
	HealthPath  = "/healthz"
	MetricsPath = "/metrics"
	StaticPath  = "/static/"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// API is the remote Golear client; nil leaves every API-backed module
	// in degraded mode.
	API      *golearapi.Client
	Sessions *session.Manager
	News     feed.NewsSource
	Backend  Readiness
	Payments checkout.Processor
	// Registry serves /metrics; nil gets a fresh registry.
	Registry            *prometheus.Registry
	RequestSchemePolicy requestmeta.SchemePolicy
	Logger              *slog.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *slog.Logger
}

type healthResponse struct {
	Status  string `json:"status"`
	Circuit string `json:"circuit,omitempty"`
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	logger := logging.OrDiscard(cfg.Logger)
	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics, err := observability.NewHTTPMetrics(registry)
	if err != nil {
		return nil, fmt.Errorf("register http metrics: %w", err)
	}

	principal := newPrincipalResolver(cfg)
	resolvers := modules.ModuleResolvers{
		ResolveViewer:   principal.resolveViewer,
		ResolveSignedIn: principal.resolveRequestSignedIn,
		ResolveUserID:   principal.resolveRequestUserID,
		ResolveLanguage: principal.resolveRequestLanguage,
		ResolveToken:    principal.resolveRequestToken,
		EndSession:      principal.endSession,
	}
	deps := moduleDependencies(cfg)
	h, err := webapp.BuildRootHandler(webapp.Config{
		PublicModules:       modules.DefaultPublicModules(deps, resolvers),
		ProtectedModules:    modules.DefaultProtectedModules(deps, resolvers),
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	}, principal.authRequired())
	if err != nil {
		return nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(HealthPath, healthHandler(cfg))
	rootMux.Handle(MetricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	rootMux.Handle(StaticPath, webstatic.Handler(StaticPath))
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(golearapi.WithRequestID),
		withRequestPrincipalState(),
		observability.RequestLogger(logger),
		metrics.Middleware(),
	), nil
}

// moduleDependencies only sets client fields when the client exists so
// modules see a nil interface rather than a typed nil.
func moduleDependencies(cfg Config) modules.Dependencies {
	deps := modules.Dependencies{
		News:                cfg.News,
		PaymentProcessor:    cfg.Payments,
		RequestSchemePolicy: cfg.RequestSchemePolicy,
	}
	if cfg.Sessions != nil {
		deps.Sessions = cfg.Sessions
	}
	if api := cfg.API; api != nil {
		deps.AuthClient = api
		deps.PostClient = api
		deps.PeneiraClient = api
		deps.CompeticaoClient = api
		deps.ProfileClient = api
		deps.UserClient = api
		deps.SearchClient = api
	}
	return deps
}

func healthHandler(cfg Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			httpx.MethodNotAllowed(http.MethodGet, http.MethodHead)(w, r)
			return
		}
		status := http.StatusOK
		payload := healthResponse{Status: "ok"}
		if cfg.Backend != nil && !cfg.Backend.Ready() {
			status = http.StatusServiceUnavailable
			payload.Status = "waking"
		}
		if cfg.API != nil {
			payload.Circuit = cfg.API.CircuitState()
		}
		_ = httpx.WriteJSON(w, status, payload)
	})
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		logger: logging.OrDiscard(cfg.Logger),
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.InfoContext(ctx, "web listening", "addr", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
