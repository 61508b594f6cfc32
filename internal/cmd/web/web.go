// Package web parses web command flags and launches the web service.
package web

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	entrypoint "github.com/golear/golear/internal/platform/cmd"
	"github.com/golear/golear/internal/platform/config"
	"github.com/golear/golear/internal/platform/logging"
	"github.com/golear/golear/internal/services/golearapi"
	"github.com/golear/golear/internal/services/web"
	"github.com/golear/golear/internal/services/web/backend"
	"github.com/golear/golear/internal/services/web/news"
	"github.com/golear/golear/internal/services/web/platform/requestmeta"
	checkout "github.com/golear/golear/internal/services/web/plans"
	"github.com/golear/golear/internal/services/web/session"
	"github.com/golear/golear/internal/services/web/storage"
	"github.com/golear/golear/internal/services/web/storage/sqlite"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const sessionSweepInterval = time.Hour

// Config holds web command configuration.
type Config struct {
	HTTPAddr            string        `env:"GOLEAR_WEB_HTTP_ADDR" envDefault:":8080"`
	APIBaseURL          string        `env:"GOLEAR_API_BASE_URL"`
	APIDevToken         string        `env:"GOLEAR_API_DEV_TOKEN"`
	APITimeout          time.Duration `env:"GOLEAR_API_TIMEOUT" envDefault:"15s"`
	APIRateLimit        float64       `env:"GOLEAR_API_RATE_LIMIT" envDefault:"10"`
	APIRateBurst        int           `env:"GOLEAR_API_RATE_BURST" envDefault:"20"`
	DBPath              string        `env:"GOLEAR_WEB_DB_PATH" envDefault:"data/golear-web.db"`
	NewsAPIURL          string        `env:"GOLEAR_NEWS_API_URL" envDefault:"https://api.apitube.io/v1/news"`
	NewsAPIToken        string        `env:"GOLEAR_NEWS_API_TOKEN"`
	NewsCacheTTL        time.Duration `env:"GOLEAR_NEWS_CACHE_TTL" envDefault:"12h"`
	WakeMaxWait         time.Duration `env:"GOLEAR_WAKE_MAX_WAIT" envDefault:"60s"`
	WakeInterval        time.Duration `env:"GOLEAR_WAKE_INTERVAL" envDefault:"5s"`
	KeepAliveEnabled    bool          `env:"GOLEAR_KEEPALIVE_ENABLED" envDefault:"false"`
	KeepAliveInterval   time.Duration `env:"GOLEAR_KEEPALIVE_INTERVAL" envDefault:"4m30s"`
	TrustForwardedProto bool          `env:"GOLEAR_TRUST_FORWARDED_PROTO" envDefault:"false"`
	Logging             logging.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Golear REST API base URL")
	fs.DurationVar(&cfg.APITimeout, "api-timeout", cfg.APITimeout, "Golear REST API request timeout")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite path for sessions and cache (empty keeps them in memory)")
	fs.StringVar(&cfg.NewsAPIURL, "news-api-url", cfg.NewsAPIURL, "News API endpoint")
	fs.DurationVar(&cfg.NewsCacheTTL, "news-cache-ttl", cfg.NewsCacheTTL, "News cache freshness window")
	fs.DurationVar(&cfg.WakeMaxWait, "wake-max-wait", cfg.WakeMaxWait, "How long to wait for the API to wake up")
	fs.DurationVar(&cfg.WakeInterval, "wake-interval", cfg.WakeInterval, "Delay between API wake-up probes")
	fs.BoolVar(&cfg.KeepAliveEnabled, "keepalive", cfg.KeepAliveEnabled, "Keep probing the API after it wakes")
	fs.DurationVar(&cfg.KeepAliveInterval, "keepalive-interval", cfg.KeepAliveInterval, "Delay between keep-alive rounds")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto for secure cookies")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.Logging.Format, "log-format", cfg.Logging.Format, "Log format: text or json")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	baseURL, err := config.RequireURL(config.EnvPrefix+"API_BASE_URL", cfg.APIBaseURL)
	if err != nil {
		return Config{}, err
	}
	cfg.APIBaseURL = baseURL
	cfg.DBPath = strings.TrimSpace(cfg.DBPath)
	return cfg, nil
}

// Run starts the web service and its background workers.
func Run(ctx context.Context, cfg Config) error {
	options := entrypoint.RunOptions{Logging: cfg.Logging}
	return entrypoint.Run(ctx, entrypoint.ServiceWeb, options, func(ctx context.Context, logger *slog.Logger) error {
		return run(ctx, cfg, logger)
	})
}

func run(ctx context.Context, cfg Config, logger *slog.Logger) error {
	store, err := openStore(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close web store", "error", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	api, err := golearapi.New(golearapi.Config{
		BaseURL:    cfg.APIBaseURL,
		HTTPClient: &http.Client{Timeout: cfg.APITimeout},
		DevToken:   cfg.APIDevToken,
		RateLimit:  cfg.APIRateLimit,
		RateBurst:  cfg.APIRateBurst,
		Registerer: registry,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	sessions := session.NewManager(store, session.WithLogger(logger))
	monitor := backend.NewMonitor(api, backend.Config{
		MaxWait:           cfg.WakeMaxWait,
		Interval:          cfg.WakeInterval,
		KeepAlive:         cfg.KeepAliveEnabled,
		KeepAliveInterval: cfg.KeepAliveInterval,
		Logger:            logger,
	})

	serverCfg := web.Config{
		HTTPAddr:            cfg.HTTPAddr,
		API:                 api,
		Sessions:            sessions,
		Backend:             monitor,
		Payments:            checkout.SimulatedProcessor{},
		Registry:            registry,
		RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Logger:              logger,
	}
	if strings.TrimSpace(cfg.NewsAPIToken) != "" {
		client, err := news.NewClient(cfg.NewsAPIURL, cfg.NewsAPIToken, nil)
		if err != nil {
			return fmt.Errorf("init news client: %w", err)
		}
		serverCfg.News = news.NewService(client, store, news.WithTTL(cfg.NewsCacheTTL), news.WithLogger(logger))
	} else {
		logger.Info("news api token not set, news sidebar disabled")
	}

	server, err := web.NewServer(ctx, serverCfg)
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	workerCtx, stopWorkers := context.WithCancel(ctx)
	var workers sync.WaitGroup
	workers.Go(func() { _ = monitor.Run(workerCtx) })
	workers.Go(func() { _ = sessions.RunSweeper(workerCtx, sessionSweepInterval) })
	defer func() {
		stopWorkers()
		workers.Wait()
	}()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}

// openStore opens the SQLite store at path, or a memory store when path is
// empty.
func openStore(path string) (storage.Store, error) {
	if path == "" {
		return storage.NewMemory(), nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open web store: %w", err)
	}
	return store, nil
}
