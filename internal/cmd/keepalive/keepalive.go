// Package keepalive parses keepalive command flags and runs the probe loop.
package keepalive

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"time"

	entrypoint "github.com/golear/golear/internal/platform/cmd"
	"github.com/golear/golear/internal/platform/config"
	"github.com/golear/golear/internal/platform/logging"
	"github.com/golear/golear/internal/services/golearapi"
	"github.com/golear/golear/internal/services/web/backend"
)

// ErrNotWoken reports that the API never answered the initial wake-up.
var ErrNotWoken = errors.New("backend did not wake")

// Config holds keepalive command configuration.
type Config struct {
	APIBaseURL    string        `env:"GOLEAR_API_BASE_URL"`
	WakeMaxWait   time.Duration `env:"GOLEAR_WAKE_MAX_WAIT" envDefault:"60s"`
	WakeInterval  time.Duration `env:"GOLEAR_WAKE_INTERVAL" envDefault:"5s"`
	Interval      time.Duration `env:"GOLEAR_KEEPALIVE_INTERVAL" envDefault:"4m30s"`
	ProbeMaxWait  time.Duration `env:"GOLEAR_KEEPALIVE_PROBE_WAIT" envDefault:"10s"`
	ProbeInterval time.Duration `env:"GOLEAR_KEEPALIVE_PROBE_INTERVAL" envDefault:"2s"`
	Logging       logging.Config
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "Golear REST API base URL")
	fs.DurationVar(&cfg.WakeMaxWait, "wake-max-wait", cfg.WakeMaxWait, "How long to wait for the API to wake up")
	fs.DurationVar(&cfg.WakeInterval, "wake-interval", cfg.WakeInterval, "Delay between wake-up probes")
	fs.DurationVar(&cfg.Interval, "interval", cfg.Interval, "Delay between keep-alive rounds")
	fs.DurationVar(&cfg.ProbeMaxWait, "probe-wait", cfg.ProbeMaxWait, "Time budget of one keep-alive round")
	fs.DurationVar(&cfg.ProbeInterval, "probe-interval", cfg.ProbeInterval, "Delay between probes within a round")
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
	return cfg, nil
}

// Run wakes the API and keeps probing it until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	options := entrypoint.RunOptions{Logging: cfg.Logging}
	return entrypoint.Run(ctx, entrypoint.ServiceKeepAlive, options, func(ctx context.Context, logger *slog.Logger) error {
		api, err := golearapi.New(golearapi.Config{BaseURL: cfg.APIBaseURL, Logger: logger})
		if err != nil {
			return fmt.Errorf("init api client: %w", err)
		}
		return run(ctx, api, cfg, logger)
	})
}

func run(ctx context.Context, prober backend.Prober, cfg Config, logger *slog.Logger) error {
	monitor := backend.NewMonitor(prober, backend.Config{
		MaxWait:           cfg.WakeMaxWait,
		Interval:          cfg.WakeInterval,
		KeepAlive:         true,
		KeepAliveInterval: cfg.Interval,
		ProbeMaxWait:      cfg.ProbeMaxWait,
		ProbeInterval:     cfg.ProbeInterval,
		Logger:            logger,
		FailFast:          true,
	})
	if err := monitor.Run(ctx); err != nil {
		return err
	}
	if ctx.Err() == nil && !monitor.Ready() {
		return ErrNotWoken
	}
	return nil
}
