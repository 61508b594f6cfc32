// Package cmd holds the startup sequence shared by Golear commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/golear/golear/internal/platform/config"
	"github.com/golear/golear/internal/platform/logging"
	"github.com/golear/golear/internal/platform/otel"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// Service identifiers used for telemetry resources and log attributes.
const (
	ServiceWeb       = "web"
	ServiceKeepAlive = "keepalive"
)

// Version is stamped at build time with -ldflags "-X ...cmd.Version=...".
var Version = "dev"

// RunOptions controls shared entrypoint behavior for service commands.
type RunOptions struct {
	// ShutdownTimeout bounds the final span flush.
	ShutdownTimeout time.Duration
	// Logging selects level and format; zero value logs text at info.
	Logging logging.Config
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags on top of the env defaults already
// bound to fs.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// Run configures logging and tracing for service, then executes run with the
// service logger. Tracing spans are flushed after run returns.
func Run(ctx context.Context, service string, options RunOptions, run func(context.Context, *slog.Logger) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	logger, err := logging.Setup(options.Logging)
	if err != nil {
		return err
	}
	logger = logger.With("service", service)

	shutdown, err := otel.Setup(ctx, "golear-"+service)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		timeout := options.ShutdownTimeout
		if timeout <= 0 {
			timeout = defaultOTelShutdownTimeout
		}
		flushCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			logger.Warn("otel shutdown", "error", err)
		}
	}()

	logger.InfoContext(ctx, "starting", "version", Version)
	return run(ctx, logger)
}
