package cmd

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"testing"

	"github.com/golear/golear/internal/platform/logging"
)

type testConfig struct {
	Address string `env:"CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string `env:"CMD_TEST_MODE" envDefault:"server"`
}

func TestParseConfigThenFlagsOverride(t *testing.T) {
	t.Setenv("CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("CMD_TEST_MODE", "env-mode")

	var cfg testConfig
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.StringVar(&cfg.Address, "address", cfg.Address, "address")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")

	if err := ParseArgs(fs, []string{"-address", "flag:9001"}); err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
	if cfg.Address != "flag:9001" {
		t.Fatalf("Address = %q, want flag value", cfg.Address)
	}
	if cfg.Mode != "env-mode" {
		t.Fatalf("Mode = %q, want env value", cfg.Mode)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("CMD_TEST_ADDRESS", "")
	t.Setenv("CMD_TEST_MODE", "")

	var cfg testConfig
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Address != "127.0.0.1:8080" || cfg.Mode != "server" {
		t.Fatalf("ParseConfig() = %+v, want defaults", cfg)
	}
}

func TestParseInputsRequired(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("ParseConfig(nil) error = nil")
	}
	if err := ParseArgs(nil, nil); err == nil {
		t.Fatal("ParseArgs(nil) error = nil")
	}
	if err := ParseArgs(flag.NewFlagSet("nil-args", flag.ContinueOnError), nil); err != nil {
		t.Fatalf("ParseArgs(nil args) error = %v", err)
	}
}

func TestRunRejectsMissingInputs(t *testing.T) {
	run := func(context.Context, *slog.Logger) error { return nil }
	if err := Run(context.Background(), " ", RunOptions{}, run); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := Run(context.Background(), ServiceWeb, RunOptions{}, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunRejectsBadLogLevel(t *testing.T) {
	run := func(context.Context, *slog.Logger) error { return nil }
	if err := Run(context.Background(), ServiceWeb, RunOptions{Logging: logging.Config{Level: "loud"}}, run); err == nil {
		t.Fatal("expected log level error")
	}
}

func TestRunPassesLoggerAndReturnsRunError(t *testing.T) {
	t.Setenv("GOLEAR_OTEL_ENDPOINT", "")
	want := errors.New("backend never woke")
	var got *slog.Logger
	err := Run(context.Background(), ServiceKeepAlive, RunOptions{}, func(_ context.Context, logger *slog.Logger) error {
		got = logger
		return want
	})
	if !errors.Is(err, want) {
		t.Fatalf("Run() error = %v, want %v", err, want)
	}
	if got == nil {
		t.Fatal("expected logger to be passed to run")
	}
}
