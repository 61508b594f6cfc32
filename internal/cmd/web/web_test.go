package web

import (
	"flag"
	"path/filepath"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-api-base-url", "https://golear-api.example.com/"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":8080")
	}
	if cfg.APIBaseURL != "https://golear-api.example.com" {
		t.Fatalf("APIBaseURL = %q, want trailing slash trimmed", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 15*time.Second {
		t.Fatalf("APITimeout = %s, want %s", cfg.APITimeout, 15*time.Second)
	}
	if cfg.APIRateLimit != 10 || cfg.APIRateBurst != 20 {
		t.Fatalf("rate = %v/%d, want 10/20", cfg.APIRateLimit, cfg.APIRateBurst)
	}
	if cfg.DBPath != "data/golear-web.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "data/golear-web.db")
	}
	if cfg.NewsCacheTTL != 12*time.Hour {
		t.Fatalf("NewsCacheTTL = %s, want %s", cfg.NewsCacheTTL, 12*time.Hour)
	}
	if cfg.WakeMaxWait != 60*time.Second || cfg.WakeInterval != 5*time.Second {
		t.Fatalf("wake = %s/%s, want 60s/5s", cfg.WakeMaxWait, cfg.WakeInterval)
	}
	if cfg.KeepAliveEnabled {
		t.Fatal("KeepAliveEnabled = true, want false")
	}
	if cfg.KeepAliveInterval != 4*time.Minute+30*time.Second {
		t.Fatalf("KeepAliveInterval = %s, want 4m30s", cfg.KeepAliveInterval)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("logging = %+v, want info/text", cfg.Logging)
	}
}

func TestParseConfigEnvAndFlagOverrides(t *testing.T) {
	t.Setenv("GOLEAR_API_BASE_URL", "http://localhost:3000")
	t.Setenv("GOLEAR_WEB_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("GOLEAR_KEEPALIVE_ENABLED", "true")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-http-addr", "127.0.0.1:9001",
		"-db-path", "",
		"-wake-max-wait", "20s",
		"-log-format", "json",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:3000" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.HTTPAddr != "127.0.0.1:9001" {
		t.Fatalf("HTTPAddr = %q, want flag to win", cfg.HTTPAddr)
	}
	if !cfg.KeepAliveEnabled {
		t.Fatal("KeepAliveEnabled = false, want true from env")
	}
	if cfg.DBPath != "" {
		t.Fatalf("DBPath = %q, want empty", cfg.DBPath)
	}
	if cfg.WakeMaxWait != 20*time.Second {
		t.Fatalf("WakeMaxWait = %s, want 20s", cfg.WakeMaxWait)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("log format = %q, want json", cfg.Logging.Format)
	}
}

func TestParseConfigRequiresAPIBaseURL(t *testing.T) {
	t.Setenv("GOLEAR_API_BASE_URL", "")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error without api base url")
	}
	fs = flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-api-base-url", "ftp://golear"}); err == nil {
		t.Fatal("expected error for non-http api base url")
	}
}

func TestOpenStore(t *testing.T) {
	t.Parallel()

	memory, err := openStore("")
	if err != nil {
		t.Fatalf("openStore(memory) error = %v", err)
	}
	if err := memory.Close(); err != nil {
		t.Fatalf("close memory store: %v", err)
	}

	path := filepath.Join(t.TempDir(), "nested", "web.db")
	store, err := openStore(path)
	if err != nil {
		t.Fatalf("openStore(sqlite) error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close sqlite store: %v", err)
	}
}
