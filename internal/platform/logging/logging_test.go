package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNewTextLoggerWritesPlainAttributes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(&buf, Config{Level: "debug", Format: "text"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("backend woke", "elapsed", "1.25s")

	out := buf.String()
	for _, marker := range []string{"backend woke", "elapsed=1.25s"} {
		if !strings.Contains(out, marker) {
			t.Fatalf("log output missing %q: %q", marker, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no colour codes for non-terminal writer: %q", out)
	}
}

func TestNewJSONLoggerHonoursLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := New(&buf, Config{Level: "warn", Format: "json"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept", "op", "Feed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one record, got %d: %q", len(lines), buf.String())
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record["msg"] != "kept" || record["op"] != "Feed" {
		t.Fatalf("record = %v", record)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	if _, err := New(&bytes.Buffer{}, Config{Format: "xml"}); err == nil {
		t.Fatal("expected unknown format error")
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    slog.Level
		wantErr bool
	}{
		{raw: "", want: slog.LevelInfo},
		{raw: "debug", want: slog.LevelDebug},
		{raw: "WARN", want: slog.LevelWarn},
		{raw: "error", want: slog.LevelError},
		{raw: "loud", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseLevel(%q) expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseLevel(%q) error = %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestOrDiscardNeverReturnsNil(t *testing.T) {
	t.Parallel()

	if OrDiscard(nil) == nil {
		t.Fatal("expected discard logger")
	}
}
