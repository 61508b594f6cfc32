package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mark := func(label string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called += label
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called += "h"
		noContent(w, r)
	}), mark("1"), nil, mark("2"))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestChainNilHandlerIsNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Chain(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestMethodNotAllowedListsMethods(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	MethodNotAllowed(http.MethodGet, http.MethodHead)(rr, httptest.NewRequest(http.MethodPost, "/healthz", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		want     func(string) bool
	}{
		{
			name: "generated when missing",
			want: func(id string) bool { return strings.HasPrefix(id, requestIDPrefix) },
		},
		{
			name:     "incoming kept",
			incoming: "req-123",
			want:     func(id string) bool { return id == "req-123" },
		},
		{
			name:     "oversized replaced",
			incoming: strings.Repeat("x", maxRequestIDLength+1),
			want:     func(id string) bool { return strings.HasPrefix(id, requestIDPrefix) },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var seen string
			h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = RequestIDFrom(r)
				noContent(w, r)
			}))
			req := httptest.NewRequest(http.MethodGet, "/app/feed", nil)
			if tc.incoming != "" {
				req.Header.Set(requestIDHeader, tc.incoming)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			echoed := rr.Header().Get(requestIDHeader)
			if !tc.want(echoed) {
				t.Fatalf("echoed id = %q", echoed)
			}
			if seen != echoed {
				t.Fatalf("handler id = %q, echoed %q", seen, echoed)
			}
		})
	}
}

type boundIDKey struct{}

func TestRequestIDBindsContext(t *testing.T) {
	t.Parallel()

	bind := func(ctx context.Context, id string) context.Context {
		return context.WithValue(ctx, boundIDKey{}, id)
	}
	var bound string
	h := RequestID(bind, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bound, _ = r.Context().Value(boundIDKey{}).(string)
		noContent(w, r)
	}))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(requestIDHeader, "req-bound")
	h.ServeHTTP(httptest.NewRecorder(), req)
	if bound != "req-bound" {
		t.Fatalf("bound id = %q, want %q", bound, "req-bound")
	}
}

func TestRequestIDFromFallsBackToDash(t *testing.T) {
	t.Parallel()

	if got := RequestIDFrom(nil); got != "-" {
		t.Fatalf("RequestIDFrom(nil) = %q, want -", got)
	}
	if got := RequestIDFrom(httptest.NewRequest(http.MethodGet, "/", nil)); got != "-" {
		t.Fatalf("RequestIDFrom(no header) = %q, want -", got)
	}
}

func TestRecoverPanicLogsAndReturns500(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buffer, nil))
	h := RecoverPanic(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	req := httptest.NewRequest(http.MethodGet, "/app/plans", nil)
	req.Header.Set(requestIDHeader, "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	for _, marker := range []string{"panic recovered", "path=/app/plans", "request_id=req-123", "panic=boom"} {
		if !strings.Contains(buffer.String(), marker) {
			t.Fatalf("panic log missing %q: %q", marker, buffer.String())
		}
	}
}

func TestRecoverPanicReraisesAbortHandler(t *testing.T) {
	t.Parallel()

	h := RecoverPanic(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	defer func() {
		if recovered := recover(); recovered != http.ErrAbortHandler {
			t.Fatalf("recovered = %v, want ErrAbortHandler", recovered)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteJSON(rr, http.StatusServiceUnavailable, map[string]string{"status": "waking"}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "waking" {
		t.Fatalf("body = %v", body)
	}
	if err := WriteJSON(nil, http.StatusOK, nil); err == nil {
		t.Fatal("WriteJSON(nil) error = nil")
	}
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMXRequest(req) || IsHTMXRequest(nil) {
		t.Fatal("IsHTMXRequest() = true without header")
	}
	req.Header.Set(htmxHeader, "true")
	if !IsHTMXRequest(req) {
		t.Fatal("IsHTMXRequest() = false with header")
	}
}

func TestWriteRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		req          *http.Request
		wantStatus   int
		wantLocation string
		wantHX       string
	}{
		{
			name:         "browser",
			req:          httptest.NewRequest(http.MethodPost, "/login", nil),
			wantStatus:   http.StatusFound,
			wantLocation: "/app/feed",
		},
		{
			name: "htmx",
			req: func() *http.Request {
				r := httptest.NewRequest(http.MethodPost, "/login", nil)
				r.Header.Set(htmxHeader, "true")
				return r
			}(),
			wantStatus: http.StatusOK,
			wantHX:     "/app/feed",
		},
		{
			name:         "nil request",
			wantStatus:   http.StatusFound,
			wantLocation: "/app/feed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rr := httptest.NewRecorder()
			WriteRedirect(rr, tc.req, "/app/feed")
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if got := rr.Header().Get("Location"); got != tc.wantLocation {
				t.Fatalf("Location = %q, want %q", got, tc.wantLocation)
			}
			if got := rr.Header().Get(htmxRedirectHeader); got != tc.wantHX {
				t.Fatalf("HX-Redirect = %q, want %q", got, tc.wantHX)
			}
		})
	}
	WriteRedirect(nil, nil, "/")
}
