package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golear/golear/internal/services/web/platform/sessioncookie"
	"github.com/golear/golear/internal/services/web/routepath"
	"github.com/golear/golear/internal/services/web/session"
	"github.com/golear/golear/internal/services/web/storage"
	"github.com/prometheus/client_golang/prometheus"
)

type fakeReadiness bool

func (f fakeReadiness) Ready() bool { return bool(f) }

func signedSession(t *testing.T, manager *session.Manager) storage.Session {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "42",
		"name": "Ana Souza",
		"role": "Olheiro",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	started, err := manager.Start(context.Background(), token, false)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return started
}

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func TestHealthzReportsBackendReadiness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		backend    Readiness
		wantStatus int
		wantBody   string
	}{
		{name: "ready", backend: fakeReadiness(true), wantStatus: http.StatusOK, wantBody: "ok"},
		{name: "waking", backend: fakeReadiness(false), wantStatus: http.StatusServiceUnavailable, wantBody: "waking"},
		{name: "no monitor", wantStatus: http.StatusOK, wantBody: "ok"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h := newTestHandler(t, Config{Backend: tc.backend})
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, HealthPath, nil))
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			var body healthResponse
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode health body: %v", err)
			}
			if body.Status != tc.wantBody {
				t.Fatalf("status field = %q, want %q", body.Status, tc.wantBody)
			}
		})
	}
}

func TestHealthzRejectsPost(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, HealthPath, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}

func TestMetricsEndpointExposesRequestCounters(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	h := newTestHandler(t, Config{Registry: registry})
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, HealthPath, nil))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, MetricsPath, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if body := rr.Body.String(); !strings.Contains(body, "golear_web_http_requests_total") {
		t.Fatalf("metrics body missing request counter:\n%s", body)
	}
}

func TestStaticAssetsAreServed(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	for _, path := range []string{"/static/golear.css", "/static/golear.js"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusOK)
		}
	}
}

func TestProtectedRouteRedirectsWithoutSession(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{Sessions: session.NewManager(storage.NewMemory())})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.AppPlans, nil))
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
	if got, want := rr.Header().Get("Location"), routepath.LoginWithNext(routepath.AppPlans); got != want {
		t.Fatalf("Location = %q, want %q", got, want)
	}
}

func TestProtectedRouteRendersForSignedInViewer(t *testing.T) {
	t.Parallel()

	manager := session.NewManager(storage.NewMemory())
	started := signedSession(t, manager)
	h := newTestHandler(t, Config{Sessions: manager, Backend: fakeReadiness(true)})

	req := httptest.NewRequest(http.MethodGet, routepath.AppPlans+"?lang=en-US", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: started.ID})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `data-plan-id="amador"`) {
		t.Fatalf("plans page missing catalog:\n%s", body)
	}
	if !strings.Contains(body, "Ana Souza") {
		t.Fatalf("navbar missing viewer name")
	}
	if strings.Contains(body, `id="backend-waking"`) {
		t.Fatalf("ready backend should not show the waking banner")
	}
}

func TestWakingBackendShowsBanner(t *testing.T) {
	t.Parallel()

	manager := session.NewManager(storage.NewMemory())
	started := signedSession(t, manager)
	h := newTestHandler(t, Config{Sessions: manager, Backend: fakeReadiness(false)})

	req := httptest.NewRequest(http.MethodGet, routepath.AppPlans, nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: started.ID})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if !strings.Contains(rr.Body.String(), `id="backend-waking"`) {
		t.Fatalf("waking backend should show the banner")
	}
}

func TestUnknownSessionCookieIsSignedOut(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{Sessions: session.NewManager(storage.NewMemory())})
	req := httptest.NewRequest(http.MethodGet, routepath.AppSearch, nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "missing"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusFound)
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for empty http address")
	}
	srv, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	srv.Close()
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	srv, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.ListenAndServe(ctx) }()
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestListenAndServeNilServer(t *testing.T) {
	t.Parallel()

	var srv *Server
	if err := srv.ListenAndServe(context.Background()); err == nil {
		t.Fatal("expected error for nil server")
	}
}
