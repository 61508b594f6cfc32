package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/golear/golear/internal/services/web/module"
	"github.com/golear/golear/internal/services/web/platform/requestmeta"
)

func noContent(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func stubAt(id, prefix string) stubModule {
	return stubModule{id: id, mount: module.Mount{Prefix: prefix, Handler: http.HandlerFunc(noContent)}}
}

func TestComposeRejectsBadModuleSets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   ComposeInput
		wantErr string
	}{
		{
			name:    "duplicate prefix",
			input:   ComposeInput{PublicModules: []module.Module{stubAt("one", "/peneiras/"), stubAt("two", "/peneiras/")}},
			wantErr: `duplicates prefix "/peneiras/" owned by module "one"`,
		},
		{
			name:    "nil public module",
			input:   ComposeInput{PublicModules: []module.Module{nil}},
			wantErr: "public module is nil",
		},
		{
			name:    "nil protected module",
			input:   ComposeInput{ProtectedModules: []module.Module{nil}},
			wantErr: "protected module is nil",
		},
		{
			name:    "protected module outside app",
			input:   ComposeInput{ProtectedModules: []module.Module{stubAt("peneiras", "/peneiras/")}},
			wantErr: "must mount under /app/",
		},
		{
			name:    "public module inside app",
			input:   ComposeInput{PublicModules: []module.Module{stubAt("feed", "/app/feed/")}},
			wantErr: "protected prefix",
		},
		{
			name:    "missing handler",
			input:   ComposeInput{PublicModules: []module.Module{stubModule{id: "public", mount: module.Mount{Prefix: "/"}}}},
			wantErr: "handler is required",
		},
		{
			name:    "mount error",
			input:   ComposeInput{ProtectedModules: []module.Module{stubModule{id: "plans", err: http.ErrAbortHandler}}},
			wantErr: `mount module "plans"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := Compose(tc.input)
			if err == nil {
				t.Fatalf("Compose() error = nil, want %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Compose() error = %q, want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestComposeRejectsInvalidPrefixes(t *testing.T) {
	t.Parallel()

	for _, prefix := range []string{"peneiras/", "/peneiras", "/peneiras/ ", ""} {
		_, err := Compose(ComposeInput{PublicModules: []module.Module{stubAt("bad", prefix)}})
		if err == nil {
			t.Fatalf("Compose(%q) error = nil, want invalid prefix", prefix)
		}
		if got := err.Error(); !strings.Contains(got, "invalid prefix") || !strings.Contains(got, `"bad"`) {
			t.Fatalf("Compose(%q) error = %q", prefix, got)
		}
	}
}

func TestComposeRedirectsAnonymousVisitors(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		AuthRequired:     func(*http.Request) bool { return false },
		PublicModules:    []module.Module{stubModule{id: "public", mount: module.Mount{Prefix: "/", Handler: http.NotFoundHandler()}}},
		ProtectedModules: []module.Module{stubAt("feed", "/app/feed/"), stubAt("peneiras", "/app/peneiras/")},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	tests := []struct {
		name         string
		method       string
		target       string
		htmx         bool
		wantStatus   int
		wantLocation string
		wantHX       string
	}{
		{
			name:         "page read keeps return path",
			method:       http.MethodGet,
			target:       "/app/feed/posts?page=2",
			wantStatus:   http.StatusFound,
			wantLocation: "/login?next=%2Fapp%2Ffeed%2Fposts%3Fpage%3D2",
		},
		{
			name:         "slashless root is protected",
			method:       http.MethodGet,
			target:       "/app/feed",
			wantStatus:   http.StatusFound,
			wantLocation: "/login?next=%2Fapp%2Ffeed",
		},
		{
			name:         "form post drops return path",
			method:       http.MethodPost,
			target:       "/app/peneiras/7/enroll",
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
		},
		{
			name:       "htmx request gets client redirect",
			method:     http.MethodGet,
			target:     "/app/peneiras/",
			htmx:       true,
			wantStatus: http.StatusOK,
			wantHX:     "/login?next=%2Fapp%2Fpeneiras%2F",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(tc.method, tc.target, nil)
			if tc.htmx {
				req.Header.Set("HX-Request", "true")
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
			if got := rr.Header().Get("Location"); got != tc.wantLocation {
				t.Fatalf("Location = %q, want %q", got, tc.wantLocation)
			}
			if got := rr.Header().Get("HX-Redirect"); got != tc.wantHX {
				t.Fatalf("HX-Redirect = %q, want %q", got, tc.wantHX)
			}
		})
	}
}

func TestComposeMountsPublicModulesWithoutAuth(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		AuthRequired:  func(*http.Request) bool { return false },
		PublicModules: []module.Module{stubAt("peneiras", "/peneiras/")},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/peneiras/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestComposeGuardsCookieMutations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		policy     requestmeta.SchemePolicy
		target     string
		host       string
		origin     string
		forwarded  string
		noCookie   bool
		wantStatus int
	}{
		{
			name:       "no origin proof",
			target:     "/app/feed/posts/12/like",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "same origin",
			target:     "https://golear.example.test/app/feed/posts/12/like",
			host:       "golear.example.test",
			origin:     "https://golear.example.test",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "origin scheme differs",
			target:     "https://golear.example.test/app/feed/posts/12/like",
			host:       "golear.example.test",
			origin:     "http://golear.example.test",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "forwarded proto untrusted by default",
			target:     "http://golear.example.test/app/feed/posts/12/like",
			host:       "golear.example.test",
			origin:     "https://golear.example.test",
			forwarded:  "https",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "forwarded proto trusted",
			policy:     requestmeta.SchemePolicy{TrustForwardedProto: true},
			target:     "http://golear.example.test/app/feed/posts/12/like",
			host:       "golear.example.test",
			origin:     "https://golear.example.test",
			forwarded:  "https",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "origin omits non-default port",
			target:     "https://golear.example.test:8443/app/feed/posts/12/like",
			host:       "golear.example.test:8443",
			origin:     "https://golear.example.test",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no session cookie skips the guard",
			target:     "/app/feed/posts/12/like",
			noCookie:   true,
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h, err := Compose(ComposeInput{
				AuthRequired:        func(*http.Request) bool { return true },
				RequestSchemePolicy: tc.policy,
				ProtectedModules:    []module.Module{stubAt("feed", "/app/feed/")},
			})
			if err != nil {
				t.Fatalf("Compose() error = %v", err)
			}
			req := httptest.NewRequest(http.MethodPost, tc.target, nil)
			if tc.host != "" {
				req.Host = tc.host
			}
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-Proto", tc.forwarded)
			}
			if !tc.noCookie {
				req.AddCookie(&http.Cookie{Name: "golear_session", Value: "ws-1"})
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)
			if rr.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tc.wantStatus)
			}
		})
	}
}

func TestComposeAllowsSignedInReads(t *testing.T) {
	t.Parallel()

	h, err := Compose(ComposeInput{
		AuthRequired:     func(*http.Request) bool { return true },
		ProtectedModules: []module.Module{stubAt("plans", "/app/plans/")},
	})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/app/plans", nil)
	req.AddCookie(&http.Cookie{Name: "golear_session", Value: "ws-1"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string {
	return s.id
}

func (s stubModule) Mount() (module.Mount, error) {
	return s.mount, s.err
}
