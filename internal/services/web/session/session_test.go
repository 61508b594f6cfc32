package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golear/golear/internal/services/web/storage"
)

var testNow = time.Date(2026, 4, 10, 15, 0, 0, 0, time.UTC)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestDecodeTokenReadsClaims(t *testing.T) {
	t.Parallel()

	token := signToken(t, jwt.MapClaims{
		"sub":   "42",
		"name":  "Ana",
		"email": "ana@golear.com",
		"role":  "Jogador",
		"exp":   testNow.Add(time.Hour).Unix(),
	})
	claims, err := DecodeToken(token)
	if err != nil {
		t.Fatalf("DecodeToken() error = %v", err)
	}
	if claims.Subject != "42" || claims.Name != "Ana" || claims.Email != "ana@golear.com" || claims.Role != "Jogador" {
		t.Fatalf("claims = %+v", claims)
	}
	if !claims.ExpiresAt.Equal(testNow.Add(time.Hour)) {
		t.Fatalf("ExpiresAt = %v, want %v", claims.ExpiresAt, testNow.Add(time.Hour))
	}
	if claims.Expired(testNow) {
		t.Fatal("Expired() = true, want false")
	}
	if !claims.Expired(testNow.Add(time.Hour)) {
		t.Fatal("Expired() at exp = false, want true")
	}
}

func TestDecodeTokenAcceptsNumericID(t *testing.T) {
	t.Parallel()

	claims, err := DecodeToken(signToken(t, jwt.MapClaims{"id": 7, "role": "Clube"}))
	if err != nil {
		t.Fatalf("DecodeToken() error = %v", err)
	}
	if claims.Subject != "7" {
		t.Fatalf("Subject = %q, want %q", claims.Subject, "7")
	}
	if !claims.ExpiresAt.IsZero() || claims.Expired(testNow) {
		t.Fatal("expected token without exp to never expire")
	}
}

func TestDecodeTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "   ", "not-a-jwt", "a.b.c"} {
		if _, err := DecodeToken(raw); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("DecodeToken(%q) error = %v, want ErrInvalidToken", raw, err)
		}
	}
}

func newTestManager(store storage.SessionStore, now *time.Time) *Manager {
	m := NewManager(store, WithClock(func() time.Time { return *now }))
	m.newID = func() string { return "sess-1" }
	return m
}

func TestManagerStartResolveEnd(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := testNow
	store := storage.NewMemory()
	manager := newTestManager(store, &now)
	token := signToken(t, jwt.MapClaims{"sub": "42", "name": "Ana", "role": "Olheiro", "exp": testNow.Add(2 * time.Hour).Unix()})

	started, err := manager.Start(ctx, token, true)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if started.ID != "sess-1" || started.UserID != "42" || started.Role != "Olheiro" || !started.Remember {
		t.Fatalf("session = %+v", started)
	}

	resolved, err := manager.Resolve(ctx, "sess-1")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if resolved.Token != token {
		t.Fatal("resolved token mismatch")
	}

	if err := manager.End(ctx, "sess-1"); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if _, err := manager.Resolve(ctx, "sess-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve() after End error = %v, want ErrNotFound", err)
	}
}

func TestManagerStartRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	now := testNow
	manager := newTestManager(storage.NewMemory(), &now)
	token := signToken(t, jwt.MapClaims{"sub": "1", "exp": testNow.Add(-time.Minute).Unix()})
	if _, err := manager.Start(context.Background(), token, false); !errors.Is(err, ErrExpired) {
		t.Fatalf("Start() error = %v, want ErrExpired", err)
	}
}

func TestManagerResolveDropsExpiredSession(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := testNow
	store := storage.NewMemory()
	manager := newTestManager(store, &now)
	token := signToken(t, jwt.MapClaims{"sub": "1", "exp": testNow.Add(time.Minute).Unix()})
	if _, err := manager.Start(ctx, token, false); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	now = testNow.Add(2 * time.Minute)
	if _, err := manager.Resolve(ctx, "sess-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve() error = %v, want ErrNotFound", err)
	}
	if _, ok, _ := store.GetSession(ctx, "sess-1"); ok {
		t.Fatal("expected expired session to be deleted")
	}
}

func TestManagerSweep(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	now := testNow
	store := storage.NewMemory()
	_ = store.PutSession(ctx, storage.Session{ID: "old", Token: "t", ExpiresAt: testNow.Add(-time.Second)})
	_ = store.PutSession(ctx, storage.Session{ID: "new", Token: "t", ExpiresAt: testNow.Add(time.Hour)})

	removed, err := newTestManager(store, &now).Sweep(ctx)
	if err != nil {
		t.Fatalf("Sweep() error = %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
}

func TestManagerResolveBlankID(t *testing.T) {
	t.Parallel()

	now := testNow
	manager := newTestManager(storage.NewMemory(), &now)
	if _, err := manager.Resolve(context.Background(), " "); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Resolve(blank) error = %v, want ErrNotFound", err)
	}
}

func TestCookieExpiry(t *testing.T) {
	t.Parallel()

	exp := testNow.Add(2 * time.Hour)
	tests := []struct {
		name    string
		session storage.Session
		want    time.Time
	}{
		{name: "browser session", session: storage.Session{CreatedAt: testNow, ExpiresAt: exp}, want: time.Time{}},
		{name: "remembered until token expiry", session: storage.Session{Remember: true, CreatedAt: testNow, ExpiresAt: exp}, want: exp},
		{name: "remembered without exp", session: storage.Session{Remember: true, CreatedAt: testNow}, want: testNow.Add(RememberFallback)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := CookieExpiry(tc.session); !got.Equal(tc.want) {
				t.Fatalf("CookieExpiry() = %v, want %v", got, tc.want)
			}
		})
	}
}
