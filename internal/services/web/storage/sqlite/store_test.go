package sqlite

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	webstorage "github.com/golear/golear/internal/services/web/storage"
	_ "modernc.org/sqlite"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "golear-web.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store, path
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	_, path := openTestStore(t)

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	assertTableExists(t, sqlDB, "sessions")
	assertTableExists(t, sqlDB, "cache_entries")
	assertTableExists(t, sqlDB, "schema_migrations")

	var applied int
	if err := sqlDB.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&applied); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if applied != 2 {
		t.Fatalf("applied migrations = %d, want 2", applied)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golear-web.db")
	first, err := Open(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	second, err := Open(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	if err := second.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat db: %v", err)
	}
}

func TestSessionPersistenceRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	createdAt := time.Now().UTC().Truncate(time.Millisecond)
	expiresAt := createdAt.Add(time.Hour)
	want := webstorage.Session{
		ID:        "sess-1",
		Token:     "jwt-token",
		UserID:    "42",
		Name:      "Ana",
		Role:      "Jogador",
		Remember:  true,
		CreatedAt: createdAt,
		ExpiresAt: expiresAt,
	}
	if err := store.PutSession(ctx, want); err != nil {
		t.Fatalf("put session: %v", err)
	}

	got, found, err := store.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !found {
		t.Fatal("expected session row")
	}
	if !got.CreatedAt.Equal(want.CreatedAt) || !got.ExpiresAt.Equal(want.ExpiresAt) {
		t.Fatalf("times = %v/%v, want %v/%v", got.CreatedAt, got.ExpiresAt, want.CreatedAt, want.ExpiresAt)
	}
	got.CreatedAt, got.ExpiresAt = want.CreatedAt, want.ExpiresAt
	if got != want {
		t.Fatalf("session = %+v, want %+v", got, want)
	}

	if err := store.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}
	if _, found, err := store.GetSession(ctx, "sess-1"); err != nil || found {
		t.Fatalf("GetSession() after delete = %v, %v, want not found", found, err)
	}
}

func TestDeleteExpiredSessions(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for _, session := range []webstorage.Session{
		{ID: "expired", Token: "a", ExpiresAt: now.Add(-time.Minute)},
		{ID: "live", Token: "b", ExpiresAt: now.Add(time.Hour)},
		{ID: "no-expiry", Token: "c"},
	} {
		if err := store.PutSession(ctx, session); err != nil {
			t.Fatalf("put %s: %v", session.ID, err)
		}
	}

	removed, err := store.DeleteExpiredSessions(ctx, now)
	if err != nil {
		t.Fatalf("delete expired: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	for _, id := range []string{"live", "no-expiry"} {
		if _, found, _ := store.GetSession(ctx, id); !found {
			t.Fatalf("expected %s to remain", id)
		}
	}
}

func TestCacheEntryRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	refreshedAt := time.Now().UTC().Truncate(time.Millisecond)
	entry := webstorage.CacheEntry{
		Key:         "newsCache",
		Scope:       "news",
		Payload:     []byte(`[{"title":"Gol"}]`),
		RefreshedAt: refreshedAt,
		ExpiresAt:   refreshedAt.Add(12 * time.Hour),
	}
	if err := store.PutCacheEntry(ctx, entry); err != nil {
		t.Fatalf("put cache entry: %v", err)
	}

	entry.Payload = []byte(`[]`)
	if err := store.PutCacheEntry(ctx, entry); err != nil {
		t.Fatalf("upsert cache entry: %v", err)
	}

	got, found, err := store.GetCacheEntry(ctx, "newsCache")
	if err != nil {
		t.Fatalf("get cache entry: %v", err)
	}
	if !found {
		t.Fatal("expected cache entry")
	}
	if string(got.Payload) != `[]` {
		t.Fatalf("payload = %q, want %q", got.Payload, `[]`)
	}
	if !got.RefreshedAt.Equal(refreshedAt) || !got.ExpiresAt.Equal(entry.ExpiresAt) {
		t.Fatalf("times = %v/%v, want %v/%v", got.RefreshedAt, got.ExpiresAt, refreshedAt, entry.ExpiresAt)
	}

	if err := store.DeleteCacheEntry(ctx, "newsCache"); err != nil {
		t.Fatalf("delete cache entry: %v", err)
	}
	if _, found, _ := store.GetCacheEntry(ctx, "newsCache"); found {
		t.Fatal("expected cache entry to be deleted")
	}
}

func TestCacheEntryValidation(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	if err := store.PutCacheEntry(ctx, webstorage.CacheEntry{Key: " "}); err == nil {
		t.Fatal("expected error for blank key")
	}
	if err := store.PutCacheEntry(ctx, webstorage.CacheEntry{Key: "k"}); err == nil {
		t.Fatal("expected error for empty payload")
	}
	if _, _, err := store.GetCacheEntry(ctx, ""); err == nil {
		t.Fatal("expected error for blank key lookup")
	}
}

func TestNilStoreReportsNotConfigured(t *testing.T) {
	var store *Store
	if err := store.PutSession(context.Background(), webstorage.Session{ID: "a", Token: "b"}); err == nil {
		t.Fatal("expected error for nil store")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close nil store: %v", err)
	}
}

func assertTableExists(t *testing.T, sqlDB *sql.DB, table string) {
	t.Helper()
	var name string
	err := sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
	if err != nil {
		t.Fatalf("table %s missing: %v", table, err)
	}
}
