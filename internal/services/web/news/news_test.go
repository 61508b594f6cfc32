package news

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golear/golear/internal/services/web/storage"
)

func TestClientFetchSendsExpectedRequest(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer news-token" {
			t.Errorf("Authorization = %q, want %q", got, "Bearer news-token")
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		query := r.URL.Query()
		if query.Get("category") != "soccer" || query.Get("country") != "BR" || query.Get("limit") != "10" {
			t.Errorf("query = %v", query)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"articles":[{"title":"Flamengo vence","url":"https://n/1","subtitle":"Clássico"}]}`))
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, " news-token ", nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	items, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(items) != 1 || items[0].Title != "Flamengo vence" || items[0].Subtitle != "Clássico" {
		t.Fatalf("items = %+v", items)
	}
}

func TestClientFetchRejectsErrorStatus(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewClient(srv.URL, "", nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for 429")
	}
}

func TestNewClientDefaultsEndpoint(t *testing.T) {
	t.Parallel()

	client, err := NewClient("", "", nil)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.endpoint != DefaultURL {
		t.Fatalf("endpoint = %q, want %q", client.endpoint, DefaultURL)
	}
	if _, err := NewClient("not a url", "", nil); err == nil {
		t.Fatal("expected error for invalid endpoint")
	}
}

type fakeFetcher struct {
	items []Item
	err   error
	calls int
}

func (f *fakeFetcher) Fetch(context.Context) ([]Item, error) {
	f.calls++
	return f.items, f.err
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func TestLatestServesCacheUntilExpiry(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{items: []Item{{Title: "A", URL: "https://n/a"}}}
	clk := &clock{now: time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)}
	svc := NewService(fetcher, storage.NewMemory(), WithClock(clk.Now))

	if got := svc.Latest(context.Background()); len(got) != 1 {
		t.Fatalf("Latest() = %v, want one item", got)
	}
	fetcher.items = []Item{{Title: "B"}}

	clk.now = clk.now.Add(11 * time.Hour)
	if got := svc.Latest(context.Background()); got[0].Title != "A" {
		t.Fatalf("Latest() title = %q, want cached %q", got[0].Title, "A")
	}
	if fetcher.calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", fetcher.calls)
	}

	clk.now = clk.now.Add(time.Hour)
	if got := svc.Latest(context.Background()); got[0].Title != "B" {
		t.Fatalf("Latest() title = %q, want refreshed %q", got[0].Title, "B")
	}
	if fetcher.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", fetcher.calls)
	}
}

func TestLatestDoesNotCacheEmptyResults(t *testing.T) {
	t.Parallel()

	fetcher := &fakeFetcher{}
	cache := storage.NewMemory()
	svc := NewService(fetcher, cache)

	if got := svc.Latest(context.Background()); len(got) != 0 {
		t.Fatalf("Latest() = %v, want empty", got)
	}
	_ = svc.Latest(context.Background())
	if fetcher.calls != 2 {
		t.Fatalf("fetch calls = %d, want 2", fetcher.calls)
	}
	if _, ok, _ := cache.GetCacheEntry(context.Background(), CacheKey); ok {
		t.Fatal("expected no cache entry for empty result")
	}
}

func TestLatestReturnsEmptyOnFetchError(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeFetcher{err: errors.New("boom")}, nil)
	if got := svc.Latest(context.Background()); got != nil {
		t.Fatalf("Latest() = %v, want nil", got)
	}
}

func TestLatestTreatsCorruptCacheAsMiss(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cache := storage.NewMemory()
	if err := cache.PutCacheEntry(ctx, storage.CacheEntry{Key: CacheKey, Payload: []byte("{not json")}); err != nil {
		t.Fatalf("seed cache: %v", err)
	}
	fetcher := &fakeFetcher{items: []Item{{Title: "fresh"}}}
	svc := NewService(fetcher, cache, WithTTL(time.Hour))

	got := svc.Latest(ctx)
	if len(got) != 1 || got[0].Title != "fresh" {
		t.Fatalf("Latest() = %v, want fetched item", got)
	}
	if fetcher.calls != 1 {
		t.Fatalf("fetch calls = %d, want 1", fetcher.calls)
	}
}
