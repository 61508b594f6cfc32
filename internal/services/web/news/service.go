package news

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/golear/golear/internal/platform/logging"
	"github.com/golear/golear/internal/services/web/storage"
)

// Cache settings.
const (
	CacheKey   = "newsCache"
	CacheScope = "news"
	DefaultTTL = 12 * time.Hour
)

// Service serves headlines from the cache while it is fresh.
type Service struct {
	fetcher Fetcher
	cache   storage.CacheStore
	ttl     time.Duration
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logging.OrDiscard(logger) }
}

// NewService builds a Service. A nil cache falls back to an in-memory store.
func NewService(fetcher Fetcher, cache storage.CacheStore, opts ...Option) *Service {
	if cache == nil {
		cache = storage.NewMemory()
	}
	s := &Service{
		fetcher: fetcher,
		cache:   cache,
		ttl:     DefaultTTL,
		now:     time.Now,
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "news")
	return s
}

// Latest returns cached headlines when fresh, otherwise fetches and caches
// them. Fetch failures are logged and yield an empty list.
func (s *Service) Latest(ctx context.Context) []Item {
	if s == nil {
		return nil
	}
	now := s.now()
	if items, ok := s.cached(ctx, now); ok {
		return items
	}
	if s.fetcher == nil {
		return nil
	}

	items, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "news fetch failed", "error", err)
		return nil
	}
	if len(items) == 0 {
		return nil
	}

	payload, err := json.Marshal(items)
	if err != nil {
		s.logger.WarnContext(ctx, "encode news cache", "error", err)
		return items
	}
	if err := s.cache.PutCacheEntry(ctx, storage.CacheEntry{
		Key:         CacheKey,
		Scope:       CacheScope,
		Payload:     payload,
		RefreshedAt: now,
		ExpiresAt:   now.Add(s.ttl),
	}); err != nil {
		s.logger.WarnContext(ctx, "store news cache", "error", err)
	}
	return items
}

func (s *Service) cached(ctx context.Context, now time.Time) ([]Item, bool) {
	entry, ok, err := s.cache.GetCacheEntry(ctx, CacheKey)
	if err != nil {
		s.logger.WarnContext(ctx, "read news cache", "error", err)
		return nil, false
	}
	if !ok || !entry.Fresh(now) {
		return nil, false
	}
	var items []Item
	if err := json.Unmarshal(entry.Payload, &items); err != nil {
		s.logger.WarnContext(ctx, "corrupt news cache", "error", err)
		return nil, false
	}
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}
