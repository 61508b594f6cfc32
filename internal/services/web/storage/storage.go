package storage

import (
	"context"
	"time"
)

// Session binds an opaque browser cookie to a remote bearer token.
type Session struct {
	ID        string
	Token     string
	UserID    string
	Name      string
	Role      string
	Remember  bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// CacheEntry stores one cached payload and its freshness metadata.
//
// Cache data is always derived and can be discarded and rebuilt from the
// upstream source.
type CacheEntry struct {
	Key         string
	Scope       string
	Payload     []byte
	RefreshedAt time.Time
	ExpiresAt   time.Time
}

// Fresh reports whether the entry can still be served at now.
func (e CacheEntry) Fresh(now time.Time) bool {
	if len(e.Payload) == 0 {
		return false
	}
	return e.ExpiresAt.IsZero() || now.Before(e.ExpiresAt)
}

// SessionStore persists browser sessions.
type SessionStore interface {
	PutSession(ctx context.Context, session Session) error
	GetSession(ctx context.Context, id string) (Session, bool, error)
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// CacheStore persists derived cache payloads.
type CacheStore interface {
	GetCacheEntry(ctx context.Context, key string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, key string) error
}

// Store is the full web persistence contract.
type Store interface {
	SessionStore
	CacheStore
	Close() error
}
