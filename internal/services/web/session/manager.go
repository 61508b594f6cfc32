package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golear/golear/internal/platform/logging"
	"github.com/golear/golear/internal/services/web/storage"
	"github.com/google/uuid"
)

// RememberFallback is how long a remembered session lasts when its token
// carries no exp claim.
const RememberFallback = 30 * 24 * time.Hour

// Errors returned by Manager.
var (
	ErrExpired  = errors.New("token expired")
	ErrNotFound = errors.New("session not found")
)

// Manager creates and resolves sessions.
type Manager struct {
	store  storage.SessionStore
	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger sets the manager logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) { m.logger = logging.OrDiscard(logger) }
}

// NewManager builds a Manager over store.
func NewManager(store storage.SessionStore, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		now:    time.Now,
		newID:  uuid.NewString,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Start stores a session for token. Expired and undecodable tokens are
// rejected.
func (m *Manager) Start(ctx context.Context, token string, remember bool) (storage.Session, error) {
	if m == nil || m.store == nil {
		return storage.Session{}, errors.New("session store is not configured")
	}
	claims, err := DecodeToken(token)
	if err != nil {
		return storage.Session{}, err
	}
	now := m.now().UTC()
	if claims.Expired(now) {
		return storage.Session{}, ErrExpired
	}

	session := storage.Session{
		ID:        m.newID(),
		Token:     strings.TrimSpace(token),
		UserID:    claims.Subject,
		Name:      claims.Name,
		Role:      claims.Role,
		Remember:  remember,
		CreatedAt: now,
		ExpiresAt: claims.ExpiresAt,
	}
	if err := m.store.PutSession(ctx, session); err != nil {
		return storage.Session{}, fmt.Errorf("store session: %w", err)
	}
	m.logger.DebugContext(ctx, "session started", "user_id", session.UserID, "remember", remember)
	return session, nil
}

// Resolve loads the session for id. Sessions whose token expired are dropped
// and reported as ErrNotFound.
func (m *Manager) Resolve(ctx context.Context, id string) (storage.Session, error) {
	if m == nil || m.store == nil {
		return storage.Session{}, ErrNotFound
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return storage.Session{}, ErrNotFound
	}
	session, ok, err := m.store.GetSession(ctx, id)
	if err != nil {
		return storage.Session{}, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return storage.Session{}, ErrNotFound
	}
	if session.Expired(m.now()) || strings.TrimSpace(session.Token) == "" {
		if err := m.store.DeleteSession(ctx, id); err != nil {
			m.logger.WarnContext(ctx, "drop expired session", "error", err)
		}
		return storage.Session{}, ErrNotFound
	}
	return session, nil
}

// End deletes the session for id.
func (m *Manager) End(ctx context.Context, id string) error {
	if m == nil || m.store == nil {
		return nil
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if err := m.store.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// CookieExpiry returns when the browser should forget the session cookie.
// Sessions without "remember me" get the zero time, a browser-session cookie.
func CookieExpiry(s storage.Session) time.Time {
	if !s.Remember {
		return time.Time{}
	}
	if !s.ExpiresAt.IsZero() {
		return s.ExpiresAt
	}
	return s.CreatedAt.Add(RememberFallback)
}

// Sweep removes every expired session.
func (m *Manager) Sweep(ctx context.Context) (int64, error) {
	if m == nil || m.store == nil {
		return 0, nil
	}
	removed, err := m.store.DeleteExpiredSessions(ctx, m.now())
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}
	if removed > 0 {
		m.logger.InfoContext(ctx, "expired sessions removed", "count", removed)
	}
	return removed, nil
}

// RunSweeper calls Sweep every interval until ctx is done.
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := m.Sweep(ctx); err != nil {
				m.logger.WarnContext(ctx, "session sweep failed", "error", err)
			}
		}
	}
}
