package storage

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// Memory is a process-local Store used by tests and DB-less runs.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]Session
	cache    map[string]CacheEntry
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		sessions: map[string]Session{},
		cache:    map[string]CacheEntry{},
	}
}

func (m *Memory) PutSession(_ context.Context, session Session) error {
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return errors.New("session id is required")
	}
	if strings.TrimSpace(session.Token) == "" {
		return errors.New("session token is required")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return nil
}

func (m *Memory) GetSession(_ context.Context, id string) (Session, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[strings.TrimSpace(id)]
	return session, ok, nil
}

func (m *Memory) DeleteSession(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, strings.TrimSpace(id))
	return nil
}

func (m *Memory) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var removed int64
	for id, session := range m.sessions {
		if session.Expired(now) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (m *Memory) GetCacheEntry(_ context.Context, key string) (CacheEntry, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.cache[strings.TrimSpace(key)]
	if !ok {
		return CacheEntry{}, false, nil
	}
	entry.Payload = append([]byte(nil), entry.Payload...)
	return entry, true, nil
}

func (m *Memory) PutCacheEntry(_ context.Context, entry CacheEntry) error {
	entry.Key = strings.TrimSpace(entry.Key)
	if entry.Key == "" {
		return errors.New("cache key is required")
	}
	if len(entry.Payload) == 0 {
		return errors.New("cache payload is required")
	}
	if entry.RefreshedAt.IsZero() {
		entry.RefreshedAt = time.Now().UTC()
	}
	entry.Payload = append([]byte(nil), entry.Payload...)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache[entry.Key] = entry
	return nil
}

func (m *Memory) DeleteCacheEntry(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cache, strings.TrimSpace(key))
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }

var _ Store = (*Memory)(nil)
