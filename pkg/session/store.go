package session

import (
	"context"
	"sync"
	"time"
)

// Store persists sessions.
type Store[S any] interface {
	Create(ctx context.Context, session *Session[S]) error
	// Touch returns the live session for token and extends it by ttl.
	Touch(ctx context.Context, token string, now time.Time, ttl time.Duration) (*Session[S], error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// MemoryStore keeps sessions in a map guarded by a mutex.
type MemoryStore[S any] struct {
	mu       sync.Mutex
	sessions map[string]*Session[S]
	now      func() time.Time
	ticker   *time.Ticker
	done     chan struct{}
	once     sync.Once
}

// NewMemoryStore creates a store. A positive cleanupInterval starts the
// cleanup goroutine; Close stops it.
func NewMemoryStore[S any](cleanupInterval time.Duration, now func() time.Time) *MemoryStore[S] {
	if now == nil {
		now = time.Now
	}
	store := &MemoryStore[S]{
		sessions: make(map[string]*Session[S]),
		now:      now,
		done:     make(chan struct{}),
	}
	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}
	return store
}

func (m *MemoryStore[S]) Create(_ context.Context, session *Session[S]) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Token] = session
	return nil
}

func (m *MemoryStore[S]) Touch(_ context.Context, token string, now time.Time, ttl time.Duration) (*Session[S], error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[token]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if session.IsExpired(now) {
		delete(m.sessions, token)
		return nil, ErrSessionExpired
	}
	session.LastActivityAt = now
	session.ExpiresAt = now.Add(ttl)
	return session, nil
}

func (m *MemoryStore[S]) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}

func (m *MemoryStore[S]) DeleteExpired(_ context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for token, session := range m.sessions {
		if session.IsExpired(now) {
			delete(m.sessions, token)
			removed++
		}
	}
	return removed, nil
}

// Len returns the number of stored sessions, expired ones included.
func (m *MemoryStore[S]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (m *MemoryStore[S]) Close() error {
	m.once.Do(func() {
		if m.ticker != nil {
			m.ticker.Stop()
		}
		close(m.done)
	})
	return nil
}

func (m *MemoryStore[S]) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			_, _ = m.DeleteExpired(context.Background(), m.now())
		case <-m.done:
			return
		}
	}
}
