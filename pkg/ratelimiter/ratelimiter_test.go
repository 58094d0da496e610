package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/pagekit/pkg/ratelimiter"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0), ratelimiter.WithClock(clock.Now))
	t.Cleanup(func() { _ = store.Close() })

	b, err := ratelimiter.NewBucket(store, cfg, ratelimiter.WithBucketClock(clock.Now))
	require.NoError(t, err)
	return b, store, clock
}

func TestNewBucketValidatesConfig(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	for name, cfg := range map[string]ratelimiter.Config{
		"capacity": {Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		"rate":     {Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		"interval": {Capacity: 1, RefillRate: 1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ratelimiter.NewBucket(store, cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}
}

func TestBucket(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b, _, clock := newBucket(t, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Second})

	res, err := b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed())
	assert.Equal(t, 1, res.Remaining)
	assert.Equal(t, 2, res.Limit)

	res, err = b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Remaining)

	res, err = b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.False(t, res.Allowed())
	assert.Equal(t, time.Second, res.RetryAfter())

	// Denied requests do not consume, so one refill is enough.
	clock.Advance(time.Second)
	res, err = b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.True(t, res.Allowed())

	clock.Advance(time.Hour)
	res, err = b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining, "refill is capped at capacity")

	other, err := b.Allow(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, 1, other.Remaining, "keys have separate buckets")

	_, err = b.AllowN(ctx, "k", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)

	require.NoError(t, b.Reset(ctx, "k"))
	res, err = b.Allow(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 1, res.Remaining)
}

func TestMemoryStoreRemoveStale(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	clock := &fakeClock{now: time.Now()}
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithStaleAfter(time.Minute),
		ratelimiter.WithClock(clock.Now),
	)
	defer store.Close()

	cfg := ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second}
	_, _, err := store.ConsumeTokens(ctx, "old", 1, cfg)
	require.NoError(t, err)
	clock.Advance(2 * time.Minute)
	_, _, err = store.ConsumeTokens(ctx, "fresh", 1, cfg)
	require.NoError(t, err)

	assert.Equal(t, 1, store.RemoveStale())
	assert.Equal(t, 1, store.Len())
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	b, _, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Minute})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	keyFunc := func(r *http.Request) string {
		if r.Method == http.MethodGet {
			return ""
		}
		return "client"
	}

	var denied bool
	h := ratelimiter.Middleware(b, keyFunc, ratelimiter.WithDeniedHandler(func(w http.ResponseWriter, r *http.Request, res ratelimiter.Result) {
		denied = true
		w.WriteHeader(http.StatusTooManyRequests)
	}))(next)

	do := func(method string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(method, "/", nil))
		return rec
	}

	rec := do(http.MethodPost)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = do(http.MethodPost)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.True(t, denied)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	rec = do(http.MethodGet)
	assert.Equal(t, http.StatusNoContent, rec.Code, "empty key skips limiting")
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

type failingStore struct{}

func (failingStore) ConsumeTokens(context.Context, string, int, ratelimiter.Config) (int, time.Time, error) {
	return 0, time.Time{}, errors.New("down")
}

func (failingStore) Reset(context.Context, string) error { return nil }

func TestMiddlewareStoreError(t *testing.T) {
	t.Parallel()

	b, err := ratelimiter.NewBucket(failingStore{}, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	require.NoError(t, err)

	h := ratelimiter.Middleware(b, func(*http.Request) string { return "k" })(http.NotFoundHandler())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
