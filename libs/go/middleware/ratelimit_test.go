package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/chessclub/club-events-api/libs/go/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRecorder struct {
	mu      sync.Mutex
	limited map[string]int
}

func (r *countingRecorder) RateLimited(limiter string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.limited == nil {
		r.limited = map[string]int{}
	}
	r.limited[limiter]++
}

type failingStore struct{}

func (failingStore) Take(context.Context, string) (LimitStatus, bool, error) {
	return LimitStatus{}, false, errors.New("connection refused")
}

func (failingStore) Peek(context.Context, string) (LimitStatus, error) {
	return LimitStatus{}, errors.New("connection refused")
}

func newFrozenStore(rps float64, burst int, now time.Time) *MemoryStore {
	s := NewMemoryStore(rps, burst)
	s.now = func() time.Time { return now }
	return s
}

func limitedRouter(rl *RateLimiter, pre ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(pre...)
	router.Use(rl.Middleware())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func doGet(router http.Handler, path, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = ip + ":12345"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_Middleware(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("allows burst then rejects", func(t *testing.T) {
		store := newFrozenStore(1, 3, now)
		defer store.Close()
		rec := &countingRecorder{}
		router := limitedRouter(NewRateLimiter("default", store, rec))

		for i := 0; i < 3; i++ {
			w := doGet(router, "/test", "10.0.0.1")
			require.Equal(t, http.StatusOK, w.Code, "request %d", i)
			assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		}

		w := doGet(router, "/test", "10.0.0.1")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
		assert.Equal(t, 1, rec.limited["default"])
	})

	t.Run("clients are counted separately", func(t *testing.T) {
		store := newFrozenStore(1, 1, now)
		defer store.Close()
		router := limitedRouter(NewRateLimiter("default", store, nil))

		assert.Equal(t, http.StatusOK, doGet(router, "/test", "10.0.0.2").Code)
		assert.Equal(t, http.StatusTooManyRequests, doGet(router, "/test", "10.0.0.2").Code)
		assert.Equal(t, http.StatusOK, doGet(router, "/test", "10.0.0.3").Code)
	})

	t.Run("health is never limited", func(t *testing.T) {
		store := newFrozenStore(1, 1, now)
		defer store.Close()
		router := limitedRouter(NewRateLimiter("default", store, nil))

		for i := 0; i < 5; i++ {
			assert.Equal(t, http.StatusOK, doGet(router, "/health", "10.0.0.4").Code)
		}
	})

	t.Run("store failure lets request through", func(t *testing.T) {
		router := limitedRouter(NewRateLimiter("default", failingStore{}, nil))
		assert.Equal(t, http.StatusOK, doGet(router, "/test", "10.0.0.5").Code)
	})

	t.Run("authenticated callers keyed by user", func(t *testing.T) {
		store := newFrozenStore(1, 1, now)
		defer store.Close()
		userID := uuid.New()
		withUser := func(c *gin.Context) {
			auth.SetSession(c, auth.Session{UserID: userID, Role: "organizer"})
			c.Next()
		}
		router := limitedRouter(NewRateLimiter("strict", store, nil), withUser)

		assert.Equal(t, http.StatusOK, doGet(router, "/test", "10.0.0.6").Code)
		// same user from another address shares the bucket
		assert.Equal(t, http.StatusTooManyRequests, doGet(router, "/test", "10.0.0.7").Code)
	})
}

func TestMemoryStore_RefillAndStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newFrozenStore(2, 4, now)
	defer store.Close()
	ctx := context.Background()

	st, err := store.Peek(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 4, st.Remaining)
	assert.Equal(t, 2, st.WindowSeconds)

	for i := 0; i < 4; i++ {
		_, ok, _ := store.Take(ctx, "k")
		require.True(t, ok)
	}
	st, ok, _ := store.Take(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, st.Remaining)
	assert.Equal(t, now.Add(2*time.Second), st.ResetAt)

	now = now.Add(time.Second)
	store.now = func() time.Time { return now }
	st, err = store.Peek(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, 2, st.Remaining)
}

func TestMemoryStore_EvictIdle(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newFrozenStore(1, 1, now)
	defer store.Close()

	_, _, _ = store.Take(context.Background(), "idle")
	store.now = func() time.Time { return now.Add(11 * time.Minute) }
	store.evictIdle()

	_, ok := store.limiters.Load("idle")
	assert.False(t, ok)
}

func TestRateLimiter_Status(t *testing.T) {
	store := newFrozenStore(1, 5, time.Now())
	defer store.Close()
	rl := NewRateLimiter("default", store, nil)

	c, _ := testutil.TestContext(t)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/v1/rate-limit/status", nil)
	c.Request.RemoteAddr = "10.1.1.1:999"

	st, err := rl.Status(c)
	require.NoError(t, err)
	assert.Equal(t, "ip:10.1.1.1", st.Identifier)
	assert.Equal(t, 5, st.Limit)
	assert.Equal(t, 5, st.Remaining)
}

func TestRedisStore_Windows(t *testing.T) {
	s := NewRedisStore(nil, 10, time.Minute)
	now := time.Date(2025, 6, 1, 12, 0, 42, 0, time.UTC)

	key, reset := s.windowKey("strict:user:1", now)
	assert.Equal(t, "ratelimit:strict:user:1:1748779200", key)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 1, 0, 0, time.UTC), reset)

	next, _ := s.windowKey("strict:user:1", now.Add(18*time.Second))
	assert.NotEqual(t, key, next)

	st := s.status(12, reset)
	assert.Equal(t, 0, st.Remaining)
	assert.Equal(t, 60, st.WindowSeconds)
	assert.Equal(t, 7, s.status(3, reset).Remaining)
}
