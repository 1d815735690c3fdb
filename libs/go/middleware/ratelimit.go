package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/chessclub/club-events-api/libs/go/client/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// LimitStatus is a caller's standing against one limiter
type LimitStatus struct {
	Identifier    string    `json:"identifier"`
	Limit         int       `json:"limit"`
	Remaining     int       `json:"remaining"`
	ResetAt       time.Time `json:"reset_at"`
	WindowSeconds int       `json:"window_seconds"`
}

// LimitStore counts requests per key. Take consumes one request; Peek only reports.
type LimitStore interface {
	Take(ctx context.Context, key string) (LimitStatus, bool, error)
	Peek(ctx context.Context, key string) (LimitStatus, error)
}

// LimitedRecorder is notified when a request is rejected
type LimitedRecorder interface {
	RateLimited(limiter string)
}

// RateLimiter applies one named limit to requests
type RateLimiter struct {
	name     string
	store    LimitStore
	recorder LimitedRecorder
}

// NewRateLimiter creates a named limiter backed by store
func NewRateLimiter(name string, store LimitStore, recorder LimitedRecorder) *RateLimiter {
	return &RateLimiter{name: name, store: store, recorder: recorder}
}

// Name returns the limiter's name as shown in status responses
func (rl *RateLimiter) Name() string {
	return rl.name
}

// Status reports the caller's counters without consuming a request
func (rl *RateLimiter) Status(c *gin.Context) (LimitStatus, error) {
	id := ClientIdentifier(c)
	st, err := rl.store.Peek(c.Request.Context(), rl.name+":"+id)
	st.Identifier = id
	return st, err
}

// ClientIdentifier keys authenticated callers by user and everyone else by IP
func ClientIdentifier(c *gin.Context) string {
	if s, ok := auth.GetSession(c); ok {
		return "user:" + s.UserID.String()
	}
	ip := c.ClientIP()
	if ip == "" {
		ip = "unknown"
	}
	return "ip:" + ip
}

// Middleware rejects requests over the limit with 429. Store failures let the
// request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/health" {
			c.Next()
			return
		}

		id := ClientIdentifier(c)
		st, allowed, err := rl.store.Take(c.Request.Context(), rl.name+":"+id)
		if err != nil {
			LogWithCorrelationID(c.Request.Context()).Warn("Rate limit store unavailable",
				zap.String("limiter", rl.name),
				zap.Error(err))
			c.Next()
			return
		}

		setLimitHeaders(c, st)
		if !allowed {
			if rl.recorder != nil {
				rl.recorder.RateLimited(rl.name)
			}
			retryAfter := int(time.Until(st.ResetAt).Seconds()) + 1
			if retryAfter < 1 {
				retryAfter = 1
			}
			LogWithCorrelationID(c.Request.Context()).Warn("Rate limit exceeded",
				zap.String("limiter", rl.name),
				zap.String("client_id", id),
				zap.String("path", c.Request.URL.Path))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please try again later.",
				"retry_after": retryAfter,
			})
			return
		}

		c.Next()
	}
}

func setLimitHeaders(c *gin.Context, st LimitStatus) {
	c.Header("X-RateLimit-Limit", strconv.Itoa(st.Limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(st.Remaining))
	c.Header("X-RateLimit-Reset", strconv.FormatInt(st.ResetAt.Unix(), 10))
}

// MemoryStore is an in-process token bucket per key. Idle buckets are
// evicted by a background sweep until Close is called.
type MemoryStore struct {
	limiters sync.Map
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration
	now      func() time.Time
	done     chan struct{}
	once     sync.Once
}

type limiterEntry struct {
	limiter *rate.Limiter
	mu      sync.Mutex
	lastUse time.Time
}

// NewMemoryStore allows requestsPerSecond with the given burst per key
func NewMemoryStore(requestsPerSecond float64, burst int) *MemoryStore {
	s := &MemoryStore{
		rate:    rate.Limit(requestsPerSecond),
		burst:   burst,
		idleTTL: 10 * time.Minute,
		now:     time.Now,
		done:    make(chan struct{}),
	}
	go s.cleanup(5 * time.Minute)
	return s
}

// Close stops the eviction sweep
func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *MemoryStore) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.evictIdle()
		}
	}
}

func (s *MemoryStore) evictIdle() {
	now := s.now()
	s.limiters.Range(func(key, value interface{}) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		idle := now.Sub(entry.lastUse) > s.idleTTL
		entry.mu.Unlock()
		if idle {
			s.limiters.Delete(key)
		}
		return true
	})
}

func (s *MemoryStore) entry(key string) *limiterEntry {
	if v, ok := s.limiters.Load(key); ok {
		return v.(*limiterEntry)
	}
	fresh := &limiterEntry{limiter: rate.NewLimiter(s.rate, s.burst), lastUse: s.now()}
	actual, _ := s.limiters.LoadOrStore(key, fresh)
	return actual.(*limiterEntry)
}

func (s *MemoryStore) Take(_ context.Context, key string) (LimitStatus, bool, error) {
	e := s.entry(key)
	now := s.now()

	e.mu.Lock()
	e.lastUse = now
	allowed := e.limiter.AllowN(now, 1)
	st := s.status(e.limiter, now)
	e.mu.Unlock()

	return st, allowed, nil
}

func (s *MemoryStore) Peek(_ context.Context, key string) (LimitStatus, error) {
	now := s.now()
	v, ok := s.limiters.Load(key)
	if !ok {
		return s.status(rate.NewLimiter(s.rate, s.burst), now), nil
	}
	e := v.(*limiterEntry)
	e.mu.Lock()
	defer e.mu.Unlock()
	return s.status(e.limiter, now), nil
}

func (s *MemoryStore) status(l *rate.Limiter, now time.Time) LimitStatus {
	tokens := l.TokensAt(now)
	remaining := int(tokens)
	if remaining < 0 {
		remaining = 0
	}
	// time until the bucket is full again
	var refill time.Duration
	if missing := float64(s.burst) - tokens; missing > 0 && s.rate > 0 {
		refill = time.Duration(missing / float64(s.rate) * float64(time.Second))
	}
	window := 1
	if s.rate > 0 {
		window = int(float64(s.burst)/float64(s.rate) + 0.5)
		if window < 1 {
			window = 1
		}
	}
	return LimitStatus{
		Limit:         s.burst,
		Remaining:     remaining,
		ResetAt:       now.Add(refill),
		WindowSeconds: window,
	}
}
