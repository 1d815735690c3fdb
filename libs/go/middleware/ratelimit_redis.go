package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a fixed-window counter shared by every API instance
type RedisStore struct {
	rdb    redis.Cmdable
	limit  int
	window time.Duration
	prefix string
	now    func() time.Time
}

// NewRedisClient parses a redis:// URL and verifies the server answers
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// NewRedisStore allows limit requests per window per key
func NewRedisStore(rdb redis.Cmdable, limit int, window time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, limit: limit, window: window, prefix: "ratelimit", now: time.Now}
}

// windowKey names the counter for the window containing now
func (s *RedisStore) windowKey(key string, now time.Time) (string, time.Time) {
	start := now.Truncate(s.window)
	return s.prefix + ":" + key + ":" + strconv.FormatInt(start.Unix(), 10), start.Add(s.window)
}

func (s *RedisStore) Take(ctx context.Context, key string) (LimitStatus, bool, error) {
	now := s.now()
	k, resetAt := s.windowKey(key, now)

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.ExpireAt(ctx, k, resetAt.Add(time.Second))
	if _, err := pipe.Exec(ctx); err != nil {
		return LimitStatus{}, false, fmt.Errorf("redis rate limit: %w", err)
	}

	count := int(incr.Val())
	return s.status(count, resetAt), count <= s.limit, nil
}

func (s *RedisStore) Peek(ctx context.Context, key string) (LimitStatus, error) {
	now := s.now()
	k, resetAt := s.windowKey(key, now)

	count, err := s.rdb.Get(ctx, k).Int()
	if err != nil && err != redis.Nil {
		return LimitStatus{}, fmt.Errorf("redis rate limit: %w", err)
	}
	return s.status(count, resetAt), nil
}

func (s *RedisStore) status(count int, resetAt time.Time) LimitStatus {
	remaining := s.limit - count
	if remaining < 0 {
		remaining = 0
	}
	return LimitStatus{
		Limit:         s.limit,
		Remaining:     remaining,
		ResetAt:       resetAt,
		WindowSeconds: int(s.window / time.Second),
	}
}
