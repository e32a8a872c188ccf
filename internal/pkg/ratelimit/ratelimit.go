// Package ratelimit provides a fixed-window counter backed by Redis.
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Limiter counts events per key in fixed windows. A nil Redis client makes
// every Allow call succeed, so the limiter can be wired unconditionally.
type Limiter struct {
	client *redis.Client
	prefix string
	window time.Duration
}

// New creates a limiter. prefix namespaces the keys in Redis.
func New(client *redis.Client, prefix string, window time.Duration) *Limiter {
	return &Limiter{client: client, prefix: prefix, window: window}
}

// Allow increments the counter for key and reports whether the count in the
// current window is within limit. Redis errors fail open with a warning:
// losing the cap is preferable to dropping the operation it guards.
func (l *Limiter) Allow(ctx context.Context, key string, limit int) bool {
	if l.client == nil || limit <= 0 {
		return true
	}

	windowKey := l.prefix + ":" + key + ":" + time.Now().UTC().Truncate(l.window).Format("200601021504")

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, windowKey)
	pipe.Expire(ctx, windowKey, l.window+time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("rate limiter unavailable, allowing")
		return true
	}

	return incr.Val() <= int64(limit)
}
