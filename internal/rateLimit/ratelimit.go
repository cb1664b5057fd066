package rateLimit

import (
	"context"
	"time"

	redisadapter "github.com/hotelops/booking-ledger/internal/adapters/redis"
)

// RateLimiter is a fixed-window counter backed by redis. A nil cache
// disables limiting, which suits the single-caller demo setups.
type RateLimiter struct {
	redis *redisadapter.Cache
}

func NewRateLimiter(redis *redisadapter.Cache) *RateLimiter {
	return &RateLimiter{redis: redis}
}

func (rl *RateLimiter) Allow(ctx context.Context, key string, rate int, period time.Duration) bool {
	if rl.redis == nil {
		return true
	}
	fullKey := "rl:" + key

	pipe := rl.redis.Client().Pipeline()
	incr := pipe.Incr(ctx, fullKey)
	pipe.Expire(ctx, fullKey, period)

	_, err := pipe.Exec(ctx)
	if err != nil {
		return false
	}

	return incr.Val() <= int64(rate)
}
