package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tweet/models"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "rl:"

// incrExpireScript atomically increments the window counter and starts the
// window on the first hit. It returns the count and the remaining TTL in ms.
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
return {current, ttl}
`)

// redisRateLimiter implements a fixed-window [RateLimiter] on Redis.
type redisRateLimiter struct {
	rdb *redis.Client
}

func NewRedisRateLimiter(rdb *redis.Client) RateLimiter {
	return &redisRateLimiter{rdb: rdb}
}

func (l *redisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (models.RateLimitResult, error) {
	res, err := incrExpireScript.Run(ctx, l.rdb, []string{rateLimitKeyPrefix + key}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return models.RateLimitResult{}, fmt.Errorf("error running rate limit script: %w", err)
	}
	if len(res) != 2 {
		return models.RateLimitResult{}, fmt.Errorf("unexpected rate limit script result: %v", res)
	}

	count, ttlMillis := int(res[0]), res[1]
	resetAfter := window
	if ttlMillis > 0 {
		resetAfter = time.Duration(ttlMillis) * time.Millisecond
	}

	return models.RateLimitResult{
		Allowed:    count <= limit,
		Limit:      limit,
		Remaining:  max(limit-count, 0),
		ResetAfter: resetAfter,
	}, nil
}
