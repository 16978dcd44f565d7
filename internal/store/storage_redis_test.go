package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/MKhiriev/go-tweet/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

// ── sessions ───────────────────────────────────────────────────────────────

func TestRedisSessionStorage_Lifecycle(t *testing.T) {
	mr, rdb := newTestRedis(t)
	storage := NewRedisSessionStorage(rdb, logger.Nop())
	ctx := context.Background()

	session := models.Session{
		TokenID:   "jti-1",
		UserID:    "u-1",
		CreatedAt: time.Now().UTC(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, storage.SaveSession(ctx, session))

	assert.True(t, mr.Exists("session:jti-1"))
	ttl := mr.TTL("session:jti-1")
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	active, err := storage.IsSessionActive(ctx, "jti-1", "u-1")
	require.NoError(t, err)
	assert.True(t, active)

	active, err = storage.IsSessionActive(ctx, "jti-1", "u-2")
	require.NoError(t, err)
	assert.False(t, active, "session must belong to the token subject")

	require.NoError(t, storage.DeleteSession(ctx, "jti-1"))
	active, err = storage.IsSessionActive(ctx, "jti-1", "u-1")
	require.NoError(t, err)
	assert.False(t, active)

	// deleting twice is fine
	require.NoError(t, storage.DeleteSession(ctx, "jti-1"))
}

func TestRedisSessionStorage_Expires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	storage := NewRedisSessionStorage(rdb, logger.Nop())
	ctx := context.Background()

	require.NoError(t, storage.SaveSession(ctx, models.Session{
		TokenID:   "jti-2",
		UserID:    "u-1",
		ExpiresAt: time.Now().Add(time.Minute),
	}))

	mr.FastForward(2 * time.Minute)

	active, err := storage.IsSessionActive(ctx, "jti-2", "u-1")
	require.NoError(t, err)
	assert.False(t, active)
}

func TestRedisSessionStorage_RejectsExpiredSession(t *testing.T) {
	_, rdb := newTestRedis(t)
	storage := NewRedisSessionStorage(rdb, logger.Nop())

	err := storage.SaveSession(context.Background(), models.Session{
		TokenID:   "jti-3",
		ExpiresAt: time.Now().Add(-time.Second),
	})
	assert.Error(t, err)
}

func TestRedisSessionStorage_CorruptPayload(t *testing.T) {
	mr, rdb := newTestRedis(t)
	storage := NewRedisSessionStorage(rdb, logger.Nop())

	require.NoError(t, mr.Set("session:jti-4", "{not json"))

	_, err := storage.IsSessionActive(context.Background(), "jti-4", "u-1")
	assert.Error(t, err)
}

func TestRedisSessionStorage_ServerDown(t *testing.T) {
	mr, rdb := newTestRedis(t)
	storage := NewRedisSessionStorage(rdb, logger.Nop())
	mr.Close()

	_, err := storage.IsSessionActive(context.Background(), "jti-5", "u-1")
	assert.Error(t, err)
}

func TestNoopSessionStorage(t *testing.T) {
	storage := NewNoopSessionStorage()
	ctx := context.Background()

	require.NoError(t, storage.SaveSession(ctx, models.Session{}))
	active, err := storage.IsSessionActive(ctx, "any", "any")
	require.NoError(t, err)
	assert.True(t, active)
	require.NoError(t, storage.DeleteSession(ctx, "any"))
}

// ── rate limiting ──────────────────────────────────────────────────────────

func TestRedisRateLimiter_Allow(t *testing.T) {
	mr, rdb := newTestRedis(t)
	limiter := NewRedisRateLimiter(rdb)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		res, err := limiter.Allow(ctx, "10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed, "request %d should pass", i)
		assert.Equal(t, 3, res.Limit)
		assert.Equal(t, 3-i, res.Remaining)
		assert.Greater(t, res.ResetAfter, time.Duration(0))
		assert.LessOrEqual(t, res.ResetAfter, time.Minute)
	}

	res, err := limiter.Allow(ctx, "10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)

	// other clients have their own window
	res, err = limiter.Allow(ctx, "10.0.0.2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	assert.True(t, mr.Exists("rl:10.0.0.1"))

	mr.FastForward(time.Minute + time.Second)

	res, err = limiter.Allow(ctx, "10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 2, res.Remaining)
}

func TestRedisRateLimiter_ServerDown(t *testing.T) {
	mr, rdb := newTestRedis(t)
	limiter := NewRedisRateLimiter(rdb)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "k", 1, time.Second)
	assert.Error(t, err)
}
