package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tweet/internal/config"
	"github.com/MKhiriev/go-tweet/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages aggregates every server-side store.
//
// RateLimiter is nil when Redis is not configured; SessionStorage falls
// back to a no-op implementation in that case.
type Storages struct {
	UserRepository  UserRepository
	TweetRepository TweetRepository
	SessionStorage  SessionStorage
	RateLimiter     RateLimiter

	db    *DB
	redis *redis.Client
}

// NewStorages connects to PostgreSQL (applying migrations) and, when
// configured, to Redis.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	storages := &Storages{
		UserRepository:  NewUserRepository(db, log),
		TweetRepository: NewTweetRepository(db, log),
		SessionStorage:  NewNoopSessionStorage(),
		db:              db,
	}

	if cfg.Redis.Address == "" {
		log.Warn().Msg("redis is not configured: sessions are stateless and rate limiting is disabled")
		return storages, nil
	}

	rdb, err := NewRedisClient(ctx, cfg.Redis, log)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("redis connection error: %w", err)
	}

	storages.redis = rdb
	storages.SessionStorage = NewRedisSessionStorage(rdb, log)
	storages.RateLimiter = NewRedisRateLimiter(rdb)

	return storages, nil
}

// Close releases the database and Redis connections.
func (s *Storages) Close() error {
	var errs []error
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}
